package storage

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"vidquiz/internal/plan"
	"vidquiz/internal/qgen"
)

// Row is the flat persistence shape of one question. Transform is pure:
// the same question always produces a byte-identical row, so re-running
// the pipeline over saved output is safe.
type Row struct {
	QuestionID string
	Timestamp  int
	Question   string
	Type       string

	// Options is a JSON array of the four options, multiple-choice only.
	Options *string

	// CorrectAnswer is type-dependent: the option index for
	// multiple-choice, "0"/"1" for true/false, the correct box label for
	// hotspot, the answer key JSON for matching, the ordered items JSON
	// for sequencing.
	CorrectAnswer string

	Explanation string

	// HasVisualAsset marks types whose rendering needs more than text.
	HasVisualAsset bool

	// Metadata is a JSON blob of type-specific structure and provenance.
	Metadata *string

	// Boxes feed the parallel bounding-box table, hotspot only.
	Boxes []BoxRow
}

// BoxRow is one bounding box in persistence shape.
type BoxRow struct {
	X          float64
	Y          float64
	Width      float64
	Height     float64
	Label      string
	Correct    bool
	Confidence float64
}

// rowMetadata is the metadata blob. Struct encoding keeps key order
// fixed, which keeps Transform deterministic.
type rowMetadata struct {
	BloomLevel     string     `json:"bloom_level,omitempty"`
	Rationale      string     `json:"rationale,omitempty"`
	FrameTimestamp int        `json:"frame_timestamp,omitempty"`
	TargetObjects  []string   `json:"target_objects,omitempty"`
	Boxes          []boxMeta  `json:"boxes,omitempty"`
	Pairs          []pairMeta `json:"pairs,omitempty"`
	Items          []string   `json:"items,omitempty"`
}

type boxMeta struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Label      string  `json:"label"`
	Correct    bool    `json:"correct"`
	Confidence float64 `json:"confidence,omitempty"`
}

type pairMeta struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// EncodeTrueFalse is the single source of truth for the true/false
// storage encoding: true is 0, false is 1. It accepts the native bool,
// the string forms models sometimes emit, and already-encoded integers.
func EncodeTrueFalse(v any) (int, error) {
	switch t := v.(type) {
	case bool:
		if t {
			return 0, nil
		}
		return 1, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true":
			return 0, nil
		case "false":
			return 1, nil
		case "0":
			return 0, nil
		case "1":
			return 1, nil
		}
		return 0, fmt.Errorf("unrecognized true/false value %q", t)
	case int:
		if t == 0 || t == 1 {
			return t, nil
		}
		return 0, fmt.Errorf("true/false int encoding must be 0 or 1, got %d", t)
	case float64:
		if t == 0 || t == 1 {
			return int(t), nil
		}
		return 0, fmt.Errorf("true/false number encoding must be 0 or 1, got %v", t)
	}
	return 0, fmt.Errorf("unsupported true/false value type %T", v)
}

// Transform converts one generated question into its persistence row.
func Transform(q *qgen.GeneratedQuestion) (*Row, error) {
	row := &Row{
		QuestionID:  q.ID,
		Timestamp:   q.Timestamp,
		Question:    q.Question,
		Type:        string(q.Type),
		Explanation: q.Explanation,
	}

	meta := rowMetadata{
		BloomLevel: string(q.BloomLevel),
		Rationale:  q.Rationale,
	}

	switch q.Type {
	case plan.TypeMultipleChoice:
		if q.MultipleChoice == nil {
			return nil, fmt.Errorf("question %s: missing multiple-choice payload", q.ID)
		}
		opts, err := json.Marshal(q.MultipleChoice.Options)
		if err != nil {
			return nil, fmt.Errorf("encode options: %w", err)
		}
		s := string(opts)
		row.Options = &s
		row.CorrectAnswer = strconv.Itoa(q.MultipleChoice.CorrectIndex)

	case plan.TypeTrueFalse:
		if q.TrueFalse == nil {
			return nil, fmt.Errorf("question %s: missing true/false payload", q.ID)
		}
		enc, err := EncodeTrueFalse(q.TrueFalse.Answer)
		if err != nil {
			return nil, err
		}
		row.CorrectAnswer = strconv.Itoa(enc)

	case plan.TypeHotspot:
		if q.Hotspot == nil {
			return nil, fmt.Errorf("question %s: missing hotspot payload", q.ID)
		}
		row.HasVisualAsset = true
		meta.FrameTimestamp = q.Hotspot.FrameTimestamp
		meta.TargetObjects = q.Hotspot.TargetObjects
		for _, b := range q.Hotspot.Boxes {
			if b.Correct {
				row.CorrectAnswer = b.Label
			}
			meta.Boxes = append(meta.Boxes, boxMeta(b))
			row.Boxes = append(row.Boxes, BoxRow(b))
		}
		if row.CorrectAnswer == "" {
			return nil, fmt.Errorf("question %s: no correct box", q.ID)
		}

	case plan.TypeMatching:
		if q.Matching == nil {
			return nil, fmt.Errorf("question %s: missing matching payload", q.ID)
		}
		row.HasVisualAsset = true
		key := make(map[string]string, len(q.Matching.Pairs))
		for _, pr := range q.Matching.Pairs {
			key[pr.Left] = pr.Right
			meta.Pairs = append(meta.Pairs, pairMeta(pr))
		}
		// Maps marshal with sorted keys, so the answer key is stable.
		enc, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("encode answer key: %w", err)
		}
		row.CorrectAnswer = string(enc)

	case plan.TypeSequencing:
		if q.Sequencing == nil {
			return nil, fmt.Errorf("question %s: missing sequencing payload", q.ID)
		}
		row.HasVisualAsset = true
		meta.Items = q.Sequencing.Items
		enc, err := json.Marshal(q.Sequencing.Items)
		if err != nil {
			return nil, fmt.Errorf("encode items: %w", err)
		}
		row.CorrectAnswer = string(enc)

	default:
		return nil, fmt.Errorf("question %s: unknown type %q", q.ID, q.Type)
	}

	encMeta, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	s := string(encMeta)
	row.Metadata = &s

	return row, nil
}

// TransformAll converts a batch, collecting per-question failures.
func TransformAll(questions []*qgen.GeneratedQuestion) ([]Row, []error) {
	rows := make([]Row, 0, len(questions))
	var errs []error
	for _, q := range questions {
		row, err := Transform(q)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rows = append(rows, *row)
	}
	return rows, errs
}
