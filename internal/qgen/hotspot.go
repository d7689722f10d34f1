package qgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/transcript"
)

const hotspotSystemPrompt = `You write hotspot quiz questions for educational videos.

You receive a learning objective, the transcript around one moment, and
the objects visible on the frame at that moment. Write a single question
asking the learner to click the right region of the frame.

Rules:
- The question names what to find without giving away where it is.
- The question must be answerable by looking at the frame, informed by
  the surrounding explanation in the video.
- Do not reference "the video", "the transcript", or timestamps.
- The explanation says why that region is the answer.`

const hotspotVisionSystemPrompt = `You locate objects in a video frame.

You receive a short video clip and a list of target objects. Return a
bounding box for every distinct labeled object visible on the frame,
marking which single box is the question's answer.

Rules:
- Box coordinates are [y_min, x_min, y_max, x_max] on a 0-1000 scale.
- Return at least 2 boxes so the learner has real choices.
- Mark exactly one box as the target.
- Labels name what the box contains, matching on-screen labels when
  present.`

// HotspotSchema constrains the text phase of hotspot generation.
var HotspotSchema = &llm.Schema{
	Name:        "hotspot-question",
	Description: "One click-the-region question with its explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "What the learner is asked to find and click",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why that region is the answer",
			},
		},
		"required":             []any{"question", "explanation"},
		"additionalProperties": false,
	},
}

// HotspotVisionSchema constrains the vision phase: bounding boxes on the
// frame.
var HotspotVisionSchema = &llm.Schema{
	Name:        "hotspot-boxes",
	Description: "Bounding boxes for objects visible on the frame",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"boxes": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"box_2d": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "integer"},
							"minItems":    4,
							"maxItems":    4,
							"description": "[y_min, x_min, y_max, x_max] on a 0-1000 scale",
						},
						"label": map[string]any{
							"type":        "string",
							"description": "What the box contains",
						},
						"is_target": map[string]any{
							"type":        "boolean",
							"description": "Whether this box is the question's answer",
						},
						"confidence": map[string]any{
							"type":        "number",
							"description": "Detection confidence, 0 to 1",
						},
					},
					"required":             []any{"box_2d", "label", "is_target"},
					"additionalProperties": false,
				},
				"minItems": 2,
			},
		},
		"required":             []any{"boxes"},
		"additionalProperties": false,
	},
}

type hotspotOutput struct {
	Question    string `json:"question"`
	Explanation string `json:"explanation"`
}

type hotspotVisionOutput struct {
	Boxes []struct {
		Box2D      []int   `json:"box_2d"`
		Label      string  `json:"label"`
		IsTarget   bool    `json:"is_target"`
		Confidence float64 `json:"confidence"`
	} `json:"boxes"`
}

const (
	hotspotVisionAttempts = 3
	hotspotMinJitter      = 500 * time.Millisecond
	hotspotMaxJitter      = 1500 * time.Millisecond
	hotspotVisionBackoff  = time.Second
)

// HotspotProcessor generates click-the-region questions. It is the one
// processor with a second model call: after the text phase writes the
// question, a vision call on the frame's video window locates the
// bounding boxes.
type HotspotProcessor struct {
	provider llm.Provider

	// jitter and sleep are swapped out in tests.
	jitter func() time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
}

// NewHotspotProcessor creates a HotspotProcessor whose vision calls go
// through the given provider.
func NewHotspotProcessor(provider llm.Provider) *HotspotProcessor {
	return &HotspotProcessor{
		provider: provider,
		jitter: func() time.Duration {
			return hotspotMinJitter + time.Duration(rand.Int63n(int64(hotspotMaxJitter-hotspotMinJitter)))
		},
		sleep: sleepCtx,
	}
}

func (h *HotspotProcessor) Type() plan.QuestionType { return plan.TypeHotspot }

func (h *HotspotProcessor) BuildRequest(p plan.Plan, w *transcript.Window) llm.Request {
	var b strings.Builder
	b.WriteString(buildQuestionMessage(p, w))
	fmt.Fprintf(&b, "\nFrame moment: %s\n", transcript.FormatTimestamp(p.FrameTimestamp))
	fmt.Fprintf(&b, "Objects on the frame: %s\n", strings.Join(p.TargetObjects, ", "))

	return llm.Request{
		System:      hotspotSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:      HotspotSchema,
		MaxTokens:   768,
		Temperature: 0.3,
		TopP:        0.9,
	}
}

func (h *HotspotProcessor) Normalize(raw json.RawMessage, p plan.Plan) (*GeneratedQuestion, error) {
	var out hotspotOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse hotspot response: %w", err)
	}

	if out.Question == "" {
		return nil, &ValidationError{PlanID: p.ID, Message: "question is empty"}
	}
	if out.Explanation == "" {
		return nil, &ValidationError{PlanID: p.ID, Message: "explanation is empty"}
	}

	q := newBase(p)
	q.Question = out.Question
	q.Explanation = out.Explanation
	q.Hotspot = &Hotspot{
		FrameTimestamp: p.FrameTimestamp,
		TargetObjects:  p.TargetObjects,
	}
	return &q, nil
}

// ResolveVision runs the vision phase: locate bounding boxes on a half
// second of video around the frame timestamp and reconcile them to a
// single correct box. The call starts after a randomized delay so a
// batch of hotspot plans does not hit the vision model at once.
func (h *HotspotProcessor) ResolveVision(ctx context.Context, q *GeneratedQuestion, p plan.Plan, videoURI string) error {
	ctx = llm.WithPurpose(ctx, "hotspot-vision")

	if err := h.sleep(ctx, h.jitter()); err != nil {
		return err
	}

	req := h.buildVisionRequest(q, p, videoURI)

	var resp *llm.Response
	var err error
	for attempt := 0; attempt < hotspotVisionAttempts; attempt++ {
		if attempt > 0 {
			if serr := h.sleep(ctx, hotspotVisionBackoff<<(attempt-1)); serr != nil {
				return serr
			}
		}
		resp, err = h.provider.Generate(ctx, req)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	if err != nil {
		return fmt.Errorf("vision call failed after %d attempts: %w", hotspotVisionAttempts, err)
	}

	var out hotspotVisionOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return fmt.Errorf("parse vision response: %w", err)
	}

	boxes := make([]BoundingBox, 0, len(out.Boxes))
	for i, b := range out.Boxes {
		box, err := convertBox(b.Box2D)
		if err != nil {
			return &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("box %d: %v", i, err)}
		}
		box.Label = b.Label
		box.Correct = b.IsTarget
		box.Confidence = b.Confidence
		boxes = append(boxes, box)
	}

	if len(boxes) < 2 {
		return &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("need at least 2 boxes, got %d", len(boxes))}
	}

	boxes, err = reconcileBoxes(boxes, p.TargetObjects, p.ID)
	if err != nil {
		return err
	}

	q.Hotspot.Boxes = boxes
	return nil
}

func (h *HotspotProcessor) buildVisionRequest(q *GeneratedQuestion, p plan.Plan, videoURI string) llm.Request {
	frame := time.Duration(p.FrameTimestamp) * time.Second
	start := frame - 250*time.Millisecond
	if start < 0 {
		start = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Question being asked: %s\n", q.Question)
	fmt.Fprintf(&b, "Target objects: %s\n", strings.Join(p.TargetObjects, ", "))
	b.WriteString("Locate every labeled object on the frame and mark the one that answers the question.")

	return llm.Request{
		System:   hotspotVisionSystemPrompt,
		Messages: []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:   HotspotVisionSchema,
		Video: &llm.VideoInput{
			URI:   videoURI,
			Start: start,
			End:   start + 500*time.Millisecond,
		},
		MaxTokens:   2048,
		Temperature: 0.2,
	}
}

// convertBox turns a [y_min, x_min, y_max, x_max] box on a 0-1000 scale
// into normalized top-left/width/height coordinates.
func convertBox(box2d []int) (BoundingBox, error) {
	if len(box2d) != 4 {
		return BoundingBox{}, fmt.Errorf("expected 4 coordinates, got %d", len(box2d))
	}
	yMin, xMin, yMax, xMax := box2d[0], box2d[1], box2d[2], box2d[3]
	if yMin < 0 || xMin < 0 || yMax > 1000 || xMax > 1000 {
		return BoundingBox{}, fmt.Errorf("coordinates out of 0-1000 range: %v", box2d)
	}
	if yMax <= yMin || xMax <= xMin {
		return BoundingBox{}, fmt.Errorf("degenerate box: %v", box2d)
	}

	return BoundingBox{
		X:      float64(xMin) / 1000,
		Y:      float64(yMin) / 1000,
		Width:  float64(xMax-xMin) / 1000,
		Height: float64(yMax-yMin) / 1000,
	}, nil
}

// reconcileBoxes settles the boxes on exactly one correct entry. When
// the model marked exactly one, that stands. Otherwise the first box
// whose label matches a plan target wins; failing that, the first box
// the model marked. Zero correct after both passes is terminal.
func reconcileBoxes(boxes []BoundingBox, targets []string, planID string) ([]BoundingBox, error) {
	marked := make([]int, 0, len(boxes))
	for i, b := range boxes {
		if b.Correct {
			marked = append(marked, i)
		}
	}

	if len(marked) == 1 {
		return boxes, nil
	}

	if idx := matchTargetLabel(boxes, targets); idx >= 0 {
		setOnlyCorrect(boxes, idx)
		return boxes, nil
	}

	if len(marked) > 0 {
		setOnlyCorrect(boxes, marked[0])
		return boxes, nil
	}

	return nil, &ReconciliationError{PlanID: planID, Marked: len(marked), Boxes: len(boxes)}
}

func matchTargetLabel(boxes []BoundingBox, targets []string) int {
	for i, b := range boxes {
		label := strings.ToLower(strings.TrimSpace(b.Label))
		if label == "" {
			continue
		}
		for _, t := range targets {
			target := strings.ToLower(strings.TrimSpace(t))
			if target == "" {
				continue
			}
			if label == target || strings.Contains(label, target) || strings.Contains(target, label) {
				return i
			}
		}
	}
	return -1
}

func setOnlyCorrect(boxes []BoundingBox, idx int) {
	for i := range boxes {
		boxes[i].Correct = i == idx
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
