package storage

import (
	"encoding/json"
	"reflect"
	"testing"

	"vidquiz/internal/plan"
	"vidquiz/internal/qgen"
)

func mcQuestion() *qgen.GeneratedQuestion {
	return &qgen.GeneratedQuestion{
		ID:          "q-mc",
		PlanID:      "p1",
		Timestamp:   95,
		Type:        plan.TypeMultipleChoice,
		Question:    "What does DNS do?",
		Explanation: "DNS maps names to addresses.",
		BloomLevel:  plan.BloomRemember,
		Rationale:   "Checks the core definition",
		MultipleChoice: &qgen.MultipleChoice{
			Options:      []string{"Maps names", "Encrypts traffic", "Routes packets", "Stores pages"},
			CorrectIndex: 0,
		},
	}
}

func TestTransform_MultipleChoice(t *testing.T) {
	row, err := Transform(mcQuestion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row.Type != "multiple-choice" {
		t.Fatalf("wrong type: %q", row.Type)
	}
	if row.CorrectAnswer != "0" {
		t.Fatalf("wrong correct answer: %q", row.CorrectAnswer)
	}
	if row.HasVisualAsset {
		t.Fatal("multiple-choice has no visual asset")
	}
	if row.Options == nil {
		t.Fatal("options missing")
	}
	var opts []string
	if err := json.Unmarshal([]byte(*row.Options), &opts); err != nil || len(opts) != 4 {
		t.Fatalf("options not a 4-element JSON array: %q", *row.Options)
	}

	var meta map[string]any
	if err := json.Unmarshal([]byte(*row.Metadata), &meta); err != nil {
		t.Fatalf("metadata not valid JSON: %v", err)
	}
	if meta["bloom_level"] != "remember" || meta["rationale"] != "Checks the core definition" {
		t.Fatalf("metadata missing provenance: %v", meta)
	}
}

func TestTransform_Idempotent(t *testing.T) {
	a, err := Transform(mcQuestion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Transform(mcQuestion())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("transform is not deterministic:\n%+v\n%+v", a, b)
	}
	if *a.Metadata != *b.Metadata {
		t.Fatal("metadata bytes differ between runs")
	}
}

func TestTransform_TrueFalseEncoding(t *testing.T) {
	q := &qgen.GeneratedQuestion{
		ID:          "q-tf",
		Type:        plan.TypeTrueFalse,
		Question:    "DNS encrypts traffic.",
		Explanation: "DNS only resolves names; encryption is TLS's job.",
		TrueFalse:   &qgen.TrueFalse{Answer: false},
	}

	row, err := Transform(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.CorrectAnswer != "1" {
		t.Fatalf("false must encode as 1, got %q", row.CorrectAnswer)
	}

	q.TrueFalse.Answer = true
	row, err = Transform(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.CorrectAnswer != "0" {
		t.Fatalf("true must encode as 0, got %q", row.CorrectAnswer)
	}
	if row.Options != nil {
		t.Fatal("true/false must not carry options")
	}
}

func TestEncodeTrueFalse(t *testing.T) {
	tests := []struct {
		in      any
		want    int
		wantErr bool
	}{
		{true, 0, false},
		{false, 1, false},
		{"true", 0, false},
		{"False", 1, false},
		{" TRUE ", 0, false},
		{"0", 0, false},
		{"1", 1, false},
		{0, 0, false},
		{1, 1, false},
		{float64(1), 1, false},
		{"yes", 0, true},
		{2, 0, true},
		{nil, 0, true},
		{[]string{"true"}, 0, true},
	}

	for _, tt := range tests {
		got, err := EncodeTrueFalse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("EncodeTrueFalse(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("EncodeTrueFalse(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTransform_Hotspot(t *testing.T) {
	q := &qgen.GeneratedQuestion{
		ID:          "q-hs",
		Type:        plan.TypeHotspot,
		Question:    "Click the resolver.",
		Explanation: "The resolver issues the chain of queries.",
		Hotspot: &qgen.Hotspot{
			FrameTimestamp: 45,
			TargetObjects:  []string{"resolver"},
			Boxes: []qgen.BoundingBox{
				{X: 0.2, Y: 0.1, Width: 0.2, Height: 0.2, Label: "resolver", Correct: true, Confidence: 0.9},
				{X: 0.6, Y: 0.5, Width: 0.2, Height: 0.2, Label: "root server"},
			},
		},
	}

	row, err := Transform(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !row.HasVisualAsset {
		t.Fatal("hotspot must flag a visual asset")
	}
	if row.CorrectAnswer != "resolver" {
		t.Fatalf("correct answer should be the winning label, got %q", row.CorrectAnswer)
	}
	if len(row.Boxes) != 2 {
		t.Fatalf("expected 2 box rows, got %d", len(row.Boxes))
	}

	var meta map[string]any
	_ = json.Unmarshal([]byte(*row.Metadata), &meta)
	if boxes, ok := meta["boxes"].([]any); !ok || len(boxes) != 2 {
		t.Fatalf("metadata missing boxes: %v", meta)
	}
	if meta["frame_timestamp"] != float64(45) {
		t.Fatalf("metadata missing frame timestamp: %v", meta)
	}
}

func TestTransform_Matching(t *testing.T) {
	q := &qgen.GeneratedQuestion{
		ID:          "q-m",
		Type:        plan.TypeMatching,
		Question:    "Match each component to its role.",
		Explanation: "Each component has a distinct responsibility in resolution.",
		Matching: &qgen.Matching{Pairs: []qgen.Pair{
			{Left: "Resolver", Right: "Walks the hierarchy"},
			{Left: "Root server", Right: "Points at TLDs"},
			{Left: "Authoritative server", Right: "Holds records"},
		}},
	}

	row, err := Transform(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !row.HasVisualAsset {
		t.Fatal("matching must flag a visual asset")
	}

	var key map[string]string
	if err := json.Unmarshal([]byte(row.CorrectAnswer), &key); err != nil {
		t.Fatalf("answer key not valid JSON: %v", err)
	}
	if key["Resolver"] != "Walks the hierarchy" || len(key) != 3 {
		t.Fatalf("wrong answer key: %v", key)
	}
}

func TestTransform_Sequencing(t *testing.T) {
	items := []string{"Client asks resolver", "Resolver queries root", "Answer returns"}
	q := &qgen.GeneratedQuestion{
		ID:          "q-s",
		Type:        plan.TypeSequencing,
		Question:    "Order the steps.",
		Explanation: "The resolver walks the hierarchy from root downward.",
		Sequencing:  &qgen.Sequencing{Items: items},
	}

	row, err := Transform(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	if err := json.Unmarshal([]byte(row.CorrectAnswer), &got); err != nil {
		t.Fatalf("correct answer not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestTransform_MissingPayloadRejected(t *testing.T) {
	q := &qgen.GeneratedQuestion{
		ID:       "q-bad",
		Type:     plan.TypeMultipleChoice,
		Question: "x",
	}
	if _, err := Transform(q); err == nil {
		t.Fatal("expected error for missing payload")
	}
}

func TestTransformAll_CollectsFailures(t *testing.T) {
	bad := &qgen.GeneratedQuestion{ID: "q-bad", Type: plan.QuestionType("essay")}
	rows, errs := TransformAll([]*qgen.GeneratedQuestion{mcQuestion(), bad})
	if len(rows) != 1 || len(errs) != 1 {
		t.Fatalf("expected 1 row and 1 error, got %d and %d", len(rows), len(errs))
	}
}
