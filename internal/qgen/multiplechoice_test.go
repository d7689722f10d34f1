package qgen

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"vidquiz/internal/plan"
	"vidquiz/internal/transcript"
)

func testPlan(qt plan.QuestionType) plan.Plan {
	return plan.Plan{
		ID:                "p1",
		Timestamp:         95,
		Type:              qt,
		LearningObjective: "Recall what DNS does",
		ContentContext:    "DNS translates names to addresses",
		KeyConcepts:       []string{"DNS"},
		BloomLevel:        plan.BloomRemember,
		Difficulty:        plan.DifficultyEasy,
		Notes:             "Checks the core definition",
		TranscriptRef:     plan.TranscriptRef{Start: 30, End: 90},
	}
}

func testQGenTranscript() *transcript.Transcript {
	return &transcript.Transcript{
		Segments: []transcript.Segment{
			{Start: 0, End: 30, Text: "Welcome.", VisualDescription: "title slide"},
			{Start: 30, End: 90, Text: "DNS translates names.", VisualDescription: "DNS diagram"},
			{Start: 90, End: 180, Text: "Resolvers walk the tree.", VisualDescription: "resolver animation"},
		},
		Concepts: []transcript.ConceptEntry{
			{Concept: "DNS", FirstMention: 30, Explanations: []int{45}},
		},
		Summary: "Intro to DNS resolution.",
	}
}

func mcqJSON(options int, correctIndex int) json.RawMessage {
	opts := make([]string, options)
	names := []string{"Translates names to addresses", "Encrypts traffic", "Routes packets", "Stores web pages", "Caches images", "Signs certificates"}
	for i := range opts {
		opts[i] = names[i%len(names)]
	}
	out, _ := json.Marshal(map[string]any{
		"question":      "What does DNS do?",
		"options":       opts,
		"correct_index": correctIndex,
		"explanation":   "DNS maps human-readable names to IP addresses.",
	})
	return out
}

func TestMultipleChoice_NormalizeValid(t *testing.T) {
	proc := MultipleChoiceProcessor{}
	q, err := proc.Normalize(mcqJSON(4, 0), testPlan(plan.TypeMultipleChoice))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Type != plan.TypeMultipleChoice {
		t.Fatalf("wrong type: %s", q.Type)
	}
	if q.MultipleChoice == nil || len(q.MultipleChoice.Options) != 4 {
		t.Fatal("expected 4 options")
	}
	if q.MultipleChoice.CorrectIndex != 0 {
		t.Fatalf("wrong correct index: %d", q.MultipleChoice.CorrectIndex)
	}
	if q.Timestamp != 95 {
		t.Fatalf("timestamp should come from the plan, got %d", q.Timestamp)
	}
	if q.PlanID != "p1" || q.ID == "" {
		t.Fatalf("identity fields not set: id=%q plan=%q", q.ID, q.PlanID)
	}
}

func TestMultipleChoice_OptionCountEnforced(t *testing.T) {
	proc := MultipleChoiceProcessor{}
	for _, n := range []int{2, 3, 5, 6} {
		_, err := proc.Normalize(mcqJSON(n, 0), testPlan(plan.TypeMultipleChoice))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("options=%d: expected ValidationError, got %v", n, err)
		}
	}
}

func TestMultipleChoice_CorrectIndexInRange(t *testing.T) {
	proc := MultipleChoiceProcessor{}
	for _, idx := range []int{-1, 4, 10} {
		_, err := proc.Normalize(mcqJSON(4, idx), testPlan(plan.TypeMultipleChoice))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("index=%d: expected ValidationError, got %v", idx, err)
		}
	}
}

func TestMultipleChoice_OptimalTimestampSubstitution(t *testing.T) {
	proc := MultipleChoiceProcessor{}
	raw := json.RawMessage(`{
		"question": "What does DNS do?",
		"options": ["a1","a2","a3","a4"],
		"correct_index": 1,
		"explanation": "DNS maps names to addresses.",
		"optimal_timestamp": "01:42"
	}`)
	q, err := proc.Normalize(raw, testPlan(plan.TypeMultipleChoice))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Timestamp != 102 {
		t.Fatalf("expected optimal timestamp 102, got %d", q.Timestamp)
	}
}

func TestMultipleChoice_BadOptimalTimestampIgnored(t *testing.T) {
	proc := MultipleChoiceProcessor{}
	raw := json.RawMessage(`{
		"question": "What does DNS do?",
		"options": ["a1","a2","a3","a4"],
		"correct_index": 1,
		"explanation": "DNS maps names to addresses.",
		"optimal_timestamp": "not-a-time"
	}`)
	q, err := proc.Normalize(raw, testPlan(plan.TypeMultipleChoice))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Timestamp != 95 {
		t.Fatalf("bad suggestion should keep plan timestamp, got %d", q.Timestamp)
	}
}

func TestMultipleChoice_BuildRequest(t *testing.T) {
	proc := MultipleChoiceProcessor{}
	p := testPlan(plan.TypeMultipleChoice)
	w := testQGenTranscript().ExtractWindow(p.Timestamp, 0)

	req := proc.BuildRequest(p, w)
	if req.Schema != MultipleChoiceSchema {
		t.Fatal("wrong schema")
	}
	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Recall what DNS does", "DNS translates names.", "01:35"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if req.Video != nil {
		t.Fatal("text generation must not attach video")
	}
}
