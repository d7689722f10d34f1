package qgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
)

func hotspotPlan() plan.Plan {
	p := testPlan(plan.TypeHotspot)
	p.Type = plan.TypeHotspot
	p.FrameTimestamp = 45
	p.TargetObjects = []string{"resolver", "root server"}
	return p
}

func noDelay(h *HotspotProcessor) {
	h.jitter = func() time.Duration { return 0 }
	h.sleep = func(context.Context, time.Duration) error { return nil }
}

func hotspotQuestion(t *testing.T, proc *HotspotProcessor) *GeneratedQuestion {
	t.Helper()
	raw := json.RawMessage(`{
		"question": "Click the component that walks the DNS hierarchy on the client's behalf.",
		"explanation": "The resolver is the component issuing the chain of queries."
	}`)
	q, err := proc.Normalize(raw, hotspotPlan())
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return q
}

func visionJSON(boxes string) json.RawMessage {
	return json.RawMessage(`{"boxes": ` + boxes + `}`)
}

func TestHotspot_VisionResolvesBoxes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: visionJSON(`[
		{"box_2d": [100, 200, 300, 400], "label": "resolver", "is_target": true, "confidence": 0.92},
		{"box_2d": [500, 600, 700, 800], "label": "root server", "is_target": false, "confidence": 0.88}
	]`)})
	proc := NewHotspotProcessor(mock)
	noDelay(proc)

	q := hotspotQuestion(t, proc)
	p := hotspotPlan()

	if err := proc.ResolveVision(context.Background(), q, p, "https://example.com/v.mp4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(q.Hotspot.Boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(q.Hotspot.Boxes))
	}
	b := q.Hotspot.Boxes[0]
	if !b.Correct {
		t.Fatal("first box should be correct")
	}
	if b.X != 0.2 || b.Y != 0.1 || b.Width != 0.2 || b.Height != 0.2 {
		t.Fatalf("coordinate conversion wrong: %+v", b)
	}

	// The vision request carries the half-second video window.
	req := mock.Calls[0]
	if req.Video == nil || req.Video.URI != "https://example.com/v.mp4" {
		t.Fatal("vision request missing video")
	}
	if req.Video.End-req.Video.Start != 500*time.Millisecond {
		t.Fatalf("expected a 0.5s window, got %v", req.Video.End-req.Video.Start)
	}
}

func TestHotspot_VisionRetriesThenSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: visionJSON(`[
			{"box_2d": [0, 0, 100, 100], "label": "resolver", "is_target": true},
			{"box_2d": [200, 200, 300, 300], "label": "cache", "is_target": false}
		]`)},
	)
	proc := NewHotspotProcessor(mock)
	noDelay(proc)

	q := hotspotQuestion(t, proc)
	if err := proc.ResolveVision(context.Background(), q, hotspotPlan(), "v.mp4"); err != nil {
		t.Fatalf("expected third attempt to succeed: %v", err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 attempts, got %d", mock.CallCount())
	}
}

func TestHotspot_VisionExhaustsRetries(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	proc := NewHotspotProcessor(mock)
	noDelay(proc)

	q := hotspotQuestion(t, proc)
	err := proc.ResolveVision(context.Background(), q, hotspotPlan(), "v.mp4")
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", mock.CallCount())
	}
}

func TestHotspot_SingleBoxRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: visionJSON(`[
		{"box_2d": [0, 0, 100, 100], "label": "resolver", "is_target": true}
	]`)})
	proc := NewHotspotProcessor(mock)
	noDelay(proc)

	q := hotspotQuestion(t, proc)
	err := proc.ResolveVision(context.Background(), q, hotspotPlan(), "v.mp4")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for single box, got %v", err)
	}
}

func TestConvertBox(t *testing.T) {
	tests := []struct {
		in      []int
		wantErr bool
	}{
		{[]int{0, 0, 1000, 1000}, false},
		{[]int{100, 200, 300, 400}, false},
		{[]int{0, 0, 100}, true},        // wrong arity
		{[]int{-10, 0, 100, 100}, true}, // negative
		{[]int{0, 0, 1100, 100}, true},  // beyond scale
		{[]int{100, 100, 100, 200}, true},
	}

	for _, tt := range tests {
		_, err := convertBox(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("convertBox(%v) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}

	b, err := convertBox([]int{250, 500, 750, 900})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.X != 0.5 || b.Y != 0.25 || b.Width != 0.4 || b.Height != 0.5 {
		t.Fatalf("wrong conversion: %+v", b)
	}
}

func TestReconcileBoxes_SingleMarkedStands(t *testing.T) {
	boxes := []BoundingBox{
		{Label: "cache", Correct: false},
		{Label: "resolver", Correct: true},
	}
	got, err := reconcileBoxes(boxes, []string{"root server"}, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got[1].Correct || got[0].Correct {
		t.Fatal("single marked box should stand as-is")
	}
}

func TestReconcileBoxes_LabelMatchWinsOverMarked(t *testing.T) {
	// Two boxes marked correct; the label matching a plan target wins.
	boxes := []BoundingBox{
		{Label: "cache", Correct: true},
		{Label: "the resolver box", Correct: true},
	}
	got, err := reconcileBoxes(boxes, []string{"resolver"}, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Correct || !got[1].Correct {
		t.Fatalf("expected label match to win: %+v", got)
	}
}

func TestReconcileBoxes_FirstMarkedFallback(t *testing.T) {
	boxes := []BoundingBox{
		{Label: "widget", Correct: true},
		{Label: "gizmo", Correct: true},
	}
	got, err := reconcileBoxes(boxes, []string{"resolver"}, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got[0].Correct || got[1].Correct {
		t.Fatalf("expected first marked box to win: %+v", got)
	}
}

func TestReconcileBoxes_ZeroCorrectIsTerminal(t *testing.T) {
	boxes := []BoundingBox{
		{Label: "widget", Correct: false},
		{Label: "gizmo", Correct: false},
	}
	_, err := reconcileBoxes(boxes, []string{"resolver"}, "p1")
	var rerr *ReconciliationError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected ReconciliationError, got %v", err)
	}
}

func TestReconcileBoxes_ZeroMarkedButLabelMatches(t *testing.T) {
	boxes := []BoundingBox{
		{Label: "cache", Correct: false},
		{Label: "root server", Correct: false},
	}
	got, err := reconcileBoxes(boxes, []string{"root server"}, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Correct || !got[1].Correct {
		t.Fatalf("expected label match to recover the answer: %+v", got)
	}
}
