package qgen

import (
	"context"
	"strings"
	"testing"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/progress"
)

func TestRouter_FullSettlement(t *testing.T) {
	// Three plans of the same type; one canned response is structurally
	// invalid. Whichever goroutine draws it, the batch must settle as
	// exactly two questions and one error.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqJSON(4, 0)},
		llm.MockResponse{Content: mcqJSON(3, 0)},
		llm.MockResponse{Content: mcqJSON(4, 2)},
	)
	tracker := progress.NewMemoryTracker()
	r := NewRouter(mock, 0, tracker, nil)

	plans := []plan.Plan{testPlan(plan.TypeMultipleChoice), testPlan(plan.TypeMultipleChoice), testPlan(plan.TypeMultipleChoice)}
	plans[1].ID = "p2"
	plans[2].ID = "p3"

	res := r.GenerateAll(context.Background(), "v.mp4", testQGenTranscript(), plans)

	if len(res.Questions)+len(res.Errors) != len(plans) {
		t.Fatalf("settlement broken: %d questions + %d errors != %d plans",
			len(res.Questions), len(res.Errors), len(plans))
	}
	if len(res.Questions) != 2 || len(res.Errors) != 1 {
		t.Fatalf("expected 2 questions and 1 error, got %d and %d", len(res.Questions), len(res.Errors))
	}

	if tracker.Count(progress.StatusStarted) != 3 {
		t.Fatalf("expected 3 started events, got %d", tracker.Count(progress.StatusStarted))
	}
	if tracker.Count(progress.StatusCompleted) != 2 || tracker.Count(progress.StatusFailed) != 1 {
		t.Fatalf("unexpected completion events: %d completed, %d failed",
			tracker.Count(progress.StatusCompleted), tracker.Count(progress.StatusFailed))
	}
}

func TestRouter_UnsupportedTypeSettlesAsError(t *testing.T) {
	mock := llm.NewMockProvider()
	r := NewRouter(mock, 0, nil, nil)

	p := testPlan(plan.QuestionType("essay"))
	res := r.GenerateAll(context.Background(), "v.mp4", testQGenTranscript(), []plan.Plan{p})

	if len(res.Errors) != 1 || len(res.Questions) != 0 {
		t.Fatalf("expected 1 error, got %d questions and %d errors", len(res.Questions), len(res.Errors))
	}
	if mock.CallCount() != 0 {
		t.Fatal("unsupported type must not reach the provider")
	}
}

func TestRouter_ProviderFailureSettlesAsError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	r := NewRouter(mock, 0, nil, nil)

	res := r.GenerateAll(context.Background(), "v.mp4", testQGenTranscript(), []plan.Plan{testPlan(plan.TypeMultipleChoice)})

	if len(res.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(res.Errors))
	}
	if res.Errors[0].PlanID != "p1" || res.Errors[0].Type != plan.TypeMultipleChoice {
		t.Fatalf("error missing plan identity: %+v", res.Errors[0])
	}
}

func TestRouter_QuestionsSortedByTimestamp(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqJSON(4, 0)},
		llm.MockResponse{Content: mcqJSON(4, 0)},
		llm.MockResponse{Content: mcqJSON(4, 0)},
	)
	r := NewRouter(mock, 0, nil, nil)

	plans := []plan.Plan{testPlan(plan.TypeMultipleChoice), testPlan(plan.TypeMultipleChoice), testPlan(plan.TypeMultipleChoice)}
	plans[0].Timestamp = 150
	plans[1].ID, plans[1].Timestamp = "p2", 30
	plans[2].ID, plans[2].Timestamp = "p3", 95

	res := r.GenerateAll(context.Background(), "v.mp4", testQGenTranscript(), plans)
	if len(res.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d (errors: %v)", len(res.Questions), res.Errors)
	}
	for i := 1; i < len(res.Questions); i++ {
		if res.Questions[i].Timestamp < res.Questions[i-1].Timestamp {
			t.Fatalf("questions not ordered by timestamp: %d before %d",
				res.Questions[i-1].Timestamp, res.Questions[i].Timestamp)
		}
	}
}

func TestRouter_EmptyPlans(t *testing.T) {
	r := NewRouter(llm.NewMockProvider(), 0, nil, nil)
	res := r.GenerateAll(context.Background(), "v.mp4", testQGenTranscript(), nil)
	if len(res.Questions) != 0 || len(res.Errors) != 0 {
		t.Fatal("empty input should settle as empty result")
	}
}

func TestRouter_WindowRadiusBoundsContext(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mcqJSON(4, 0)},
	)
	r := NewRouter(mock, 5, nil, nil)

	res := r.GenerateAll(context.Background(), "v.mp4", testQGenTranscript(), []plan.Plan{testPlan(plan.TypeMultipleChoice)})
	if len(res.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d (errors: %v)", len(res.Questions), res.Errors)
	}

	// Timestamp 95 with radius 5 bounds the context to [90, 100].
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Transcript context (01:30 - 01:40)") {
		t.Fatalf("prompt not bounded by the configured radius:\n%s", msg)
	}

	// The default radius yields the wider [65, 125] window.
	mock2 := llm.NewMockProvider(
		llm.MockResponse{Content: mcqJSON(4, 0)},
	)
	r2 := NewRouter(mock2, 0, nil, nil)
	r2.GenerateAll(context.Background(), "v.mp4", testQGenTranscript(), []plan.Plan{testPlan(plan.TypeMultipleChoice)})
	msg2 := mock2.Calls[0].Messages[0].Content
	if !strings.Contains(msg2, "Transcript context (01:05 - 02:05)") {
		t.Fatalf("default radius window changed:\n%s", msg2)
	}
}
