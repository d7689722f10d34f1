package storage

import (
	"context"
	"testing"

	"vidquiz/internal/llm"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestSaveBatchAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.Questions()
	ctx := context.Background()

	mcRow, err := Transform(mcQuestion())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	batch := Batch{
		CourseID: "cs101",
		VideoURL: "https://example.com/v.mp4",
		Rows:     []Row{*mcRow},
	}
	if err := repo.SaveBatch(ctx, batch); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	got, err := repo.List(ctx, "cs101", 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 question, got %d", len(got))
	}
	if got[0].QuestionID != "q-mc" || got[0].Type != "multiple-choice" {
		t.Fatalf("unexpected row: %+v", got[0])
	}
	if got[0].CourseID != "cs101" || got[0].VideoURL != "https://example.com/v.mp4" {
		t.Fatalf("batch fields not applied: %+v", got[0])
	}

	n, err := repo.Count(ctx, "cs101")
	if err != nil || n != 1 {
		t.Fatalf("count = %d, %v", n, err)
	}

	other, err := repo.List(ctx, "other-course", 0)
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Fatal("course filter not applied")
	}
}

func TestSaveBatch_HotspotBoxes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	row := Row{
		QuestionID:     "q-hs",
		Timestamp:      45,
		Question:       "Click the resolver.",
		Type:           "hotspot",
		CorrectAnswer:  "resolver",
		Explanation:    "The resolver issues the queries.",
		HasVisualAsset: true,
		Boxes: []BoxRow{
			{X: 0.2, Y: 0.1, Width: 0.2, Height: 0.2, Label: "resolver", Correct: true, Confidence: 0.9},
			{X: 0.6, Y: 0.5, Width: 0.2, Height: 0.2, Label: "root server"},
		},
	}

	if err := s.Questions().SaveBatch(ctx, Batch{CourseID: "cs101", VideoURL: "v.mp4", Rows: []Row{row}}); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	n, err := s.Client().QuestionBox.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count boxes: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 boxes in the parallel table, got %d", n)
	}
}

func TestSaveBatch_DuplicateQuestionIDRollsBack(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	row := Row{QuestionID: "dup", Question: "x", Type: "true-false", CorrectAnswer: "0", Explanation: "y"}
	if err := s.Questions().SaveBatch(ctx, Batch{CourseID: "c", VideoURL: "v", Rows: []Row{row}}); err != nil {
		t.Fatalf("first save: %v", err)
	}

	fresh := Row{QuestionID: "fresh", Question: "x", Type: "true-false", CorrectAnswer: "1", Explanation: "y"}
	err := s.Questions().SaveBatch(ctx, Batch{CourseID: "c", VideoURL: "v", Rows: []Row{fresh, row}})
	if err == nil {
		t.Fatal("expected duplicate question_id to fail")
	}

	// The whole second batch must roll back, including the fresh row.
	n, _ := s.Questions().Count(ctx, "c")
	if n != 1 {
		t.Fatalf("expected 1 question after rollback, got %d", n)
	}
}

func TestEventRepo_AppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	logs := []llm.RequestLog{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "planning", InputTokens: 1000, OutputTokens: 500, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "planning", InputTokens: 900, OutputTokens: 400, Success: false, ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "verify", InputTokens: 300, OutputTokens: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "verify", InputTokens: 250, OutputTokens: 150, Success: true},
	}
	for _, l := range logs {
		if err := repo.AppendLLMRequest(ctx, l); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 provider/purpose groups, got %d", len(stats))
	}

	// Sorted by provider then purpose: gemini/planning first.
	first := stats[0]
	if first.Provider != "gemini" || first.Purpose != "planning" {
		t.Fatalf("unexpected first group: %+v", first)
	}
	if first.Requests != 2 || first.Failures != 1 {
		t.Fatalf("wrong aggregation: %+v", first)
	}
	if first.InputTokens != 1900 || first.OutputTokens != 900 {
		t.Fatalf("wrong token sums: %+v", first)
	}
}

func TestEventRepo_RecentAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		log := llm.RequestLog{
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Purpose:      "planning",
			InputTokens:  100 * (i + 1),
			OutputTokens: 50,
			Success:      true,
			RequestBody:  "prompt body",
			ResponseBody: `{"plans":[]}`,
		}
		if err := repo.AppendLLMRequest(ctx, log); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Fatalf("events not ordered newest first: %d, %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].InputTokens != 300 {
		t.Fatalf("expected newest event with 300 input tokens, got %d", events[0].InputTokens)
	}

	got, err := repo.Get(ctx, events[1].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event, got nil")
	}
	if got.RequestBody != "prompt body" || got.ResponseBody != `{"plans":[]}` {
		t.Fatalf("bodies not persisted: %+v", got)
	}

	missing, err := repo.Get(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing sequence, got %+v", missing)
	}
}

func TestEventRepo_StatsByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	logs := []llm.RequestLog{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "planning", InputTokens: 1000, OutputTokens: 500, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "verify", InputTokens: 200, OutputTokens: 100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "verify", InputTokens: 300, OutputTokens: 150, Success: true},
	}
	for _, l := range logs {
		if err := repo.AppendLLMRequest(ctx, l); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.StatsByModel(ctx)
	if err != nil {
		t.Fatalf("stats by model: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 models, got %d", len(stats))
	}
	// Sorted by model name: gemini-2.5-flash first.
	if stats[0].Model != "gemini-2.5-flash" || stats[0].Requests != 2 {
		t.Fatalf("unexpected first model stat: %+v", stats[0])
	}
	if stats[0].InputTokens != 1200 || stats[0].OutputTokens != 600 {
		t.Fatalf("wrong token sums: %+v", stats[0])
	}
	if stats[1].Model != "gpt-4o-mini" || stats[1].Requests != 1 {
		t.Fatalf("unexpected second model stat: %+v", stats[1])
	}
}
