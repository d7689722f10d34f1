package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"vidquiz/internal/config"
	"vidquiz/internal/llm"
	"vidquiz/internal/progress"
	"vidquiz/internal/storage"
)

func analysisResponse(planCount int) llm.MockResponse {
	plans := ""
	for i := 0; i < planCount; i++ {
		if i > 0 {
			plans += ","
		}
		plans += fmt.Sprintf(`{
			"question_type": "multiple-choice",
			"timestamp": "01:%02d",
			"learning_objective": "Recall concept %d",
			"content_context": "DNS translates names to addresses",
			"key_concepts": ["DNS"],
			"bloom_level": "remember",
			"difficulty": "easy",
			"rationale": "Checks the definition right after it is explained",
			"transcript_start": "00:30",
			"transcript_end": "01:30"
		}`, 10+i, i)
	}

	return llm.MockResponse{Content: json.RawMessage(`{
		"transcript_segments": [
			{"start_time":"00:00","end_time":"00:30","spoken_text":"Welcome.","visual_description":"title slide","salient_event":false,"event_type":""},
			{"start_time":"00:30","end_time":"01:30","spoken_text":"DNS translates names.","visual_description":"DNS diagram","salient_event":true,"event_type":"diagram"},
			{"start_time":"01:30","end_time":"03:00","spoken_text":"Resolvers walk the tree.","visual_description":"resolver animation","salient_event":false,"event_type":""}
		],
		"concept_timeline": [{"concept":"DNS","first_mention":"00:30","explanations":["00:45"]}],
		"video_summary": "Intro to DNS resolution.",
		"question_plans": [` + plans + `]
	}`)}
}

func mcqResponse(options int) llm.MockResponse {
	opts := `["Maps names to addresses","Encrypts traffic","Routes packets","Stores pages"]`
	if options == 3 {
		opts = `["Maps names to addresses","Encrypts traffic","Routes packets"]`
	}
	return llm.MockResponse{Content: json.RawMessage(`{
		"question": "What does DNS do?",
		"options": ` + opts + `,
		"correct_index": 0,
		"explanation": "DNS maps human-readable names to IP addresses."
	}`)}
}

func verdictResponse(overall int) llm.MockResponse {
	dims := ""
	for i, name := range []string{
		"educational_value", "clarity_precision", "cognitive_appropriateness",
		"taxonomy_alignment", "misconception_handling", "explanation_quality",
	} {
		if i > 0 {
			dims += ","
		}
		dims += fmt.Sprintf(`"%s": {"score": %d, "assessment": "Holds up under review.", "evidence": [], "concerns": []}`, name, overall)
	}
	return llm.MockResponse{Content: json.RawMessage(fmt.Sprintf(`{
		"dimensions": {%s},
		"overall_score": %d,
		"overall_assessment": "A reasonable question overall.",
		"strengths": [],
		"improvements": [],
		"confidence": 0.8
	}`, dims, overall))}
}

func testRequest() Request {
	return Request{
		CourseID:       "cs101",
		VideoSourceURL: "https://example.com/v.mp4",
		Difficulty:     "easy",
	}
}

func newTestPipeline(mock *llm.MockProvider, repo storage.QuestionRepo) *Pipeline {
	return New(Options{
		Provider:  mock,
		Config:    config.Default(),
		Questions: repo,
		Tracker:   progress.NewMemoryTracker(),
	})
}

func TestRun_EndToEnd(t *testing.T) {
	mock := llm.NewMockProvider(
		analysisResponse(2),
		mcqResponse(4),
		mcqResponse(4),
	)
	p := newTestPipeline(mock, nil)

	resp := p.Run(context.Background(), testRequest())

	if !resp.Success {
		t.Fatalf("expected success, errors: %+v", resp)
	}
	if resp.Planning.Planned != 2 {
		t.Fatalf("expected 2 plans, got %d", resp.Planning.Planned)
	}
	if resp.Generation.Succeeded != 2 || len(resp.FinalQuestions) != 2 {
		t.Fatalf("expected 2 final questions, got %d generated, %d final",
			resp.Generation.Succeeded, len(resp.FinalQuestions))
	}
	if resp.Generation.TypeBreakdown["multiple-choice"] != 2 {
		t.Fatalf("wrong type breakdown: %v", resp.Generation.TypeBreakdown)
	}
	if resp.VideoSummary != "Intro to DNS resolution." || resp.TotalDuration != 180 {
		t.Fatalf("video fields not carried: %q, %d", resp.VideoSummary, resp.TotalDuration)
	}
	if resp.Metadata.SuccessRate != 1.0 {
		t.Fatalf("wrong success rate: %f", resp.Metadata.SuccessRate)
	}
	for _, stage := range []string{"planning", "generation", "storage"} {
		if _, ok := resp.Metadata.StageTimings[stage]; !ok {
			t.Fatalf("missing timing for stage %q", stage)
		}
	}
	if _, ok := resp.Metadata.StageTimings["verification"]; ok {
		t.Fatal("verification timing recorded for a run that skipped it")
	}
}

func TestRun_PlanningFailureIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	p := newTestPipeline(mock, nil)

	resp := p.Run(context.Background(), testRequest())
	if resp.Success {
		t.Fatal("planning failure must fail the run")
	}
	if len(resp.Planning.Errors) == 0 {
		t.Fatal("expected recorded planning error")
	}
}

func TestRun_GenerationLossesDoNotFailTheRun(t *testing.T) {
	mock := llm.NewMockProvider(
		analysisResponse(2),
		mcqResponse(4),
		mcqResponse(3), // structurally invalid
	)
	p := newTestPipeline(mock, nil)

	resp := p.Run(context.Background(), testRequest())
	if !resp.Success {
		t.Fatal("a partial generation result is still a successful run")
	}
	if resp.Generation.Succeeded != 1 || len(resp.Generation.Errors) != 1 {
		t.Fatalf("expected 1 success and 1 error, got %d and %d",
			resp.Generation.Succeeded, len(resp.Generation.Errors))
	}
	if resp.Metadata.SuccessRate != 0.5 {
		t.Fatalf("wrong success rate: %f", resp.Metadata.SuccessRate)
	}
}

func TestRun_VerificationRejectsFailingQuestions(t *testing.T) {
	mock := llm.NewMockProvider(
		analysisResponse(2),
		mcqResponse(4),
		mcqResponse(4),
		verdictResponse(50),
		verdictResponse(50),
	)
	p := newTestPipeline(mock, nil)

	req := testRequest()
	req.EnableQualityVerification = true
	resp := p.Run(context.Background(), req)

	if !resp.Success {
		t.Fatal("rejections must not fail the run")
	}
	if resp.Verification.Rejected != 2 || len(resp.FinalQuestions) != 0 {
		t.Fatalf("expected both questions rejected, got %d rejected, %d final",
			resp.Verification.Rejected, len(resp.FinalQuestions))
	}
}

func TestRun_VerificationPassesGoodQuestions(t *testing.T) {
	mock := llm.NewMockProvider(
		analysisResponse(1),
		mcqResponse(4),
		verdictResponse(85),
	)
	p := newTestPipeline(mock, nil)

	req := testRequest()
	req.EnableQualityVerification = true
	resp := p.Run(context.Background(), req)

	if resp.Verification.Passed != 1 || len(resp.FinalQuestions) != 1 {
		t.Fatalf("expected 1 passing question, got %d passed, %d final",
			resp.Verification.Passed, len(resp.FinalQuestions))
	}
}

func TestRun_PersistsBatch(t *testing.T) {
	s, err := storage.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	mock := llm.NewMockProvider(
		analysisResponse(1),
		mcqResponse(4),
	)
	p := newTestPipeline(mock, s.Questions())

	resp := p.Run(context.Background(), testRequest())
	if !resp.Success || !resp.Storage.Persisted {
		t.Fatalf("expected persisted run: %+v", resp.Storage)
	}

	n, err := s.Questions().Count(context.Background(), "cs101")
	if err != nil || n != 1 {
		t.Fatalf("expected 1 stored question, got %d, %v", n, err)
	}
}

func TestRun_CancelledContextFailsPlanning(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := llm.NewMockProvider(analysisResponse(1))
	p := newTestPipeline(mock, nil)

	// The mock ignores ctx, so planning itself succeeds here; the point
	// is that Run never panics or hangs with a dead context and still
	// returns a settled response.
	resp := p.Run(ctx, testRequest())
	if resp == nil {
		t.Fatal("expected a settled response")
	}
	if resp.Generation.Requested != resp.Generation.Succeeded+len(resp.Generation.Errors) {
		t.Fatalf("generation did not settle every plan: %+v", resp.Generation)
	}
}
