package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"vidquiz/internal/llm"
)

func analysisJSON(plans string) json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"transcript_segments": [
			{"start_time":"00:00","end_time":"00:30","spoken_text":"Welcome.","visual_description":"title slide","salient_event":false,"event_type":""},
			{"start_time":"00:30","end_time":"01:30","spoken_text":"DNS translates names.","visual_description":"DNS diagram","salient_event":true,"event_type":"diagram"},
			{"start_time":"01:30","end_time":"03:00","spoken_text":"Resolvers walk the tree.","visual_description":"resolver animation","salient_event":false,"event_type":""}
		],
		"concept_timeline": [
			{"concept":"DNS","first_mention":"00:30","explanations":["00:45"]},
			{"concept":"resolver","first_mention":"01:30","explanations":["01:45","02:10"]}
		],
		"video_summary": "Intro to DNS resolution.",
		"question_plans": [%s]
	}`, plans))
}

func validPlanJSON() string {
	return `{
		"question_type":"multiple-choice",
		"timestamp":"01:35",
		"learning_objective":"Recall what DNS does",
		"content_context":"DNS translates names to addresses",
		"key_concepts":["DNS"],
		"bloom_level":"remember",
		"difficulty":"easy",
		"rationale":"Checks the core definition right after it is explained",
		"transcript_start":"00:30",
		"transcript_end":"01:30"
	}`
}

func TestPlan_ValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: analysisJSON(validPlanJSON())},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	result, err := svc.Plan(context.Background(), Request{VideoURI: "https://example.com/v.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Plans) != 1 {
		t.Fatalf("expected 1 plan, got %d", len(result.Plans))
	}
	p := result.Plans[0]
	if p.Type != TypeMultipleChoice {
		t.Fatalf("expected multiple-choice, got %s", p.Type)
	}
	if p.Timestamp != 95 {
		t.Fatalf("expected timestamp 95s, got %d", p.Timestamp)
	}
	if p.TranscriptRef.Start != 30 || p.TranscriptRef.End != 90 {
		t.Fatalf("unexpected transcript ref: %+v", p.TranscriptRef)
	}
	if p.ID == "" {
		t.Fatal("plan should receive an id")
	}
	if p.BloomLevel != BloomRemember || p.Difficulty != DifficultyEasy {
		t.Fatalf("unexpected taxonomy fields: %s / %s", p.BloomLevel, p.Difficulty)
	}

	if result.Transcript.Duration() != 180 {
		t.Fatalf("expected duration 180, got %d", result.Transcript.Duration())
	}
	if len(result.Transcript.Concepts) != 2 {
		t.Fatalf("expected 2 concepts, got %d", len(result.Transcript.Concepts))
	}
	if result.Summary != "Intro to DNS resolution." {
		t.Fatalf("unexpected summary: %q", result.Summary)
	}

	// The request must carry the video for multimodal analysis.
	if mock.Calls[0].Video == nil || mock.Calls[0].Video.URI != "https://example.com/v.mp4" {
		t.Fatal("expected video input on the analysis request")
	}
}

func TestPlan_InvalidPlansDroppedWithErrors(t *testing.T) {
	badType := `{
		"question_type":"essay",
		"timestamp":"01:00",
		"learning_objective":"x",
		"content_context":"x",
		"key_concepts":[],
		"bloom_level":"remember",
		"difficulty":"easy",
		"rationale":"x",
		"transcript_start":"00:30",
		"transcript_end":"01:00"
	}`
	outOfRange := `{
		"question_type":"true-false",
		"timestamp":"01:00",
		"learning_objective":"x",
		"content_context":"x",
		"key_concepts":[],
		"bloom_level":"remember",
		"difficulty":"easy",
		"rationale":"x",
		"transcript_start":"08:00",
		"transcript_end":"09:00"
	}`

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: analysisJSON(validPlanJSON() + "," + badType + "," + outOfRange)},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	result, err := svc.Plan(context.Background(), Request{VideoURI: "v.mp4"})
	if err != nil {
		t.Fatalf("stage should survive partial plan failure: %v", err)
	}
	if len(result.Plans) != 1 {
		t.Fatalf("expected 1 surviving plan, got %d", len(result.Plans))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 recorded errors, got %d", len(result.Errors))
	}
}

func TestPlan_AllPlansInvalidIsFatal(t *testing.T) {
	badPlan := `{
		"question_type":"essay",
		"timestamp":"01:00",
		"learning_objective":"x",
		"content_context":"x",
		"key_concepts":[],
		"bloom_level":"remember",
		"difficulty":"easy",
		"rationale":"x",
		"transcript_start":"00:30",
		"transcript_end":"01:00"
	}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: analysisJSON(badPlan)},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Plan(context.Background(), Request{VideoURI: "v.mp4"})
	if err == nil {
		t.Fatal("expected fatal error")
	}
	var noPlans *ErrNoPlans
	if !errors.As(err, &noPlans) {
		t.Fatalf("expected ErrNoPlans, got: %T", err)
	}
	if len(noPlans.Errors) != 1 {
		t.Fatalf("expected 1 recorded error, got %d", len(noPlans.Errors))
	}
}

func TestPlan_EmptyTranscriptIsFatal(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{
			"transcript_segments": [],
			"concept_timeline": [],
			"video_summary": "",
			"question_plans": []
		}`)},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Plan(context.Background(), Request{VideoURI: "v.mp4"})
	if err == nil {
		t.Fatal("expected error for empty transcript")
	}
}

func TestPlan_HotspotRequiresFrameAndTargets(t *testing.T) {
	missingFrame := `{
		"question_type":"hotspot",
		"timestamp":"01:00",
		"learning_objective":"Identify the resolver in the diagram",
		"content_context":"DNS diagram",
		"key_concepts":["DNS"],
		"bloom_level":"understand",
		"difficulty":"medium",
		"rationale":"The diagram labels each component",
		"transcript_start":"00:30",
		"transcript_end":"01:30"
	}`
	withFrame := `{
		"question_type":"hotspot",
		"timestamp":"01:00",
		"learning_objective":"Identify the resolver in the diagram",
		"content_context":"DNS diagram",
		"key_concepts":["DNS"],
		"bloom_level":"understand",
		"difficulty":"medium",
		"rationale":"The diagram labels each component",
		"transcript_start":"00:30",
		"transcript_end":"01:30",
		"frame_timestamp":"00:45",
		"target_objects":["resolver","root server"]
	}`

	mock := llm.NewMockProvider(
		llm.MockResponse{Content: analysisJSON(missingFrame + "," + withFrame)},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	result, err := svc.Plan(context.Background(), Request{VideoURI: "v.mp4", EnableVisualQuestions: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Plans) != 1 {
		t.Fatalf("expected 1 surviving plan, got %d", len(result.Plans))
	}
	if result.Plans[0].FrameTimestamp != 45 {
		t.Fatalf("expected frame timestamp 45, got %d", result.Plans[0].FrameTimestamp)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 recorded error, got %d", len(result.Errors))
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    QuestionType
		wantErr bool
	}{
		{"multiple-choice", TypeMultipleChoice, false},
		{"multiple_choice", TypeMultipleChoice, false},
		{"TRUE_FALSE", TypeTrueFalse, false},
		{"true-false", TypeTrueFalse, false},
		{"hotspot", TypeHotspot, false},
		{"matching", TypeMatching, false},
		{"sequencing", TypeSequencing, false},
		{"essay", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseBloomLevel(t *testing.T) {
	for _, l := range AllBloomLevels {
		got, err := ParseBloomLevel(string(l))
		if err != nil || got != l {
			t.Fatalf("ParseBloomLevel(%q) = %q, %v", l, got, err)
		}
	}
	if _, err := ParseBloomLevel("memorize"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestParseDifficulty_DefaultsToMedium(t *testing.T) {
	d, err := ParseDifficulty("")
	if err != nil || d != DifficultyMedium {
		t.Fatalf("expected medium default, got %q, %v", d, err)
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestPlan_HotspotDroppedWhenVisualDisabled(t *testing.T) {
	hotspot := `{
		"question_type":"hotspot",
		"timestamp":"00:45",
		"learning_objective":"Locate the resolver",
		"content_context":"Resolver in the diagram",
		"key_concepts":["resolver"],
		"bloom_level":"remember",
		"difficulty":"easy",
		"rationale":"x",
		"transcript_start":"00:30",
		"transcript_end":"01:30",
		"frame_timestamp":"00:45",
		"target_objects":["resolver"]
	}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: analysisJSON(validPlanJSON() + "," + hotspot)},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	result, err := svc.Plan(context.Background(), Request{VideoURI: "v.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Plans) != 1 {
		t.Fatalf("expected 1 surviving plan, got %d", len(result.Plans))
	}
	if result.Plans[0].Type == TypeHotspot {
		t.Fatal("hotspot plan survived with visual questions disabled")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 recorded error, got %d", len(result.Errors))
	}
	if result.Errors[0].Reason != "visual questions disabled for this run" {
		t.Fatalf("unexpected drop reason: %q", result.Errors[0].Reason)
	}
}

func TestPlan_TruncatesBeyondMaxQuestions(t *testing.T) {
	plans := validPlanJSON() + "," + validPlanJSON() + "," + validPlanJSON()
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: analysisJSON(plans)},
	)
	svc := NewService(mock, DefaultConfig(), nil)

	result, err := svc.Plan(context.Background(), Request{VideoURI: "v.mp4", MaxQuestions: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Plans) != 1 {
		t.Fatalf("expected plans truncated to 1, got %d", len(result.Plans))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 recorded errors for dropped plans, got %d", len(result.Errors))
	}
	for _, e := range result.Errors {
		if e.Reason != "exceeds requested maximum of 1 questions" {
			t.Fatalf("unexpected drop reason: %q", e.Reason)
		}
	}
}
