package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/qgen"
)

func verdictJSON(overall int, dimScores map[string]int) json.RawMessage {
	dims := make(map[string]any, len(AllDimensions))
	for _, name := range AllDimensions {
		score := 80
		if s, ok := dimScores[name]; ok {
			score = s
		}
		dims[name] = map[string]any{
			"score":      score,
			"assessment": fmt.Sprintf("The %s holds up under review.", name),
			"evidence":   []string{"direct check against the stated objective"},
			"concerns":   []string{},
		}
	}
	out, _ := json.Marshal(map[string]any{
		"dimensions":         dims,
		"overall_score":      overall,
		"overall_assessment": "A solid question with minor room to tighten wording.",
		"strengths":          []string{"tests the stated objective directly"},
		"improvements":       []string{"tighten the stem"},
		"confidence":         0.85,
	})
	return out
}

func testQuestion(id string) *qgen.GeneratedQuestion {
	return &qgen.GeneratedQuestion{
		ID:          id,
		PlanID:      "p1",
		Timestamp:   95,
		Type:        plan.TypeMultipleChoice,
		Question:    "What does DNS do?",
		Explanation: "DNS maps names to addresses.",
		BloomLevel:  plan.BloomRemember,
		MultipleChoice: &qgen.MultipleChoice{
			Options:      []string{"Maps names to addresses", "Encrypts traffic", "Routes packets", "Stores pages"},
			CorrectIndex: 0,
		},
	}
}

func testVerifyPlan() plan.Plan {
	return plan.Plan{
		ID:                "p1",
		Type:              plan.TypeMultipleChoice,
		LearningObjective: "Recall what DNS does",
		ContentContext:    "DNS translates names to addresses",
		BloomLevel:        plan.BloomRemember,
		Difficulty:        plan.DifficultyEasy,
	}
}

func TestVerifyAll_PassingVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdictJSON(82, nil)})
	v := New(mock, DefaultConfig(), nil)

	report := v.VerifyAll(context.Background(), []*qgen.GeneratedQuestion{testQuestion("q1")}, []plan.Plan{testVerifyPlan()})

	if len(report.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", report.Errors)
	}
	if len(report.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(report.Results))
	}
	res := report.Results[0]
	if !res.Passed {
		t.Fatal("expected question to pass")
	}
	if res.QuestionID != "q1" || res.OverallScore != 82 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if len(res.Dimensions) != 6 {
		t.Fatalf("expected 6 dimensions, got %d", len(res.Dimensions))
	}
}

func TestVerifyAll_OverallBelowThresholdFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdictJSON(74, nil)})
	v := New(mock, DefaultConfig(), nil)

	report := v.VerifyAll(context.Background(), []*qgen.GeneratedQuestion{testQuestion("q1")}, []plan.Plan{testVerifyPlan()})
	if report.Results[0].Passed {
		t.Fatal("overall 74 must fail the 75 threshold")
	}
}

func TestVerifyAll_WeakDimensionFailsDespiteHighOverall(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdictJSON(85, map[string]int{
		DimMisconceptionHandling: 55,
	})})
	v := New(mock, DefaultConfig(), nil)

	report := v.VerifyAll(context.Background(), []*qgen.GeneratedQuestion{testQuestion("q1")}, []plan.Plan{testVerifyPlan()})
	if report.Results[0].Passed {
		t.Fatal("a dimension under 60 must fail the question regardless of overall score")
	}
}

func TestVerifyAll_DimensionAtThresholdPasses(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdictJSON(75, map[string]int{
		DimExplanationQuality: 60,
	})})
	v := New(mock, DefaultConfig(), nil)

	report := v.VerifyAll(context.Background(), []*qgen.GeneratedQuestion{testQuestion("q1")}, []plan.Plan{testVerifyPlan()})
	if !report.Results[0].Passed {
		t.Fatal("overall 75 and dimension 60 sit exactly on the thresholds and must pass")
	}
}

func TestVerifyAll_MissingDimensionIsError(t *testing.T) {
	out := verdictJSON(80, nil)
	var m map[string]any
	_ = json.Unmarshal(out, &m)
	delete(m["dimensions"].(map[string]any), DimTaxonomyAlignment)
	broken, _ := json.Marshal(m)

	mock := llm.NewMockProvider(llm.MockResponse{Content: broken})
	v := New(mock, DefaultConfig(), nil)

	report := v.VerifyAll(context.Background(), []*qgen.GeneratedQuestion{testQuestion("q1")}, []plan.Plan{testVerifyPlan()})
	if len(report.Errors) != 1 || len(report.Results) != 0 {
		t.Fatalf("expected schema violation to surface as VerifyError, got %+v", report)
	}
}

func TestVerifyAll_FailureDoesNotAbortBatch(t *testing.T) {
	mock := llm.NewMockProvider()
	// Two verdicts and one provider failure, consumed FIFO by two
	// questions at a time.
	mock.AddResponse(llm.MockResponse{Content: verdictJSON(80, nil)})
	mock.AddResponse(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	mock.AddResponse(llm.MockResponse{Content: verdictJSON(90, nil)})

	v := New(mock, DefaultConfig(), nil)
	questions := []*qgen.GeneratedQuestion{testQuestion("q1"), testQuestion("q2"), testQuestion("q3")}

	report := v.VerifyAll(context.Background(), questions, []plan.Plan{testVerifyPlan()})
	if len(report.Results)+len(report.Errors) != 3 {
		t.Fatalf("settlement broken: %d results + %d errors", len(report.Results), len(report.Errors))
	}
	if len(report.Results) != 2 || len(report.Errors) != 1 {
		t.Fatalf("expected 2 results and 1 error, got %d and %d", len(report.Results), len(report.Errors))
	}
}

func TestReport_Passed(t *testing.T) {
	r := Report{Results: []Result{
		{QuestionID: "a", Passed: true},
		{QuestionID: "b", Passed: false},
		{QuestionID: "c", Passed: true},
	}}
	ids := r.Passed()
	if len(ids) != 2 {
		t.Fatalf("expected 2 passing ids, got %v", ids)
	}
}

func TestVerifyAll_MissingPlanRecordsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: verdictJSON(82, nil)})
	v := New(mock, DefaultConfig(), nil)

	q := testQuestion("q1")
	q.PlanID = "unknown"
	report := v.VerifyAll(context.Background(), []*qgen.GeneratedQuestion{q}, []plan.Plan{testVerifyPlan()})

	if len(report.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(report.Results))
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(report.Errors))
	}
	if report.Errors[0].QuestionID != "q1" {
		t.Fatalf("error attributed to wrong question: %+v", report.Errors[0])
	}
	// No rubric call should be issued for an unmatchable question.
	if mock.CallCount() != 0 {
		t.Fatalf("expected 0 provider calls, got %d", mock.CallCount())
	}
}
