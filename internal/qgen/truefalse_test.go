package qgen

import (
	"encoding/json"
	"errors"
	"testing"

	"vidquiz/internal/plan"
)

func TestTrueFalse_NormalizeValid(t *testing.T) {
	proc := TrueFalseProcessor{}
	raw := json.RawMessage(`{
		"statement": "DNS translates domain names into IP addresses.",
		"answer": true,
		"explanation": "DNS exists precisely to map human-readable names onto addresses."
	}`)

	q, err := proc.Normalize(raw, testPlan(plan.TypeTrueFalse))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TrueFalse == nil || !q.TrueFalse.Answer {
		t.Fatal("expected answer true")
	}
	if q.Question != "DNS translates domain names into IP addresses." {
		t.Fatalf("statement should become the question text, got %q", q.Question)
	}
}

func TestTrueFalse_FalseAnswerPreserved(t *testing.T) {
	proc := TrueFalseProcessor{}
	raw := json.RawMessage(`{
		"statement": "DNS encrypts all web traffic.",
		"answer": false,
		"explanation": "DNS only resolves names; encryption is TLS's job, not DNS's."
	}`)

	q, err := proc.Normalize(raw, testPlan(plan.TypeTrueFalse))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.TrueFalse.Answer {
		t.Fatal("expected answer false")
	}
}

func TestTrueFalse_EmptyStatementRejected(t *testing.T) {
	proc := TrueFalseProcessor{}
	raw := json.RawMessage(`{
		"statement": "",
		"answer": true,
		"explanation": "An explanation that is certainly long enough to pass."
	}`)

	_, err := proc.Normalize(raw, testPlan(plan.TypeTrueFalse))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestTrueFalse_ShortExplanationRejected(t *testing.T) {
	proc := TrueFalseProcessor{}
	raw := json.RawMessage(`{
		"statement": "DNS translates names.",
		"answer": true,
		"explanation": "Yes it does."
	}`)

	_, err := proc.Normalize(raw, testPlan(plan.TypeTrueFalse))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for short explanation, got %v", err)
	}
}
