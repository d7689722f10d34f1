package qgen

import (
	"encoding/json"
	"errors"
	"testing"

	"vidquiz/internal/plan"
)

func sequencingJSON(items string) json.RawMessage {
	return json.RawMessage(`{
		"question": "Order the steps of a DNS lookup.",
		"items": ` + items + `,
		"explanation": "The resolver walks the hierarchy from root to authoritative server before answering."
	}`)
}

func TestSequencing_NormalizeValid(t *testing.T) {
	proc := SequencingProcessor{}
	raw := sequencingJSON(`["Client asks the resolver", "Resolver queries a root server", "Resolver queries the TLD server", "Authoritative server returns the record"]`)

	q, err := proc.Normalize(raw, testPlan(plan.TypeSequencing))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Sequencing == nil || len(q.Sequencing.Items) != 4 {
		t.Fatal("expected 4 items")
	}
	if q.Sequencing.Items[0] != "Client asks the resolver" {
		t.Fatalf("order not preserved: %v", q.Sequencing.Items)
	}
}

func TestSequencing_ObjectWrappersUnwrapped(t *testing.T) {
	proc := SequencingProcessor{}
	raw := sequencingJSON(`[
		{"content": "Client asks the resolver"},
		{"text": "Resolver queries a root server"},
		"Authoritative server returns the record"
	]`)

	q, err := proc.Normalize(raw, testPlan(plan.TypeSequencing))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"Client asks the resolver",
		"Resolver queries a root server",
		"Authoritative server returns the record",
	}
	for i, w := range want {
		if q.Sequencing.Items[i] != w {
			t.Fatalf("item %d = %q, want %q", i, q.Sequencing.Items[i], w)
		}
	}
}

func TestSequencing_ItemCountBounds(t *testing.T) {
	proc := SequencingProcessor{}
	for _, items := range []string{
		`["first step here", "second step here"]`,
		`["step one a", "step two b", "step three c", "step four d", "step five e", "step six f", "step seven g"]`,
	} {
		_, err := proc.Normalize(sequencingJSON(items), testPlan(plan.TypeSequencing))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	}
}

func TestSequencing_ShortItemsRejected(t *testing.T) {
	proc := SequencingProcessor{}
	raw := sequencingJSON(`["Client asks the resolver", "two", "Authoritative server answers"]`)

	_, err := proc.Normalize(raw, testPlan(plan.TypeSequencing))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for short item, got %v", err)
	}
}

func TestSequencing_CaseInsensitiveDuplicatesRejected(t *testing.T) {
	proc := SequencingProcessor{}
	raw := sequencingJSON(`["Query the root", "query THE root", "Answer arrives back"]`)

	_, err := proc.Normalize(raw, testPlan(plan.TypeSequencing))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for duplicate item, got %v", err)
	}
}

func TestSequencing_UnrecognizedWrapperRejected(t *testing.T) {
	proc := SequencingProcessor{}
	raw := sequencingJSON(`[{"step": "Client asks the resolver"}, "Resolver queries a root server", "Answer arrives back"]`)

	_, err := proc.Normalize(raw, testPlan(plan.TypeSequencing))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for unknown wrapper, got %v", err)
	}
}
