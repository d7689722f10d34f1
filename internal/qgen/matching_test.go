package qgen

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"vidquiz/internal/plan"
)

func matchingJSON(pairs [][2]string) json.RawMessage {
	type pair struct {
		Left  string `json:"left"`
		Right string `json:"right"`
	}
	ps := make([]pair, len(pairs))
	for i, p := range pairs {
		ps[i] = pair{Left: p[0], Right: p[1]}
	}
	out, _ := json.Marshal(map[string]any{
		"question":    "Match each DNS component to its role.",
		"pairs":       ps,
		"explanation": "Each component in the resolution chain has a distinct responsibility in answering a query.",
	})
	return out
}

func TestMatching_NormalizeValid(t *testing.T) {
	proc := MatchingProcessor{}
	raw := matchingJSON([][2]string{
		{"Resolver", "Walks the hierarchy on the client's behalf"},
		{"Root server", "Points at the TLD servers"},
		{"Authoritative server", "Holds the actual records"},
	})

	q, err := proc.Normalize(raw, testPlan(plan.TypeMatching))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Matching == nil || len(q.Matching.Pairs) != 3 {
		t.Fatal("expected 3 pairs")
	}
	if q.Matching.Pairs[0].Left != "Resolver" {
		t.Fatalf("unexpected first pair: %+v", q.Matching.Pairs[0])
	}
}

func TestMatching_PairCountBounds(t *testing.T) {
	proc := MatchingProcessor{}

	two := [][2]string{{"a", "1"}, {"b", "2"}}
	six := [][2]string{}
	for i := 0; i < 6; i++ {
		six = append(six, [2]string{fmt.Sprintf("left%d", i), fmt.Sprintf("right%d", i)})
	}

	for _, pairs := range [][][2]string{two, six} {
		_, err := proc.Normalize(matchingJSON(pairs), testPlan(plan.TypeMatching))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("pairs=%d: expected ValidationError, got %v", len(pairs), err)
		}
	}
}

func TestMatching_DuplicateLeftRejected(t *testing.T) {
	proc := MatchingProcessor{}
	raw := matchingJSON([][2]string{
		{"Resolver", "Walks the hierarchy"},
		{"resolver", "Caches answers"},
		{"Root server", "Points at TLDs"},
	})

	_, err := proc.Normalize(raw, testPlan(plan.TypeMatching))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for duplicate left, got %v", err)
	}
}

func TestMatching_DuplicateRightRejected(t *testing.T) {
	proc := MatchingProcessor{}
	raw := matchingJSON([][2]string{
		{"Resolver", "Answers queries"},
		{"Root server", "Answers queries"},
		{"Authoritative server", "Holds records"},
	})

	_, err := proc.Normalize(raw, testPlan(plan.TypeMatching))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for duplicate right, got %v", err)
	}
}

func TestMatching_ShortExplanationRejected(t *testing.T) {
	proc := MatchingProcessor{}
	out, _ := json.Marshal(map[string]any{
		"question": "Match.",
		"pairs": []map[string]string{
			{"left": "a1", "right": "b1"},
			{"left": "a2", "right": "b2"},
			{"left": "a3", "right": "b3"},
		},
		"explanation": "Self-evident.",
	})

	_, err := proc.Normalize(out, testPlan(plan.TypeMatching))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for short explanation, got %v", err)
	}
}
