package qgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/transcript"
)

const matchingSystemPrompt = `You write matching quiz questions for educational videos.

You receive a learning objective and the transcript around one moment in
the video. Write a single matching exercise: a set of left-column items
each pairing with exactly one right-column item.

Rules:
- Between 3 and 5 pairs. Every left item is distinct; every right item
  is distinct.
- All items come from the video content. Pairs test understanding of
  relationships (term to definition, cause to effect, component to
  role), not surface word association.
- Do not reference "the video", "the transcript", or timestamps.
- The explanation walks through why each pairing holds.
- If a nearby moment would suit this question better, return it as
  optimal_timestamp in MM:SS form.`

// MatchingSchema constrains matching generation responses.
var MatchingSchema = &llm.Schema{
	Name:        "matching-question",
	Description: "One matching exercise with 3 to 5 left/right pairs",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The instruction shown above the two columns",
			},
			"pairs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"left":  map[string]any{"type": "string"},
						"right": map[string]any{"type": "string"},
					},
					"required":             []any{"left", "right"},
					"additionalProperties": false,
				},
				"minItems":    3,
				"maxItems":    5,
				"description": "The answer key: each left item with its matching right item",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why each pairing holds",
			},
			"optimal_timestamp": map[string]any{
				"type":        "string",
				"description": "Better anchor moment in MM:SS, or empty to keep the planned one",
			},
		},
		"required":             []any{"question", "pairs", "explanation"},
		"additionalProperties": false,
	},
}

type matchingOutput struct {
	Question string `json:"question"`
	Pairs    []struct {
		Left  string `json:"left"`
		Right string `json:"right"`
	} `json:"pairs"`
	Explanation      string `json:"explanation"`
	OptimalTimestamp string `json:"optimal_timestamp"`
}

// MatchingProcessor generates matching exercises.
type MatchingProcessor struct{}

func (MatchingProcessor) Type() plan.QuestionType { return plan.TypeMatching }

func (MatchingProcessor) BuildRequest(p plan.Plan, w *transcript.Window) llm.Request {
	return llm.Request{
		System:      matchingSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildQuestionMessage(p, w)}},
		Schema:      MatchingSchema,
		MaxTokens:   1024,
		Temperature: 0.7,
		TopP:        0.95,
	}
}

func (MatchingProcessor) Normalize(raw json.RawMessage, p plan.Plan) (*GeneratedQuestion, error) {
	var out matchingOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse matching response: %w", err)
	}

	if out.Question == "" {
		return nil, &ValidationError{PlanID: p.ID, Message: "question is empty"}
	}
	if len(out.Pairs) < 3 || len(out.Pairs) > 5 {
		return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("expected 3-5 pairs, got %d", len(out.Pairs))}
	}

	seenLeft := make(map[string]bool, len(out.Pairs))
	seenRight := make(map[string]bool, len(out.Pairs))
	pairs := make([]Pair, 0, len(out.Pairs))
	for _, pr := range out.Pairs {
		left := strings.TrimSpace(pr.Left)
		right := strings.TrimSpace(pr.Right)
		if left == "" || right == "" {
			return nil, &ValidationError{PlanID: p.ID, Message: "pair with empty side"}
		}
		if seenLeft[strings.ToLower(left)] {
			return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("duplicate left item %q", left)}
		}
		if seenRight[strings.ToLower(right)] {
			return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("duplicate right item %q", right)}
		}
		seenLeft[strings.ToLower(left)] = true
		seenRight[strings.ToLower(right)] = true
		pairs = append(pairs, Pair{Left: left, Right: right})
	}

	if len(out.Explanation) < 30 {
		return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("explanation too short (%d chars, need 30)", len(out.Explanation))}
	}

	q := newBase(p)
	q.Question = out.Question
	q.Explanation = out.Explanation
	q.Matching = &Matching{Pairs: pairs}
	applyOptimalTimestamp(&q, out.OptimalTimestamp)
	return &q, nil
}
