package qgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/transcript"
)

const sequencingSystemPrompt = `You write sequencing quiz questions for educational videos.

You receive a learning objective and the transcript around one moment in
the video. Write a single ordering exercise: a process or progression
from the content whose steps the learner arranges in order.

Rules:
- Between 3 and 6 steps, listed in the correct order. Each step is a
  self-contained phrase of at least a few words; no bare numbers or
  single-word steps.
- The order must be objectively determined by the content, not a matter
  of preference.
- Each item is a plain string. Do not wrap items in objects.
- Do not reference "the video", "the transcript", or timestamps.
- The explanation says why the order is what it is.
- If a nearby moment would suit this question better, return it as
  optimal_timestamp in MM:SS form.`

// SequencingSchema constrains sequencing generation responses.
var SequencingSchema = &llm.Schema{
	Name:        "sequencing-question",
	Description: "One ordering exercise with 3 to 6 steps in correct order",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The instruction shown above the shuffled steps",
			},
			"items": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    3,
				"maxItems":    6,
				"description": "The steps in correct order",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the steps go in this order",
			},
			"optimal_timestamp": map[string]any{
				"type":        "string",
				"description": "Better anchor moment in MM:SS, or empty to keep the planned one",
			},
		},
		"required":             []any{"question", "items", "explanation"},
		"additionalProperties": false,
	},
}

type sequencingOutput struct {
	Question         string            `json:"question"`
	Items            []json.RawMessage `json:"items"`
	Explanation      string            `json:"explanation"`
	OptimalTimestamp string            `json:"optimal_timestamp"`
}

// SequencingProcessor generates ordering exercises.
type SequencingProcessor struct{}

func (SequencingProcessor) Type() plan.QuestionType { return plan.TypeSequencing }

func (SequencingProcessor) BuildRequest(p plan.Plan, w *transcript.Window) llm.Request {
	return llm.Request{
		System:      sequencingSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildQuestionMessage(p, w)}},
		Schema:      SequencingSchema,
		MaxTokens:   1024,
		Temperature: 0.7,
		TopP:        0.95,
	}
}

func (SequencingProcessor) Normalize(raw json.RawMessage, p plan.Plan) (*GeneratedQuestion, error) {
	var out sequencingOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse sequencing response: %w", err)
	}

	if out.Question == "" {
		return nil, &ValidationError{PlanID: p.ID, Message: "question is empty"}
	}
	if len(out.Items) < 3 || len(out.Items) > 6 {
		return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("expected 3-6 items, got %d", len(out.Items))}
	}

	seen := make(map[string]bool, len(out.Items))
	items := make([]string, 0, len(out.Items))
	for i, rawItem := range out.Items {
		item, err := unwrapSequenceItem(rawItem)
		if err != nil {
			return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("item %d: %v", i, err)}
		}
		item = strings.TrimSpace(item)
		if len(item) < 5 {
			return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("item %d too short: %q", i, item)}
		}
		key := strings.ToLower(item)
		if seen[key] {
			return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("duplicate item %q", item)}
		}
		seen[key] = true
		items = append(items, item)
	}

	if len(out.Explanation) < 30 {
		return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("explanation too short (%d chars, need 30)", len(out.Explanation))}
	}

	q := newBase(p)
	q.Question = out.Question
	q.Explanation = out.Explanation
	q.Sequencing = &Sequencing{Items: items}
	applyOptimalTimestamp(&q, out.OptimalTimestamp)
	return &q, nil
}

// unwrapSequenceItem accepts a plain string or an object wrapper the
// model sometimes produces despite the schema, like {"content": "..."}
// or {"text": "..."}.
func unwrapSequenceItem(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err == nil {
		if v, ok := obj["content"]; ok {
			return v, nil
		}
		if v, ok := obj["text"]; ok {
			return v, nil
		}
	}

	return "", fmt.Errorf("not a string or recognized wrapper: %s", string(raw))
}
