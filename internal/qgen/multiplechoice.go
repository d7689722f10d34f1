package qgen

import (
	"encoding/json"
	"fmt"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/transcript"
)

const multipleChoiceSystemPrompt = `You write multiple-choice quiz questions for educational videos.

You receive a learning objective and the transcript around one moment in
the video. Write a single question testing that objective at the stated
cognitive level.

Rules:
- Exactly 4 options. One is correct; the other three are plausible
  distractors drawn from common misconceptions about the content.
- The question must be answerable from the video content alone.
- Do not reference "the video", "the transcript", or timestamps in the
  question text.
- The explanation teaches why the correct answer is right and briefly
  addresses the strongest distractor.
- If a nearby moment would suit this question better, return it as
  optimal_timestamp in MM:SS form.`

// MultipleChoiceSchema constrains multiple-choice generation responses.
var MultipleChoiceSchema = &llm.Schema{
	Name:        "multiple-choice-question",
	Description: "One multiple-choice question with four options and a worked explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question stem shown to the learner",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options",
			},
			"correct_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct answer is right",
			},
			"optimal_timestamp": map[string]any{
				"type":        "string",
				"description": "Better anchor moment in MM:SS, or empty to keep the planned one",
			},
		},
		"required":             []any{"question", "options", "correct_index", "explanation"},
		"additionalProperties": false,
	},
}

type multipleChoiceOutput struct {
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	CorrectIndex     int      `json:"correct_index"`
	Explanation      string   `json:"explanation"`
	OptimalTimestamp string   `json:"optimal_timestamp"`
}

// MultipleChoiceProcessor generates four-option questions.
type MultipleChoiceProcessor struct{}

func (MultipleChoiceProcessor) Type() plan.QuestionType { return plan.TypeMultipleChoice }

func (MultipleChoiceProcessor) BuildRequest(p plan.Plan, w *transcript.Window) llm.Request {
	return llm.Request{
		System:      multipleChoiceSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildQuestionMessage(p, w)}},
		Schema:      MultipleChoiceSchema,
		MaxTokens:   1024,
		Temperature: 0.7,
		TopP:        0.95,
	}
}

func (MultipleChoiceProcessor) Normalize(raw json.RawMessage, p plan.Plan) (*GeneratedQuestion, error) {
	var out multipleChoiceOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse multiple-choice response: %w", err)
	}

	if out.Question == "" {
		return nil, &ValidationError{PlanID: p.ID, Message: "question is empty"}
	}
	if len(out.Options) != 4 {
		return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("expected 4 options, got %d", len(out.Options))}
	}
	if out.CorrectIndex < 0 || out.CorrectIndex >= len(out.Options) {
		return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("correct_index %d out of range", out.CorrectIndex)}
	}
	if len(out.Explanation) < 1 {
		return nil, &ValidationError{PlanID: p.ID, Message: "explanation is empty"}
	}

	q := newBase(p)
	q.Question = out.Question
	q.Explanation = out.Explanation
	q.MultipleChoice = &MultipleChoice{Options: out.Options, CorrectIndex: out.CorrectIndex}
	applyOptimalTimestamp(&q, out.OptimalTimestamp)
	return &q, nil
}
