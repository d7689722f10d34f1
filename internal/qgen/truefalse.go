package qgen

import (
	"encoding/json"
	"fmt"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/transcript"
)

const trueFalseSystemPrompt = `You write true/false quiz questions for educational videos.

You receive a learning objective and the transcript around one moment in
the video. Write a single declarative statement the learner judges as
true or false.

Rules:
- The statement must be unambiguously true or false given the video
  content. No "sometimes", "often", or other hedging.
- False statements express a real misconception about the content, not
  a trivial negation.
- Do not reference "the video", "the transcript", or timestamps in the
  statement.
- The explanation says why the statement is true or false and corrects
  the misconception when it is false.
- If a nearby moment would suit this question better, return it as
  optimal_timestamp in MM:SS form.`

// TrueFalseSchema constrains true/false generation responses.
var TrueFalseSchema = &llm.Schema{
	Name:        "true-false-question",
	Description: "One true/false statement with its answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"statement": map[string]any{
				"type":        "string",
				"description": "The declarative statement the learner judges",
			},
			"answer": map[string]any{
				"type":        "boolean",
				"description": "Whether the statement is true",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the statement is true or false, at least a full sentence",
			},
			"optimal_timestamp": map[string]any{
				"type":        "string",
				"description": "Better anchor moment in MM:SS, or empty to keep the planned one",
			},
		},
		"required":             []any{"statement", "answer", "explanation"},
		"additionalProperties": false,
	},
}

type trueFalseOutput struct {
	Statement        string `json:"statement"`
	Answer           bool   `json:"answer"`
	Explanation      string `json:"explanation"`
	OptimalTimestamp string `json:"optimal_timestamp"`
}

// TrueFalseProcessor generates true/false statements.
type TrueFalseProcessor struct{}

func (TrueFalseProcessor) Type() plan.QuestionType { return plan.TypeTrueFalse }

func (TrueFalseProcessor) BuildRequest(p plan.Plan, w *transcript.Window) llm.Request {
	return llm.Request{
		System:      trueFalseSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildQuestionMessage(p, w)}},
		Schema:      TrueFalseSchema,
		MaxTokens:   768,
		Temperature: 0.6,
		TopP:        0.95,
	}
}

func (TrueFalseProcessor) Normalize(raw json.RawMessage, p plan.Plan) (*GeneratedQuestion, error) {
	var out trueFalseOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse true/false response: %w", err)
	}

	if out.Statement == "" {
		return nil, &ValidationError{PlanID: p.ID, Message: "statement is empty"}
	}
	if len(out.Explanation) < 20 {
		return nil, &ValidationError{PlanID: p.ID, Message: fmt.Sprintf("explanation too short (%d chars, need 20)", len(out.Explanation))}
	}

	q := newBase(p)
	q.Question = out.Statement
	q.Explanation = out.Explanation
	q.TrueFalse = &TrueFalse{Answer: out.Answer}
	applyOptimalTimestamp(&q, out.OptimalTimestamp)
	return &q, nil
}
