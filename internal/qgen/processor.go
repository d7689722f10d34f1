package qgen

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"vidquiz/internal/llm"
	"vidquiz/internal/plan"
	"vidquiz/internal/transcript"
)

// Processor generates one kind of question. BuildRequest assembles the
// model request from a plan and its transcript window; Normalize turns
// the raw model response into a validated GeneratedQuestion.
type Processor interface {
	Type() plan.QuestionType
	BuildRequest(p plan.Plan, w *transcript.Window) llm.Request
	Normalize(raw json.RawMessage, p plan.Plan) (*GeneratedQuestion, error)
}

// visionResolver is implemented by processors that need a second,
// vision-grounded model call to finish a question after Normalize.
type visionResolver interface {
	ResolveVision(ctx context.Context, q *GeneratedQuestion, p plan.Plan, videoURI string) error
}

// newBase seeds a GeneratedQuestion with the plan's identity fields.
// The processor fills in the question text and its variant payload.
func newBase(p plan.Plan) GeneratedQuestion {
	return GeneratedQuestion{
		ID:         uuid.NewString(),
		PlanID:     p.ID,
		Timestamp:  p.Timestamp,
		Type:       p.Type,
		BloomLevel: p.BloomLevel,
		Rationale:  p.Notes,
	}
}

// applyOptimalTimestamp replaces the plan's timestamp with the model's
// suggested moment when one was returned and parses cleanly. A bad
// suggestion is ignored, never an error.
func applyOptimalTimestamp(q *GeneratedQuestion, optimal string) {
	if optimal == "" {
		return
	}
	ts, err := transcript.ParseTimestamp(optimal)
	if err != nil {
		return
	}
	q.Timestamp = ts
}
