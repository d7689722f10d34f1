package qgen

import (
	"fmt"

	"vidquiz/internal/plan"
)

// GeneratedQuestion is a validated question produced by one processor.
// Exactly one variant field matching Type is non-nil.
type GeneratedQuestion struct {
	ID          string
	PlanID      string
	Timestamp   int // seconds; may differ from the plan if the model suggested a better moment
	Type        plan.QuestionType
	Question    string
	Explanation string
	BloomLevel  plan.BloomLevel
	Rationale   string

	MultipleChoice *MultipleChoice
	TrueFalse      *TrueFalse
	Hotspot        *Hotspot
	Matching       *Matching
	Sequencing     *Sequencing
}

// MultipleChoice holds the answer structure for a multiple-choice
// question. Options always has exactly four entries.
type MultipleChoice struct {
	Options      []string
	CorrectIndex int
}

// TrueFalse holds the answer for a true/false question. The statement
// being judged is the question text.
type TrueFalse struct {
	Answer bool
}

// Hotspot holds the visual answer structure: the frame to show and the
// bounding boxes the learner picks from. Exactly one box is correct.
type Hotspot struct {
	FrameTimestamp int
	TargetObjects  []string
	Boxes          []BoundingBox
}

// BoundingBox is one clickable region on the frame, in normalized
// coordinates with a top-left origin.
type BoundingBox struct {
	X      float64 // left edge, 0-1
	Y      float64 // top edge, 0-1
	Width  float64
	Height float64

	Label      string
	Correct    bool
	Confidence float64
}

// Matching holds the pairs for a matching question, in answer-key order.
type Matching struct {
	Pairs []Pair
}

// Pair is one left/right match.
type Pair struct {
	Left  string
	Right string
}

// Sequencing holds the items of a sequencing question in correct order.
type Sequencing struct {
	Items []string
}

// ValidationError reports a structural contract violation in a model
// response. Structural failures are terminal for the plan; the response
// is discarded, not retried.
type ValidationError struct {
	PlanID  string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid response for plan %s: %s", e.PlanID, e.Message)
}

// ReconciliationError means a hotspot response could not be settled on
// exactly one correct box after label matching and first-marked
// fallback.
type ReconciliationError struct {
	PlanID string
	Marked int // boxes the model marked correct
	Boxes  int // total boxes returned
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("plan %s: cannot reconcile hotspot boxes (%d of %d marked correct)", e.PlanID, e.Marked, e.Boxes)
}

// QuestionError records one plan that failed to become a question.
type QuestionError struct {
	PlanID string
	Type   plan.QuestionType
	Err    error
}

func (e QuestionError) Error() string {
	return fmt.Sprintf("plan %s (%s): %v", e.PlanID, e.Type, e.Err)
}

func (e QuestionError) Unwrap() error { return e.Err }

// Result is the settled outcome of a generation batch. Every plan
// appears in exactly one of the two slices.
type Result struct {
	Questions []*GeneratedQuestion
	Errors    []QuestionError
}
