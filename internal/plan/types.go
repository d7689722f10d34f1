package plan

import (
	"fmt"
	"strings"
)

// QuestionType tags the five supported question formats. The hyphenated
// spelling is canonical; ParseType accepts the legacy underscore form.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeTrueFalse      QuestionType = "true-false"
	TypeHotspot        QuestionType = "hotspot"
	TypeMatching       QuestionType = "matching"
	TypeSequencing     QuestionType = "sequencing"
)

// AllTypes lists the supported question types in canonical order.
var AllTypes = []QuestionType{
	TypeMultipleChoice,
	TypeTrueFalse,
	TypeHotspot,
	TypeMatching,
	TypeSequencing,
}

// ParseType normalizes a type tag to its canonical form. Legacy
// underscore spellings ("multiple_choice") map to the hyphenated tags.
func ParseType(s string) (QuestionType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for _, t := range AllTypes {
		if normalized == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown question type %q", s)
}

// BloomLevel is the six-tier cognitive taxonomy a question targets.
type BloomLevel string

const (
	BloomRemember   BloomLevel = "remember"
	BloomUnderstand BloomLevel = "understand"
	BloomApply      BloomLevel = "apply"
	BloomAnalyze    BloomLevel = "analyze"
	BloomEvaluate   BloomLevel = "evaluate"
	BloomCreate     BloomLevel = "create"
)

// AllBloomLevels lists the taxonomy from lowest to highest tier.
var AllBloomLevels = []BloomLevel{
	BloomRemember,
	BloomUnderstand,
	BloomApply,
	BloomAnalyze,
	BloomEvaluate,
	BloomCreate,
}

// ParseBloomLevel validates a taxonomy tag.
func ParseBloomLevel(s string) (BloomLevel, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, l := range AllBloomLevels {
		if normalized == string(l) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown Bloom level %q", s)
}

// Difficulty is the question difficulty tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates a difficulty tag, defaulting to medium for
// an empty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DifficultyMedium, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// TranscriptRef names the transcript span a plan is anchored to, in
// seconds.
type TranscriptRef struct {
	Start int
	End   int
}

// Plan is the intent record for one question: what to teach and where in
// the video, decided before the question is written. Created once by the
// planning stage, read-only afterward, consumed by exactly one processor.
type Plan struct {
	ID                string
	Timestamp         int // seconds
	Type              QuestionType
	LearningObjective string
	ContentContext    string
	KeyConcepts       []string
	BloomLevel        BloomLevel
	Difficulty        Difficulty
	Notes             string
	TranscriptRef     TranscriptRef

	// Visual-type fields; zero-valued for non-hotspot plans.
	FrameTimestamp int
	TargetObjects  []string
}

// StageError records a plan that failed structural validation and was
// dropped during planning.
type StageError struct {
	PlanID string
	Reason string
}

func (e StageError) Error() string {
	if e.PlanID == "" {
		return e.Reason
	}
	return fmt.Sprintf("plan %s: %s", e.PlanID, e.Reason)
}

// ErrNoPlans is the fatal planning outcome: the stage produced zero
// usable plans, so the pipeline has nothing to generate from.
type ErrNoPlans struct {
	Errors []StageError
}

func (e *ErrNoPlans) Error() string {
	return fmt.Sprintf("planning produced no usable question plans (%d rejected)", len(e.Errors))
}
