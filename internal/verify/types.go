package verify

import "fmt"

// Dimension names for the quality rubric. Every verification result
// scores all six.
const (
	DimEducationalValue         = "educational_value"
	DimClarityPrecision         = "clarity_precision"
	DimCognitiveAppropriateness = "cognitive_appropriateness"
	DimTaxonomyAlignment        = "taxonomy_alignment"
	DimMisconceptionHandling    = "misconception_handling"
	DimExplanationQuality       = "explanation_quality"
)

// AllDimensions lists the rubric dimensions in report order.
var AllDimensions = []string{
	DimEducationalValue,
	DimClarityPrecision,
	DimCognitiveAppropriateness,
	DimTaxonomyAlignment,
	DimMisconceptionHandling,
	DimExplanationQuality,
}

// Thresholds for the pass decision. A question passes when its overall
// score meets OverallThreshold and every dimension meets
// DimensionThreshold.
const (
	OverallThreshold   = 75
	DimensionThreshold = 60
)

// Dimension is one rubric dimension's verdict.
type Dimension struct {
	Score      int // 0-100
	Assessment string
	Evidence   []string
	Concerns   []string
}

// Result is the full quality verdict for one question.
type Result struct {
	QuestionID        string
	OverallScore      int
	Dimensions        map[string]Dimension
	OverallAssessment string
	Strengths         []string
	Improvements      []string
	Confidence        float64
	Passed            bool
}

// VerifyError records a question whose verification could not complete.
// Distinct from a failing verdict: the rubric never ran.
type VerifyError struct {
	QuestionID string
	Err        error
}

func (e VerifyError) Error() string {
	return fmt.Sprintf("verify question %s: %v", e.QuestionID, e.Err)
}

func (e VerifyError) Unwrap() error { return e.Err }

// Report is the settled outcome of a verification batch.
type Report struct {
	Results []Result
	Errors  []VerifyError
}

// Passed returns the IDs of questions that met the thresholds.
func (r Report) Passed() []string {
	var ids []string
	for _, res := range r.Results {
		if res.Passed {
			ids = append(ids, res.QuestionID)
		}
	}
	return ids
}
