package verify

import "vidquiz/internal/llm"

func dimensionSchema(description string) map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": description,
			},
			"assessment": map[string]any{
				"type":        "string",
				"description": "One or two sentences justifying the score",
			},
			"evidence": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific observations supporting the score",
			},
			"concerns": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Specific problems found, empty when none",
			},
		},
		"required":             []any{"score", "assessment", "evidence", "concerns"},
		"additionalProperties": false,
	}
}

// VerificationSchema constrains rubric verdicts: all six dimensions,
// an overall score, and a qualitative summary.
var VerificationSchema = &llm.Schema{
	Name:        "question-verification",
	Description: "Six-dimension quality rubric verdict for one quiz question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"dimensions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					DimEducationalValue:         dimensionSchema("Does answering this question advance the learning objective?"),
					DimClarityPrecision:         dimensionSchema("Is the question unambiguous and precisely worded?"),
					DimCognitiveAppropriateness: dimensionSchema("Does the difficulty match the stated level?"),
					DimTaxonomyAlignment:        dimensionSchema("Does the task match the stated Bloom level?"),
					DimMisconceptionHandling:    dimensionSchema("Do wrong answers map to real misconceptions?"),
					DimExplanationQuality:       dimensionSchema("Does the explanation teach, not just assert?"),
				},
				"required": []any{
					DimEducationalValue, DimClarityPrecision, DimCognitiveAppropriateness,
					DimTaxonomyAlignment, DimMisconceptionHandling, DimExplanationQuality,
				},
				"additionalProperties": false,
			},
			"overall_score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Holistic quality score, not a mechanical average",
			},
			"overall_assessment": map[string]any{
				"type":        "string",
				"description": "Two or three sentence overall verdict",
			},
			"strengths": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"improvements": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"confidence": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "The reviewer's confidence in this verdict",
			},
		},
		"required": []any{
			"dimensions", "overall_score", "overall_assessment",
			"strengths", "improvements", "confidence",
		},
		"additionalProperties": false,
	},
}
