package plan

import "vidquiz/internal/llm"

// AnalysisSchema defines the JSON schema for the planning stage response:
// a full transcript plus a list of question plans. Timestamps on the wire
// are "MM:SS" strings; they are converted to seconds immediately on
// receipt and never propagate further.
var AnalysisSchema = &llm.Schema{
	Name:        "video-analysis",
	Description: "Timestamped transcript of an educational video plus a list of question plans anchored to transcript spans",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"transcript_segments": map[string]any{
				"type":        "array",
				"description": "Ordered, non-overlapping spans covering the video",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"start_time": map[string]any{
							"type":        "string",
							"description": "Segment start as MM:SS",
						},
						"end_time": map[string]any{
							"type":        "string",
							"description": "Segment end as MM:SS",
						},
						"spoken_text": map[string]any{
							"type":        "string",
							"description": "What is said during the segment",
						},
						"visual_description": map[string]any{
							"type":        "string",
							"description": "What is visible on screen during the segment",
						},
						"salient_event": map[string]any{
							"type":        "boolean",
							"description": "True when something pedagogically notable happens",
						},
						"event_type": map[string]any{
							"type":        "string",
							"description": "Tag for the salient event (diagram, demonstration, code, ...). Empty otherwise.",
						},
					},
					"required": []any{"start_time", "end_time", "spoken_text", "visual_description", "salient_event"},
				},
			},
			"concept_timeline": map[string]any{
				"type":        "array",
				"description": "Every concept taught, with where it first appears and where it is explained",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"concept": map[string]any{
							"type": "string",
						},
						"first_mention": map[string]any{
							"type":        "string",
							"description": "MM:SS of the first mention",
						},
						"explanations": map[string]any{
							"type":        "array",
							"description": "MM:SS timestamps where the concept is explained in depth",
							"items":       map[string]any{"type": "string"},
						},
					},
					"required": []any{"concept", "first_mention", "explanations"},
				},
			},
			"video_summary": map[string]any{
				"type":        "string",
				"description": "Two to four sentence summary of the video",
			},
			"question_plans": map[string]any{
				"type":        "array",
				"description": "Intent records for questions to generate, each anchored to a transcript span",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_type": map[string]any{
							"type": "string",
							"enum": []any{"multiple-choice", "true-false", "hotspot", "matching", "sequencing"},
						},
						"timestamp": map[string]any{
							"type":        "string",
							"description": "MM:SS where the question should appear, after the relevant explanation",
						},
						"learning_objective": map[string]any{
							"type":        "string",
							"description": "What the learner should be able to do after answering",
						},
						"content_context": map[string]any{
							"type":        "string",
							"description": "The specific content the question draws on",
						},
						"key_concepts": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"bloom_level": map[string]any{
							"type": "string",
							"enum": []any{"remember", "understand", "apply", "analyze", "evaluate", "create"},
						},
						"difficulty": map[string]any{
							"type": "string",
							"enum": []any{"easy", "medium", "hard"},
						},
						"rationale": map[string]any{
							"type":        "string",
							"description": "Why this question, here, at this level",
						},
						"transcript_start": map[string]any{
							"type":        "string",
							"description": "MM:SS start of the transcript span this plan references",
						},
						"transcript_end": map[string]any{
							"type":        "string",
							"description": "MM:SS end of the transcript span this plan references",
						},
						"frame_timestamp": map[string]any{
							"type":        "string",
							"description": "Hotspot only: MM:SS of the frame to analyze visually",
						},
						"target_objects": map[string]any{
							"type":        "array",
							"description": "Hotspot only: on-screen objects the learner should identify",
							"items":       map[string]any{"type": "string"},
						},
					},
					"required": []any{
						"question_type", "timestamp", "learning_objective",
						"content_context", "key_concepts", "bloom_level",
						"difficulty", "rationale", "transcript_start", "transcript_end",
					},
				},
			},
		},
		"required":             []any{"transcript_segments", "concept_timeline", "video_summary", "question_plans"},
		"additionalProperties": false,
	},
}
