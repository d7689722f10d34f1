// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"
	"vidquiz/ent/llmrequestevent"
	"vidquiz/ent/questionbox"
	"vidquiz/ent/quizquestion"
	"vidquiz/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionboxFields := schema.QuestionBox{}.Fields()
	_ = questionboxFields
	// questionboxDescCorrect is the schema descriptor for correct field.
	questionboxDescCorrect := questionboxFields[5].Descriptor()
	// questionbox.DefaultCorrect holds the default value on creation for the correct field.
	questionbox.DefaultCorrect = questionboxDescCorrect.Default.(bool)
	// questionboxDescConfidence is the schema descriptor for confidence field.
	questionboxDescConfidence := questionboxFields[6].Descriptor()
	// questionbox.DefaultConfidence holds the default value on creation for the confidence field.
	questionbox.DefaultConfidence = questionboxDescConfidence.Default.(float64)
	quizquestionFields := schema.QuizQuestion{}.Fields()
	_ = quizquestionFields
	// quizquestionDescHasVisualAsset is the schema descriptor for has_visual_asset field.
	quizquestionDescHasVisualAsset := quizquestionFields[9].Descriptor()
	// quizquestion.DefaultHasVisualAsset holds the default value on creation for the has_visual_asset field.
	quizquestion.DefaultHasVisualAsset = quizquestionDescHasVisualAsset.Default.(bool)
	// quizquestionDescCreatedAt is the schema descriptor for created_at field.
	quizquestionDescCreatedAt := quizquestionFields[11].Descriptor()
	// quizquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	quizquestion.DefaultCreatedAt = quizquestionDescCreatedAt.Default.(func() time.Time)
}
