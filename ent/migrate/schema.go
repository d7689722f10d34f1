// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionBoxesColumns holds the columns for the "question_boxes" table.
	QuestionBoxesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "x", Type: field.TypeFloat64},
		{Name: "y", Type: field.TypeFloat64},
		{Name: "width", Type: field.TypeFloat64},
		{Name: "height", Type: field.TypeFloat64},
		{Name: "label", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "quiz_question_boxes", Type: field.TypeInt},
	}
	// QuestionBoxesTable holds the schema information for the "question_boxes" table.
	QuestionBoxesTable = &schema.Table{
		Name:       "question_boxes",
		Columns:    QuestionBoxesColumns,
		PrimaryKey: []*schema.Column{QuestionBoxesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "question_boxes_quiz_questions_boxes",
				Columns:    []*schema.Column{QuestionBoxesColumns[8]},
				RefColumns: []*schema.Column{QuizQuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// QuizQuestionsColumns holds the columns for the "quiz_questions" table.
	QuizQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString, Unique: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "video_url", Type: field.TypeString},
		{Name: "timestamp", Type: field.TypeInt},
		{Name: "question", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "options", Type: field.TypeString, Nullable: true},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "explanation", Type: field.TypeString},
		{Name: "has_visual_asset", Type: field.TypeBool, Default: false},
		{Name: "metadata", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuizQuestionsTable holds the schema information for the "quiz_questions" table.
	QuizQuestionsTable = &schema.Table{
		Name:       "quiz_questions",
		Columns:    QuizQuestionsColumns,
		PrimaryKey: []*schema.Column{QuizQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizquestion_course_id",
				Unique:  false,
				Columns: []*schema.Column{QuizQuestionsColumns[2]},
			},
			{
				Name:    "quizquestion_type",
				Unique:  false,
				Columns: []*schema.Column{QuizQuestionsColumns[6]},
			},
			{
				Name:    "quizquestion_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizQuestionsColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		QuestionBoxesTable,
		QuizQuestionsTable,
	}
)

func init() {
	QuestionBoxesTable.ForeignKeys[0].RefTable = QuizQuestionsTable
}
