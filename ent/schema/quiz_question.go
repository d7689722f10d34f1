package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizQuestion is one stored question in its flat persistence shape.
type QuizQuestion struct {
	ent.Schema
}

func (QuizQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Unique().
			Immutable().
			Comment("Stable question identifier assigned at generation"),
		field.String("course_id").
			Comment("Course the source video belongs to"),
		field.String("video_url").
			Comment("Source video the question was generated from"),
		field.Int("timestamp").
			Comment("Anchor position in the video, seconds"),
		field.String("question").
			Comment("The text shown to the learner"),
		field.String("type").
			Comment("Canonical hyphenated question type"),
		field.String("options").
			Optional().
			Nillable().
			Comment("JSON array of the four options, multiple-choice only"),
		field.String("correct_answer").
			Comment("Type-dependent answer encoding"),
		field.String("explanation").
			Comment("Why the answer is correct"),
		field.Bool("has_visual_asset").
			Default(false).
			Comment("Whether rendering needs more than text"),
		field.String("metadata").
			Optional().
			Nillable().
			Comment("JSON blob of type-specific structure and provenance"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizQuestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("boxes", QuestionBox.Type),
	}
}

func (QuizQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("type"),
		index.Fields("timestamp"),
	}
}
