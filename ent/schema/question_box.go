package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// QuestionBox is one clickable bounding box of a hotspot question,
// kept in a parallel table so box geometry stays queryable.
type QuestionBox struct {
	ent.Schema
}

func (QuestionBox) Fields() []ent.Field {
	return []ent.Field{
		field.Float("x").
			Comment("Left edge, normalized 0-1"),
		field.Float("y").
			Comment("Top edge, normalized 0-1"),
		field.Float("width"),
		field.Float("height"),
		field.String("label").
			Comment("What the box contains"),
		field.Bool("correct").
			Default(false).
			Comment("Whether this box answers the question"),
		field.Float("confidence").
			Default(0).
			Comment("Detection confidence, 0-1"),
	}
}

func (QuestionBox) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", QuizQuestion.Type).
			Ref("boxes").
			Unique().
			Required(),
	}
}
