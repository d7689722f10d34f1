// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"
	"vidquiz/ent/questionbox"
	"vidquiz/ent/quizquestion"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// QuizQuestionCreate is the builder for creating a QuizQuestion entity.
type QuizQuestionCreate struct {
	config
	mutation *QuizQuestionMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *QuizQuestionCreate) SetQuestionID(v string) *QuizQuestionCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *QuizQuestionCreate) SetCourseID(v string) *QuizQuestionCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetVideoURL sets the "video_url" field.
func (_c *QuizQuestionCreate) SetVideoURL(v string) *QuizQuestionCreate {
	_c.mutation.SetVideoURL(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *QuizQuestionCreate) SetTimestamp(v int) *QuizQuestionCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *QuizQuestionCreate) SetQuestion(v string) *QuizQuestionCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetType sets the "type" field.
func (_c *QuizQuestionCreate) SetType(v string) *QuizQuestionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuizQuestionCreate) SetOptions(v string) *QuizQuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetNillableOptions sets the "options" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableOptions(v *string) *QuizQuestionCreate {
	if v != nil {
		_c.SetOptions(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *QuizQuestionCreate) SetCorrectAnswer(v string) *QuizQuestionCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *QuizQuestionCreate) SetExplanation(v string) *QuizQuestionCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetHasVisualAsset sets the "has_visual_asset" field.
func (_c *QuizQuestionCreate) SetHasVisualAsset(v bool) *QuizQuestionCreate {
	_c.mutation.SetHasVisualAsset(v)
	return _c
}

// SetNillableHasVisualAsset sets the "has_visual_asset" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableHasVisualAsset(v *bool) *QuizQuestionCreate {
	if v != nil {
		_c.SetHasVisualAsset(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *QuizQuestionCreate) SetMetadata(v string) *QuizQuestionCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableMetadata(v *string) *QuizQuestionCreate {
	if v != nil {
		_c.SetMetadata(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QuizQuestionCreate) SetCreatedAt(v time.Time) *QuizQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QuizQuestionCreate) SetNillableCreatedAt(v *time.Time) *QuizQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddBoxIDs adds the "boxes" edge to the QuestionBox entity by IDs.
func (_c *QuizQuestionCreate) AddBoxIDs(ids ...int) *QuizQuestionCreate {
	_c.mutation.AddBoxIDs(ids...)
	return _c
}

// AddBoxes adds the "boxes" edges to the QuestionBox entity.
func (_c *QuizQuestionCreate) AddBoxes(v ...*QuestionBox) *QuizQuestionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBoxIDs(ids...)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_c *QuizQuestionCreate) Mutation() *QuizQuestionMutation {
	return _c.mutation
}

// Save creates the QuizQuestion in the database.
func (_c *QuizQuestionCreate) Save(ctx context.Context) (*QuizQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizQuestionCreate) SaveX(ctx context.Context) *QuizQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuizQuestionCreate) defaults() {
	if _, ok := _c.mutation.HasVisualAsset(); !ok {
		v := quizquestion.DefaultHasVisualAsset
		_c.mutation.SetHasVisualAsset(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := quizquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizQuestionCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "QuizQuestion.question_id"`)}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "QuizQuestion.course_id"`)}
	}
	if _, ok := _c.mutation.VideoURL(); !ok {
		return &ValidationError{Name: "video_url", err: errors.New(`ent: missing required field "QuizQuestion.video_url"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "QuizQuestion.timestamp"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "QuizQuestion.question"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "QuizQuestion.type"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "QuizQuestion.correct_answer"`)}
	}
	if _, ok := _c.mutation.Explanation(); !ok {
		return &ValidationError{Name: "explanation", err: errors.New(`ent: missing required field "QuizQuestion.explanation"`)}
	}
	if _, ok := _c.mutation.HasVisualAsset(); !ok {
		return &ValidationError{Name: "has_visual_asset", err: errors.New(`ent: missing required field "QuizQuestion.has_visual_asset"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QuizQuestion.created_at"`)}
	}
	return nil
}

func (_c *QuizQuestionCreate) sqlSave(ctx context.Context) (*QuizQuestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuizQuestionCreate) createSpec() (*QuizQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizquestion.Table, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(quizquestion.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(quizquestion.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.VideoURL(); ok {
		_spec.SetField(quizquestion.FieldVideoURL, field.TypeString, value)
		_node.VideoURL = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(quizquestion.FieldTimestamp, field.TypeInt, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(quizquestion.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(quizquestion.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeString, value)
		_node.Options = &value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(quizquestion.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(quizquestion.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.HasVisualAsset(); ok {
		_spec.SetField(quizquestion.FieldHasVisualAsset, field.TypeBool, value)
		_node.HasVisualAsset = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(quizquestion.FieldMetadata, field.TypeString, value)
		_node.Metadata = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(quizquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BoxesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   quizquestion.BoxesTable,
			Columns: []string{quizquestion.BoxesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(questionbox.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuizQuestionCreateBulk is the builder for creating many QuizQuestion entities in bulk.
type QuizQuestionCreateBulk struct {
	config
	err      error
	builders []*QuizQuestionCreate
}

// Save creates the QuizQuestion entities in the database.
func (_c *QuizQuestionCreateBulk) Save(ctx context.Context) ([]*QuizQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizQuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuizQuestionCreateBulk) SaveX(ctx context.Context) []*QuizQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
