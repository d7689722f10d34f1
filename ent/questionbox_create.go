// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"vidquiz/ent/questionbox"
	"vidquiz/ent/quizquestion"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// QuestionBoxCreate is the builder for creating a QuestionBox entity.
type QuestionBoxCreate struct {
	config
	mutation *QuestionBoxMutation
	hooks    []Hook
}

// SetX sets the "x" field.
func (_c *QuestionBoxCreate) SetX(v float64) *QuestionBoxCreate {
	_c.mutation.SetX(v)
	return _c
}

// SetY sets the "y" field.
func (_c *QuestionBoxCreate) SetY(v float64) *QuestionBoxCreate {
	_c.mutation.SetY(v)
	return _c
}

// SetWidth sets the "width" field.
func (_c *QuestionBoxCreate) SetWidth(v float64) *QuestionBoxCreate {
	_c.mutation.SetWidth(v)
	return _c
}

// SetHeight sets the "height" field.
func (_c *QuestionBoxCreate) SetHeight(v float64) *QuestionBoxCreate {
	_c.mutation.SetHeight(v)
	return _c
}

// SetLabel sets the "label" field.
func (_c *QuestionBoxCreate) SetLabel(v string) *QuestionBoxCreate {
	_c.mutation.SetLabel(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *QuestionBoxCreate) SetCorrect(v bool) *QuestionBoxCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *QuestionBoxCreate) SetNillableCorrect(v *bool) *QuestionBoxCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *QuestionBoxCreate) SetConfidence(v float64) *QuestionBoxCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *QuestionBoxCreate) SetNillableConfidence(v *float64) *QuestionBoxCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetQuestionID sets the "question" edge to the QuizQuestion entity by ID.
func (_c *QuestionBoxCreate) SetQuestionID(id int) *QuestionBoxCreate {
	_c.mutation.SetQuestionID(id)
	return _c
}

// SetQuestion sets the "question" edge to the QuizQuestion entity.
func (_c *QuestionBoxCreate) SetQuestion(v *QuizQuestion) *QuestionBoxCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the QuestionBoxMutation object of the builder.
func (_c *QuestionBoxCreate) Mutation() *QuestionBoxMutation {
	return _c.mutation
}

// Save creates the QuestionBox in the database.
func (_c *QuestionBoxCreate) Save(ctx context.Context) (*QuestionBox, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionBoxCreate) SaveX(ctx context.Context) *QuestionBox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionBoxCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionBoxCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionBoxCreate) defaults() {
	if _, ok := _c.mutation.Correct(); !ok {
		v := questionbox.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := questionbox.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionBoxCreate) check() error {
	if _, ok := _c.mutation.X(); !ok {
		return &ValidationError{Name: "x", err: errors.New(`ent: missing required field "QuestionBox.x"`)}
	}
	if _, ok := _c.mutation.Y(); !ok {
		return &ValidationError{Name: "y", err: errors.New(`ent: missing required field "QuestionBox.y"`)}
	}
	if _, ok := _c.mutation.Width(); !ok {
		return &ValidationError{Name: "width", err: errors.New(`ent: missing required field "QuestionBox.width"`)}
	}
	if _, ok := _c.mutation.Height(); !ok {
		return &ValidationError{Name: "height", err: errors.New(`ent: missing required field "QuestionBox.height"`)}
	}
	if _, ok := _c.mutation.Label(); !ok {
		return &ValidationError{Name: "label", err: errors.New(`ent: missing required field "QuestionBox.label"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "QuestionBox.correct"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "QuestionBox.confidence"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "QuestionBox.question"`)}
	}
	return nil
}

func (_c *QuestionBoxCreate) sqlSave(ctx context.Context) (*QuestionBox, error) {
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

func (_c *QuestionBoxCreate) createSpec() (*QuestionBox, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionBox{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionbox.Table, sqlgraph.NewFieldSpec(questionbox.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.X(); ok {
		_spec.SetField(questionbox.FieldX, field.TypeFloat64, value)
		_node.X = value
	}
	if value, ok := _c.mutation.Y(); ok {
		_spec.SetField(questionbox.FieldY, field.TypeFloat64, value)
		_node.Y = value
	}
	if value, ok := _c.mutation.Width(); ok {
		_spec.SetField(questionbox.FieldWidth, field.TypeFloat64, value)
		_node.Width = value
	}
	if value, ok := _c.mutation.Height(); ok {
		_spec.SetField(questionbox.FieldHeight, field.TypeFloat64, value)
		_node.Height = value
	}
	if value, ok := _c.mutation.Label(); ok {
		_spec.SetField(questionbox.FieldLabel, field.TypeString, value)
		_node.Label = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(questionbox.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(questionbox.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   questionbox.QuestionTable,
			Columns: []string{questionbox.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.quiz_question_boxes = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionBoxCreateBulk is the builder for creating many QuestionBox entities in bulk.
type QuestionBoxCreateBulk struct {
	config
	err      error
	builders []*QuestionBoxCreate
}

// Save creates the QuestionBox entities in the database.
func (_c *QuestionBoxCreateBulk) Save(ctx context.Context) ([]*QuestionBox, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionBox, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionBoxMutation)
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
func (_c *QuestionBoxCreateBulk) SaveX(ctx context.Context) []*QuestionBox {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionBoxCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionBoxCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
