// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"vidquiz/ent/predicate"
	"vidquiz/ent/questionbox"
	"vidquiz/ent/quizquestion"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// QuestionBoxUpdate is the builder for updating QuestionBox entities.
type QuestionBoxUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionBoxMutation
}

// Where appends a list predicates to the QuestionBoxUpdate builder.
func (_u *QuestionBoxUpdate) Where(ps ...predicate.QuestionBox) *QuestionBoxUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetX sets the "x" field.
func (_u *QuestionBoxUpdate) SetX(v float64) *QuestionBoxUpdate {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *QuestionBoxUpdate) SetNillableX(v *float64) *QuestionBoxUpdate {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *QuestionBoxUpdate) AddX(v float64) *QuestionBoxUpdate {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *QuestionBoxUpdate) SetY(v float64) *QuestionBoxUpdate {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *QuestionBoxUpdate) SetNillableY(v *float64) *QuestionBoxUpdate {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *QuestionBoxUpdate) AddY(v float64) *QuestionBoxUpdate {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *QuestionBoxUpdate) SetWidth(v float64) *QuestionBoxUpdate {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *QuestionBoxUpdate) SetNillableWidth(v *float64) *QuestionBoxUpdate {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *QuestionBoxUpdate) AddWidth(v float64) *QuestionBoxUpdate {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *QuestionBoxUpdate) SetHeight(v float64) *QuestionBoxUpdate {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *QuestionBoxUpdate) SetNillableHeight(v *float64) *QuestionBoxUpdate {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *QuestionBoxUpdate) AddHeight(v float64) *QuestionBoxUpdate {
	_u.mutation.AddHeight(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *QuestionBoxUpdate) SetLabel(v string) *QuestionBoxUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *QuestionBoxUpdate) SetNillableLabel(v *string) *QuestionBoxUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuestionBoxUpdate) SetCorrect(v bool) *QuestionBoxUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuestionBoxUpdate) SetNillableCorrect(v *bool) *QuestionBoxUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QuestionBoxUpdate) SetConfidence(v float64) *QuestionBoxUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QuestionBoxUpdate) SetNillableConfidence(v *float64) *QuestionBoxUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QuestionBoxUpdate) AddConfidence(v float64) *QuestionBoxUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetQuestionID sets the "question" edge to the QuizQuestion entity by ID.
func (_u *QuestionBoxUpdate) SetQuestionID(id int) *QuestionBoxUpdate {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the QuizQuestion entity.
func (_u *QuestionBoxUpdate) SetQuestion(v *QuizQuestion) *QuestionBoxUpdate {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuestionBoxMutation object of the builder.
func (_u *QuestionBoxUpdate) Mutation() *QuestionBoxMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the QuizQuestion entity.
func (_u *QuestionBoxUpdate) ClearQuestion() *QuestionBoxUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionBoxUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionBoxUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionBoxUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionBoxUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionBoxUpdate) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuestionBox.question"`)
	}
	return nil
}

func (_u *QuestionBoxUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionbox.Table, questionbox.Columns, sqlgraph.NewFieldSpec(questionbox.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(questionbox.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(questionbox.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(questionbox.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(questionbox.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(questionbox.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(questionbox.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(questionbox.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(questionbox.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(questionbox.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(questionbox.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(questionbox.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(questionbox.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionBoxUpdateOne is the builder for updating a single QuestionBox entity.
type QuestionBoxUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionBoxMutation
}

// SetX sets the "x" field.
func (_u *QuestionBoxUpdateOne) SetX(v float64) *QuestionBoxUpdateOne {
	_u.mutation.ResetX()
	_u.mutation.SetX(v)
	return _u
}

// SetNillableX sets the "x" field if the given value is not nil.
func (_u *QuestionBoxUpdateOne) SetNillableX(v *float64) *QuestionBoxUpdateOne {
	if v != nil {
		_u.SetX(*v)
	}
	return _u
}

// AddX adds value to the "x" field.
func (_u *QuestionBoxUpdateOne) AddX(v float64) *QuestionBoxUpdateOne {
	_u.mutation.AddX(v)
	return _u
}

// SetY sets the "y" field.
func (_u *QuestionBoxUpdateOne) SetY(v float64) *QuestionBoxUpdateOne {
	_u.mutation.ResetY()
	_u.mutation.SetY(v)
	return _u
}

// SetNillableY sets the "y" field if the given value is not nil.
func (_u *QuestionBoxUpdateOne) SetNillableY(v *float64) *QuestionBoxUpdateOne {
	if v != nil {
		_u.SetY(*v)
	}
	return _u
}

// AddY adds value to the "y" field.
func (_u *QuestionBoxUpdateOne) AddY(v float64) *QuestionBoxUpdateOne {
	_u.mutation.AddY(v)
	return _u
}

// SetWidth sets the "width" field.
func (_u *QuestionBoxUpdateOne) SetWidth(v float64) *QuestionBoxUpdateOne {
	_u.mutation.ResetWidth()
	_u.mutation.SetWidth(v)
	return _u
}

// SetNillableWidth sets the "width" field if the given value is not nil.
func (_u *QuestionBoxUpdateOne) SetNillableWidth(v *float64) *QuestionBoxUpdateOne {
	if v != nil {
		_u.SetWidth(*v)
	}
	return _u
}

// AddWidth adds value to the "width" field.
func (_u *QuestionBoxUpdateOne) AddWidth(v float64) *QuestionBoxUpdateOne {
	_u.mutation.AddWidth(v)
	return _u
}

// SetHeight sets the "height" field.
func (_u *QuestionBoxUpdateOne) SetHeight(v float64) *QuestionBoxUpdateOne {
	_u.mutation.ResetHeight()
	_u.mutation.SetHeight(v)
	return _u
}

// SetNillableHeight sets the "height" field if the given value is not nil.
func (_u *QuestionBoxUpdateOne) SetNillableHeight(v *float64) *QuestionBoxUpdateOne {
	if v != nil {
		_u.SetHeight(*v)
	}
	return _u
}

// AddHeight adds value to the "height" field.
func (_u *QuestionBoxUpdateOne) AddHeight(v float64) *QuestionBoxUpdateOne {
	_u.mutation.AddHeight(v)
	return _u
}

// SetLabel sets the "label" field.
func (_u *QuestionBoxUpdateOne) SetLabel(v string) *QuestionBoxUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *QuestionBoxUpdateOne) SetNillableLabel(v *string) *QuestionBoxUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *QuestionBoxUpdateOne) SetCorrect(v bool) *QuestionBoxUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *QuestionBoxUpdateOne) SetNillableCorrect(v *bool) *QuestionBoxUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *QuestionBoxUpdateOne) SetConfidence(v float64) *QuestionBoxUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *QuestionBoxUpdateOne) SetNillableConfidence(v *float64) *QuestionBoxUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *QuestionBoxUpdateOne) AddConfidence(v float64) *QuestionBoxUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetQuestionID sets the "question" edge to the QuizQuestion entity by ID.
func (_u *QuestionBoxUpdateOne) SetQuestionID(id int) *QuestionBoxUpdateOne {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the QuizQuestion entity.
func (_u *QuestionBoxUpdateOne) SetQuestion(v *QuizQuestion) *QuestionBoxUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// Mutation returns the QuestionBoxMutation object of the builder.
func (_u *QuestionBoxUpdateOne) Mutation() *QuestionBoxMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the QuizQuestion entity.
func (_u *QuestionBoxUpdateOne) ClearQuestion() *QuestionBoxUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// Where appends a list predicates to the QuestionBoxUpdate builder.
func (_u *QuestionBoxUpdateOne) Where(ps ...predicate.QuestionBox) *QuestionBoxUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionBoxUpdateOne) Select(field string, fields ...string) *QuestionBoxUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionBox entity.
func (_u *QuestionBoxUpdateOne) Save(ctx context.Context) (*QuestionBox, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionBoxUpdateOne) SaveX(ctx context.Context) *QuestionBox {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionBoxUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionBoxUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionBoxUpdateOne) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "QuestionBox.question"`)
	}
	return nil
}

func (_u *QuestionBoxUpdateOne) sqlSave(ctx context.Context) (_node *QuestionBox, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(questionbox.Table, questionbox.Columns, sqlgraph.NewFieldSpec(questionbox.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionBox.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionbox.FieldID)
		for _, f := range fields {
			if !questionbox.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionbox.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.X(); ok {
		_spec.SetField(questionbox.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedX(); ok {
		_spec.AddField(questionbox.FieldX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Y(); ok {
		_spec.SetField(questionbox.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedY(); ok {
		_spec.AddField(questionbox.FieldY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Width(); ok {
		_spec.SetField(questionbox.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedWidth(); ok {
		_spec.AddField(questionbox.FieldWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Height(); ok {
		_spec.SetField(questionbox.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedHeight(); ok {
		_spec.AddField(questionbox.FieldHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(questionbox.FieldLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(questionbox.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(questionbox.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(questionbox.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.QuestionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuestionBox{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionbox.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
