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

// QuizQuestionUpdate is the builder for updating QuizQuestion entities.
type QuizQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdate) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *QuizQuestionUpdate) SetCourseID(v string) *QuizQuestionUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableCourseID(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *QuizQuestionUpdate) SetVideoURL(v string) *QuizQuestionUpdate {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableVideoURL(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *QuizQuestionUpdate) SetTimestamp(v int) *QuizQuestionUpdate {
	_u.mutation.ResetTimestamp()
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableTimestamp(v *int) *QuizQuestionUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// AddTimestamp adds value to the "timestamp" field.
func (_u *QuizQuestionUpdate) AddTimestamp(v int) *QuizQuestionUpdate {
	_u.mutation.AddTimestamp(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuizQuestionUpdate) SetQuestion(v string) *QuizQuestionUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableQuestion(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuizQuestionUpdate) SetType(v string) *QuizQuestionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableType(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuizQuestionUpdate) SetOptions(v string) *QuizQuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// SetNillableOptions sets the "options" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableOptions(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetOptions(*v)
	}
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuizQuestionUpdate) ClearOptions() *QuizQuestionUpdate {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuizQuestionUpdate) SetCorrectAnswer(v string) *QuizQuestionUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableCorrectAnswer(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuizQuestionUpdate) SetExplanation(v string) *QuizQuestionUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableExplanation(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetHasVisualAsset sets the "has_visual_asset" field.
func (_u *QuizQuestionUpdate) SetHasVisualAsset(v bool) *QuizQuestionUpdate {
	_u.mutation.SetHasVisualAsset(v)
	return _u
}

// SetNillableHasVisualAsset sets the "has_visual_asset" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableHasVisualAsset(v *bool) *QuizQuestionUpdate {
	if v != nil {
		_u.SetHasVisualAsset(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *QuizQuestionUpdate) SetMetadata(v string) *QuizQuestionUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *QuizQuestionUpdate) SetNillableMetadata(v *string) *QuizQuestionUpdate {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *QuizQuestionUpdate) ClearMetadata() *QuizQuestionUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// AddBoxIDs adds the "boxes" edge to the QuestionBox entity by IDs.
func (_u *QuizQuestionUpdate) AddBoxIDs(ids ...int) *QuizQuestionUpdate {
	_u.mutation.AddBoxIDs(ids...)
	return _u
}

// AddBoxes adds the "boxes" edges to the QuestionBox entity.
func (_u *QuizQuestionUpdate) AddBoxes(v ...*QuestionBox) *QuizQuestionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBoxIDs(ids...)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdate) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// ClearBoxes clears all "boxes" edges to the QuestionBox entity.
func (_u *QuizQuestionUpdate) ClearBoxes() *QuizQuestionUpdate {
	_u.mutation.ClearBoxes()
	return _u
}

// RemoveBoxIDs removes the "boxes" edge to QuestionBox entities by IDs.
func (_u *QuizQuestionUpdate) RemoveBoxIDs(ids ...int) *QuizQuestionUpdate {
	_u.mutation.RemoveBoxIDs(ids...)
	return _u
}

// RemoveBoxes removes "boxes" edges to QuestionBox entities.
func (_u *QuizQuestionUpdate) RemoveBoxes(v ...*QuestionBox) *QuizQuestionUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBoxIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(quizquestion.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(quizquestion.FieldVideoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(quizquestion.FieldTimestamp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimestamp(); ok {
		_spec.AddField(quizquestion.FieldTimestamp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(quizquestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(quizquestion.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeString, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(quizquestion.FieldOptions, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(quizquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(quizquestion.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasVisualAsset(); ok {
		_spec.SetField(quizquestion.FieldHasVisualAsset, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(quizquestion.FieldMetadata, field.TypeString, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(quizquestion.FieldMetadata, field.TypeString)
	}
	if _u.mutation.BoxesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBoxesIDs(); len(nodes) > 0 && !_u.mutation.BoxesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BoxesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizQuestionUpdateOne is the builder for updating a single QuizQuestion entity.
type QuizQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizQuestionMutation
}

// SetCourseID sets the "course_id" field.
func (_u *QuizQuestionUpdateOne) SetCourseID(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableCourseID(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetVideoURL sets the "video_url" field.
func (_u *QuizQuestionUpdateOne) SetVideoURL(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetVideoURL(v)
	return _u
}

// SetNillableVideoURL sets the "video_url" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableVideoURL(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetVideoURL(*v)
	}
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *QuizQuestionUpdateOne) SetTimestamp(v int) *QuizQuestionUpdateOne {
	_u.mutation.ResetTimestamp()
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableTimestamp(v *int) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// AddTimestamp adds value to the "timestamp" field.
func (_u *QuizQuestionUpdateOne) AddTimestamp(v int) *QuizQuestionUpdateOne {
	_u.mutation.AddTimestamp(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *QuizQuestionUpdateOne) SetQuestion(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableQuestion(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *QuizQuestionUpdateOne) SetType(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableType(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuizQuestionUpdateOne) SetOptions(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// SetNillableOptions sets the "options" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableOptions(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetOptions(*v)
	}
	return _u
}

// ClearOptions clears the value of the "options" field.
func (_u *QuizQuestionUpdateOne) ClearOptions() *QuizQuestionUpdateOne {
	_u.mutation.ClearOptions()
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *QuizQuestionUpdateOne) SetCorrectAnswer(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableCorrectAnswer(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *QuizQuestionUpdateOne) SetExplanation(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableExplanation(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// SetHasVisualAsset sets the "has_visual_asset" field.
func (_u *QuizQuestionUpdateOne) SetHasVisualAsset(v bool) *QuizQuestionUpdateOne {
	_u.mutation.SetHasVisualAsset(v)
	return _u
}

// SetNillableHasVisualAsset sets the "has_visual_asset" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableHasVisualAsset(v *bool) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetHasVisualAsset(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *QuizQuestionUpdateOne) SetMetadata(v string) *QuizQuestionUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *QuizQuestionUpdateOne) SetNillableMetadata(v *string) *QuizQuestionUpdateOne {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *QuizQuestionUpdateOne) ClearMetadata() *QuizQuestionUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// AddBoxIDs adds the "boxes" edge to the QuestionBox entity by IDs.
func (_u *QuizQuestionUpdateOne) AddBoxIDs(ids ...int) *QuizQuestionUpdateOne {
	_u.mutation.AddBoxIDs(ids...)
	return _u
}

// AddBoxes adds the "boxes" edges to the QuestionBox entity.
func (_u *QuizQuestionUpdateOne) AddBoxes(v ...*QuestionBox) *QuizQuestionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBoxIDs(ids...)
}

// Mutation returns the QuizQuestionMutation object of the builder.
func (_u *QuizQuestionUpdateOne) Mutation() *QuizQuestionMutation {
	return _u.mutation
}

// ClearBoxes clears all "boxes" edges to the QuestionBox entity.
func (_u *QuizQuestionUpdateOne) ClearBoxes() *QuizQuestionUpdateOne {
	_u.mutation.ClearBoxes()
	return _u
}

// RemoveBoxIDs removes the "boxes" edge to QuestionBox entities by IDs.
func (_u *QuizQuestionUpdateOne) RemoveBoxIDs(ids ...int) *QuizQuestionUpdateOne {
	_u.mutation.RemoveBoxIDs(ids...)
	return _u
}

// RemoveBoxes removes "boxes" edges to QuestionBox entities.
func (_u *QuizQuestionUpdateOne) RemoveBoxes(v ...*QuestionBox) *QuizQuestionUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBoxIDs(ids...)
}

// Where appends a list predicates to the QuizQuestionUpdate builder.
func (_u *QuizQuestionUpdateOne) Where(ps ...predicate.QuizQuestion) *QuizQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizQuestionUpdateOne) Select(field string, fields ...string) *QuizQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizQuestion entity.
func (_u *QuizQuestionUpdateOne) Save(ctx context.Context) (*QuizQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) SaveX(ctx context.Context) *QuizQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuizQuestionUpdateOne) sqlSave(ctx context.Context) (_node *QuizQuestion, err error) {
	_spec := sqlgraph.NewUpdateSpec(quizquestion.Table, quizquestion.Columns, sqlgraph.NewFieldSpec(quizquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizquestion.FieldID)
		for _, f := range fields {
			if !quizquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizquestion.FieldID {
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
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(quizquestion.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoURL(); ok {
		_spec.SetField(quizquestion.FieldVideoURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(quizquestion.FieldTimestamp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimestamp(); ok {
		_spec.AddField(quizquestion.FieldTimestamp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(quizquestion.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(quizquestion.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(quizquestion.FieldOptions, field.TypeString, value)
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(quizquestion.FieldOptions, field.TypeString)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(quizquestion.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(quizquestion.FieldExplanation, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasVisualAsset(); ok {
		_spec.SetField(quizquestion.FieldHasVisualAsset, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(quizquestion.FieldMetadata, field.TypeString, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(quizquestion.FieldMetadata, field.TypeString)
	}
	if _u.mutation.BoxesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBoxesIDs(); len(nodes) > 0 && !_u.mutation.BoxesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BoxesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &QuizQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
