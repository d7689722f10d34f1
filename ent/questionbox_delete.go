// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"vidquiz/ent/predicate"
	"vidquiz/ent/questionbox"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// QuestionBoxDelete is the builder for deleting a QuestionBox entity.
type QuestionBoxDelete struct {
	config
	hooks    []Hook
	mutation *QuestionBoxMutation
}

// Where appends a list predicates to the QuestionBoxDelete builder.
func (_d *QuestionBoxDelete) Where(ps ...predicate.QuestionBox) *QuestionBoxDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *QuestionBoxDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuestionBoxDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *QuestionBoxDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(questionbox.Table, sqlgraph.NewFieldSpec(questionbox.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// QuestionBoxDeleteOne is the builder for deleting a single QuestionBox entity.
type QuestionBoxDeleteOne struct {
	_d *QuestionBoxDelete
}

// Where appends a list predicates to the QuestionBoxDelete builder.
func (_d *QuestionBoxDeleteOne) Where(ps ...predicate.QuestionBox) *QuestionBoxDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *QuestionBoxDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{questionbox.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *QuestionBoxDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
