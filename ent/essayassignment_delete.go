// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/essayassignment"
	"github.com/behavelab/parley/ent/predicate"
)

// EssayAssignmentDelete is the builder for deleting a EssayAssignment entity.
type EssayAssignmentDelete struct {
	config
	hooks    []Hook
	mutation *EssayAssignmentMutation
}

// Where appends a list predicates to the EssayAssignmentDelete builder.
func (_d *EssayAssignmentDelete) Where(ps ...predicate.EssayAssignment) *EssayAssignmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *EssayAssignmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EssayAssignmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *EssayAssignmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(essayassignment.Table, sqlgraph.NewFieldSpec(essayassignment.FieldID, field.TypeString))
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

// EssayAssignmentDeleteOne is the builder for deleting a single EssayAssignment entity.
type EssayAssignmentDeleteOne struct {
	_d *EssayAssignmentDelete
}

// Where appends a list predicates to the EssayAssignmentDelete builder.
func (_d *EssayAssignmentDeleteOne) Where(ps ...predicate.EssayAssignment) *EssayAssignmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *EssayAssignmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{essayassignment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *EssayAssignmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
