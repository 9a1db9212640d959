// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/predicate"
	"github.com/behavelab/parley/ent/productionqueueentry"
)

// ProductionQueueEntryDelete is the builder for deleting a ProductionQueueEntry entity.
type ProductionQueueEntryDelete struct {
	config
	hooks    []Hook
	mutation *ProductionQueueEntryMutation
}

// Where appends a list predicates to the ProductionQueueEntryDelete builder.
func (_d *ProductionQueueEntryDelete) Where(ps ...predicate.ProductionQueueEntry) *ProductionQueueEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProductionQueueEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProductionQueueEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProductionQueueEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(productionqueueentry.Table, sqlgraph.NewFieldSpec(productionqueueentry.FieldID, field.TypeString))
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

// ProductionQueueEntryDeleteOne is the builder for deleting a single ProductionQueueEntry entity.
type ProductionQueueEntryDeleteOne struct {
	_d *ProductionQueueEntryDelete
}

// Where appends a list predicates to the ProductionQueueEntryDelete builder.
func (_d *ProductionQueueEntryDeleteOne) Where(ps ...predicate.ProductionQueueEntry) *ProductionQueueEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProductionQueueEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{productionqueueentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProductionQueueEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
