// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/essayassignment"
	"github.com/behavelab/parley/ent/predicate"
)

// EssayAssignmentUpdate is the builder for updating EssayAssignment entities.
type EssayAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *EssayAssignmentMutation
}

// Where appends a list predicates to the EssayAssignmentUpdate builder.
func (_u *EssayAssignmentUpdate) Where(ps ...predicate.EssayAssignment) *EssayAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the EssayAssignmentMutation object of the builder.
func (_u *EssayAssignmentUpdate) Mutation() *EssayAssignmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EssayAssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EssayAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EssayAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EssayAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EssayAssignmentUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EssayAssignment.session"`)
	}
	return nil
}

func (_u *EssayAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(essayassignment.Table, essayassignment.Columns, sqlgraph.NewFieldSpec(essayassignment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParticipantCodeCleared() {
		_spec.ClearField(essayassignment.FieldParticipantCode, field.TypeString)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(essayassignment.FieldSourceFile, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{essayassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EssayAssignmentUpdateOne is the builder for updating a single EssayAssignment entity.
type EssayAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EssayAssignmentMutation
}

// Mutation returns the EssayAssignmentMutation object of the builder.
func (_u *EssayAssignmentUpdateOne) Mutation() *EssayAssignmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the EssayAssignmentUpdate builder.
func (_u *EssayAssignmentUpdateOne) Where(ps ...predicate.EssayAssignment) *EssayAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EssayAssignmentUpdateOne) Select(field string, fields ...string) *EssayAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EssayAssignment entity.
func (_u *EssayAssignmentUpdateOne) Save(ctx context.Context) (*EssayAssignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EssayAssignmentUpdateOne) SaveX(ctx context.Context) *EssayAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EssayAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EssayAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EssayAssignmentUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "EssayAssignment.session"`)
	}
	return nil
}

func (_u *EssayAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *EssayAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(essayassignment.Table, essayassignment.Columns, sqlgraph.NewFieldSpec(essayassignment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EssayAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, essayassignment.FieldID)
		for _, f := range fields {
			if !essayassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != essayassignment.FieldID {
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
	if _u.mutation.ParticipantCodeCleared() {
		_spec.ClearField(essayassignment.FieldParticipantCode, field.TypeString)
	}
	if _u.mutation.SourceFileCleared() {
		_spec.ClearField(essayassignment.FieldSourceFile, field.TypeString)
	}
	_node = &EssayAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{essayassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
