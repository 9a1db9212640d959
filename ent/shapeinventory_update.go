// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/predicate"
	"github.com/behavelab/parley/ent/shapeinventory"
)

// ShapeInventoryUpdate is the builder for updating ShapeInventory entities.
type ShapeInventoryUpdate struct {
	config
	hooks    []Hook
	mutation *ShapeInventoryMutation
}

// Where appends a list predicates to the ShapeInventoryUpdate builder.
func (_u *ShapeInventoryUpdate) Where(ps ...predicate.ShapeInventory) *ShapeInventoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetShapesInInventory sets the "shapes_in_inventory" field.
func (_u *ShapeInventoryUpdate) SetShapesInInventory(v []string) *ShapeInventoryUpdate {
	_u.mutation.SetShapesInInventory(v)
	return _u
}

// AppendShapesInInventory appends value to the "shapes_in_inventory" field.
func (_u *ShapeInventoryUpdate) AppendShapesInInventory(v []string) *ShapeInventoryUpdate {
	_u.mutation.AppendShapesInInventory(v)
	return _u
}

// ClearShapesInInventory clears the value of the "shapes_in_inventory" field.
func (_u *ShapeInventoryUpdate) ClearShapesInInventory() *ShapeInventoryUpdate {
	_u.mutation.ClearShapesInInventory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShapeInventoryUpdate) SetUpdatedAt(v time.Time) *ShapeInventoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ShapeInventoryMutation object of the builder.
func (_u *ShapeInventoryUpdate) Mutation() *ShapeInventoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ShapeInventoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShapeInventoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ShapeInventoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShapeInventoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShapeInventoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shapeinventory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShapeInventoryUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShapeInventory.session"`)
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShapeInventory.participant"`)
	}
	return nil
}

func (_u *ShapeInventoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shapeinventory.Table, shapeinventory.Columns, sqlgraph.NewFieldSpec(shapeinventory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ShapesInInventory(); ok {
		_spec.SetField(shapeinventory.FieldShapesInInventory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedShapesInInventory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, shapeinventory.FieldShapesInInventory, value)
		})
	}
	if _u.mutation.ShapesInInventoryCleared() {
		_spec.ClearField(shapeinventory.FieldShapesInInventory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shapeinventory.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shapeinventory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ShapeInventoryUpdateOne is the builder for updating a single ShapeInventory entity.
type ShapeInventoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ShapeInventoryMutation
}

// SetShapesInInventory sets the "shapes_in_inventory" field.
func (_u *ShapeInventoryUpdateOne) SetShapesInInventory(v []string) *ShapeInventoryUpdateOne {
	_u.mutation.SetShapesInInventory(v)
	return _u
}

// AppendShapesInInventory appends value to the "shapes_in_inventory" field.
func (_u *ShapeInventoryUpdateOne) AppendShapesInInventory(v []string) *ShapeInventoryUpdateOne {
	_u.mutation.AppendShapesInInventory(v)
	return _u
}

// ClearShapesInInventory clears the value of the "shapes_in_inventory" field.
func (_u *ShapeInventoryUpdateOne) ClearShapesInInventory() *ShapeInventoryUpdateOne {
	_u.mutation.ClearShapesInInventory()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ShapeInventoryUpdateOne) SetUpdatedAt(v time.Time) *ShapeInventoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ShapeInventoryMutation object of the builder.
func (_u *ShapeInventoryUpdateOne) Mutation() *ShapeInventoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ShapeInventoryUpdate builder.
func (_u *ShapeInventoryUpdateOne) Where(ps ...predicate.ShapeInventory) *ShapeInventoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ShapeInventoryUpdateOne) Select(field string, fields ...string) *ShapeInventoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ShapeInventory entity.
func (_u *ShapeInventoryUpdateOne) Save(ctx context.Context) (*ShapeInventory, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ShapeInventoryUpdateOne) SaveX(ctx context.Context) *ShapeInventory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ShapeInventoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ShapeInventoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ShapeInventoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := shapeinventory.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ShapeInventoryUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShapeInventory.session"`)
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ShapeInventory.participant"`)
	}
	return nil
}

func (_u *ShapeInventoryUpdateOne) sqlSave(ctx context.Context) (_node *ShapeInventory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(shapeinventory.Table, shapeinventory.Columns, sqlgraph.NewFieldSpec(shapeinventory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ShapeInventory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, shapeinventory.FieldID)
		for _, f := range fields {
			if !shapeinventory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != shapeinventory.FieldID {
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
	if value, ok := _u.mutation.ShapesInInventory(); ok {
		_spec.SetField(shapeinventory.FieldShapesInInventory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedShapesInInventory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, shapeinventory.FieldShapesInInventory, value)
		})
	}
	if _u.mutation.ShapesInInventoryCleared() {
		_spec.ClearField(shapeinventory.FieldShapesInInventory, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(shapeinventory.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ShapeInventory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{shapeinventory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
