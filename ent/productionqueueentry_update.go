// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/predicate"
	"github.com/behavelab/parley/ent/productionqueueentry"
)

// ProductionQueueEntryUpdate is the builder for updating ProductionQueueEntry entities.
type ProductionQueueEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ProductionQueueEntryMutation
}

// Where appends a list predicates to the ProductionQueueEntryUpdate builder.
func (_u *ProductionQueueEntryUpdate) Where(ps ...predicate.ProductionQueueEntry) *ProductionQueueEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProductionQueueEntryUpdate) SetStatus(v productionqueueentry.Status) *ProductionQueueEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProductionQueueEntryUpdate) SetNillableStatus(v *productionqueueentry.Status) *ProductionQueueEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQueuePosition sets the "queue_position" field.
func (_u *ProductionQueueEntryUpdate) SetQueuePosition(v int) *ProductionQueueEntryUpdate {
	_u.mutation.ResetQueuePosition()
	_u.mutation.SetQueuePosition(v)
	return _u
}

// SetNillableQueuePosition sets the "queue_position" field if the given value is not nil.
func (_u *ProductionQueueEntryUpdate) SetNillableQueuePosition(v *int) *ProductionQueueEntryUpdate {
	if v != nil {
		_u.SetQueuePosition(*v)
	}
	return _u
}

// AddQueuePosition adds value to the "queue_position" field.
func (_u *ProductionQueueEntryUpdate) AddQueuePosition(v int) *ProductionQueueEntryUpdate {
	_u.mutation.AddQueuePosition(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ProductionQueueEntryUpdate) SetStartTime(v time.Time) *ProductionQueueEntryUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ProductionQueueEntryUpdate) SetNillableStartTime(v *time.Time) *ProductionQueueEntryUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *ProductionQueueEntryUpdate) ClearStartTime() *ProductionQueueEntryUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEstimatedCompletion sets the "estimated_completion" field.
func (_u *ProductionQueueEntryUpdate) SetEstimatedCompletion(v time.Time) *ProductionQueueEntryUpdate {
	_u.mutation.SetEstimatedCompletion(v)
	return _u
}

// SetNillableEstimatedCompletion sets the "estimated_completion" field if the given value is not nil.
func (_u *ProductionQueueEntryUpdate) SetNillableEstimatedCompletion(v *time.Time) *ProductionQueueEntryUpdate {
	if v != nil {
		_u.SetEstimatedCompletion(*v)
	}
	return _u
}

// ClearEstimatedCompletion clears the value of the "estimated_completion" field.
func (_u *ProductionQueueEntryUpdate) ClearEstimatedCompletion() *ProductionQueueEntryUpdate {
	_u.mutation.ClearEstimatedCompletion()
	return _u
}

// Mutation returns the ProductionQueueEntryMutation object of the builder.
func (_u *ProductionQueueEntryUpdate) Mutation() *ProductionQueueEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProductionQueueEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductionQueueEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProductionQueueEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductionQueueEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductionQueueEntryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := productionqueueentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductionQueueEntry.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductionQueueEntry.session"`)
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductionQueueEntry.participant"`)
	}
	return nil
}

func (_u *ProductionQueueEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productionqueueentry.Table, productionqueueentry.Columns, sqlgraph.NewFieldSpec(productionqueueentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(productionqueueentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QueuePosition(); ok {
		_spec.SetField(productionqueueentry.FieldQueuePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueuePosition(); ok {
		_spec.AddField(productionqueueentry.FieldQueuePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(productionqueueentry.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(productionqueueentry.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EstimatedCompletion(); ok {
		_spec.SetField(productionqueueentry.FieldEstimatedCompletion, field.TypeTime, value)
	}
	if _u.mutation.EstimatedCompletionCleared() {
		_spec.ClearField(productionqueueentry.FieldEstimatedCompletion, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productionqueueentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProductionQueueEntryUpdateOne is the builder for updating a single ProductionQueueEntry entity.
type ProductionQueueEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProductionQueueEntryMutation
}

// SetStatus sets the "status" field.
func (_u *ProductionQueueEntryUpdateOne) SetStatus(v productionqueueentry.Status) *ProductionQueueEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProductionQueueEntryUpdateOne) SetNillableStatus(v *productionqueueentry.Status) *ProductionQueueEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQueuePosition sets the "queue_position" field.
func (_u *ProductionQueueEntryUpdateOne) SetQueuePosition(v int) *ProductionQueueEntryUpdateOne {
	_u.mutation.ResetQueuePosition()
	_u.mutation.SetQueuePosition(v)
	return _u
}

// SetNillableQueuePosition sets the "queue_position" field if the given value is not nil.
func (_u *ProductionQueueEntryUpdateOne) SetNillableQueuePosition(v *int) *ProductionQueueEntryUpdateOne {
	if v != nil {
		_u.SetQueuePosition(*v)
	}
	return _u
}

// AddQueuePosition adds value to the "queue_position" field.
func (_u *ProductionQueueEntryUpdateOne) AddQueuePosition(v int) *ProductionQueueEntryUpdateOne {
	_u.mutation.AddQueuePosition(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *ProductionQueueEntryUpdateOne) SetStartTime(v time.Time) *ProductionQueueEntryUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *ProductionQueueEntryUpdateOne) SetNillableStartTime(v *time.Time) *ProductionQueueEntryUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *ProductionQueueEntryUpdateOne) ClearStartTime() *ProductionQueueEntryUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEstimatedCompletion sets the "estimated_completion" field.
func (_u *ProductionQueueEntryUpdateOne) SetEstimatedCompletion(v time.Time) *ProductionQueueEntryUpdateOne {
	_u.mutation.SetEstimatedCompletion(v)
	return _u
}

// SetNillableEstimatedCompletion sets the "estimated_completion" field if the given value is not nil.
func (_u *ProductionQueueEntryUpdateOne) SetNillableEstimatedCompletion(v *time.Time) *ProductionQueueEntryUpdateOne {
	if v != nil {
		_u.SetEstimatedCompletion(*v)
	}
	return _u
}

// ClearEstimatedCompletion clears the value of the "estimated_completion" field.
func (_u *ProductionQueueEntryUpdateOne) ClearEstimatedCompletion() *ProductionQueueEntryUpdateOne {
	_u.mutation.ClearEstimatedCompletion()
	return _u
}

// Mutation returns the ProductionQueueEntryMutation object of the builder.
func (_u *ProductionQueueEntryUpdateOne) Mutation() *ProductionQueueEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProductionQueueEntryUpdate builder.
func (_u *ProductionQueueEntryUpdateOne) Where(ps ...predicate.ProductionQueueEntry) *ProductionQueueEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProductionQueueEntryUpdateOne) Select(field string, fields ...string) *ProductionQueueEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProductionQueueEntry entity.
func (_u *ProductionQueueEntryUpdateOne) Save(ctx context.Context) (*ProductionQueueEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProductionQueueEntryUpdateOne) SaveX(ctx context.Context) *ProductionQueueEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProductionQueueEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProductionQueueEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProductionQueueEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := productionqueueentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductionQueueEntry.status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductionQueueEntry.session"`)
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProductionQueueEntry.participant"`)
	}
	return nil
}

func (_u *ProductionQueueEntryUpdateOne) sqlSave(ctx context.Context) (_node *ProductionQueueEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(productionqueueentry.Table, productionqueueentry.Columns, sqlgraph.NewFieldSpec(productionqueueentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProductionQueueEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, productionqueueentry.FieldID)
		for _, f := range fields {
			if !productionqueueentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != productionqueueentry.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(productionqueueentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QueuePosition(); ok {
		_spec.SetField(productionqueueentry.FieldQueuePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQueuePosition(); ok {
		_spec.AddField(productionqueueentry.FieldQueuePosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(productionqueueentry.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(productionqueueentry.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EstimatedCompletion(); ok {
		_spec.SetField(productionqueueentry.FieldEstimatedCompletion, field.TypeTime, value)
	}
	if _u.mutation.EstimatedCompletionCleared() {
		_spec.ClearField(productionqueueentry.FieldEstimatedCompletion, field.TypeTime)
	}
	_node = &ProductionQueueEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{productionqueueentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
