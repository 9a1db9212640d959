// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/message"
	"github.com/behavelab/parley/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *MessageUpdate) SetType(v string) *MessageUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableType(v *string) *MessageUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDeliveredStatus sets the "delivered_status" field.
func (_u *MessageUpdate) SetDeliveredStatus(v message.DeliveredStatus) *MessageUpdate {
	_u.mutation.SetDeliveredStatus(v)
	return _u
}

// SetNillableDeliveredStatus sets the "delivered_status" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableDeliveredStatus(v *message.DeliveredStatus) *MessageUpdate {
	if v != nil {
		_u.SetDeliveredStatus(*v)
	}
	return _u
}

// SetMessageData sets the "message_data" field.
func (_u *MessageUpdate) SetMessageData(v map[string]interface{}) *MessageUpdate {
	_u.mutation.SetMessageData(v)
	return _u
}

// ClearMessageData clears the value of the "message_data" field.
func (_u *MessageUpdate) ClearMessageData() *MessageUpdate {
	_u.mutation.ClearMessageData()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.DeliveredStatus(); ok {
		if err := message.DeliveredStatusValidator(v); err != nil {
			return &ValidationError{Name: "delivered_status", err: fmt.Errorf(`ent: validator failed for field "Message.delivered_status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.session"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RecipientCleared() {
		_spec.ClearField(message.FieldRecipient, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(message.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeliveredStatus(); ok {
		_spec.SetField(message.FieldDeliveredStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessageData(); ok {
		_spec.SetField(message.FieldMessageData, field.TypeJSON, value)
	}
	if _u.mutation.MessageDataCleared() {
		_spec.ClearField(message.FieldMessageData, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetType sets the "type" field.
func (_u *MessageUpdateOne) SetType(v string) *MessageUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableType(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetDeliveredStatus sets the "delivered_status" field.
func (_u *MessageUpdateOne) SetDeliveredStatus(v message.DeliveredStatus) *MessageUpdateOne {
	_u.mutation.SetDeliveredStatus(v)
	return _u
}

// SetNillableDeliveredStatus sets the "delivered_status" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableDeliveredStatus(v *message.DeliveredStatus) *MessageUpdateOne {
	if v != nil {
		_u.SetDeliveredStatus(*v)
	}
	return _u
}

// SetMessageData sets the "message_data" field.
func (_u *MessageUpdateOne) SetMessageData(v map[string]interface{}) *MessageUpdateOne {
	_u.mutation.SetMessageData(v)
	return _u
}

// ClearMessageData clears the value of the "message_data" field.
func (_u *MessageUpdateOne) ClearMessageData() *MessageUpdateOne {
	_u.mutation.ClearMessageData()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.DeliveredStatus(); ok {
		if err := message.DeliveredStatusValidator(v); err != nil {
			return &ValidationError{Name: "delivered_status", err: fmt.Errorf(`ent: validator failed for field "Message.delivered_status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.session"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if _u.mutation.RecipientCleared() {
		_spec.ClearField(message.FieldRecipient, field.TypeString)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(message.FieldType, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeliveredStatus(); ok {
		_spec.SetField(message.FieldDeliveredStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MessageData(); ok {
		_spec.SetField(message.FieldMessageData, field.TypeJSON, value)
	}
	if _u.mutation.MessageDataCleared() {
		_spec.ClearField(message.FieldMessageData, field.TypeJSON)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
