// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/productionqueueentry"
	"github.com/behavelab/parley/ent/session"
)

// ProductionQueueEntryCreate is the builder for creating a ProductionQueueEntry entity.
type ProductionQueueEntryCreate struct {
	config
	mutation *ProductionQueueEntryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ProductionQueueEntryCreate) SetSessionID(v string) *ProductionQueueEntryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *ProductionQueueEntryCreate) SetParticipantID(v string) *ProductionQueueEntryCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetShape sets the "shape" field.
func (_c *ProductionQueueEntryCreate) SetShape(v string) *ProductionQueueEntryCreate {
	_c.mutation.SetShape(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ProductionQueueEntryCreate) SetQuantity(v int) *ProductionQueueEntryCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProductionQueueEntryCreate) SetStatus(v productionqueueentry.Status) *ProductionQueueEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProductionQueueEntryCreate) SetNillableStatus(v *productionqueueentry.Status) *ProductionQueueEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetQueuePosition sets the "queue_position" field.
func (_c *ProductionQueueEntryCreate) SetQueuePosition(v int) *ProductionQueueEntryCreate {
	_c.mutation.SetQueuePosition(v)
	return _c
}

// SetNillableQueuePosition sets the "queue_position" field if the given value is not nil.
func (_c *ProductionQueueEntryCreate) SetNillableQueuePosition(v *int) *ProductionQueueEntryCreate {
	if v != nil {
		_c.SetQueuePosition(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *ProductionQueueEntryCreate) SetStartTime(v time.Time) *ProductionQueueEntryCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *ProductionQueueEntryCreate) SetNillableStartTime(v *time.Time) *ProductionQueueEntryCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEstimatedCompletion sets the "estimated_completion" field.
func (_c *ProductionQueueEntryCreate) SetEstimatedCompletion(v time.Time) *ProductionQueueEntryCreate {
	_c.mutation.SetEstimatedCompletion(v)
	return _c
}

// SetNillableEstimatedCompletion sets the "estimated_completion" field if the given value is not nil.
func (_c *ProductionQueueEntryCreate) SetNillableEstimatedCompletion(v *time.Time) *ProductionQueueEntryCreate {
	if v != nil {
		_c.SetEstimatedCompletion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProductionQueueEntryCreate) SetCreatedAt(v time.Time) *ProductionQueueEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProductionQueueEntryCreate) SetNillableCreatedAt(v *time.Time) *ProductionQueueEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProductionQueueEntryCreate) SetID(v string) *ProductionQueueEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ProductionQueueEntryCreate) SetSession(v *Session) *ProductionQueueEntryCreate {
	return _c.SetSessionID(v.ID)
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *ProductionQueueEntryCreate) SetParticipant(v *Participant) *ProductionQueueEntryCreate {
	return _c.SetParticipantID(v.ID)
}

// Mutation returns the ProductionQueueEntryMutation object of the builder.
func (_c *ProductionQueueEntryCreate) Mutation() *ProductionQueueEntryMutation {
	return _c.mutation
}

// Save creates the ProductionQueueEntry in the database.
func (_c *ProductionQueueEntryCreate) Save(ctx context.Context) (*ProductionQueueEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProductionQueueEntryCreate) SaveX(ctx context.Context) *ProductionQueueEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductionQueueEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductionQueueEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProductionQueueEntryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := productionqueueentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.QueuePosition(); !ok {
		v := productionqueueentry.DefaultQueuePosition
		_c.mutation.SetQueuePosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := productionqueueentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProductionQueueEntryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProductionQueueEntry.session_id"`)}
	}
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "ProductionQueueEntry.participant_id"`)}
	}
	if _, ok := _c.mutation.Shape(); !ok {
		return &ValidationError{Name: "shape", err: errors.New(`ent: missing required field "ProductionQueueEntry.shape"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "ProductionQueueEntry.quantity"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProductionQueueEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := productionqueueentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProductionQueueEntry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QueuePosition(); !ok {
		return &ValidationError{Name: "queue_position", err: errors.New(`ent: missing required field "ProductionQueueEntry.queue_position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProductionQueueEntry.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ProductionQueueEntry.session"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "ProductionQueueEntry.participant"`)}
	}
	return nil
}

func (_c *ProductionQueueEntryCreate) sqlSave(ctx context.Context) (*ProductionQueueEntry, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ProductionQueueEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProductionQueueEntryCreate) createSpec() (*ProductionQueueEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ProductionQueueEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(productionqueueentry.Table, sqlgraph.NewFieldSpec(productionqueueentry.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Shape(); ok {
		_spec.SetField(productionqueueentry.FieldShape, field.TypeString, value)
		_node.Shape = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(productionqueueentry.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(productionqueueentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.QueuePosition(); ok {
		_spec.SetField(productionqueueentry.FieldQueuePosition, field.TypeInt, value)
		_node.QueuePosition = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(productionqueueentry.FieldStartTime, field.TypeTime, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.EstimatedCompletion(); ok {
		_spec.SetField(productionqueueentry.FieldEstimatedCompletion, field.TypeTime, value)
		_node.EstimatedCompletion = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(productionqueueentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   productionqueueentry.SessionTable,
			Columns: []string{productionqueueentry.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(session.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ParticipantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   productionqueueentry.ParticipantTable,
			Columns: []string{productionqueueentry.ParticipantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ParticipantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ProductionQueueEntryCreateBulk is the builder for creating many ProductionQueueEntry entities in bulk.
type ProductionQueueEntryCreateBulk struct {
	config
	err      error
	builders []*ProductionQueueEntryCreate
}

// Save creates the ProductionQueueEntry entities in the database.
func (_c *ProductionQueueEntryCreateBulk) Save(ctx context.Context) ([]*ProductionQueueEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProductionQueueEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProductionQueueEntryMutation)
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
func (_c *ProductionQueueEntryCreateBulk) SaveX(ctx context.Context) []*ProductionQueueEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProductionQueueEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProductionQueueEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
