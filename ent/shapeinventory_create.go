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
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/shapeinventory"
)

// ShapeInventoryCreate is the builder for creating a ShapeInventory entity.
type ShapeInventoryCreate struct {
	config
	mutation *ShapeInventoryMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ShapeInventoryCreate) SetSessionID(v string) *ShapeInventoryCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *ShapeInventoryCreate) SetParticipantID(v string) *ShapeInventoryCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetShapesInInventory sets the "shapes_in_inventory" field.
func (_c *ShapeInventoryCreate) SetShapesInInventory(v []string) *ShapeInventoryCreate {
	_c.mutation.SetShapesInInventory(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ShapeInventoryCreate) SetUpdatedAt(v time.Time) *ShapeInventoryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ShapeInventoryCreate) SetNillableUpdatedAt(v *time.Time) *ShapeInventoryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ShapeInventoryCreate) SetID(v string) *ShapeInventoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ShapeInventoryCreate) SetSession(v *Session) *ShapeInventoryCreate {
	return _c.SetSessionID(v.ID)
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *ShapeInventoryCreate) SetParticipant(v *Participant) *ShapeInventoryCreate {
	return _c.SetParticipantID(v.ID)
}

// Mutation returns the ShapeInventoryMutation object of the builder.
func (_c *ShapeInventoryCreate) Mutation() *ShapeInventoryMutation {
	return _c.mutation
}

// Save creates the ShapeInventory in the database.
func (_c *ShapeInventoryCreate) Save(ctx context.Context) (*ShapeInventory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ShapeInventoryCreate) SaveX(ctx context.Context) *ShapeInventory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShapeInventoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShapeInventoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ShapeInventoryCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := shapeinventory.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ShapeInventoryCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ShapeInventory.session_id"`)}
	}
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "ShapeInventory.participant_id"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ShapeInventory.updated_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "ShapeInventory.session"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "ShapeInventory.participant"`)}
	}
	return nil
}

func (_c *ShapeInventoryCreate) sqlSave(ctx context.Context) (*ShapeInventory, error) {
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
			return nil, fmt.Errorf("unexpected ShapeInventory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ShapeInventoryCreate) createSpec() (*ShapeInventory, *sqlgraph.CreateSpec) {
	var (
		_node = &ShapeInventory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(shapeinventory.Table, sqlgraph.NewFieldSpec(shapeinventory.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ShapesInInventory(); ok {
		_spec.SetField(shapeinventory.FieldShapesInInventory, field.TypeJSON, value)
		_node.ShapesInInventory = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(shapeinventory.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   shapeinventory.SessionTable,
			Columns: []string{shapeinventory.SessionColumn},
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
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   shapeinventory.ParticipantTable,
			Columns: []string{shapeinventory.ParticipantColumn},
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

// ShapeInventoryCreateBulk is the builder for creating many ShapeInventory entities in bulk.
type ShapeInventoryCreateBulk struct {
	config
	err      error
	builders []*ShapeInventoryCreate
}

// Save creates the ShapeInventory entities in the database.
func (_c *ShapeInventoryCreateBulk) Save(ctx context.Context) ([]*ShapeInventory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ShapeInventory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ShapeInventoryMutation)
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
func (_c *ShapeInventoryCreateBulk) SaveX(ctx context.Context) []*ShapeInventory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ShapeInventoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ShapeInventoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
