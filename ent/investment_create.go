// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/investment"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
)

// InvestmentCreate is the builder for creating a Investment entity.
type InvestmentCreate struct {
	config
	mutation *InvestmentMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *InvestmentCreate) SetSessionID(v string) *InvestmentCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *InvestmentCreate) SetParticipantID(v string) *InvestmentCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *InvestmentCreate) SetPrice(v float64) *InvestmentCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetDecisionType sets the "decision_type" field.
func (_c *InvestmentCreate) SetDecisionType(v investment.DecisionType) *InvestmentCreate {
	_c.mutation.SetDecisionType(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvestmentCreate) SetCreatedAt(v time.Time) *InvestmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvestmentCreate) SetNillableCreatedAt(v *time.Time) *InvestmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvestmentCreate) SetID(v string) *InvestmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *InvestmentCreate) SetSession(v *Session) *InvestmentCreate {
	return _c.SetSessionID(v.ID)
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *InvestmentCreate) SetParticipant(v *Participant) *InvestmentCreate {
	return _c.SetParticipantID(v.ID)
}

// Mutation returns the InvestmentMutation object of the builder.
func (_c *InvestmentCreate) Mutation() *InvestmentMutation {
	return _c.mutation
}

// Save creates the Investment in the database.
func (_c *InvestmentCreate) Save(ctx context.Context) (*Investment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvestmentCreate) SaveX(ctx context.Context) *Investment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvestmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := investment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvestmentCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Investment.session_id"`)}
	}
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "Investment.participant_id"`)}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "Investment.price"`)}
	}
	if _, ok := _c.mutation.DecisionType(); !ok {
		return &ValidationError{Name: "decision_type", err: errors.New(`ent: missing required field "Investment.decision_type"`)}
	}
	if v, ok := _c.mutation.DecisionType(); ok {
		if err := investment.DecisionTypeValidator(v); err != nil {
			return &ValidationError{Name: "decision_type", err: fmt.Errorf(`ent: validator failed for field "Investment.decision_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Investment.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Investment.session"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "Investment.participant"`)}
	}
	return nil
}

func (_c *InvestmentCreate) sqlSave(ctx context.Context) (*Investment, error) {
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
			return nil, fmt.Errorf("unexpected Investment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvestmentCreate) createSpec() (*Investment, *sqlgraph.CreateSpec) {
	var (
		_node = &Investment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(investment.Table, sqlgraph.NewFieldSpec(investment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(investment.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.DecisionType(); ok {
		_spec.SetField(investment.FieldDecisionType, field.TypeEnum, value)
		_node.DecisionType = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(investment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   investment.SessionTable,
			Columns: []string{investment.SessionColumn},
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
			Table:   investment.ParticipantTable,
			Columns: []string{investment.ParticipantColumn},
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

// InvestmentCreateBulk is the builder for creating many Investment entities in bulk.
type InvestmentCreateBulk struct {
	config
	err      error
	builders []*InvestmentCreate
}

// Save creates the Investment entities in the database.
func (_c *InvestmentCreateBulk) Save(ctx context.Context) ([]*Investment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Investment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvestmentMutation)
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
func (_c *InvestmentCreateBulk) SaveX(ctx context.Context) []*Investment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
