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
	"github.com/behavelab/parley/ent/wordguess"
)

// WordGuessCreate is the builder for creating a WordGuess entity.
type WordGuessCreate struct {
	config
	mutation *WordGuessMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *WordGuessCreate) SetSessionID(v string) *WordGuessCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *WordGuessCreate) SetParticipantID(v string) *WordGuessCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetGuessText sets the "guess_text" field.
func (_c *WordGuessCreate) SetGuessText(v string) *WordGuessCreate {
	_c.mutation.SetGuessText(v)
	return _c
}

// SetRound sets the "round" field.
func (_c *WordGuessCreate) SetRound(v int) *WordGuessCreate {
	_c.mutation.SetRound(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *WordGuessCreate) SetCorrect(v bool) *WordGuessCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_c *WordGuessCreate) SetNillableCorrect(v *bool) *WordGuessCreate {
	if v != nil {
		_c.SetCorrect(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WordGuessCreate) SetCreatedAt(v time.Time) *WordGuessCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WordGuessCreate) SetNillableCreatedAt(v *time.Time) *WordGuessCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WordGuessCreate) SetID(v string) *WordGuessCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *WordGuessCreate) SetSession(v *Session) *WordGuessCreate {
	return _c.SetSessionID(v.ID)
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *WordGuessCreate) SetParticipant(v *Participant) *WordGuessCreate {
	return _c.SetParticipantID(v.ID)
}

// Mutation returns the WordGuessMutation object of the builder.
func (_c *WordGuessCreate) Mutation() *WordGuessMutation {
	return _c.mutation
}

// Save creates the WordGuess in the database.
func (_c *WordGuessCreate) Save(ctx context.Context) (*WordGuess, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WordGuessCreate) SaveX(ctx context.Context) *WordGuess {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordGuessCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordGuessCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WordGuessCreate) defaults() {
	if _, ok := _c.mutation.Correct(); !ok {
		v := wordguess.DefaultCorrect
		_c.mutation.SetCorrect(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := wordguess.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WordGuessCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "WordGuess.session_id"`)}
	}
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "WordGuess.participant_id"`)}
	}
	if _, ok := _c.mutation.GuessText(); !ok {
		return &ValidationError{Name: "guess_text", err: errors.New(`ent: missing required field "WordGuess.guess_text"`)}
	}
	if _, ok := _c.mutation.Round(); !ok {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required field "WordGuess.round"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "WordGuess.correct"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WordGuess.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "WordGuess.session"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "WordGuess.participant"`)}
	}
	return nil
}

func (_c *WordGuessCreate) sqlSave(ctx context.Context) (*WordGuess, error) {
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
			return nil, fmt.Errorf("unexpected WordGuess.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WordGuessCreate) createSpec() (*WordGuess, *sqlgraph.CreateSpec) {
	var (
		_node = &WordGuess{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(wordguess.Table, sqlgraph.NewFieldSpec(wordguess.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.GuessText(); ok {
		_spec.SetField(wordguess.FieldGuessText, field.TypeString, value)
		_node.GuessText = value
	}
	if value, ok := _c.mutation.Round(); ok {
		_spec.SetField(wordguess.FieldRound, field.TypeInt, value)
		_node.Round = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(wordguess.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(wordguess.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   wordguess.SessionTable,
			Columns: []string{wordguess.SessionColumn},
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
			Table:   wordguess.ParticipantTable,
			Columns: []string{wordguess.ParticipantColumn},
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

// WordGuessCreateBulk is the builder for creating many WordGuess entities in bulk.
type WordGuessCreateBulk struct {
	config
	err      error
	builders []*WordGuessCreate
}

// Save creates the WordGuess entities in the database.
func (_c *WordGuessCreateBulk) Save(ctx context.Context) ([]*WordGuess, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WordGuess, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordGuessMutation)
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
func (_c *WordGuessCreateBulk) SaveX(ctx context.Context) []*WordGuess {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordGuessCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordGuessCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
