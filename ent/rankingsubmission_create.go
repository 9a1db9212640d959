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
	"github.com/behavelab/parley/ent/rankingsubmission"
	"github.com/behavelab/parley/ent/session"
)

// RankingSubmissionCreate is the builder for creating a RankingSubmission entity.
type RankingSubmissionCreate struct {
	config
	mutation *RankingSubmissionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *RankingSubmissionCreate) SetSessionID(v string) *RankingSubmissionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParticipantID sets the "participant_id" field.
func (_c *RankingSubmissionCreate) SetParticipantID(v string) *RankingSubmissionCreate {
	_c.mutation.SetParticipantID(v)
	return _c
}

// SetEssayRankings sets the "essay_rankings" field.
func (_c *RankingSubmissionCreate) SetEssayRankings(v []map[string]interface{}) *RankingSubmissionCreate {
	_c.mutation.SetEssayRankings(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RankingSubmissionCreate) SetCreatedAt(v time.Time) *RankingSubmissionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RankingSubmissionCreate) SetNillableCreatedAt(v *time.Time) *RankingSubmissionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RankingSubmissionCreate) SetID(v string) *RankingSubmissionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *RankingSubmissionCreate) SetSession(v *Session) *RankingSubmissionCreate {
	return _c.SetSessionID(v.ID)
}

// SetParticipant sets the "participant" edge to the Participant entity.
func (_c *RankingSubmissionCreate) SetParticipant(v *Participant) *RankingSubmissionCreate {
	return _c.SetParticipantID(v.ID)
}

// Mutation returns the RankingSubmissionMutation object of the builder.
func (_c *RankingSubmissionCreate) Mutation() *RankingSubmissionMutation {
	return _c.mutation
}

// Save creates the RankingSubmission in the database.
func (_c *RankingSubmissionCreate) Save(ctx context.Context) (*RankingSubmission, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RankingSubmissionCreate) SaveX(ctx context.Context) *RankingSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RankingSubmissionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RankingSubmissionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RankingSubmissionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rankingsubmission.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RankingSubmissionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RankingSubmission.session_id"`)}
	}
	if _, ok := _c.mutation.ParticipantID(); !ok {
		return &ValidationError{Name: "participant_id", err: errors.New(`ent: missing required field "RankingSubmission.participant_id"`)}
	}
	if _, ok := _c.mutation.EssayRankings(); !ok {
		return &ValidationError{Name: "essay_rankings", err: errors.New(`ent: missing required field "RankingSubmission.essay_rankings"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RankingSubmission.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "RankingSubmission.session"`)}
	}
	if len(_c.mutation.ParticipantIDs()) == 0 {
		return &ValidationError{Name: "participant", err: errors.New(`ent: missing required edge "RankingSubmission.participant"`)}
	}
	return nil
}

func (_c *RankingSubmissionCreate) sqlSave(ctx context.Context) (*RankingSubmission, error) {
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
			return nil, fmt.Errorf("unexpected RankingSubmission.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RankingSubmissionCreate) createSpec() (*RankingSubmission, *sqlgraph.CreateSpec) {
	var (
		_node = &RankingSubmission{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rankingsubmission.Table, sqlgraph.NewFieldSpec(rankingsubmission.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EssayRankings(); ok {
		_spec.SetField(rankingsubmission.FieldEssayRankings, field.TypeJSON, value)
		_node.EssayRankings = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rankingsubmission.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   rankingsubmission.SessionTable,
			Columns: []string{rankingsubmission.SessionColumn},
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
			Table:   rankingsubmission.ParticipantTable,
			Columns: []string{rankingsubmission.ParticipantColumn},
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

// RankingSubmissionCreateBulk is the builder for creating many RankingSubmission entities in bulk.
type RankingSubmissionCreateBulk struct {
	config
	err      error
	builders []*RankingSubmissionCreate
}

// Save creates the RankingSubmission entities in the database.
func (_c *RankingSubmissionCreateBulk) Save(ctx context.Context) ([]*RankingSubmission, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RankingSubmission, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RankingSubmissionMutation)
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
func (_c *RankingSubmissionCreateBulk) SaveX(ctx context.Context) []*RankingSubmission {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RankingSubmissionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RankingSubmissionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
