// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/essayassignment"
	"github.com/behavelab/parley/ent/session"
)

// EssayAssignmentCreate is the builder for creating a EssayAssignment entity.
type EssayAssignmentCreate struct {
	config
	mutation *EssayAssignmentMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *EssayAssignmentCreate) SetSessionID(v string) *EssayAssignmentCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParticipantCode sets the "participant_code" field.
func (_c *EssayAssignmentCreate) SetParticipantCode(v string) *EssayAssignmentCreate {
	_c.mutation.SetParticipantCode(v)
	return _c
}

// SetNillableParticipantCode sets the "participant_code" field if the given value is not nil.
func (_c *EssayAssignmentCreate) SetNillableParticipantCode(v *string) *EssayAssignmentCreate {
	if v != nil {
		_c.SetParticipantCode(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *EssayAssignmentCreate) SetTitle(v string) *EssayAssignmentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *EssayAssignmentCreate) SetContent(v string) *EssayAssignmentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSourceFile sets the "source_file" field.
func (_c *EssayAssignmentCreate) SetSourceFile(v string) *EssayAssignmentCreate {
	_c.mutation.SetSourceFile(v)
	return _c
}

// SetNillableSourceFile sets the "source_file" field if the given value is not nil.
func (_c *EssayAssignmentCreate) SetNillableSourceFile(v *string) *EssayAssignmentCreate {
	if v != nil {
		_c.SetSourceFile(*v)
	}
	return _c
}

// SetWordCount sets the "word_count" field.
func (_c *EssayAssignmentCreate) SetWordCount(v int) *EssayAssignmentCreate {
	_c.mutation.SetWordCount(v)
	return _c
}

// SetNillableWordCount sets the "word_count" field if the given value is not nil.
func (_c *EssayAssignmentCreate) SetNillableWordCount(v *int) *EssayAssignmentCreate {
	if v != nil {
		_c.SetWordCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EssayAssignmentCreate) SetCreatedAt(v time.Time) *EssayAssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EssayAssignmentCreate) SetNillableCreatedAt(v *time.Time) *EssayAssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EssayAssignmentCreate) SetID(v string) *EssayAssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *EssayAssignmentCreate) SetSession(v *Session) *EssayAssignmentCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the EssayAssignmentMutation object of the builder.
func (_c *EssayAssignmentCreate) Mutation() *EssayAssignmentMutation {
	return _c.mutation
}

// Save creates the EssayAssignment in the database.
func (_c *EssayAssignmentCreate) Save(ctx context.Context) (*EssayAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EssayAssignmentCreate) SaveX(ctx context.Context) *EssayAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EssayAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EssayAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EssayAssignmentCreate) defaults() {
	if _, ok := _c.mutation.WordCount(); !ok {
		v := essayassignment.DefaultWordCount
		_c.mutation.SetWordCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := essayassignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EssayAssignmentCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "EssayAssignment.session_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "EssayAssignment.title"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "EssayAssignment.content"`)}
	}
	if _, ok := _c.mutation.WordCount(); !ok {
		return &ValidationError{Name: "word_count", err: errors.New(`ent: missing required field "EssayAssignment.word_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "EssayAssignment.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "EssayAssignment.session"`)}
	}
	return nil
}

func (_c *EssayAssignmentCreate) sqlSave(ctx context.Context) (*EssayAssignment, error) {
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
			return nil, fmt.Errorf("unexpected EssayAssignment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EssayAssignmentCreate) createSpec() (*EssayAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &EssayAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(essayassignment.Table, sqlgraph.NewFieldSpec(essayassignment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParticipantCode(); ok {
		_spec.SetField(essayassignment.FieldParticipantCode, field.TypeString, value)
		_node.ParticipantCode = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(essayassignment.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(essayassignment.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.SourceFile(); ok {
		_spec.SetField(essayassignment.FieldSourceFile, field.TypeString, value)
		_node.SourceFile = value
	}
	if value, ok := _c.mutation.WordCount(); ok {
		_spec.SetField(essayassignment.FieldWordCount, field.TypeInt, value)
		_node.WordCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(essayassignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   essayassignment.SessionTable,
			Columns: []string{essayassignment.SessionColumn},
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
	return _node, _spec
}

// EssayAssignmentCreateBulk is the builder for creating many EssayAssignment entities in bulk.
type EssayAssignmentCreateBulk struct {
	config
	err      error
	builders []*EssayAssignmentCreate
}

// Save creates the EssayAssignment entities in the database.
func (_c *EssayAssignmentCreateBulk) Save(ctx context.Context) ([]*EssayAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EssayAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EssayAssignmentMutation)
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
func (_c *EssayAssignmentCreateBulk) SaveX(ctx context.Context) []*EssayAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EssayAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EssayAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
