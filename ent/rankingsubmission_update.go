// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/behavelab/parley/ent/predicate"
	"github.com/behavelab/parley/ent/rankingsubmission"
)

// RankingSubmissionUpdate is the builder for updating RankingSubmission entities.
type RankingSubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *RankingSubmissionMutation
}

// Where appends a list predicates to the RankingSubmissionUpdate builder.
func (_u *RankingSubmissionUpdate) Where(ps ...predicate.RankingSubmission) *RankingSubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEssayRankings sets the "essay_rankings" field.
func (_u *RankingSubmissionUpdate) SetEssayRankings(v []map[string]interface{}) *RankingSubmissionUpdate {
	_u.mutation.SetEssayRankings(v)
	return _u
}

// AppendEssayRankings appends value to the "essay_rankings" field.
func (_u *RankingSubmissionUpdate) AppendEssayRankings(v []map[string]interface{}) *RankingSubmissionUpdate {
	_u.mutation.AppendEssayRankings(v)
	return _u
}

// Mutation returns the RankingSubmissionMutation object of the builder.
func (_u *RankingSubmissionUpdate) Mutation() *RankingSubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RankingSubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RankingSubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RankingSubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RankingSubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RankingSubmissionUpdate) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RankingSubmission.session"`)
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RankingSubmission.participant"`)
	}
	return nil
}

func (_u *RankingSubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rankingsubmission.Table, rankingsubmission.Columns, sqlgraph.NewFieldSpec(rankingsubmission.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EssayRankings(); ok {
		_spec.SetField(rankingsubmission.FieldEssayRankings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEssayRankings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rankingsubmission.FieldEssayRankings, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rankingsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RankingSubmissionUpdateOne is the builder for updating a single RankingSubmission entity.
type RankingSubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RankingSubmissionMutation
}

// SetEssayRankings sets the "essay_rankings" field.
func (_u *RankingSubmissionUpdateOne) SetEssayRankings(v []map[string]interface{}) *RankingSubmissionUpdateOne {
	_u.mutation.SetEssayRankings(v)
	return _u
}

// AppendEssayRankings appends value to the "essay_rankings" field.
func (_u *RankingSubmissionUpdateOne) AppendEssayRankings(v []map[string]interface{}) *RankingSubmissionUpdateOne {
	_u.mutation.AppendEssayRankings(v)
	return _u
}

// Mutation returns the RankingSubmissionMutation object of the builder.
func (_u *RankingSubmissionUpdateOne) Mutation() *RankingSubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the RankingSubmissionUpdate builder.
func (_u *RankingSubmissionUpdateOne) Where(ps ...predicate.RankingSubmission) *RankingSubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RankingSubmissionUpdateOne) Select(field string, fields ...string) *RankingSubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RankingSubmission entity.
func (_u *RankingSubmissionUpdateOne) Save(ctx context.Context) (*RankingSubmission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RankingSubmissionUpdateOne) SaveX(ctx context.Context) *RankingSubmission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RankingSubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RankingSubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RankingSubmissionUpdateOne) check() error {
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RankingSubmission.session"`)
	}
	if _u.mutation.ParticipantCleared() && len(_u.mutation.ParticipantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RankingSubmission.participant"`)
	}
	return nil
}

func (_u *RankingSubmissionUpdateOne) sqlSave(ctx context.Context) (_node *RankingSubmission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rankingsubmission.Table, rankingsubmission.Columns, sqlgraph.NewFieldSpec(rankingsubmission.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RankingSubmission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rankingsubmission.FieldID)
		for _, f := range fields {
			if !rankingsubmission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rankingsubmission.FieldID {
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
	if value, ok := _u.mutation.EssayRankings(); ok {
		_spec.SetField(rankingsubmission.FieldEssayRankings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEssayRankings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, rankingsubmission.FieldEssayRankings, value)
		})
	}
	_node = &RankingSubmission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rankingsubmission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
