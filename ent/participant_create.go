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
	"github.com/behavelab/parley/ent/productionqueueentry"
	"github.com/behavelab/parley/ent/rankingsubmission"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/shapeinventory"
	"github.com/behavelab/parley/ent/wordguess"
)

// ParticipantCreate is the builder for creating a Participant entity.
type ParticipantCreate struct {
	config
	mutation *ParticipantMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ParticipantCreate) SetSessionID(v string) *ParticipantCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetParticipantCode sets the "participant_code" field.
func (_c *ParticipantCreate) SetParticipantCode(v string) *ParticipantCreate {
	_c.mutation.SetParticipantCode(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ParticipantCreate) SetType(v participant.Type) *ParticipantCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableType(v *participant.Type) *ParticipantCreate {
	if v != nil {
		_c.SetType(*v)
	}
	return _c
}

// SetSpecialtyShape sets the "specialty_shape" field.
func (_c *ParticipantCreate) SetSpecialtyShape(v string) *ParticipantCreate {
	_c.mutation.SetSpecialtyShape(v)
	return _c
}

// SetNillableSpecialtyShape sets the "specialty_shape" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableSpecialtyShape(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetSpecialtyShape(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *ParticipantCreate) SetRole(v string) *ParticipantCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableRole(v *string) *ParticipantCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetMoney sets the "money" field.
func (_c *ParticipantCreate) SetMoney(v int) *ParticipantCreate {
	_c.mutation.SetMoney(v)
	return _c
}

// SetNillableMoney sets the "money" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableMoney(v *int) *ParticipantCreate {
	if v != nil {
		_c.SetMoney(*v)
	}
	return _c
}

// SetOrders sets the "orders" field.
func (_c *ParticipantCreate) SetOrders(v []string) *ParticipantCreate {
	_c.mutation.SetOrders(v)
	return _c
}

// SetOrdersCompleted sets the "orders_completed" field.
func (_c *ParticipantCreate) SetOrdersCompleted(v int) *ParticipantCreate {
	_c.mutation.SetOrdersCompleted(v)
	return _c
}

// SetNillableOrdersCompleted sets the "orders_completed" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableOrdersCompleted(v *int) *ParticipantCreate {
	if v != nil {
		_c.SetOrdersCompleted(*v)
	}
	return _c
}

// SetAssignedWords sets the "assigned_words" field.
func (_c *ParticipantCreate) SetAssignedWords(v []string) *ParticipantCreate {
	_c.mutation.SetAssignedWords(v)
	return _c
}

// SetCurrentRankings sets the "current_rankings" field.
func (_c *ParticipantCreate) SetCurrentRankings(v map[string]interface{}) *ParticipantCreate {
	_c.mutation.SetCurrentRankings(v)
	return _c
}

// SetLoginStatus sets the "login_status" field.
func (_c *ParticipantCreate) SetLoginStatus(v participant.LoginStatus) *ParticipantCreate {
	_c.mutation.SetLoginStatus(v)
	return _c
}

// SetNillableLoginStatus sets the "login_status" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableLoginStatus(v *participant.LoginStatus) *ParticipantCreate {
	if v != nil {
		_c.SetLoginStatus(*v)
	}
	return _c
}

// SetSpecialtyProductionUsed sets the "specialty_production_used" field.
func (_c *ParticipantCreate) SetSpecialtyProductionUsed(v int) *ParticipantCreate {
	_c.mutation.SetSpecialtyProductionUsed(v)
	return _c
}

// SetNillableSpecialtyProductionUsed sets the "specialty_production_used" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableSpecialtyProductionUsed(v *int) *ParticipantCreate {
	if v != nil {
		_c.SetSpecialtyProductionUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ParticipantCreate) SetCreatedAt(v time.Time) *ParticipantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ParticipantCreate) SetNillableCreatedAt(v *time.Time) *ParticipantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ParticipantCreate) SetID(v string) *ParticipantCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the Session entity.
func (_c *ParticipantCreate) SetSession(v *Session) *ParticipantCreate {
	return _c.SetSessionID(v.ID)
}

// SetInventoryID sets the "inventory" edge to the ShapeInventory entity by ID.
func (_c *ParticipantCreate) SetInventoryID(id string) *ParticipantCreate {
	_c.mutation.SetInventoryID(id)
	return _c
}

// SetNillableInventoryID sets the "inventory" edge to the ShapeInventory entity by ID if the given value is not nil.
func (_c *ParticipantCreate) SetNillableInventoryID(id *string) *ParticipantCreate {
	if id != nil {
		_c = _c.SetInventoryID(*id)
	}
	return _c
}

// SetInventory sets the "inventory" edge to the ShapeInventory entity.
func (_c *ParticipantCreate) SetInventory(v *ShapeInventory) *ParticipantCreate {
	return _c.SetInventoryID(v.ID)
}

// AddProductionEntryIDs adds the "production_entries" edge to the ProductionQueueEntry entity by IDs.
func (_c *ParticipantCreate) AddProductionEntryIDs(ids ...string) *ParticipantCreate {
	_c.mutation.AddProductionEntryIDs(ids...)
	return _c
}

// AddProductionEntries adds the "production_entries" edges to the ProductionQueueEntry entity.
func (_c *ParticipantCreate) AddProductionEntries(v ...*ProductionQueueEntry) *ParticipantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProductionEntryIDs(ids...)
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by IDs.
func (_c *ParticipantCreate) AddInvestmentIDs(ids ...string) *ParticipantCreate {
	_c.mutation.AddInvestmentIDs(ids...)
	return _c
}

// AddInvestments adds the "investments" edges to the Investment entity.
func (_c *ParticipantCreate) AddInvestments(v ...*Investment) *ParticipantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvestmentIDs(ids...)
}

// AddRankingSubmissionIDs adds the "ranking_submissions" edge to the RankingSubmission entity by IDs.
func (_c *ParticipantCreate) AddRankingSubmissionIDs(ids ...string) *ParticipantCreate {
	_c.mutation.AddRankingSubmissionIDs(ids...)
	return _c
}

// AddRankingSubmissions adds the "ranking_submissions" edges to the RankingSubmission entity.
func (_c *ParticipantCreate) AddRankingSubmissions(v ...*RankingSubmission) *ParticipantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRankingSubmissionIDs(ids...)
}

// AddWordGuessIDs adds the "word_guesses" edge to the WordGuess entity by IDs.
func (_c *ParticipantCreate) AddWordGuessIDs(ids ...string) *ParticipantCreate {
	_c.mutation.AddWordGuessIDs(ids...)
	return _c
}

// AddWordGuesses adds the "word_guesses" edges to the WordGuess entity.
func (_c *ParticipantCreate) AddWordGuesses(v ...*WordGuess) *ParticipantCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWordGuessIDs(ids...)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_c *ParticipantCreate) Mutation() *ParticipantMutation {
	return _c.mutation
}

// Save creates the Participant in the database.
func (_c *ParticipantCreate) Save(ctx context.Context) (*Participant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ParticipantCreate) SaveX(ctx context.Context) *Participant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ParticipantCreate) defaults() {
	if _, ok := _c.mutation.GetType(); !ok {
		v := participant.DefaultType
		_c.mutation.SetType(v)
	}
	if _, ok := _c.mutation.Money(); !ok {
		v := participant.DefaultMoney
		_c.mutation.SetMoney(v)
	}
	if _, ok := _c.mutation.OrdersCompleted(); !ok {
		v := participant.DefaultOrdersCompleted
		_c.mutation.SetOrdersCompleted(v)
	}
	if _, ok := _c.mutation.LoginStatus(); !ok {
		v := participant.DefaultLoginStatus
		_c.mutation.SetLoginStatus(v)
	}
	if _, ok := _c.mutation.SpecialtyProductionUsed(); !ok {
		v := participant.DefaultSpecialtyProductionUsed
		_c.mutation.SetSpecialtyProductionUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := participant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ParticipantCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Participant.session_id"`)}
	}
	if _, ok := _c.mutation.ParticipantCode(); !ok {
		return &ValidationError{Name: "participant_code", err: errors.New(`ent: missing required field "Participant.participant_code"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Participant.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := participant.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Participant.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Money(); !ok {
		return &ValidationError{Name: "money", err: errors.New(`ent: missing required field "Participant.money"`)}
	}
	if _, ok := _c.mutation.OrdersCompleted(); !ok {
		return &ValidationError{Name: "orders_completed", err: errors.New(`ent: missing required field "Participant.orders_completed"`)}
	}
	if _, ok := _c.mutation.LoginStatus(); !ok {
		return &ValidationError{Name: "login_status", err: errors.New(`ent: missing required field "Participant.login_status"`)}
	}
	if v, ok := _c.mutation.LoginStatus(); ok {
		if err := participant.LoginStatusValidator(v); err != nil {
			return &ValidationError{Name: "login_status", err: fmt.Errorf(`ent: validator failed for field "Participant.login_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SpecialtyProductionUsed(); !ok {
		return &ValidationError{Name: "specialty_production_used", err: errors.New(`ent: missing required field "Participant.specialty_production_used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Participant.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Participant.session"`)}
	}
	return nil
}

func (_c *ParticipantCreate) sqlSave(ctx context.Context) (*Participant, error) {
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
			return nil, fmt.Errorf("unexpected Participant.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ParticipantCreate) createSpec() (*Participant, *sqlgraph.CreateSpec) {
	var (
		_node = &Participant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(participant.Table, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParticipantCode(); ok {
		_spec.SetField(participant.FieldParticipantCode, field.TypeString, value)
		_node.ParticipantCode = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(participant.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.SpecialtyShape(); ok {
		_spec.SetField(participant.FieldSpecialtyShape, field.TypeString, value)
		_node.SpecialtyShape = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(participant.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Money(); ok {
		_spec.SetField(participant.FieldMoney, field.TypeInt, value)
		_node.Money = value
	}
	if value, ok := _c.mutation.Orders(); ok {
		_spec.SetField(participant.FieldOrders, field.TypeJSON, value)
		_node.Orders = value
	}
	if value, ok := _c.mutation.OrdersCompleted(); ok {
		_spec.SetField(participant.FieldOrdersCompleted, field.TypeInt, value)
		_node.OrdersCompleted = value
	}
	if value, ok := _c.mutation.AssignedWords(); ok {
		_spec.SetField(participant.FieldAssignedWords, field.TypeJSON, value)
		_node.AssignedWords = value
	}
	if value, ok := _c.mutation.CurrentRankings(); ok {
		_spec.SetField(participant.FieldCurrentRankings, field.TypeJSON, value)
		_node.CurrentRankings = value
	}
	if value, ok := _c.mutation.LoginStatus(); ok {
		_spec.SetField(participant.FieldLoginStatus, field.TypeEnum, value)
		_node.LoginStatus = value
	}
	if value, ok := _c.mutation.SpecialtyProductionUsed(); ok {
		_spec.SetField(participant.FieldSpecialtyProductionUsed, field.TypeInt, value)
		_node.SpecialtyProductionUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(participant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   participant.SessionTable,
			Columns: []string{participant.SessionColumn},
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
	if nodes := _c.mutation.InventoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   participant.InventoryTable,
			Columns: []string{participant.InventoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(shapeinventory.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProductionEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.ProductionEntriesTable,
			Columns: []string{participant.ProductionEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(productionqueueentry.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InvestmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.InvestmentsTable,
			Columns: []string{participant.InvestmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RankingSubmissionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.RankingSubmissionsTable,
			Columns: []string{participant.RankingSubmissionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rankingsubmission.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WordGuessesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   participant.WordGuessesTable,
			Columns: []string{participant.WordGuessesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(wordguess.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ParticipantCreateBulk is the builder for creating many Participant entities in bulk.
type ParticipantCreateBulk struct {
	config
	err      error
	builders []*ParticipantCreate
}

// Save creates the Participant entities in the database.
func (_c *ParticipantCreateBulk) Save(ctx context.Context) ([]*Participant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Participant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ParticipantMutation)
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
func (_c *ParticipantCreateBulk) SaveX(ctx context.Context) []*Participant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ParticipantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ParticipantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
