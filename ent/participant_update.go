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
	"github.com/behavelab/parley/ent/investment"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/predicate"
	"github.com/behavelab/parley/ent/productionqueueentry"
	"github.com/behavelab/parley/ent/rankingsubmission"
	"github.com/behavelab/parley/ent/shapeinventory"
	"github.com/behavelab/parley/ent/wordguess"
)

// ParticipantUpdate is the builder for updating Participant entities.
type ParticipantUpdate struct {
	config
	hooks    []Hook
	mutation *ParticipantMutation
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdate) Where(ps ...predicate.Participant) *ParticipantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetType sets the "type" field.
func (_u *ParticipantUpdate) SetType(v participant.Type) *ParticipantUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableType(v *participant.Type) *ParticipantUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSpecialtyShape sets the "specialty_shape" field.
func (_u *ParticipantUpdate) SetSpecialtyShape(v string) *ParticipantUpdate {
	_u.mutation.SetSpecialtyShape(v)
	return _u
}

// SetNillableSpecialtyShape sets the "specialty_shape" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableSpecialtyShape(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetSpecialtyShape(*v)
	}
	return _u
}

// ClearSpecialtyShape clears the value of the "specialty_shape" field.
func (_u *ParticipantUpdate) ClearSpecialtyShape() *ParticipantUpdate {
	_u.mutation.ClearSpecialtyShape()
	return _u
}

// SetRole sets the "role" field.
func (_u *ParticipantUpdate) SetRole(v string) *ParticipantUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableRole(v *string) *ParticipantUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *ParticipantUpdate) ClearRole() *ParticipantUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetMoney sets the "money" field.
func (_u *ParticipantUpdate) SetMoney(v int) *ParticipantUpdate {
	_u.mutation.ResetMoney()
	_u.mutation.SetMoney(v)
	return _u
}

// SetNillableMoney sets the "money" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableMoney(v *int) *ParticipantUpdate {
	if v != nil {
		_u.SetMoney(*v)
	}
	return _u
}

// AddMoney adds value to the "money" field.
func (_u *ParticipantUpdate) AddMoney(v int) *ParticipantUpdate {
	_u.mutation.AddMoney(v)
	return _u
}

// SetOrders sets the "orders" field.
func (_u *ParticipantUpdate) SetOrders(v []string) *ParticipantUpdate {
	_u.mutation.SetOrders(v)
	return _u
}

// AppendOrders appends value to the "orders" field.
func (_u *ParticipantUpdate) AppendOrders(v []string) *ParticipantUpdate {
	_u.mutation.AppendOrders(v)
	return _u
}

// ClearOrders clears the value of the "orders" field.
func (_u *ParticipantUpdate) ClearOrders() *ParticipantUpdate {
	_u.mutation.ClearOrders()
	return _u
}

// SetOrdersCompleted sets the "orders_completed" field.
func (_u *ParticipantUpdate) SetOrdersCompleted(v int) *ParticipantUpdate {
	_u.mutation.ResetOrdersCompleted()
	_u.mutation.SetOrdersCompleted(v)
	return _u
}

// SetNillableOrdersCompleted sets the "orders_completed" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableOrdersCompleted(v *int) *ParticipantUpdate {
	if v != nil {
		_u.SetOrdersCompleted(*v)
	}
	return _u
}

// AddOrdersCompleted adds value to the "orders_completed" field.
func (_u *ParticipantUpdate) AddOrdersCompleted(v int) *ParticipantUpdate {
	_u.mutation.AddOrdersCompleted(v)
	return _u
}

// SetAssignedWords sets the "assigned_words" field.
func (_u *ParticipantUpdate) SetAssignedWords(v []string) *ParticipantUpdate {
	_u.mutation.SetAssignedWords(v)
	return _u
}

// AppendAssignedWords appends value to the "assigned_words" field.
func (_u *ParticipantUpdate) AppendAssignedWords(v []string) *ParticipantUpdate {
	_u.mutation.AppendAssignedWords(v)
	return _u
}

// ClearAssignedWords clears the value of the "assigned_words" field.
func (_u *ParticipantUpdate) ClearAssignedWords() *ParticipantUpdate {
	_u.mutation.ClearAssignedWords()
	return _u
}

// SetCurrentRankings sets the "current_rankings" field.
func (_u *ParticipantUpdate) SetCurrentRankings(v map[string]interface{}) *ParticipantUpdate {
	_u.mutation.SetCurrentRankings(v)
	return _u
}

// ClearCurrentRankings clears the value of the "current_rankings" field.
func (_u *ParticipantUpdate) ClearCurrentRankings() *ParticipantUpdate {
	_u.mutation.ClearCurrentRankings()
	return _u
}

// SetLoginStatus sets the "login_status" field.
func (_u *ParticipantUpdate) SetLoginStatus(v participant.LoginStatus) *ParticipantUpdate {
	_u.mutation.SetLoginStatus(v)
	return _u
}

// SetNillableLoginStatus sets the "login_status" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableLoginStatus(v *participant.LoginStatus) *ParticipantUpdate {
	if v != nil {
		_u.SetLoginStatus(*v)
	}
	return _u
}

// SetSpecialtyProductionUsed sets the "specialty_production_used" field.
func (_u *ParticipantUpdate) SetSpecialtyProductionUsed(v int) *ParticipantUpdate {
	_u.mutation.ResetSpecialtyProductionUsed()
	_u.mutation.SetSpecialtyProductionUsed(v)
	return _u
}

// SetNillableSpecialtyProductionUsed sets the "specialty_production_used" field if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableSpecialtyProductionUsed(v *int) *ParticipantUpdate {
	if v != nil {
		_u.SetSpecialtyProductionUsed(*v)
	}
	return _u
}

// AddSpecialtyProductionUsed adds value to the "specialty_production_used" field.
func (_u *ParticipantUpdate) AddSpecialtyProductionUsed(v int) *ParticipantUpdate {
	_u.mutation.AddSpecialtyProductionUsed(v)
	return _u
}

// SetInventoryID sets the "inventory" edge to the ShapeInventory entity by ID.
func (_u *ParticipantUpdate) SetInventoryID(id string) *ParticipantUpdate {
	_u.mutation.SetInventoryID(id)
	return _u
}

// SetNillableInventoryID sets the "inventory" edge to the ShapeInventory entity by ID if the given value is not nil.
func (_u *ParticipantUpdate) SetNillableInventoryID(id *string) *ParticipantUpdate {
	if id != nil {
		_u = _u.SetInventoryID(*id)
	}
	return _u
}

// SetInventory sets the "inventory" edge to the ShapeInventory entity.
func (_u *ParticipantUpdate) SetInventory(v *ShapeInventory) *ParticipantUpdate {
	return _u.SetInventoryID(v.ID)
}

// AddProductionEntryIDs adds the "production_entries" edge to the ProductionQueueEntry entity by IDs.
func (_u *ParticipantUpdate) AddProductionEntryIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.AddProductionEntryIDs(ids...)
	return _u
}

// AddProductionEntries adds the "production_entries" edges to the ProductionQueueEntry entity.
func (_u *ParticipantUpdate) AddProductionEntries(v ...*ProductionQueueEntry) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProductionEntryIDs(ids...)
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by IDs.
func (_u *ParticipantUpdate) AddInvestmentIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.AddInvestmentIDs(ids...)
	return _u
}

// AddInvestments adds the "investments" edges to the Investment entity.
func (_u *ParticipantUpdate) AddInvestments(v ...*Investment) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvestmentIDs(ids...)
}

// AddRankingSubmissionIDs adds the "ranking_submissions" edge to the RankingSubmission entity by IDs.
func (_u *ParticipantUpdate) AddRankingSubmissionIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.AddRankingSubmissionIDs(ids...)
	return _u
}

// AddRankingSubmissions adds the "ranking_submissions" edges to the RankingSubmission entity.
func (_u *ParticipantUpdate) AddRankingSubmissions(v ...*RankingSubmission) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRankingSubmissionIDs(ids...)
}

// AddWordGuessIDs adds the "word_guesses" edge to the WordGuess entity by IDs.
func (_u *ParticipantUpdate) AddWordGuessIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.AddWordGuessIDs(ids...)
	return _u
}

// AddWordGuesses adds the "word_guesses" edges to the WordGuess entity.
func (_u *ParticipantUpdate) AddWordGuesses(v ...*WordGuess) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWordGuessIDs(ids...)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdate) Mutation() *ParticipantMutation {
	return _u.mutation
}

// ClearInventory clears the "inventory" edge to the ShapeInventory entity.
func (_u *ParticipantUpdate) ClearInventory() *ParticipantUpdate {
	_u.mutation.ClearInventory()
	return _u
}

// ClearProductionEntries clears all "production_entries" edges to the ProductionQueueEntry entity.
func (_u *ParticipantUpdate) ClearProductionEntries() *ParticipantUpdate {
	_u.mutation.ClearProductionEntries()
	return _u
}

// RemoveProductionEntryIDs removes the "production_entries" edge to ProductionQueueEntry entities by IDs.
func (_u *ParticipantUpdate) RemoveProductionEntryIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.RemoveProductionEntryIDs(ids...)
	return _u
}

// RemoveProductionEntries removes "production_entries" edges to ProductionQueueEntry entities.
func (_u *ParticipantUpdate) RemoveProductionEntries(v ...*ProductionQueueEntry) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProductionEntryIDs(ids...)
}

// ClearInvestments clears all "investments" edges to the Investment entity.
func (_u *ParticipantUpdate) ClearInvestments() *ParticipantUpdate {
	_u.mutation.ClearInvestments()
	return _u
}

// RemoveInvestmentIDs removes the "investments" edge to Investment entities by IDs.
func (_u *ParticipantUpdate) RemoveInvestmentIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.RemoveInvestmentIDs(ids...)
	return _u
}

// RemoveInvestments removes "investments" edges to Investment entities.
func (_u *ParticipantUpdate) RemoveInvestments(v ...*Investment) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvestmentIDs(ids...)
}

// ClearRankingSubmissions clears all "ranking_submissions" edges to the RankingSubmission entity.
func (_u *ParticipantUpdate) ClearRankingSubmissions() *ParticipantUpdate {
	_u.mutation.ClearRankingSubmissions()
	return _u
}

// RemoveRankingSubmissionIDs removes the "ranking_submissions" edge to RankingSubmission entities by IDs.
func (_u *ParticipantUpdate) RemoveRankingSubmissionIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.RemoveRankingSubmissionIDs(ids...)
	return _u
}

// RemoveRankingSubmissions removes "ranking_submissions" edges to RankingSubmission entities.
func (_u *ParticipantUpdate) RemoveRankingSubmissions(v ...*RankingSubmission) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRankingSubmissionIDs(ids...)
}

// ClearWordGuesses clears all "word_guesses" edges to the WordGuess entity.
func (_u *ParticipantUpdate) ClearWordGuesses() *ParticipantUpdate {
	_u.mutation.ClearWordGuesses()
	return _u
}

// RemoveWordGuessIDs removes the "word_guesses" edge to WordGuess entities by IDs.
func (_u *ParticipantUpdate) RemoveWordGuessIDs(ids ...string) *ParticipantUpdate {
	_u.mutation.RemoveWordGuessIDs(ids...)
	return _u
}

// RemoveWordGuesses removes "word_guesses" edges to WordGuess entities.
func (_u *ParticipantUpdate) RemoveWordGuesses(v ...*WordGuess) *ParticipantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWordGuessIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ParticipantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ParticipantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := participant.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Participant.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LoginStatus(); ok {
		if err := participant.LoginStatusValidator(v); err != nil {
			return &ValidationError{Name: "login_status", err: fmt.Errorf(`ent: validator failed for field "Participant.login_status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Participant.session"`)
	}
	return nil
}

func (_u *ParticipantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(participant.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpecialtyShape(); ok {
		_spec.SetField(participant.FieldSpecialtyShape, field.TypeString, value)
	}
	if _u.mutation.SpecialtyShapeCleared() {
		_spec.ClearField(participant.FieldSpecialtyShape, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(participant.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(participant.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Money(); ok {
		_spec.SetField(participant.FieldMoney, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoney(); ok {
		_spec.AddField(participant.FieldMoney, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Orders(); ok {
		_spec.SetField(participant.FieldOrders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOrders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, participant.FieldOrders, value)
		})
	}
	if _u.mutation.OrdersCleared() {
		_spec.ClearField(participant.FieldOrders, field.TypeJSON)
	}
	if value, ok := _u.mutation.OrdersCompleted(); ok {
		_spec.SetField(participant.FieldOrdersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdersCompleted(); ok {
		_spec.AddField(participant.FieldOrdersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedWords(); ok {
		_spec.SetField(participant.FieldAssignedWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssignedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, participant.FieldAssignedWords, value)
		})
	}
	if _u.mutation.AssignedWordsCleared() {
		_spec.ClearField(participant.FieldAssignedWords, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentRankings(); ok {
		_spec.SetField(participant.FieldCurrentRankings, field.TypeJSON, value)
	}
	if _u.mutation.CurrentRankingsCleared() {
		_spec.ClearField(participant.FieldCurrentRankings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LoginStatus(); ok {
		_spec.SetField(participant.FieldLoginStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpecialtyProductionUsed(); ok {
		_spec.SetField(participant.FieldSpecialtyProductionUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpecialtyProductionUsed(); ok {
		_spec.AddField(participant.FieldSpecialtyProductionUsed, field.TypeInt, value)
	}
	if _u.mutation.InventoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductionEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProductionEntriesIDs(); len(nodes) > 0 && !_u.mutation.ProductionEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductionEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvestmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvestmentsIDs(); len(nodes) > 0 && !_u.mutation.InvestmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvestmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RankingSubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRankingSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.RankingSubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RankingSubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WordGuessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWordGuessesIDs(); len(nodes) > 0 && !_u.mutation.WordGuessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordGuessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ParticipantUpdateOne is the builder for updating a single Participant entity.
type ParticipantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ParticipantMutation
}

// SetType sets the "type" field.
func (_u *ParticipantUpdateOne) SetType(v participant.Type) *ParticipantUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableType(v *participant.Type) *ParticipantUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetSpecialtyShape sets the "specialty_shape" field.
func (_u *ParticipantUpdateOne) SetSpecialtyShape(v string) *ParticipantUpdateOne {
	_u.mutation.SetSpecialtyShape(v)
	return _u
}

// SetNillableSpecialtyShape sets the "specialty_shape" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableSpecialtyShape(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetSpecialtyShape(*v)
	}
	return _u
}

// ClearSpecialtyShape clears the value of the "specialty_shape" field.
func (_u *ParticipantUpdateOne) ClearSpecialtyShape() *ParticipantUpdateOne {
	_u.mutation.ClearSpecialtyShape()
	return _u
}

// SetRole sets the "role" field.
func (_u *ParticipantUpdateOne) SetRole(v string) *ParticipantUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableRole(v *string) *ParticipantUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *ParticipantUpdateOne) ClearRole() *ParticipantUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetMoney sets the "money" field.
func (_u *ParticipantUpdateOne) SetMoney(v int) *ParticipantUpdateOne {
	_u.mutation.ResetMoney()
	_u.mutation.SetMoney(v)
	return _u
}

// SetNillableMoney sets the "money" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableMoney(v *int) *ParticipantUpdateOne {
	if v != nil {
		_u.SetMoney(*v)
	}
	return _u
}

// AddMoney adds value to the "money" field.
func (_u *ParticipantUpdateOne) AddMoney(v int) *ParticipantUpdateOne {
	_u.mutation.AddMoney(v)
	return _u
}

// SetOrders sets the "orders" field.
func (_u *ParticipantUpdateOne) SetOrders(v []string) *ParticipantUpdateOne {
	_u.mutation.SetOrders(v)
	return _u
}

// AppendOrders appends value to the "orders" field.
func (_u *ParticipantUpdateOne) AppendOrders(v []string) *ParticipantUpdateOne {
	_u.mutation.AppendOrders(v)
	return _u
}

// ClearOrders clears the value of the "orders" field.
func (_u *ParticipantUpdateOne) ClearOrders() *ParticipantUpdateOne {
	_u.mutation.ClearOrders()
	return _u
}

// SetOrdersCompleted sets the "orders_completed" field.
func (_u *ParticipantUpdateOne) SetOrdersCompleted(v int) *ParticipantUpdateOne {
	_u.mutation.ResetOrdersCompleted()
	_u.mutation.SetOrdersCompleted(v)
	return _u
}

// SetNillableOrdersCompleted sets the "orders_completed" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableOrdersCompleted(v *int) *ParticipantUpdateOne {
	if v != nil {
		_u.SetOrdersCompleted(*v)
	}
	return _u
}

// AddOrdersCompleted adds value to the "orders_completed" field.
func (_u *ParticipantUpdateOne) AddOrdersCompleted(v int) *ParticipantUpdateOne {
	_u.mutation.AddOrdersCompleted(v)
	return _u
}

// SetAssignedWords sets the "assigned_words" field.
func (_u *ParticipantUpdateOne) SetAssignedWords(v []string) *ParticipantUpdateOne {
	_u.mutation.SetAssignedWords(v)
	return _u
}

// AppendAssignedWords appends value to the "assigned_words" field.
func (_u *ParticipantUpdateOne) AppendAssignedWords(v []string) *ParticipantUpdateOne {
	_u.mutation.AppendAssignedWords(v)
	return _u
}

// ClearAssignedWords clears the value of the "assigned_words" field.
func (_u *ParticipantUpdateOne) ClearAssignedWords() *ParticipantUpdateOne {
	_u.mutation.ClearAssignedWords()
	return _u
}

// SetCurrentRankings sets the "current_rankings" field.
func (_u *ParticipantUpdateOne) SetCurrentRankings(v map[string]interface{}) *ParticipantUpdateOne {
	_u.mutation.SetCurrentRankings(v)
	return _u
}

// ClearCurrentRankings clears the value of the "current_rankings" field.
func (_u *ParticipantUpdateOne) ClearCurrentRankings() *ParticipantUpdateOne {
	_u.mutation.ClearCurrentRankings()
	return _u
}

// SetLoginStatus sets the "login_status" field.
func (_u *ParticipantUpdateOne) SetLoginStatus(v participant.LoginStatus) *ParticipantUpdateOne {
	_u.mutation.SetLoginStatus(v)
	return _u
}

// SetNillableLoginStatus sets the "login_status" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableLoginStatus(v *participant.LoginStatus) *ParticipantUpdateOne {
	if v != nil {
		_u.SetLoginStatus(*v)
	}
	return _u
}

// SetSpecialtyProductionUsed sets the "specialty_production_used" field.
func (_u *ParticipantUpdateOne) SetSpecialtyProductionUsed(v int) *ParticipantUpdateOne {
	_u.mutation.ResetSpecialtyProductionUsed()
	_u.mutation.SetSpecialtyProductionUsed(v)
	return _u
}

// SetNillableSpecialtyProductionUsed sets the "specialty_production_used" field if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableSpecialtyProductionUsed(v *int) *ParticipantUpdateOne {
	if v != nil {
		_u.SetSpecialtyProductionUsed(*v)
	}
	return _u
}

// AddSpecialtyProductionUsed adds value to the "specialty_production_used" field.
func (_u *ParticipantUpdateOne) AddSpecialtyProductionUsed(v int) *ParticipantUpdateOne {
	_u.mutation.AddSpecialtyProductionUsed(v)
	return _u
}

// SetInventoryID sets the "inventory" edge to the ShapeInventory entity by ID.
func (_u *ParticipantUpdateOne) SetInventoryID(id string) *ParticipantUpdateOne {
	_u.mutation.SetInventoryID(id)
	return _u
}

// SetNillableInventoryID sets the "inventory" edge to the ShapeInventory entity by ID if the given value is not nil.
func (_u *ParticipantUpdateOne) SetNillableInventoryID(id *string) *ParticipantUpdateOne {
	if id != nil {
		_u = _u.SetInventoryID(*id)
	}
	return _u
}

// SetInventory sets the "inventory" edge to the ShapeInventory entity.
func (_u *ParticipantUpdateOne) SetInventory(v *ShapeInventory) *ParticipantUpdateOne {
	return _u.SetInventoryID(v.ID)
}

// AddProductionEntryIDs adds the "production_entries" edge to the ProductionQueueEntry entity by IDs.
func (_u *ParticipantUpdateOne) AddProductionEntryIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.AddProductionEntryIDs(ids...)
	return _u
}

// AddProductionEntries adds the "production_entries" edges to the ProductionQueueEntry entity.
func (_u *ParticipantUpdateOne) AddProductionEntries(v ...*ProductionQueueEntry) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddProductionEntryIDs(ids...)
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by IDs.
func (_u *ParticipantUpdateOne) AddInvestmentIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.AddInvestmentIDs(ids...)
	return _u
}

// AddInvestments adds the "investments" edges to the Investment entity.
func (_u *ParticipantUpdateOne) AddInvestments(v ...*Investment) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvestmentIDs(ids...)
}

// AddRankingSubmissionIDs adds the "ranking_submissions" edge to the RankingSubmission entity by IDs.
func (_u *ParticipantUpdateOne) AddRankingSubmissionIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.AddRankingSubmissionIDs(ids...)
	return _u
}

// AddRankingSubmissions adds the "ranking_submissions" edges to the RankingSubmission entity.
func (_u *ParticipantUpdateOne) AddRankingSubmissions(v ...*RankingSubmission) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRankingSubmissionIDs(ids...)
}

// AddWordGuessIDs adds the "word_guesses" edge to the WordGuess entity by IDs.
func (_u *ParticipantUpdateOne) AddWordGuessIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.AddWordGuessIDs(ids...)
	return _u
}

// AddWordGuesses adds the "word_guesses" edges to the WordGuess entity.
func (_u *ParticipantUpdateOne) AddWordGuesses(v ...*WordGuess) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWordGuessIDs(ids...)
}

// Mutation returns the ParticipantMutation object of the builder.
func (_u *ParticipantUpdateOne) Mutation() *ParticipantMutation {
	return _u.mutation
}

// ClearInventory clears the "inventory" edge to the ShapeInventory entity.
func (_u *ParticipantUpdateOne) ClearInventory() *ParticipantUpdateOne {
	_u.mutation.ClearInventory()
	return _u
}

// ClearProductionEntries clears all "production_entries" edges to the ProductionQueueEntry entity.
func (_u *ParticipantUpdateOne) ClearProductionEntries() *ParticipantUpdateOne {
	_u.mutation.ClearProductionEntries()
	return _u
}

// RemoveProductionEntryIDs removes the "production_entries" edge to ProductionQueueEntry entities by IDs.
func (_u *ParticipantUpdateOne) RemoveProductionEntryIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.RemoveProductionEntryIDs(ids...)
	return _u
}

// RemoveProductionEntries removes "production_entries" edges to ProductionQueueEntry entities.
func (_u *ParticipantUpdateOne) RemoveProductionEntries(v ...*ProductionQueueEntry) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveProductionEntryIDs(ids...)
}

// ClearInvestments clears all "investments" edges to the Investment entity.
func (_u *ParticipantUpdateOne) ClearInvestments() *ParticipantUpdateOne {
	_u.mutation.ClearInvestments()
	return _u
}

// RemoveInvestmentIDs removes the "investments" edge to Investment entities by IDs.
func (_u *ParticipantUpdateOne) RemoveInvestmentIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.RemoveInvestmentIDs(ids...)
	return _u
}

// RemoveInvestments removes "investments" edges to Investment entities.
func (_u *ParticipantUpdateOne) RemoveInvestments(v ...*Investment) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvestmentIDs(ids...)
}

// ClearRankingSubmissions clears all "ranking_submissions" edges to the RankingSubmission entity.
func (_u *ParticipantUpdateOne) ClearRankingSubmissions() *ParticipantUpdateOne {
	_u.mutation.ClearRankingSubmissions()
	return _u
}

// RemoveRankingSubmissionIDs removes the "ranking_submissions" edge to RankingSubmission entities by IDs.
func (_u *ParticipantUpdateOne) RemoveRankingSubmissionIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.RemoveRankingSubmissionIDs(ids...)
	return _u
}

// RemoveRankingSubmissions removes "ranking_submissions" edges to RankingSubmission entities.
func (_u *ParticipantUpdateOne) RemoveRankingSubmissions(v ...*RankingSubmission) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRankingSubmissionIDs(ids...)
}

// ClearWordGuesses clears all "word_guesses" edges to the WordGuess entity.
func (_u *ParticipantUpdateOne) ClearWordGuesses() *ParticipantUpdateOne {
	_u.mutation.ClearWordGuesses()
	return _u
}

// RemoveWordGuessIDs removes the "word_guesses" edge to WordGuess entities by IDs.
func (_u *ParticipantUpdateOne) RemoveWordGuessIDs(ids ...string) *ParticipantUpdateOne {
	_u.mutation.RemoveWordGuessIDs(ids...)
	return _u
}

// RemoveWordGuesses removes "word_guesses" edges to WordGuess entities.
func (_u *ParticipantUpdateOne) RemoveWordGuesses(v ...*WordGuess) *ParticipantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWordGuessIDs(ids...)
}

// Where appends a list predicates to the ParticipantUpdate builder.
func (_u *ParticipantUpdateOne) Where(ps ...predicate.Participant) *ParticipantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ParticipantUpdateOne) Select(field string, fields ...string) *ParticipantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Participant entity.
func (_u *ParticipantUpdateOne) Save(ctx context.Context) (*Participant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ParticipantUpdateOne) SaveX(ctx context.Context) *Participant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ParticipantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ParticipantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ParticipantUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := participant.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Participant.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LoginStatus(); ok {
		if err := participant.LoginStatusValidator(v); err != nil {
			return &ValidationError{Name: "login_status", err: fmt.Errorf(`ent: validator failed for field "Participant.login_status": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Participant.session"`)
	}
	return nil
}

func (_u *ParticipantUpdateOne) sqlSave(ctx context.Context) (_node *Participant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(participant.Table, participant.Columns, sqlgraph.NewFieldSpec(participant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Participant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, participant.FieldID)
		for _, f := range fields {
			if !participant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != participant.FieldID {
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
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(participant.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpecialtyShape(); ok {
		_spec.SetField(participant.FieldSpecialtyShape, field.TypeString, value)
	}
	if _u.mutation.SpecialtyShapeCleared() {
		_spec.ClearField(participant.FieldSpecialtyShape, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(participant.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(participant.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Money(); ok {
		_spec.SetField(participant.FieldMoney, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMoney(); ok {
		_spec.AddField(participant.FieldMoney, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Orders(); ok {
		_spec.SetField(participant.FieldOrders, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOrders(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, participant.FieldOrders, value)
		})
	}
	if _u.mutation.OrdersCleared() {
		_spec.ClearField(participant.FieldOrders, field.TypeJSON)
	}
	if value, ok := _u.mutation.OrdersCompleted(); ok {
		_spec.SetField(participant.FieldOrdersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOrdersCompleted(); ok {
		_spec.AddField(participant.FieldOrdersCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AssignedWords(); ok {
		_spec.SetField(participant.FieldAssignedWords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAssignedWords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, participant.FieldAssignedWords, value)
		})
	}
	if _u.mutation.AssignedWordsCleared() {
		_spec.ClearField(participant.FieldAssignedWords, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentRankings(); ok {
		_spec.SetField(participant.FieldCurrentRankings, field.TypeJSON, value)
	}
	if _u.mutation.CurrentRankingsCleared() {
		_spec.ClearField(participant.FieldCurrentRankings, field.TypeJSON)
	}
	if value, ok := _u.mutation.LoginStatus(); ok {
		_spec.SetField(participant.FieldLoginStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SpecialtyProductionUsed(); ok {
		_spec.SetField(participant.FieldSpecialtyProductionUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSpecialtyProductionUsed(); ok {
		_spec.AddField(participant.FieldSpecialtyProductionUsed, field.TypeInt, value)
	}
	if _u.mutation.InventoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductionEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedProductionEntriesIDs(); len(nodes) > 0 && !_u.mutation.ProductionEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductionEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InvestmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvestmentsIDs(); len(nodes) > 0 && !_u.mutation.InvestmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvestmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RankingSubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRankingSubmissionsIDs(); len(nodes) > 0 && !_u.mutation.RankingSubmissionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RankingSubmissionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WordGuessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWordGuessesIDs(); len(nodes) > 0 && !_u.mutation.WordGuessesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordGuessesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Participant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{participant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
