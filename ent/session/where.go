// Code generated by ent, DO NOT EDIT.

package session

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/behavelab/parley/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldID, id))
}

// SessionCode applies equality check predicate on the "session_code" field. It's identical to SessionCodeEQ.
func SessionCode(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionCode, v))
}

// ExperimentType applies equality check predicate on the "experiment_type" field. It's identical to ExperimentTypeEQ.
func ExperimentType(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExperimentType, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionCodeEQ applies the EQ predicate on the "session_code" field.
func SessionCodeEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldSessionCode, v))
}

// SessionCodeNEQ applies the NEQ predicate on the "session_code" field.
func SessionCodeNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldSessionCode, v))
}

// SessionCodeIn applies the In predicate on the "session_code" field.
func SessionCodeIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldSessionCode, vs...))
}

// SessionCodeNotIn applies the NotIn predicate on the "session_code" field.
func SessionCodeNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldSessionCode, vs...))
}

// SessionCodeGT applies the GT predicate on the "session_code" field.
func SessionCodeGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldSessionCode, v))
}

// SessionCodeGTE applies the GTE predicate on the "session_code" field.
func SessionCodeGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldSessionCode, v))
}

// SessionCodeLT applies the LT predicate on the "session_code" field.
func SessionCodeLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldSessionCode, v))
}

// SessionCodeLTE applies the LTE predicate on the "session_code" field.
func SessionCodeLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldSessionCode, v))
}

// SessionCodeContains applies the Contains predicate on the "session_code" field.
func SessionCodeContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldSessionCode, v))
}

// SessionCodeHasPrefix applies the HasPrefix predicate on the "session_code" field.
func SessionCodeHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldSessionCode, v))
}

// SessionCodeHasSuffix applies the HasSuffix predicate on the "session_code" field.
func SessionCodeHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldSessionCode, v))
}

// SessionCodeEqualFold applies the EqualFold predicate on the "session_code" field.
func SessionCodeEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldSessionCode, v))
}

// SessionCodeContainsFold applies the ContainsFold predicate on the "session_code" field.
func SessionCodeContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldSessionCode, v))
}

// ExperimentTypeEQ applies the EQ predicate on the "experiment_type" field.
func ExperimentTypeEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldExperimentType, v))
}

// ExperimentTypeNEQ applies the NEQ predicate on the "experiment_type" field.
func ExperimentTypeNEQ(v string) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldExperimentType, v))
}

// ExperimentTypeIn applies the In predicate on the "experiment_type" field.
func ExperimentTypeIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldExperimentType, vs...))
}

// ExperimentTypeNotIn applies the NotIn predicate on the "experiment_type" field.
func ExperimentTypeNotIn(vs ...string) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldExperimentType, vs...))
}

// ExperimentTypeGT applies the GT predicate on the "experiment_type" field.
func ExperimentTypeGT(v string) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldExperimentType, v))
}

// ExperimentTypeGTE applies the GTE predicate on the "experiment_type" field.
func ExperimentTypeGTE(v string) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldExperimentType, v))
}

// ExperimentTypeLT applies the LT predicate on the "experiment_type" field.
func ExperimentTypeLT(v string) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldExperimentType, v))
}

// ExperimentTypeLTE applies the LTE predicate on the "experiment_type" field.
func ExperimentTypeLTE(v string) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldExperimentType, v))
}

// ExperimentTypeContains applies the Contains predicate on the "experiment_type" field.
func ExperimentTypeContains(v string) predicate.Session {
	return predicate.Session(sql.FieldContains(FieldExperimentType, v))
}

// ExperimentTypeHasPrefix applies the HasPrefix predicate on the "experiment_type" field.
func ExperimentTypeHasPrefix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasPrefix(FieldExperimentType, v))
}

// ExperimentTypeHasSuffix applies the HasSuffix predicate on the "experiment_type" field.
func ExperimentTypeHasSuffix(v string) predicate.Session {
	return predicate.Session(sql.FieldHasSuffix(FieldExperimentType, v))
}

// ExperimentTypeEqualFold applies the EqualFold predicate on the "experiment_type" field.
func ExperimentTypeEqualFold(v string) predicate.Session {
	return predicate.Session(sql.FieldEqualFold(FieldExperimentType, v))
}

// ExperimentTypeContainsFold applies the ContainsFold predicate on the "experiment_type" field.
func ExperimentTypeContainsFold(v string) predicate.Session {
	return predicate.Session(sql.FieldContainsFold(FieldExperimentType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStatus, vs...))
}

// ExperimentConfigIsNil applies the IsNil predicate on the "experiment_config" field.
func ExperimentConfigIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldExperimentConfig))
}

// ExperimentConfigNotNil applies the NotNil predicate on the "experiment_config" field.
func ExperimentConfigNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldExperimentConfig))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCreatedAt, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldStartedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Session {
	return predicate.Session(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Session {
	return predicate.Session(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Session {
	return predicate.Session(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Session {
	return predicate.Session(sql.FieldNotNull(FieldCompletedAt))
}

// HasParticipants applies the HasEdge predicate on the "participants" edge.
func HasParticipants() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantsWith applies the HasEdge predicate on the "participants" edge with a given conditions (other predicates).
func HasParticipantsWith(preds ...predicate.Participant) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newParticipantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTransactions applies the HasEdge predicate on the "transactions" edge.
func HasTransactions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTransactionsWith applies the HasEdge predicate on the "transactions" edge with a given conditions (other predicates).
func HasTransactionsWith(preds ...predicate.Transaction) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newTransactionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInventories applies the HasEdge predicate on the "inventories" edge.
func HasInventories() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InventoriesTable, InventoriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInventoriesWith applies the HasEdge predicate on the "inventories" edge with a given conditions (other predicates).
func HasInventoriesWith(preds ...predicate.ShapeInventory) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newInventoriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProductionEntries applies the HasEdge predicate on the "production_entries" edge.
func HasProductionEntries() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProductionEntriesTable, ProductionEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductionEntriesWith applies the HasEdge predicate on the "production_entries" edge with a given conditions (other predicates).
func HasProductionEntriesWith(preds ...predicate.ProductionQueueEntry) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newProductionEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvestments applies the HasEdge predicate on the "investments" edge.
func HasInvestments() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvestmentsTable, InvestmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvestmentsWith applies the HasEdge predicate on the "investments" edge with a given conditions (other predicates).
func HasInvestmentsWith(preds ...predicate.Investment) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newInvestmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRankingSubmissions applies the HasEdge predicate on the "ranking_submissions" edge.
func HasRankingSubmissions() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RankingSubmissionsTable, RankingSubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRankingSubmissionsWith applies the HasEdge predicate on the "ranking_submissions" edge with a given conditions (other predicates).
func HasRankingSubmissionsWith(preds ...predicate.RankingSubmission) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newRankingSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEssayAssignments applies the HasEdge predicate on the "essay_assignments" edge.
func HasEssayAssignments() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EssayAssignmentsTable, EssayAssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEssayAssignmentsWith applies the HasEdge predicate on the "essay_assignments" edge with a given conditions (other predicates).
func HasEssayAssignmentsWith(preds ...predicate.EssayAssignment) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newEssayAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWordGuesses applies the HasEdge predicate on the "word_guesses" edge.
func HasWordGuesses() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WordGuessesTable, WordGuessesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWordGuessesWith applies the HasEdge predicate on the "word_guesses" edge with a given conditions (other predicates).
func HasWordGuessesWith(preds ...predicate.WordGuess) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newWordGuessesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvents applies the HasEdge predicate on the "events" edge.
func HasEvents() predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEventsWith applies the HasEdge predicate on the "events" edge with a given conditions (other predicates).
func HasEventsWith(preds ...predicate.Event) predicate.Session {
	return predicate.Session(func(s *sql.Selector) {
		step := newEventsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Session) predicate.Session {
	return predicate.Session(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Session) predicate.Session {
	return predicate.Session(sql.NotPredicates(p))
}
