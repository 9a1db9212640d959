// Code generated by ent, DO NOT EDIT.

package session

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the session type in the database.
	Label = "session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "session_id"
	// FieldSessionCode holds the string denoting the session_code field in the database.
	FieldSessionCode = "session_code"
	// FieldExperimentType holds the string denoting the experiment_type field in the database.
	FieldExperimentType = "experiment_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldExperimentConfig holds the string denoting the experiment_config field in the database.
	FieldExperimentConfig = "experiment_config"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// EdgeParticipants holds the string denoting the participants edge name in mutations.
	EdgeParticipants = "participants"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeTransactions holds the string denoting the transactions edge name in mutations.
	EdgeTransactions = "transactions"
	// EdgeInventories holds the string denoting the inventories edge name in mutations.
	EdgeInventories = "inventories"
	// EdgeProductionEntries holds the string denoting the production_entries edge name in mutations.
	EdgeProductionEntries = "production_entries"
	// EdgeInvestments holds the string denoting the investments edge name in mutations.
	EdgeInvestments = "investments"
	// EdgeRankingSubmissions holds the string denoting the ranking_submissions edge name in mutations.
	EdgeRankingSubmissions = "ranking_submissions"
	// EdgeEssayAssignments holds the string denoting the essay_assignments edge name in mutations.
	EdgeEssayAssignments = "essay_assignments"
	// EdgeWordGuesses holds the string denoting the word_guesses edge name in mutations.
	EdgeWordGuesses = "word_guesses"
	// EdgeEvents holds the string denoting the events edge name in mutations.
	EdgeEvents = "events"
	// ParticipantFieldID holds the string denoting the ID field of the Participant.
	ParticipantFieldID = "participant_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// TransactionFieldID holds the string denoting the ID field of the Transaction.
	TransactionFieldID = "transaction_id"
	// ShapeInventoryFieldID holds the string denoting the ID field of the ShapeInventory.
	ShapeInventoryFieldID = "inventory_id"
	// ProductionQueueEntryFieldID holds the string denoting the ID field of the ProductionQueueEntry.
	ProductionQueueEntryFieldID = "queue_id"
	// InvestmentFieldID holds the string denoting the ID field of the Investment.
	InvestmentFieldID = "investment_id"
	// RankingSubmissionFieldID holds the string denoting the ID field of the RankingSubmission.
	RankingSubmissionFieldID = "submission_id"
	// EssayAssignmentFieldID holds the string denoting the ID field of the EssayAssignment.
	EssayAssignmentFieldID = "essay_id"
	// WordGuessFieldID holds the string denoting the ID field of the WordGuess.
	WordGuessFieldID = "guess_id"
	// EventFieldID holds the string denoting the ID field of the Event.
	EventFieldID = "id"
	// Table holds the table name of the session in the database.
	Table = "sessions"
	// ParticipantsTable is the table that holds the participants relation/edge.
	ParticipantsTable = "participants"
	// ParticipantsInverseTable is the table name for the Participant entity.
	// It exists in this package in order to avoid circular dependency with the "participant" package.
	ParticipantsInverseTable = "participants"
	// ParticipantsColumn is the table column denoting the participants relation/edge.
	ParticipantsColumn = "session_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "session_id"
	// TransactionsTable is the table that holds the transactions relation/edge.
	TransactionsTable = "transactions"
	// TransactionsInverseTable is the table name for the Transaction entity.
	// It exists in this package in order to avoid circular dependency with the "transaction" package.
	TransactionsInverseTable = "transactions"
	// TransactionsColumn is the table column denoting the transactions relation/edge.
	TransactionsColumn = "session_id"
	// InventoriesTable is the table that holds the inventories relation/edge.
	InventoriesTable = "shape_inventory"
	// InventoriesInverseTable is the table name for the ShapeInventory entity.
	// It exists in this package in order to avoid circular dependency with the "shapeinventory" package.
	InventoriesInverseTable = "shape_inventory"
	// InventoriesColumn is the table column denoting the inventories relation/edge.
	InventoriesColumn = "session_id"
	// ProductionEntriesTable is the table that holds the production_entries relation/edge.
	ProductionEntriesTable = "production_queue"
	// ProductionEntriesInverseTable is the table name for the ProductionQueueEntry entity.
	// It exists in this package in order to avoid circular dependency with the "productionqueueentry" package.
	ProductionEntriesInverseTable = "production_queue"
	// ProductionEntriesColumn is the table column denoting the production_entries relation/edge.
	ProductionEntriesColumn = "session_id"
	// InvestmentsTable is the table that holds the investments relation/edge.
	InvestmentsTable = "investments"
	// InvestmentsInverseTable is the table name for the Investment entity.
	// It exists in this package in order to avoid circular dependency with the "investment" package.
	InvestmentsInverseTable = "investments"
	// InvestmentsColumn is the table column denoting the investments relation/edge.
	InvestmentsColumn = "session_id"
	// RankingSubmissionsTable is the table that holds the ranking_submissions relation/edge.
	RankingSubmissionsTable = "ranking_submissions"
	// RankingSubmissionsInverseTable is the table name for the RankingSubmission entity.
	// It exists in this package in order to avoid circular dependency with the "rankingsubmission" package.
	RankingSubmissionsInverseTable = "ranking_submissions"
	// RankingSubmissionsColumn is the table column denoting the ranking_submissions relation/edge.
	RankingSubmissionsColumn = "session_id"
	// EssayAssignmentsTable is the table that holds the essay_assignments relation/edge.
	EssayAssignmentsTable = "essay_assignments"
	// EssayAssignmentsInverseTable is the table name for the EssayAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "essayassignment" package.
	EssayAssignmentsInverseTable = "essay_assignments"
	// EssayAssignmentsColumn is the table column denoting the essay_assignments relation/edge.
	EssayAssignmentsColumn = "session_id"
	// WordGuessesTable is the table that holds the word_guesses relation/edge.
	WordGuessesTable = "wordguessing_chat_history"
	// WordGuessesInverseTable is the table name for the WordGuess entity.
	// It exists in this package in order to avoid circular dependency with the "wordguess" package.
	WordGuessesInverseTable = "wordguessing_chat_history"
	// WordGuessesColumn is the table column denoting the word_guesses relation/edge.
	WordGuessesColumn = "session_id"
	// EventsTable is the table that holds the events relation/edge.
	EventsTable = "events"
	// EventsInverseTable is the table name for the Event entity.
	// It exists in this package in order to avoid circular dependency with the "event" package.
	EventsInverseTable = "events"
	// EventsColumn is the table column denoting the events relation/edge.
	EventsColumn = "session_id"
)

// Columns holds all SQL columns for session fields.
var Columns = []string{
	FieldID,
	FieldSessionCode,
	FieldExperimentType,
	FieldStatus,
	FieldExperimentConfig,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ExperimentTypeValidator is a validator for the "experiment_type" field. It is called by the builders before save.
	ExperimentTypeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusIdle is the default value of the Status enum.
const DefaultStatus = StatusIdle

// Status values.
const (
	StatusIdle             Status = "idle"
	StatusSetupComplete    Status = "setup_complete"
	StatusSessionActive    Status = "session_active"
	StatusSessionPaused    Status = "session_paused"
	StatusSessionCompleted Status = "session_completed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusIdle, StatusSetupComplete, StatusSessionActive, StatusSessionPaused, StatusSessionCompleted:
		return nil
	default:
		return fmt.Errorf("session: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Session queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionCode orders the results by the session_code field.
func BySessionCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCode, opts...).ToFunc()
}

// ByExperimentType orders the results by the experiment_type field.
func ByExperimentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByParticipantsCount orders the results by participants count.
func ByParticipantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newParticipantsStep(), opts...)
	}
}

// ByParticipants orders the results by participants terms.
func ByParticipants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParticipantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTransactionsCount orders the results by transactions count.
func ByTransactionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTransactionsStep(), opts...)
	}
}

// ByTransactions orders the results by transactions terms.
func ByTransactions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTransactionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInventoriesCount orders the results by inventories count.
func ByInventoriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInventoriesStep(), opts...)
	}
}

// ByInventories orders the results by inventories terms.
func ByInventories(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInventoriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByProductionEntriesCount orders the results by production_entries count.
func ByProductionEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProductionEntriesStep(), opts...)
	}
}

// ByProductionEntries orders the results by production_entries terms.
func ByProductionEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProductionEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByInvestmentsCount orders the results by investments count.
func ByInvestmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInvestmentsStep(), opts...)
	}
}

// ByInvestments orders the results by investments terms.
func ByInvestments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvestmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRankingSubmissionsCount orders the results by ranking_submissions count.
func ByRankingSubmissionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRankingSubmissionsStep(), opts...)
	}
}

// ByRankingSubmissions orders the results by ranking_submissions terms.
func ByRankingSubmissions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRankingSubmissionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEssayAssignmentsCount orders the results by essay_assignments count.
func ByEssayAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEssayAssignmentsStep(), opts...)
	}
}

// ByEssayAssignments orders the results by essay_assignments terms.
func ByEssayAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEssayAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByWordGuessesCount orders the results by word_guesses count.
func ByWordGuessesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newWordGuessesStep(), opts...)
	}
}

// ByWordGuesses orders the results by word_guesses terms.
func ByWordGuesses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWordGuessesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByEventsCount orders the results by events count.
func ByEventsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newEventsStep(), opts...)
	}
}

// ByEvents orders the results by events terms.
func ByEvents(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEventsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newParticipantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ParticipantsInverseTable, ParticipantFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ParticipantsTable, ParticipantsColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newTransactionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TransactionsInverseTable, TransactionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TransactionsTable, TransactionsColumn),
	)
}
func newInventoriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InventoriesInverseTable, ShapeInventoryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InventoriesTable, InventoriesColumn),
	)
}
func newProductionEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProductionEntriesInverseTable, ProductionQueueEntryFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ProductionEntriesTable, ProductionEntriesColumn),
	)
}
func newInvestmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvestmentsInverseTable, InvestmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InvestmentsTable, InvestmentsColumn),
	)
}
func newRankingSubmissionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RankingSubmissionsInverseTable, RankingSubmissionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RankingSubmissionsTable, RankingSubmissionsColumn),
	)
}
func newEssayAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EssayAssignmentsInverseTable, EssayAssignmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EssayAssignmentsTable, EssayAssignmentsColumn),
	)
}
func newWordGuessesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WordGuessesInverseTable, WordGuessFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WordGuessesTable, WordGuessesColumn),
	)
}
func newEventsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EventsInverseTable, EventFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, EventsTable, EventsColumn),
	)
}
