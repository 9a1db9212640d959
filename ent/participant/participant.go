// Code generated by ent, DO NOT EDIT.

package participant

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the participant type in the database.
	Label = "participant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "participant_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldParticipantCode holds the string denoting the participant_code field in the database.
	FieldParticipantCode = "participant_code"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldSpecialtyShape holds the string denoting the specialty_shape field in the database.
	FieldSpecialtyShape = "specialty_shape"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldMoney holds the string denoting the money field in the database.
	FieldMoney = "money"
	// FieldOrders holds the string denoting the orders field in the database.
	FieldOrders = "orders"
	// FieldOrdersCompleted holds the string denoting the orders_completed field in the database.
	FieldOrdersCompleted = "orders_completed"
	// FieldAssignedWords holds the string denoting the assigned_words field in the database.
	FieldAssignedWords = "assigned_words"
	// FieldCurrentRankings holds the string denoting the current_rankings field in the database.
	FieldCurrentRankings = "current_rankings"
	// FieldLoginStatus holds the string denoting the login_status field in the database.
	FieldLoginStatus = "login_status"
	// FieldSpecialtyProductionUsed holds the string denoting the specialty_production_used field in the database.
	FieldSpecialtyProductionUsed = "specialty_production_used"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// EdgeInventory holds the string denoting the inventory edge name in mutations.
	EdgeInventory = "inventory"
	// EdgeProductionEntries holds the string denoting the production_entries edge name in mutations.
	EdgeProductionEntries = "production_entries"
	// EdgeInvestments holds the string denoting the investments edge name in mutations.
	EdgeInvestments = "investments"
	// EdgeRankingSubmissions holds the string denoting the ranking_submissions edge name in mutations.
	EdgeRankingSubmissions = "ranking_submissions"
	// EdgeWordGuesses holds the string denoting the word_guesses edge name in mutations.
	EdgeWordGuesses = "word_guesses"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// ShapeInventoryFieldID holds the string denoting the ID field of the ShapeInventory.
	ShapeInventoryFieldID = "inventory_id"
	// ProductionQueueEntryFieldID holds the string denoting the ID field of the ProductionQueueEntry.
	ProductionQueueEntryFieldID = "queue_id"
	// InvestmentFieldID holds the string denoting the ID field of the Investment.
	InvestmentFieldID = "investment_id"
	// RankingSubmissionFieldID holds the string denoting the ID field of the RankingSubmission.
	RankingSubmissionFieldID = "submission_id"
	// WordGuessFieldID holds the string denoting the ID field of the WordGuess.
	WordGuessFieldID = "guess_id"
	// Table holds the table name of the participant in the database.
	Table = "participants"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "participants"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
	// InventoryTable is the table that holds the inventory relation/edge.
	InventoryTable = "shape_inventory"
	// InventoryInverseTable is the table name for the ShapeInventory entity.
	// It exists in this package in order to avoid circular dependency with the "shapeinventory" package.
	InventoryInverseTable = "shape_inventory"
	// InventoryColumn is the table column denoting the inventory relation/edge.
	InventoryColumn = "participant_id"
	// ProductionEntriesTable is the table that holds the production_entries relation/edge.
	ProductionEntriesTable = "production_queue"
	// ProductionEntriesInverseTable is the table name for the ProductionQueueEntry entity.
	// It exists in this package in order to avoid circular dependency with the "productionqueueentry" package.
	ProductionEntriesInverseTable = "production_queue"
	// ProductionEntriesColumn is the table column denoting the production_entries relation/edge.
	ProductionEntriesColumn = "participant_id"
	// InvestmentsTable is the table that holds the investments relation/edge.
	InvestmentsTable = "investments"
	// InvestmentsInverseTable is the table name for the Investment entity.
	// It exists in this package in order to avoid circular dependency with the "investment" package.
	InvestmentsInverseTable = "investments"
	// InvestmentsColumn is the table column denoting the investments relation/edge.
	InvestmentsColumn = "participant_id"
	// RankingSubmissionsTable is the table that holds the ranking_submissions relation/edge.
	RankingSubmissionsTable = "ranking_submissions"
	// RankingSubmissionsInverseTable is the table name for the RankingSubmission entity.
	// It exists in this package in order to avoid circular dependency with the "rankingsubmission" package.
	RankingSubmissionsInverseTable = "ranking_submissions"
	// RankingSubmissionsColumn is the table column denoting the ranking_submissions relation/edge.
	RankingSubmissionsColumn = "participant_id"
	// WordGuessesTable is the table that holds the word_guesses relation/edge.
	WordGuessesTable = "wordguessing_chat_history"
	// WordGuessesInverseTable is the table name for the WordGuess entity.
	// It exists in this package in order to avoid circular dependency with the "wordguess" package.
	WordGuessesInverseTable = "wordguessing_chat_history"
	// WordGuessesColumn is the table column denoting the word_guesses relation/edge.
	WordGuessesColumn = "participant_id"
)

// Columns holds all SQL columns for participant fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldParticipantCode,
	FieldType,
	FieldSpecialtyShape,
	FieldRole,
	FieldMoney,
	FieldOrders,
	FieldOrdersCompleted,
	FieldAssignedWords,
	FieldCurrentRankings,
	FieldLoginStatus,
	FieldSpecialtyProductionUsed,
	FieldCreatedAt,
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
	// DefaultMoney holds the default value on creation for the "money" field.
	DefaultMoney int
	// DefaultOrdersCompleted holds the default value on creation for the "orders_completed" field.
	DefaultOrdersCompleted int
	// DefaultSpecialtyProductionUsed holds the default value on creation for the "specialty_production_used" field.
	DefaultSpecialtyProductionUsed int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Type defines the type for the "type" enum field.
type Type string

// TypeHuman is the default value of the Type enum.
const DefaultType = TypeHuman

// Type values.
const (
	TypeHuman   Type = "human"
	TypeAiAgent Type = "ai_agent"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeHuman, TypeAiAgent:
		return nil
	default:
		return fmt.Errorf("participant: invalid enum value for type field: %q", _type)
	}
}

// LoginStatus defines the type for the "login_status" enum field.
type LoginStatus string

// LoginStatusNotLoggedIn is the default value of the LoginStatus enum.
const DefaultLoginStatus = LoginStatusNotLoggedIn

// LoginStatus values.
const (
	LoginStatusNotLoggedIn  LoginStatus = "not_logged_in"
	LoginStatusLoggedIn     LoginStatus = "logged_in"
	LoginStatusActive       LoginStatus = "active"
	LoginStatusDisconnected LoginStatus = "disconnected"
)

func (ls LoginStatus) String() string {
	return string(ls)
}

// LoginStatusValidator is a validator for the "login_status" field enum values. It is called by the builders before save.
func LoginStatusValidator(ls LoginStatus) error {
	switch ls {
	case LoginStatusNotLoggedIn, LoginStatusLoggedIn, LoginStatusActive, LoginStatusDisconnected:
		return nil
	default:
		return fmt.Errorf("participant: invalid enum value for login_status field: %q", ls)
	}
}

// OrderOption defines the ordering options for the Participant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByParticipantCode orders the results by the participant_code field.
func ByParticipantCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParticipantCode, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// BySpecialtyShape orders the results by the specialty_shape field.
func BySpecialtyShape(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialtyShape, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByMoney orders the results by the money field.
func ByMoney(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMoney, opts...).ToFunc()
}

// ByOrdersCompleted orders the results by the orders_completed field.
func ByOrdersCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrdersCompleted, opts...).ToFunc()
}

// ByLoginStatus orders the results by the login_status field.
func ByLoginStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoginStatus, opts...).ToFunc()
}

// BySpecialtyProductionUsed orders the results by the specialty_production_used field.
func BySpecialtyProductionUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpecialtyProductionUsed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}

// ByInventoryField orders the results by inventory field.
func ByInventoryField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInventoryStep(), sql.OrderByField(field, opts...))
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
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
func newInventoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InventoryInverseTable, ShapeInventoryFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, InventoryTable, InventoryColumn),
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
func newWordGuessesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WordGuessesInverseTable, WordGuessFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, WordGuessesTable, WordGuessesColumn),
	)
}
