// Code generated by ent, DO NOT EDIT.

package transaction

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the transaction type in the database.
	Label = "transaction"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "transaction_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldShortID holds the string denoting the short_id field in the database.
	FieldShortID = "short_id"
	// FieldProposer holds the string denoting the proposer field in the database.
	FieldProposer = "proposer"
	// FieldRecipient holds the string denoting the recipient field in the database.
	FieldRecipient = "recipient"
	// FieldSeller holds the string denoting the seller field in the database.
	FieldSeller = "seller"
	// FieldBuyer holds the string denoting the buyer field in the database.
	FieldBuyer = "buyer"
	// FieldOfferType holds the string denoting the offer_type field in the database.
	FieldOfferType = "offer_type"
	// FieldShape holds the string denoting the shape field in the database.
	FieldShape = "shape"
	// FieldQuantity holds the string denoting the quantity field in the database.
	FieldQuantity = "quantity"
	// FieldPricePerUnit holds the string denoting the price_per_unit field in the database.
	FieldPricePerUnit = "price_per_unit"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldResolvedAt holds the string denoting the resolved_at field in the database.
	FieldResolvedAt = "resolved_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the transaction in the database.
	Table = "transactions"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "transactions"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for transaction fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldShortID,
	FieldProposer,
	FieldRecipient,
	FieldSeller,
	FieldBuyer,
	FieldOfferType,
	FieldShape,
	FieldQuantity,
	FieldPricePerUnit,
	FieldStatus,
	FieldCreatedAt,
	FieldResolvedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OfferType defines the type for the "offer_type" enum field.
type OfferType string

// OfferType values.
const (
	OfferTypeBuy  OfferType = "buy"
	OfferTypeSell OfferType = "sell"
)

func (ot OfferType) String() string {
	return string(ot)
}

// OfferTypeValidator is a validator for the "offer_type" field enum values. It is called by the builders before save.
func OfferTypeValidator(ot OfferType) error {
	switch ot {
	case OfferTypeBuy, OfferTypeSell:
		return nil
	default:
		return fmt.Errorf("transaction: invalid enum value for offer_type field: %q", ot)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusProposed is the default value of the Status enum.
const DefaultStatus = StatusProposed

// Status values.
const (
	StatusProposed  Status = "proposed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusProposed, StatusCompleted, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("transaction: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Transaction queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByShortID orders the results by the short_id field.
func ByShortID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShortID, opts...).ToFunc()
}

// ByProposer orders the results by the proposer field.
func ByProposer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposer, opts...).ToFunc()
}

// ByRecipient orders the results by the recipient field.
func ByRecipient(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecipient, opts...).ToFunc()
}

// BySeller orders the results by the seller field.
func BySeller(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeller, opts...).ToFunc()
}

// ByBuyer orders the results by the buyer field.
func ByBuyer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBuyer, opts...).ToFunc()
}

// ByOfferType orders the results by the offer_type field.
func ByOfferType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOfferType, opts...).ToFunc()
}

// ByShape orders the results by the shape field.
func ByShape(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldShape, opts...).ToFunc()
}

// ByQuantity orders the results by the quantity field.
func ByQuantity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantity, opts...).ToFunc()
}

// ByPricePerUnit orders the results by the price_per_unit field.
func ByPricePerUnit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPricePerUnit, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByResolvedAt orders the results by the resolved_at field.
func ByResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolvedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
