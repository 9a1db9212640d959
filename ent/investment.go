// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/behavelab/parley/ent/investment"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
)

// Investment is the model entity for the Investment schema.
type Investment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID string `json:"participant_id,omitempty"`
	// Price holds the value of the "price" field.
	Price float64 `json:"price,omitempty"`
	// DecisionType holds the value of the "decision_type" field.
	DecisionType investment.DecisionType `json:"decision_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the InvestmentQuery when eager-loading is set.
	Edges        InvestmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// InvestmentEdges holds the relations/edges for other nodes in the graph.
type InvestmentEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Participant holds the value of the participant edge.
	Participant *Participant `json:"participant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvestmentEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e InvestmentEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Investment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case investment.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case investment.FieldID, investment.FieldSessionID, investment.FieldParticipantID, investment.FieldDecisionType:
			values[i] = new(sql.NullString)
		case investment.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Investment fields.
func (_m *Investment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case investment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case investment.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case investment.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case investment.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case investment.FieldDecisionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field decision_type", values[i])
			} else if value.Valid {
				_m.DecisionType = investment.DecisionType(value.String)
			}
		case investment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Investment.
// This includes values selected through modifiers, order, etc.
func (_m *Investment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Investment entity.
func (_m *Investment) QuerySession() *SessionQuery {
	return NewInvestmentClient(_m.config).QuerySession(_m)
}

// QueryParticipant queries the "participant" edge of the Investment entity.
func (_m *Investment) QueryParticipant() *ParticipantQuery {
	return NewInvestmentClient(_m.config).QueryParticipant(_m)
}

// Update returns a builder for updating this Investment.
// Note that you need to call Investment.Unwrap() before calling this method if this Investment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Investment) Update() *InvestmentUpdateOne {
	return NewInvestmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Investment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Investment) Unwrap() *Investment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Investment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Investment) String() string {
	var builder strings.Builder
	builder.WriteString("Investment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("decision_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DecisionType))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Investments is a parsable slice of Investment.
type Investments []*Investment
