// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/behavelab/parley/ent/session"
)

// Session is the model entity for the Session schema.
type Session struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Short ASCII code participants and agents address the session by
	SessionCode string `json:"session_code,omitempty"`
	// Built-in kind or custom_* for researcher-defined experiments
	ExperimentType string `json:"experiment_type,omitempty"`
	// Status holds the value of the "status" field.
	Status session.Status `json:"status,omitempty"`
	// Options bag: roundDuration, communicationLevel, awarenessDashboard, kind-specific keys
	ExperimentConfig map[string]interface{} `json:"experiment_config,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// First transition to session_active
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SessionQuery when eager-loading is set.
	Edges        SessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SessionEdges holds the relations/edges for other nodes in the graph.
type SessionEdges struct {
	// Participants holds the value of the participants edge.
	Participants []*Participant `json:"participants,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// Transactions holds the value of the transactions edge.
	Transactions []*Transaction `json:"transactions,omitempty"`
	// Inventories holds the value of the inventories edge.
	Inventories []*ShapeInventory `json:"inventories,omitempty"`
	// ProductionEntries holds the value of the production_entries edge.
	ProductionEntries []*ProductionQueueEntry `json:"production_entries,omitempty"`
	// Investments holds the value of the investments edge.
	Investments []*Investment `json:"investments,omitempty"`
	// RankingSubmissions holds the value of the ranking_submissions edge.
	RankingSubmissions []*RankingSubmission `json:"ranking_submissions,omitempty"`
	// EssayAssignments holds the value of the essay_assignments edge.
	EssayAssignments []*EssayAssignment `json:"essay_assignments,omitempty"`
	// WordGuesses holds the value of the word_guesses edge.
	WordGuesses []*WordGuess `json:"word_guesses,omitempty"`
	// Events holds the value of the events edge.
	Events []*Event `json:"events,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [10]bool
}

// ParticipantsOrErr returns the Participants value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) ParticipantsOrErr() ([]*Participant, error) {
	if e.loadedTypes[0] {
		return e.Participants, nil
	}
	return nil, &NotLoadedError{edge: "participants"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// TransactionsOrErr returns the Transactions value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) TransactionsOrErr() ([]*Transaction, error) {
	if e.loadedTypes[2] {
		return e.Transactions, nil
	}
	return nil, &NotLoadedError{edge: "transactions"}
}

// InventoriesOrErr returns the Inventories value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) InventoriesOrErr() ([]*ShapeInventory, error) {
	if e.loadedTypes[3] {
		return e.Inventories, nil
	}
	return nil, &NotLoadedError{edge: "inventories"}
}

// ProductionEntriesOrErr returns the ProductionEntries value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) ProductionEntriesOrErr() ([]*ProductionQueueEntry, error) {
	if e.loadedTypes[4] {
		return e.ProductionEntries, nil
	}
	return nil, &NotLoadedError{edge: "production_entries"}
}

// InvestmentsOrErr returns the Investments value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) InvestmentsOrErr() ([]*Investment, error) {
	if e.loadedTypes[5] {
		return e.Investments, nil
	}
	return nil, &NotLoadedError{edge: "investments"}
}

// RankingSubmissionsOrErr returns the RankingSubmissions value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) RankingSubmissionsOrErr() ([]*RankingSubmission, error) {
	if e.loadedTypes[6] {
		return e.RankingSubmissions, nil
	}
	return nil, &NotLoadedError{edge: "ranking_submissions"}
}

// EssayAssignmentsOrErr returns the EssayAssignments value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) EssayAssignmentsOrErr() ([]*EssayAssignment, error) {
	if e.loadedTypes[7] {
		return e.EssayAssignments, nil
	}
	return nil, &NotLoadedError{edge: "essay_assignments"}
}

// WordGuessesOrErr returns the WordGuesses value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) WordGuessesOrErr() ([]*WordGuess, error) {
	if e.loadedTypes[8] {
		return e.WordGuesses, nil
	}
	return nil, &NotLoadedError{edge: "word_guesses"}
}

// EventsOrErr returns the Events value or an error if the edge
// was not loaded in eager-loading.
func (e SessionEdges) EventsOrErr() ([]*Event, error) {
	if e.loadedTypes[9] {
		return e.Events, nil
	}
	return nil, &NotLoadedError{edge: "events"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Session) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case session.FieldExperimentConfig:
			values[i] = new([]byte)
		case session.FieldID, session.FieldSessionCode, session.FieldExperimentType, session.FieldStatus:
			values[i] = new(sql.NullString)
		case session.FieldCreatedAt, session.FieldStartedAt, session.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Session fields.
func (_m *Session) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case session.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case session.FieldSessionCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_code", values[i])
			} else if value.Valid {
				_m.SessionCode = value.String
			}
		case session.FieldExperimentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_type", values[i])
			} else if value.Valid {
				_m.ExperimentType = value.String
			}
		case session.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = session.Status(value.String)
			}
		case session.FieldExperimentConfig:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_config", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExperimentConfig); err != nil {
					return fmt.Errorf("unmarshal field experiment_config: %w", err)
				}
			}
		case session.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case session.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case session.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Session.
// This includes values selected through modifiers, order, etc.
func (_m *Session) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryParticipants queries the "participants" edge of the Session entity.
func (_m *Session) QueryParticipants() *ParticipantQuery {
	return NewSessionClient(_m.config).QueryParticipants(_m)
}

// QueryMessages queries the "messages" edge of the Session entity.
func (_m *Session) QueryMessages() *MessageQuery {
	return NewSessionClient(_m.config).QueryMessages(_m)
}

// QueryTransactions queries the "transactions" edge of the Session entity.
func (_m *Session) QueryTransactions() *TransactionQuery {
	return NewSessionClient(_m.config).QueryTransactions(_m)
}

// QueryInventories queries the "inventories" edge of the Session entity.
func (_m *Session) QueryInventories() *ShapeInventoryQuery {
	return NewSessionClient(_m.config).QueryInventories(_m)
}

// QueryProductionEntries queries the "production_entries" edge of the Session entity.
func (_m *Session) QueryProductionEntries() *ProductionQueueEntryQuery {
	return NewSessionClient(_m.config).QueryProductionEntries(_m)
}

// QueryInvestments queries the "investments" edge of the Session entity.
func (_m *Session) QueryInvestments() *InvestmentQuery {
	return NewSessionClient(_m.config).QueryInvestments(_m)
}

// QueryRankingSubmissions queries the "ranking_submissions" edge of the Session entity.
func (_m *Session) QueryRankingSubmissions() *RankingSubmissionQuery {
	return NewSessionClient(_m.config).QueryRankingSubmissions(_m)
}

// QueryEssayAssignments queries the "essay_assignments" edge of the Session entity.
func (_m *Session) QueryEssayAssignments() *EssayAssignmentQuery {
	return NewSessionClient(_m.config).QueryEssayAssignments(_m)
}

// QueryWordGuesses queries the "word_guesses" edge of the Session entity.
func (_m *Session) QueryWordGuesses() *WordGuessQuery {
	return NewSessionClient(_m.config).QueryWordGuesses(_m)
}

// QueryEvents queries the "events" edge of the Session entity.
func (_m *Session) QueryEvents() *EventQuery {
	return NewSessionClient(_m.config).QueryEvents(_m)
}

// Update returns a builder for updating this Session.
// Note that you need to call Session.Unwrap() before calling this method if this Session
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Session) Update() *SessionUpdateOne {
	return NewSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Session entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Session) Unwrap() *Session {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Session is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Session) String() string {
	var builder strings.Builder
	builder.WriteString("Session(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_code=")
	builder.WriteString(_m.SessionCode)
	builder.WriteString(", ")
	builder.WriteString("experiment_type=")
	builder.WriteString(_m.ExperimentType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("experiment_config=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperimentConfig))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Sessions is a parsable slice of Session.
type Sessions []*Session
