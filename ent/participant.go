// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/shapeinventory"
)

// Participant is the model entity for the Participant schema.
type Participant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Unique within the session; used as the agent-facing identity
	ParticipantCode string `json:"participant_code,omitempty"`
	// Type holds the value of the "type" field.
	Type participant.Type `json:"type,omitempty"`
	// ShapeFactory: the shape this participant produces cheaply
	SpecialtyShape string `json:"specialty_shape,omitempty"`
	// WordGuessing: hinter or guesser
	Role string `json:"role,omitempty"`
	// Money holds the value of the "money" field.
	Money int `json:"money,omitempty"`
	// ShapeFactory: remaining order tags, one shape per order index
	Orders []string `json:"orders,omitempty"`
	// OrdersCompleted holds the value of the "orders_completed" field.
	OrdersCompleted int `json:"orders_completed,omitempty"`
	// WordGuessing: hinter's secret words
	AssignedWords []string `json:"assigned_words,omitempty"`
	// EssayRanking: essay_id -> {rank, reasoning}, merged across submissions
	CurrentRankings map[string]interface{} `json:"current_rankings,omitempty"`
	// LoginStatus holds the value of the "login_status" field.
	LoginStatus participant.LoginStatus `json:"login_status,omitempty"`
	// Counts produced specialty units against config.maxProductionNum
	SpecialtyProductionUsed int `json:"specialty_production_used,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ParticipantQuery when eager-loading is set.
	Edges        ParticipantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ParticipantEdges holds the relations/edges for other nodes in the graph.
type ParticipantEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// Inventory holds the value of the inventory edge.
	Inventory *ShapeInventory `json:"inventory,omitempty"`
	// ProductionEntries holds the value of the production_entries edge.
	ProductionEntries []*ProductionQueueEntry `json:"production_entries,omitempty"`
	// Investments holds the value of the investments edge.
	Investments []*Investment `json:"investments,omitempty"`
	// RankingSubmissions holds the value of the ranking_submissions edge.
	RankingSubmissions []*RankingSubmission `json:"ranking_submissions,omitempty"`
	// WordGuesses holds the value of the word_guesses edge.
	WordGuesses []*WordGuess `json:"word_guesses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [6]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// InventoryOrErr returns the Inventory value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ParticipantEdges) InventoryOrErr() (*ShapeInventory, error) {
	if e.Inventory != nil {
		return e.Inventory, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: shapeinventory.Label}
	}
	return nil, &NotLoadedError{edge: "inventory"}
}

// ProductionEntriesOrErr returns the ProductionEntries value or an error if the edge
// was not loaded in eager-loading.
func (e ParticipantEdges) ProductionEntriesOrErr() ([]*ProductionQueueEntry, error) {
	if e.loadedTypes[2] {
		return e.ProductionEntries, nil
	}
	return nil, &NotLoadedError{edge: "production_entries"}
}

// InvestmentsOrErr returns the Investments value or an error if the edge
// was not loaded in eager-loading.
func (e ParticipantEdges) InvestmentsOrErr() ([]*Investment, error) {
	if e.loadedTypes[3] {
		return e.Investments, nil
	}
	return nil, &NotLoadedError{edge: "investments"}
}

// RankingSubmissionsOrErr returns the RankingSubmissions value or an error if the edge
// was not loaded in eager-loading.
func (e ParticipantEdges) RankingSubmissionsOrErr() ([]*RankingSubmission, error) {
	if e.loadedTypes[4] {
		return e.RankingSubmissions, nil
	}
	return nil, &NotLoadedError{edge: "ranking_submissions"}
}

// WordGuessesOrErr returns the WordGuesses value or an error if the edge
// was not loaded in eager-loading.
func (e ParticipantEdges) WordGuessesOrErr() ([]*WordGuess, error) {
	if e.loadedTypes[5] {
		return e.WordGuesses, nil
	}
	return nil, &NotLoadedError{edge: "word_guesses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Participant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case participant.FieldOrders, participant.FieldAssignedWords, participant.FieldCurrentRankings:
			values[i] = new([]byte)
		case participant.FieldMoney, participant.FieldOrdersCompleted, participant.FieldSpecialtyProductionUsed:
			values[i] = new(sql.NullInt64)
		case participant.FieldID, participant.FieldSessionID, participant.FieldParticipantCode, participant.FieldType, participant.FieldSpecialtyShape, participant.FieldRole, participant.FieldLoginStatus:
			values[i] = new(sql.NullString)
		case participant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Participant fields.
func (_m *Participant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case participant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case participant.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case participant.FieldParticipantCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_code", values[i])
			} else if value.Valid {
				_m.ParticipantCode = value.String
			}
		case participant.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = participant.Type(value.String)
			}
		case participant.FieldSpecialtyShape:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field specialty_shape", values[i])
			} else if value.Valid {
				_m.SpecialtyShape = value.String
			}
		case participant.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = value.String
			}
		case participant.FieldMoney:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field money", values[i])
			} else if value.Valid {
				_m.Money = int(value.Int64)
			}
		case participant.FieldOrders:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field orders", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Orders); err != nil {
					return fmt.Errorf("unmarshal field orders: %w", err)
				}
			}
		case participant.FieldOrdersCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field orders_completed", values[i])
			} else if value.Valid {
				_m.OrdersCompleted = int(value.Int64)
			}
		case participant.FieldAssignedWords:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_words", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AssignedWords); err != nil {
					return fmt.Errorf("unmarshal field assigned_words: %w", err)
				}
			}
		case participant.FieldCurrentRankings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field current_rankings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CurrentRankings); err != nil {
					return fmt.Errorf("unmarshal field current_rankings: %w", err)
				}
			}
		case participant.FieldLoginStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field login_status", values[i])
			} else if value.Valid {
				_m.LoginStatus = participant.LoginStatus(value.String)
			}
		case participant.FieldSpecialtyProductionUsed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field specialty_production_used", values[i])
			} else if value.Valid {
				_m.SpecialtyProductionUsed = int(value.Int64)
			}
		case participant.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Participant.
// This includes values selected through modifiers, order, etc.
func (_m *Participant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the Participant entity.
func (_m *Participant) QuerySession() *SessionQuery {
	return NewParticipantClient(_m.config).QuerySession(_m)
}

// QueryInventory queries the "inventory" edge of the Participant entity.
func (_m *Participant) QueryInventory() *ShapeInventoryQuery {
	return NewParticipantClient(_m.config).QueryInventory(_m)
}

// QueryProductionEntries queries the "production_entries" edge of the Participant entity.
func (_m *Participant) QueryProductionEntries() *ProductionQueueEntryQuery {
	return NewParticipantClient(_m.config).QueryProductionEntries(_m)
}

// QueryInvestments queries the "investments" edge of the Participant entity.
func (_m *Participant) QueryInvestments() *InvestmentQuery {
	return NewParticipantClient(_m.config).QueryInvestments(_m)
}

// QueryRankingSubmissions queries the "ranking_submissions" edge of the Participant entity.
func (_m *Participant) QueryRankingSubmissions() *RankingSubmissionQuery {
	return NewParticipantClient(_m.config).QueryRankingSubmissions(_m)
}

// QueryWordGuesses queries the "word_guesses" edge of the Participant entity.
func (_m *Participant) QueryWordGuesses() *WordGuessQuery {
	return NewParticipantClient(_m.config).QueryWordGuesses(_m)
}

// Update returns a builder for updating this Participant.
// Note that you need to call Participant.Unwrap() before calling this method if this Participant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Participant) Update() *ParticipantUpdateOne {
	return NewParticipantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Participant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Participant) Unwrap() *Participant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Participant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Participant) String() string {
	var builder strings.Builder
	builder.WriteString("Participant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("participant_code=")
	builder.WriteString(_m.ParticipantCode)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("specialty_shape=")
	builder.WriteString(_m.SpecialtyShape)
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(_m.Role)
	builder.WriteString(", ")
	builder.WriteString("money=")
	builder.WriteString(fmt.Sprintf("%v", _m.Money))
	builder.WriteString(", ")
	builder.WriteString("orders=")
	builder.WriteString(fmt.Sprintf("%v", _m.Orders))
	builder.WriteString(", ")
	builder.WriteString("orders_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.OrdersCompleted))
	builder.WriteString(", ")
	builder.WriteString("assigned_words=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignedWords))
	builder.WriteString(", ")
	builder.WriteString("current_rankings=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentRankings))
	builder.WriteString(", ")
	builder.WriteString("login_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoginStatus))
	builder.WriteString(", ")
	builder.WriteString("specialty_production_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.SpecialtyProductionUsed))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Participants is a parsable slice of Participant.
type Participants []*Participant
