// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/wordguess"
)

// WordGuess is the model entity for the WordGuess schema.
type WordGuess struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID string `json:"participant_id,omitempty"`
	// GuessText holds the value of the "guess_text" field.
	GuessText string `json:"guess_text,omitempty"`
	// Round the guess was made in; rounds advance on correct guesses
	Round int `json:"round,omitempty"`
	// Correct holds the value of the "correct" field.
	Correct bool `json:"correct,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WordGuessQuery when eager-loading is set.
	Edges        WordGuessEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WordGuessEdges holds the relations/edges for other nodes in the graph.
type WordGuessEdges struct {
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
func (e WordGuessEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WordGuessEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WordGuess) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wordguess.FieldCorrect:
			values[i] = new(sql.NullBool)
		case wordguess.FieldRound:
			values[i] = new(sql.NullInt64)
		case wordguess.FieldID, wordguess.FieldSessionID, wordguess.FieldParticipantID, wordguess.FieldGuessText:
			values[i] = new(sql.NullString)
		case wordguess.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WordGuess fields.
func (_m *WordGuess) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wordguess.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case wordguess.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case wordguess.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case wordguess.FieldGuessText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guess_text", values[i])
			} else if value.Valid {
				_m.GuessText = value.String
			}
		case wordguess.FieldRound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round", values[i])
			} else if value.Valid {
				_m.Round = int(value.Int64)
			}
		case wordguess.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				_m.Correct = value.Bool
			}
		case wordguess.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WordGuess.
// This includes values selected through modifiers, order, etc.
func (_m *WordGuess) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the WordGuess entity.
func (_m *WordGuess) QuerySession() *SessionQuery {
	return NewWordGuessClient(_m.config).QuerySession(_m)
}

// QueryParticipant queries the "participant" edge of the WordGuess entity.
func (_m *WordGuess) QueryParticipant() *ParticipantQuery {
	return NewWordGuessClient(_m.config).QueryParticipant(_m)
}

// Update returns a builder for updating this WordGuess.
// Note that you need to call WordGuess.Unwrap() before calling this method if this WordGuess
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WordGuess) Update() *WordGuessUpdateOne {
	return NewWordGuessClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WordGuess entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WordGuess) Unwrap() *WordGuess {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WordGuess is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WordGuess) String() string {
	var builder strings.Builder
	builder.WriteString("WordGuess(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("guess_text=")
	builder.WriteString(_m.GuessText)
	builder.WriteString(", ")
	builder.WriteString("round=")
	builder.WriteString(fmt.Sprintf("%v", _m.Round))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.Correct))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WordGuesses is a parsable slice of WordGuess.
type WordGuesses []*WordGuess
