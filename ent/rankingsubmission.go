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
	"github.com/behavelab/parley/ent/rankingsubmission"
	"github.com/behavelab/parley/ent/session"
)

// RankingSubmission is the model entity for the RankingSubmission schema.
type RankingSubmission struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID string `json:"participant_id,omitempty"`
	// Ordered list of {essay_id, rank, reasoning} as submitted
	EssayRankings []map[string]interface{} `json:"essay_rankings,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RankingSubmissionQuery when eager-loading is set.
	Edges        RankingSubmissionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RankingSubmissionEdges holds the relations/edges for other nodes in the graph.
type RankingSubmissionEdges struct {
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
func (e RankingSubmissionEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e RankingSubmissionEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RankingSubmission) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rankingsubmission.FieldEssayRankings:
			values[i] = new([]byte)
		case rankingsubmission.FieldID, rankingsubmission.FieldSessionID, rankingsubmission.FieldParticipantID:
			values[i] = new(sql.NullString)
		case rankingsubmission.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RankingSubmission fields.
func (_m *RankingSubmission) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rankingsubmission.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rankingsubmission.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case rankingsubmission.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case rankingsubmission.FieldEssayRankings:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field essay_rankings", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EssayRankings); err != nil {
					return fmt.Errorf("unmarshal field essay_rankings: %w", err)
				}
			}
		case rankingsubmission.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the RankingSubmission.
// This includes values selected through modifiers, order, etc.
func (_m *RankingSubmission) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the RankingSubmission entity.
func (_m *RankingSubmission) QuerySession() *SessionQuery {
	return NewRankingSubmissionClient(_m.config).QuerySession(_m)
}

// QueryParticipant queries the "participant" edge of the RankingSubmission entity.
func (_m *RankingSubmission) QueryParticipant() *ParticipantQuery {
	return NewRankingSubmissionClient(_m.config).QueryParticipant(_m)
}

// Update returns a builder for updating this RankingSubmission.
// Note that you need to call RankingSubmission.Unwrap() before calling this method if this RankingSubmission
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RankingSubmission) Update() *RankingSubmissionUpdateOne {
	return NewRankingSubmissionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RankingSubmission entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RankingSubmission) Unwrap() *RankingSubmission {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RankingSubmission is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RankingSubmission) String() string {
	var builder strings.Builder
	builder.WriteString("RankingSubmission(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("essay_rankings=")
	builder.WriteString(fmt.Sprintf("%v", _m.EssayRankings))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// RankingSubmissions is a parsable slice of RankingSubmission.
type RankingSubmissions []*RankingSubmission
