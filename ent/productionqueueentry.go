// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/productionqueueentry"
	"github.com/behavelab/parley/ent/session"
)

// ProductionQueueEntry is the model entity for the ProductionQueueEntry schema.
type ProductionQueueEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID string `json:"participant_id,omitempty"`
	// Shape holds the value of the "shape" field.
	Shape string `json:"shape,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity int `json:"quantity,omitempty"`
	// Status holds the value of the "status" field.
	Status productionqueueentry.Status `json:"status,omitempty"`
	// QueuePosition holds the value of the "queue_position" field.
	QueuePosition int `json:"queue_position,omitempty"`
	// Set when the entry enters in_progress
	StartTime *time.Time `json:"start_time,omitempty"`
	// EstimatedCompletion holds the value of the "estimated_completion" field.
	EstimatedCompletion *time.Time `json:"estimated_completion,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProductionQueueEntryQuery when eager-loading is set.
	Edges        ProductionQueueEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProductionQueueEntryEdges holds the relations/edges for other nodes in the graph.
type ProductionQueueEntryEdges struct {
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
func (e ProductionQueueEntryEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProductionQueueEntryEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProductionQueueEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case productionqueueentry.FieldQuantity, productionqueueentry.FieldQueuePosition:
			values[i] = new(sql.NullInt64)
		case productionqueueentry.FieldID, productionqueueentry.FieldSessionID, productionqueueentry.FieldParticipantID, productionqueueentry.FieldShape, productionqueueentry.FieldStatus:
			values[i] = new(sql.NullString)
		case productionqueueentry.FieldStartTime, productionqueueentry.FieldEstimatedCompletion, productionqueueentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProductionQueueEntry fields.
func (_m *ProductionQueueEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case productionqueueentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case productionqueueentry.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case productionqueueentry.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case productionqueueentry.FieldShape:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field shape", values[i])
			} else if value.Valid {
				_m.Shape = value.String
			}
		case productionqueueentry.FieldQuantity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = int(value.Int64)
			}
		case productionqueueentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = productionqueueentry.Status(value.String)
			}
		case productionqueueentry.FieldQueuePosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field queue_position", values[i])
			} else if value.Valid {
				_m.QueuePosition = int(value.Int64)
			}
		case productionqueueentry.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = new(time.Time)
				*_m.StartTime = value.Time
			}
		case productionqueueentry.FieldEstimatedCompletion:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_completion", values[i])
			} else if value.Valid {
				_m.EstimatedCompletion = new(time.Time)
				*_m.EstimatedCompletion = value.Time
			}
		case productionqueueentry.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ProductionQueueEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ProductionQueueEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ProductionQueueEntry entity.
func (_m *ProductionQueueEntry) QuerySession() *SessionQuery {
	return NewProductionQueueEntryClient(_m.config).QuerySession(_m)
}

// QueryParticipant queries the "participant" edge of the ProductionQueueEntry entity.
func (_m *ProductionQueueEntry) QueryParticipant() *ParticipantQuery {
	return NewProductionQueueEntryClient(_m.config).QueryParticipant(_m)
}

// Update returns a builder for updating this ProductionQueueEntry.
// Note that you need to call ProductionQueueEntry.Unwrap() before calling this method if this ProductionQueueEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProductionQueueEntry) Update() *ProductionQueueEntryUpdateOne {
	return NewProductionQueueEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProductionQueueEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProductionQueueEntry) Unwrap() *ProductionQueueEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProductionQueueEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProductionQueueEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ProductionQueueEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("shape=")
	builder.WriteString(_m.Shape)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("queue_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.QueuePosition))
	builder.WriteString(", ")
	if v := _m.StartTime; v != nil {
		builder.WriteString("start_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EstimatedCompletion; v != nil {
		builder.WriteString("estimated_completion=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProductionQueueEntries is a parsable slice of ProductionQueueEntry.
type ProductionQueueEntries []*ProductionQueueEntry
