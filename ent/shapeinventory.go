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

// ShapeInventory is the model entity for the ShapeInventory schema.
type ShapeInventory struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ParticipantID holds the value of the "participant_id" field.
	ParticipantID string `json:"participant_id,omitempty"`
	// ShapesInInventory holds the value of the "shapes_in_inventory" field.
	ShapesInInventory []string `json:"shapes_in_inventory,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ShapeInventoryQuery when eager-loading is set.
	Edges        ShapeInventoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ShapeInventoryEdges holds the relations/edges for other nodes in the graph.
type ShapeInventoryEdges struct {
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
func (e ShapeInventoryEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// ParticipantOrErr returns the Participant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ShapeInventoryEdges) ParticipantOrErr() (*Participant, error) {
	if e.Participant != nil {
		return e.Participant, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: participant.Label}
	}
	return nil, &NotLoadedError{edge: "participant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ShapeInventory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case shapeinventory.FieldShapesInInventory:
			values[i] = new([]byte)
		case shapeinventory.FieldID, shapeinventory.FieldSessionID, shapeinventory.FieldParticipantID:
			values[i] = new(sql.NullString)
		case shapeinventory.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ShapeInventory fields.
func (_m *ShapeInventory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case shapeinventory.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case shapeinventory.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case shapeinventory.FieldParticipantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field participant_id", values[i])
			} else if value.Valid {
				_m.ParticipantID = value.String
			}
		case shapeinventory.FieldShapesInInventory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field shapes_in_inventory", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ShapesInInventory); err != nil {
					return fmt.Errorf("unmarshal field shapes_in_inventory: %w", err)
				}
			}
		case shapeinventory.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ShapeInventory.
// This includes values selected through modifiers, order, etc.
func (_m *ShapeInventory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the ShapeInventory entity.
func (_m *ShapeInventory) QuerySession() *SessionQuery {
	return NewShapeInventoryClient(_m.config).QuerySession(_m)
}

// QueryParticipant queries the "participant" edge of the ShapeInventory entity.
func (_m *ShapeInventory) QueryParticipant() *ParticipantQuery {
	return NewShapeInventoryClient(_m.config).QueryParticipant(_m)
}

// Update returns a builder for updating this ShapeInventory.
// Note that you need to call ShapeInventory.Unwrap() before calling this method if this ShapeInventory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ShapeInventory) Update() *ShapeInventoryUpdateOne {
	return NewShapeInventoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ShapeInventory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ShapeInventory) Unwrap() *ShapeInventory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ShapeInventory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ShapeInventory) String() string {
	var builder strings.Builder
	builder.WriteString("ShapeInventory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("participant_id=")
	builder.WriteString(_m.ParticipantID)
	builder.WriteString(", ")
	builder.WriteString("shapes_in_inventory=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShapesInInventory))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ShapeInventories is a parsable slice of ShapeInventory.
type ShapeInventories []*ShapeInventory
