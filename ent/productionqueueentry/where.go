// Code generated by ent, DO NOT EDIT.

package productionqueueentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/behavelab/parley/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldSessionID, v))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldParticipantID, v))
}

// Shape applies equality check predicate on the "shape" field. It's identical to ShapeEQ.
func Shape(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldShape, v))
}

// Quantity applies equality check predicate on the "quantity" field. It's identical to QuantityEQ.
func Quantity(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldQuantity, v))
}

// QueuePosition applies equality check predicate on the "queue_position" field. It's identical to QueuePositionEQ.
func QueuePosition(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldQueuePosition, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldStartTime, v))
}

// EstimatedCompletion applies equality check predicate on the "estimated_completion" field. It's identical to EstimatedCompletionEQ.
func EstimatedCompletion(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldEstimatedCompletion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldContainsFold(FieldSessionID, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLTE(FieldParticipantID, v))
}

// ParticipantIDContains applies the Contains predicate on the "participant_id" field.
func ParticipantIDContains(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldContains(FieldParticipantID, v))
}

// ParticipantIDHasPrefix applies the HasPrefix predicate on the "participant_id" field.
func ParticipantIDHasPrefix(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldHasPrefix(FieldParticipantID, v))
}

// ParticipantIDHasSuffix applies the HasSuffix predicate on the "participant_id" field.
func ParticipantIDHasSuffix(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldHasSuffix(FieldParticipantID, v))
}

// ParticipantIDEqualFold applies the EqualFold predicate on the "participant_id" field.
func ParticipantIDEqualFold(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEqualFold(FieldParticipantID, v))
}

// ParticipantIDContainsFold applies the ContainsFold predicate on the "participant_id" field.
func ParticipantIDContainsFold(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldContainsFold(FieldParticipantID, v))
}

// ShapeEQ applies the EQ predicate on the "shape" field.
func ShapeEQ(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldShape, v))
}

// ShapeNEQ applies the NEQ predicate on the "shape" field.
func ShapeNEQ(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldShape, v))
}

// ShapeIn applies the In predicate on the "shape" field.
func ShapeIn(vs ...string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldShape, vs...))
}

// ShapeNotIn applies the NotIn predicate on the "shape" field.
func ShapeNotIn(vs ...string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldShape, vs...))
}

// ShapeGT applies the GT predicate on the "shape" field.
func ShapeGT(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGT(FieldShape, v))
}

// ShapeGTE applies the GTE predicate on the "shape" field.
func ShapeGTE(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGTE(FieldShape, v))
}

// ShapeLT applies the LT predicate on the "shape" field.
func ShapeLT(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLT(FieldShape, v))
}

// ShapeLTE applies the LTE predicate on the "shape" field.
func ShapeLTE(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLTE(FieldShape, v))
}

// ShapeContains applies the Contains predicate on the "shape" field.
func ShapeContains(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldContains(FieldShape, v))
}

// ShapeHasPrefix applies the HasPrefix predicate on the "shape" field.
func ShapeHasPrefix(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldHasPrefix(FieldShape, v))
}

// ShapeHasSuffix applies the HasSuffix predicate on the "shape" field.
func ShapeHasSuffix(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldHasSuffix(FieldShape, v))
}

// ShapeEqualFold applies the EqualFold predicate on the "shape" field.
func ShapeEqualFold(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEqualFold(FieldShape, v))
}

// ShapeContainsFold applies the ContainsFold predicate on the "shape" field.
func ShapeContainsFold(v string) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldContainsFold(FieldShape, v))
}

// QuantityEQ applies the EQ predicate on the "quantity" field.
func QuantityEQ(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldQuantity, v))
}

// QuantityNEQ applies the NEQ predicate on the "quantity" field.
func QuantityNEQ(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldQuantity, v))
}

// QuantityIn applies the In predicate on the "quantity" field.
func QuantityIn(vs ...int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldQuantity, vs...))
}

// QuantityNotIn applies the NotIn predicate on the "quantity" field.
func QuantityNotIn(vs ...int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldQuantity, vs...))
}

// QuantityGT applies the GT predicate on the "quantity" field.
func QuantityGT(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGT(FieldQuantity, v))
}

// QuantityGTE applies the GTE predicate on the "quantity" field.
func QuantityGTE(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGTE(FieldQuantity, v))
}

// QuantityLT applies the LT predicate on the "quantity" field.
func QuantityLT(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLT(FieldQuantity, v))
}

// QuantityLTE applies the LTE predicate on the "quantity" field.
func QuantityLTE(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLTE(FieldQuantity, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldStatus, vs...))
}

// QueuePositionEQ applies the EQ predicate on the "queue_position" field.
func QueuePositionEQ(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldQueuePosition, v))
}

// QueuePositionNEQ applies the NEQ predicate on the "queue_position" field.
func QueuePositionNEQ(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldQueuePosition, v))
}

// QueuePositionIn applies the In predicate on the "queue_position" field.
func QueuePositionIn(vs ...int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldQueuePosition, vs...))
}

// QueuePositionNotIn applies the NotIn predicate on the "queue_position" field.
func QueuePositionNotIn(vs ...int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldQueuePosition, vs...))
}

// QueuePositionGT applies the GT predicate on the "queue_position" field.
func QueuePositionGT(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGT(FieldQueuePosition, v))
}

// QueuePositionGTE applies the GTE predicate on the "queue_position" field.
func QueuePositionGTE(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGTE(FieldQueuePosition, v))
}

// QueuePositionLT applies the LT predicate on the "queue_position" field.
func QueuePositionLT(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLT(FieldQueuePosition, v))
}

// QueuePositionLTE applies the LTE predicate on the "queue_position" field.
func QueuePositionLTE(v int) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLTE(FieldQueuePosition, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLTE(FieldStartTime, v))
}

// StartTimeIsNil applies the IsNil predicate on the "start_time" field.
func StartTimeIsNil() predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIsNull(FieldStartTime))
}

// StartTimeNotNil applies the NotNil predicate on the "start_time" field.
func StartTimeNotNil() predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotNull(FieldStartTime))
}

// EstimatedCompletionEQ applies the EQ predicate on the "estimated_completion" field.
func EstimatedCompletionEQ(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldEstimatedCompletion, v))
}

// EstimatedCompletionNEQ applies the NEQ predicate on the "estimated_completion" field.
func EstimatedCompletionNEQ(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldEstimatedCompletion, v))
}

// EstimatedCompletionIn applies the In predicate on the "estimated_completion" field.
func EstimatedCompletionIn(vs ...time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldEstimatedCompletion, vs...))
}

// EstimatedCompletionNotIn applies the NotIn predicate on the "estimated_completion" field.
func EstimatedCompletionNotIn(vs ...time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldEstimatedCompletion, vs...))
}

// EstimatedCompletionGT applies the GT predicate on the "estimated_completion" field.
func EstimatedCompletionGT(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGT(FieldEstimatedCompletion, v))
}

// EstimatedCompletionGTE applies the GTE predicate on the "estimated_completion" field.
func EstimatedCompletionGTE(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGTE(FieldEstimatedCompletion, v))
}

// EstimatedCompletionLT applies the LT predicate on the "estimated_completion" field.
func EstimatedCompletionLT(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLT(FieldEstimatedCompletion, v))
}

// EstimatedCompletionLTE applies the LTE predicate on the "estimated_completion" field.
func EstimatedCompletionLTE(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLTE(FieldEstimatedCompletion, v))
}

// EstimatedCompletionIsNil applies the IsNil predicate on the "estimated_completion" field.
func EstimatedCompletionIsNil() predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIsNull(FieldEstimatedCompletion))
}

// EstimatedCompletionNotNil applies the NotNil predicate on the "estimated_completion" field.
func EstimatedCompletionNotNil() predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotNull(FieldEstimatedCompletion))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipant applies the HasEdge predicate on the "participant" edge.
func HasParticipant() predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParticipantTable, ParticipantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantWith applies the HasEdge predicate on the "participant" edge with a given conditions (other predicates).
func HasParticipantWith(preds ...predicate.Participant) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(func(s *sql.Selector) {
		step := newParticipantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProductionQueueEntry) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProductionQueueEntry) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProductionQueueEntry) predicate.ProductionQueueEntry {
	return predicate.ProductionQueueEntry(sql.NotPredicates(p))
}
