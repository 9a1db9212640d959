// Code generated by ent, DO NOT EDIT.

package participant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/behavelab/parley/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldSessionID, v))
}

// ParticipantCode applies equality check predicate on the "participant_code" field. It's identical to ParticipantCodeEQ.
func ParticipantCode(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldParticipantCode, v))
}

// SpecialtyShape applies equality check predicate on the "specialty_shape" field. It's identical to SpecialtyShapeEQ.
func SpecialtyShape(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldSpecialtyShape, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldRole, v))
}

// Money applies equality check predicate on the "money" field. It's identical to MoneyEQ.
func Money(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldMoney, v))
}

// OrdersCompleted applies equality check predicate on the "orders_completed" field. It's identical to OrdersCompletedEQ.
func OrdersCompleted(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldOrdersCompleted, v))
}

// SpecialtyProductionUsed applies equality check predicate on the "specialty_production_used" field. It's identical to SpecialtyProductionUsedEQ.
func SpecialtyProductionUsed(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldSpecialtyProductionUsed, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldSessionID, v))
}

// ParticipantCodeEQ applies the EQ predicate on the "participant_code" field.
func ParticipantCodeEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldParticipantCode, v))
}

// ParticipantCodeNEQ applies the NEQ predicate on the "participant_code" field.
func ParticipantCodeNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldParticipantCode, v))
}

// ParticipantCodeIn applies the In predicate on the "participant_code" field.
func ParticipantCodeIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldParticipantCode, vs...))
}

// ParticipantCodeNotIn applies the NotIn predicate on the "participant_code" field.
func ParticipantCodeNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldParticipantCode, vs...))
}

// ParticipantCodeGT applies the GT predicate on the "participant_code" field.
func ParticipantCodeGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldParticipantCode, v))
}

// ParticipantCodeGTE applies the GTE predicate on the "participant_code" field.
func ParticipantCodeGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldParticipantCode, v))
}

// ParticipantCodeLT applies the LT predicate on the "participant_code" field.
func ParticipantCodeLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldParticipantCode, v))
}

// ParticipantCodeLTE applies the LTE predicate on the "participant_code" field.
func ParticipantCodeLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldParticipantCode, v))
}

// ParticipantCodeContains applies the Contains predicate on the "participant_code" field.
func ParticipantCodeContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldParticipantCode, v))
}

// ParticipantCodeHasPrefix applies the HasPrefix predicate on the "participant_code" field.
func ParticipantCodeHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldParticipantCode, v))
}

// ParticipantCodeHasSuffix applies the HasSuffix predicate on the "participant_code" field.
func ParticipantCodeHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldParticipantCode, v))
}

// ParticipantCodeEqualFold applies the EqualFold predicate on the "participant_code" field.
func ParticipantCodeEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldParticipantCode, v))
}

// ParticipantCodeContainsFold applies the ContainsFold predicate on the "participant_code" field.
func ParticipantCodeContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldParticipantCode, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldType, vs...))
}

// SpecialtyShapeEQ applies the EQ predicate on the "specialty_shape" field.
func SpecialtyShapeEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldSpecialtyShape, v))
}

// SpecialtyShapeNEQ applies the NEQ predicate on the "specialty_shape" field.
func SpecialtyShapeNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldSpecialtyShape, v))
}

// SpecialtyShapeIn applies the In predicate on the "specialty_shape" field.
func SpecialtyShapeIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldSpecialtyShape, vs...))
}

// SpecialtyShapeNotIn applies the NotIn predicate on the "specialty_shape" field.
func SpecialtyShapeNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldSpecialtyShape, vs...))
}

// SpecialtyShapeGT applies the GT predicate on the "specialty_shape" field.
func SpecialtyShapeGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldSpecialtyShape, v))
}

// SpecialtyShapeGTE applies the GTE predicate on the "specialty_shape" field.
func SpecialtyShapeGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldSpecialtyShape, v))
}

// SpecialtyShapeLT applies the LT predicate on the "specialty_shape" field.
func SpecialtyShapeLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldSpecialtyShape, v))
}

// SpecialtyShapeLTE applies the LTE predicate on the "specialty_shape" field.
func SpecialtyShapeLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldSpecialtyShape, v))
}

// SpecialtyShapeContains applies the Contains predicate on the "specialty_shape" field.
func SpecialtyShapeContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldSpecialtyShape, v))
}

// SpecialtyShapeHasPrefix applies the HasPrefix predicate on the "specialty_shape" field.
func SpecialtyShapeHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldSpecialtyShape, v))
}

// SpecialtyShapeHasSuffix applies the HasSuffix predicate on the "specialty_shape" field.
func SpecialtyShapeHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldSpecialtyShape, v))
}

// SpecialtyShapeIsNil applies the IsNil predicate on the "specialty_shape" field.
func SpecialtyShapeIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldSpecialtyShape))
}

// SpecialtyShapeNotNil applies the NotNil predicate on the "specialty_shape" field.
func SpecialtyShapeNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldSpecialtyShape))
}

// SpecialtyShapeEqualFold applies the EqualFold predicate on the "specialty_shape" field.
func SpecialtyShapeEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldSpecialtyShape, v))
}

// SpecialtyShapeContainsFold applies the ContainsFold predicate on the "specialty_shape" field.
func SpecialtyShapeContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldSpecialtyShape, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Participant {
	return predicate.Participant(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Participant {
	return predicate.Participant(sql.FieldContainsFold(FieldRole, v))
}

// MoneyEQ applies the EQ predicate on the "money" field.
func MoneyEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldMoney, v))
}

// MoneyNEQ applies the NEQ predicate on the "money" field.
func MoneyNEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldMoney, v))
}

// MoneyIn applies the In predicate on the "money" field.
func MoneyIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldMoney, vs...))
}

// MoneyNotIn applies the NotIn predicate on the "money" field.
func MoneyNotIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldMoney, vs...))
}

// MoneyGT applies the GT predicate on the "money" field.
func MoneyGT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldMoney, v))
}

// MoneyGTE applies the GTE predicate on the "money" field.
func MoneyGTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldMoney, v))
}

// MoneyLT applies the LT predicate on the "money" field.
func MoneyLT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldMoney, v))
}

// MoneyLTE applies the LTE predicate on the "money" field.
func MoneyLTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldMoney, v))
}

// OrdersIsNil applies the IsNil predicate on the "orders" field.
func OrdersIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldOrders))
}

// OrdersNotNil applies the NotNil predicate on the "orders" field.
func OrdersNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldOrders))
}

// OrdersCompletedEQ applies the EQ predicate on the "orders_completed" field.
func OrdersCompletedEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldOrdersCompleted, v))
}

// OrdersCompletedNEQ applies the NEQ predicate on the "orders_completed" field.
func OrdersCompletedNEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldOrdersCompleted, v))
}

// OrdersCompletedIn applies the In predicate on the "orders_completed" field.
func OrdersCompletedIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldOrdersCompleted, vs...))
}

// OrdersCompletedNotIn applies the NotIn predicate on the "orders_completed" field.
func OrdersCompletedNotIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldOrdersCompleted, vs...))
}

// OrdersCompletedGT applies the GT predicate on the "orders_completed" field.
func OrdersCompletedGT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldOrdersCompleted, v))
}

// OrdersCompletedGTE applies the GTE predicate on the "orders_completed" field.
func OrdersCompletedGTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldOrdersCompleted, v))
}

// OrdersCompletedLT applies the LT predicate on the "orders_completed" field.
func OrdersCompletedLT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldOrdersCompleted, v))
}

// OrdersCompletedLTE applies the LTE predicate on the "orders_completed" field.
func OrdersCompletedLTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldOrdersCompleted, v))
}

// AssignedWordsIsNil applies the IsNil predicate on the "assigned_words" field.
func AssignedWordsIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldAssignedWords))
}

// AssignedWordsNotNil applies the NotNil predicate on the "assigned_words" field.
func AssignedWordsNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldAssignedWords))
}

// CurrentRankingsIsNil applies the IsNil predicate on the "current_rankings" field.
func CurrentRankingsIsNil() predicate.Participant {
	return predicate.Participant(sql.FieldIsNull(FieldCurrentRankings))
}

// CurrentRankingsNotNil applies the NotNil predicate on the "current_rankings" field.
func CurrentRankingsNotNil() predicate.Participant {
	return predicate.Participant(sql.FieldNotNull(FieldCurrentRankings))
}

// LoginStatusEQ applies the EQ predicate on the "login_status" field.
func LoginStatusEQ(v LoginStatus) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldLoginStatus, v))
}

// LoginStatusNEQ applies the NEQ predicate on the "login_status" field.
func LoginStatusNEQ(v LoginStatus) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldLoginStatus, v))
}

// LoginStatusIn applies the In predicate on the "login_status" field.
func LoginStatusIn(vs ...LoginStatus) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldLoginStatus, vs...))
}

// LoginStatusNotIn applies the NotIn predicate on the "login_status" field.
func LoginStatusNotIn(vs ...LoginStatus) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldLoginStatus, vs...))
}

// SpecialtyProductionUsedEQ applies the EQ predicate on the "specialty_production_used" field.
func SpecialtyProductionUsedEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldSpecialtyProductionUsed, v))
}

// SpecialtyProductionUsedNEQ applies the NEQ predicate on the "specialty_production_used" field.
func SpecialtyProductionUsedNEQ(v int) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldSpecialtyProductionUsed, v))
}

// SpecialtyProductionUsedIn applies the In predicate on the "specialty_production_used" field.
func SpecialtyProductionUsedIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldSpecialtyProductionUsed, vs...))
}

// SpecialtyProductionUsedNotIn applies the NotIn predicate on the "specialty_production_used" field.
func SpecialtyProductionUsedNotIn(vs ...int) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldSpecialtyProductionUsed, vs...))
}

// SpecialtyProductionUsedGT applies the GT predicate on the "specialty_production_used" field.
func SpecialtyProductionUsedGT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldSpecialtyProductionUsed, v))
}

// SpecialtyProductionUsedGTE applies the GTE predicate on the "specialty_production_used" field.
func SpecialtyProductionUsedGTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldSpecialtyProductionUsed, v))
}

// SpecialtyProductionUsedLT applies the LT predicate on the "specialty_production_used" field.
func SpecialtyProductionUsedLT(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldSpecialtyProductionUsed, v))
}

// SpecialtyProductionUsedLTE applies the LTE predicate on the "specialty_production_used" field.
func SpecialtyProductionUsedLTE(v int) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldSpecialtyProductionUsed, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Participant {
	return predicate.Participant(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInventory applies the HasEdge predicate on the "inventory" edge.
func HasInventory() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, InventoryTable, InventoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInventoryWith applies the HasEdge predicate on the "inventory" edge with a given conditions (other predicates).
func HasInventoryWith(preds ...predicate.ShapeInventory) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newInventoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasProductionEntries applies the HasEdge predicate on the "production_entries" edge.
func HasProductionEntries() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ProductionEntriesTable, ProductionEntriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProductionEntriesWith applies the HasEdge predicate on the "production_entries" edge with a given conditions (other predicates).
func HasProductionEntriesWith(preds ...predicate.ProductionQueueEntry) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newProductionEntriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInvestments applies the HasEdge predicate on the "investments" edge.
func HasInvestments() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvestmentsTable, InvestmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvestmentsWith applies the HasEdge predicate on the "investments" edge with a given conditions (other predicates).
func HasInvestmentsWith(preds ...predicate.Investment) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newInvestmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRankingSubmissions applies the HasEdge predicate on the "ranking_submissions" edge.
func HasRankingSubmissions() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RankingSubmissionsTable, RankingSubmissionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRankingSubmissionsWith applies the HasEdge predicate on the "ranking_submissions" edge with a given conditions (other predicates).
func HasRankingSubmissionsWith(preds ...predicate.RankingSubmission) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newRankingSubmissionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWordGuesses applies the HasEdge predicate on the "word_guesses" edge.
func HasWordGuesses() predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WordGuessesTable, WordGuessesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWordGuessesWith applies the HasEdge predicate on the "word_guesses" edge with a given conditions (other predicates).
func HasWordGuessesWith(preds ...predicate.WordGuess) predicate.Participant {
	return predicate.Participant(func(s *sql.Selector) {
		step := newWordGuessesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Participant) predicate.Participant {
	return predicate.Participant(sql.NotPredicates(p))
}
