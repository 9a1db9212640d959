// Code generated by ent, DO NOT EDIT.

package wordguess

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/behavelab/parley/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldSessionID, v))
}

// ParticipantID applies equality check predicate on the "participant_id" field. It's identical to ParticipantIDEQ.
func ParticipantID(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldParticipantID, v))
}

// GuessText applies equality check predicate on the "guess_text" field. It's identical to GuessTextEQ.
func GuessText(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldGuessText, v))
}

// Round applies equality check predicate on the "round" field. It's identical to RoundEQ.
func Round(v int) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldRound, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldCorrect, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldContainsFold(FieldSessionID, v))
}

// ParticipantIDEQ applies the EQ predicate on the "participant_id" field.
func ParticipantIDEQ(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldParticipantID, v))
}

// ParticipantIDNEQ applies the NEQ predicate on the "participant_id" field.
func ParticipantIDNEQ(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNEQ(FieldParticipantID, v))
}

// ParticipantIDIn applies the In predicate on the "participant_id" field.
func ParticipantIDIn(vs ...string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldIn(FieldParticipantID, vs...))
}

// ParticipantIDNotIn applies the NotIn predicate on the "participant_id" field.
func ParticipantIDNotIn(vs ...string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNotIn(FieldParticipantID, vs...))
}

// ParticipantIDGT applies the GT predicate on the "participant_id" field.
func ParticipantIDGT(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGT(FieldParticipantID, v))
}

// ParticipantIDGTE applies the GTE predicate on the "participant_id" field.
func ParticipantIDGTE(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGTE(FieldParticipantID, v))
}

// ParticipantIDLT applies the LT predicate on the "participant_id" field.
func ParticipantIDLT(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLT(FieldParticipantID, v))
}

// ParticipantIDLTE applies the LTE predicate on the "participant_id" field.
func ParticipantIDLTE(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLTE(FieldParticipantID, v))
}

// ParticipantIDContains applies the Contains predicate on the "participant_id" field.
func ParticipantIDContains(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldContains(FieldParticipantID, v))
}

// ParticipantIDHasPrefix applies the HasPrefix predicate on the "participant_id" field.
func ParticipantIDHasPrefix(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldHasPrefix(FieldParticipantID, v))
}

// ParticipantIDHasSuffix applies the HasSuffix predicate on the "participant_id" field.
func ParticipantIDHasSuffix(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldHasSuffix(FieldParticipantID, v))
}

// ParticipantIDEqualFold applies the EqualFold predicate on the "participant_id" field.
func ParticipantIDEqualFold(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEqualFold(FieldParticipantID, v))
}

// ParticipantIDContainsFold applies the ContainsFold predicate on the "participant_id" field.
func ParticipantIDContainsFold(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldContainsFold(FieldParticipantID, v))
}

// GuessTextEQ applies the EQ predicate on the "guess_text" field.
func GuessTextEQ(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldGuessText, v))
}

// GuessTextNEQ applies the NEQ predicate on the "guess_text" field.
func GuessTextNEQ(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNEQ(FieldGuessText, v))
}

// GuessTextIn applies the In predicate on the "guess_text" field.
func GuessTextIn(vs ...string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldIn(FieldGuessText, vs...))
}

// GuessTextNotIn applies the NotIn predicate on the "guess_text" field.
func GuessTextNotIn(vs ...string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNotIn(FieldGuessText, vs...))
}

// GuessTextGT applies the GT predicate on the "guess_text" field.
func GuessTextGT(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGT(FieldGuessText, v))
}

// GuessTextGTE applies the GTE predicate on the "guess_text" field.
func GuessTextGTE(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGTE(FieldGuessText, v))
}

// GuessTextLT applies the LT predicate on the "guess_text" field.
func GuessTextLT(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLT(FieldGuessText, v))
}

// GuessTextLTE applies the LTE predicate on the "guess_text" field.
func GuessTextLTE(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLTE(FieldGuessText, v))
}

// GuessTextContains applies the Contains predicate on the "guess_text" field.
func GuessTextContains(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldContains(FieldGuessText, v))
}

// GuessTextHasPrefix applies the HasPrefix predicate on the "guess_text" field.
func GuessTextHasPrefix(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldHasPrefix(FieldGuessText, v))
}

// GuessTextHasSuffix applies the HasSuffix predicate on the "guess_text" field.
func GuessTextHasSuffix(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldHasSuffix(FieldGuessText, v))
}

// GuessTextEqualFold applies the EqualFold predicate on the "guess_text" field.
func GuessTextEqualFold(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEqualFold(FieldGuessText, v))
}

// GuessTextContainsFold applies the ContainsFold predicate on the "guess_text" field.
func GuessTextContainsFold(v string) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldContainsFold(FieldGuessText, v))
}

// RoundEQ applies the EQ predicate on the "round" field.
func RoundEQ(v int) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldRound, v))
}

// RoundNEQ applies the NEQ predicate on the "round" field.
func RoundNEQ(v int) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNEQ(FieldRound, v))
}

// RoundIn applies the In predicate on the "round" field.
func RoundIn(vs ...int) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldIn(FieldRound, vs...))
}

// RoundNotIn applies the NotIn predicate on the "round" field.
func RoundNotIn(vs ...int) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNotIn(FieldRound, vs...))
}

// RoundGT applies the GT predicate on the "round" field.
func RoundGT(v int) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGT(FieldRound, v))
}

// RoundGTE applies the GTE predicate on the "round" field.
func RoundGTE(v int) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGTE(FieldRound, v))
}

// RoundLT applies the LT predicate on the "round" field.
func RoundLT(v int) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLT(FieldRound, v))
}

// RoundLTE applies the LTE predicate on the "round" field.
func RoundLTE(v int) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLTE(FieldRound, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNEQ(FieldCorrect, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WordGuess {
	return predicate.WordGuess(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.WordGuess {
	return predicate.WordGuess(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.WordGuess {
	return predicate.WordGuess(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasParticipant applies the HasEdge predicate on the "participant" edge.
func HasParticipant() predicate.WordGuess {
	return predicate.WordGuess(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ParticipantTable, ParticipantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasParticipantWith applies the HasEdge predicate on the "participant" edge with a given conditions (other predicates).
func HasParticipantWith(preds ...predicate.Participant) predicate.WordGuess {
	return predicate.WordGuess(func(s *sql.Selector) {
		step := newParticipantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WordGuess) predicate.WordGuess {
	return predicate.WordGuess(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WordGuess) predicate.WordGuess {
	return predicate.WordGuess(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WordGuess) predicate.WordGuess {
	return predicate.WordGuess(sql.NotPredicates(p))
}
