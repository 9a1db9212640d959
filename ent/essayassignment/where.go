// Code generated by ent, DO NOT EDIT.

package essayassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/behavelab/parley/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldSessionID, v))
}

// ParticipantCode applies equality check predicate on the "participant_code" field. It's identical to ParticipantCodeEQ.
func ParticipantCode(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldParticipantCode, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldTitle, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldContent, v))
}

// SourceFile applies equality check predicate on the "source_file" field. It's identical to SourceFileEQ.
func SourceFile(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldSourceFile, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldWordCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContainsFold(FieldSessionID, v))
}

// ParticipantCodeEQ applies the EQ predicate on the "participant_code" field.
func ParticipantCodeEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldParticipantCode, v))
}

// ParticipantCodeNEQ applies the NEQ predicate on the "participant_code" field.
func ParticipantCodeNEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNEQ(FieldParticipantCode, v))
}

// ParticipantCodeIn applies the In predicate on the "participant_code" field.
func ParticipantCodeIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIn(FieldParticipantCode, vs...))
}

// ParticipantCodeNotIn applies the NotIn predicate on the "participant_code" field.
func ParticipantCodeNotIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotIn(FieldParticipantCode, vs...))
}

// ParticipantCodeGT applies the GT predicate on the "participant_code" field.
func ParticipantCodeGT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGT(FieldParticipantCode, v))
}

// ParticipantCodeGTE applies the GTE predicate on the "participant_code" field.
func ParticipantCodeGTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGTE(FieldParticipantCode, v))
}

// ParticipantCodeLT applies the LT predicate on the "participant_code" field.
func ParticipantCodeLT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLT(FieldParticipantCode, v))
}

// ParticipantCodeLTE applies the LTE predicate on the "participant_code" field.
func ParticipantCodeLTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLTE(FieldParticipantCode, v))
}

// ParticipantCodeContains applies the Contains predicate on the "participant_code" field.
func ParticipantCodeContains(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContains(FieldParticipantCode, v))
}

// ParticipantCodeHasPrefix applies the HasPrefix predicate on the "participant_code" field.
func ParticipantCodeHasPrefix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasPrefix(FieldParticipantCode, v))
}

// ParticipantCodeHasSuffix applies the HasSuffix predicate on the "participant_code" field.
func ParticipantCodeHasSuffix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasSuffix(FieldParticipantCode, v))
}

// ParticipantCodeIsNil applies the IsNil predicate on the "participant_code" field.
func ParticipantCodeIsNil() predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIsNull(FieldParticipantCode))
}

// ParticipantCodeNotNil applies the NotNil predicate on the "participant_code" field.
func ParticipantCodeNotNil() predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotNull(FieldParticipantCode))
}

// ParticipantCodeEqualFold applies the EqualFold predicate on the "participant_code" field.
func ParticipantCodeEqualFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEqualFold(FieldParticipantCode, v))
}

// ParticipantCodeContainsFold applies the ContainsFold predicate on the "participant_code" field.
func ParticipantCodeContainsFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContainsFold(FieldParticipantCode, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContainsFold(FieldTitle, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContainsFold(FieldContent, v))
}

// SourceFileEQ applies the EQ predicate on the "source_file" field.
func SourceFileEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldSourceFile, v))
}

// SourceFileNEQ applies the NEQ predicate on the "source_file" field.
func SourceFileNEQ(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNEQ(FieldSourceFile, v))
}

// SourceFileIn applies the In predicate on the "source_file" field.
func SourceFileIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIn(FieldSourceFile, vs...))
}

// SourceFileNotIn applies the NotIn predicate on the "source_file" field.
func SourceFileNotIn(vs ...string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotIn(FieldSourceFile, vs...))
}

// SourceFileGT applies the GT predicate on the "source_file" field.
func SourceFileGT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGT(FieldSourceFile, v))
}

// SourceFileGTE applies the GTE predicate on the "source_file" field.
func SourceFileGTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGTE(FieldSourceFile, v))
}

// SourceFileLT applies the LT predicate on the "source_file" field.
func SourceFileLT(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLT(FieldSourceFile, v))
}

// SourceFileLTE applies the LTE predicate on the "source_file" field.
func SourceFileLTE(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLTE(FieldSourceFile, v))
}

// SourceFileContains applies the Contains predicate on the "source_file" field.
func SourceFileContains(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContains(FieldSourceFile, v))
}

// SourceFileHasPrefix applies the HasPrefix predicate on the "source_file" field.
func SourceFileHasPrefix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasPrefix(FieldSourceFile, v))
}

// SourceFileHasSuffix applies the HasSuffix predicate on the "source_file" field.
func SourceFileHasSuffix(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldHasSuffix(FieldSourceFile, v))
}

// SourceFileIsNil applies the IsNil predicate on the "source_file" field.
func SourceFileIsNil() predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIsNull(FieldSourceFile))
}

// SourceFileNotNil applies the NotNil predicate on the "source_file" field.
func SourceFileNotNil() predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotNull(FieldSourceFile))
}

// SourceFileEqualFold applies the EqualFold predicate on the "source_file" field.
func SourceFileEqualFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEqualFold(FieldSourceFile, v))
}

// SourceFileContainsFold applies the ContainsFold predicate on the "source_file" field.
func SourceFileContainsFold(v string) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldContainsFold(FieldSourceFile, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLTE(FieldWordCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.FieldLTE(FieldCreatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.EssayAssignment {
	return predicate.EssayAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.EssayAssignment {
	return predicate.EssayAssignment(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EssayAssignment) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EssayAssignment) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EssayAssignment) predicate.EssayAssignment {
	return predicate.EssayAssignment(sql.NotPredicates(p))
}
