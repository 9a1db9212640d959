// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/behavelab/parley/ent/essayassignment"
	"github.com/behavelab/parley/ent/event"
	"github.com/behavelab/parley/ent/investment"
	"github.com/behavelab/parley/ent/message"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/predicate"
	"github.com/behavelab/parley/ent/productionqueueentry"
	"github.com/behavelab/parley/ent/rankingsubmission"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/ent/shapeinventory"
	"github.com/behavelab/parley/ent/transaction"
	"github.com/behavelab/parley/ent/wordguess"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEssayAssignment      = "EssayAssignment"
	TypeEvent                = "Event"
	TypeInvestment           = "Investment"
	TypeMessage              = "Message"
	TypeParticipant          = "Participant"
	TypeProductionQueueEntry = "ProductionQueueEntry"
	TypeRankingSubmission    = "RankingSubmission"
	TypeSession              = "Session"
	TypeShapeInventory       = "ShapeInventory"
	TypeTransaction          = "Transaction"
	TypeWordGuess            = "WordGuess"
)

// EssayAssignmentMutation represents an operation that mutates the EssayAssignment nodes in the graph.
type EssayAssignmentMutation struct {
	config
	op               Op
	typ              string
	id               *string
	participant_code *string
	title            *string
	content          *string
	source_file      *string
	word_count       *int
	addword_count    *int
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*EssayAssignment, error)
	predicates       []predicate.EssayAssignment
}

var _ ent.Mutation = (*EssayAssignmentMutation)(nil)

// essayassignmentOption allows management of the mutation configuration using functional options.
type essayassignmentOption func(*EssayAssignmentMutation)

// newEssayAssignmentMutation creates new mutation for the EssayAssignment entity.
func newEssayAssignmentMutation(c config, op Op, opts ...essayassignmentOption) *EssayAssignmentMutation {
	m := &EssayAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeEssayAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEssayAssignmentID sets the ID field of the mutation.
func withEssayAssignmentID(id string) essayassignmentOption {
	return func(m *EssayAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *EssayAssignment
		)
		m.oldValue = func(ctx context.Context) (*EssayAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EssayAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEssayAssignment sets the old EssayAssignment of the mutation.
func withEssayAssignment(node *EssayAssignment) essayassignmentOption {
	return func(m *EssayAssignmentMutation) {
		m.oldValue = func(context.Context) (*EssayAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EssayAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EssayAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EssayAssignment entities.
func (m *EssayAssignmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EssayAssignmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EssayAssignmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EssayAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EssayAssignmentMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EssayAssignmentMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the EssayAssignment entity.
// If the EssayAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EssayAssignmentMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EssayAssignmentMutation) ResetSessionID() {
	m.session = nil
}

// SetParticipantCode sets the "participant_code" field.
func (m *EssayAssignmentMutation) SetParticipantCode(s string) {
	m.participant_code = &s
}

// ParticipantCode returns the value of the "participant_code" field in the mutation.
func (m *EssayAssignmentMutation) ParticipantCode() (r string, exists bool) {
	v := m.participant_code
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantCode returns the old "participant_code" field's value of the EssayAssignment entity.
// If the EssayAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EssayAssignmentMutation) OldParticipantCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantCode: %w", err)
	}
	return oldValue.ParticipantCode, nil
}

// ClearParticipantCode clears the value of the "participant_code" field.
func (m *EssayAssignmentMutation) ClearParticipantCode() {
	m.participant_code = nil
	m.clearedFields[essayassignment.FieldParticipantCode] = struct{}{}
}

// ParticipantCodeCleared returns if the "participant_code" field was cleared in this mutation.
func (m *EssayAssignmentMutation) ParticipantCodeCleared() bool {
	_, ok := m.clearedFields[essayassignment.FieldParticipantCode]
	return ok
}

// ResetParticipantCode resets all changes to the "participant_code" field.
func (m *EssayAssignmentMutation) ResetParticipantCode() {
	m.participant_code = nil
	delete(m.clearedFields, essayassignment.FieldParticipantCode)
}

// SetTitle sets the "title" field.
func (m *EssayAssignmentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *EssayAssignmentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the EssayAssignment entity.
// If the EssayAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EssayAssignmentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *EssayAssignmentMutation) ResetTitle() {
	m.title = nil
}

// SetContent sets the "content" field.
func (m *EssayAssignmentMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *EssayAssignmentMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the EssayAssignment entity.
// If the EssayAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EssayAssignmentMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *EssayAssignmentMutation) ResetContent() {
	m.content = nil
}

// SetSourceFile sets the "source_file" field.
func (m *EssayAssignmentMutation) SetSourceFile(s string) {
	m.source_file = &s
}

// SourceFile returns the value of the "source_file" field in the mutation.
func (m *EssayAssignmentMutation) SourceFile() (r string, exists bool) {
	v := m.source_file
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceFile returns the old "source_file" field's value of the EssayAssignment entity.
// If the EssayAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EssayAssignmentMutation) OldSourceFile(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceFile is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceFile requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceFile: %w", err)
	}
	return oldValue.SourceFile, nil
}

// ClearSourceFile clears the value of the "source_file" field.
func (m *EssayAssignmentMutation) ClearSourceFile() {
	m.source_file = nil
	m.clearedFields[essayassignment.FieldSourceFile] = struct{}{}
}

// SourceFileCleared returns if the "source_file" field was cleared in this mutation.
func (m *EssayAssignmentMutation) SourceFileCleared() bool {
	_, ok := m.clearedFields[essayassignment.FieldSourceFile]
	return ok
}

// ResetSourceFile resets all changes to the "source_file" field.
func (m *EssayAssignmentMutation) ResetSourceFile() {
	m.source_file = nil
	delete(m.clearedFields, essayassignment.FieldSourceFile)
}

// SetWordCount sets the "word_count" field.
func (m *EssayAssignmentMutation) SetWordCount(i int) {
	m.word_count = &i
	m.addword_count = nil
}

// WordCount returns the value of the "word_count" field in the mutation.
func (m *EssayAssignmentMutation) WordCount() (r int, exists bool) {
	v := m.word_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWordCount returns the old "word_count" field's value of the EssayAssignment entity.
// If the EssayAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EssayAssignmentMutation) OldWordCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordCount: %w", err)
	}
	return oldValue.WordCount, nil
}

// AddWordCount adds i to the "word_count" field.
func (m *EssayAssignmentMutation) AddWordCount(i int) {
	if m.addword_count != nil {
		*m.addword_count += i
	} else {
		m.addword_count = &i
	}
}

// AddedWordCount returns the value that was added to the "word_count" field in this mutation.
func (m *EssayAssignmentMutation) AddedWordCount() (r int, exists bool) {
	v := m.addword_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordCount resets all changes to the "word_count" field.
func (m *EssayAssignmentMutation) ResetWordCount() {
	m.word_count = nil
	m.addword_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EssayAssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EssayAssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EssayAssignment entity.
// If the EssayAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EssayAssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EssayAssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *EssayAssignmentMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[essayassignment.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *EssayAssignmentMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EssayAssignmentMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EssayAssignmentMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EssayAssignmentMutation builder.
func (m *EssayAssignmentMutation) Where(ps ...predicate.EssayAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EssayAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EssayAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EssayAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EssayAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EssayAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EssayAssignment).
func (m *EssayAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EssayAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session != nil {
		fields = append(fields, essayassignment.FieldSessionID)
	}
	if m.participant_code != nil {
		fields = append(fields, essayassignment.FieldParticipantCode)
	}
	if m.title != nil {
		fields = append(fields, essayassignment.FieldTitle)
	}
	if m.content != nil {
		fields = append(fields, essayassignment.FieldContent)
	}
	if m.source_file != nil {
		fields = append(fields, essayassignment.FieldSourceFile)
	}
	if m.word_count != nil {
		fields = append(fields, essayassignment.FieldWordCount)
	}
	if m.created_at != nil {
		fields = append(fields, essayassignment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EssayAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case essayassignment.FieldSessionID:
		return m.SessionID()
	case essayassignment.FieldParticipantCode:
		return m.ParticipantCode()
	case essayassignment.FieldTitle:
		return m.Title()
	case essayassignment.FieldContent:
		return m.Content()
	case essayassignment.FieldSourceFile:
		return m.SourceFile()
	case essayassignment.FieldWordCount:
		return m.WordCount()
	case essayassignment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EssayAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case essayassignment.FieldSessionID:
		return m.OldSessionID(ctx)
	case essayassignment.FieldParticipantCode:
		return m.OldParticipantCode(ctx)
	case essayassignment.FieldTitle:
		return m.OldTitle(ctx)
	case essayassignment.FieldContent:
		return m.OldContent(ctx)
	case essayassignment.FieldSourceFile:
		return m.OldSourceFile(ctx)
	case essayassignment.FieldWordCount:
		return m.OldWordCount(ctx)
	case essayassignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EssayAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EssayAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case essayassignment.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case essayassignment.FieldParticipantCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantCode(v)
		return nil
	case essayassignment.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case essayassignment.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case essayassignment.FieldSourceFile:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceFile(v)
		return nil
	case essayassignment.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordCount(v)
		return nil
	case essayassignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EssayAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EssayAssignmentMutation) AddedFields() []string {
	var fields []string
	if m.addword_count != nil {
		fields = append(fields, essayassignment.FieldWordCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EssayAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case essayassignment.FieldWordCount:
		return m.AddedWordCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EssayAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case essayassignment.FieldWordCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordCount(v)
		return nil
	}
	return fmt.Errorf("unknown EssayAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EssayAssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(essayassignment.FieldParticipantCode) {
		fields = append(fields, essayassignment.FieldParticipantCode)
	}
	if m.FieldCleared(essayassignment.FieldSourceFile) {
		fields = append(fields, essayassignment.FieldSourceFile)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EssayAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EssayAssignmentMutation) ClearField(name string) error {
	switch name {
	case essayassignment.FieldParticipantCode:
		m.ClearParticipantCode()
		return nil
	case essayassignment.FieldSourceFile:
		m.ClearSourceFile()
		return nil
	}
	return fmt.Errorf("unknown EssayAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EssayAssignmentMutation) ResetField(name string) error {
	switch name {
	case essayassignment.FieldSessionID:
		m.ResetSessionID()
		return nil
	case essayassignment.FieldParticipantCode:
		m.ResetParticipantCode()
		return nil
	case essayassignment.FieldTitle:
		m.ResetTitle()
		return nil
	case essayassignment.FieldContent:
		m.ResetContent()
		return nil
	case essayassignment.FieldSourceFile:
		m.ResetSourceFile()
		return nil
	case essayassignment.FieldWordCount:
		m.ResetWordCount()
		return nil
	case essayassignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EssayAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EssayAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, essayassignment.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EssayAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case essayassignment.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EssayAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EssayAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EssayAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, essayassignment.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EssayAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case essayassignment.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EssayAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case essayassignment.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown EssayAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EssayAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case essayassignment.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown EssayAssignment edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op             Op
	typ            string
	id             *int
	channel        *string
	payload        *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	session        *string
	clearedsession bool
	done           bool
	oldValue       func(context.Context) (*Event, error)
	predicates     []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *EventMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *EventMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *EventMutation) ResetSessionID() {
	m.session = nil
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *EventMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[event.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *EventMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *EventMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *EventMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, event.FieldSessionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldSessionID:
		return m.SessionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldSessionID:
		return m.OldSessionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldSessionID:
		m.ResetSessionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, event.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// InvestmentMutation represents an operation that mutates the Investment nodes in the graph.
type InvestmentMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	price              *float64
	addprice           *float64
	decision_type      *investment.DecisionType
	created_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	participant        *string
	clearedparticipant bool
	done               bool
	oldValue           func(context.Context) (*Investment, error)
	predicates         []predicate.Investment
}

var _ ent.Mutation = (*InvestmentMutation)(nil)

// investmentOption allows management of the mutation configuration using functional options.
type investmentOption func(*InvestmentMutation)

// newInvestmentMutation creates new mutation for the Investment entity.
func newInvestmentMutation(c config, op Op, opts ...investmentOption) *InvestmentMutation {
	m := &InvestmentMutation{
		config:        c,
		op:            op,
		typ:           TypeInvestment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvestmentID sets the ID field of the mutation.
func withInvestmentID(id string) investmentOption {
	return func(m *InvestmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Investment
		)
		m.oldValue = func(ctx context.Context) (*Investment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Investment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvestment sets the old Investment of the mutation.
func withInvestment(node *Investment) investmentOption {
	return func(m *InvestmentMutation) {
		m.oldValue = func(context.Context) (*Investment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvestmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvestmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Investment entities.
func (m *InvestmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvestmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvestmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Investment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *InvestmentMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *InvestmentMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *InvestmentMutation) ResetSessionID() {
	m.session = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *InvestmentMutation) SetParticipantID(s string) {
	m.participant = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *InvestmentMutation) ParticipantID() (r string, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *InvestmentMutation) ResetParticipantID() {
	m.participant = nil
}

// SetPrice sets the "price" field.
func (m *InvestmentMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *InvestmentMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *InvestmentMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *InvestmentMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *InvestmentMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetDecisionType sets the "decision_type" field.
func (m *InvestmentMutation) SetDecisionType(it investment.DecisionType) {
	m.decision_type = &it
}

// DecisionType returns the value of the "decision_type" field in the mutation.
func (m *InvestmentMutation) DecisionType() (r investment.DecisionType, exists bool) {
	v := m.decision_type
	if v == nil {
		return
	}
	return *v, true
}

// OldDecisionType returns the old "decision_type" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldDecisionType(ctx context.Context) (v investment.DecisionType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecisionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecisionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecisionType: %w", err)
	}
	return oldValue.DecisionType, nil
}

// ResetDecisionType resets all changes to the "decision_type" field.
func (m *InvestmentMutation) ResetDecisionType() {
	m.decision_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *InvestmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvestmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Investment entity.
// If the Investment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvestmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvestmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *InvestmentMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[investment.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *InvestmentMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *InvestmentMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *InvestmentMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *InvestmentMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[investment.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *InvestmentMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *InvestmentMutation) ParticipantIDs() (ids []string) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *InvestmentMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the InvestmentMutation builder.
func (m *InvestmentMutation) Where(ps ...predicate.Investment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvestmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvestmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Investment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvestmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvestmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Investment).
func (m *InvestmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvestmentMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.session != nil {
		fields = append(fields, investment.FieldSessionID)
	}
	if m.participant != nil {
		fields = append(fields, investment.FieldParticipantID)
	}
	if m.price != nil {
		fields = append(fields, investment.FieldPrice)
	}
	if m.decision_type != nil {
		fields = append(fields, investment.FieldDecisionType)
	}
	if m.created_at != nil {
		fields = append(fields, investment.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvestmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case investment.FieldSessionID:
		return m.SessionID()
	case investment.FieldParticipantID:
		return m.ParticipantID()
	case investment.FieldPrice:
		return m.Price()
	case investment.FieldDecisionType:
		return m.DecisionType()
	case investment.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvestmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case investment.FieldSessionID:
		return m.OldSessionID(ctx)
	case investment.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case investment.FieldPrice:
		return m.OldPrice(ctx)
	case investment.FieldDecisionType:
		return m.OldDecisionType(ctx)
	case investment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Investment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case investment.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case investment.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case investment.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case investment.FieldDecisionType:
		v, ok := value.(investment.DecisionType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecisionType(v)
		return nil
	case investment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Investment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvestmentMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, investment.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvestmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case investment.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvestmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case investment.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown Investment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvestmentMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvestmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvestmentMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Investment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvestmentMutation) ResetField(name string) error {
	switch name {
	case investment.FieldSessionID:
		m.ResetSessionID()
		return nil
	case investment.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case investment.FieldPrice:
		m.ResetPrice()
		return nil
	case investment.FieldDecisionType:
		m.ResetDecisionType()
		return nil
	case investment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Investment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvestmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, investment.EdgeSession)
	}
	if m.participant != nil {
		edges = append(edges, investment.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvestmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case investment.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case investment.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvestmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvestmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvestmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, investment.EdgeSession)
	}
	if m.clearedparticipant {
		edges = append(edges, investment.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvestmentMutation) EdgeCleared(name string) bool {
	switch name {
	case investment.EdgeSession:
		return m.clearedsession
	case investment.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvestmentMutation) ClearEdge(name string) error {
	switch name {
	case investment.EdgeSession:
		m.ClearSession()
		return nil
	case investment.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown Investment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvestmentMutation) ResetEdge(name string) error {
	switch name {
	case investment.EdgeSession:
		m.ResetSession()
		return nil
	case investment.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown Investment edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op               Op
	typ              string
	id               *string
	sender           *string
	recipient        *string
	content          *string
	_type            *string
	delivered_status *message.DeliveredStatus
	message_data     *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	session          *string
	clearedsession   bool
	done             bool
	oldValue         func(context.Context) (*Message, error)
	predicates       []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MessageMutation) ResetSessionID() {
	m.session = nil
}

// SetSender sets the "sender" field.
func (m *MessageMutation) SetSender(s string) {
	m.sender = &s
}

// Sender returns the value of the "sender" field in the mutation.
func (m *MessageMutation) Sender() (r string, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ResetSender resets all changes to the "sender" field.
func (m *MessageMutation) ResetSender() {
	m.sender = nil
}

// SetRecipient sets the "recipient" field.
func (m *MessageMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *MessageMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRecipient(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ClearRecipient clears the value of the "recipient" field.
func (m *MessageMutation) ClearRecipient() {
	m.recipient = nil
	m.clearedFields[message.FieldRecipient] = struct{}{}
}

// RecipientCleared returns if the "recipient" field was cleared in this mutation.
func (m *MessageMutation) RecipientCleared() bool {
	_, ok := m.clearedFields[message.FieldRecipient]
	return ok
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *MessageMutation) ResetRecipient() {
	m.recipient = nil
	delete(m.clearedFields, message.FieldRecipient)
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetType sets the "type" field.
func (m *MessageMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *MessageMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *MessageMutation) ResetType() {
	m._type = nil
}

// SetDeliveredStatus sets the "delivered_status" field.
func (m *MessageMutation) SetDeliveredStatus(ms message.DeliveredStatus) {
	m.delivered_status = &ms
}

// DeliveredStatus returns the value of the "delivered_status" field in the mutation.
func (m *MessageMutation) DeliveredStatus() (r message.DeliveredStatus, exists bool) {
	v := m.delivered_status
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveredStatus returns the old "delivered_status" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldDeliveredStatus(ctx context.Context) (v message.DeliveredStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveredStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveredStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveredStatus: %w", err)
	}
	return oldValue.DeliveredStatus, nil
}

// ResetDeliveredStatus resets all changes to the "delivered_status" field.
func (m *MessageMutation) ResetDeliveredStatus() {
	m.delivered_status = nil
}

// SetMessageData sets the "message_data" field.
func (m *MessageMutation) SetMessageData(value map[string]interface{}) {
	m.message_data = &value
}

// MessageData returns the value of the "message_data" field in the mutation.
func (m *MessageMutation) MessageData() (r map[string]interface{}, exists bool) {
	v := m.message_data
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageData returns the old "message_data" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldMessageData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageData: %w", err)
	}
	return oldValue.MessageData, nil
}

// ClearMessageData clears the value of the "message_data" field.
func (m *MessageMutation) ClearMessageData() {
	m.message_data = nil
	m.clearedFields[message.FieldMessageData] = struct{}{}
}

// MessageDataCleared returns if the "message_data" field was cleared in this mutation.
func (m *MessageMutation) MessageDataCleared() bool {
	_, ok := m.clearedFields[message.FieldMessageData]
	return ok
}

// ResetMessageData resets all changes to the "message_data" field.
func (m *MessageMutation) ResetMessageData() {
	m.message_data = nil
	delete(m.clearedFields, message.FieldMessageData)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *MessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[message.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *MessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *MessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session != nil {
		fields = append(fields, message.FieldSessionID)
	}
	if m.sender != nil {
		fields = append(fields, message.FieldSender)
	}
	if m.recipient != nil {
		fields = append(fields, message.FieldRecipient)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m._type != nil {
		fields = append(fields, message.FieldType)
	}
	if m.delivered_status != nil {
		fields = append(fields, message.FieldDeliveredStatus)
	}
	if m.message_data != nil {
		fields = append(fields, message.FieldMessageData)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSessionID:
		return m.SessionID()
	case message.FieldSender:
		return m.Sender()
	case message.FieldRecipient:
		return m.Recipient()
	case message.FieldContent:
		return m.Content()
	case message.FieldType:
		return m.GetType()
	case message.FieldDeliveredStatus:
		return m.DeliveredStatus()
	case message.FieldMessageData:
		return m.MessageData()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldSessionID:
		return m.OldSessionID(ctx)
	case message.FieldSender:
		return m.OldSender(ctx)
	case message.FieldRecipient:
		return m.OldRecipient(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldType:
		return m.OldType(ctx)
	case message.FieldDeliveredStatus:
		return m.OldDeliveredStatus(ctx)
	case message.FieldMessageData:
		return m.OldMessageData(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case message.FieldSender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case message.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case message.FieldDeliveredStatus:
		v, ok := value.(message.DeliveredStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveredStatus(v)
		return nil
	case message.FieldMessageData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageData(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldRecipient) {
		fields = append(fields, message.FieldRecipient)
	}
	if m.FieldCleared(message.FieldMessageData) {
		fields = append(fields, message.FieldMessageData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldRecipient:
		m.ClearRecipient()
		return nil
	case message.FieldMessageData:
		m.ClearMessageData()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldSessionID:
		m.ResetSessionID()
		return nil
	case message.FieldSender:
		m.ResetSender()
		return nil
	case message.FieldRecipient:
		m.ResetRecipient()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldType:
		m.ResetType()
		return nil
	case message.FieldDeliveredStatus:
		m.ResetDeliveredStatus()
		return nil
	case message.FieldMessageData:
		m.ResetMessageData()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, message.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, message.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// ParticipantMutation represents an operation that mutates the Participant nodes in the graph.
type ParticipantMutation struct {
	config
	op                           Op
	typ                          string
	id                           *string
	participant_code             *string
	_type                        *participant.Type
	specialty_shape              *string
	role                         *string
	money                        *int
	addmoney                     *int
	orders                       *[]string
	appendorders                 []string
	orders_completed             *int
	addorders_completed          *int
	assigned_words               *[]string
	appendassigned_words         []string
	current_rankings             *map[string]interface{}
	login_status                 *participant.LoginStatus
	specialty_production_used    *int
	addspecialty_production_used *int
	created_at                   *time.Time
	clearedFields                map[string]struct{}
	session                      *string
	clearedsession               bool
	inventory                    *string
	clearedinventory             bool
	production_entries           map[string]struct{}
	removedproduction_entries    map[string]struct{}
	clearedproduction_entries    bool
	investments                  map[string]struct{}
	removedinvestments           map[string]struct{}
	clearedinvestments           bool
	ranking_submissions          map[string]struct{}
	removedranking_submissions   map[string]struct{}
	clearedranking_submissions   bool
	word_guesses                 map[string]struct{}
	removedword_guesses          map[string]struct{}
	clearedword_guesses          bool
	done                         bool
	oldValue                     func(context.Context) (*Participant, error)
	predicates                   []predicate.Participant
}

var _ ent.Mutation = (*ParticipantMutation)(nil)

// participantOption allows management of the mutation configuration using functional options.
type participantOption func(*ParticipantMutation)

// newParticipantMutation creates new mutation for the Participant entity.
func newParticipantMutation(c config, op Op, opts ...participantOption) *ParticipantMutation {
	m := &ParticipantMutation{
		config:        c,
		op:            op,
		typ:           TypeParticipant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParticipantID sets the ID field of the mutation.
func withParticipantID(id string) participantOption {
	return func(m *ParticipantMutation) {
		var (
			err   error
			once  sync.Once
			value *Participant
		)
		m.oldValue = func(ctx context.Context) (*Participant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Participant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParticipant sets the old Participant of the mutation.
func withParticipant(node *Participant) participantOption {
	return func(m *ParticipantMutation) {
		m.oldValue = func(context.Context) (*Participant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParticipantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParticipantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Participant entities.
func (m *ParticipantMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParticipantMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParticipantMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Participant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ParticipantMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ParticipantMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ParticipantMutation) ResetSessionID() {
	m.session = nil
}

// SetParticipantCode sets the "participant_code" field.
func (m *ParticipantMutation) SetParticipantCode(s string) {
	m.participant_code = &s
}

// ParticipantCode returns the value of the "participant_code" field in the mutation.
func (m *ParticipantMutation) ParticipantCode() (r string, exists bool) {
	v := m.participant_code
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantCode returns the old "participant_code" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldParticipantCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantCode: %w", err)
	}
	return oldValue.ParticipantCode, nil
}

// ResetParticipantCode resets all changes to the "participant_code" field.
func (m *ParticipantMutation) ResetParticipantCode() {
	m.participant_code = nil
}

// SetType sets the "type" field.
func (m *ParticipantMutation) SetType(pa participant.Type) {
	m._type = &pa
}

// GetType returns the value of the "type" field in the mutation.
func (m *ParticipantMutation) GetType() (r participant.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldType(ctx context.Context) (v participant.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ParticipantMutation) ResetType() {
	m._type = nil
}

// SetSpecialtyShape sets the "specialty_shape" field.
func (m *ParticipantMutation) SetSpecialtyShape(s string) {
	m.specialty_shape = &s
}

// SpecialtyShape returns the value of the "specialty_shape" field in the mutation.
func (m *ParticipantMutation) SpecialtyShape() (r string, exists bool) {
	v := m.specialty_shape
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialtyShape returns the old "specialty_shape" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldSpecialtyShape(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialtyShape is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialtyShape requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialtyShape: %w", err)
	}
	return oldValue.SpecialtyShape, nil
}

// ClearSpecialtyShape clears the value of the "specialty_shape" field.
func (m *ParticipantMutation) ClearSpecialtyShape() {
	m.specialty_shape = nil
	m.clearedFields[participant.FieldSpecialtyShape] = struct{}{}
}

// SpecialtyShapeCleared returns if the "specialty_shape" field was cleared in this mutation.
func (m *ParticipantMutation) SpecialtyShapeCleared() bool {
	_, ok := m.clearedFields[participant.FieldSpecialtyShape]
	return ok
}

// ResetSpecialtyShape resets all changes to the "specialty_shape" field.
func (m *ParticipantMutation) ResetSpecialtyShape() {
	m.specialty_shape = nil
	delete(m.clearedFields, participant.FieldSpecialtyShape)
}

// SetRole sets the "role" field.
func (m *ParticipantMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *ParticipantMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ClearRole clears the value of the "role" field.
func (m *ParticipantMutation) ClearRole() {
	m.role = nil
	m.clearedFields[participant.FieldRole] = struct{}{}
}

// RoleCleared returns if the "role" field was cleared in this mutation.
func (m *ParticipantMutation) RoleCleared() bool {
	_, ok := m.clearedFields[participant.FieldRole]
	return ok
}

// ResetRole resets all changes to the "role" field.
func (m *ParticipantMutation) ResetRole() {
	m.role = nil
	delete(m.clearedFields, participant.FieldRole)
}

// SetMoney sets the "money" field.
func (m *ParticipantMutation) SetMoney(i int) {
	m.money = &i
	m.addmoney = nil
}

// Money returns the value of the "money" field in the mutation.
func (m *ParticipantMutation) Money() (r int, exists bool) {
	v := m.money
	if v == nil {
		return
	}
	return *v, true
}

// OldMoney returns the old "money" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldMoney(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMoney is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMoney requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMoney: %w", err)
	}
	return oldValue.Money, nil
}

// AddMoney adds i to the "money" field.
func (m *ParticipantMutation) AddMoney(i int) {
	if m.addmoney != nil {
		*m.addmoney += i
	} else {
		m.addmoney = &i
	}
}

// AddedMoney returns the value that was added to the "money" field in this mutation.
func (m *ParticipantMutation) AddedMoney() (r int, exists bool) {
	v := m.addmoney
	if v == nil {
		return
	}
	return *v, true
}

// ResetMoney resets all changes to the "money" field.
func (m *ParticipantMutation) ResetMoney() {
	m.money = nil
	m.addmoney = nil
}

// SetOrders sets the "orders" field.
func (m *ParticipantMutation) SetOrders(s []string) {
	m.orders = &s
	m.appendorders = nil
}

// Orders returns the value of the "orders" field in the mutation.
func (m *ParticipantMutation) Orders() (r []string, exists bool) {
	v := m.orders
	if v == nil {
		return
	}
	return *v, true
}

// OldOrders returns the old "orders" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldOrders(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrders: %w", err)
	}
	return oldValue.Orders, nil
}

// AppendOrders adds s to the "orders" field.
func (m *ParticipantMutation) AppendOrders(s []string) {
	m.appendorders = append(m.appendorders, s...)
}

// AppendedOrders returns the list of values that were appended to the "orders" field in this mutation.
func (m *ParticipantMutation) AppendedOrders() ([]string, bool) {
	if len(m.appendorders) == 0 {
		return nil, false
	}
	return m.appendorders, true
}

// ClearOrders clears the value of the "orders" field.
func (m *ParticipantMutation) ClearOrders() {
	m.orders = nil
	m.appendorders = nil
	m.clearedFields[participant.FieldOrders] = struct{}{}
}

// OrdersCleared returns if the "orders" field was cleared in this mutation.
func (m *ParticipantMutation) OrdersCleared() bool {
	_, ok := m.clearedFields[participant.FieldOrders]
	return ok
}

// ResetOrders resets all changes to the "orders" field.
func (m *ParticipantMutation) ResetOrders() {
	m.orders = nil
	m.appendorders = nil
	delete(m.clearedFields, participant.FieldOrders)
}

// SetOrdersCompleted sets the "orders_completed" field.
func (m *ParticipantMutation) SetOrdersCompleted(i int) {
	m.orders_completed = &i
	m.addorders_completed = nil
}

// OrdersCompleted returns the value of the "orders_completed" field in the mutation.
func (m *ParticipantMutation) OrdersCompleted() (r int, exists bool) {
	v := m.orders_completed
	if v == nil {
		return
	}
	return *v, true
}

// OldOrdersCompleted returns the old "orders_completed" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldOrdersCompleted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrdersCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrdersCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrdersCompleted: %w", err)
	}
	return oldValue.OrdersCompleted, nil
}

// AddOrdersCompleted adds i to the "orders_completed" field.
func (m *ParticipantMutation) AddOrdersCompleted(i int) {
	if m.addorders_completed != nil {
		*m.addorders_completed += i
	} else {
		m.addorders_completed = &i
	}
}

// AddedOrdersCompleted returns the value that was added to the "orders_completed" field in this mutation.
func (m *ParticipantMutation) AddedOrdersCompleted() (r int, exists bool) {
	v := m.addorders_completed
	if v == nil {
		return
	}
	return *v, true
}

// ResetOrdersCompleted resets all changes to the "orders_completed" field.
func (m *ParticipantMutation) ResetOrdersCompleted() {
	m.orders_completed = nil
	m.addorders_completed = nil
}

// SetAssignedWords sets the "assigned_words" field.
func (m *ParticipantMutation) SetAssignedWords(s []string) {
	m.assigned_words = &s
	m.appendassigned_words = nil
}

// AssignedWords returns the value of the "assigned_words" field in the mutation.
func (m *ParticipantMutation) AssignedWords() (r []string, exists bool) {
	v := m.assigned_words
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignedWords returns the old "assigned_words" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldAssignedWords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignedWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignedWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignedWords: %w", err)
	}
	return oldValue.AssignedWords, nil
}

// AppendAssignedWords adds s to the "assigned_words" field.
func (m *ParticipantMutation) AppendAssignedWords(s []string) {
	m.appendassigned_words = append(m.appendassigned_words, s...)
}

// AppendedAssignedWords returns the list of values that were appended to the "assigned_words" field in this mutation.
func (m *ParticipantMutation) AppendedAssignedWords() ([]string, bool) {
	if len(m.appendassigned_words) == 0 {
		return nil, false
	}
	return m.appendassigned_words, true
}

// ClearAssignedWords clears the value of the "assigned_words" field.
func (m *ParticipantMutation) ClearAssignedWords() {
	m.assigned_words = nil
	m.appendassigned_words = nil
	m.clearedFields[participant.FieldAssignedWords] = struct{}{}
}

// AssignedWordsCleared returns if the "assigned_words" field was cleared in this mutation.
func (m *ParticipantMutation) AssignedWordsCleared() bool {
	_, ok := m.clearedFields[participant.FieldAssignedWords]
	return ok
}

// ResetAssignedWords resets all changes to the "assigned_words" field.
func (m *ParticipantMutation) ResetAssignedWords() {
	m.assigned_words = nil
	m.appendassigned_words = nil
	delete(m.clearedFields, participant.FieldAssignedWords)
}

// SetCurrentRankings sets the "current_rankings" field.
func (m *ParticipantMutation) SetCurrentRankings(value map[string]interface{}) {
	m.current_rankings = &value
}

// CurrentRankings returns the value of the "current_rankings" field in the mutation.
func (m *ParticipantMutation) CurrentRankings() (r map[string]interface{}, exists bool) {
	v := m.current_rankings
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentRankings returns the old "current_rankings" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCurrentRankings(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentRankings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentRankings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentRankings: %w", err)
	}
	return oldValue.CurrentRankings, nil
}

// ClearCurrentRankings clears the value of the "current_rankings" field.
func (m *ParticipantMutation) ClearCurrentRankings() {
	m.current_rankings = nil
	m.clearedFields[participant.FieldCurrentRankings] = struct{}{}
}

// CurrentRankingsCleared returns if the "current_rankings" field was cleared in this mutation.
func (m *ParticipantMutation) CurrentRankingsCleared() bool {
	_, ok := m.clearedFields[participant.FieldCurrentRankings]
	return ok
}

// ResetCurrentRankings resets all changes to the "current_rankings" field.
func (m *ParticipantMutation) ResetCurrentRankings() {
	m.current_rankings = nil
	delete(m.clearedFields, participant.FieldCurrentRankings)
}

// SetLoginStatus sets the "login_status" field.
func (m *ParticipantMutation) SetLoginStatus(ps participant.LoginStatus) {
	m.login_status = &ps
}

// LoginStatus returns the value of the "login_status" field in the mutation.
func (m *ParticipantMutation) LoginStatus() (r participant.LoginStatus, exists bool) {
	v := m.login_status
	if v == nil {
		return
	}
	return *v, true
}

// OldLoginStatus returns the old "login_status" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldLoginStatus(ctx context.Context) (v participant.LoginStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoginStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoginStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoginStatus: %w", err)
	}
	return oldValue.LoginStatus, nil
}

// ResetLoginStatus resets all changes to the "login_status" field.
func (m *ParticipantMutation) ResetLoginStatus() {
	m.login_status = nil
}

// SetSpecialtyProductionUsed sets the "specialty_production_used" field.
func (m *ParticipantMutation) SetSpecialtyProductionUsed(i int) {
	m.specialty_production_used = &i
	m.addspecialty_production_used = nil
}

// SpecialtyProductionUsed returns the value of the "specialty_production_used" field in the mutation.
func (m *ParticipantMutation) SpecialtyProductionUsed() (r int, exists bool) {
	v := m.specialty_production_used
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialtyProductionUsed returns the old "specialty_production_used" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldSpecialtyProductionUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialtyProductionUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialtyProductionUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialtyProductionUsed: %w", err)
	}
	return oldValue.SpecialtyProductionUsed, nil
}

// AddSpecialtyProductionUsed adds i to the "specialty_production_used" field.
func (m *ParticipantMutation) AddSpecialtyProductionUsed(i int) {
	if m.addspecialty_production_used != nil {
		*m.addspecialty_production_used += i
	} else {
		m.addspecialty_production_used = &i
	}
}

// AddedSpecialtyProductionUsed returns the value that was added to the "specialty_production_used" field in this mutation.
func (m *ParticipantMutation) AddedSpecialtyProductionUsed() (r int, exists bool) {
	v := m.addspecialty_production_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetSpecialtyProductionUsed resets all changes to the "specialty_production_used" field.
func (m *ParticipantMutation) ResetSpecialtyProductionUsed() {
	m.specialty_production_used = nil
	m.addspecialty_production_used = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ParticipantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParticipantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Participant entity.
// If the Participant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParticipantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParticipantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ParticipantMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[participant.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ParticipantMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ParticipantMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// SetInventoryID sets the "inventory" edge to the ShapeInventory entity by id.
func (m *ParticipantMutation) SetInventoryID(id string) {
	m.inventory = &id
}

// ClearInventory clears the "inventory" edge to the ShapeInventory entity.
func (m *ParticipantMutation) ClearInventory() {
	m.clearedinventory = true
}

// InventoryCleared reports if the "inventory" edge to the ShapeInventory entity was cleared.
func (m *ParticipantMutation) InventoryCleared() bool {
	return m.clearedinventory
}

// InventoryID returns the "inventory" edge ID in the mutation.
func (m *ParticipantMutation) InventoryID() (id string, exists bool) {
	if m.inventory != nil {
		return *m.inventory, true
	}
	return
}

// InventoryIDs returns the "inventory" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// InventoryID instead. It exists only for internal usage by the builders.
func (m *ParticipantMutation) InventoryIDs() (ids []string) {
	if id := m.inventory; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetInventory resets all changes to the "inventory" edge.
func (m *ParticipantMutation) ResetInventory() {
	m.inventory = nil
	m.clearedinventory = false
}

// AddProductionEntryIDs adds the "production_entries" edge to the ProductionQueueEntry entity by ids.
func (m *ParticipantMutation) AddProductionEntryIDs(ids ...string) {
	if m.production_entries == nil {
		m.production_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.production_entries[ids[i]] = struct{}{}
	}
}

// ClearProductionEntries clears the "production_entries" edge to the ProductionQueueEntry entity.
func (m *ParticipantMutation) ClearProductionEntries() {
	m.clearedproduction_entries = true
}

// ProductionEntriesCleared reports if the "production_entries" edge to the ProductionQueueEntry entity was cleared.
func (m *ParticipantMutation) ProductionEntriesCleared() bool {
	return m.clearedproduction_entries
}

// RemoveProductionEntryIDs removes the "production_entries" edge to the ProductionQueueEntry entity by IDs.
func (m *ParticipantMutation) RemoveProductionEntryIDs(ids ...string) {
	if m.removedproduction_entries == nil {
		m.removedproduction_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.production_entries, ids[i])
		m.removedproduction_entries[ids[i]] = struct{}{}
	}
}

// RemovedProductionEntries returns the removed IDs of the "production_entries" edge to the ProductionQueueEntry entity.
func (m *ParticipantMutation) RemovedProductionEntriesIDs() (ids []string) {
	for id := range m.removedproduction_entries {
		ids = append(ids, id)
	}
	return
}

// ProductionEntriesIDs returns the "production_entries" edge IDs in the mutation.
func (m *ParticipantMutation) ProductionEntriesIDs() (ids []string) {
	for id := range m.production_entries {
		ids = append(ids, id)
	}
	return
}

// ResetProductionEntries resets all changes to the "production_entries" edge.
func (m *ParticipantMutation) ResetProductionEntries() {
	m.production_entries = nil
	m.clearedproduction_entries = false
	m.removedproduction_entries = nil
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by ids.
func (m *ParticipantMutation) AddInvestmentIDs(ids ...string) {
	if m.investments == nil {
		m.investments = make(map[string]struct{})
	}
	for i := range ids {
		m.investments[ids[i]] = struct{}{}
	}
}

// ClearInvestments clears the "investments" edge to the Investment entity.
func (m *ParticipantMutation) ClearInvestments() {
	m.clearedinvestments = true
}

// InvestmentsCleared reports if the "investments" edge to the Investment entity was cleared.
func (m *ParticipantMutation) InvestmentsCleared() bool {
	return m.clearedinvestments
}

// RemoveInvestmentIDs removes the "investments" edge to the Investment entity by IDs.
func (m *ParticipantMutation) RemoveInvestmentIDs(ids ...string) {
	if m.removedinvestments == nil {
		m.removedinvestments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.investments, ids[i])
		m.removedinvestments[ids[i]] = struct{}{}
	}
}

// RemovedInvestments returns the removed IDs of the "investments" edge to the Investment entity.
func (m *ParticipantMutation) RemovedInvestmentsIDs() (ids []string) {
	for id := range m.removedinvestments {
		ids = append(ids, id)
	}
	return
}

// InvestmentsIDs returns the "investments" edge IDs in the mutation.
func (m *ParticipantMutation) InvestmentsIDs() (ids []string) {
	for id := range m.investments {
		ids = append(ids, id)
	}
	return
}

// ResetInvestments resets all changes to the "investments" edge.
func (m *ParticipantMutation) ResetInvestments() {
	m.investments = nil
	m.clearedinvestments = false
	m.removedinvestments = nil
}

// AddRankingSubmissionIDs adds the "ranking_submissions" edge to the RankingSubmission entity by ids.
func (m *ParticipantMutation) AddRankingSubmissionIDs(ids ...string) {
	if m.ranking_submissions == nil {
		m.ranking_submissions = make(map[string]struct{})
	}
	for i := range ids {
		m.ranking_submissions[ids[i]] = struct{}{}
	}
}

// ClearRankingSubmissions clears the "ranking_submissions" edge to the RankingSubmission entity.
func (m *ParticipantMutation) ClearRankingSubmissions() {
	m.clearedranking_submissions = true
}

// RankingSubmissionsCleared reports if the "ranking_submissions" edge to the RankingSubmission entity was cleared.
func (m *ParticipantMutation) RankingSubmissionsCleared() bool {
	return m.clearedranking_submissions
}

// RemoveRankingSubmissionIDs removes the "ranking_submissions" edge to the RankingSubmission entity by IDs.
func (m *ParticipantMutation) RemoveRankingSubmissionIDs(ids ...string) {
	if m.removedranking_submissions == nil {
		m.removedranking_submissions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.ranking_submissions, ids[i])
		m.removedranking_submissions[ids[i]] = struct{}{}
	}
}

// RemovedRankingSubmissions returns the removed IDs of the "ranking_submissions" edge to the RankingSubmission entity.
func (m *ParticipantMutation) RemovedRankingSubmissionsIDs() (ids []string) {
	for id := range m.removedranking_submissions {
		ids = append(ids, id)
	}
	return
}

// RankingSubmissionsIDs returns the "ranking_submissions" edge IDs in the mutation.
func (m *ParticipantMutation) RankingSubmissionsIDs() (ids []string) {
	for id := range m.ranking_submissions {
		ids = append(ids, id)
	}
	return
}

// ResetRankingSubmissions resets all changes to the "ranking_submissions" edge.
func (m *ParticipantMutation) ResetRankingSubmissions() {
	m.ranking_submissions = nil
	m.clearedranking_submissions = false
	m.removedranking_submissions = nil
}

// AddWordGuessIDs adds the "word_guesses" edge to the WordGuess entity by ids.
func (m *ParticipantMutation) AddWordGuessIDs(ids ...string) {
	if m.word_guesses == nil {
		m.word_guesses = make(map[string]struct{})
	}
	for i := range ids {
		m.word_guesses[ids[i]] = struct{}{}
	}
}

// ClearWordGuesses clears the "word_guesses" edge to the WordGuess entity.
func (m *ParticipantMutation) ClearWordGuesses() {
	m.clearedword_guesses = true
}

// WordGuessesCleared reports if the "word_guesses" edge to the WordGuess entity was cleared.
func (m *ParticipantMutation) WordGuessesCleared() bool {
	return m.clearedword_guesses
}

// RemoveWordGuessIDs removes the "word_guesses" edge to the WordGuess entity by IDs.
func (m *ParticipantMutation) RemoveWordGuessIDs(ids ...string) {
	if m.removedword_guesses == nil {
		m.removedword_guesses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.word_guesses, ids[i])
		m.removedword_guesses[ids[i]] = struct{}{}
	}
}

// RemovedWordGuesses returns the removed IDs of the "word_guesses" edge to the WordGuess entity.
func (m *ParticipantMutation) RemovedWordGuessesIDs() (ids []string) {
	for id := range m.removedword_guesses {
		ids = append(ids, id)
	}
	return
}

// WordGuessesIDs returns the "word_guesses" edge IDs in the mutation.
func (m *ParticipantMutation) WordGuessesIDs() (ids []string) {
	for id := range m.word_guesses {
		ids = append(ids, id)
	}
	return
}

// ResetWordGuesses resets all changes to the "word_guesses" edge.
func (m *ParticipantMutation) ResetWordGuesses() {
	m.word_guesses = nil
	m.clearedword_guesses = false
	m.removedword_guesses = nil
}

// Where appends a list predicates to the ParticipantMutation builder.
func (m *ParticipantMutation) Where(ps ...predicate.Participant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParticipantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParticipantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Participant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParticipantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParticipantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Participant).
func (m *ParticipantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParticipantMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session != nil {
		fields = append(fields, participant.FieldSessionID)
	}
	if m.participant_code != nil {
		fields = append(fields, participant.FieldParticipantCode)
	}
	if m._type != nil {
		fields = append(fields, participant.FieldType)
	}
	if m.specialty_shape != nil {
		fields = append(fields, participant.FieldSpecialtyShape)
	}
	if m.role != nil {
		fields = append(fields, participant.FieldRole)
	}
	if m.money != nil {
		fields = append(fields, participant.FieldMoney)
	}
	if m.orders != nil {
		fields = append(fields, participant.FieldOrders)
	}
	if m.orders_completed != nil {
		fields = append(fields, participant.FieldOrdersCompleted)
	}
	if m.assigned_words != nil {
		fields = append(fields, participant.FieldAssignedWords)
	}
	if m.current_rankings != nil {
		fields = append(fields, participant.FieldCurrentRankings)
	}
	if m.login_status != nil {
		fields = append(fields, participant.FieldLoginStatus)
	}
	if m.specialty_production_used != nil {
		fields = append(fields, participant.FieldSpecialtyProductionUsed)
	}
	if m.created_at != nil {
		fields = append(fields, participant.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParticipantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldSessionID:
		return m.SessionID()
	case participant.FieldParticipantCode:
		return m.ParticipantCode()
	case participant.FieldType:
		return m.GetType()
	case participant.FieldSpecialtyShape:
		return m.SpecialtyShape()
	case participant.FieldRole:
		return m.Role()
	case participant.FieldMoney:
		return m.Money()
	case participant.FieldOrders:
		return m.Orders()
	case participant.FieldOrdersCompleted:
		return m.OrdersCompleted()
	case participant.FieldAssignedWords:
		return m.AssignedWords()
	case participant.FieldCurrentRankings:
		return m.CurrentRankings()
	case participant.FieldLoginStatus:
		return m.LoginStatus()
	case participant.FieldSpecialtyProductionUsed:
		return m.SpecialtyProductionUsed()
	case participant.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParticipantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case participant.FieldSessionID:
		return m.OldSessionID(ctx)
	case participant.FieldParticipantCode:
		return m.OldParticipantCode(ctx)
	case participant.FieldType:
		return m.OldType(ctx)
	case participant.FieldSpecialtyShape:
		return m.OldSpecialtyShape(ctx)
	case participant.FieldRole:
		return m.OldRole(ctx)
	case participant.FieldMoney:
		return m.OldMoney(ctx)
	case participant.FieldOrders:
		return m.OldOrders(ctx)
	case participant.FieldOrdersCompleted:
		return m.OldOrdersCompleted(ctx)
	case participant.FieldAssignedWords:
		return m.OldAssignedWords(ctx)
	case participant.FieldCurrentRankings:
		return m.OldCurrentRankings(ctx)
	case participant.FieldLoginStatus:
		return m.OldLoginStatus(ctx)
	case participant.FieldSpecialtyProductionUsed:
		return m.OldSpecialtyProductionUsed(ctx)
	case participant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Participant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case participant.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case participant.FieldParticipantCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantCode(v)
		return nil
	case participant.FieldType:
		v, ok := value.(participant.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case participant.FieldSpecialtyShape:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialtyShape(v)
		return nil
	case participant.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case participant.FieldMoney:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMoney(v)
		return nil
	case participant.FieldOrders:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrders(v)
		return nil
	case participant.FieldOrdersCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrdersCompleted(v)
		return nil
	case participant.FieldAssignedWords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignedWords(v)
		return nil
	case participant.FieldCurrentRankings:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentRankings(v)
		return nil
	case participant.FieldLoginStatus:
		v, ok := value.(participant.LoginStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoginStatus(v)
		return nil
	case participant.FieldSpecialtyProductionUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialtyProductionUsed(v)
		return nil
	case participant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParticipantMutation) AddedFields() []string {
	var fields []string
	if m.addmoney != nil {
		fields = append(fields, participant.FieldMoney)
	}
	if m.addorders_completed != nil {
		fields = append(fields, participant.FieldOrdersCompleted)
	}
	if m.addspecialty_production_used != nil {
		fields = append(fields, participant.FieldSpecialtyProductionUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParticipantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case participant.FieldMoney:
		return m.AddedMoney()
	case participant.FieldOrdersCompleted:
		return m.AddedOrdersCompleted()
	case participant.FieldSpecialtyProductionUsed:
		return m.AddedSpecialtyProductionUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParticipantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case participant.FieldMoney:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMoney(v)
		return nil
	case participant.FieldOrdersCompleted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOrdersCompleted(v)
		return nil
	case participant.FieldSpecialtyProductionUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSpecialtyProductionUsed(v)
		return nil
	}
	return fmt.Errorf("unknown Participant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParticipantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(participant.FieldSpecialtyShape) {
		fields = append(fields, participant.FieldSpecialtyShape)
	}
	if m.FieldCleared(participant.FieldRole) {
		fields = append(fields, participant.FieldRole)
	}
	if m.FieldCleared(participant.FieldOrders) {
		fields = append(fields, participant.FieldOrders)
	}
	if m.FieldCleared(participant.FieldAssignedWords) {
		fields = append(fields, participant.FieldAssignedWords)
	}
	if m.FieldCleared(participant.FieldCurrentRankings) {
		fields = append(fields, participant.FieldCurrentRankings)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParticipantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParticipantMutation) ClearField(name string) error {
	switch name {
	case participant.FieldSpecialtyShape:
		m.ClearSpecialtyShape()
		return nil
	case participant.FieldRole:
		m.ClearRole()
		return nil
	case participant.FieldOrders:
		m.ClearOrders()
		return nil
	case participant.FieldAssignedWords:
		m.ClearAssignedWords()
		return nil
	case participant.FieldCurrentRankings:
		m.ClearCurrentRankings()
		return nil
	}
	return fmt.Errorf("unknown Participant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParticipantMutation) ResetField(name string) error {
	switch name {
	case participant.FieldSessionID:
		m.ResetSessionID()
		return nil
	case participant.FieldParticipantCode:
		m.ResetParticipantCode()
		return nil
	case participant.FieldType:
		m.ResetType()
		return nil
	case participant.FieldSpecialtyShape:
		m.ResetSpecialtyShape()
		return nil
	case participant.FieldRole:
		m.ResetRole()
		return nil
	case participant.FieldMoney:
		m.ResetMoney()
		return nil
	case participant.FieldOrders:
		m.ResetOrders()
		return nil
	case participant.FieldOrdersCompleted:
		m.ResetOrdersCompleted()
		return nil
	case participant.FieldAssignedWords:
		m.ResetAssignedWords()
		return nil
	case participant.FieldCurrentRankings:
		m.ResetCurrentRankings()
		return nil
	case participant.FieldLoginStatus:
		m.ResetLoginStatus()
		return nil
	case participant.FieldSpecialtyProductionUsed:
		m.ResetSpecialtyProductionUsed()
		return nil
	case participant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Participant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParticipantMutation) AddedEdges() []string {
	edges := make([]string, 0, 6)
	if m.session != nil {
		edges = append(edges, participant.EdgeSession)
	}
	if m.inventory != nil {
		edges = append(edges, participant.EdgeInventory)
	}
	if m.production_entries != nil {
		edges = append(edges, participant.EdgeProductionEntries)
	}
	if m.investments != nil {
		edges = append(edges, participant.EdgeInvestments)
	}
	if m.ranking_submissions != nil {
		edges = append(edges, participant.EdgeRankingSubmissions)
	}
	if m.word_guesses != nil {
		edges = append(edges, participant.EdgeWordGuesses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParticipantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case participant.EdgeInventory:
		if id := m.inventory; id != nil {
			return []ent.Value{*id}
		}
	case participant.EdgeProductionEntries:
		ids := make([]ent.Value, 0, len(m.production_entries))
		for id := range m.production_entries {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeInvestments:
		ids := make([]ent.Value, 0, len(m.investments))
		for id := range m.investments {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeRankingSubmissions:
		ids := make([]ent.Value, 0, len(m.ranking_submissions))
		for id := range m.ranking_submissions {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeWordGuesses:
		ids := make([]ent.Value, 0, len(m.word_guesses))
		for id := range m.word_guesses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParticipantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 6)
	if m.removedproduction_entries != nil {
		edges = append(edges, participant.EdgeProductionEntries)
	}
	if m.removedinvestments != nil {
		edges = append(edges, participant.EdgeInvestments)
	}
	if m.removedranking_submissions != nil {
		edges = append(edges, participant.EdgeRankingSubmissions)
	}
	if m.removedword_guesses != nil {
		edges = append(edges, participant.EdgeWordGuesses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParticipantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case participant.EdgeProductionEntries:
		ids := make([]ent.Value, 0, len(m.removedproduction_entries))
		for id := range m.removedproduction_entries {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeInvestments:
		ids := make([]ent.Value, 0, len(m.removedinvestments))
		for id := range m.removedinvestments {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeRankingSubmissions:
		ids := make([]ent.Value, 0, len(m.removedranking_submissions))
		for id := range m.removedranking_submissions {
			ids = append(ids, id)
		}
		return ids
	case participant.EdgeWordGuesses:
		ids := make([]ent.Value, 0, len(m.removedword_guesses))
		for id := range m.removedword_guesses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParticipantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 6)
	if m.clearedsession {
		edges = append(edges, participant.EdgeSession)
	}
	if m.clearedinventory {
		edges = append(edges, participant.EdgeInventory)
	}
	if m.clearedproduction_entries {
		edges = append(edges, participant.EdgeProductionEntries)
	}
	if m.clearedinvestments {
		edges = append(edges, participant.EdgeInvestments)
	}
	if m.clearedranking_submissions {
		edges = append(edges, participant.EdgeRankingSubmissions)
	}
	if m.clearedword_guesses {
		edges = append(edges, participant.EdgeWordGuesses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParticipantMutation) EdgeCleared(name string) bool {
	switch name {
	case participant.EdgeSession:
		return m.clearedsession
	case participant.EdgeInventory:
		return m.clearedinventory
	case participant.EdgeProductionEntries:
		return m.clearedproduction_entries
	case participant.EdgeInvestments:
		return m.clearedinvestments
	case participant.EdgeRankingSubmissions:
		return m.clearedranking_submissions
	case participant.EdgeWordGuesses:
		return m.clearedword_guesses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParticipantMutation) ClearEdge(name string) error {
	switch name {
	case participant.EdgeSession:
		m.ClearSession()
		return nil
	case participant.EdgeInventory:
		m.ClearInventory()
		return nil
	}
	return fmt.Errorf("unknown Participant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParticipantMutation) ResetEdge(name string) error {
	switch name {
	case participant.EdgeSession:
		m.ResetSession()
		return nil
	case participant.EdgeInventory:
		m.ResetInventory()
		return nil
	case participant.EdgeProductionEntries:
		m.ResetProductionEntries()
		return nil
	case participant.EdgeInvestments:
		m.ResetInvestments()
		return nil
	case participant.EdgeRankingSubmissions:
		m.ResetRankingSubmissions()
		return nil
	case participant.EdgeWordGuesses:
		m.ResetWordGuesses()
		return nil
	}
	return fmt.Errorf("unknown Participant edge %s", name)
}

// ProductionQueueEntryMutation represents an operation that mutates the ProductionQueueEntry nodes in the graph.
type ProductionQueueEntryMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	shape                *string
	quantity             *int
	addquantity          *int
	status               *productionqueueentry.Status
	queue_position       *int
	addqueue_position    *int
	start_time           *time.Time
	estimated_completion *time.Time
	created_at           *time.Time
	clearedFields        map[string]struct{}
	session              *string
	clearedsession       bool
	participant          *string
	clearedparticipant   bool
	done                 bool
	oldValue             func(context.Context) (*ProductionQueueEntry, error)
	predicates           []predicate.ProductionQueueEntry
}

var _ ent.Mutation = (*ProductionQueueEntryMutation)(nil)

// productionqueueentryOption allows management of the mutation configuration using functional options.
type productionqueueentryOption func(*ProductionQueueEntryMutation)

// newProductionQueueEntryMutation creates new mutation for the ProductionQueueEntry entity.
func newProductionQueueEntryMutation(c config, op Op, opts ...productionqueueentryOption) *ProductionQueueEntryMutation {
	m := &ProductionQueueEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeProductionQueueEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProductionQueueEntryID sets the ID field of the mutation.
func withProductionQueueEntryID(id string) productionqueueentryOption {
	return func(m *ProductionQueueEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ProductionQueueEntry
		)
		m.oldValue = func(ctx context.Context) (*ProductionQueueEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProductionQueueEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProductionQueueEntry sets the old ProductionQueueEntry of the mutation.
func withProductionQueueEntry(node *ProductionQueueEntry) productionqueueentryOption {
	return func(m *ProductionQueueEntryMutation) {
		m.oldValue = func(context.Context) (*ProductionQueueEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProductionQueueEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProductionQueueEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProductionQueueEntry entities.
func (m *ProductionQueueEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProductionQueueEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProductionQueueEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProductionQueueEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ProductionQueueEntryMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ProductionQueueEntryMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ProductionQueueEntry entity.
// If the ProductionQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductionQueueEntryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ProductionQueueEntryMutation) ResetSessionID() {
	m.session = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *ProductionQueueEntryMutation) SetParticipantID(s string) {
	m.participant = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *ProductionQueueEntryMutation) ParticipantID() (r string, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the ProductionQueueEntry entity.
// If the ProductionQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductionQueueEntryMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *ProductionQueueEntryMutation) ResetParticipantID() {
	m.participant = nil
}

// SetShape sets the "shape" field.
func (m *ProductionQueueEntryMutation) SetShape(s string) {
	m.shape = &s
}

// Shape returns the value of the "shape" field in the mutation.
func (m *ProductionQueueEntryMutation) Shape() (r string, exists bool) {
	v := m.shape
	if v == nil {
		return
	}
	return *v, true
}

// OldShape returns the old "shape" field's value of the ProductionQueueEntry entity.
// If the ProductionQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductionQueueEntryMutation) OldShape(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShape is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShape requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShape: %w", err)
	}
	return oldValue.Shape, nil
}

// ResetShape resets all changes to the "shape" field.
func (m *ProductionQueueEntryMutation) ResetShape() {
	m.shape = nil
}

// SetQuantity sets the "quantity" field.
func (m *ProductionQueueEntryMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ProductionQueueEntryMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the ProductionQueueEntry entity.
// If the ProductionQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductionQueueEntryMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *ProductionQueueEntryMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ProductionQueueEntryMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ProductionQueueEntryMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetStatus sets the "status" field.
func (m *ProductionQueueEntryMutation) SetStatus(pr productionqueueentry.Status) {
	m.status = &pr
}

// Status returns the value of the "status" field in the mutation.
func (m *ProductionQueueEntryMutation) Status() (r productionqueueentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProductionQueueEntry entity.
// If the ProductionQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductionQueueEntryMutation) OldStatus(ctx context.Context) (v productionqueueentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ProductionQueueEntryMutation) ResetStatus() {
	m.status = nil
}

// SetQueuePosition sets the "queue_position" field.
func (m *ProductionQueueEntryMutation) SetQueuePosition(i int) {
	m.queue_position = &i
	m.addqueue_position = nil
}

// QueuePosition returns the value of the "queue_position" field in the mutation.
func (m *ProductionQueueEntryMutation) QueuePosition() (r int, exists bool) {
	v := m.queue_position
	if v == nil {
		return
	}
	return *v, true
}

// OldQueuePosition returns the old "queue_position" field's value of the ProductionQueueEntry entity.
// If the ProductionQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductionQueueEntryMutation) OldQueuePosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueuePosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueuePosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueuePosition: %w", err)
	}
	return oldValue.QueuePosition, nil
}

// AddQueuePosition adds i to the "queue_position" field.
func (m *ProductionQueueEntryMutation) AddQueuePosition(i int) {
	if m.addqueue_position != nil {
		*m.addqueue_position += i
	} else {
		m.addqueue_position = &i
	}
}

// AddedQueuePosition returns the value that was added to the "queue_position" field in this mutation.
func (m *ProductionQueueEntryMutation) AddedQueuePosition() (r int, exists bool) {
	v := m.addqueue_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetQueuePosition resets all changes to the "queue_position" field.
func (m *ProductionQueueEntryMutation) ResetQueuePosition() {
	m.queue_position = nil
	m.addqueue_position = nil
}

// SetStartTime sets the "start_time" field.
func (m *ProductionQueueEntryMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *ProductionQueueEntryMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the ProductionQueueEntry entity.
// If the ProductionQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductionQueueEntryMutation) OldStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *ProductionQueueEntryMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[productionqueueentry.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *ProductionQueueEntryMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[productionqueueentry.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *ProductionQueueEntryMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, productionqueueentry.FieldStartTime)
}

// SetEstimatedCompletion sets the "estimated_completion" field.
func (m *ProductionQueueEntryMutation) SetEstimatedCompletion(t time.Time) {
	m.estimated_completion = &t
}

// EstimatedCompletion returns the value of the "estimated_completion" field in the mutation.
func (m *ProductionQueueEntryMutation) EstimatedCompletion() (r time.Time, exists bool) {
	v := m.estimated_completion
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedCompletion returns the old "estimated_completion" field's value of the ProductionQueueEntry entity.
// If the ProductionQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductionQueueEntryMutation) OldEstimatedCompletion(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedCompletion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedCompletion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedCompletion: %w", err)
	}
	return oldValue.EstimatedCompletion, nil
}

// ClearEstimatedCompletion clears the value of the "estimated_completion" field.
func (m *ProductionQueueEntryMutation) ClearEstimatedCompletion() {
	m.estimated_completion = nil
	m.clearedFields[productionqueueentry.FieldEstimatedCompletion] = struct{}{}
}

// EstimatedCompletionCleared returns if the "estimated_completion" field was cleared in this mutation.
func (m *ProductionQueueEntryMutation) EstimatedCompletionCleared() bool {
	_, ok := m.clearedFields[productionqueueentry.FieldEstimatedCompletion]
	return ok
}

// ResetEstimatedCompletion resets all changes to the "estimated_completion" field.
func (m *ProductionQueueEntryMutation) ResetEstimatedCompletion() {
	m.estimated_completion = nil
	delete(m.clearedFields, productionqueueentry.FieldEstimatedCompletion)
}

// SetCreatedAt sets the "created_at" field.
func (m *ProductionQueueEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProductionQueueEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProductionQueueEntry entity.
// If the ProductionQueueEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProductionQueueEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProductionQueueEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ProductionQueueEntryMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[productionqueueentry.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ProductionQueueEntryMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ProductionQueueEntryMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ProductionQueueEntryMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *ProductionQueueEntryMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[productionqueueentry.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *ProductionQueueEntryMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *ProductionQueueEntryMutation) ParticipantIDs() (ids []string) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *ProductionQueueEntryMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the ProductionQueueEntryMutation builder.
func (m *ProductionQueueEntryMutation) Where(ps ...predicate.ProductionQueueEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProductionQueueEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProductionQueueEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProductionQueueEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProductionQueueEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProductionQueueEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProductionQueueEntry).
func (m *ProductionQueueEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProductionQueueEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.session != nil {
		fields = append(fields, productionqueueentry.FieldSessionID)
	}
	if m.participant != nil {
		fields = append(fields, productionqueueentry.FieldParticipantID)
	}
	if m.shape != nil {
		fields = append(fields, productionqueueentry.FieldShape)
	}
	if m.quantity != nil {
		fields = append(fields, productionqueueentry.FieldQuantity)
	}
	if m.status != nil {
		fields = append(fields, productionqueueentry.FieldStatus)
	}
	if m.queue_position != nil {
		fields = append(fields, productionqueueentry.FieldQueuePosition)
	}
	if m.start_time != nil {
		fields = append(fields, productionqueueentry.FieldStartTime)
	}
	if m.estimated_completion != nil {
		fields = append(fields, productionqueueentry.FieldEstimatedCompletion)
	}
	if m.created_at != nil {
		fields = append(fields, productionqueueentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProductionQueueEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case productionqueueentry.FieldSessionID:
		return m.SessionID()
	case productionqueueentry.FieldParticipantID:
		return m.ParticipantID()
	case productionqueueentry.FieldShape:
		return m.Shape()
	case productionqueueentry.FieldQuantity:
		return m.Quantity()
	case productionqueueentry.FieldStatus:
		return m.Status()
	case productionqueueentry.FieldQueuePosition:
		return m.QueuePosition()
	case productionqueueentry.FieldStartTime:
		return m.StartTime()
	case productionqueueentry.FieldEstimatedCompletion:
		return m.EstimatedCompletion()
	case productionqueueentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProductionQueueEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case productionqueueentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case productionqueueentry.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case productionqueueentry.FieldShape:
		return m.OldShape(ctx)
	case productionqueueentry.FieldQuantity:
		return m.OldQuantity(ctx)
	case productionqueueentry.FieldStatus:
		return m.OldStatus(ctx)
	case productionqueueentry.FieldQueuePosition:
		return m.OldQueuePosition(ctx)
	case productionqueueentry.FieldStartTime:
		return m.OldStartTime(ctx)
	case productionqueueentry.FieldEstimatedCompletion:
		return m.OldEstimatedCompletion(ctx)
	case productionqueueentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProductionQueueEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductionQueueEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case productionqueueentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case productionqueueentry.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case productionqueueentry.FieldShape:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShape(v)
		return nil
	case productionqueueentry.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case productionqueueentry.FieldStatus:
		v, ok := value.(productionqueueentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case productionqueueentry.FieldQueuePosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueuePosition(v)
		return nil
	case productionqueueentry.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case productionqueueentry.FieldEstimatedCompletion:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedCompletion(v)
		return nil
	case productionqueueentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProductionQueueEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProductionQueueEntryMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, productionqueueentry.FieldQuantity)
	}
	if m.addqueue_position != nil {
		fields = append(fields, productionqueueentry.FieldQueuePosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProductionQueueEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case productionqueueentry.FieldQuantity:
		return m.AddedQuantity()
	case productionqueueentry.FieldQueuePosition:
		return m.AddedQueuePosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProductionQueueEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case productionqueueentry.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case productionqueueentry.FieldQueuePosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQueuePosition(v)
		return nil
	}
	return fmt.Errorf("unknown ProductionQueueEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProductionQueueEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(productionqueueentry.FieldStartTime) {
		fields = append(fields, productionqueueentry.FieldStartTime)
	}
	if m.FieldCleared(productionqueueentry.FieldEstimatedCompletion) {
		fields = append(fields, productionqueueentry.FieldEstimatedCompletion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProductionQueueEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProductionQueueEntryMutation) ClearField(name string) error {
	switch name {
	case productionqueueentry.FieldStartTime:
		m.ClearStartTime()
		return nil
	case productionqueueentry.FieldEstimatedCompletion:
		m.ClearEstimatedCompletion()
		return nil
	}
	return fmt.Errorf("unknown ProductionQueueEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProductionQueueEntryMutation) ResetField(name string) error {
	switch name {
	case productionqueueentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case productionqueueentry.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case productionqueueentry.FieldShape:
		m.ResetShape()
		return nil
	case productionqueueentry.FieldQuantity:
		m.ResetQuantity()
		return nil
	case productionqueueentry.FieldStatus:
		m.ResetStatus()
		return nil
	case productionqueueentry.FieldQueuePosition:
		m.ResetQueuePosition()
		return nil
	case productionqueueentry.FieldStartTime:
		m.ResetStartTime()
		return nil
	case productionqueueentry.FieldEstimatedCompletion:
		m.ResetEstimatedCompletion()
		return nil
	case productionqueueentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProductionQueueEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProductionQueueEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, productionqueueentry.EdgeSession)
	}
	if m.participant != nil {
		edges = append(edges, productionqueueentry.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProductionQueueEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case productionqueueentry.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case productionqueueentry.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProductionQueueEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProductionQueueEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProductionQueueEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, productionqueueentry.EdgeSession)
	}
	if m.clearedparticipant {
		edges = append(edges, productionqueueentry.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProductionQueueEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case productionqueueentry.EdgeSession:
		return m.clearedsession
	case productionqueueentry.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProductionQueueEntryMutation) ClearEdge(name string) error {
	switch name {
	case productionqueueentry.EdgeSession:
		m.ClearSession()
		return nil
	case productionqueueentry.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown ProductionQueueEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProductionQueueEntryMutation) ResetEdge(name string) error {
	switch name {
	case productionqueueentry.EdgeSession:
		m.ResetSession()
		return nil
	case productionqueueentry.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown ProductionQueueEntry edge %s", name)
}

// RankingSubmissionMutation represents an operation that mutates the RankingSubmission nodes in the graph.
type RankingSubmissionMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	essay_rankings       *[]map[string]interface{}
	appendessay_rankings []map[string]interface{}
	created_at           *time.Time
	clearedFields        map[string]struct{}
	session              *string
	clearedsession       bool
	participant          *string
	clearedparticipant   bool
	done                 bool
	oldValue             func(context.Context) (*RankingSubmission, error)
	predicates           []predicate.RankingSubmission
}

var _ ent.Mutation = (*RankingSubmissionMutation)(nil)

// rankingsubmissionOption allows management of the mutation configuration using functional options.
type rankingsubmissionOption func(*RankingSubmissionMutation)

// newRankingSubmissionMutation creates new mutation for the RankingSubmission entity.
func newRankingSubmissionMutation(c config, op Op, opts ...rankingsubmissionOption) *RankingSubmissionMutation {
	m := &RankingSubmissionMutation{
		config:        c,
		op:            op,
		typ:           TypeRankingSubmission,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRankingSubmissionID sets the ID field of the mutation.
func withRankingSubmissionID(id string) rankingsubmissionOption {
	return func(m *RankingSubmissionMutation) {
		var (
			err   error
			once  sync.Once
			value *RankingSubmission
		)
		m.oldValue = func(ctx context.Context) (*RankingSubmission, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RankingSubmission.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRankingSubmission sets the old RankingSubmission of the mutation.
func withRankingSubmission(node *RankingSubmission) rankingsubmissionOption {
	return func(m *RankingSubmissionMutation) {
		m.oldValue = func(context.Context) (*RankingSubmission, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RankingSubmissionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RankingSubmissionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RankingSubmission entities.
func (m *RankingSubmissionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RankingSubmissionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RankingSubmissionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RankingSubmission.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *RankingSubmissionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *RankingSubmissionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the RankingSubmission entity.
// If the RankingSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RankingSubmissionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *RankingSubmissionMutation) ResetSessionID() {
	m.session = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *RankingSubmissionMutation) SetParticipantID(s string) {
	m.participant = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *RankingSubmissionMutation) ParticipantID() (r string, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the RankingSubmission entity.
// If the RankingSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RankingSubmissionMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *RankingSubmissionMutation) ResetParticipantID() {
	m.participant = nil
}

// SetEssayRankings sets the "essay_rankings" field.
func (m *RankingSubmissionMutation) SetEssayRankings(value []map[string]interface{}) {
	m.essay_rankings = &value
	m.appendessay_rankings = nil
}

// EssayRankings returns the value of the "essay_rankings" field in the mutation.
func (m *RankingSubmissionMutation) EssayRankings() (r []map[string]interface{}, exists bool) {
	v := m.essay_rankings
	if v == nil {
		return
	}
	return *v, true
}

// OldEssayRankings returns the old "essay_rankings" field's value of the RankingSubmission entity.
// If the RankingSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RankingSubmissionMutation) OldEssayRankings(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEssayRankings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEssayRankings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEssayRankings: %w", err)
	}
	return oldValue.EssayRankings, nil
}

// AppendEssayRankings adds value to the "essay_rankings" field.
func (m *RankingSubmissionMutation) AppendEssayRankings(value []map[string]interface{}) {
	m.appendessay_rankings = append(m.appendessay_rankings, value...)
}

// AppendedEssayRankings returns the list of values that were appended to the "essay_rankings" field in this mutation.
func (m *RankingSubmissionMutation) AppendedEssayRankings() ([]map[string]interface{}, bool) {
	if len(m.appendessay_rankings) == 0 {
		return nil, false
	}
	return m.appendessay_rankings, true
}

// ResetEssayRankings resets all changes to the "essay_rankings" field.
func (m *RankingSubmissionMutation) ResetEssayRankings() {
	m.essay_rankings = nil
	m.appendessay_rankings = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *RankingSubmissionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RankingSubmissionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RankingSubmission entity.
// If the RankingSubmission object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RankingSubmissionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RankingSubmissionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *RankingSubmissionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[rankingsubmission.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *RankingSubmissionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *RankingSubmissionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *RankingSubmissionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *RankingSubmissionMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[rankingsubmission.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *RankingSubmissionMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *RankingSubmissionMutation) ParticipantIDs() (ids []string) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *RankingSubmissionMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the RankingSubmissionMutation builder.
func (m *RankingSubmissionMutation) Where(ps ...predicate.RankingSubmission) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RankingSubmissionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RankingSubmissionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RankingSubmission, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RankingSubmissionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RankingSubmissionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RankingSubmission).
func (m *RankingSubmissionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RankingSubmissionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, rankingsubmission.FieldSessionID)
	}
	if m.participant != nil {
		fields = append(fields, rankingsubmission.FieldParticipantID)
	}
	if m.essay_rankings != nil {
		fields = append(fields, rankingsubmission.FieldEssayRankings)
	}
	if m.created_at != nil {
		fields = append(fields, rankingsubmission.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RankingSubmissionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rankingsubmission.FieldSessionID:
		return m.SessionID()
	case rankingsubmission.FieldParticipantID:
		return m.ParticipantID()
	case rankingsubmission.FieldEssayRankings:
		return m.EssayRankings()
	case rankingsubmission.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RankingSubmissionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rankingsubmission.FieldSessionID:
		return m.OldSessionID(ctx)
	case rankingsubmission.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case rankingsubmission.FieldEssayRankings:
		return m.OldEssayRankings(ctx)
	case rankingsubmission.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RankingSubmission field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RankingSubmissionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rankingsubmission.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case rankingsubmission.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case rankingsubmission.FieldEssayRankings:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEssayRankings(v)
		return nil
	case rankingsubmission.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RankingSubmission field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RankingSubmissionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RankingSubmissionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RankingSubmissionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RankingSubmission numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RankingSubmissionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RankingSubmissionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RankingSubmissionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RankingSubmission nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RankingSubmissionMutation) ResetField(name string) error {
	switch name {
	case rankingsubmission.FieldSessionID:
		m.ResetSessionID()
		return nil
	case rankingsubmission.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case rankingsubmission.FieldEssayRankings:
		m.ResetEssayRankings()
		return nil
	case rankingsubmission.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown RankingSubmission field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RankingSubmissionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, rankingsubmission.EdgeSession)
	}
	if m.participant != nil {
		edges = append(edges, rankingsubmission.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RankingSubmissionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rankingsubmission.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case rankingsubmission.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RankingSubmissionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RankingSubmissionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RankingSubmissionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, rankingsubmission.EdgeSession)
	}
	if m.clearedparticipant {
		edges = append(edges, rankingsubmission.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RankingSubmissionMutation) EdgeCleared(name string) bool {
	switch name {
	case rankingsubmission.EdgeSession:
		return m.clearedsession
	case rankingsubmission.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RankingSubmissionMutation) ClearEdge(name string) error {
	switch name {
	case rankingsubmission.EdgeSession:
		m.ClearSession()
		return nil
	case rankingsubmission.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown RankingSubmission unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RankingSubmissionMutation) ResetEdge(name string) error {
	switch name {
	case rankingsubmission.EdgeSession:
		m.ResetSession()
		return nil
	case rankingsubmission.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown RankingSubmission edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	session_code               *string
	experiment_type            *string
	status                     *session.Status
	experiment_config          *map[string]interface{}
	created_at                 *time.Time
	started_at                 *time.Time
	completed_at               *time.Time
	clearedFields              map[string]struct{}
	participants               map[string]struct{}
	removedparticipants        map[string]struct{}
	clearedparticipants        bool
	messages                   map[string]struct{}
	removedmessages            map[string]struct{}
	clearedmessages            bool
	transactions               map[string]struct{}
	removedtransactions        map[string]struct{}
	clearedtransactions        bool
	inventories                map[string]struct{}
	removedinventories         map[string]struct{}
	clearedinventories         bool
	production_entries         map[string]struct{}
	removedproduction_entries  map[string]struct{}
	clearedproduction_entries  bool
	investments                map[string]struct{}
	removedinvestments         map[string]struct{}
	clearedinvestments         bool
	ranking_submissions        map[string]struct{}
	removedranking_submissions map[string]struct{}
	clearedranking_submissions bool
	essay_assignments          map[string]struct{}
	removedessay_assignments   map[string]struct{}
	clearedessay_assignments   bool
	word_guesses               map[string]struct{}
	removedword_guesses        map[string]struct{}
	clearedword_guesses        bool
	events                     map[int]struct{}
	removedevents              map[int]struct{}
	clearedevents              bool
	done                       bool
	oldValue                   func(context.Context) (*Session, error)
	predicates                 []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionCode sets the "session_code" field.
func (m *SessionMutation) SetSessionCode(s string) {
	m.session_code = &s
}

// SessionCode returns the value of the "session_code" field in the mutation.
func (m *SessionMutation) SessionCode() (r string, exists bool) {
	v := m.session_code
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionCode returns the old "session_code" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSessionCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionCode: %w", err)
	}
	return oldValue.SessionCode, nil
}

// ResetSessionCode resets all changes to the "session_code" field.
func (m *SessionMutation) ResetSessionCode() {
	m.session_code = nil
}

// SetExperimentType sets the "experiment_type" field.
func (m *SessionMutation) SetExperimentType(s string) {
	m.experiment_type = &s
}

// ExperimentType returns the value of the "experiment_type" field in the mutation.
func (m *SessionMutation) ExperimentType() (r string, exists bool) {
	v := m.experiment_type
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentType returns the old "experiment_type" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExperimentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentType: %w", err)
	}
	return oldValue.ExperimentType, nil
}

// ResetExperimentType resets all changes to the "experiment_type" field.
func (m *SessionMutation) ResetExperimentType() {
	m.experiment_type = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// SetExperimentConfig sets the "experiment_config" field.
func (m *SessionMutation) SetExperimentConfig(value map[string]interface{}) {
	m.experiment_config = &value
}

// ExperimentConfig returns the value of the "experiment_config" field in the mutation.
func (m *SessionMutation) ExperimentConfig() (r map[string]interface{}, exists bool) {
	v := m.experiment_config
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentConfig returns the old "experiment_config" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldExperimentConfig(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentConfig is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentConfig requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentConfig: %w", err)
	}
	return oldValue.ExperimentConfig, nil
}

// ClearExperimentConfig clears the value of the "experiment_config" field.
func (m *SessionMutation) ClearExperimentConfig() {
	m.experiment_config = nil
	m.clearedFields[session.FieldExperimentConfig] = struct{}{}
}

// ExperimentConfigCleared returns if the "experiment_config" field was cleared in this mutation.
func (m *SessionMutation) ExperimentConfigCleared() bool {
	_, ok := m.clearedFields[session.FieldExperimentConfig]
	return ok
}

// ResetExperimentConfig resets all changes to the "experiment_config" field.
func (m *SessionMutation) ResetExperimentConfig() {
	m.experiment_config = nil
	delete(m.clearedFields, session.FieldExperimentConfig)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *SessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *SessionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[session.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *SessionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SessionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, session.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[session.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[session.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, session.FieldCompletedAt)
}

// AddParticipantIDs adds the "participants" edge to the Participant entity by ids.
func (m *SessionMutation) AddParticipantIDs(ids ...string) {
	if m.participants == nil {
		m.participants = make(map[string]struct{})
	}
	for i := range ids {
		m.participants[ids[i]] = struct{}{}
	}
}

// ClearParticipants clears the "participants" edge to the Participant entity.
func (m *SessionMutation) ClearParticipants() {
	m.clearedparticipants = true
}

// ParticipantsCleared reports if the "participants" edge to the Participant entity was cleared.
func (m *SessionMutation) ParticipantsCleared() bool {
	return m.clearedparticipants
}

// RemoveParticipantIDs removes the "participants" edge to the Participant entity by IDs.
func (m *SessionMutation) RemoveParticipantIDs(ids ...string) {
	if m.removedparticipants == nil {
		m.removedparticipants = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.participants, ids[i])
		m.removedparticipants[ids[i]] = struct{}{}
	}
}

// RemovedParticipants returns the removed IDs of the "participants" edge to the Participant entity.
func (m *SessionMutation) RemovedParticipantsIDs() (ids []string) {
	for id := range m.removedparticipants {
		ids = append(ids, id)
	}
	return
}

// ParticipantsIDs returns the "participants" edge IDs in the mutation.
func (m *SessionMutation) ParticipantsIDs() (ids []string) {
	for id := range m.participants {
		ids = append(ids, id)
	}
	return
}

// ResetParticipants resets all changes to the "participants" edge.
func (m *SessionMutation) ResetParticipants() {
	m.participants = nil
	m.clearedparticipants = false
	m.removedparticipants = nil
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *SessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *SessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *SessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *SessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *SessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *SessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *SessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *SessionMutation) AddTransactionIDs(ids ...string) {
	if m.transactions == nil {
		m.transactions = make(map[string]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *SessionMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *SessionMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *SessionMutation) RemoveTransactionIDs(ids ...string) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *SessionMutation) RemovedTransactionsIDs() (ids []string) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *SessionMutation) TransactionsIDs() (ids []string) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *SessionMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// AddInventoryIDs adds the "inventories" edge to the ShapeInventory entity by ids.
func (m *SessionMutation) AddInventoryIDs(ids ...string) {
	if m.inventories == nil {
		m.inventories = make(map[string]struct{})
	}
	for i := range ids {
		m.inventories[ids[i]] = struct{}{}
	}
}

// ClearInventories clears the "inventories" edge to the ShapeInventory entity.
func (m *SessionMutation) ClearInventories() {
	m.clearedinventories = true
}

// InventoriesCleared reports if the "inventories" edge to the ShapeInventory entity was cleared.
func (m *SessionMutation) InventoriesCleared() bool {
	return m.clearedinventories
}

// RemoveInventoryIDs removes the "inventories" edge to the ShapeInventory entity by IDs.
func (m *SessionMutation) RemoveInventoryIDs(ids ...string) {
	if m.removedinventories == nil {
		m.removedinventories = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.inventories, ids[i])
		m.removedinventories[ids[i]] = struct{}{}
	}
}

// RemovedInventories returns the removed IDs of the "inventories" edge to the ShapeInventory entity.
func (m *SessionMutation) RemovedInventoriesIDs() (ids []string) {
	for id := range m.removedinventories {
		ids = append(ids, id)
	}
	return
}

// InventoriesIDs returns the "inventories" edge IDs in the mutation.
func (m *SessionMutation) InventoriesIDs() (ids []string) {
	for id := range m.inventories {
		ids = append(ids, id)
	}
	return
}

// ResetInventories resets all changes to the "inventories" edge.
func (m *SessionMutation) ResetInventories() {
	m.inventories = nil
	m.clearedinventories = false
	m.removedinventories = nil
}

// AddProductionEntryIDs adds the "production_entries" edge to the ProductionQueueEntry entity by ids.
func (m *SessionMutation) AddProductionEntryIDs(ids ...string) {
	if m.production_entries == nil {
		m.production_entries = make(map[string]struct{})
	}
	for i := range ids {
		m.production_entries[ids[i]] = struct{}{}
	}
}

// ClearProductionEntries clears the "production_entries" edge to the ProductionQueueEntry entity.
func (m *SessionMutation) ClearProductionEntries() {
	m.clearedproduction_entries = true
}

// ProductionEntriesCleared reports if the "production_entries" edge to the ProductionQueueEntry entity was cleared.
func (m *SessionMutation) ProductionEntriesCleared() bool {
	return m.clearedproduction_entries
}

// RemoveProductionEntryIDs removes the "production_entries" edge to the ProductionQueueEntry entity by IDs.
func (m *SessionMutation) RemoveProductionEntryIDs(ids ...string) {
	if m.removedproduction_entries == nil {
		m.removedproduction_entries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.production_entries, ids[i])
		m.removedproduction_entries[ids[i]] = struct{}{}
	}
}

// RemovedProductionEntries returns the removed IDs of the "production_entries" edge to the ProductionQueueEntry entity.
func (m *SessionMutation) RemovedProductionEntriesIDs() (ids []string) {
	for id := range m.removedproduction_entries {
		ids = append(ids, id)
	}
	return
}

// ProductionEntriesIDs returns the "production_entries" edge IDs in the mutation.
func (m *SessionMutation) ProductionEntriesIDs() (ids []string) {
	for id := range m.production_entries {
		ids = append(ids, id)
	}
	return
}

// ResetProductionEntries resets all changes to the "production_entries" edge.
func (m *SessionMutation) ResetProductionEntries() {
	m.production_entries = nil
	m.clearedproduction_entries = false
	m.removedproduction_entries = nil
}

// AddInvestmentIDs adds the "investments" edge to the Investment entity by ids.
func (m *SessionMutation) AddInvestmentIDs(ids ...string) {
	if m.investments == nil {
		m.investments = make(map[string]struct{})
	}
	for i := range ids {
		m.investments[ids[i]] = struct{}{}
	}
}

// ClearInvestments clears the "investments" edge to the Investment entity.
func (m *SessionMutation) ClearInvestments() {
	m.clearedinvestments = true
}

// InvestmentsCleared reports if the "investments" edge to the Investment entity was cleared.
func (m *SessionMutation) InvestmentsCleared() bool {
	return m.clearedinvestments
}

// RemoveInvestmentIDs removes the "investments" edge to the Investment entity by IDs.
func (m *SessionMutation) RemoveInvestmentIDs(ids ...string) {
	if m.removedinvestments == nil {
		m.removedinvestments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.investments, ids[i])
		m.removedinvestments[ids[i]] = struct{}{}
	}
}

// RemovedInvestments returns the removed IDs of the "investments" edge to the Investment entity.
func (m *SessionMutation) RemovedInvestmentsIDs() (ids []string) {
	for id := range m.removedinvestments {
		ids = append(ids, id)
	}
	return
}

// InvestmentsIDs returns the "investments" edge IDs in the mutation.
func (m *SessionMutation) InvestmentsIDs() (ids []string) {
	for id := range m.investments {
		ids = append(ids, id)
	}
	return
}

// ResetInvestments resets all changes to the "investments" edge.
func (m *SessionMutation) ResetInvestments() {
	m.investments = nil
	m.clearedinvestments = false
	m.removedinvestments = nil
}

// AddRankingSubmissionIDs adds the "ranking_submissions" edge to the RankingSubmission entity by ids.
func (m *SessionMutation) AddRankingSubmissionIDs(ids ...string) {
	if m.ranking_submissions == nil {
		m.ranking_submissions = make(map[string]struct{})
	}
	for i := range ids {
		m.ranking_submissions[ids[i]] = struct{}{}
	}
}

// ClearRankingSubmissions clears the "ranking_submissions" edge to the RankingSubmission entity.
func (m *SessionMutation) ClearRankingSubmissions() {
	m.clearedranking_submissions = true
}

// RankingSubmissionsCleared reports if the "ranking_submissions" edge to the RankingSubmission entity was cleared.
func (m *SessionMutation) RankingSubmissionsCleared() bool {
	return m.clearedranking_submissions
}

// RemoveRankingSubmissionIDs removes the "ranking_submissions" edge to the RankingSubmission entity by IDs.
func (m *SessionMutation) RemoveRankingSubmissionIDs(ids ...string) {
	if m.removedranking_submissions == nil {
		m.removedranking_submissions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.ranking_submissions, ids[i])
		m.removedranking_submissions[ids[i]] = struct{}{}
	}
}

// RemovedRankingSubmissions returns the removed IDs of the "ranking_submissions" edge to the RankingSubmission entity.
func (m *SessionMutation) RemovedRankingSubmissionsIDs() (ids []string) {
	for id := range m.removedranking_submissions {
		ids = append(ids, id)
	}
	return
}

// RankingSubmissionsIDs returns the "ranking_submissions" edge IDs in the mutation.
func (m *SessionMutation) RankingSubmissionsIDs() (ids []string) {
	for id := range m.ranking_submissions {
		ids = append(ids, id)
	}
	return
}

// ResetRankingSubmissions resets all changes to the "ranking_submissions" edge.
func (m *SessionMutation) ResetRankingSubmissions() {
	m.ranking_submissions = nil
	m.clearedranking_submissions = false
	m.removedranking_submissions = nil
}

// AddEssayAssignmentIDs adds the "essay_assignments" edge to the EssayAssignment entity by ids.
func (m *SessionMutation) AddEssayAssignmentIDs(ids ...string) {
	if m.essay_assignments == nil {
		m.essay_assignments = make(map[string]struct{})
	}
	for i := range ids {
		m.essay_assignments[ids[i]] = struct{}{}
	}
}

// ClearEssayAssignments clears the "essay_assignments" edge to the EssayAssignment entity.
func (m *SessionMutation) ClearEssayAssignments() {
	m.clearedessay_assignments = true
}

// EssayAssignmentsCleared reports if the "essay_assignments" edge to the EssayAssignment entity was cleared.
func (m *SessionMutation) EssayAssignmentsCleared() bool {
	return m.clearedessay_assignments
}

// RemoveEssayAssignmentIDs removes the "essay_assignments" edge to the EssayAssignment entity by IDs.
func (m *SessionMutation) RemoveEssayAssignmentIDs(ids ...string) {
	if m.removedessay_assignments == nil {
		m.removedessay_assignments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.essay_assignments, ids[i])
		m.removedessay_assignments[ids[i]] = struct{}{}
	}
}

// RemovedEssayAssignments returns the removed IDs of the "essay_assignments" edge to the EssayAssignment entity.
func (m *SessionMutation) RemovedEssayAssignmentsIDs() (ids []string) {
	for id := range m.removedessay_assignments {
		ids = append(ids, id)
	}
	return
}

// EssayAssignmentsIDs returns the "essay_assignments" edge IDs in the mutation.
func (m *SessionMutation) EssayAssignmentsIDs() (ids []string) {
	for id := range m.essay_assignments {
		ids = append(ids, id)
	}
	return
}

// ResetEssayAssignments resets all changes to the "essay_assignments" edge.
func (m *SessionMutation) ResetEssayAssignments() {
	m.essay_assignments = nil
	m.clearedessay_assignments = false
	m.removedessay_assignments = nil
}

// AddWordGuessIDs adds the "word_guesses" edge to the WordGuess entity by ids.
func (m *SessionMutation) AddWordGuessIDs(ids ...string) {
	if m.word_guesses == nil {
		m.word_guesses = make(map[string]struct{})
	}
	for i := range ids {
		m.word_guesses[ids[i]] = struct{}{}
	}
}

// ClearWordGuesses clears the "word_guesses" edge to the WordGuess entity.
func (m *SessionMutation) ClearWordGuesses() {
	m.clearedword_guesses = true
}

// WordGuessesCleared reports if the "word_guesses" edge to the WordGuess entity was cleared.
func (m *SessionMutation) WordGuessesCleared() bool {
	return m.clearedword_guesses
}

// RemoveWordGuessIDs removes the "word_guesses" edge to the WordGuess entity by IDs.
func (m *SessionMutation) RemoveWordGuessIDs(ids ...string) {
	if m.removedword_guesses == nil {
		m.removedword_guesses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.word_guesses, ids[i])
		m.removedword_guesses[ids[i]] = struct{}{}
	}
}

// RemovedWordGuesses returns the removed IDs of the "word_guesses" edge to the WordGuess entity.
func (m *SessionMutation) RemovedWordGuessesIDs() (ids []string) {
	for id := range m.removedword_guesses {
		ids = append(ids, id)
	}
	return
}

// WordGuessesIDs returns the "word_guesses" edge IDs in the mutation.
func (m *SessionMutation) WordGuessesIDs() (ids []string) {
	for id := range m.word_guesses {
		ids = append(ids, id)
	}
	return
}

// ResetWordGuesses resets all changes to the "word_guesses" edge.
func (m *SessionMutation) ResetWordGuesses() {
	m.word_guesses = nil
	m.clearedword_guesses = false
	m.removedword_guesses = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *SessionMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *SessionMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *SessionMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *SessionMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *SessionMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *SessionMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *SessionMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.session_code != nil {
		fields = append(fields, session.FieldSessionCode)
	}
	if m.experiment_type != nil {
		fields = append(fields, session.FieldExperimentType)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	if m.experiment_config != nil {
		fields = append(fields, session.FieldExperimentConfig)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, session.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldSessionCode:
		return m.SessionCode()
	case session.FieldExperimentType:
		return m.ExperimentType()
	case session.FieldStatus:
		return m.Status()
	case session.FieldExperimentConfig:
		return m.ExperimentConfig()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldStartedAt:
		return m.StartedAt()
	case session.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldSessionCode:
		return m.OldSessionCode(ctx)
	case session.FieldExperimentType:
		return m.OldExperimentType(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	case session.FieldExperimentConfig:
		return m.OldExperimentConfig(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case session.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldSessionCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionCode(v)
		return nil
	case session.FieldExperimentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentType(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case session.FieldExperimentConfig:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentConfig(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case session.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldExperimentConfig) {
		fields = append(fields, session.FieldExperimentConfig)
	}
	if m.FieldCleared(session.FieldStartedAt) {
		fields = append(fields, session.FieldStartedAt)
	}
	if m.FieldCleared(session.FieldCompletedAt) {
		fields = append(fields, session.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldExperimentConfig:
		m.ClearExperimentConfig()
		return nil
	case session.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case session.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldSessionCode:
		m.ResetSessionCode()
		return nil
	case session.FieldExperimentType:
		m.ResetExperimentType()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	case session.FieldExperimentConfig:
		m.ResetExperimentConfig()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case session.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 10)
	if m.participants != nil {
		edges = append(edges, session.EdgeParticipants)
	}
	if m.messages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.transactions != nil {
		edges = append(edges, session.EdgeTransactions)
	}
	if m.inventories != nil {
		edges = append(edges, session.EdgeInventories)
	}
	if m.production_entries != nil {
		edges = append(edges, session.EdgeProductionEntries)
	}
	if m.investments != nil {
		edges = append(edges, session.EdgeInvestments)
	}
	if m.ranking_submissions != nil {
		edges = append(edges, session.EdgeRankingSubmissions)
	}
	if m.essay_assignments != nil {
		edges = append(edges, session.EdgeEssayAssignments)
	}
	if m.word_guesses != nil {
		edges = append(edges, session.EdgeWordGuesses)
	}
	if m.events != nil {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.participants))
		for id := range m.participants {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeInventories:
		ids := make([]ent.Value, 0, len(m.inventories))
		for id := range m.inventories {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeProductionEntries:
		ids := make([]ent.Value, 0, len(m.production_entries))
		for id := range m.production_entries {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeInvestments:
		ids := make([]ent.Value, 0, len(m.investments))
		for id := range m.investments {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeRankingSubmissions:
		ids := make([]ent.Value, 0, len(m.ranking_submissions))
		for id := range m.ranking_submissions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEssayAssignments:
		ids := make([]ent.Value, 0, len(m.essay_assignments))
		for id := range m.essay_assignments {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeWordGuesses:
		ids := make([]ent.Value, 0, len(m.word_guesses))
		for id := range m.word_guesses {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 10)
	if m.removedparticipants != nil {
		edges = append(edges, session.EdgeParticipants)
	}
	if m.removedmessages != nil {
		edges = append(edges, session.EdgeMessages)
	}
	if m.removedtransactions != nil {
		edges = append(edges, session.EdgeTransactions)
	}
	if m.removedinventories != nil {
		edges = append(edges, session.EdgeInventories)
	}
	if m.removedproduction_entries != nil {
		edges = append(edges, session.EdgeProductionEntries)
	}
	if m.removedinvestments != nil {
		edges = append(edges, session.EdgeInvestments)
	}
	if m.removedranking_submissions != nil {
		edges = append(edges, session.EdgeRankingSubmissions)
	}
	if m.removedessay_assignments != nil {
		edges = append(edges, session.EdgeEssayAssignments)
	}
	if m.removedword_guesses != nil {
		edges = append(edges, session.EdgeWordGuesses)
	}
	if m.removedevents != nil {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case session.EdgeParticipants:
		ids := make([]ent.Value, 0, len(m.removedparticipants))
		for id := range m.removedparticipants {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeInventories:
		ids := make([]ent.Value, 0, len(m.removedinventories))
		for id := range m.removedinventories {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeProductionEntries:
		ids := make([]ent.Value, 0, len(m.removedproduction_entries))
		for id := range m.removedproduction_entries {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeInvestments:
		ids := make([]ent.Value, 0, len(m.removedinvestments))
		for id := range m.removedinvestments {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeRankingSubmissions:
		ids := make([]ent.Value, 0, len(m.removedranking_submissions))
		for id := range m.removedranking_submissions {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEssayAssignments:
		ids := make([]ent.Value, 0, len(m.removedessay_assignments))
		for id := range m.removedessay_assignments {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeWordGuesses:
		ids := make([]ent.Value, 0, len(m.removedword_guesses))
		for id := range m.removedword_guesses {
			ids = append(ids, id)
		}
		return ids
	case session.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 10)
	if m.clearedparticipants {
		edges = append(edges, session.EdgeParticipants)
	}
	if m.clearedmessages {
		edges = append(edges, session.EdgeMessages)
	}
	if m.clearedtransactions {
		edges = append(edges, session.EdgeTransactions)
	}
	if m.clearedinventories {
		edges = append(edges, session.EdgeInventories)
	}
	if m.clearedproduction_entries {
		edges = append(edges, session.EdgeProductionEntries)
	}
	if m.clearedinvestments {
		edges = append(edges, session.EdgeInvestments)
	}
	if m.clearedranking_submissions {
		edges = append(edges, session.EdgeRankingSubmissions)
	}
	if m.clearedessay_assignments {
		edges = append(edges, session.EdgeEssayAssignments)
	}
	if m.clearedword_guesses {
		edges = append(edges, session.EdgeWordGuesses)
	}
	if m.clearedevents {
		edges = append(edges, session.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	switch name {
	case session.EdgeParticipants:
		return m.clearedparticipants
	case session.EdgeMessages:
		return m.clearedmessages
	case session.EdgeTransactions:
		return m.clearedtransactions
	case session.EdgeInventories:
		return m.clearedinventories
	case session.EdgeProductionEntries:
		return m.clearedproduction_entries
	case session.EdgeInvestments:
		return m.clearedinvestments
	case session.EdgeRankingSubmissions:
		return m.clearedranking_submissions
	case session.EdgeEssayAssignments:
		return m.clearedessay_assignments
	case session.EdgeWordGuesses:
		return m.clearedword_guesses
	case session.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	switch name {
	case session.EdgeParticipants:
		m.ResetParticipants()
		return nil
	case session.EdgeMessages:
		m.ResetMessages()
		return nil
	case session.EdgeTransactions:
		m.ResetTransactions()
		return nil
	case session.EdgeInventories:
		m.ResetInventories()
		return nil
	case session.EdgeProductionEntries:
		m.ResetProductionEntries()
		return nil
	case session.EdgeInvestments:
		m.ResetInvestments()
		return nil
	case session.EdgeRankingSubmissions:
		m.ResetRankingSubmissions()
		return nil
	case session.EdgeEssayAssignments:
		m.ResetEssayAssignments()
		return nil
	case session.EdgeWordGuesses:
		m.ResetWordGuesses()
		return nil
	case session.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Session edge %s", name)
}

// ShapeInventoryMutation represents an operation that mutates the ShapeInventory nodes in the graph.
type ShapeInventoryMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	shapes_in_inventory       *[]string
	appendshapes_in_inventory []string
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	session                   *string
	clearedsession            bool
	participant               *string
	clearedparticipant        bool
	done                      bool
	oldValue                  func(context.Context) (*ShapeInventory, error)
	predicates                []predicate.ShapeInventory
}

var _ ent.Mutation = (*ShapeInventoryMutation)(nil)

// shapeinventoryOption allows management of the mutation configuration using functional options.
type shapeinventoryOption func(*ShapeInventoryMutation)

// newShapeInventoryMutation creates new mutation for the ShapeInventory entity.
func newShapeInventoryMutation(c config, op Op, opts ...shapeinventoryOption) *ShapeInventoryMutation {
	m := &ShapeInventoryMutation{
		config:        c,
		op:            op,
		typ:           TypeShapeInventory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withShapeInventoryID sets the ID field of the mutation.
func withShapeInventoryID(id string) shapeinventoryOption {
	return func(m *ShapeInventoryMutation) {
		var (
			err   error
			once  sync.Once
			value *ShapeInventory
		)
		m.oldValue = func(ctx context.Context) (*ShapeInventory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ShapeInventory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withShapeInventory sets the old ShapeInventory of the mutation.
func withShapeInventory(node *ShapeInventory) shapeinventoryOption {
	return func(m *ShapeInventoryMutation) {
		m.oldValue = func(context.Context) (*ShapeInventory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ShapeInventoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ShapeInventoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ShapeInventory entities.
func (m *ShapeInventoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ShapeInventoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ShapeInventoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ShapeInventory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ShapeInventoryMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ShapeInventoryMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ShapeInventory entity.
// If the ShapeInventory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShapeInventoryMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ShapeInventoryMutation) ResetSessionID() {
	m.session = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *ShapeInventoryMutation) SetParticipantID(s string) {
	m.participant = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *ShapeInventoryMutation) ParticipantID() (r string, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the ShapeInventory entity.
// If the ShapeInventory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShapeInventoryMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *ShapeInventoryMutation) ResetParticipantID() {
	m.participant = nil
}

// SetShapesInInventory sets the "shapes_in_inventory" field.
func (m *ShapeInventoryMutation) SetShapesInInventory(s []string) {
	m.shapes_in_inventory = &s
	m.appendshapes_in_inventory = nil
}

// ShapesInInventory returns the value of the "shapes_in_inventory" field in the mutation.
func (m *ShapeInventoryMutation) ShapesInInventory() (r []string, exists bool) {
	v := m.shapes_in_inventory
	if v == nil {
		return
	}
	return *v, true
}

// OldShapesInInventory returns the old "shapes_in_inventory" field's value of the ShapeInventory entity.
// If the ShapeInventory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShapeInventoryMutation) OldShapesInInventory(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShapesInInventory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShapesInInventory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShapesInInventory: %w", err)
	}
	return oldValue.ShapesInInventory, nil
}

// AppendShapesInInventory adds s to the "shapes_in_inventory" field.
func (m *ShapeInventoryMutation) AppendShapesInInventory(s []string) {
	m.appendshapes_in_inventory = append(m.appendshapes_in_inventory, s...)
}

// AppendedShapesInInventory returns the list of values that were appended to the "shapes_in_inventory" field in this mutation.
func (m *ShapeInventoryMutation) AppendedShapesInInventory() ([]string, bool) {
	if len(m.appendshapes_in_inventory) == 0 {
		return nil, false
	}
	return m.appendshapes_in_inventory, true
}

// ClearShapesInInventory clears the value of the "shapes_in_inventory" field.
func (m *ShapeInventoryMutation) ClearShapesInInventory() {
	m.shapes_in_inventory = nil
	m.appendshapes_in_inventory = nil
	m.clearedFields[shapeinventory.FieldShapesInInventory] = struct{}{}
}

// ShapesInInventoryCleared returns if the "shapes_in_inventory" field was cleared in this mutation.
func (m *ShapeInventoryMutation) ShapesInInventoryCleared() bool {
	_, ok := m.clearedFields[shapeinventory.FieldShapesInInventory]
	return ok
}

// ResetShapesInInventory resets all changes to the "shapes_in_inventory" field.
func (m *ShapeInventoryMutation) ResetShapesInInventory() {
	m.shapes_in_inventory = nil
	m.appendshapes_in_inventory = nil
	delete(m.clearedFields, shapeinventory.FieldShapesInInventory)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ShapeInventoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ShapeInventoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ShapeInventory entity.
// If the ShapeInventory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ShapeInventoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ShapeInventoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *ShapeInventoryMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[shapeinventory.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *ShapeInventoryMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *ShapeInventoryMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *ShapeInventoryMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *ShapeInventoryMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[shapeinventory.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *ShapeInventoryMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *ShapeInventoryMutation) ParticipantIDs() (ids []string) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *ShapeInventoryMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the ShapeInventoryMutation builder.
func (m *ShapeInventoryMutation) Where(ps ...predicate.ShapeInventory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ShapeInventoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ShapeInventoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ShapeInventory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ShapeInventoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ShapeInventoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ShapeInventory).
func (m *ShapeInventoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ShapeInventoryMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.session != nil {
		fields = append(fields, shapeinventory.FieldSessionID)
	}
	if m.participant != nil {
		fields = append(fields, shapeinventory.FieldParticipantID)
	}
	if m.shapes_in_inventory != nil {
		fields = append(fields, shapeinventory.FieldShapesInInventory)
	}
	if m.updated_at != nil {
		fields = append(fields, shapeinventory.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ShapeInventoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case shapeinventory.FieldSessionID:
		return m.SessionID()
	case shapeinventory.FieldParticipantID:
		return m.ParticipantID()
	case shapeinventory.FieldShapesInInventory:
		return m.ShapesInInventory()
	case shapeinventory.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ShapeInventoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case shapeinventory.FieldSessionID:
		return m.OldSessionID(ctx)
	case shapeinventory.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case shapeinventory.FieldShapesInInventory:
		return m.OldShapesInInventory(ctx)
	case shapeinventory.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ShapeInventory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShapeInventoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case shapeinventory.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case shapeinventory.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case shapeinventory.FieldShapesInInventory:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShapesInInventory(v)
		return nil
	case shapeinventory.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ShapeInventory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ShapeInventoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ShapeInventoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ShapeInventoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ShapeInventory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ShapeInventoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(shapeinventory.FieldShapesInInventory) {
		fields = append(fields, shapeinventory.FieldShapesInInventory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ShapeInventoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ShapeInventoryMutation) ClearField(name string) error {
	switch name {
	case shapeinventory.FieldShapesInInventory:
		m.ClearShapesInInventory()
		return nil
	}
	return fmt.Errorf("unknown ShapeInventory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ShapeInventoryMutation) ResetField(name string) error {
	switch name {
	case shapeinventory.FieldSessionID:
		m.ResetSessionID()
		return nil
	case shapeinventory.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case shapeinventory.FieldShapesInInventory:
		m.ResetShapesInInventory()
		return nil
	case shapeinventory.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ShapeInventory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ShapeInventoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, shapeinventory.EdgeSession)
	}
	if m.participant != nil {
		edges = append(edges, shapeinventory.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ShapeInventoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case shapeinventory.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case shapeinventory.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ShapeInventoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ShapeInventoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ShapeInventoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, shapeinventory.EdgeSession)
	}
	if m.clearedparticipant {
		edges = append(edges, shapeinventory.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ShapeInventoryMutation) EdgeCleared(name string) bool {
	switch name {
	case shapeinventory.EdgeSession:
		return m.clearedsession
	case shapeinventory.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ShapeInventoryMutation) ClearEdge(name string) error {
	switch name {
	case shapeinventory.EdgeSession:
		m.ClearSession()
		return nil
	case shapeinventory.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown ShapeInventory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ShapeInventoryMutation) ResetEdge(name string) error {
	switch name {
	case shapeinventory.EdgeSession:
		m.ResetSession()
		return nil
	case shapeinventory.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown ShapeInventory edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op                Op
	typ               string
	id                *string
	short_id          *string
	proposer          *string
	recipient         *string
	seller            *string
	buyer             *string
	offer_type        *transaction.OfferType
	shape             *string
	quantity          *int
	addquantity       *int
	price_per_unit    *int
	addprice_per_unit *int
	status            *transaction.Status
	created_at        *time.Time
	resolved_at       *time.Time
	clearedFields     map[string]struct{}
	session           *string
	clearedsession    bool
	done              bool
	oldValue          func(context.Context) (*Transaction, error)
	predicates        []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id string) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transaction entities.
func (m *TransactionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *TransactionMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *TransactionMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *TransactionMutation) ResetSessionID() {
	m.session = nil
}

// SetShortID sets the "short_id" field.
func (m *TransactionMutation) SetShortID(s string) {
	m.short_id = &s
}

// ShortID returns the value of the "short_id" field in the mutation.
func (m *TransactionMutation) ShortID() (r string, exists bool) {
	v := m.short_id
	if v == nil {
		return
	}
	return *v, true
}

// OldShortID returns the old "short_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldShortID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShortID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShortID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShortID: %w", err)
	}
	return oldValue.ShortID, nil
}

// ResetShortID resets all changes to the "short_id" field.
func (m *TransactionMutation) ResetShortID() {
	m.short_id = nil
}

// SetProposer sets the "proposer" field.
func (m *TransactionMutation) SetProposer(s string) {
	m.proposer = &s
}

// Proposer returns the value of the "proposer" field in the mutation.
func (m *TransactionMutation) Proposer() (r string, exists bool) {
	v := m.proposer
	if v == nil {
		return
	}
	return *v, true
}

// OldProposer returns the old "proposer" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldProposer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposer: %w", err)
	}
	return oldValue.Proposer, nil
}

// ResetProposer resets all changes to the "proposer" field.
func (m *TransactionMutation) ResetProposer() {
	m.proposer = nil
}

// SetRecipient sets the "recipient" field.
func (m *TransactionMutation) SetRecipient(s string) {
	m.recipient = &s
}

// Recipient returns the value of the "recipient" field in the mutation.
func (m *TransactionMutation) Recipient() (r string, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipient returns the old "recipient" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldRecipient(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipient is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipient requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipient: %w", err)
	}
	return oldValue.Recipient, nil
}

// ResetRecipient resets all changes to the "recipient" field.
func (m *TransactionMutation) ResetRecipient() {
	m.recipient = nil
}

// SetSeller sets the "seller" field.
func (m *TransactionMutation) SetSeller(s string) {
	m.seller = &s
}

// Seller returns the value of the "seller" field in the mutation.
func (m *TransactionMutation) Seller() (r string, exists bool) {
	v := m.seller
	if v == nil {
		return
	}
	return *v, true
}

// OldSeller returns the old "seller" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldSeller(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeller is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeller requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeller: %w", err)
	}
	return oldValue.Seller, nil
}

// ResetSeller resets all changes to the "seller" field.
func (m *TransactionMutation) ResetSeller() {
	m.seller = nil
}

// SetBuyer sets the "buyer" field.
func (m *TransactionMutation) SetBuyer(s string) {
	m.buyer = &s
}

// Buyer returns the value of the "buyer" field in the mutation.
func (m *TransactionMutation) Buyer() (r string, exists bool) {
	v := m.buyer
	if v == nil {
		return
	}
	return *v, true
}

// OldBuyer returns the old "buyer" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldBuyer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBuyer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBuyer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBuyer: %w", err)
	}
	return oldValue.Buyer, nil
}

// ResetBuyer resets all changes to the "buyer" field.
func (m *TransactionMutation) ResetBuyer() {
	m.buyer = nil
}

// SetOfferType sets the "offer_type" field.
func (m *TransactionMutation) SetOfferType(tt transaction.OfferType) {
	m.offer_type = &tt
}

// OfferType returns the value of the "offer_type" field in the mutation.
func (m *TransactionMutation) OfferType() (r transaction.OfferType, exists bool) {
	v := m.offer_type
	if v == nil {
		return
	}
	return *v, true
}

// OldOfferType returns the old "offer_type" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldOfferType(ctx context.Context) (v transaction.OfferType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOfferType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOfferType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOfferType: %w", err)
	}
	return oldValue.OfferType, nil
}

// ResetOfferType resets all changes to the "offer_type" field.
func (m *TransactionMutation) ResetOfferType() {
	m.offer_type = nil
}

// SetShape sets the "shape" field.
func (m *TransactionMutation) SetShape(s string) {
	m.shape = &s
}

// Shape returns the value of the "shape" field in the mutation.
func (m *TransactionMutation) Shape() (r string, exists bool) {
	v := m.shape
	if v == nil {
		return
	}
	return *v, true
}

// OldShape returns the old "shape" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldShape(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShape is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShape requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShape: %w", err)
	}
	return oldValue.Shape, nil
}

// ResetShape resets all changes to the "shape" field.
func (m *TransactionMutation) ResetShape() {
	m.shape = nil
}

// SetQuantity sets the "quantity" field.
func (m *TransactionMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *TransactionMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *TransactionMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *TransactionMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *TransactionMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetPricePerUnit sets the "price_per_unit" field.
func (m *TransactionMutation) SetPricePerUnit(i int) {
	m.price_per_unit = &i
	m.addprice_per_unit = nil
}

// PricePerUnit returns the value of the "price_per_unit" field in the mutation.
func (m *TransactionMutation) PricePerUnit() (r int, exists bool) {
	v := m.price_per_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldPricePerUnit returns the old "price_per_unit" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldPricePerUnit(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPricePerUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPricePerUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPricePerUnit: %w", err)
	}
	return oldValue.PricePerUnit, nil
}

// AddPricePerUnit adds i to the "price_per_unit" field.
func (m *TransactionMutation) AddPricePerUnit(i int) {
	if m.addprice_per_unit != nil {
		*m.addprice_per_unit += i
	} else {
		m.addprice_per_unit = &i
	}
}

// AddedPricePerUnit returns the value that was added to the "price_per_unit" field in this mutation.
func (m *TransactionMutation) AddedPricePerUnit() (r int, exists bool) {
	v := m.addprice_per_unit
	if v == nil {
		return
	}
	return *v, true
}

// ResetPricePerUnit resets all changes to the "price_per_unit" field.
func (m *TransactionMutation) ResetPricePerUnit() {
	m.price_per_unit = nil
	m.addprice_per_unit = nil
}

// SetStatus sets the "status" field.
func (m *TransactionMutation) SetStatus(t transaction.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TransactionMutation) Status() (r transaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldStatus(ctx context.Context) (v transaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TransactionMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetResolvedAt sets the "resolved_at" field.
func (m *TransactionMutation) SetResolvedAt(t time.Time) {
	m.resolved_at = &t
}

// ResolvedAt returns the value of the "resolved_at" field in the mutation.
func (m *TransactionMutation) ResolvedAt() (r time.Time, exists bool) {
	v := m.resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldResolvedAt returns the old "resolved_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolvedAt: %w", err)
	}
	return oldValue.ResolvedAt, nil
}

// ClearResolvedAt clears the value of the "resolved_at" field.
func (m *TransactionMutation) ClearResolvedAt() {
	m.resolved_at = nil
	m.clearedFields[transaction.FieldResolvedAt] = struct{}{}
}

// ResolvedAtCleared returns if the "resolved_at" field was cleared in this mutation.
func (m *TransactionMutation) ResolvedAtCleared() bool {
	_, ok := m.clearedFields[transaction.FieldResolvedAt]
	return ok
}

// ResetResolvedAt resets all changes to the "resolved_at" field.
func (m *TransactionMutation) ResetResolvedAt() {
	m.resolved_at = nil
	delete(m.clearedFields, transaction.FieldResolvedAt)
}

// ClearSession clears the "session" edge to the Session entity.
func (m *TransactionMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[transaction.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *TransactionMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *TransactionMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.session != nil {
		fields = append(fields, transaction.FieldSessionID)
	}
	if m.short_id != nil {
		fields = append(fields, transaction.FieldShortID)
	}
	if m.proposer != nil {
		fields = append(fields, transaction.FieldProposer)
	}
	if m.recipient != nil {
		fields = append(fields, transaction.FieldRecipient)
	}
	if m.seller != nil {
		fields = append(fields, transaction.FieldSeller)
	}
	if m.buyer != nil {
		fields = append(fields, transaction.FieldBuyer)
	}
	if m.offer_type != nil {
		fields = append(fields, transaction.FieldOfferType)
	}
	if m.shape != nil {
		fields = append(fields, transaction.FieldShape)
	}
	if m.quantity != nil {
		fields = append(fields, transaction.FieldQuantity)
	}
	if m.price_per_unit != nil {
		fields = append(fields, transaction.FieldPricePerUnit)
	}
	if m.status != nil {
		fields = append(fields, transaction.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	if m.resolved_at != nil {
		fields = append(fields, transaction.FieldResolvedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldSessionID:
		return m.SessionID()
	case transaction.FieldShortID:
		return m.ShortID()
	case transaction.FieldProposer:
		return m.Proposer()
	case transaction.FieldRecipient:
		return m.Recipient()
	case transaction.FieldSeller:
		return m.Seller()
	case transaction.FieldBuyer:
		return m.Buyer()
	case transaction.FieldOfferType:
		return m.OfferType()
	case transaction.FieldShape:
		return m.Shape()
	case transaction.FieldQuantity:
		return m.Quantity()
	case transaction.FieldPricePerUnit:
		return m.PricePerUnit()
	case transaction.FieldStatus:
		return m.Status()
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	case transaction.FieldResolvedAt:
		return m.ResolvedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldSessionID:
		return m.OldSessionID(ctx)
	case transaction.FieldShortID:
		return m.OldShortID(ctx)
	case transaction.FieldProposer:
		return m.OldProposer(ctx)
	case transaction.FieldRecipient:
		return m.OldRecipient(ctx)
	case transaction.FieldSeller:
		return m.OldSeller(ctx)
	case transaction.FieldBuyer:
		return m.OldBuyer(ctx)
	case transaction.FieldOfferType:
		return m.OldOfferType(ctx)
	case transaction.FieldShape:
		return m.OldShape(ctx)
	case transaction.FieldQuantity:
		return m.OldQuantity(ctx)
	case transaction.FieldPricePerUnit:
		return m.OldPricePerUnit(ctx)
	case transaction.FieldStatus:
		return m.OldStatus(ctx)
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case transaction.FieldResolvedAt:
		return m.OldResolvedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case transaction.FieldShortID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShortID(v)
		return nil
	case transaction.FieldProposer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposer(v)
		return nil
	case transaction.FieldRecipient:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipient(v)
		return nil
	case transaction.FieldSeller:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeller(v)
		return nil
	case transaction.FieldBuyer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBuyer(v)
		return nil
	case transaction.FieldOfferType:
		v, ok := value.(transaction.OfferType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOfferType(v)
		return nil
	case transaction.FieldShape:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShape(v)
		return nil
	case transaction.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case transaction.FieldPricePerUnit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPricePerUnit(v)
		return nil
	case transaction.FieldStatus:
		v, ok := value.(transaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case transaction.FieldResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolvedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	var fields []string
	if m.addquantity != nil {
		fields = append(fields, transaction.FieldQuantity)
	}
	if m.addprice_per_unit != nil {
		fields = append(fields, transaction.FieldPricePerUnit)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldQuantity:
		return m.AddedQuantity()
	case transaction.FieldPricePerUnit:
		return m.AddedPricePerUnit()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case transaction.FieldPricePerUnit:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPricePerUnit(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transaction.FieldResolvedAt) {
		fields = append(fields, transaction.FieldResolvedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	switch name {
	case transaction.FieldResolvedAt:
		m.ClearResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldSessionID:
		m.ResetSessionID()
		return nil
	case transaction.FieldShortID:
		m.ResetShortID()
		return nil
	case transaction.FieldProposer:
		m.ResetProposer()
		return nil
	case transaction.FieldRecipient:
		m.ResetRecipient()
		return nil
	case transaction.FieldSeller:
		m.ResetSeller()
		return nil
	case transaction.FieldBuyer:
		m.ResetBuyer()
		return nil
	case transaction.FieldOfferType:
		m.ResetOfferType()
		return nil
	case transaction.FieldShape:
		m.ResetShape()
		return nil
	case transaction.FieldQuantity:
		m.ResetQuantity()
		return nil
	case transaction.FieldPricePerUnit:
		m.ResetPricePerUnit()
		return nil
	case transaction.FieldStatus:
		m.ResetStatus()
		return nil
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case transaction.FieldResolvedAt:
		m.ResetResolvedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, transaction.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, transaction.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case transaction.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	switch name {
	case transaction.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	switch name {
	case transaction.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Transaction edge %s", name)
}

// WordGuessMutation represents an operation that mutates the WordGuess nodes in the graph.
type WordGuessMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	guess_text         *string
	round              *int
	addround           *int
	correct            *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	session            *string
	clearedsession     bool
	participant        *string
	clearedparticipant bool
	done               bool
	oldValue           func(context.Context) (*WordGuess, error)
	predicates         []predicate.WordGuess
}

var _ ent.Mutation = (*WordGuessMutation)(nil)

// wordguessOption allows management of the mutation configuration using functional options.
type wordguessOption func(*WordGuessMutation)

// newWordGuessMutation creates new mutation for the WordGuess entity.
func newWordGuessMutation(c config, op Op, opts ...wordguessOption) *WordGuessMutation {
	m := &WordGuessMutation{
		config:        c,
		op:            op,
		typ:           TypeWordGuess,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWordGuessID sets the ID field of the mutation.
func withWordGuessID(id string) wordguessOption {
	return func(m *WordGuessMutation) {
		var (
			err   error
			once  sync.Once
			value *WordGuess
		)
		m.oldValue = func(ctx context.Context) (*WordGuess, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WordGuess.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWordGuess sets the old WordGuess of the mutation.
func withWordGuess(node *WordGuess) wordguessOption {
	return func(m *WordGuessMutation) {
		m.oldValue = func(context.Context) (*WordGuess, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WordGuessMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WordGuessMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WordGuess entities.
func (m *WordGuessMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WordGuessMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WordGuessMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WordGuess.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *WordGuessMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *WordGuessMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the WordGuess entity.
// If the WordGuess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordGuessMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *WordGuessMutation) ResetSessionID() {
	m.session = nil
}

// SetParticipantID sets the "participant_id" field.
func (m *WordGuessMutation) SetParticipantID(s string) {
	m.participant = &s
}

// ParticipantID returns the value of the "participant_id" field in the mutation.
func (m *WordGuessMutation) ParticipantID() (r string, exists bool) {
	v := m.participant
	if v == nil {
		return
	}
	return *v, true
}

// OldParticipantID returns the old "participant_id" field's value of the WordGuess entity.
// If the WordGuess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordGuessMutation) OldParticipantID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParticipantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParticipantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParticipantID: %w", err)
	}
	return oldValue.ParticipantID, nil
}

// ResetParticipantID resets all changes to the "participant_id" field.
func (m *WordGuessMutation) ResetParticipantID() {
	m.participant = nil
}

// SetGuessText sets the "guess_text" field.
func (m *WordGuessMutation) SetGuessText(s string) {
	m.guess_text = &s
}

// GuessText returns the value of the "guess_text" field in the mutation.
func (m *WordGuessMutation) GuessText() (r string, exists bool) {
	v := m.guess_text
	if v == nil {
		return
	}
	return *v, true
}

// OldGuessText returns the old "guess_text" field's value of the WordGuess entity.
// If the WordGuess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordGuessMutation) OldGuessText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGuessText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGuessText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGuessText: %w", err)
	}
	return oldValue.GuessText, nil
}

// ResetGuessText resets all changes to the "guess_text" field.
func (m *WordGuessMutation) ResetGuessText() {
	m.guess_text = nil
}

// SetRound sets the "round" field.
func (m *WordGuessMutation) SetRound(i int) {
	m.round = &i
	m.addround = nil
}

// Round returns the value of the "round" field in the mutation.
func (m *WordGuessMutation) Round() (r int, exists bool) {
	v := m.round
	if v == nil {
		return
	}
	return *v, true
}

// OldRound returns the old "round" field's value of the WordGuess entity.
// If the WordGuess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordGuessMutation) OldRound(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRound is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRound requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRound: %w", err)
	}
	return oldValue.Round, nil
}

// AddRound adds i to the "round" field.
func (m *WordGuessMutation) AddRound(i int) {
	if m.addround != nil {
		*m.addround += i
	} else {
		m.addround = &i
	}
}

// AddedRound returns the value that was added to the "round" field in this mutation.
func (m *WordGuessMutation) AddedRound() (r int, exists bool) {
	v := m.addround
	if v == nil {
		return
	}
	return *v, true
}

// ResetRound resets all changes to the "round" field.
func (m *WordGuessMutation) ResetRound() {
	m.round = nil
	m.addround = nil
}

// SetCorrect sets the "correct" field.
func (m *WordGuessMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *WordGuessMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the WordGuess entity.
// If the WordGuess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordGuessMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *WordGuessMutation) ResetCorrect() {
	m.correct = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WordGuessMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WordGuessMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WordGuess entity.
// If the WordGuess object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordGuessMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WordGuessMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the Session entity.
func (m *WordGuessMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[wordguess.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the Session entity was cleared.
func (m *WordGuessMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *WordGuessMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *WordGuessMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// ClearParticipant clears the "participant" edge to the Participant entity.
func (m *WordGuessMutation) ClearParticipant() {
	m.clearedparticipant = true
	m.clearedFields[wordguess.FieldParticipantID] = struct{}{}
}

// ParticipantCleared reports if the "participant" edge to the Participant entity was cleared.
func (m *WordGuessMutation) ParticipantCleared() bool {
	return m.clearedparticipant
}

// ParticipantIDs returns the "participant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParticipantID instead. It exists only for internal usage by the builders.
func (m *WordGuessMutation) ParticipantIDs() (ids []string) {
	if id := m.participant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParticipant resets all changes to the "participant" edge.
func (m *WordGuessMutation) ResetParticipant() {
	m.participant = nil
	m.clearedparticipant = false
}

// Where appends a list predicates to the WordGuessMutation builder.
func (m *WordGuessMutation) Where(ps ...predicate.WordGuess) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WordGuessMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WordGuessMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WordGuess, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WordGuessMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WordGuessMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WordGuess).
func (m *WordGuessMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WordGuessMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.session != nil {
		fields = append(fields, wordguess.FieldSessionID)
	}
	if m.participant != nil {
		fields = append(fields, wordguess.FieldParticipantID)
	}
	if m.guess_text != nil {
		fields = append(fields, wordguess.FieldGuessText)
	}
	if m.round != nil {
		fields = append(fields, wordguess.FieldRound)
	}
	if m.correct != nil {
		fields = append(fields, wordguess.FieldCorrect)
	}
	if m.created_at != nil {
		fields = append(fields, wordguess.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WordGuessMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wordguess.FieldSessionID:
		return m.SessionID()
	case wordguess.FieldParticipantID:
		return m.ParticipantID()
	case wordguess.FieldGuessText:
		return m.GuessText()
	case wordguess.FieldRound:
		return m.Round()
	case wordguess.FieldCorrect:
		return m.Correct()
	case wordguess.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WordGuessMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wordguess.FieldSessionID:
		return m.OldSessionID(ctx)
	case wordguess.FieldParticipantID:
		return m.OldParticipantID(ctx)
	case wordguess.FieldGuessText:
		return m.OldGuessText(ctx)
	case wordguess.FieldRound:
		return m.OldRound(ctx)
	case wordguess.FieldCorrect:
		return m.OldCorrect(ctx)
	case wordguess.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WordGuess field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordGuessMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wordguess.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case wordguess.FieldParticipantID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParticipantID(v)
		return nil
	case wordguess.FieldGuessText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGuessText(v)
		return nil
	case wordguess.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRound(v)
		return nil
	case wordguess.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case wordguess.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WordGuess field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WordGuessMutation) AddedFields() []string {
	var fields []string
	if m.addround != nil {
		fields = append(fields, wordguess.FieldRound)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WordGuessMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wordguess.FieldRound:
		return m.AddedRound()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordGuessMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wordguess.FieldRound:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRound(v)
		return nil
	}
	return fmt.Errorf("unknown WordGuess numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WordGuessMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WordGuessMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WordGuessMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WordGuess nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WordGuessMutation) ResetField(name string) error {
	switch name {
	case wordguess.FieldSessionID:
		m.ResetSessionID()
		return nil
	case wordguess.FieldParticipantID:
		m.ResetParticipantID()
		return nil
	case wordguess.FieldGuessText:
		m.ResetGuessText()
		return nil
	case wordguess.FieldRound:
		m.ResetRound()
		return nil
	case wordguess.FieldCorrect:
		m.ResetCorrect()
		return nil
	case wordguess.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown WordGuess field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WordGuessMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.session != nil {
		edges = append(edges, wordguess.EdgeSession)
	}
	if m.participant != nil {
		edges = append(edges, wordguess.EdgeParticipant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WordGuessMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case wordguess.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	case wordguess.EdgeParticipant:
		if id := m.participant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WordGuessMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WordGuessMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WordGuessMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedsession {
		edges = append(edges, wordguess.EdgeSession)
	}
	if m.clearedparticipant {
		edges = append(edges, wordguess.EdgeParticipant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WordGuessMutation) EdgeCleared(name string) bool {
	switch name {
	case wordguess.EdgeSession:
		return m.clearedsession
	case wordguess.EdgeParticipant:
		return m.clearedparticipant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WordGuessMutation) ClearEdge(name string) error {
	switch name {
	case wordguess.EdgeSession:
		m.ClearSession()
		return nil
	case wordguess.EdgeParticipant:
		m.ClearParticipant()
		return nil
	}
	return fmt.Errorf("unknown WordGuess unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WordGuessMutation) ResetEdge(name string) error {
	switch name {
	case wordguess.EdgeSession:
		m.ResetSession()
		return nil
	case wordguess.EdgeParticipant:
		m.ResetParticipant()
		return nil
	}
	return fmt.Errorf("unknown WordGuess edge %s", name)
}
