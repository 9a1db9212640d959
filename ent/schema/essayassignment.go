package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EssayAssignment holds the schema definition for an essay attached to an
// EssayRanking session. An empty participant_code assigns the essay to every
// participant.
type EssayAssignment struct {
	ent.Schema
}

// Fields of the EssayAssignment.
func (EssayAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("essay_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("participant_code").
			Optional().
			Immutable().
			Comment("Scope to one participant; empty means assigned to all"),
		field.String("title").
			Immutable(),
		field.Text("content").
			Immutable().
			Comment("Extracted text, PDF-sourced where applicable"),
		field.String("source_file").
			Optional().
			Immutable(),
		field.Int("word_count").
			Default(0).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the EssayAssignment.
func (EssayAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("essay_assignments").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the EssayAssignment.
func (EssayAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "participant_code"),
	}
}
