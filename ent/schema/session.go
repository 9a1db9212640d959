package schema

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for an experiment session. Sessions are
// a permanent record: they are never deleted, only completed.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("session_code").
			Unique().
			Immutable().
			Comment("Short ASCII code participants and agents address the session by"),
		field.String("experiment_type").
			Immutable().
			Validate(validExperimentType).
			Comment("Built-in kind or custom_* for researcher-defined experiments"),
		field.Enum("status").
			Values("idle", "setup_complete", "session_active", "session_paused", "session_completed").
			Default("idle"),
		field.JSON("experiment_config", map[string]interface{}{}).
			Optional().
			Comment("Options bag: roundDuration, communicationLevel, awarenessDashboard, kind-specific keys"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("First transition to session_active"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("participants", Participant.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("transactions", Transaction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("inventories", ShapeInventory.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("production_entries", ProductionQueueEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("investments", Investment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("ranking_submissions", RankingSubmission.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("essay_assignments", EssayAssignment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("word_guesses", WordGuess.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("experiment_type"),
		index.Fields("status", "created_at"),
	}
}

// Annotations of the Session.
func (Session) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}

func validExperimentType(s string) error {
	switch s {
	case "shapefactory", "daytrader", "essayranking", "wordguessing", "hiddenprofiles":
		return nil
	}
	if strings.HasPrefix(s, "custom_") && len(s) > len("custom_") {
		return nil
	}
	return fmt.Errorf("unknown experiment type %q", s)
}
