package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Participant holds the schema definition for a session participant, human or
// agent. Game fields not used by the session's experiment kind stay at their
// zero values.
type Participant struct {
	ent.Schema
}

// Fields of the Participant.
func (Participant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("participant_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("participant_code").
			Immutable().
			Comment("Unique within the session; used as the agent-facing identity"),
		field.Enum("type").
			Values("human", "ai_agent").
			Default("human"),
		field.String("specialty_shape").
			Optional().
			Comment("ShapeFactory: the shape this participant produces cheaply"),
		field.String("role").
			Optional().
			Comment("WordGuessing: hinter or guesser"),
		field.Int("money").
			Default(0),
		field.JSON("orders", []string{}).
			Optional().
			Comment("ShapeFactory: remaining order tags, one shape per order index"),
		field.Int("orders_completed").
			Default(0),
		field.JSON("assigned_words", []string{}).
			Optional().
			Comment("WordGuessing: hinter's secret words"),
		field.JSON("current_rankings", map[string]interface{}{}).
			Optional().
			Comment("EssayRanking: essay_id -> {rank, reasoning}, merged across submissions"),
		field.Enum("login_status").
			Values("not_logged_in", "logged_in", "active", "disconnected").
			Default("not_logged_in"),
		field.Int("specialty_production_used").
			Default(0).
			Comment("Counts produced specialty units against config.maxProductionNum"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Participant.
func (Participant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("participants").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.To("inventory", ShapeInventory.Type).
			Unique(),
		edge.To("production_entries", ProductionQueueEntry.Type),
		edge.To("investments", Investment.Type),
		edge.To("ranking_submissions", RankingSubmission.Type),
		edge.To("word_guesses", WordGuess.Type),
	}
}

// Indexes of the Participant.
func (Participant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "participant_code").
			Unique(),
		index.Fields("session_id", "type"),
	}
}
