package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WordGuess holds the schema definition for one WordGuessing guess. Round
// progress and per-guesser scores are derived from these rows rather than
// stored separately.
type WordGuess struct {
	ent.Schema
}

// Fields of the WordGuess.
func (WordGuess) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("guess_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("participant_id").
			Immutable(),
		field.Text("guess_text").
			Immutable(),
		field.Int("round").
			Immutable().
			Comment("Round the guess was made in; rounds advance on correct guesses"),
		field.Bool("correct").
			Default(false).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WordGuess.
func (WordGuess) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("word_guesses").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("participant", Participant.Type).
			Ref("word_guesses").
			Field("participant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WordGuess.
func (WordGuess) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "round"),
		index.Fields("participant_id", "correct"),
	}
}

// Annotations of the WordGuess.
func (WordGuess) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "wordguessing_chat_history"},
	}
}
