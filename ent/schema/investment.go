package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Investment holds the schema definition for a DayTrader investment record.
type Investment struct {
	ent.Schema
}

// Fields of the Investment.
func (Investment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("investment_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("participant_id").
			Immutable(),
		field.Float("price").
			Immutable(),
		field.Enum("decision_type").
			Values("individual", "group").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Investment.
func (Investment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("investments").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("participant", Participant.Type).
			Ref("investments").
			Field("participant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Investment.
func (Investment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_id", "created_at"),
		index.Fields("session_id", "created_at"),
	}
}
