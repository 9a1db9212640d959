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

// ProductionQueueEntry holds the schema definition for one produce_shape
// request. At most one entry per participant is in_progress; the queue does
// not auto-advance — starting the next entry is participant-initiated.
type ProductionQueueEntry struct {
	ent.Schema
}

// Fields of the ProductionQueueEntry.
func (ProductionQueueEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("queue_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("participant_id").
			Immutable(),
		field.String("shape").
			Immutable(),
		field.Int("quantity").
			Immutable(),
		field.Enum("status").
			Values("queued", "in_progress", "completed").
			Default("queued"),
		field.Int("queue_position").
			Default(0),
		field.Time("start_time").
			Optional().
			Nillable().
			Comment("Set when the entry enters in_progress"),
		field.Time("estimated_completion").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ProductionQueueEntry.
func (ProductionQueueEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("production_entries").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("participant", Participant.Type).
			Ref("production_entries").
			Field("participant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ProductionQueueEntry.
func (ProductionQueueEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_id", "status"),
		index.Fields("session_id", "status"),
	}
}

// Annotations of the ProductionQueueEntry.
func (ProductionQueueEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "production_queue"},
	}
}
