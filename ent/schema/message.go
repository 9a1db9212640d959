package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for participant chat. A NULL recipient
// means broadcast to the whole session.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("sender").
			Immutable().
			Comment("participant_code of the author"),
		field.String("recipient").
			Optional().
			Nillable().
			Immutable().
			Comment("participant_code of the addressee; NULL means broadcast"),
		field.Text("content").
			Immutable(),
		field.String("type").
			Default("chat"),
		field.Enum("delivered_status").
			Values("sent", "delivered", "read").
			Default("sent"),
		field.JSON("message_data", map[string]interface{}{}).
			Optional().
			Comment("Broadcasts carry seen_by here; read only once seen_by covers the session"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "recipient", "delivered_status"),
		index.Fields("session_id", "created_at"),
	}
}
