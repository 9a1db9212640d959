package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Transaction holds the schema definition for a trade offer. Proposer and
// recipient fix who opened the offer; seller and buyer are derived from
// offer_type at creation so settlement never re-derives direction.
type Transaction struct {
	ent.Schema
}

// Fields of the Transaction.
func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("transaction_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("short_id").
			Immutable().
			Comment("Human-readable id agents reference in chat, e.g. S1A2-003"),
		field.String("proposer").
			Immutable(),
		field.String("recipient").
			Immutable(),
		field.String("seller").
			Immutable(),
		field.String("buyer").
			Immutable(),
		field.Enum("offer_type").
			Values("buy", "sell").
			Immutable(),
		field.String("shape").
			Immutable(),
		field.Int("quantity").
			Immutable(),
		field.Int("price_per_unit").
			Immutable(),
		field.Enum("status").
			Values("proposed", "completed", "cancelled").
			Default("proposed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("resolved_at").
			Optional().
			Nillable().
			Comment("When the offer left the proposed state"),
	}
}

// Edges of the Transaction.
func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("transactions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Transaction.
func (Transaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "short_id").
			Unique(),
		index.Fields("session_id", "status"),
		index.Fields("session_id", "proposer", "status"),
		index.Fields("session_id", "recipient", "status"),
	}
}
