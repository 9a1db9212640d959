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

// ShapeInventory holds the schema definition for a participant's shape
// holdings. Tags are an ordered list with duplicates; quantity of a shape is
// its tag count.
type ShapeInventory struct {
	ent.Schema
}

// Fields of the ShapeInventory.
func (ShapeInventory) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("inventory_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("participant_id").
			Unique().
			Immutable(),
		field.JSON("shapes_in_inventory", []string{}).
			Optional(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ShapeInventory.
func (ShapeInventory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("inventories").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("participant", Participant.Type).
			Ref("inventory").
			Field("participant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ShapeInventory.
func (ShapeInventory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}

// Annotations of the ShapeInventory.
func (ShapeInventory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "shape_inventory"},
	}
}
