package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RankingSubmission holds the schema definition for one submit_ranking call.
// Every submission is kept; participants.current_rankings holds the merged
// snapshot.
type RankingSubmission struct {
	ent.Schema
}

// Fields of the RankingSubmission.
func (RankingSubmission) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("submission_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.String("participant_id").
			Immutable(),
		field.JSON("essay_rankings", []map[string]interface{}{}).
			Comment("Ordered list of {essay_id, rank, reasoning} as submitted"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the RankingSubmission.
func (RankingSubmission) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("ranking_submissions").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
		edge.From("participant", Participant.Type).
			Ref("ranking_submissions").
			Field("participant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RankingSubmission.
func (RankingSubmission) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("participant_id", "created_at"),
	}
}
