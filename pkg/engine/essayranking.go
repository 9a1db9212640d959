package engine

import (
	"context"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/fault"
)

// essayRanking is the essay-evaluation experiment. Essays are assigned at
// configuration time; participants read them and submit rankings, partially
// or in full, as often as they like. The merged view of the latest rank per
// essay lives on the participant.
type essayRanking struct {
	*base
}

func (e *essayRanking) ParticipantState(ctx context.Context, sessionCode, participantCode string) (map[string]any, error) {
	p, err := e.store.Participants.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	essays, err := e.store.Rankings.AssignedEssays(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}

	state := baseState(p)
	state["assigned_essays"] = essaySummaries(essays)
	state["current_rankings"] = p.CurrentRankings
	return state, nil
}

func (e *essayRanking) HandleAction(ctx context.Context, sessionCode, participantCode, name string, args map[string]any) (map[string]any, error) {
	switch name {
	case ToolSubmitRanking:
		rankings, err := argRankings(args, "rankings")
		if err != nil {
			return nil, err
		}
		sub, merged, err := e.store.Rankings.SubmitRanking(ctx, sessionCode, participantCode, rankings)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"submission_id":    sub.ID,
			"rankings_count":   len(rankings),
			"current_rankings": merged,
		}, nil

	case ToolGetAssignedEssays:
		essays, err := e.store.Rankings.AssignedEssays(ctx, sessionCode, participantCode)
		if err != nil {
			return nil, err
		}
		return map[string]any{"essays": essaySummaries(essays)}, nil

	case ToolGetEssayContent:
		essayID := argString(args, "essay_id")
		if essayID == "" {
			return nil, fault.New(fault.InvalidState, "essay_id is required")
		}
		essay, err := e.store.Rankings.GetEssay(ctx, sessionCode, participantCode, essayID)
		if err != nil {
			return nil, err
		}
		return map[string]any{"essay": map[string]any{
			"essay_id":    essay.ID,
			"title":       essay.Title,
			"content":     essay.Content,
			"source_file": essay.SourceFile,
			"word_count":  essay.WordCount,
		}}, nil

	default:
		return nil, unknownAction(e.kind, name)
	}
}

// essaySummaries lists essays without their body text; content is fetched
// one essay at a time through get_essay_content to keep state payloads small.
func essaySummaries(essays []*ent.EssayAssignment) []map[string]any {
	out := make([]map[string]any, 0, len(essays))
	for _, essay := range essays {
		out = append(out, map[string]any{
			"essay_id":    essay.ID,
			"title":       essay.Title,
			"source_file": essay.SourceFile,
			"word_count":  essay.WordCount,
		})
	}
	return out
}
