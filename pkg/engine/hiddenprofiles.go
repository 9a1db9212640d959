package engine

import (
	"context"
	"slices"

	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// hiddenProfiles is the discussion-and-vote experiment. Every participant
// reads a private candidate document plus the shared public document, talks
// it over, and votes. Votes live in the session config and stay overwritable
// until the session ends.
type hiddenProfiles struct {
	*base
}

func (e *hiddenProfiles) ParticipantState(ctx context.Context, sessionCode, participantCode string) (map[string]any, error) {
	p, err := e.store.Participants.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	vote, voted := cfg.Votes()[participantCode]

	state := baseState(p)
	state["assigned_doc"] = cfg.AssignedDoc(participantCode)
	state["public_info"] = cfg.PublicInfo()
	state["candidate_list"] = cfg.CandidateNames()
	state["initiative"] = cfg.Initiatives()[participantCode]
	state["has_voted"] = voted
	if voted {
		state["my_vote"] = vote
	}
	return state, nil
}

func (e *hiddenProfiles) HandleAction(ctx context.Context, sessionCode, participantCode, name string, args map[string]any) (map[string]any, error) {
	switch name {
	case ToolSubmitVote:
		return e.SubmitVote(ctx, sessionCode, participantCode, argString(args, "candidate_name"))
	default:
		return nil, unknownAction(e.kind, name)
	}
}

// SubmitVote records (or overwrites) the participant's vote and broadcasts
// the full vote map. When the session names its candidates, votes outside
// that list are rejected.
func (e *hiddenProfiles) SubmitVote(ctx context.Context, sessionCode, participantCode, candidate string) (map[string]any, error) {
	if candidate == "" {
		return nil, fault.New(fault.InvalidState, "candidate_name is required")
	}
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	if candidates := models.ExperimentConfig(sess.ExperimentConfig).CandidateNames(); len(candidates) > 0 {
		if !slices.Contains(candidates, candidate) {
			return nil, fault.Errorf(fault.InvalidState, "candidate %q is not on the ballot", candidate)
		}
	}

	if err := e.store.Sessions.SetVote(ctx, sessionCode, participantCode, candidate); err != nil {
		return nil, err
	}

	sess, err = e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	votes := models.ExperimentConfig(sess.ExperimentConfig).Votes()
	e.publish(ctx, events.EventTypeVoteUpdate, func() error {
		return e.events.PublishVoteUpdate(ctx, sess.ID, events.VoteUpdatePayload{
			BasePayload: events.Base(events.EventTypeVoteUpdate, sessionCode),
			Voter:       participantCode,
			Candidate:   candidate,
			Votes:       votes,
		})
	})
	return map[string]any{"candidate_name": candidate, "votes": votes}, nil
}

// ReadingPhaseComplete reports whether discussion can begin: the shared
// document is set and every participant holds an assigned candidate document.
func (e *hiddenProfiles) ReadingPhaseComplete(ctx context.Context, sessionCode string) (bool, error) {
	return e.store.Sessions.ReadingPhaseComplete(ctx, sessionCode)
}
