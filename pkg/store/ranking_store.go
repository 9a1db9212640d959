package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/essayassignment"
	"github.com/behavelab/parley/ent/rankingsubmission"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// RankingStore manages essay assignments and ranking submissions. Every
// submission is kept as its own row; the merged view lives on the participant
// in current_rankings, where a resubmitted essay overwrites its prior entry.
type RankingStore struct {
	client *database.Client
}

// NewRankingStore creates a new RankingStore.
func NewRankingStore(client *database.Client) *RankingStore {
	return &RankingStore{client: client}
}

// AssignEssay attaches an essay to the session. An empty participantCode
// assigns it to every participant.
func (s *RankingStore) AssignEssay(ctx context.Context, sessionCode, participantCode, title, content, sourceFile string) (*ent.EssayAssignment, error) {
	sess, err := sessionByCode(ctx, s.client.Client, sessionCode)
	if err != nil {
		return nil, err
	}
	if title == "" {
		return nil, fault.New(fault.InvalidState, "essay title is required")
	}
	essay, err := s.client.EssayAssignment.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetParticipantCode(participantCode).
		SetTitle(title).
		SetContent(content).
		SetSourceFile(sourceFile).
		SetWordCount(len(strings.Fields(content))).
		Save(ctx)
	if err != nil {
		return nil, storeErr(err, "assigning essay")
	}
	return essay, nil
}

// AssignedEssays returns the essays visible to a participant: those assigned
// to everyone plus those assigned to them specifically.
func (s *RankingStore) AssignedEssays(ctx context.Context, sessionCode, participantCode string) ([]*ent.EssayAssignment, error) {
	sess, err := sessionByCode(ctx, s.client.Client, sessionCode)
	if err != nil {
		return nil, err
	}
	essays, err := s.client.EssayAssignment.Query().
		Where(
			essayassignment.SessionIDEQ(sess.ID),
			essayassignment.ParticipantCodeIn("", participantCode),
		).
		Order(ent.Asc(essayassignment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing assigned essays")
	}
	return essays, nil
}

// GetEssay loads one essay, verifying the participant is allowed to see it.
func (s *RankingStore) GetEssay(ctx context.Context, sessionCode, participantCode, essayID string) (*ent.EssayAssignment, error) {
	sess, err := sessionByCode(ctx, s.client.Client, sessionCode)
	if err != nil {
		return nil, err
	}
	essay, err := s.client.EssayAssignment.Query().
		Where(
			essayassignment.IDEQ(essayID),
			essayassignment.SessionIDEQ(sess.ID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fault.Errorf(fault.InvalidState, "no essay %q in session %s", essayID, sessionCode)
		}
		return nil, storeErr(err, "loading essay")
	}
	if essay.ParticipantCode != "" && essay.ParticipantCode != participantCode {
		return nil, fault.Errorf(fault.InvalidState, "essay %q is not assigned to %s", essayID, participantCode)
	}
	return essay, nil
}

// SubmitRanking records a ranking submission and merges it into the
// participant's current_rankings, returning the submission row and the
// merged snapshot. Ranks must be unique within the submission and every
// referenced essay must be assigned to the participant. Partial rankings are
// allowed and later submissions overwrite per essay.
func (s *RankingStore) SubmitRanking(ctx context.Context, sessionCode, participantCode string, rankings []models.EssayRanking) (*ent.RankingSubmission, map[string]interface{}, error) {
	if len(rankings) == 0 {
		return nil, nil, fault.New(fault.InvalidState, "rankings list is empty")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := txSessionByCode(ctx, tx, sessionCode)
	if err != nil {
		return nil, nil, err
	}
	p, err := lockParticipant(ctx, tx, sess.ID, participantCode)
	if err != nil {
		return nil, nil, err
	}

	assigned, err := tx.EssayAssignment.Query().
		Where(
			essayassignment.SessionIDEQ(sess.ID),
			essayassignment.ParticipantCodeIn("", participantCode),
		).
		All(ctx)
	if err != nil {
		return nil, nil, storeErr(err, "listing assigned essays")
	}
	allowed := map[string]bool{}
	for _, e := range assigned {
		allowed[e.ID] = true
	}

	seenRank := map[int]bool{}
	seenEssay := map[string]bool{}
	for _, r := range rankings {
		if !allowed[r.EssayID] {
			return nil, nil, fault.Errorf(fault.InvalidState, "essay %q is not in your assignment", r.EssayID)
		}
		if seenEssay[r.EssayID] {
			return nil, nil, fault.Errorf(fault.InvalidState, "essay %q ranked twice in one submission", r.EssayID)
		}
		if seenRank[r.Rank] {
			return nil, nil, fault.Errorf(fault.InvalidState, "rank %d used twice in one submission", r.Rank)
		}
		seenEssay[r.EssayID] = true
		seenRank[r.Rank] = true
	}

	raw := make([]map[string]interface{}, 0, len(rankings))
	for _, r := range rankings {
		raw = append(raw, map[string]interface{}{
			"essay_id":  r.EssayID,
			"rank":      r.Rank,
			"reasoning": r.Reasoning,
		})
	}
	sub, err := tx.RankingSubmission.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetParticipantID(p.ID).
		SetEssayRankings(raw).
		Save(ctx)
	if err != nil {
		return nil, nil, storeErr(err, "recording submission")
	}

	merged := p.CurrentRankings
	if merged == nil {
		merged = map[string]interface{}{}
	}
	for _, r := range rankings {
		merged[r.EssayID] = map[string]interface{}{
			"rank":      r.Rank,
			"reasoning": r.Reasoning,
		}
	}
	if err := tx.Participant.UpdateOne(p).SetCurrentRankings(merged).Exec(ctx); err != nil {
		return nil, nil, storeErr(err, "merging rankings")
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, storeErr(err, "committing ranking")
	}
	return sub, merged, nil
}

// Submissions returns a participant's raw submission history, oldest first.
func (s *RankingStore) Submissions(ctx context.Context, sessionCode, participantCode string) ([]*ent.RankingSubmission, error) {
	p, err := participantByCode(ctx, s.client.Client, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	subs, err := s.client.RankingSubmission.Query().
		Where(rankingsubmission.ParticipantIDEQ(p.ID)).
		Order(ent.Asc(rankingsubmission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "loading submissions")
	}
	return subs, nil
}

// ListBySession returns every ranking submission of the session, oldest
// first, with the participant edge loaded.
func (s *RankingStore) ListBySession(ctx context.Context, sessionCode string) ([]*ent.RankingSubmission, error) {
	if err := requireScope(sessionCode); err != nil {
		return nil, err
	}
	subs, err := s.client.RankingSubmission.Query().
		Where(rankingsubmission.HasSessionWith(session.SessionCodeEQ(sessionCode))).
		WithParticipant().
		Order(ent.Asc(rankingsubmission.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing ranking submissions")
	}
	return subs, nil
}
