package store

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/wordguess"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// GuessStore records WordGuessing guesses. The current round is the number of
// correct guesses so far, and the round's target word comes from the hinters'
// combined word lists; both are derived, never stored.
type GuessStore struct {
	client *database.Client
}

// NewGuessStore creates a new GuessStore.
func NewGuessStore(client *database.Client) *GuessStore {
	return &GuessStore{client: client}
}

// SubmitGuess records a guesser's attempt at the current round's word. The
// session row is locked so concurrent guesses agree on the round they are
// guessing in: a correct guess advances the round for everyone after it.
func (s *GuessStore) SubmitGuess(ctx context.Context, sessionCode, participantCode, text string) (*ent.WordGuess, error) {
	guess := strings.TrimSpace(text)
	if guess == "" {
		return nil, fault.New(fault.InvalidState, "guess text is empty")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, storeErr(err, "starting transaction")
	}
	defer func() { _ = tx.Rollback() }()

	sess, err := lockSession(ctx, tx, sessionCode)
	if err != nil {
		return nil, err
	}
	participants, err := tx.Participant.Query().
		Where(participant.SessionIDEQ(sess.ID)).
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "listing participants")
	}

	var guesser *ent.Participant
	for _, p := range participants {
		if p.ParticipantCode == participantCode {
			guesser = p
			break
		}
	}
	if guesser == nil {
		return nil, fault.Errorf(fault.ParticipantNotFound, "no participant %q in session %s", participantCode, sessionCode)
	}
	if guesser.Role != models.RoleGuesser {
		return nil, fault.Errorf(fault.InvalidState, "only guessers may submit guesses, %s is a %s", participantCode, guesser.Role)
	}

	round, err := tx.WordGuess.Query().
		Where(
			wordguess.SessionIDEQ(sess.ID),
			wordguess.CorrectEQ(true),
		).
		Count(ctx)
	if err != nil {
		return nil, storeErr(err, "counting correct guesses")
	}

	words := roundWords(participants)
	if round >= len(words) {
		return nil, fault.New(fault.InvalidState, "all words have been guessed")
	}
	correct := strings.EqualFold(guess, words[round])

	row, err := tx.WordGuess.Create().
		SetID(uuid.NewString()).
		SetSessionID(sess.ID).
		SetParticipantID(guesser.ID).
		SetGuessText(guess).
		SetRound(round).
		SetCorrect(correct).
		Save(ctx)
	if err != nil {
		return nil, storeErr(err, "recording guess")
	}
	if err := tx.Commit(); err != nil {
		return nil, storeErr(err, "committing guess")
	}
	return row, nil
}

// CurrentRound returns the round in play and the word to guess. ok is false
// once every word has been guessed.
func (s *GuessStore) CurrentRound(ctx context.Context, sessionCode string) (round int, word string, ok bool, err error) {
	sess, err := sessionByCode(ctx, s.client.Client, sessionCode)
	if err != nil {
		return 0, "", false, err
	}
	round, err = s.client.WordGuess.Query().
		Where(
			wordguess.SessionIDEQ(sess.ID),
			wordguess.CorrectEQ(true),
		).
		Count(ctx)
	if err != nil {
		return 0, "", false, storeErr(err, "counting correct guesses")
	}
	participants, err := s.client.Participant.Query().
		Where(participant.SessionIDEQ(sess.ID)).
		All(ctx)
	if err != nil {
		return 0, "", false, storeErr(err, "listing participants")
	}
	words := roundWords(participants)
	if round >= len(words) {
		return round, "", false, nil
	}
	return round, words[round], true, nil
}

// Scores returns correct-guess counts per guesser.
func (s *GuessStore) Scores(ctx context.Context, sessionCode string) (map[string]int, error) {
	sess, err := sessionByCode(ctx, s.client.Client, sessionCode)
	if err != nil {
		return nil, err
	}
	correct, err := s.client.WordGuess.Query().
		Where(
			wordguess.SessionIDEQ(sess.ID),
			wordguess.CorrectEQ(true),
		).
		WithParticipant().
		All(ctx)
	if err != nil {
		return nil, storeErr(err, "loading correct guesses")
	}
	scores := map[string]int{}
	for _, g := range correct {
		if g.Edges.Participant != nil {
			scores[g.Edges.Participant.ParticipantCode]++
		}
	}
	return scores, nil
}

// History returns the latest guesses, oldest first.
func (s *GuessStore) History(ctx context.Context, sessionCode string, limit int) ([]*ent.WordGuess, error) {
	sess, err := sessionByCode(ctx, s.client.Client, sessionCode)
	if err != nil {
		return nil, err
	}
	q := s.client.WordGuess.Query().
		Where(wordguess.SessionIDEQ(sess.ID)).
		WithParticipant().
		Order(ent.Desc(wordguess.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	guesses, err := q.All(ctx)
	if err != nil {
		return nil, storeErr(err, "loading guess history")
	}
	for i, j := 0, len(guesses)-1; i < j; i, j = i+1, j-1 {
		guesses[i], guesses[j] = guesses[j], guesses[i]
	}
	return guesses, nil
}

// roundWords is the session's word sequence: hinters sorted by code, each
// contributing their assigned words in order.
func roundWords(participants []*ent.Participant) []string {
	var hinters []*ent.Participant
	for _, p := range participants {
		if p.Role == models.RoleHinter {
			hinters = append(hinters, p)
		}
	}
	sort.Slice(hinters, func(i, j int) bool {
		return hinters[i].ParticipantCode < hinters[j].ParticipantCode
	})
	var words []string
	for _, h := range hinters {
		words = append(words, h.AssignedWords...)
	}
	return words
}
