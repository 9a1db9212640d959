package engine

import (
	"context"
	"sort"

	"github.com/behavelab/parley/ent"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// wordGuessing is the hint-and-guess experiment. Hinters hold private word
// lists dealt from the session's word pool; guessers work through the
// combined list one round at a time, where the round is the count of correct
// guesses so far.
type wordGuessing struct {
	*base
}

// AddParticipant balances roles: an explicit role is honoured, otherwise the
// participant joins the smaller side, hinters first on ties so the session
// always has words to guess.
func (e *wordGuessing) AddParticipant(ctx context.Context, sessionCode string, req models.CreateParticipantRequest) (*ent.Participant, error) {
	switch req.Role {
	case "", models.RoleHinter, models.RoleGuesser:
	default:
		return nil, fault.Errorf(fault.InvalidState, "role must be hinter or guesser, got %q", req.Role)
	}
	if req.Role == "" {
		participants, err := e.store.Participants.ListBySession(ctx, sessionCode)
		if err != nil {
			return nil, err
		}
		hinters, guessers := 0, 0
		for _, p := range participants {
			switch p.Role {
			case models.RoleHinter:
				hinters++
			case models.RoleGuesser:
				guessers++
			}
		}
		if hinters <= guessers {
			req.Role = models.RoleHinter
		} else {
			req.Role = models.RoleGuesser
		}
	}
	return e.base.AddParticipant(ctx, sessionCode, req)
}

// StartSession deals the configured word pool out to hinters before the
// session goes active. Hinters are walked in code order so the deal is
// deterministic; a hinter who already has words keeps them.
func (e *wordGuessing) StartSession(ctx context.Context, sessionCode string) (*ent.Session, error) {
	sess, err := e.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	pool := cfg.WordPool()
	per := cfg.WordsPerHinter()

	participants, err := e.store.Participants.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	var hinters []*ent.Participant
	for _, p := range participants {
		if p.Role == models.RoleHinter {
			hinters = append(hinters, p)
		}
	}
	sort.Slice(hinters, func(i, j int) bool {
		return hinters[i].ParticipantCode < hinters[j].ParticipantCode
	})

	next := 0
	for _, h := range hinters {
		if len(h.AssignedWords) > 0 || next >= len(pool) {
			continue
		}
		end := min(next+per, len(pool))
		if err := e.store.Participants.SetAssignedWords(ctx, sessionCode, h.ParticipantCode, pool[next:end]); err != nil {
			return nil, err
		}
		next = end
	}
	return e.base.StartSession(ctx, sessionCode)
}

func (e *wordGuessing) ParticipantState(ctx context.Context, sessionCode, participantCode string) (map[string]any, error) {
	p, err := e.store.Participants.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return nil, err
	}
	round, _, inPlay, err := e.store.Guesses.CurrentRound(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	scores, err := e.store.Guesses.Scores(ctx, sessionCode)
	if err != nil {
		return nil, err
	}

	all, err := e.store.Participants.ListBySession(ctx, sessionCode)
	if err != nil {
		return nil, err
	}
	var hinters, guessers []string
	for _, other := range all {
		switch other.Role {
		case models.RoleHinter:
			hinters = append(hinters, other.ParticipantCode)
		case models.RoleGuesser:
			guessers = append(guessers, other.ParticipantCode)
		}
	}

	state := baseState(p)
	state["role"] = p.Role
	state["current_round"] = round
	state["all_words_guessed"] = !inPlay
	state["scores"] = scores
	state["hinter_participants"] = hinters
	state["guesser_participants"] = guessers
	if p.Role == models.RoleHinter {
		state["assigned_words"] = p.AssignedWords
	}
	return state, nil
}

func (e *wordGuessing) HandleAction(ctx context.Context, sessionCode, participantCode, name string, args map[string]any) (map[string]any, error) {
	switch name {
	case ToolSubmitGuess:
		text := argString(args, "guess_text")
		if text == "" {
			text = argString(args, "text")
		}
		guess, err := e.store.Guesses.SubmitGuess(ctx, sessionCode, participantCode, text)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"guess_id":   guess.ID,
			"guess_text": guess.GuessText,
			"round":      guess.Round,
			"correct":    guess.Correct,
		}, nil

	case ToolGetAssignedWords:
		p, err := e.store.Participants.Get(ctx, sessionCode, participantCode)
		if err != nil {
			return nil, err
		}
		if p.Role != models.RoleHinter {
			return nil, fault.Errorf(fault.InvalidState, "only hinters hold assigned words, %s is a %s", participantCode, p.Role)
		}
		return map[string]any{"assigned_words": p.AssignedWords}, nil

	default:
		return nil, unknownAction(e.kind, name)
	}
}
