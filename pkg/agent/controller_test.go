package agent

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/llm"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
	"github.com/behavelab/parley/pkg/tools"
	testdb "github.com/behavelab/parley/test/database"
)

// scriptedLLM replays canned replies and records every prompt it saw.
type scriptedLLM struct {
	replies []string
	calls   [][]llm.ToolCall
	err     error

	systems []string
	users   []string
}

func (s *scriptedLLM) DecidePlain(_ context.Context, system, user string) (string, error) {
	s.systems = append(s.systems, system)
	s.users = append(s.users, user)
	if s.err != nil {
		err := s.err
		s.err = nil
		return "", err
	}
	if len(s.replies) == 0 {
		return "", nil
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func (s *scriptedLLM) DecideWithTools(_ context.Context, system, user string, _ []llm.Tool) ([]llm.ToolCall, error) {
	s.systems = append(s.systems, system)
	s.users = append(s.users, user)
	if s.err != nil {
		err := s.err
		s.err = nil
		return nil, err
	}
	if len(s.calls) == 0 {
		return nil, nil
	}
	calls := s.calls[0]
	s.calls = s.calls[1:]
	return calls, nil
}

func (s *scriptedLLM) Model() string { return "scripted-test-model" }

type testRig struct {
	store    *store.Store
	engines  *engine.Factory
	dispatch *tools.Dispatcher
	code     string
}

func newTestRig(t *testing.T, kind models.ExperimentType, cfg models.ExperimentConfig, participants ...models.CreateParticipantRequest) *testRig {
	t.Helper()
	ctx := context.Background()

	client := testdb.NewTestClient(t)
	st := store.New(client)
	engines := engine.NewFactory(st, events.NewEventPublisher(client.DB()), nil)

	eng, err := engines.ForType(kind)
	require.NoError(t, err)

	code := fmt.Sprintf("A%s", strings.ToUpper(uuid.NewString()[:6]))
	_, err = eng.CreateSession(ctx, models.CreateSessionRequest{
		SessionCode:    code,
		ExperimentType: kind,
		Config:         cfg,
	})
	require.NoError(t, err)
	for _, p := range participants {
		_, err := eng.AddParticipant(ctx, code, p)
		require.NoError(t, err)
	}
	_, err = eng.StartSession(ctx, code)
	require.NoError(t, err)

	return &testRig{store: st, engines: engines, dispatch: tools.NewDispatcher(engines), code: code}
}

func (r *testRig) controller(participant string, kind models.ExperimentType, client llm.Client, planJSON bool) *Controller {
	return NewController(Config{
		SessionCode:     r.code,
		ParticipantCode: participant,
		Kind:            kind,
		LLM:             client,
		Engines:         r.engines,
		Dispatcher:      r.dispatch,
		PlanJSON:        planJSON,
	})
}

func shapeParticipants() []models.CreateParticipantRequest {
	return []models.CreateParticipantRequest{
		{ParticipantCode: "Alice", Type: models.ParticipantAgent, SpecialtyShape: "circle"},
		{ParticipantCode: "Bob", Type: models.ParticipantAgent, SpecialtyShape: "square"},
	}
}

func TestController_Tick_PlanJSON_ActsOnStore(t *testing.T) {
	rig := newTestRig(t, models.ExperimentShapeFactory, nil, shapeParticipants()...)
	ctx := context.Background()

	client := &scriptedLLM{replies: []string{
		`{"actions":[
			{"type":"propose_trade_offer","recipient":"Bob","offer_type":"sell","shape":"circle","quantity":1,"price_per_unit":50},
			{"type":"message","recipient":"Bob","content":"offer is out"}
		]}`,
	}}
	c := rig.controller("Alice", models.ExperimentShapeFactory, client, true)

	require.NoError(t, c.Tick(ctx))

	pending, err := rig.store.Trades.PendingFor(ctx, rig.code, "Alice")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Alice", pending[0].Proposer)
	assert.Equal(t, 35, pending[0].PricePerUnit, "plan price 50 clamped into the band before dispatch")

	unread, err := rig.store.Messages.Unread(ctx, rig.code, "Bob")
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "offer is out", unread[0].Content)

	entries := c.Memory().Entries()
	require.GreaterOrEqual(t, len(entries), 4)
	assert.Equal(t, RoleUser, entries[0].Role)
	assert.Contains(t, entries[0].Content, "STATUS UPDATE")
	assert.Contains(t, entries[1].Content, `"actions"`)
	assert.Contains(t, entries[2].Content, "SUCCESSFUL ACTION: create_trade_offer")
	assert.Contains(t, entries[3].Content, "SUCCESSFUL ACTION: send_message")

	require.Len(t, client.systems, 1)
	assert.Contains(t, client.systems[0], "You are participant Alice")
	assert.Contains(t, client.systems[0], `{"actions"`, "plan mode advertises the JSON format")
}

func TestController_Tick_EmptyReplyMeansNoAction(t *testing.T) {
	rig := newTestRig(t, models.ExperimentShapeFactory, nil, shapeParticipants()...)
	ctx := context.Background()

	client := &scriptedLLM{replies: []string{"I will wait and observe for now."}}
	c := rig.controller("Alice", models.ExperimentShapeFactory, client, true)

	require.NoError(t, c.Tick(ctx))

	pending, err := rig.store.Trades.PendingFor(ctx, rig.code, "Alice")
	require.NoError(t, err)
	assert.Empty(t, pending, "no plan, no actions")

	entries := c.Memory().Entries()
	require.Len(t, entries, 2, "status update and the raw reply only")
	assert.Equal(t, "I will wait and observe for now.", entries[1].Content)
}

func TestController_Tick_MarksPerceivedMessagesRead(t *testing.T) {
	rig := newTestRig(t, models.ExperimentShapeFactory, nil, shapeParticipants()...)
	ctx := context.Background()

	alice := "Alice"
	_, err := rig.store.Messages.Create(ctx, rig.code, "Bob", &alice, "ping", models.MessageTypeChat)
	require.NoError(t, err)

	client := &scriptedLLM{replies: []string{"nothing to do"}}
	c := rig.controller("Alice", models.ExperimentShapeFactory, client, true)

	require.NoError(t, c.Tick(ctx))

	assert.Contains(t, client.users[0], "From Bob:\n    ping", "the unread message reached the status update")

	unread, err := rig.store.Messages.Unread(ctx, rig.code, "Alice")
	require.NoError(t, err)
	assert.Empty(t, unread, "perceived messages are consumed")
}

func TestController_Tick_FunctionMode(t *testing.T) {
	rig := newTestRig(t, models.ExperimentShapeFactory, nil, shapeParticipants()...)
	ctx := context.Background()

	client := &scriptedLLM{calls: [][]llm.ToolCall{{
		{Name: engine.ToolProduceShape, Arguments: map[string]any{"shape": "circle", "quantity": 1.0}},
	}}}
	c := rig.controller("Alice", models.ExperimentShapeFactory, client, false)

	require.NoError(t, c.Tick(ctx))

	queue, err := rig.store.Production.QueueFor(ctx, rig.code, "Alice")
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "circle", queue[0].Shape)

	assert.NotContains(t, client.systems[0], `{"actions"`, "function mode leaves the plan format out")
}

func TestController_FailuresFeedTheNextStatusUpdate(t *testing.T) {
	rig := newTestRig(t, models.ExperimentShapeFactory, nil, shapeParticipants()...)
	ctx := context.Background()

	client := &scriptedLLM{replies: []string{
		`{"actions":[{"type":"produce_shape","shape":"hexagon","quantity":1}]}`,
		"observing",
	}}
	c := rig.controller("Alice", models.ExperimentShapeFactory, client, true)

	require.NoError(t, c.Tick(ctx))

	entries := c.Memory().Entries()
	last := entries[len(entries)-1]
	assert.Contains(t, last.Content, "FAILED ACTION: produce_shape")
	assert.Contains(t, last.Content, string(fault.InvalidShape))

	require.NoError(t, c.Tick(ctx))
	assert.Contains(t, client.users[1], "Recent failed actions")
	assert.Contains(t, client.users[1], "produce_shape")
}

func TestController_LLMErrorIsRecoverable(t *testing.T) {
	rig := newTestRig(t, models.ExperimentShapeFactory, nil, shapeParticipants()...)
	ctx := context.Background()

	client := &scriptedLLM{err: fault.New(fault.LLMError, "rate limited"), replies: []string{"ok now"}}
	c := rig.controller("Alice", models.ExperimentShapeFactory, client, true)

	require.NoError(t, c.Tick(ctx), "an LLM failure never aborts the loop")

	require.NoError(t, c.Tick(ctx))
	assert.Contains(t, client.users[1], "llm_decide", "the failure shows up in the next status update")
}

func hiddenProfilesConfig() models.ExperimentConfig {
	return models.ExperimentConfig{
		models.KeyHiddenProfiles: map[string]any{
			models.KeyCandidates: []any{"Candidate_A", "Candidate_B"},
			models.KeyPublicInfo: "Both candidates applied for the same grant.",
			models.KeyAssignedDocs: map[string]any{
				"P1": "Candidate_A rescued a cat.",
				"P2": "Candidate_B wrote a book.",
			},
		},
	}
}

func TestController_FinalVoteCycle(t *testing.T) {
	rig := newTestRig(t, models.ExperimentHiddenProfiles, hiddenProfilesConfig(),
		models.CreateParticipantRequest{ParticipantCode: "P1", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "P2", Type: models.ParticipantAgent},
	)
	ctx := context.Background()

	t.Run("no vote produced is a warning, not an invention", func(t *testing.T) {
		client := &scriptedLLM{replies: []string{"I abstain."}}
		c := rig.controller("P1", models.ExperimentHiddenProfiles, client, true)

		assert.False(t, c.FinalVoteCycle(ctx))

		sess, err := rig.store.Sessions.GetByCode(ctx, rig.code)
		require.NoError(t, err)
		votes := models.ExperimentConfig(sess.ExperimentConfig).Votes()
		assert.NotContains(t, votes, "P1", "no vote is synthesised")
	})

	t.Run("vote in the final cycle is executed", func(t *testing.T) {
		client := &scriptedLLM{replies: []string{
			`{"actions":[{"type":"submit_vote","candidate_name":"Candidate_B"},{"type":"message","recipient":"P2","content":"voted"}]}`,
		}}
		c := rig.controller("P1", models.ExperimentHiddenProfiles, client, true)

		assert.True(t, c.FinalVoteCycle(ctx))

		sess, err := rig.store.Sessions.GetByCode(ctx, rig.code)
		require.NoError(t, err)
		votes := models.ExperimentConfig(sess.ExperimentConfig).Votes()
		assert.Equal(t, "Candidate_B", votes["P1"])

		unread, err := rig.store.Messages.Unread(ctx, rig.code, "P2")
		require.NoError(t, err)
		assert.Empty(t, unread, "non-vote actions are dropped in the final cycle")
	})

	t.Run("already voted short-circuits without an LLM call", func(t *testing.T) {
		client := &scriptedLLM{}
		c := rig.controller("P1", models.ExperimentHiddenProfiles, client, true)

		assert.True(t, c.FinalVoteCycle(ctx))
		assert.Empty(t, client.users, "no decide call was made")
	})

	t.Run("non hiddenprofiles kinds are a no-op", func(t *testing.T) {
		c := rig.controller("P1", models.ExperimentShapeFactory, &scriptedLLM{}, true)
		assert.True(t, c.FinalVoteCycle(ctx))
	})
}

func TestController_VotePromptAppearsAfterReading(t *testing.T) {
	rig := newTestRig(t, models.ExperimentHiddenProfiles, hiddenProfilesConfig(),
		models.CreateParticipantRequest{ParticipantCode: "P1", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "P2", Type: models.ParticipantAgent},
	)
	ctx := context.Background()

	client := &scriptedLLM{replies: []string{
		"thinking",
		`{"actions":[{"type":"submit_vote","candidate_name":"Candidate_A"}]}`,
		"done",
	}}
	c := rig.controller("P1", models.ExperimentHiddenProfiles, client, true)

	// Reading is complete (publicInfo and every doc assigned), no vote yet:
	// the prompt demands one.
	require.NoError(t, c.Tick(ctx))
	assert.Contains(t, client.users[0], "VOTE REQUIRED")

	require.NoError(t, c.Tick(ctx))

	// A cast vote silences the demand while time remains. Earlier demands
	// still live in remembered turns, so compare positions: nothing may
	// follow the newest status update header.
	require.NoError(t, c.Tick(ctx))
	transcript := client.users[2]
	assert.Contains(t, transcript, "Your current vote: Candidate_A")
	assert.Less(t,
		strings.LastIndex(transcript, "VOTE REQUIRED"),
		strings.LastIndex(transcript, "STATUS UPDATE"),
		"no vote demand in the newest status update")
}
