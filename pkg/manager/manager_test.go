package manager

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

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

// countingLLM counts decide calls and replays queued tool calls. Agents of
// one manager share a single client, so it is safe for concurrent use.
type countingLLM struct {
	calls     atomic.Int64
	panicNext atomic.Bool

	mu     sync.Mutex
	queued [][]llm.ToolCall
}

func (c *countingLLM) push(calls ...llm.ToolCall) {
	c.mu.Lock()
	c.queued = append(c.queued, calls)
	c.mu.Unlock()
}

func (c *countingLLM) DecidePlain(context.Context, string, string) (string, error) {
	c.calls.Add(1)
	return "", nil
}

func (c *countingLLM) DecideWithTools(context.Context, string, string, []llm.Tool) ([]llm.ToolCall, error) {
	c.calls.Add(1)
	if c.panicNext.CompareAndSwap(true, false) {
		panic("scripted decide panic")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queued) == 0 {
		return nil, nil
	}
	calls := c.queued[0]
	c.queued = c.queued[1:]
	return calls, nil
}

func (c *countingLLM) Model() string { return "counting-test-model" }

type managerRig struct {
	store   *store.Store
	engines *engine.Factory
	mgr     *Manager
	llm     *countingLLM
	code    string
}

func newManagerRig(t *testing.T, kind models.ExperimentType, cfg models.ExperimentConfig, participants ...models.CreateParticipantRequest) *managerRig {
	t.Helper()
	ctx := context.Background()

	client := testdb.NewTestClient(t)
	st := store.New(client)
	engines := engine.NewFactory(st, events.NewEventPublisher(client.DB()), nil)

	eng, err := engines.ForType(kind)
	require.NoError(t, err)

	code := fmt.Sprintf("M%s", strings.ToUpper(uuid.NewString()[:6]))
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

	counting := &countingLLM{}
	mgr := New(Config{
		Engines:    engines,
		Dispatcher: tools.NewDispatcher(engines),
		LLM:        counting,
	})
	t.Cleanup(func() { mgr.StopAll(context.Background()) })

	return &managerRig{store: st, engines: engines, mgr: mgr, llm: counting, code: code}
}

// slowWindow keeps interval ticks from firing during trigger-focused tests.
const slowWindow = 300

// hiddenProfilesSetup builds a HiddenProfiles config with a candidate pair.
// Assigned documents are created for the named participants; pass every
// participant of the session to make the reading phase completable.
func hiddenProfilesSetup(docsFor ...string) models.ExperimentConfig {
	hp := map[string]any{
		models.KeyCandidates: []any{"Candidate_A", "Candidate_B"},
	}
	if len(docsFor) > 0 {
		docs := map[string]any{}
		for _, p := range docsFor {
			docs[p] = "private notes for " + p
		}
		hp[models.KeyPublicInfo] = "Both candidates applied for the same grant."
		hp[models.KeyAssignedDocs] = docs
	}
	return models.ExperimentConfig{
		models.KeyPerceptionWindow: slowWindow,
		models.KeyHiddenProfiles:   hp,
	}
}

func TestManager_StartSessionAgents_LaunchesOnlyAgentParticipants(t *testing.T) {
	rig := newManagerRig(t, models.ExperimentShapeFactory,
		models.ExperimentConfig{models.KeyPerceptionWindow: slowWindow},
		models.CreateParticipantRequest{ParticipantCode: "Alice", Type: models.ParticipantAgent, SpecialtyShape: "circle"},
		models.CreateParticipantRequest{ParticipantCode: "Bob", Type: models.ParticipantAgent, SpecialtyShape: "square"},
		models.CreateParticipantRequest{ParticipantCode: "carol", Type: models.ParticipantHuman, SpecialtyShape: "triangle"},
	)
	ctx := context.Background()

	n, err := rig.mgr.StartSessionAgents(ctx, rig.code)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "humans are not scheduled")

	health := rig.mgr.Health()
	assert.Equal(t, 2, health.AgentCount)
	assert.Equal(t, 1, health.SessionCount)
	require.Len(t, health.Agents, 2)
	assert.Equal(t, Key(rig.code, "Alice"), health.Agents[0].AgentKey, "snapshot is ordered by agent key")
	assert.Equal(t, models.InitiativeActive, health.Agents[0].Initiative, "shapefactory agents are always active")

	n, err = rig.mgr.StartSessionAgents(ctx, rig.code)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "a repeat start counts running agents as scheduled")
	assert.Equal(t, 2, rig.mgr.Health().AgentCount, "duplicate starts do not double-register")

	assert.Equal(t, 2, rig.mgr.StopSessionAgents(ctx, rig.code))
	assert.Zero(t, rig.mgr.Health().AgentCount)
}

func TestManager_StartAgent_RejectsBadTargets(t *testing.T) {
	rig := newManagerRig(t, models.ExperimentShapeFactory,
		models.ExperimentConfig{models.KeyPerceptionWindow: slowWindow},
		models.CreateParticipantRequest{ParticipantCode: "Alice", Type: models.ParticipantAgent, SpecialtyShape: "circle"},
		models.CreateParticipantRequest{ParticipantCode: "carol", Type: models.ParticipantHuman, SpecialtyShape: "square"},
	)
	ctx := context.Background()

	err := rig.mgr.StartAgent(ctx, rig.code, "ghost", "")
	assert.Equal(t, fault.ParticipantNotFound, fault.KindOf(err))

	err = rig.mgr.StartAgent(ctx, rig.code, "carol", "")
	assert.Equal(t, fault.InvalidState, fault.KindOf(err), "humans cannot be scheduled")

	err = rig.mgr.StartAgent(ctx, "NOSUCH1", "Alice", "")
	assert.Equal(t, fault.SessionNotFound, fault.KindOf(err))

	// A session that was never started refuses agents.
	eng, err := rig.engines.ForType(models.ExperimentShapeFactory)
	require.NoError(t, err)
	idle := fmt.Sprintf("M%s", strings.ToUpper(uuid.NewString()[:6]))
	_, err = eng.CreateSession(ctx, models.CreateSessionRequest{
		SessionCode:    idle,
		ExperimentType: models.ExperimentShapeFactory,
	})
	require.NoError(t, err)
	_, err = eng.AddParticipant(ctx, idle, models.CreateParticipantRequest{
		ParticipantCode: "Dave", Type: models.ParticipantAgent, SpecialtyShape: "triangle",
	})
	require.NoError(t, err)
	err = rig.mgr.StartAgent(ctx, idle, "Dave", "")
	assert.Equal(t, fault.InvalidState, fault.KindOf(err))

	rig.mgr.StopAll(ctx)
	err = rig.mgr.StartAgent(ctx, rig.code, "Alice", "")
	assert.Equal(t, fault.InvalidState, fault.KindOf(err), "a stopped manager refuses new agents")
}

func TestManager_ActiveAgentTicksOnItsOwn(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock ticker test")
	}
	rig := newManagerRig(t, models.ExperimentShapeFactory,
		models.ExperimentConfig{models.KeyPerceptionWindow: 1},
		models.CreateParticipantRequest{ParticipantCode: "Alice", Type: models.ParticipantAgent, SpecialtyShape: "circle"},
	)
	ctx := context.Background()

	require.NoError(t, rig.mgr.StartAgent(ctx, rig.code, "Alice", ""))

	require.Eventually(t, func() bool { return rig.llm.calls.Load() >= 1 },
		6*time.Second, 100*time.Millisecond, "an active agent cycles without any trigger")
	require.Eventually(t, func() bool {
		h := rig.mgr.Health()
		return len(h.Agents) == 1 && h.Agents[0].Cycles >= 1 && !h.Agents[0].LastCycle.IsZero()
	}, 3*time.Second, 100*time.Millisecond, "cycles surface in the health snapshot")
}

func TestManager_PassiveAgentWakesOnlyOnTriggers(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock scheduling test")
	}
	cfg := hiddenProfilesSetup()
	cfg[models.KeyPerceptionWindow] = 1
	rig := newManagerRig(t, models.ExperimentHiddenProfiles, cfg,
		models.CreateParticipantRequest{ParticipantCode: "P1", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "P2", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "human1", Type: models.ParticipantHuman},
	)
	ctx := context.Background()

	require.NoError(t, rig.mgr.StartAgent(ctx, rig.code, "P1", models.InitiativePassive))
	require.NoError(t, rig.mgr.StartAgent(ctx, rig.code, "P2", models.InitiativePassive))

	health := rig.mgr.Health()
	require.Len(t, health.Agents, 2)
	assert.Equal(t, models.InitiativePassive, health.Agents[0].Initiative)

	// No documents are uploaded yet, so this must not wake anyone either.
	rig.mgr.NotifyReadingPhase(ctx, rig.code)

	require.Never(t, func() bool { return rig.llm.calls.Load() > 0 },
		2500*time.Millisecond, 100*time.Millisecond, "passive agents have no ticker")

	rig.mgr.NotifyMessage(rig.code, "human1", "P1")
	require.Eventually(t, func() bool { return rig.llm.calls.Load() == 1 },
		3*time.Second, 50*time.Millisecond, "a direct message wakes the passive recipient")

	rig.mgr.NotifyMessage(rig.code, "P1", engine.BroadcastRecipient)
	require.Eventually(t, func() bool { return rig.llm.calls.Load() == 2 },
		3*time.Second, 50*time.Millisecond, "a broadcast wakes every passive agent except the sender")

	assert.Never(t, func() bool { return rig.llm.calls.Load() > 2 },
		1200*time.Millisecond, 100*time.Millisecond, "the sender is not rewoken by its own broadcast")
}

func TestManager_AgentMessagesWakePassiveRecipients(t *testing.T) {
	rig := newManagerRig(t, models.ExperimentHiddenProfiles, hiddenProfilesSetup(),
		models.CreateParticipantRequest{ParticipantCode: "P1", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "P2", Type: models.ParticipantAgent},
	)
	ctx := context.Background()

	require.NoError(t, rig.mgr.StartAgent(ctx, rig.code, "P2", models.InitiativePassive))

	res := rig.mgr.dispatch.Execute(ctx, rig.code, "P1", tools.ToolSendMessage,
		map[string]any{"recipient": "P2", "content": "have you read the public brief?"})
	require.True(t, res.Success, res.Message)

	require.Eventually(t, func() bool { return rig.llm.calls.Load() >= 1 },
		3*time.Second, 50*time.Millisecond, "a send through the dispatcher wakes the recipient")

	require.Eventually(t, func() bool {
		unread, err := rig.store.Messages.Unread(ctx, rig.code, "P2")
		return err == nil && len(unread) == 0
	}, 3*time.Second, 50*time.Millisecond, "the woken cycle perceives and marks the message read")
}

func TestManager_CoercedBroadcastWakesAllPassiveAgents(t *testing.T) {
	cfg := hiddenProfilesSetup()
	cfg[models.KeyCommunicationLevel] = "broadcast"
	rig := newManagerRig(t, models.ExperimentHiddenProfiles, cfg,
		models.CreateParticipantRequest{ParticipantCode: "P1", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "P2", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "P3", Type: models.ParticipantAgent},
	)
	ctx := context.Background()

	require.NoError(t, rig.mgr.StartAgent(ctx, rig.code, "P2", models.InitiativePassive))
	require.NoError(t, rig.mgr.StartAgent(ctx, rig.code, "P3", models.InitiativePassive))

	// P1 addresses P2 directly, but the broadcast session delivers the
	// message to everyone; the wake-up must follow the delivery.
	res := rig.mgr.dispatch.Execute(ctx, rig.code, "P1", tools.ToolSendMessage,
		map[string]any{"recipient": "P2", "content": "who holds the budget figures?"})
	require.True(t, res.Success, res.Message)

	require.Eventually(t, func() bool { return rig.llm.calls.Load() == 2 },
		3*time.Second, 50*time.Millisecond, "every passive agent except the sender wakes")
}

func TestManager_NotifyReadingPhase_FiresOnce(t *testing.T) {
	rig := newManagerRig(t, models.ExperimentHiddenProfiles,
		hiddenProfilesSetup("P1", "P2", "human1"),
		models.CreateParticipantRequest{ParticipantCode: "P1", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "P2", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "human1", Type: models.ParticipantHuman},
	)
	ctx := context.Background()

	require.NoError(t, rig.mgr.StartAgent(ctx, rig.code, "P1", models.InitiativePassive))
	require.NoError(t, rig.mgr.StartAgent(ctx, rig.code, "P2", models.InitiativeActive))

	rig.mgr.NotifyReadingPhase(ctx, rig.code)
	require.Eventually(t, func() bool { return rig.llm.calls.Load() == 2 },
		4*time.Second, 50*time.Millisecond, "every session agent runs one cycle, active included")

	rig.mgr.NotifyReadingPhase(ctx, rig.code)
	assert.Never(t, func() bool { return rig.llm.calls.Load() > 2 },
		1200*time.Millisecond, 100*time.Millisecond, "the reading trigger fires once per session")
}

func TestManager_StopAgent_FinalVoteAndInitiativeCleanup(t *testing.T) {
	rig := newManagerRig(t, models.ExperimentHiddenProfiles,
		hiddenProfilesSetup("P1", "P2"),
		models.CreateParticipantRequest{ParticipantCode: "P1", Type: models.ParticipantAgent},
		models.CreateParticipantRequest{ParticipantCode: "P2", Type: models.ParticipantAgent},
	)
	ctx := context.Background()

	rig.llm.push(llm.ToolCall{Name: engine.ToolSubmitVote, Arguments: map[string]any{"candidate_name": "Candidate_A"}})

	require.NoError(t, rig.mgr.StartAgent(ctx, rig.code, "P1", models.InitiativePassive))

	sess, err := rig.store.Sessions.GetByCode(ctx, rig.code)
	require.NoError(t, err)
	assert.Equal(t, models.InitiativePassive,
		models.ExperimentConfig(sess.ExperimentConfig).Initiatives()["P1"],
		"starting records the initiative in the session config")

	rig.mgr.StopAgent(ctx, rig.code, "P1")

	assert.Zero(t, rig.mgr.Health().AgentCount)
	assert.EqualValues(t, 1, rig.llm.calls.Load(), "the shutdown cycle demanded one decision")

	sess, err = rig.store.Sessions.GetByCode(ctx, rig.code)
	require.NoError(t, err)
	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	assert.Equal(t, "Candidate_A", cfg.Votes()["P1"], "the final vote landed before shutdown")
	assert.NotContains(t, cfg.Initiatives(), "P1", "stopping clears the initiative entry")
}

func TestManager_HandleSessionCompleted_StopsSessionAgents(t *testing.T) {
	rig := newManagerRig(t, models.ExperimentShapeFactory,
		models.ExperimentConfig{models.KeyPerceptionWindow: slowWindow},
		models.CreateParticipantRequest{ParticipantCode: "Alice", Type: models.ParticipantAgent, SpecialtyShape: "circle"},
		models.CreateParticipantRequest{ParticipantCode: "Bob", Type: models.ParticipantAgent, SpecialtyShape: "square"},
	)
	ctx := context.Background()

	n, err := rig.mgr.StartSessionAgents(ctx, rig.code)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	rig.mgr.HandleSessionCompleted(rig.code)

	require.Eventually(t, func() bool { return rig.mgr.Health().AgentCount == 0 },
		5*time.Second, 50*time.Millisecond, "completion deactivates the session's agents")
	assert.Zero(t, rig.llm.calls.Load(), "shapefactory agents have no final-vote cycle")
}

func TestManager_CrashedControllerIsContained(t *testing.T) {
	if testing.Short() {
		t.Skip("wall-clock ticker test")
	}
	rig := newManagerRig(t, models.ExperimentShapeFactory,
		models.ExperimentConfig{models.KeyPerceptionWindow: 1},
		models.CreateParticipantRequest{ParticipantCode: "Alice", Type: models.ParticipantAgent, SpecialtyShape: "circle"},
		models.CreateParticipantRequest{ParticipantCode: "Bob", Type: models.ParticipantAgent, SpecialtyShape: "square"},
	)
	ctx := context.Background()

	rig.llm.panicNext.Store(true)
	n, err := rig.mgr.StartSessionAgents(ctx, rig.code)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	require.Eventually(t, func() bool { return rig.mgr.Health().AgentCount == 1 },
		8*time.Second, 100*time.Millisecond, "the crashed agent is deregistered")

	before := rig.llm.calls.Load()
	require.Eventually(t, func() bool { return rig.llm.calls.Load() > before },
		8*time.Second, 100*time.Millisecond, "the surviving agent keeps cycling")
}

func TestAgentHandle_MailboxKeepsLatestTrigger(t *testing.T) {
	h := &agentHandle{mailbox: make(chan string, 1)}

	h.trigger("first")
	h.trigger("second")
	h.trigger("third")

	select {
	case reason := <-h.mailbox:
		assert.Equal(t, "third", reason, "later triggers replace the pending one")
	default:
		t.Fatal("expected a pending trigger")
	}
	select {
	case reason := <-h.mailbox:
		t.Fatalf("mailbox should hold at most one trigger, got %q", reason)
	default:
	}
}

func TestJitteredInterval(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := jittered(30 * time.Second)
		assert.GreaterOrEqual(t, d, 28*time.Second)
		assert.LessOrEqual(t, d, 32*time.Second)
		assert.True(t, d <= 29*time.Second || d >= 31*time.Second,
			"offset keeps at least a second away from the base: %v", d)
	}
	for i := 0; i < 100; i++ {
		assert.GreaterOrEqual(t, jittered(500*time.Millisecond), minInterval)
	}
}
