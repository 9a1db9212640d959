package e2e

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/llm"
	"github.com/behavelab/parley/pkg/models"
)

var errProviderDown = errors.New("provider unavailable")

// TestActiveAgentActsOnTick starts a session with one scripted agent and
// verifies the full loop: session start launches the agent, its first tick
// perceives state and sends a message through the tool surface, and the
// message reaches humans over both REST and WebSocket.
func TestActiveAgentActsOnTick(t *testing.T) {
	t.Parallel()
	logDir := t.TempDir()
	app := NewTestApp(t, WithAgentLogDir(logDir))
	code := NewSessionCode()

	app.CreateSession(t, code, models.ExperimentShapeFactory, models.ExperimentConfig{
		models.KeyRoundDuration:    5,
		models.KeyPerceptionWindow: 2, // seconds between agent ticks
	})
	app.AddHuman(t, code, "P1", map[string]any{"specialty_shape": "square"})
	app.AddAgent(t, code, "A1", map[string]any{"specialty_shape": "circle"})

	// A1's first decision is to greet P1; later ticks decide to do nothing.
	app.LLMClient.AddRouted("A1", LLMScriptEntry{ToolCalls: []llm.ToolCall{{
		ID:        "call-1",
		Name:      "send_message",
		Arguments: map[string]any{"recipient": "P1", "content": "Looking to buy squares."},
	}}})
	for i := 0; i < 60; i++ {
		app.LLMClient.AddRouted("A1", LLMScriptEntry{})
	}

	ws := app.SubscribeWS(t, "session:"+code)

	start := app.StartSession(t, code)
	assert.Equal(t, float64(1), start["agents_started"])

	// The agent's first tick lands within its jittered interval.
	evt, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "new_message" && e.Parsed["sender"] == "A1"
	}, 20*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "Looking to buy squares.", evt.Parsed["content"])
	assert.GreaterOrEqual(t, app.LLMClient.CallCount(), 1)

	// The scripted prompt carried the agent's identity and the tool palette.
	calls := app.LLMClient.CapturedCalls()
	require.NotEmpty(t, calls)
	assert.Contains(t, calls[0].System, "You are participant A1")
	assert.NotEmpty(t, calls[0].Tools)

	// The human sees the message in their unread view.
	unread := app.GetMessages(t, code, "P1", "")
	require.GreaterOrEqual(t, unread["count"], float64(1))

	// Health reports the managed agent.
	health := app.GetHealth(t)
	am, ok := health["agent_manager"].(map[string]any)
	require.True(t, ok, "health exposes the agent manager block")
	assert.Equal(t, float64(1), am["agent_count"])

	// Stopping over HTTP removes the agent from the registry.
	app.StopAgent(t, code, "A1")
	app.WaitForAgentStopped(t, code, "A1", 10*time.Second)

	// The agent wrote its per-agent log sinks.
	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries, "agent log sinks write under the log dir")
}

// TestPassiveAgentWakesOnMessage runs a HiddenProfiles session where the
// agent is configured passive: no interval ticks, it acts only when a
// message lands in its mailbox. The scripted decision is a vote, which shows
// up as a vote_update on the wire.
func TestPassiveAgentWakesOnMessage(t *testing.T) {
	t.Parallel()
	app := NewTestApp(t)
	code := NewSessionCode()

	app.CreateSession(t, code, models.ExperimentHiddenProfiles, models.ExperimentConfig{
		models.KeyRoundDuration: 5,
		models.KeyHiddenProfiles: map[string]any{
			models.KeyCandidates:  []any{"Avery", "Blake"},
			models.KeyInitiatives: map[string]any{"A1": "passive"},
		},
	})
	app.AddHuman(t, code, "P1", nil)
	app.AddAgent(t, code, "A1", nil)

	// A1 wakes once, reads the room, and votes.
	app.LLMClient.AddRouted("A1", LLMScriptEntry{ToolCalls: []llm.ToolCall{{
		ID:        "call-1",
		Name:      "submit_vote",
		Arguments: map[string]any{"candidate_name": "Avery"},
	}}})

	ws := app.SubscribeWS(t, "session:"+code)
	start := app.StartSession(t, code)
	assert.Equal(t, float64(1), start["agents_started"])

	// Nothing drives a passive agent until someone messages it.
	app.SendMessage(t, code, "P1", "A1", "Who do you prefer?")

	vote, err := ws.WaitForEventType("vote_update", 15*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "A1", vote.Parsed["voter"])
	assert.Equal(t, "Avery", vote.Parsed["candidate"])
	votes, ok := vote.Parsed["votes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Avery", votes["A1"])

	// The vote is visible in the session's experiment config state.
	public := app.GetPublicState(t, code)
	cfg, ok := public["experiment_config"].(map[string]any)
	require.True(t, ok)
	hp, ok := cfg["hiddenProfiles"].(map[string]any)
	require.True(t, ok)
	recorded, ok := hp["votes"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Avery", recorded["A1"])
}

// TestAgentSurvivesLLMFailure scripts an error for the agent's first decide
// call and verifies the loop logs it and keeps running instead of
// deactivating, then completes a later cycle normally.
func TestAgentSurvivesLLMFailure(t *testing.T) {
	t.Parallel()
	app := NewTestApp(t)
	code := NewSessionCode()

	app.CreateSession(t, code, models.ExperimentShapeFactory, models.ExperimentConfig{
		models.KeyRoundDuration:    5,
		models.KeyPerceptionWindow: 2,
	})
	app.AddHuman(t, code, "P1", map[string]any{"specialty_shape": "square"})
	app.AddAgent(t, code, "A1", map[string]any{"specialty_shape": "circle"})

	app.LLMClient.AddRouted("A1", LLMScriptEntry{Error: errProviderDown})
	app.LLMClient.AddRouted("A1", LLMScriptEntry{ToolCalls: []llm.ToolCall{{
		ID:        "call-2",
		Name:      "send_message",
		Arguments: map[string]any{"recipient": "P1", "content": "back online"},
	}}})
	for i := 0; i < 60; i++ {
		app.LLMClient.AddRouted("A1", LLMScriptEntry{})
	}

	ws := app.SubscribeWS(t, "session:"+code)
	app.StartSession(t, code)

	// The second tick succeeds even though the first decide call failed.
	evt, err := ws.WaitForEvent(func(e WSEvent) bool {
		return e.Type == "new_message" && e.Parsed["sender"] == "A1"
	}, 25*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "back online", evt.Parsed["content"])
	assert.GreaterOrEqual(t, app.LLMClient.CallCount(), 2)

	// Still managed: one failure never deactivates an agent.
	am := app.GetHealth(t)["agent_manager"].(map[string]any)
	assert.Equal(t, float64(1), am["agent_count"])
}
