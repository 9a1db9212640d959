package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
	testdb "github.com/behavelab/parley/test/database"
)

func newTestDispatcher(t *testing.T) (*Dispatcher, *store.Store) {
	t.Helper()
	client := testdb.NewTestClient(t)
	st := store.New(client)
	pub := events.NewEventPublisher(client.DB())
	return NewDispatcher(engine.NewFactory(st, pub, nil)), st
}

func setupSession(t *testing.T, st *store.Store, kind models.ExperimentType, cfg models.ExperimentConfig, codes ...string) string {
	t.Helper()
	ctx := context.Background()
	code := fmt.Sprintf("D%s", strings.ToUpper(uuid.NewString()[:6]))
	_, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionCode:    code,
		ExperimentType: kind,
		Config:         cfg,
	})
	require.NoError(t, err)
	shapes := []string{"circle", "square", "triangle", "star"}
	for i, pc := range codes {
		req := models.CreateParticipantRequest{ParticipantCode: pc, Type: models.ParticipantAgent}
		if kind == models.ExperimentShapeFactory {
			req.SpecialtyShape = shapes[i%len(shapes)]
		}
		_, err := st.Participants.Add(ctx, code, req)
		require.NoError(t, err)
	}
	_, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSetupComplete)
	require.NoError(t, err)
	_, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSessionActive)
	require.NoError(t, err)
	return code
}

func TestDispatcher_IdentityInjection(t *testing.T) {
	d, st := newTestDispatcher(t)
	ctx := context.Background()
	code := setupSession(t, st, models.ExperimentShapeFactory, nil, "Alice", "Bob")

	// The model lies about who it is; the dispatcher overrides both codes.
	res := d.Execute(ctx, code, "Alice", engine.ToolCreateTradeOffer, map[string]any{
		"participant_code": "Bob",
		"session_code":     "FORGED",
		"recipient":        "Bob",
		"offer_type":       "sell",
		"shape":            "circle",
		"quantity":         1.0,
		"price_per_unit":   20.0,
	})
	require.True(t, res.Success, "message: %s", res.Message)

	payload, ok := res.Payload.(map[string]any)
	require.True(t, ok)
	trade, err := st.Trades.Resolve(ctx, code, payload["transaction_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "Alice", trade.Proposer)
}

func TestDispatcher_MissingScope(t *testing.T) {
	d, _ := newTestDispatcher(t)
	res := d.Execute(context.Background(), "", "Alice", ToolGetGameState, nil)
	require.False(t, res.Success)
	assert.Equal(t, fault.MissingSessionScope, res.Kind)
}

func TestDispatcher_PlaceholderTransactionID(t *testing.T) {
	d, st := newTestDispatcher(t)
	ctx := context.Background()
	code := setupSession(t, st, models.ExperimentShapeFactory, nil, "Alice", "Bob")

	for _, ref := range []string{"", "transaction_id", "TRANSACTION_ID", "<transaction_id>", "{id}", "[short_id]"} {
		res := d.Execute(ctx, code, "Bob", engine.ToolRespondToTradeOffer, map[string]any{
			"transaction_id": ref,
			"response":       "accept",
		})
		require.False(t, res.Success, "ref %q", ref)
		assert.Equal(t, fault.InvalidState, res.Kind, "ref %q", ref)
	}
}

func TestDispatcher_ShortIDResolution(t *testing.T) {
	d, st := newTestDispatcher(t)
	ctx := context.Background()
	code := setupSession(t, st, models.ExperimentShapeFactory, nil, "Alice", "Bob")

	res := d.Execute(ctx, code, "Alice", engine.ToolCreateTradeOffer, map[string]any{
		"recipient": "Bob", "offer_type": "buy", "shape": "square",
		"quantity": 1.0, "price_per_unit": 20.0,
	})
	require.True(t, res.Success, "message: %s", res.Message)
	shortID := res.Payload.(map[string]any)["short_id"].(string)

	res = d.Execute(ctx, code, "Alice", engine.ToolCancelTradeOffer, map[string]any{
		"transaction_id": shortID,
	})
	require.True(t, res.Success, "short id resolves before the engine: %s", res.Message)

	res = d.Execute(ctx, code, "Alice", engine.ToolCancelTradeOffer, map[string]any{
		"transaction_id": shortID,
	})
	require.False(t, res.Success)
	assert.Equal(t, fault.NotInProposedState, res.Kind)

	t.Run("unknown references are typed failures", func(t *testing.T) {
		res := d.Execute(ctx, code, "Alice", engine.ToolCancelTradeOffer, map[string]any{
			"transaction_id": "S999-999",
		})
		require.False(t, res.Success)
		assert.Equal(t, fault.InvalidState, res.Kind)
	})
}

func TestDispatcher_CommunicationLevels(t *testing.T) {
	ctx := context.Background()

	t.Run("chat rejects broadcasts", func(t *testing.T) {
		d, st := newTestDispatcher(t)
		code := setupSession(t, st, models.ExperimentHiddenProfiles,
			models.ExperimentConfig{models.KeyCommunicationLevel: "chat"}, "Alice", "Bob")

		res := d.Execute(ctx, code, "Alice", ToolSendMessage, map[string]any{
			"recipient": "all", "content": "hi room",
		})
		require.False(t, res.Success)
		assert.Equal(t, fault.CommunicationLevelViolation, res.Kind)

		res = d.Execute(ctx, code, "Alice", ToolSendMessage, map[string]any{
			"recipient": "Bob", "content": "hi Bob",
		})
		require.True(t, res.Success)
	})

	t.Run("broadcast coerces the recipient", func(t *testing.T) {
		d, st := newTestDispatcher(t)
		code := setupSession(t, st, models.ExperimentHiddenProfiles,
			models.ExperimentConfig{models.KeyCommunicationLevel: "broadcast"}, "Alice", "Bob", "Carol")

		res := d.Execute(ctx, code, "Alice", ToolSendMessage, map[string]any{
			"recipient": "Bob", "content": "to everyone",
		})
		require.True(t, res.Success)
		payload, ok := res.Payload.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, engine.BroadcastRecipient, payload["recipient"],
			"the result reports where the message actually went")

		unread, err := st.Messages.Unread(ctx, code, "Carol")
		require.NoError(t, err)
		require.Len(t, unread, 1, "Carol sees the coerced broadcast")
		assert.Nil(t, unread[0].Recipient)
	})

	t.Run("no_chat drops the call", func(t *testing.T) {
		d, st := newTestDispatcher(t)
		code := setupSession(t, st, models.ExperimentHiddenProfiles,
			models.ExperimentConfig{models.KeyCommunicationLevel: "no_chat"}, "Alice", "Bob")

		res := d.Execute(ctx, code, "Alice", ToolSendMessage, map[string]any{
			"recipient": "Bob", "content": "psst",
		})
		require.False(t, res.Success)
		assert.Equal(t, fault.CommunicationLevelViolation, res.Kind)

		unread, err := st.Messages.Unread(ctx, code, "Bob")
		require.NoError(t, err)
		assert.Empty(t, unread, "nothing was persisted")
	})
}

func TestDispatcher_MarkMessagesAsRead(t *testing.T) {
	d, st := newTestDispatcher(t)
	ctx := context.Background()
	code := setupSession(t, st, models.ExperimentHiddenProfiles, nil, "Alice", "Bob", "Carol")

	bob := "Bob"
	_, err := st.Messages.Create(ctx, code, "Alice", &bob, "direct one", models.MessageTypeChat)
	require.NoError(t, err)
	broadcast, err := st.Messages.Create(ctx, code, "Alice", nil, "hello room", models.MessageTypeChat)
	require.NoError(t, err)

	res := d.Execute(ctx, code, "Bob", ToolMarkMessagesAsRead, nil)
	require.True(t, res.Success)
	assert.Equal(t, map[string]any{"messages_marked": 2}, res.Payload)

	t.Run("repeat sweep is a no-op", func(t *testing.T) {
		res := d.Execute(ctx, code, "Bob", ToolMarkMessagesAsRead, nil)
		require.True(t, res.Success)
		assert.Equal(t, map[string]any{"messages_marked": 0}, res.Payload)
	})

	t.Run("broadcast flips to read once everyone saw it", func(t *testing.T) {
		res := d.Execute(ctx, code, "Carol", ToolMarkMessagesAsRead, map[string]any{
			"message_ids": []any{broadcast.ID},
		})
		require.True(t, res.Success)

		unread, err := st.Messages.Unread(ctx, code, "Carol")
		require.NoError(t, err)
		assert.Empty(t, unread)
	})
}

// The production queue lifecycle as agents drive it: produce twice, collect
// the finished batch, then explicitly start the queued one. Collection alone
// never advances the queue.
func TestDispatcher_ProductionQueueFlow(t *testing.T) {
	d, st := newTestDispatcher(t)
	ctx := context.Background()
	code := setupSession(t, st, models.ExperimentShapeFactory,
		models.ExperimentConfig{models.KeyProductionTime: 0}, "Alice", "Bob")

	res := d.Execute(ctx, code, "Alice", engine.ToolProduceShape, map[string]any{
		"shape": "circle", "quantity": 2.0,
	})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "in_progress", res.Payload.(map[string]any)["status"])

	res = d.Execute(ctx, code, "Alice", engine.ToolProduceShape, map[string]any{
		"shape": "square", "quantity": 1.0,
	})
	require.True(t, res.Success, res.Message)
	assert.Equal(t, "queued", res.Payload.(map[string]any)["status"])

	res = d.Execute(ctx, code, "Alice", engine.ToolProcessCompletedProductions, nil)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, 1, res.Payload.(map[string]any)["processed_count"])

	queue, err := st.Production.QueueFor(ctx, code, "Alice")
	require.NoError(t, err)
	require.Len(t, queue, 1)
	assert.Equal(t, "queued", queue[0].Status.String(), "collection does not start the next batch")

	res = d.Execute(ctx, code, "Alice", engine.ToolStartNextProduction, nil)
	require.True(t, res.Success, res.Message)
	payload := res.Payload.(map[string]any)
	assert.Equal(t, true, payload["started"])
	assert.Equal(t, "square", payload["shape"])

	res = d.Execute(ctx, code, "Alice", engine.ToolProcessCompletedProductions, nil)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, 1, res.Payload.(map[string]any)["processed_count"])

	res = d.Execute(ctx, code, "Alice", engine.ToolStartNextProduction, nil)
	require.True(t, res.Success, res.Message)
	assert.Equal(t, false, res.Payload.(map[string]any)["started"], "empty queue reports started=false")
}

func TestDispatcher_GameStateAndKindActions(t *testing.T) {
	d, st := newTestDispatcher(t)
	ctx := context.Background()
	code := setupSession(t, st, models.ExperimentHiddenProfiles, nil, "A1", "A2")

	res := d.Execute(ctx, code, "A1", ToolGetGameState, nil)
	require.True(t, res.Success)
	state, ok := res.Payload.(*models.GameState)
	require.True(t, ok)
	assert.Equal(t, models.CommChat, state.CommunicationLevel)

	res = d.Execute(ctx, code, "A1", engine.ToolSubmitVote, map[string]any{
		"candidate_name": "Candidate_X",
	})
	require.True(t, res.Success)

	t.Run("unknown session surfaces SessionNotFound", func(t *testing.T) {
		res := d.Execute(ctx, "MISSING", "A1", ToolGetGameState, nil)
		require.False(t, res.Success)
		assert.Equal(t, fault.SessionNotFound, res.Kind)
	})

	t.Run("tools from other kinds fail with InvalidState", func(t *testing.T) {
		res := d.Execute(ctx, code, "A1", engine.ToolProduceShape, map[string]any{
			"shape": "circle",
		})
		require.False(t, res.Success)
		assert.Equal(t, fault.InvalidState, res.Kind)
	})
}

func TestResult_MarshalJSON(t *testing.T) {
	t.Run("success merges payload fields", func(t *testing.T) {
		raw, err := json.Marshal(success(map[string]any{"transaction_id": "abc", "status": "proposed"}))
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, true, decoded["success"])
		assert.Equal(t, "abc", decoded["transaction_id"])
		assert.Equal(t, "proposed", decoded["status"])
	})

	t.Run("failure carries kind and message", func(t *testing.T) {
		raw, err := json.Marshal(failure(fault.New(fault.InsufficientFunds, "balance 10 below cost 20")))
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, false, decoded["success"])
		assert.Equal(t, "InsufficientFunds", decoded["error"])
		assert.Equal(t, "balance 10 below cost 20", decoded["message"])
	})

	t.Run("non-object payloads nest under result", func(t *testing.T) {
		raw, err := json.Marshal(success([]string{"a", "b"}))
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Equal(t, []any{"a", "b"}, decoded["result"])
	})
}

func TestForKind_Palettes(t *testing.T) {
	shared := []string{ToolGetGameState, ToolSendMessage, ToolMarkMessagesAsRead}

	cases := map[models.ExperimentType][]string{
		models.ExperimentShapeFactory: {
			engine.ToolCreateTradeOffer, engine.ToolRespondToTradeOffer, engine.ToolCancelTradeOffer,
			engine.ToolProduceShape, engine.ToolFulfillOrders, engine.ToolProcessCompletedProductions,
			engine.ToolStartNextProduction,
		},
		models.ExperimentDayTrader:      {engine.ToolMakeInvestment, engine.ToolGetInvestmentHistory},
		models.ExperimentEssayRanking:   {engine.ToolSubmitRanking, engine.ToolGetAssignedEssays, engine.ToolGetEssayContent},
		models.ExperimentWordGuessing:   {engine.ToolSubmitGuess, engine.ToolGetAssignedWords},
		models.ExperimentHiddenProfiles: {engine.ToolSubmitVote},
	}

	for kind, extra := range cases {
		palette := ForKind(kind)
		names := make([]string, 0, len(palette))
		for _, tool := range palette {
			names = append(names, tool.Name)
			require.NotNil(t, tool.InputSchema, "%s/%s has a schema", kind, tool.Name)
			assert.Equal(t, "object", tool.InputSchema["type"])
		}
		for _, want := range append(append([]string{}, shared...), extra...) {
			assert.Contains(t, names, want, "kind %s", kind)
		}
		assert.Len(t, names, len(shared)+len(extra), "kind %s has no stray tools", kind)
	}

	t.Run("custom kinds carry only the shared tools", func(t *testing.T) {
		palette := ForKind(models.ExperimentType("custom_survey"))
		assert.Len(t, palette, len(shared))
	})
}
