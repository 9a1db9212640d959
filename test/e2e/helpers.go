package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/models"
)

// ────────────────────────────────────────────────────────────
// HTTP client helpers
// ────────────────────────────────────────────────────────────

func (app *TestApp) postJSON(t *testing.T, path string, body any, expectedStatus int) map[string]any {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, app.BaseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "POST %s: unexpected status, body: %s", path, raw)
	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

func (app *TestApp) getJSON(t *testing.T, path string, expectedStatus int) map[string]any {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status, body: %s", path, raw)
	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

// getRaw fetches path and returns the body and Content-Type, for the export
// endpoints that answer with files rather than JSON.
func (app *TestApp) getRaw(t *testing.T, path string, expectedStatus int) ([]byte, string) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "GET %s: unexpected status, body: %s", path, raw)
	return raw, resp.Header.Get("Content-Type")
}

func (app *TestApp) deleteJSON(t *testing.T, path string, expectedStatus int) map[string]any {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, app.BaseURL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "DELETE %s: unexpected status, body: %s", path, raw)
	var result map[string]any
	require.NoError(t, json.Unmarshal(raw, &result))
	return result
}

// ────────────────────────────────────────────────────────────
// Session lifecycle helpers
// ────────────────────────────────────────────────────────────

// CreateSession posts a new session and returns the parsed response.
func (app *TestApp) CreateSession(t *testing.T, code string, kind models.ExperimentType, cfg models.ExperimentConfig) map[string]any {
	t.Helper()
	body := map[string]any{
		"session_code":    code,
		"experiment_type": string(kind),
	}
	if cfg != nil {
		body["experiment_config"] = cfg
	}
	return app.postJSON(t, "/api/v1/sessions", body, http.StatusCreated)
}

// AddHuman registers a human participant. extra carries kind-specific fields
// like specialty_shape or role.
func (app *TestApp) AddHuman(t *testing.T, sessionCode, participantCode string, extra map[string]any) map[string]any {
	t.Helper()
	return app.addParticipant(t, sessionCode, participantCode, "human", extra)
}

// AddAgent registers an ai_agent participant.
func (app *TestApp) AddAgent(t *testing.T, sessionCode, participantCode string, extra map[string]any) map[string]any {
	t.Helper()
	return app.addParticipant(t, sessionCode, participantCode, "ai_agent", extra)
}

func (app *TestApp) addParticipant(t *testing.T, sessionCode, participantCode, typ string, extra map[string]any) map[string]any {
	t.Helper()
	body := map[string]any{
		"participant_code": participantCode,
		"type":             typ,
	}
	for k, v := range extra {
		body[k] = v
	}
	return app.postJSON(t, "/api/v1/sessions/"+sessionCode+"/participants", body, http.StatusCreated)
}

// StartSession starts the session, its timer, and its agents.
func (app *TestApp) StartSession(t *testing.T, code string) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/sessions/"+code+"/start", nil, http.StatusOK)
}

// PauseSession pauses the countdown.
func (app *TestApp) PauseSession(t *testing.T, code string) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/sessions/"+code+"/pause", nil, http.StatusOK)
}

// ResumeSession resumes a paused countdown.
func (app *TestApp) ResumeSession(t *testing.T, code string) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/sessions/"+code+"/resume", nil, http.StatusOK)
}

// EndSession completes the session.
func (app *TestApp) EndSession(t *testing.T, code string) map[string]any {
	t.Helper()
	return app.postJSON(t, "/api/v1/sessions/"+code+"/end", nil, http.StatusOK)
}

// GetSession retrieves a session by code.
func (app *TestApp) GetSession(t *testing.T, code string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/sessions/"+code, http.StatusOK)
}

// GetPublicState retrieves the shared session view.
func (app *TestApp) GetPublicState(t *testing.T, code string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/sessions/"+code+"/state", http.StatusOK)
}

// GetGameState retrieves one participant's private view.
func (app *TestApp) GetGameState(t *testing.T, code, participantCode string) map[string]any {
	t.Helper()
	return app.getJSON(t, "/api/v1/sessions/"+code+"/participants/"+participantCode+"/state", http.StatusOK)
}

// GetHealth retrieves /health without asserting the status code; degraded
// deployments still answer with a body.
func (app *TestApp) GetHealth(t *testing.T) map[string]any {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, app.BaseURL+"/health", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// ────────────────────────────────────────────────────────────
// Participant action helpers
// ────────────────────────────────────────────────────────────

// SendMessage sends a chat message from one participant to another ("all"
// broadcasts where the session's communication level permits it).
func (app *TestApp) SendMessage(t *testing.T, code, from, to, content string) map[string]any {
	t.Helper()
	return app.postJSON(t,
		fmt.Sprintf("/api/v1/sessions/%s/participants/%s/messages", code, from),
		map[string]any{"recipient": to, "content": content},
		http.StatusCreated)
}

// DoAction dispatches one named tool call for the participant and requires
// success.
func (app *TestApp) DoAction(t *testing.T, code, participantCode, name string, args map[string]any) map[string]any {
	t.Helper()
	return app.DoActionExpect(t, code, participantCode, name, args, http.StatusOK)
}

// DoActionExpect dispatches one named tool call and asserts the HTTP status,
// for exercising rejection paths.
func (app *TestApp) DoActionExpect(t *testing.T, code, participantCode, name string, args map[string]any, expectedStatus int) map[string]any {
	t.Helper()
	return app.postJSON(t,
		fmt.Sprintf("/api/v1/sessions/%s/participants/%s/actions", code, participantCode),
		map[string]any{"name": name, "args": args},
		expectedStatus)
}

// GetMessages fetches a participant's message view (unread, history, or
// broadcasts).
func (app *TestApp) GetMessages(t *testing.T, code, participantCode, query string) map[string]any {
	t.Helper()
	path := fmt.Sprintf("/api/v1/sessions/%s/participants/%s/messages", code, participantCode)
	if query != "" {
		path += "?" + query
	}
	return app.getJSON(t, path, http.StatusOK)
}

// StartAgent launches one agent controller over the scripted LLM.
func (app *TestApp) StartAgent(t *testing.T, code, participantCode, initiative string) map[string]any {
	t.Helper()
	var body any
	if initiative != "" {
		body = map[string]any{"initiative": initiative}
	}
	return app.postJSON(t,
		fmt.Sprintf("/api/v1/sessions/%s/participants/%s/agent", code, participantCode),
		body, http.StatusCreated)
}

// StopAgent stops one agent controller.
func (app *TestApp) StopAgent(t *testing.T, code, participantCode string) map[string]any {
	t.Helper()
	return app.deleteJSON(t,
		fmt.Sprintf("/api/v1/sessions/%s/participants/%s/agent", code, participantCode),
		http.StatusOK)
}

// ────────────────────────────────────────────────────────────
// WebSocket and database helpers
// ────────────────────────────────────────────────────────────

// SubscribeWS opens a WebSocket connection, subscribes to channel, and waits
// for the subscription to be confirmed. LISTEN completes before the confirm
// is sent, so events published after this returns are guaranteed delivery.
// Close is registered via t.Cleanup.
func (app *TestApp) SubscribeWS(t *testing.T, channel string) *WSClient {
	t.Helper()
	ws, err := WSConnect(context.Background(), app.WSURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	_, err = ws.WaitForEventType("connection.established", 5*time.Second)
	require.NoError(t, err)
	require.NoError(t, ws.Subscribe(channel))
	_, err = ws.WaitForEventType("subscription.confirmed", 5*time.Second)
	require.NoError(t, err)
	return ws
}

// SeedInventory overwrites a ShapeFactory participant's inventory directly in
// the database, so trade tests do not have to wait out production timers.
func (app *TestApp) SeedInventory(t *testing.T, sessionCode, participantCode string, shapes []string) {
	t.Helper()
	ctx := context.Background()
	p, err := app.DBClient.Participant.Query().
		Where(
			participant.ParticipantCodeEQ(participantCode),
			participant.HasSessionWith(session.SessionCodeEQ(sessionCode)),
		).
		Only(ctx)
	require.NoError(t, err)
	inv, err := p.QueryInventory().Only(ctx)
	require.NoError(t, err)
	require.NoError(t, inv.Update().SetShapesInInventory(shapes).Exec(ctx))
}

// WaitForAgentStopped polls until the manager no longer reports the agent as
// running.
func (app *TestApp) WaitForAgentStopped(t *testing.T, sessionCode, participantCode string, timeout time.Duration) {
	t.Helper()
	key := sessionCode + ":" + participantCode
	require.Eventually(t, func() bool {
		for _, a := range app.Manager.Health().Agents {
			if a.AgentKey == key {
				return false
			}
		}
		return true
	}, timeout, 25*time.Millisecond)
}
