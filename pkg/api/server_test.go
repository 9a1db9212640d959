package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/store"
	"github.com/behavelab/parley/pkg/timer"
	testdb "github.com/behavelab/parley/test/database"
)

// newTestServer builds the full router over a real database. The agent
// manager and websocket plumbing stay out: they carry their own integration
// tests, and every handler that needs them degrades explicitly.
func newTestServer(t *testing.T) (*gin.Engine, *timer.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := testdb.NewTestClient(t)
	st := store.New(client)
	pub := events.NewEventPublisher(client.DB())
	reg := timer.NewRegistry(st, pub)
	t.Cleanup(reg.StopAll)
	factory := engine.NewFactory(st, pub, reg)

	srv := New(Deps{DB: client, Engines: factory, Timers: reg})
	return srv.Router(), reg
}

// doJSON runs one request through the router. The decoded map is empty for
// non-JSON responses (CSV and XLSX downloads).
func doJSON(t *testing.T, router *gin.Engine, method, target string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	decoded := map[string]any{}
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), w.Body.String())
	}
	return w, decoded
}

func TestRouter_SessionLifecycle(t *testing.T) {
	router, reg := newTestServer(t)
	const code = "HTTP01"

	// Create a ShapeFactory session with a round long enough that the timer
	// cannot fire mid-test.
	w, body := doJSON(t, router, http.MethodPost, "/api/v1/sessions", map[string]any{
		"session_code":    code,
		"experiment_type": "shapefactory",
		"experiment_config": map[string]any{
			"roundDuration": 5,
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "idle", body["status"])

	w, body = doJSON(t, router, http.MethodGet, "/api/v1/sessions?experiment_type=shapefactory", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["total_count"])

	for _, p := range []map[string]any{
		{"participant_code": "Alice", "type": "human", "specialty_shape": "circle"},
		{"participant_code": "Bob", "type": "human", "specialty_shape": "square"},
	} {
		w, _ = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants", p)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Lookups against unknown sessions surface the typed kind.
	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/GHOST/start", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(fault.SessionNotFound), body["kind"])

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "session_active", body["status"])
	assert.EqualValues(t, 0, body["agents_started"])
	assert.True(t, reg.Running(code))

	w, body = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+code+"/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "session_active", body["session_status"])
	timerInfo, ok := body["timer"].(map[string]any)
	require.True(t, ok, "public state carries the timer block")
	assert.Equal(t, "active", timerInfo["experiment_status"])

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants/Alice/login", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "logged_in", body["login_status"])

	w, body = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+code+"/participants/Alice/state", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "chat", body["communication_level"])
	private, ok := body["private_state"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "circle", private["specialty_shape"])

	// A direct message routes through the tool dispatcher, so the session's
	// communication level applies to human sends too.
	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants/Alice/messages",
		map[string]any{"recipient": "Bob", "content": "two circles for a square?"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, body["message_id"])

	w, body = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+code+"/participants/Bob/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, body["count"])

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants/Bob/messages/read", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 1, body["messages_marked"])

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants/Alice/actions",
		map[string]any{
			"name": "create_trade_offer",
			"args": map[string]any{
				"recipient":      "Bob",
				"offer_type":     "sell",
				"shape":          "circle",
				"quantity":       1,
				"price_per_unit": 20,
			},
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "proposed", body["status"])
	shortID, _ := body["short_id"].(string)
	require.NotEmpty(t, shortID)

	// Placeholder transaction ids are rejected before they hit the store.
	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants/Bob/actions",
		map[string]any{
			"name": "respond_to_trade_offer",
			"args": map[string]any{"transaction_id": "<transaction_id>", "response": "accept"},
		})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "template placeholder")

	// The human-readable short id resolves to the real offer.
	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants/Bob/actions",
		map[string]any{
			"name": "respond_to_trade_offer",
			"args": map[string]any{"transaction_id": shortID, "response": "reject"},
		})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "rejected", body["status"])

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants/Bob/actions",
		map[string]any{"name": "sing_a_song"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(fault.InvalidState), body["error"])

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+code+"/export/csv?entity=messages", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Body.String(), "Alice")
	assert.Contains(t, w.Body.String(), "two circles for a square?")

	w, _ = doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+code+"/export/xlsx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.NotZero(t, w.Body.Len())

	w, body = doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, healthStatusHealthy, body["status"])
	checks, ok := body["checks"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, checks, "database")
	assert.Contains(t, checks, "timers")

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/pause", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "session_paused", body["status"])

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/resume", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "session_active", body["status"])

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/end", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "session_completed", body["status"])
	assert.EqualValues(t, 0, body["agents_stopped"])
	assert.False(t, reg.Running(code))

	// Completed sessions cannot be restarted.
	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/start", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(fault.InvalidState), body["kind"])
}

func TestRouter_HiddenProfilesDocuments(t *testing.T) {
	router, _ := newTestServer(t)
	const code = "HP01"

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/sessions", map[string]any{
		"session_code":    code,
		"experiment_type": "hiddenprofiles",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	for _, p := range []string{"P1", "P2"} {
		w, _ = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants",
			map[string]any{"participant_code": p, "type": "human"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Reading completes only once the shared brief and every private
	// document are in.
	w, body := doJSON(t, router, http.MethodPut, "/api/v1/sessions/"+code+"/documents/public",
		map[string]any{"title": "Role brief", "content": "You are hiring a director."})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, false, body["reading_complete"])
	assert.EqualValues(t, len("You are hiring a director."), body["characters"])

	w, body = doJSON(t, router, http.MethodPut, "/api/v1/sessions/"+code+"/participants/P1/document",
		map[string]any{"content": "Candidate A led two product launches."})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, false, body["reading_complete"])

	w, body = doJSON(t, router, http.MethodPut, "/api/v1/sessions/"+code+"/participants/P2/document",
		map[string]any{"content": "Candidate B has never missed a deadline."})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, true, body["reading_complete"])

	w, body = doJSON(t, router, http.MethodPut, "/api/v1/sessions/"+code+"/participants/ghost/document",
		map[string]any{"content": "Nobody reads this."})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, string(fault.ParticipantNotFound), body["kind"])
}

func TestRouter_EssayUpload(t *testing.T) {
	router, _ := newTestServer(t)
	const code = "ESSAY01"

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/sessions", map[string]any{
		"session_code":    code,
		"experiment_type": "essayranking",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants",
		map[string]any{"participant_code": "P1", "type": "human"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// "all" is the reserved segment for session-wide essays.
	w, body := doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants/all/essays",
		map[string]any{"title": "On Brevity", "content": "Say less, mean more."})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotEmpty(t, body["essay_id"])
	assert.Equal(t, "", body["participant_code"])
	assert.Equal(t, "On Brevity", body["title"])

	w, body = doJSON(t, router, http.MethodPost, "/api/v1/sessions/"+code+"/participants/P1/essays",
		map[string]any{"title": "On Length", "content": "Sometimes more is more."})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "P1", body["participant_code"])
}
