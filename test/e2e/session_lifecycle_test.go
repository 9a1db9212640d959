package e2e

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/models"
)

// waitForStatusCount waits until ws has collected n session_status events
// with the given status. Used instead of WaitForSessionStatus when the same
// status recurs in one test (active → paused → active).
func waitForStatusCount(t *testing.T, ws *WSClient, status string, n int) {
	t.Helper()
	_, err := ws.CollectUntil(func(evts []WSEvent) bool {
		count := 0
		for _, e := range evts {
			if e.Type == "session_status" && e.Parsed["status"] == status {
				count++
			}
		}
		return count >= n
	}, 10*time.Second)
	require.NoError(t, err, "waiting for %d session_status %q events", n, status)
}

// TestSessionLifecycle drives one session through its whole life over HTTP
// and watches the realtime side effects over WebSocket: creation, participant
// registration, start with timer ticks, pause/resume, messaging, completion,
// and data export.
func TestSessionLifecycle(t *testing.T) {
	t.Parallel()
	app := NewTestApp(t)
	code := NewSessionCode()

	created := app.CreateSession(t, code, models.ExperimentShapeFactory, models.ExperimentConfig{
		models.KeyRoundDuration: 5, // minutes, far longer than the test
	})
	assert.Equal(t, code, created["session_code"])
	assert.Equal(t, "idle", created["status"])

	app.AddHuman(t, code, "P1", map[string]any{"specialty_shape": "square"})
	app.AddHuman(t, code, "P2", map[string]any{"specialty_shape": "circle"})

	parts := app.getJSON(t, "/api/v1/sessions/"+code+"/participants", http.StatusOK)
	assert.Equal(t, float64(2), parts["count"])

	// Watch the session's own channel and the global sessions feed.
	sessionWS := app.SubscribeWS(t, "session:"+code)
	globalWS := app.SubscribeWS(t, "sessions")

	start := app.StartSession(t, code)
	assert.Equal(t, "session_active", start["status"])
	assert.Equal(t, float64(0), start["agents_started"])

	// The status change fans out to both channels.
	waitForStatusCount(t, sessionWS, "session_active", 1)
	waitForStatusCount(t, globalWS, "session_active", 1)

	// The countdown ticks at 1 Hz on the session channel.
	tick, err := sessionWS.WaitForEventType("timer_update", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, true, tick.Parsed["active"])
	remaining, ok := tick.Parsed["time_remaining_seconds"].(float64)
	require.True(t, ok, "timer_update carries time_remaining_seconds")
	assert.InDelta(t, 5*60, remaining, 10)

	// Health reflects the running pieces.
	health := app.GetHealth(t)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, float64(1), health["timers"])

	// Pause flips the status everywhere; resume brings it back.
	app.PauseSession(t, code)
	waitForStatusCount(t, sessionWS, "session_paused", 1)
	assert.Equal(t, "session_paused", app.GetSession(t, code)["status"])

	app.ResumeSession(t, code)
	waitForStatusCount(t, sessionWS, "session_active", 2)
	assert.Equal(t, "session_active", app.GetSession(t, code)["status"])

	// A direct message lands on the wire and in the recipient's unread set.
	sent := app.SendMessage(t, code, "P1", "P2", "ready to trade?")
	assert.Equal(t, true, sent["success"])

	msg, err := sessionWS.WaitForEventType("new_message", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "P1", msg.Parsed["sender"])
	assert.Equal(t, "ready to trade?", msg.Parsed["content"])
	assert.NotNil(t, msg.Parsed["db_event_id"], "persistent events carry the catchup watermark")

	unread := app.GetMessages(t, code, "P2", "")
	assert.Equal(t, float64(1), unread["count"])

	// End the session. Completion reaches both channels and the row.
	end := app.EndSession(t, code)
	assert.Equal(t, "session_completed", end["status"])
	waitForStatusCount(t, sessionWS, "session_completed", 1)
	waitForStatusCount(t, globalWS, "session_completed", 1)

	sess := app.GetSession(t, code)
	assert.Equal(t, "session_completed", sess["status"])
	assert.NotNil(t, sess["completed_at"])

	// Completed sessions reject further sends.
	rejected := app.postJSON(t,
		fmt.Sprintf("/api/v1/sessions/%s/participants/P1/messages", code),
		map[string]any{"recipient": "P2", "content": "too late"},
		http.StatusConflict)
	assert.Equal(t, false, rejected["success"])

	// A late subscriber catches up on the persisted history.
	lateWS := app.SubscribeWS(t, "session:"+code)
	caught, err := lateWS.WaitForEventType("new_message", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, "ready to trade?", caught.Parsed["content"])

	// Exports are available once the session is over.
	csvBody, csvType := app.getRaw(t, "/api/v1/sessions/"+code+"/export/csv?entity=messages", http.StatusOK)
	assert.Contains(t, csvType, "text/csv")
	assert.Contains(t, string(csvBody), "ready to trade?")

	xlsxBody, xlsxType := app.getRaw(t, "/api/v1/sessions/"+code+"/export/xlsx", http.StatusOK)
	assert.Contains(t, xlsxType, "spreadsheet")
	assert.NotEmpty(t, xlsxBody)
}

// TestSessionLifecycle_TimerCompletesSession lets the countdown expire
// instead of ending over HTTP and verifies the completion path publishes the
// same status transition.
func TestSessionLifecycle_TimerCompletesSession(t *testing.T) {
	t.Parallel()
	app := NewTestApp(t)
	code := NewSessionCode()

	// Zero round length: the first tick completes the session.
	app.CreateSession(t, code, models.ExperimentShapeFactory, models.ExperimentConfig{
		models.KeyRoundDuration: 0,
	})
	app.AddHuman(t, code, "P1", map[string]any{"specialty_shape": "square"})
	app.AddHuman(t, code, "P2", map[string]any{"specialty_shape": "circle"})

	ws := app.SubscribeWS(t, "session:"+code)
	app.StartSession(t, code)

	waitForStatusCount(t, ws, "session_completed", 1)
	require.Eventually(t, func() bool {
		return app.GetSession(t, code)["status"] == "session_completed"
	}, 10*time.Second, 50*time.Millisecond)

	// The registry drops the finished timer.
	require.Eventually(t, func() bool { return app.Timers.Count() == 0 },
		5*time.Second, 50*time.Millisecond)
}

// TestSessionValidation covers the transport-level rejections: malformed
// creates, duplicate codes, and lifecycle misuse.
func TestSessionValidation(t *testing.T) {
	t.Parallel()
	app := NewTestApp(t)
	code := NewSessionCode()

	// Unknown experiment kind.
	app.postJSON(t, "/api/v1/sessions",
		map[string]any{"session_code": code, "experiment_type": "tournament"},
		http.StatusBadRequest)

	// Missing session code.
	app.postJSON(t, "/api/v1/sessions",
		map[string]any{"experiment_type": "shapefactory"},
		http.StatusBadRequest)

	app.CreateSession(t, code, models.ExperimentShapeFactory, nil)

	// Duplicate session code.
	app.postJSON(t, "/api/v1/sessions",
		map[string]any{"session_code": code, "experiment_type": "shapefactory"},
		http.StatusConflict)

	// Pause before start: no timer is running for the session.
	app.postJSON(t, "/api/v1/sessions/"+code+"/pause", nil, http.StatusConflict)

	// Unknown session.
	req, err := http.NewRequest(http.MethodGet, app.BaseURL+"/api/v1/sessions/NOPE", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
