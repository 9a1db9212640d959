package timer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/database"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
	testdb "github.com/behavelab/parley/test/database"
)

func newTestRegistry(t *testing.T) (*Registry, *store.Store, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	st := store.New(client)
	return NewRegistry(st, events.NewEventPublisher(client.DB())), st, client
}

// newActiveSession creates a session and walks it into session_active.
func newActiveSession(t *testing.T, st *store.Store, cfg models.ExperimentConfig) string {
	t.Helper()
	ctx := context.Background()
	code := fmt.Sprintf("T%s", strings.ToUpper(uuid.NewString()[:6]))
	_, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionCode:    code,
		ExperimentType: models.ExperimentShapeFactory,
		Config:         cfg,
	})
	require.NoError(t, err)
	_, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSetupComplete)
	require.NoError(t, err)
	_, err = st.Sessions.UpdateStatus(ctx, code, session.StatusSessionActive)
	require.NoError(t, err)
	return code
}

// registerTimer injects timer state without spawning the ticker goroutine so
// tests can drive tick by hand.
func registerTimer(r *Registry, code string, remaining, minutes int, status string, active bool) *sessionTimer {
	_, cancel := context.WithCancel(context.Background())
	tm := &sessionTimer{
		sessionCode: code,
		log:         slog.With("session_code", code),
		cancel:      cancel,
		status:      status,
		remaining:   remaining,
		minutes:     minutes,
		startedAt:   time.Now(),
		active:      active,
	}
	r.mu.Lock()
	r.timers[code] = tm
	r.mu.Unlock()
	return tm
}

func TestRegistry_StartRequiresRunningSession(t *testing.T) {
	r, st, _ := newTestRegistry(t)
	ctx := context.Background()

	code := fmt.Sprintf("T%s", strings.ToUpper(uuid.NewString()[:6]))
	_, err := st.Sessions.CreateSession(ctx, models.CreateSessionRequest{
		SessionCode:    code,
		ExperimentType: models.ExperimentShapeFactory,
	})
	require.NoError(t, err)

	err = r.Start(ctx, code)
	require.Error(t, err)
	assert.Equal(t, fault.InvalidState, fault.KindOf(err))
	assert.False(t, r.Running(code))

	err = r.Start(ctx, "NOPE42")
	assert.Equal(t, fault.SessionNotFound, fault.KindOf(err))
}

func TestRegistry_StartDerivesRemainingFromStartedAt(t *testing.T) {
	r, st, _ := newTestRegistry(t)
	defer r.StopAll()
	ctx := context.Background()

	code := newActiveSession(t, st, models.ExperimentConfig{models.KeyRoundDuration: 10})
	require.NoError(t, r.Start(ctx, code))

	info, ok := r.Snapshot(code)
	require.True(t, ok)
	assert.Equal(t, models.TimerActive, info.ExperimentStatus)
	assert.Equal(t, 10, info.RoundDurationMinutes)
	// The session activated moments ago, so at most a couple of seconds have
	// been consumed (the live ticker may take one more while we look).
	assert.InDelta(t, 600, info.TimeRemaining, 3)

	assert.True(t, r.Running(code))
	assert.Equal(t, 1, r.Count())

	// Duplicate starts are no-ops.
	require.NoError(t, r.Start(ctx, code))
	assert.Equal(t, 1, r.Count())
}

func TestRegistry_TickDecrementsOnlyWhileActive(t *testing.T) {
	r, st, _ := newTestRegistry(t)
	ctx := context.Background()

	code := newActiveSession(t, st, nil)
	tm := registerTimer(r, code, 100, 20, models.TimerActive, true)

	require.False(t, r.tick(ctx, tm))
	info, ok := r.Snapshot(code)
	require.True(t, ok)
	assert.Equal(t, 99, info.TimeRemaining)

	require.NoError(t, r.Pause(ctx, code))
	sess, err := st.Sessions.GetByCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, session.StatusSessionPaused, sess.Status)

	// Paused ticks broadcast but never decrement.
	require.False(t, r.tick(ctx, tm))
	require.False(t, r.tick(ctx, tm))
	info, _ = r.Snapshot(code)
	assert.Equal(t, 99, info.TimeRemaining)
	assert.Equal(t, models.TimerPaused, info.ExperimentStatus)

	require.NoError(t, r.Resume(ctx, code))
	sess, err = st.Sessions.GetByCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, session.StatusSessionActive, sess.Status)

	require.False(t, r.tick(ctx, tm))
	info, _ = r.Snapshot(code)
	assert.Equal(t, 98, info.TimeRemaining)
}

func TestRegistry_TickCompletesAtZero(t *testing.T) {
	r, st, _ := newTestRegistry(t)
	ctx := context.Background()

	var hooked atomic.Value
	r.SetCompletionHook(func(code string) { hooked.Store(code) })

	code := newActiveSession(t, st, nil)
	tm := registerTimer(r, code, 1, 20, models.TimerActive, true)

	require.True(t, r.tick(ctx, tm), "the zero tick finishes the timer")

	sess, err := st.Sessions.GetByCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, session.StatusSessionCompleted, sess.Status)
	assert.NotNil(t, sess.CompletedAt)

	assert.Equal(t, code, hooked.Load(), "the completion hook fires after the store flip")
	assert.False(t, r.Running(code), "completed timers leave the registry")
}

func TestRegistry_StoreErrorIsRetryable(t *testing.T) {
	r, st, client := newTestRegistry(t)
	ctx := context.Background()

	code := newActiveSession(t, st, nil)
	tm := registerTimer(r, code, 1, 20, models.TimerActive, true)

	// Yank the row out from under the timer so the completion write fails.
	_, err := client.DB().ExecContext(ctx, "DELETE FROM sessions WHERE session_code = $1", code)
	require.NoError(t, err)

	require.False(t, r.tick(ctx, tm), "failed completion keeps the timer alive")
	info, ok := r.Snapshot(code)
	require.True(t, ok)
	assert.Equal(t, 0, info.TimeRemaining)
	assert.Equal(t, models.TimerActive, info.ExperimentStatus)

	require.False(t, r.tick(ctx, tm), "retries keep the countdown at zero")
	info, _ = r.Snapshot(code)
	assert.Equal(t, 0, info.TimeRemaining, "zero is reached exactly once")
}

func TestRegistry_FinishStopsExternally(t *testing.T) {
	r, st, _ := newTestRegistry(t)
	ctx := context.Background()

	code := newActiveSession(t, st, nil)
	registerTimer(r, code, 500, 20, models.TimerActive, true)

	_, err := st.Sessions.UpdateStatus(ctx, code, session.StatusSessionCompleted)
	require.NoError(t, err)

	r.Finish(ctx, code)
	assert.False(t, r.Running(code))

	// Finishing an unknown session is a no-op.
	r.Finish(ctx, "GHOST1")
}

func TestRegistry_CompletesThroughTheRealTicker(t *testing.T) {
	if testing.Short() {
		t.Skip("ticker integration test")
	}
	r, st, _ := newTestRegistry(t)
	defer r.StopAll()
	ctx := context.Background()

	var hooked atomic.Bool
	r.SetCompletionHook(func(string) { hooked.Store(true) })

	// A zero-minute round is due on the very first tick.
	code := newActiveSession(t, st, models.ExperimentConfig{models.KeyRoundDuration: 0})
	require.NoError(t, r.Start(ctx, code))

	require.Eventually(t, func() bool {
		sess, err := st.Sessions.GetByCode(ctx, code)
		return err == nil && sess.Status == session.StatusSessionCompleted
	}, 5*time.Second, 100*time.Millisecond)

	require.Eventually(t, hooked.Load, time.Second, 10*time.Millisecond)
	assert.False(t, r.Running(code))
}

func TestRegistry_StopAllClearsTimers(t *testing.T) {
	r, st, _ := newTestRegistry(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		code := newActiveSession(t, st, nil)
		require.NoError(t, r.Start(ctx, code))
	}
	assert.Equal(t, 3, r.Count())

	r.StopAll()
	assert.Equal(t, 0, r.Count())
}
