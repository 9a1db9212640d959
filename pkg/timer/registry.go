// Package timer owns per-session countdown state. Each running session gets
// one ticker goroutine that decrements the remaining time at 1 Hz, broadcasts
// a timer_update on every tick (paused included, so clients resynchronise),
// and completes the session when the countdown hits zero. Timer state is
// keyed by session_code; sessions never share state.
package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/events"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
)

// CompletionHook is invoked from the ticker goroutine after a timer-driven
// completion has been committed and broadcast. The agent manager registers
// its deactivation/final-vote entry point here.
type CompletionHook func(sessionCode string)

// Registry tracks one timer per running session. Map mutations happen under
// short critical sections; the per-session state is owned by its ticker
// goroutine and read through Snapshot.
type Registry struct {
	store  *store.Store
	events *events.EventPublisher

	mu         sync.RWMutex
	timers     map[string]*sessionTimer
	onComplete CompletionHook

	wg sync.WaitGroup
}

// sessionTimer is the countdown state for one session.
type sessionTimer struct {
	sessionCode string
	log         *slog.Logger
	cancel      context.CancelFunc

	mu        sync.Mutex
	status    string // models.Timer* vocabulary
	remaining int
	minutes   int
	startedAt time.Time
	active    bool
}

// NewRegistry creates a timer registry over the shared store and publisher.
func NewRegistry(st *store.Store, pub *events.EventPublisher) *Registry {
	return &Registry{
		store:  st,
		events: pub,
		timers: make(map[string]*sessionTimer),
	}
}

// SetCompletionHook registers the callback fired after a timer reaches zero.
// Set it before the first Start; completions with no hook only log.
func (r *Registry) SetCompletionHook(hook CompletionHook) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onComplete = hook
}

// Start spawns the ticker goroutine for a session. The session must be
// active or paused; the remaining time is derived from started_at so a timer
// restarted after a crash resumes mid-countdown instead of from the top.
// Starting a session that already has a timer is a no-op.
func (r *Registry) Start(ctx context.Context, sessionCode string) error {
	sess, err := r.store.Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return err
	}

	var status string
	var active bool
	switch sess.Status {
	case session.StatusSessionActive:
		status, active = models.TimerActive, true
	case session.StatusSessionPaused:
		status, active = models.TimerPaused, false
	default:
		return fault.Errorf(fault.InvalidState,
			"cannot start a timer for session %s in status %s", sessionCode, sess.Status)
	}

	minutes := models.ExperimentConfig(sess.ExperimentConfig).RoundDurationMinutes()
	remaining := minutes * 60
	startedAt := time.Now()
	if sess.StartedAt != nil {
		startedAt = *sess.StartedAt
		if elapsed := int(time.Since(startedAt).Seconds()); elapsed > 0 {
			remaining -= elapsed
			if remaining < 0 {
				remaining = 0
			}
		}
	}

	r.mu.Lock()
	if _, exists := r.timers[sessionCode]; exists {
		r.mu.Unlock()
		slog.Warn("Timer already running, ignoring duplicate Start call", "session_code", sessionCode)
		return nil
	}
	timerCtx, cancel := context.WithCancel(context.Background())
	t := &sessionTimer{
		sessionCode: sessionCode,
		log:         slog.With("session_code", sessionCode),
		cancel:      cancel,
		status:      status,
		remaining:   remaining,
		minutes:     minutes,
		startedAt:   startedAt,
		active:      active,
	}
	r.timers[sessionCode] = t
	r.wg.Add(1)
	r.mu.Unlock()

	go r.run(timerCtx, t)
	t.log.Info("Session timer started",
		"time_remaining", remaining,
		"round_duration_minutes", minutes,
		"round_start_time", startedAt.Format(time.RFC3339),
		"active", active)
	return nil
}

// Pause freezes the countdown: the session moves to session_paused and the
// ticker keeps broadcasting without decrementing.
func (r *Registry) Pause(ctx context.Context, sessionCode string) error {
	t, ok := r.lookup(sessionCode)
	if !ok {
		return fault.Errorf(fault.InvalidState, "no timer running for session %s", sessionCode)
	}
	if _, err := r.store.Sessions.UpdateStatus(ctx, sessionCode, session.StatusSessionPaused); err != nil {
		return err
	}
	t.mu.Lock()
	t.status = models.TimerPaused
	t.active = false
	t.mu.Unlock()
	t.log.Info("Session timer paused")
	return nil
}

// Resume reverses Pause.
func (r *Registry) Resume(ctx context.Context, sessionCode string) error {
	t, ok := r.lookup(sessionCode)
	if !ok {
		return fault.Errorf(fault.InvalidState, "no timer running for session %s", sessionCode)
	}
	if _, err := r.store.Sessions.UpdateStatus(ctx, sessionCode, session.StatusSessionActive); err != nil {
		return err
	}
	t.mu.Lock()
	t.status = models.TimerActive
	t.active = true
	t.mu.Unlock()
	t.log.Info("Session timer resumed")
	return nil
}

// Finish stops a session's timer after an externally-driven completion (the
// end-session API). The store row is already completed; this only tears the
// goroutine down and broadcasts the final state.
func (r *Registry) Finish(ctx context.Context, sessionCode string) {
	t, ok := r.lookup(sessionCode)
	if !ok {
		return
	}
	t.mu.Lock()
	t.status = models.TimerCompleted
	t.active = false
	t.remaining = 0
	info := t.infoLocked()
	t.mu.Unlock()

	r.broadcast(ctx, t, info, false)
	r.remove(sessionCode)
	t.cancel()
	t.log.Info("Session timer finished externally")
}

// Snapshot returns the authoritative timer view for a session. ok is false
// when no timer goroutine owns the session.
func (r *Registry) Snapshot(sessionCode string) (models.TimerInfo, bool) {
	t, ok := r.lookup(sessionCode)
	if !ok {
		return models.TimerInfo{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.infoLocked(), true
}

// Running reports whether a timer goroutine owns the session.
func (r *Registry) Running(sessionCode string) bool {
	_, ok := r.lookup(sessionCode)
	return ok
}

// Count returns the number of running timers, for the health endpoint.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.timers)
}

// StopAll cancels every ticker goroutine and waits for them to exit. Session
// rows keep their status; restarted processes resume via Start.
func (r *Registry) StopAll() {
	r.mu.Lock()
	for code, t := range r.timers {
		t.cancel()
		delete(r.timers, code)
	}
	r.mu.Unlock()
	r.wg.Wait()
	slog.Info("All session timers stopped")
}

func (r *Registry) run(ctx context.Context, t *sessionTimer) {
	defer r.wg.Done()
	defer t.cancel()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if r.tick(ctx, t) {
				return
			}
		}
	}
}

// tick advances the countdown by one second and reports whether the timer
// finished. The state is broadcast on every tick, decrementing or not.
//
// The zero transition guards remaining > 0 so the countdown reaches zero
// exactly once: when the completion write fails the timer stays at zero and
// retries on the next tick instead of going negative or double-counting.
func (r *Registry) tick(ctx context.Context, t *sessionTimer) bool {
	t.mu.Lock()
	if t.active && t.status == models.TimerActive && t.remaining > 0 {
		t.remaining--
	}
	due := t.status == models.TimerActive && t.remaining == 0
	info := t.infoLocked()
	active := t.active
	t.mu.Unlock()

	r.broadcast(ctx, t, info, active)
	if !due {
		return false
	}
	return r.complete(ctx, t)
}

// complete flips the session to session_completed and tears the timer down.
// Store errors are retryable: the timer keeps ticking at zero and tries
// again a second later.
func (r *Registry) complete(ctx context.Context, t *sessionTimer) bool {
	sess, err := r.store.Sessions.UpdateStatus(ctx, t.sessionCode, session.StatusSessionCompleted)
	if err != nil {
		t.log.Warn("Completing session failed, retrying next tick", "error", err)
		return false
	}

	t.mu.Lock()
	t.status = models.TimerCompleted
	t.active = false
	info := t.infoLocked()
	t.mu.Unlock()

	if r.events != nil {
		if err := r.events.PublishSessionStatus(ctx, sess.ID, events.SessionStatusPayload{
			BasePayload: events.Base(events.EventTypeSessionStatus, t.sessionCode),
			Status:      sess.Status.String(),
		}); err != nil {
			t.log.Warn("Failed to publish session status", "error", err)
		}
	}
	r.broadcast(ctx, t, info, false)
	r.remove(t.sessionCode)

	// The final tick has been broadcast; only now do downstream one-shot
	// triggers fire.
	r.mu.RLock()
	hook := r.onComplete
	r.mu.RUnlock()
	if hook != nil {
		hook(t.sessionCode)
	} else {
		t.log.Info("Session timer completed with no hook registered")
	}
	t.log.Info("Session timer completed")
	return true
}

func (r *Registry) broadcast(ctx context.Context, t *sessionTimer, info models.TimerInfo, active bool) {
	if r.events == nil {
		return
	}
	err := r.events.PublishTimerUpdate(ctx, events.TimerUpdatePayload{
		BasePayload:          events.Base(events.EventTypeTimerUpdate, t.sessionCode),
		Status:               info.ExperimentStatus,
		TimeRemainingSeconds: info.TimeRemaining,
		RoundDurationMinutes: info.RoundDurationMinutes,
		Active:               active,
	})
	if err != nil {
		t.log.Warn("Failed to publish timer update", "error", err)
	}
}

func (r *Registry) lookup(sessionCode string) (*sessionTimer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.timers[sessionCode]
	return t, ok
}

func (r *Registry) remove(sessionCode string) {
	r.mu.Lock()
	delete(r.timers, sessionCode)
	r.mu.Unlock()
}

// infoLocked builds the snapshot; the caller holds t.mu.
func (t *sessionTimer) infoLocked() models.TimerInfo {
	return models.TimerInfo{
		TimeRemaining:        t.remaining,
		ExperimentStatus:     t.status,
		RoundDurationMinutes: t.minutes,
	}
}
