// Package manager supervises the agent goroutines of running sessions.
//
// Every managed agent pairs one controller with a scheduling loop: active
// agents run a perceive-decide-act cycle on a jittered interval, passive
// agents sleep until an external trigger lands in their mailbox. The manager
// owns agent lifecycle (start, graceful stop, crash containment), routes
// triggers (incoming messages, reading-phase completion, session completion),
// and runs the HiddenProfiles final-vote hook on the way down.
package manager

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/behavelab/parley/ent/participant"
	"github.com/behavelab/parley/ent/session"
	"github.com/behavelab/parley/pkg/agent"
	"github.com/behavelab/parley/pkg/agentlog"
	"github.com/behavelab/parley/pkg/engine"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/llm"
	"github.com/behavelab/parley/pkg/models"
	"github.com/behavelab/parley/pkg/store"
	"github.com/behavelab/parley/pkg/tools"
)

const (
	// stopGrace bounds how long a stop waits for an agent goroutine to
	// return before abandoning the wait. The goroutine still finishes its
	// last cycle and exits on its own.
	stopGrace = 3 * time.Second

	// cycleTimeout bounds one perceive-decide-act cycle, LLM call included.
	cycleTimeout = 2 * time.Minute

	// minInterval floors the jittered tick interval so a tiny perception
	// window can never produce a non-positive ticker period.
	minInterval = time.Second
)

// Trigger reasons delivered through agent mailboxes.
const (
	triggerMessage      = "incoming_message"
	triggerReadingPhase = "reading_phase_complete"
)

// Key returns the registry key for one managed agent.
func Key(sessionCode, participantCode string) string {
	return sessionCode + ":" + participantCode
}

// Config assembles the manager's collaborators.
type Config struct {
	Engines    *engine.Factory
	Dispatcher *tools.Dispatcher

	// Timers provides authoritative timer reads for controllers; nil makes
	// controllers fall back to the timer embedded in the perceived state.
	Timers engine.TimerReader

	// LLM is shared by every managed agent; implementations are safe for
	// concurrent use.
	LLM llm.Client

	// LogDir is the base directory for per-agent log sinks; "" disables
	// file logging.
	LogDir string

	// PlanJSON switches controllers to JSON plan mode instead of native
	// tool calling.
	PlanJSON bool

	// MaxMemory bounds each agent's conversation ring; 0 uses the default.
	MaxMemory int
}

// Manager is the registry of running agents, keyed by
// Key(session_code, participant_code).
type Manager struct {
	engines   *engine.Factory
	dispatch  tools.Executor
	timers    engine.TimerReader
	llm       llm.Client
	logDir    string
	planJSON  bool
	maxMemory int

	mu          sync.RWMutex
	agents      map[string]*agentHandle
	readingDone map[string]bool // session_code -> reading trigger already fired
	stopped     bool
	wg          sync.WaitGroup
}

// New creates a Manager. Message sends executed by managed agents pass
// through a wrapped dispatcher so they wake passive recipients exactly like
// messages arriving over the API.
func New(cfg Config) *Manager {
	m := &Manager{
		engines:     cfg.Engines,
		timers:      cfg.Timers,
		llm:         cfg.LLM,
		logDir:      cfg.LogDir,
		planJSON:    cfg.PlanJSON,
		maxMemory:   cfg.MaxMemory,
		agents:      make(map[string]*agentHandle),
		readingDone: make(map[string]bool),
	}
	m.dispatch = &wakeDispatcher{inner: cfg.Dispatcher, manager: m}
	return m
}

func (m *Manager) store() *store.Store { return m.engines.Store() }

// Executor returns the wake-aware dispatcher. Callers outside the agent
// loops (the HTTP layer dispatching human actions) should execute tools
// through it so sends trigger passive recipients the same way agent sends do.
func (m *Manager) Executor() tools.Executor { return m.dispatch }

// StartSessionAgents launches every ai_agent participant of a session.
// Initiatives come from the session config, defaulting to active. Returns
// the number of agent participants scheduled; agents that were already
// running count as scheduled.
func (m *Manager) StartSessionAgents(ctx context.Context, sessionCode string) (int, error) {
	sess, err := m.store().Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return 0, err
	}
	initiatives := models.ExperimentConfig(sess.ExperimentConfig).Initiatives()

	participants, err := m.store().Participants.ListBySession(ctx, sessionCode)
	if err != nil {
		return 0, err
	}

	started := 0
	for _, p := range participants {
		if p.Type != participant.TypeAiAgent {
			continue
		}
		if err := m.StartAgent(ctx, sessionCode, p.ParticipantCode, initiatives[p.ParticipantCode]); err != nil {
			slog.Warn("Starting agent failed",
				"agent_key", Key(sessionCode, p.ParticipantCode), "error", err)
			continue
		}
		started++
	}
	return started, nil
}

// StartAgent registers and launches one agent goroutine. initiative is
// models.InitiativeActive or models.InitiativePassive; "" resolves from the
// session config. Passive scheduling only exists in HiddenProfiles; other
// kinds are forced active. Starting an agent that is already running is a
// warning, not an error.
func (m *Manager) StartAgent(ctx context.Context, sessionCode, participantCode, initiative string) error {
	sess, err := m.store().Sessions.GetByCode(ctx, sessionCode)
	if err != nil {
		return err
	}
	switch sess.Status {
	case session.StatusSessionActive, session.StatusSessionPaused:
	default:
		return fault.Errorf(fault.InvalidState, "cannot start agents while session is %s", sess.Status)
	}

	p, err := m.store().Participants.Get(ctx, sessionCode, participantCode)
	if err != nil {
		return err
	}
	if p.Type != participant.TypeAiAgent {
		return fault.Errorf(fault.InvalidState, "participant %s is not an agent", participantCode)
	}

	kind := models.ExperimentType(sess.ExperimentType)
	cfg := models.ExperimentConfig(sess.ExperimentConfig)
	if initiative == "" {
		initiative = cfg.Initiatives()[participantCode]
	}
	if initiative == "" || kind != models.ExperimentHiddenProfiles {
		initiative = models.InitiativeActive
	}

	key := Key(sessionCode, participantCode)
	log := slog.With("agent_key", key, "experiment_type", string(kind))

	if m.running(key) {
		log.Warn("Agent already running, ignoring duplicate start")
		return nil
	}

	var sinks *agentlog.Sinks
	if m.logDir != "" {
		sinks, err = agentlog.New(m.logDir, sessionCode, participantCode)
		if err != nil {
			log.Warn("Agent log sinks unavailable, continuing without file logs", "error", err)
			sinks = nil
		}
	}

	h := &agentHandle{
		key:             key,
		sessionCode:     sessionCode,
		participantCode: participantCode,
		kind:            kind,
		passive:         initiative == models.InitiativePassive,
		interval:        jittered(cfg.PerceptionWindow()),
		sinks:           sinks,
		log:             log,
		mailbox:         make(chan string, 1),
		stopCh:          make(chan struct{}),
		done:            make(chan struct{}),
	}
	h.controller = agent.NewController(agent.Config{
		SessionCode:     sessionCode,
		ParticipantCode: participantCode,
		Kind:            kind,
		LLM:             m.llm,
		Engines:         m.engines,
		Dispatcher:      m.dispatch,
		Timers:          m.timers,
		Sinks:           sinks,
		PlanJSON:        m.planJSON,
		MaxMemory:       m.maxMemory,
	})

	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return fault.New(fault.InvalidState, "agent manager is stopped")
	}
	if _, exists := m.agents[key]; exists {
		m.mu.Unlock()
		log.Warn("Agent already running, ignoring duplicate start")
		return nil
	}
	m.agents[key] = h
	m.wg.Add(1)
	m.mu.Unlock()

	go m.run(h)

	if kind == models.ExperimentHiddenProfiles {
		if err := m.store().Sessions.SetInitiative(ctx, sessionCode, participantCode, initiative); err != nil {
			log.Warn("Recording participant initiative failed", "error", err)
		}
	}

	log.Info("Agent started", "initiative", initiative, "tick_interval", h.interval)
	return nil
}

// StopAgent deactivates one agent. HiddenProfiles agents run a final-vote
// cycle before their goroutine returns; the initiative entry is removed
// from the session config either way. No-op for unmanaged agents.
func (m *Manager) StopAgent(ctx context.Context, sessionCode, participantCode string) {
	h := m.removeHandle(Key(sessionCode, participantCode))
	if h == nil {
		return
	}
	m.stopHandle(ctx, h)
}

// StopSessionAgents stops every managed agent of one session concurrently
// and returns how many were stopped.
func (m *Manager) StopSessionAgents(ctx context.Context, sessionCode string) int {
	m.mu.Lock()
	var handles []*agentHandle
	for key, h := range m.agents {
		if h.sessionCode == sessionCode {
			handles = append(handles, h)
			delete(m.agents, key)
		}
	}
	delete(m.readingDone, sessionCode)
	m.mu.Unlock()

	var wg sync.WaitGroup
	for _, h := range handles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.stopHandle(ctx, h)
		}()
	}
	wg.Wait()
	return len(handles)
}

// StopAll deactivates every managed agent and waits for their goroutines.
// The manager refuses new starts afterwards.
func (m *Manager) StopAll(ctx context.Context) {
	m.mu.Lock()
	m.stopped = true
	sessions := make(map[string]bool)
	for _, h := range m.agents {
		sessions[h.sessionCode] = true
	}
	m.mu.Unlock()

	if len(sessions) > 0 {
		slog.Info("Stopping agent manager", "session_count", len(sessions))
	}
	for code := range sessions {
		m.StopSessionAgents(ctx, code)
	}
	m.wg.Wait()
	slog.Info("Agent manager stopped")
}

// stopHandle signals one already-unregistered handle, waits out the grace
// period, and cleans the initiative entry from the session config.
func (m *Manager) stopHandle(ctx context.Context, h *agentHandle) {
	h.signalStop()
	select {
	case <-h.done:
	case <-time.After(stopGrace):
		h.log.Warn("Agent did not stop within the grace period", "grace", stopGrace)
	}
	if h.kind == models.ExperimentHiddenProfiles {
		if err := m.store().Sessions.RemoveInitiative(ctx, h.sessionCode, h.participantCode); err != nil {
			h.log.Warn("Removing participant initiative failed", "error", err)
		}
	}
}

// HandleSessionCompleted is wired as the timer registry's completion hook.
// It deactivates the session's agents off the ticker goroutine; the Hidden
// Profiles final-vote cycle runs on the way down.
func (m *Manager) HandleSessionCompleted(sessionCode string) {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		n := m.StopSessionAgents(context.Background(), sessionCode)
		if n > 0 {
			slog.Info("Session agents deactivated after completion",
				"session_code", sessionCode, "agent_count", n)
		}
	}()
}

// NotifyMessage wakes passive agents that should react to a freshly written
// message: the addressed recipient, or every other passive agent in the
// session when the message is a broadcast. Active agents are left alone;
// they pick messages up on their own perception interval.
func (m *Manager) NotifyMessage(sessionCode, senderCode, recipientCode string) {
	var targets []*agentHandle
	m.mu.RLock()
	if recipientCode == "" || recipientCode == engine.BroadcastRecipient {
		for _, h := range m.agents {
			if h.sessionCode == sessionCode && h.passive && h.participantCode != senderCode {
				targets = append(targets, h)
			}
		}
	} else if h, ok := m.agents[Key(sessionCode, recipientCode)]; ok && h.passive {
		targets = append(targets, h)
	}
	m.mu.RUnlock()

	for _, h := range targets {
		h.trigger(triggerMessage)
	}
}

// NotifyReadingPhase re-checks whether the HiddenProfiles reading phase just
// completed and, the first time it has, triggers one decide cycle on every
// agent in the session, active and passive alike. Call it after uploading
// the public document or an assigned document.
func (m *Manager) NotifyReadingPhase(ctx context.Context, sessionCode string) {
	m.mu.RLock()
	fired := m.readingDone[sessionCode]
	m.mu.RUnlock()
	if fired {
		return
	}

	complete, err := m.store().Sessions.ReadingPhaseComplete(ctx, sessionCode)
	if err != nil {
		slog.Warn("Reading phase check failed", "session_code", sessionCode, "error", err)
		return
	}
	if !complete {
		return
	}

	var targets []*agentHandle
	m.mu.Lock()
	if !m.readingDone[sessionCode] {
		m.readingDone[sessionCode] = true
		for _, h := range m.agents {
			if h.sessionCode == sessionCode {
				targets = append(targets, h)
			}
		}
	}
	m.mu.Unlock()

	if len(targets) > 0 {
		slog.Info("Reading phase complete, triggering session agents",
			"session_code", sessionCode, "agent_count", len(targets))
	}
	for _, h := range targets {
		h.trigger(triggerReadingPhase)
	}
}

// running reports whether an agent is currently registered.
func (m *Manager) running(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.agents[key]
	return ok
}

// removeHandle unregisters and returns an agent, nil when absent.
func (m *Manager) removeHandle(key string) *agentHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	h := m.agents[key]
	delete(m.agents, key)
	return h
}

// AgentHealth is a point-in-time snapshot of one managed agent.
type AgentHealth struct {
	AgentKey   string    `json:"agent_key"`
	Initiative string    `json:"initiative"`
	Cycles     int       `json:"cycles"`
	LastCycle  time.Time `json:"last_cycle"`
}

// Health is the manager block of the health endpoint.
type Health struct {
	AgentCount   int           `json:"agent_count"`
	SessionCount int           `json:"session_count"`
	Agents       []AgentHealth `json:"agents"`
}

// Health returns a snapshot of every managed agent, ordered by agent key.
func (m *Manager) Health() Health {
	m.mu.RLock()
	sessions := make(map[string]bool, len(m.agents))
	agents := make([]AgentHealth, 0, len(m.agents))
	for _, h := range m.agents {
		sessions[h.sessionCode] = true
		agents = append(agents, h.health())
	}
	m.mu.RUnlock()

	sort.Slice(agents, func(i, j int) bool { return agents[i].AgentKey < agents[j].AgentKey })
	return Health{AgentCount: len(agents), SessionCount: len(sessions), Agents: agents}
}

// wakeDispatcher forwards to the real dispatcher and, after a successful
// send_message, wakes passive recipients so agent-sent messages trigger the
// same way human-sent ones do.
type wakeDispatcher struct {
	inner   *tools.Dispatcher
	manager *Manager
}

func (d *wakeDispatcher) Execute(ctx context.Context, sessionCode, participantCode, name string, args map[string]any) tools.Result {
	result := d.inner.Execute(ctx, sessionCode, participantCode, name, args)
	if result.Success && name == tools.ToolSendMessage {
		// The result carries the recipient the dispatcher actually delivered
		// to; a broadcast session coerces direct addresses to "all", and the
		// wake-up must follow the delivery, not the request.
		recipient, _ := args["recipient"].(string)
		if payload, ok := result.Payload.(map[string]any); ok {
			if effective, ok := payload["recipient"].(string); ok {
				recipient = effective
			}
		}
		d.manager.NotifyMessage(sessionCode, participantCode, recipient)
	}
	return result
}

// jittered shifts the base interval by a random offset of one to two seconds
// either way, so a session's agents do not all perceive at the same instant.
func jittered(base time.Duration) time.Duration {
	offset := time.Second + time.Duration(rand.Int64N(int64(time.Second)))
	if rand.Int64N(2) == 0 {
		offset = -offset
	}
	if d := base + offset; d > minInterval {
		return d
	}
	return minInterval
}
