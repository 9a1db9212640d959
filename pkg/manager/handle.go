package manager

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/behavelab/parley/pkg/agent"
	"github.com/behavelab/parley/pkg/agentlog"
	"github.com/behavelab/parley/pkg/fault"
	"github.com/behavelab/parley/pkg/models"
)

// agentHandle is one managed agent: the controller plus the scheduling state
// its run goroutine owns.
type agentHandle struct {
	key             string
	sessionCode     string
	participantCode string
	kind            models.ExperimentType
	passive         bool
	interval        time.Duration

	controller *agent.Controller
	sinks      *agentlog.Sinks
	log        *slog.Logger

	// mailbox carries external trigger reasons. Capacity 1: a pending
	// trigger means a cycle is already owed, extra ones merge into it.
	mailbox chan string

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}

	mu        sync.Mutex
	cycles    int
	lastCycle time.Time
}

// trigger delivers an external wake-up without blocking the caller. When a
// trigger is already pending the stale reason is dropped in favour of the
// new one.
func (h *agentHandle) trigger(reason string) {
	select {
	case h.mailbox <- reason:
		return
	default:
	}
	select {
	case <-h.mailbox:
	default:
	}
	select {
	case h.mailbox <- reason:
	default:
		// A concurrent trigger refilled the slot; the wake-up is covered.
	}
}

func (h *agentHandle) signalStop() {
	h.stopOnce.Do(func() { close(h.stopCh) })
}

func (h *agentHandle) recordCycle() {
	h.mu.Lock()
	h.cycles++
	h.lastCycle = time.Now()
	h.mu.Unlock()
}

func (h *agentHandle) cycleCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cycles
}

func (h *agentHandle) health() AgentHealth {
	h.mu.Lock()
	defer h.mu.Unlock()
	initiative := models.InitiativeActive
	if h.passive {
		initiative = models.InitiativePassive
	}
	return AgentHealth{
		AgentKey:   h.key,
		Initiative: initiative,
		Cycles:     h.cycles,
		LastCycle:  h.lastCycle,
	}
}

// run is one agent's scheduling loop. Active agents tick on their jittered
// interval; both classes react to mailbox triggers; a stop signal drains
// into the shutdown cycle. A controller panic deactivates this agent only.
func (m *Manager) run(h *agentHandle) {
	defer m.wg.Done()
	defer close(h.done)
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("Agent controller crashed, deactivating this agent", "panic", r)
			m.removeHandle(h.key)
		}
	}()

	var tickC <-chan time.Time
	if !h.passive {
		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()
		tickC = ticker.C
	}

	for {
		select {
		case <-h.stopCh:
			m.shutdownCycle(h)
			return
		case <-tickC:
			if m.cycle(h, "interval") {
				m.removeHandle(h.key)
				return
			}
		case reason := <-h.mailbox:
			h.log.Debug("Agent triggered", "reason", reason)
			if m.cycle(h, reason) {
				m.removeHandle(h.key)
				return
			}
		}
	}
}

// cycle runs one perceive-decide-act tick. It reports true when the agent's
// session or participant row is gone and the loop should deactivate.
func (m *Manager) cycle(h *agentHandle, trigger string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
	defer cancel()

	err := h.controller.Tick(ctx)
	h.recordCycle()
	if err == nil {
		return false
	}

	switch fault.KindOf(err) {
	case fault.SessionNotFound, fault.ParticipantNotFound:
		h.log.Warn("Agent's session is gone, deactivating", "trigger", trigger, "error", err)
		return true
	}
	h.log.Error("Agent cycle failed", "trigger", trigger, "error", err)
	return false
}

// shutdownCycle is the agent's last act before its goroutine returns.
// HiddenProfiles agents get one final-vote demand; a missing vote is logged,
// never synthesised.
func (m *Manager) shutdownCycle(h *agentHandle) {
	if h.kind == models.ExperimentHiddenProfiles {
		ctx, cancel := context.WithTimeout(context.Background(), cycleTimeout)
		if !h.controller.FinalVoteCycle(ctx) {
			h.log.Warn("Agent stopped without casting a final vote")
		}
		cancel()
	}

	cycles := h.cycleCount()
	if h.sinks != nil {
		h.sinks.Memory("shutdown", fmt.Sprintf("agent stopped after %d cycles", cycles))
	}
	h.log.Info("Agent stopped", "cycles", cycles)
}
