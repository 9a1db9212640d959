package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/behavelab/parley/pkg/llm"
)

// LLMScriptEntry defines a single scripted LLM decision.
type LLMScriptEntry struct {
	// Response content (at most one of ToolCalls/Plain/Error is set; an
	// empty entry means "do nothing", which is a valid agent decision)
	ToolCalls []llm.ToolCall // returned from DecideWithTools
	Plain     string         // returned from DecidePlain (JSON plan mode)
	Error     error          // returned as the call error

	// Test control
	BlockUntilCancelled bool            // block the call until ctx is cancelled
	WaitCh              <-chan struct{} // block the call until closed, then respond normally
	OnBlock             chan<- struct{} // notified when the call enters its blocking path
}

// CapturedCall records one LLM invocation for assertions.
type CapturedCall struct {
	System string
	User   string
	Tools  []llm.Tool // nil for DecidePlain calls
}

// ScriptedLLMClient implements llm.Client with a dual-dispatch mock:
// sequential fallback for single-agent tests, plus participant-aware routing
// for sessions running several agents whose call order is non-deterministic.
type ScriptedLLMClient struct {
	mu         sync.Mutex
	sequential []LLMScriptEntry // consumed in order for non-routed calls
	seqIndex   int
	routes     map[string][]LLMScriptEntry // participant code → per-agent script
	routeIndex map[string]int              // participant code → current index
	captured   []CapturedCall
}

// NewScriptedLLMClient creates a new ScriptedLLMClient.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{
		routes:     make(map[string][]LLMScriptEntry),
		routeIndex: make(map[string]int),
	}
}

// AddSequential adds an entry consumed in order for non-routed calls.
func (c *ScriptedLLMClient) AddSequential(entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sequential = append(c.sequential, entry)
}

// AddRouted adds an entry for a specific participant code (matched from the
// system prompt). Used when several agents run in parallel and need
// differentiated responses.
func (c *ScriptedLLMClient) AddRouted(participantCode string, entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routes[participantCode] = append(c.routes[participantCode], entry)
}

// DecideWithTools implements llm.Client.
func (c *ScriptedLLMClient) DecideWithTools(ctx context.Context, system, user string, tools []llm.Tool) ([]llm.ToolCall, error) {
	entry, err := c.record(CapturedCall{System: system, User: user, Tools: tools})
	if err != nil {
		return nil, err
	}
	if err := c.maybeBlock(ctx, entry); err != nil {
		return nil, err
	}
	if entry.Error != nil {
		return nil, entry.Error
	}
	return entry.ToolCalls, nil
}

// DecidePlain implements llm.Client.
func (c *ScriptedLLMClient) DecidePlain(ctx context.Context, system, user string) (string, error) {
	entry, err := c.record(CapturedCall{System: system, User: user})
	if err != nil {
		return "", err
	}
	if err := c.maybeBlock(ctx, entry); err != nil {
		return "", err
	}
	if entry.Error != nil {
		return "", entry.Error
	}
	return entry.Plain, nil
}

// Model implements llm.Client.
func (c *ScriptedLLMClient) Model() string { return "scripted" }

// CallCount returns the total number of decide calls made.
func (c *ScriptedLLMClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.captured)
}

// CapturedCalls returns a snapshot of every decide call received so far.
func (c *ScriptedLLMClient) CapturedCalls() []CapturedCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	result := make([]CapturedCall, len(c.captured))
	copy(result, c.captured)
	return result
}

// record captures the call and selects its script entry under the lock.
func (c *ScriptedLLMClient) record(call CapturedCall) (*LLMScriptEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.captured = append(c.captured, call)
	return c.nextEntry(call.System)
}

// maybeBlock handles the entry's blocking controls outside the lock.
func (c *ScriptedLLMClient) maybeBlock(ctx context.Context, entry *LLMScriptEntry) error {
	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		return ctx.Err()
	}
	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// nextEntry selects the next script entry using dual dispatch.
// Must be called with c.mu held.
func (c *ScriptedLLMClient) nextEntry(system string) (*LLMScriptEntry, error) {
	code := extractParticipantCode(system)

	// Try routed dispatch first.
	if code != "" {
		if entries, ok := c.routes[code]; ok {
			idx := c.routeIndex[code]
			if idx < len(entries) {
				c.routeIndex[code] = idx + 1
				return &entries[idx], nil
			}
		}
	}

	// Fall back to sequential dispatch.
	if c.seqIndex < len(c.sequential) {
		entry := &c.sequential[c.seqIndex]
		c.seqIndex++
		return entry, nil
	}

	return nil, fmt.Errorf("ScriptedLLMClient: no more entries (participant=%q, sequential=%d/%d)",
		code, c.seqIndex, len(c.sequential))
}

// extractParticipantCode pulls the participant code out of the system
// prompt. Every system prompt opens with "You are participant <CODE> in a
// live research experiment", so the code is the token after the prefix.
func extractParticipantCode(system string) string {
	const prefix = "You are participant "
	idx := strings.Index(system, prefix)
	if idx < 0 {
		return ""
	}
	rest := system[idx+len(prefix):]
	if end := strings.IndexAny(rest, " \n,."); end > 0 {
		return rest[:end]
	}
	return ""
}
