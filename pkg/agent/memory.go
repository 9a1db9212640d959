// Package agent runs the perceive-decide-act loop for one LLM-driven
// participant. A Controller owns the agent's bounded conversation memory and
// failure history, builds prompts through pkg/agent/prompt, decides through
// the pkg/llm port, and acts through the pkg/tools dispatcher. Controllers
// never abort on failures: every error becomes a recorded failure the next
// status update surfaces.
package agent

import (
	"fmt"
	"strings"
)

// Memory entry roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultMaxMemory bounds the conversation ring when the caller sets none.
const DefaultMaxMemory = 40

// maxFailures bounds the failure history surfaced in status updates.
const maxFailures = 10

// Entry is one remembered conversation turn.
type Entry struct {
	Role    string
	Content string
}

// Memory is a bounded FIFO of conversation turns. Appending beyond capacity
// drops the oldest entries. Not safe for concurrent use; only the controller
// goroutine that owns the agent touches it.
type Memory struct {
	entries []Entry
	max     int
}

// NewMemory creates a memory ring holding at most max entries.
func NewMemory(max int) *Memory {
	if max <= 0 {
		max = DefaultMaxMemory
	}
	return &Memory{max: max}
}

// Append records a turn, evicting the oldest entries beyond capacity.
func (m *Memory) Append(role, content string) {
	m.entries = append(m.entries, Entry{Role: role, Content: content})
	if over := len(m.entries) - m.max; over > 0 {
		m.entries = append(m.entries[:0], m.entries[over:]...)
	}
}

// Len returns the number of remembered turns.
func (m *Memory) Len() int { return len(m.entries) }

// Entries returns a copy of the remembered turns, oldest first.
func (m *Memory) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Transcript renders the ring as the user prompt for a decide call: each
// turn prefixed with its role, oldest first.
func (m *Memory) Transcript() string {
	var sb strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "[%s]\n%s", e.Role, e.Content)
	}
	return sb.String()
}

// failureLog is the bounded FIFO of recent action failures.
type failureLog struct {
	entries []string
}

// add records a failure, evicting the oldest beyond capacity.
func (f *failureLog) add(failure string) {
	f.entries = append(f.entries, failure)
	if over := len(f.entries) - maxFailures; over > 0 {
		f.entries = append(f.entries[:0], f.entries[over:]...)
	}
}

// list returns a copy, oldest first.
func (f *failureLog) list() []string {
	out := make([]string, len(f.entries))
	copy(out, f.entries)
	return out
}
