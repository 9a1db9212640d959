// Package agentlog writes the per-agent run files under logs/<session_code>/:
//
//	agent_<code>.log   — one JSON line per tool call (tick, tool, ok, error)
//	llm_<code>.log     — every request and raw reply, timestamped and headered
//	memory_<code>.log  — memory transitions (init, status updates, failures)
//
// Files are append-only and newline-delimited. Each write opens and closes
// the file so no handle outlives the call; a write failure is logged and
// swallowed because a broken sink must never stop an agent. New truncates
// all three files so one run stays self-contained.
package agentlog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseDir is where session log directories are created.
const DefaultBaseDir = "logs"

const llmHeader = "================================================================================"

// Sinks is the set of log files for one agent. Safe for use from the single
// controller goroutine that owns the agent; writes from triggers go through
// the same controller.
type Sinks struct {
	agentPath  string
	llmPath    string
	memoryPath string
}

// New creates (and truncates) the three sink files for an agent run.
func New(baseDir, sessionCode, participantCode string) (*Sinks, error) {
	if baseDir == "" {
		baseDir = DefaultBaseDir
	}
	dir := filepath.Join(baseDir, sessionCode)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", dir, err)
	}

	s := &Sinks{
		agentPath:  filepath.Join(dir, "agent_"+participantCode+".log"),
		llmPath:    filepath.Join(dir, "llm_"+participantCode+".log"),
		memoryPath: filepath.Join(dir, "memory_"+participantCode+".log"),
	}
	for _, path := range []string{s.agentPath, s.llmPath, s.memoryPath} {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			return nil, fmt.Errorf("truncating %s: %w", path, err)
		}
	}
	return s, nil
}

// actionRecord is one agent_<code>.log line.
type actionRecord struct {
	Timestamp string `json:"timestamp"`
	Tick      int    `json:"tick"`
	Tool      string `json:"tool"`
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
}

// Action records one tool call outcome.
func (s *Sinks) Action(tick int, tool string, ok bool, errMsg string) {
	line, err := json.Marshal(actionRecord{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Tick:      tick,
		Tool:      tool,
		OK:        ok,
		Error:     errMsg,
	})
	if err != nil {
		slog.Warn("Failed to encode action record", "tool", tool, "error", err)
		return
	}
	s.append(s.agentPath, string(line)+"\n")
}

// LLMRequest records an outgoing decide call.
func (s *Sinks) LLMRequest(model, system, user string) {
	s.append(s.llmPath, fmt.Sprintf("%s\nREQUEST %s model=%s\n%s\n--- system ---\n%s\n--- user ---\n%s\n",
		llmHeader, time.Now().UTC().Format(time.RFC3339), model, llmHeader, system, user))
}

// LLMResponse records a raw model reply, or the transport error in its place.
func (s *Sinks) LLMResponse(model, raw string, err error) {
	status := "RESPONSE"
	body := raw
	if err != nil {
		status = "ERROR"
		body = err.Error()
	}
	s.append(s.llmPath, fmt.Sprintf("%s\n%s %s model=%s\n%s\n%s\n",
		llmHeader, status, time.Now().UTC().Format(time.RFC3339), model, llmHeader, body))
}

// Memory records a memory transition: initialisation, a status update push,
// a failure summary, the final vote marker, shutdown sentinels.
func (s *Sinks) Memory(event, detail string) {
	s.append(s.memoryPath, fmt.Sprintf("[%s] %s: %s\n",
		time.Now().UTC().Format(time.RFC3339), event, detail))
}

func (s *Sinks) append(path, text string) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.Warn("Failed to open agent log sink", "path", path, "error", err)
		return
	}
	defer f.Close()
	if _, err := f.WriteString(text); err != nil {
		slog.Warn("Failed to append to agent log sink", "path", path, "error", err)
	}
}
