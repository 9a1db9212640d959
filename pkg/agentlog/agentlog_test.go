package agentlog

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TruncatesPreviousRun(t *testing.T) {
	base := t.TempDir()

	s, err := New(base, "SABC12", "Alice")
	require.NoError(t, err)
	s.Memory("init", "first run")

	s, err = New(base, "SABC12", "Alice")
	require.NoError(t, err)
	s.Memory("init", "second run")

	data, err := os.ReadFile(filepath.Join(base, "SABC12", "memory_Alice.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestAction_JSONLines(t *testing.T) {
	base := t.TempDir()
	s, err := New(base, "SABC12", "Alice")
	require.NoError(t, err)

	s.Action(1, "produce_shape", true, "")
	s.Action(2, "create_trade_offer", false, "InvalidPrice: 99 outside [15, 35]")

	data, err := os.ReadFile(filepath.Join(base, "SABC12", "agent_Alice.log"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first actionRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, 1, first.Tick)
	assert.Equal(t, "produce_shape", first.Tool)
	assert.True(t, first.OK)
	assert.Empty(t, first.Error)

	var second actionRecord
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.False(t, second.OK)
	assert.Contains(t, second.Error, "InvalidPrice")
}

func TestLLMSink_HeadersAndErrors(t *testing.T) {
	base := t.TempDir()
	s, err := New(base, "SABC12", "Alice")
	require.NoError(t, err)

	s.LLMRequest("gpt-4o", "you are Alice", "status update text")
	s.LLMResponse("gpt-4o", `{"actions":[]}`, nil)
	s.LLMResponse("gpt-4o", "", errors.New("rate limited"))

	data, err := os.ReadFile(filepath.Join(base, "SABC12", "llm_Alice.log"))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "REQUEST")
	assert.Contains(t, text, "model=gpt-4o")
	assert.Contains(t, text, "--- system ---\nyou are Alice")
	assert.Contains(t, text, "--- user ---\nstatus update text")
	assert.Contains(t, text, `{"actions":[]}`)
	assert.Contains(t, text, "ERROR")
	assert.Contains(t, text, "rate limited")
}

func TestAppend_SurvivesMissingDirectory(t *testing.T) {
	// A sink pointed at a removed directory logs a warning and drops the
	// write instead of failing the agent.
	base := t.TempDir()
	s, err := New(base, "SABC12", "Alice")
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(filepath.Join(base, "SABC12")))

	s.Memory("status", "written after the directory vanished")
}
