package agent

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_EvictsOldestBeyondCapacity(t *testing.T) {
	m := NewMemory(3)
	for i := 1; i <= 5; i++ {
		m.Append(RoleUser, fmt.Sprintf("turn %d", i))
	}

	entries := m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "turn 3", entries[0].Content)
	assert.Equal(t, "turn 5", entries[2].Content)
}

func TestMemory_DefaultCapacity(t *testing.T) {
	m := NewMemory(0)
	for i := 0; i < DefaultMaxMemory+10; i++ {
		m.Append(RoleAssistant, "x")
	}
	assert.Equal(t, DefaultMaxMemory, m.Len())
}

func TestMemory_Transcript(t *testing.T) {
	m := NewMemory(10)
	m.Append(RoleUser, "status update")
	m.Append(RoleAssistant, "SUCCESSFUL ACTION: produce_shape")

	transcript := m.Transcript()
	assert.Equal(t, "[user]\nstatus update\n\n[assistant]\nSUCCESSFUL ACTION: produce_shape", transcript)
}

func TestMemory_EntriesReturnsCopy(t *testing.T) {
	m := NewMemory(10)
	m.Append(RoleUser, "original")

	entries := m.Entries()
	entries[0].Content = "mutated"
	assert.Equal(t, "original", m.Entries()[0].Content)
}

func TestFailureLog_CapsAtTen(t *testing.T) {
	f := &failureLog{}
	for i := 1; i <= 12; i++ {
		f.add(fmt.Sprintf("failure %d", i))
	}

	list := f.list()
	require.Len(t, list, maxFailures)
	assert.Equal(t, "failure 3", list[0])
	assert.Equal(t, "failure 12", list[9])
}
