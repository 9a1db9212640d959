package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "parley.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestInitializeDefaults(t *testing.T) {
	// Empty path means built-in defaults only
	cfg, err := Initialize("")

	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Empty(t, cfg.LLM.DefaultProvider)
	assert.False(t, cfg.LLM.PlanJSON)
	assert.Equal(t, "logs", cfg.Agents.LogDir)

	require.Contains(t, cfg.LLM.Providers, "openai")
	require.Contains(t, cfg.LLM.Providers, "anthropic")
	assert.Equal(t, defaultOpenAIModel, cfg.LLM.Providers["openai"].Model)
	assert.Equal(t, "OPENAI_API_KEY", cfg.LLM.Providers["openai"].APIKeyEnv)
	assert.Equal(t, defaultAnthropicModel, cfg.LLM.Providers["anthropic"].Model)

	assert.Equal(t, 1*time.Hour, cfg.Retention.CompletedGrace)
	assert.Equal(t, 24*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 1*time.Hour, cfg.Retention.CleanupInterval)
}

func TestInitializeFileOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090

llm:
  default_provider: anthropic
  plan_json: true
  providers:
    anthropic:
      model: claude-opus-4-20250514
      api_key_env: RESEARCH_ANTHROPIC_KEY

agents:
  log_dir: /var/log/parley
  max_memory: 80

retention:
  event_ttl: 48h
`)

	cfg, err := Initialize(path)
	require.NoError(t, err)

	// Unset fields keep their defaults
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)

	assert.Equal(t, "anthropic", cfg.LLM.DefaultProvider)
	assert.True(t, cfg.LLM.PlanJSON)
	assert.Equal(t, "/var/log/parley", cfg.Agents.LogDir)
	assert.Equal(t, 80, cfg.Agents.MaxMemory)

	// The built-in openai entry survives alongside the user's anthropic one
	assert.Contains(t, cfg.LLM.Providers, "openai")

	// User provider entries replace built-ins wholesale
	anthropic := cfg.LLM.Providers["anthropic"]
	assert.Equal(t, "claude-opus-4-20250514", anthropic.Model)
	assert.Equal(t, "RESEARCH_ANTHROPIC_KEY", anthropic.APIKeyEnv)

	// Retention merges field-wise: the overridden TTL, defaults for the rest
	assert.Equal(t, 48*time.Hour, cfg.Retention.EventTTL)
	assert.Equal(t, 1*time.Hour, cfg.Retention.CompletedGrace)
	assert.Equal(t, 1*time.Hour, cfg.Retention.CleanupInterval)
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("PARLEY_TEST_BASE_URL", "http://proxy.internal:9000/v1")

	path := writeConfig(t, `
llm:
  providers:
    openai:
      model: gpt-4o
      base_url: "{{.PARLEY_TEST_BASE_URL}}"
`)

	cfg, err := Initialize(path)
	require.NoError(t, err)
	assert.Equal(t, "http://proxy.internal:9000/v1", cfg.LLM.Providers["openai"].BaseURL)
}

func TestInitializeConfigNotFound(t *testing.T) {
	_, err := Initialize("/nonexistent/parley.yaml")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not closed")

	_, err := Initialize(path)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "port out of range",
			yaml:    "server:\n  port: 99999",
			wantErr: "server validation failed",
		},
		{
			name:    "unknown provider name",
			yaml:    "llm:\n  providers:\n    mistral:\n      model: mistral-large",
			wantErr: "LLM provider validation failed",
		},
		{
			name:    "provider without model",
			yaml:    "llm:\n  providers:\n    openai:\n      api_key_env: OPENAI_API_KEY",
			wantErr: "missing required field",
		},
		{
			name:    "default provider not defined",
			yaml:    "llm:\n  default_provider: google",
			wantErr: "LLM provider not found",
		},
		{
			name:    "temperature out of range",
			yaml:    "llm:\n  providers:\n    openai:\n      model: gpt-4o\n      temperature: 3.5",
			wantErr: "temperature",
		},
		{
			name:    "negative max memory",
			yaml:    "agents:\n  max_memory: -1",
			wantErr: "agent validation failed",
		},
		{
			name:    "negative event ttl",
			yaml:    "retention:\n  event_ttl: -5m",
			wantErr: "retention validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.yaml)

			_, err := Initialize(path)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
