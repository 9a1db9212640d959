package config

import (
	"fmt"
	"os"
	"time"
)

// Config is the fully resolved runtime configuration: built-in defaults
// overlaid with the user's parley.yaml. It is built once by Initialize and
// never mutated afterwards, so callers may share it freely across goroutines.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	LLM       LLMConfig       `yaml:"llm"`
	Agents    AgentsConfig    `yaml:"agents"`
	Retention RetentionConfig `yaml:"retention"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the host:port string for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LLMConfig groups chat-completion provider settings. Providers is keyed by
// provider name ("openai", "anthropic"); a user entry with the same name
// replaces the built-in one wholesale rather than mixing fields from both.
type LLMConfig struct {
	// DefaultProvider names the entry used when no provider is requested
	// explicitly. Empty means detect from which API key env var is set.
	DefaultProvider string `yaml:"default_provider,omitempty"`

	// PlanJSON switches agents from native function calling to asking for a
	// JSON plan object in free text. Some models follow instructions better
	// in one mode than the other.
	PlanJSON bool `yaml:"plan_json,omitempty"`

	Providers map[string]ProviderConfig `yaml:"providers"`
}

// ProviderConfig defines one chat-completion backend.
type ProviderConfig struct {
	// Model name (required)
	Model string `yaml:"model"`

	// Environment variable name for the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL
	BaseURL string `yaml:"base_url,omitempty"`

	// Zero means the client's own defaults apply.
	MaxTokens   int     `yaml:"max_tokens,omitempty"`
	Temperature float64 `yaml:"temperature,omitempty"`
}

// ResolveKey reads the provider's API key from its configured env var.
// Returns empty when no env var is configured or the var is unset.
func (p ProviderConfig) ResolveKey() string {
	if p.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(p.APIKeyEnv)
}

// AgentsConfig holds defaults for agent controllers started by the manager.
type AgentsConfig struct {
	// LogDir is where per-agent decision logs are written.
	LogDir string `yaml:"log_dir,omitempty"`

	// MaxMemory caps how many perceived events an agent retains between
	// wake-ups. Zero means the agent package default.
	MaxMemory int `yaml:"max_memory,omitempty"`
}

// RetentionConfig controls pruning of the events outbox. Sessions and their
// experiment data are permanent; only the event rows backing WebSocket
// catchup are disposable.
type RetentionConfig struct {
	// CompletedGrace is how long a completed session's events stay available
	// for dashboard catchup before they are pruned.
	CompletedGrace time.Duration `yaml:"completed_grace,omitempty"`

	// EventTTL is the maximum age of any event row before deletion. Catches
	// sessions that were abandoned without completing.
	EventTTL time.Duration `yaml:"event_ttl,omitempty"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval,omitempty"`
}

// Provider resolves a provider entry by name. An empty name falls back to
// the configured default provider; detection from env keys is left to the
// caller, which knows the llm package.
func (c *Config) Provider(name string) (ProviderConfig, error) {
	if name == "" {
		name = c.LLM.DefaultProvider
	}
	if name == "" {
		return ProviderConfig{}, fmt.Errorf("%w: no provider requested and no default configured", ErrProviderNotFound)
	}
	provider, exists := c.LLM.Providers[name]
	if !exists {
		return ProviderConfig{}, fmt.Errorf("%w: %s", ErrProviderNotFound, name)
	}
	return provider, nil
}
