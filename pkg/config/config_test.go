package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderLookup(t *testing.T) {
	cfg := Default()

	t.Run("by name", func(t *testing.T) {
		p, err := cfg.Provider("anthropic")
		require.NoError(t, err)
		assert.Equal(t, defaultAnthropicModel, p.Model)
	})

	t.Run("empty name falls back to default provider", func(t *testing.T) {
		cfg := Default()
		cfg.LLM.DefaultProvider = "openai"

		p, err := cfg.Provider("")
		require.NoError(t, err)
		assert.Equal(t, defaultOpenAIModel, p.Model)
	})

	t.Run("empty name without default", func(t *testing.T) {
		_, err := cfg.Provider("")
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := cfg.Provider("google")
		assert.ErrorIs(t, err, ErrProviderNotFound)
	})
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 9090}
	assert.Equal(t, "127.0.0.1:9090", s.Addr())
}

func TestProviderResolveKey(t *testing.T) {
	t.Setenv("PARLEY_TEST_API_KEY", "sk-test-123")

	p := ProviderConfig{APIKeyEnv: "PARLEY_TEST_API_KEY"}
	assert.Equal(t, "sk-test-123", p.ResolveKey())

	assert.Empty(t, ProviderConfig{}.ResolveKey())
	assert.Empty(t, ProviderConfig{APIKeyEnv: "PARLEY_TEST_UNSET_KEY"}.ResolveKey())
}
