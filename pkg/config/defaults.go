package config

import "time"

// Built-in provider model names. These track the llm package defaults so a
// bare install works with nothing but an API key in the environment.
const (
	defaultOpenAIModel    = "gpt-4o"
	defaultAnthropicModel = "claude-sonnet-4-20250514"
)

// Default returns the built-in configuration: a server bound to all
// interfaces on 8080 and both hosted providers with their API keys taken
// from the conventional env vars.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		LLM: LLMConfig{
			Providers: map[string]ProviderConfig{
				"openai": {
					Model:     defaultOpenAIModel,
					APIKeyEnv: "OPENAI_API_KEY",
				},
				"anthropic": {
					Model:     defaultAnthropicModel,
					APIKeyEnv: "ANTHROPIC_API_KEY",
				},
			},
		},
		Agents: AgentsConfig{
			LogDir: "logs",
		},
		Retention: RetentionConfig{
			CompletedGrace:  1 * time.Hour,
			EventTTL:        24 * time.Hour,
			CleanupInterval: 1 * time.Hour,
		},
	}
}
