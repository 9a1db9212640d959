// Package llm implements the chat-completion port agents use to make
// decisions. Two providers are supported, OpenAI and Anthropic, behind a
// shared Client interface; the adapters translate the provider-neutral tool
// palette into each provider's dialect and map tool-use replies back into
// generic ToolCall values.
//
// Provider errors never escape as panics: every failure surfaces as a
// fault.LLMError so the agent controller can record it and carry on.
package llm

import (
	"context"
	"fmt"
	"os"

	"github.com/behavelab/parley/pkg/fault"
)

// Provider identifies a chat-completion backend.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Mode selects how the model communicates its decision.
type Mode string

const (
	// ModeFunction uses native function/tool calling. Default.
	ModeFunction Mode = "function"
	// ModeJSON asks for a free-text reply containing a JSON plan object.
	ModeJSON Mode = "json"
)

// Default generation parameters applied when Config leaves them zero.
const (
	DefaultOpenAIModel    = "gpt-4o"
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultMaxTokens      = 4096
	DefaultTemperature    = 0.7
)

// Environment variables consulted for API keys.
const (
	OpenAIKeyEnv    = "OPENAI_API_KEY"
	AnthropicKeyEnv = "ANTHROPIC_API_KEY"
)

// Tool describes one callable tool in provider-neutral form. InputSchema is
// a JSON Schema object ({"type":"object","properties":{...},...}).
type Tool struct {
	Name        string
	Description string
	InputSchema map[string]any
}

// ToolCall is one tool invocation chosen by the model.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// Config holds provider and generation settings for one client.
type Config struct {
	Provider    Provider
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
	Mode        Mode
}

// Client is the chat-completion port. Implementations must be safe for
// concurrent use; agents share one client per provider config.
type Client interface {
	// DecideWithTools sends the system and user prompts along with a tool
	// palette and returns the tool calls the model chose. Zero calls is a
	// valid reply and means the model elected to do nothing.
	DecideWithTools(ctx context.Context, system, user string, tools []Tool) ([]ToolCall, error)

	// DecidePlain sends the system and user prompts with no tools and
	// returns the raw text reply. Used in JSON plan mode; feed the reply to
	// ExtractPlan.
	DecidePlain(ctx context.Context, system, user string) (string, error)

	// Model returns the concrete model identifier in use, for logging.
	Model() string
}

// New builds a Client for the given config. Provider resolution: an explicit
// cfg.Provider wins; otherwise the provider is detected from which API key
// env var is set (OpenAI preferred when both are present).
func New(cfg Config) (Client, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = DetectProvider()
	}
	if cfg.APIKey == "" {
		cfg.APIKey = keyFromEnv(provider)
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeFunction
	}

	switch provider {
	case ProviderOpenAI:
		return newOpenAIClient(cfg)
	case ProviderAnthropic:
		return newAnthropicClient(cfg)
	case "":
		return nil, fault.New(fault.LLMError,
			fmt.Sprintf("no LLM provider configured: set %s or %s", OpenAIKeyEnv, AnthropicKeyEnv))
	default:
		return nil, fault.Errorf(fault.LLMError, "unknown LLM provider %q", provider)
	}
}

// DetectProvider returns the provider whose API key is present in the
// environment, or "" when neither key is set. OpenAI wins when both are set;
// pass an explicit Config.Provider to override.
func DetectProvider() Provider {
	if os.Getenv(OpenAIKeyEnv) != "" {
		return ProviderOpenAI
	}
	if os.Getenv(AnthropicKeyEnv) != "" {
		return ProviderAnthropic
	}
	return ""
}

func keyFromEnv(p Provider) string {
	switch p {
	case ProviderOpenAI:
		return os.Getenv(OpenAIKeyEnv)
	case ProviderAnthropic:
		return os.Getenv(AnthropicKeyEnv)
	}
	return ""
}
