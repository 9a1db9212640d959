package config

import "fmt"

// knownProviders are the backends the llm package can construct clients for.
var knownProviders = map[string]bool{
	"openai":    true,
	"anthropic": true,
}

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateServer(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateAgents(); err != nil {
		return fmt.Errorf("agent validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateServer() error {
	port := v.cfg.Server.Port
	if port < 1 || port > 65535 {
		return NewValidationError("server", "http", "port", fmt.Errorf("%w: %d (must be 1-65535)", ErrInvalidValue, port))
	}
	return nil
}

func (v *ConfigValidator) validateLLM() error {
	for name, provider := range v.cfg.LLM.Providers {
		if !knownProviders[name] {
			return NewValidationError("llm_provider", name, "", fmt.Errorf("%w: unknown provider (must be openai or anthropic)", ErrInvalidValue))
		}
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", ErrMissingRequiredField)
		}
		if provider.MaxTokens < 0 {
			return NewValidationError("llm_provider", name, "max_tokens", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
		}
		if provider.Temperature < 0 || provider.Temperature > 2 {
			return NewValidationError("llm_provider", name, "temperature", fmt.Errorf("%w: %g (must be 0-2)", ErrInvalidValue, provider.Temperature))
		}
	}

	// The default must point at an entry that survived the merge
	if def := v.cfg.LLM.DefaultProvider; def != "" {
		if _, exists := v.cfg.LLM.Providers[def]; !exists {
			return NewValidationError("llm", "default_provider", "", fmt.Errorf("%w: %s", ErrProviderNotFound, def))
		}
	}

	return nil
}

func (v *ConfigValidator) validateAgents() error {
	if v.cfg.Agents.MaxMemory < 0 {
		return NewValidationError("agents", "defaults", "max_memory", fmt.Errorf("%w: must not be negative", ErrInvalidValue))
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r.CompletedGrace <= 0 {
		return NewValidationError("retention", "events", "completed_grace", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.EventTTL <= 0 {
		return NewValidationError("retention", "events", "event_ttl", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention", "events", "cleanup_interval", fmt.Errorf("%w: must be positive", ErrInvalidValue))
	}
	return nil
}
