package config

import (
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Start from built-in defaults
//  2. Load parley.yaml when a path is given
//  3. Expand environment variables
//  4. Parse YAML into structs
//  5. Merge user values over defaults
//  6. Validate all configuration
//  7. Return Config ready for use
//
// An empty path means run on built-in defaults alone; a named path that does
// not exist is an error.
func Initialize(path string) (*Config, error) {
	log := slog.With("config_file", path)
	log.Info("Initializing configuration")

	// 1. Load configuration file over built-in defaults
	cfg, err := load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"llm_providers", len(cfg.LLM.Providers),
		"default_provider", cfg.LLM.DefaultProvider,
		"listen_addr", cfg.Server.Addr())

	return cfg, nil
}

// load is the internal loader (not exported)
func load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewLoadError(path, fmt.Errorf("%w: %s", ErrConfigNotFound, path))
		}
		return nil, NewLoadError(path, err)
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}

	// Provider entries override wholesale: a user-defined "openai" replaces
	// the built-in one rather than mixing fields from both. Carve the map
	// out before the struct merge so mergo does not blend entries key-wise.
	userProviders := user.LLM.Providers
	user.LLM.Providers = nil

	// Merge user config over defaults (non-zero values override)
	if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
		return nil, NewLoadError(path, fmt.Errorf("failed to merge configuration: %w", err))
	}
	cfg.LLM.Providers = mergeProviders(cfg.LLM.Providers, userProviders)

	return cfg, nil
}

// mergeProviders merges built-in and user-defined provider entries.
// User-defined entries take precedence over built-in ones with the same name.
func mergeProviders(builtin, user map[string]ProviderConfig) map[string]ProviderConfig {
	merged := make(map[string]ProviderConfig, len(builtin)+len(user))
	for name, provider := range builtin {
		merged[name] = provider
	}
	for name, provider := range user {
		merged[name] = provider
	}
	return merged
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}
