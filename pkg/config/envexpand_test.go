package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name  string
		input string
		env   map[string]string
		want  string
	}{
		{
			name:  "simple substitution with {{.VAR}}",
			input: "api_key_env: {{.KEY_VAR}}",
			env:   map[string]string{"KEY_VAR": "MY_KEY"},
			want:  "api_key_env: MY_KEY",
		},
		{
			name:  "literal ${VAR} is NOT expanded (no collision)",
			input: "description: ${BUDGET}",
			env:   map[string]string{"BUDGET": "300"},
			want:  "description: ${BUDGET}",
		},
		{
			name:  "literal $ in prose preserved",
			input: "description: trade circles at $20 each",
			env:   map[string]string{},
			want:  "description: trade circles at $20 each",
		},
		{
			name:  "multiple substitutions in one line",
			input: "base_url: {{.PROTOCOL}}://{{.HOST}}:{{.PORT}}",
			env: map[string]string{
				"PROTOCOL": "https",
				"HOST":     "example.com",
				"PORT":     "443",
			},
			want: "base_url: https://example.com:443",
		},
		{
			name:  "missing variable expands to empty",
			input: "base_url: {{.MISSING_VAR}}",
			env:   map[string]string{},
			want:  "base_url: ",
		},
		{
			name:  "no substitution when no variables",
			input: "static: value",
			env:   map[string]string{"UNUSED": "value"},
			want:  "static: value",
		},
		{
			name: "variables in nested YAML structure",
			input: "server:\n  host: {{.HOST}}\n  port: {{.PORT}}",
			env: map[string]string{
				"HOST": "localhost",
				"PORT": "9090",
			},
			want: "server:\n  host: localhost\n  port: 9090",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.want, string(result))
		})
	}
}

// Malformed template syntax is passed through unchanged so the YAML parser
// can handle the content or fail with a clearer error message.
func TestExpandEnvMalformedTemplatePassthrough(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "unclosed template",
			input: "api_key_env: {{.KEY_VAR",
		},
		{
			name:  "variable without leading dot",
			input: "api_key_env: {{KEY_VAR}}",
		},
		{
			name:  "empty template",
			input: "api_key_env: {{}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("KEY_VAR", "should-not-appear")

			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.input, string(result))
			assert.NotContains(t, string(result), "should-not-appear")
		})
	}
}

func TestExpandEnvPreservesOriginalWhenNoVariables(t *testing.T) {
	input := `
# This is a comment
llm:
  default_provider: openai
server:
  port: 8080
`

	result := ExpandEnv([]byte(input))
	assert.Equal(t, input, string(result))
}
