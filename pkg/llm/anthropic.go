package llm

import (
	"context"
	"encoding/json"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/behavelab/parley/pkg/fault"
)

// messagesClient captures the subset of the Anthropic SDK used by the
// adapter. Satisfied by *sdk.MessageService; tests substitute a stub.
type messagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// anthropicClient implements Client via the Anthropic Messages API.
type anthropicClient struct {
	msg messagesClient
	cfg Config
}

func newAnthropicClient(cfg Config) (*anthropicClient, error) {
	if cfg.APIKey == "" {
		return nil, fault.Errorf(fault.LLMError, "anthropic: %s is not set", AnthropicKeyEnv)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultAnthropicModel
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	ac := sdk.NewClient(opts...)
	return &anthropicClient{msg: &ac.Messages, cfg: cfg}, nil
}

func (c *anthropicClient) Model() string { return c.cfg.Model }

func (c *anthropicClient) DecideWithTools(ctx context.Context, system, user string, tools []Tool) ([]ToolCall, error) {
	params := c.baseParams(system, user)
	encoded, err := encodeAnthropicTools(tools)
	if err != nil {
		return nil, err
	}
	params.Tools = encoded

	msg, err := c.msg.New(ctx, params)
	if err != nil {
		return nil, fault.Wrap(fault.LLMError, err, "anthropic messages.new")
	}

	var calls []ToolCall
	for _, block := range msg.Content {
		if block.Type != "tool_use" {
			continue
		}
		args := map[string]any{}
		if len(block.Input) > 0 {
			if err := json.Unmarshal(block.Input, &args); err != nil {
				args = map[string]any{}
			}
		}
		calls = append(calls, ToolCall{ID: block.ID, Name: block.Name, Arguments: args})
	}
	return calls, nil
}

func (c *anthropicClient) DecidePlain(ctx context.Context, system, user string) (string, error) {
	msg, err := c.msg.New(ctx, c.baseParams(system, user))
	if err != nil {
		return "", fault.Wrap(fault.LLMError, err, "anthropic messages.new")
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

func (c *anthropicClient) baseParams(system, user string) sdk.MessageNewParams {
	params := sdk.MessageNewParams{
		Model:     sdk.Model(c.cfg.Model),
		MaxTokens: int64(c.cfg.MaxTokens),
		Messages:  []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(user))},
	}
	if system != "" {
		params.System = []sdk.TextBlockParam{{Text: system}}
	}
	if c.cfg.Temperature > 0 {
		params.Temperature = sdk.Float(c.cfg.Temperature)
	}
	return params
}

func encodeAnthropicTools(tools []Tool) ([]sdk.ToolUnionParam, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	encoded := make([]sdk.ToolUnionParam, 0, len(tools))
	for _, t := range tools {
		u := sdk.ToolUnionParamOfTool(sdk.ToolInputSchemaParam{ExtraFields: t.InputSchema}, t.Name)
		if u.OfTool != nil && t.Description != "" {
			u.OfTool.Description = sdk.String(t.Description)
		}
		encoded = append(encoded, u)
	}
	return encoded, nil
}
