package llm

import (
	"context"
	"encoding/json"

	openai "github.com/sashabaranov/go-openai"

	"github.com/behavelab/parley/pkg/fault"
)

// chatClient captures the subset of the go-openai client used by the
// adapter. Satisfied by *openai.Client; tests substitute a stub.
type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (
		openai.ChatCompletionResponse, error)
}

// openAIClient implements Client via the OpenAI Chat Completions API.
type openAIClient struct {
	chat chatClient
	cfg  Config
}

func newOpenAIClient(cfg Config) (*openAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fault.Errorf(fault.LLMError, "openai: %s is not set", OpenAIKeyEnv)
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &openAIClient{chat: openai.NewClientWithConfig(clientCfg), cfg: cfg}, nil
}

func (c *openAIClient) Model() string { return c.cfg.Model }

func (c *openAIClient) DecideWithTools(ctx context.Context, system, user string, tools []Tool) ([]ToolCall, error) {
	request := openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    chatMessages(system, user),
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
	}
	encoded, err := encodeOpenAITools(tools)
	if err != nil {
		return nil, err
	}
	request.Tools = encoded

	response, err := c.chat.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, fault.Wrap(fault.LLMError, err, "openai chat completion")
	}

	var calls []ToolCall
	for _, choice := range response.Choices {
		for _, call := range choice.Message.ToolCalls {
			calls = append(calls, ToolCall{
				ID:        call.ID,
				Name:      call.Function.Name,
				Arguments: parseArguments(call.Function.Arguments),
			})
		}
	}
	return calls, nil
}

func (c *openAIClient) DecidePlain(ctx context.Context, system, user string) (string, error) {
	response, err := c.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    chatMessages(system, user),
		Temperature: float32(c.cfg.Temperature),
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return "", fault.Wrap(fault.LLMError, err, "openai chat completion")
	}
	if len(response.Choices) == 0 {
		return "", nil
	}
	return response.Choices[0].Message.Content, nil
}

func chatMessages(system, user string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: user},
	}
}

func encodeOpenAITools(tools []Tool) ([]openai.Tool, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	encoded := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		params, err := json.Marshal(t.InputSchema)
		if err != nil {
			return nil, fault.Wrap(fault.LLMError, err, "marshal tool "+t.Name+" schema")
		}
		encoded = append(encoded, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  json.RawMessage(params),
			},
		})
	}
	return encoded, nil
}

// parseArguments decodes the JSON arguments string of a function call.
// Malformed JSON yields an empty map rather than an error; the tool surface
// reports missing required fields itself.
func parseArguments(raw string) map[string]any {
	if raw == "" {
		return map[string]any{}
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil || args == nil {
		return map[string]any{}
	}
	return args
}
