package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/behavelab/parley/pkg/fault"
)

// stubChat is a canned-response openai chat client.
type stubChat struct {
	response openai.ChatCompletionResponse
	err      error
	lastReq  openai.ChatCompletionRequest
}

func (s *stubChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.lastReq = req
	return s.response, s.err
}

func TestOpenAIDecideWithTools(t *testing.T) {
	stub := &stubChat{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					ToolCalls: []openai.ToolCall{{
						ID:   "call_1",
						Type: openai.ToolTypeFunction,
						Function: openai.FunctionCall{
							Name:      "send_message",
							Arguments: `{"recipient": "Bob", "content": "hi"}`,
						},
					}},
				},
			}},
		},
	}
	client := &openAIClient{chat: stub, cfg: Config{Model: "gpt-4o", Temperature: 0.7, MaxTokens: 1024}}

	tools := []Tool{{
		Name:        "send_message",
		Description: "Send a message to another participant.",
		InputSchema: map[string]any{"type": "object"},
	}}
	calls, err := client.DecideWithTools(context.Background(), "system", "user", tools)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "send_message", calls[0].Name)
	assert.Equal(t, "Bob", calls[0].Arguments["recipient"])
	assert.Equal(t, "hi", calls[0].Arguments["content"])

	// Request carries the palette and both prompt roles.
	require.Len(t, stub.lastReq.Tools, 1)
	assert.Equal(t, "send_message", stub.lastReq.Tools[0].Function.Name)
	require.Len(t, stub.lastReq.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, stub.lastReq.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, stub.lastReq.Messages[1].Role)
}

func TestOpenAIDecideWithToolsZeroCalls(t *testing.T) {
	stub := &stubChat{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Content: "I'll wait and observe."},
			}},
		},
	}
	client := &openAIClient{chat: stub, cfg: Config{Model: "gpt-4o"}}

	calls, err := client.DecideWithTools(context.Background(), "system", "user", nil)
	require.NoError(t, err)
	assert.Empty(t, calls)
}

func TestOpenAIProviderErrorIsLLMError(t *testing.T) {
	stub := &stubChat{err: errors.New("rate limited")}
	client := &openAIClient{chat: stub, cfg: Config{Model: "gpt-4o"}}

	_, err := client.DecideWithTools(context.Background(), "system", "user", nil)
	require.Error(t, err)
	assert.Equal(t, fault.LLMError, fault.KindOf(err))

	_, err = client.DecidePlain(context.Background(), "system", "user")
	require.Error(t, err)
	assert.Equal(t, fault.LLMError, fault.KindOf(err))
}

func TestOpenAIDecidePlain(t *testing.T) {
	stub := &stubChat{
		response: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{Content: `{"actions": []}`},
			}},
		},
	}
	client := &openAIClient{chat: stub, cfg: Config{Model: "gpt-4o"}}

	reply, err := client.DecidePlain(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"actions": []}`, reply)
	assert.Empty(t, stub.lastReq.Tools)
}

func TestParseArgumentsMalformed(t *testing.T) {
	assert.Equal(t, map[string]any{}, parseArguments(""))
	assert.Equal(t, map[string]any{}, parseArguments("{not json"))
	assert.Equal(t, map[string]any{}, parseArguments("null"))
	assert.Equal(t, map[string]any{"a": float64(1)}, parseArguments(`{"a": 1}`))
}

// stubMessages is a canned-response anthropic messages client.
type stubMessages struct {
	message  *sdk.Message
	err      error
	lastBody sdk.MessageNewParams
}

func (s *stubMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	s.lastBody = body
	return s.message, s.err
}

func TestAnthropicDecideWithTools(t *testing.T) {
	stub := &stubMessages{
		message: &sdk.Message{
			Content: []sdk.ContentBlockUnion{
				{Type: "text", Text: "I will make an offer."},
				{Type: "tool_use", ID: "toolu_1", Name: "create_trade_offer",
					Input: json.RawMessage(`{"recipient": "Bob", "offer_type": "sell", "shape": "circle", "quantity": 1, "price_per_unit": 20}`)},
			},
		},
	}
	client := &anthropicClient{msg: stub, cfg: Config{Model: "claude-sonnet-4-20250514", Temperature: 0.7, MaxTokens: 1024}}

	tools := []Tool{{
		Name:        "create_trade_offer",
		Description: "Propose a trade to another participant.",
		InputSchema: map[string]any{"type": "object"},
	}}
	calls, err := client.DecideWithTools(context.Background(), "system", "user", tools)
	require.NoError(t, err)
	require.Len(t, calls, 1)
	assert.Equal(t, "create_trade_offer", calls[0].Name)
	assert.Equal(t, "toolu_1", calls[0].ID)
	assert.Equal(t, "circle", calls[0].Arguments["shape"])
	assert.Equal(t, float64(20), calls[0].Arguments["price_per_unit"])

	require.Len(t, stub.lastBody.Tools, 1)
	require.Len(t, stub.lastBody.System, 1)
	assert.Equal(t, "system", stub.lastBody.System[0].Text)
}

func TestAnthropicDecidePlain(t *testing.T) {
	stub := &stubMessages{
		message: &sdk.Message{
			Content: []sdk.ContentBlockUnion{
				{Type: "text", Text: "part one "},
				{Type: "text", Text: "part two"},
			},
		},
	}
	client := &anthropicClient{msg: stub, cfg: Config{Model: "claude-sonnet-4-20250514"}}

	reply, err := client.DecidePlain(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "part one part two", reply)
}

func TestAnthropicProviderErrorIsLLMError(t *testing.T) {
	stub := &stubMessages{err: errors.New("overloaded")}
	client := &anthropicClient{msg: stub, cfg: Config{Model: "claude-sonnet-4-20250514"}}

	_, err := client.DecideWithTools(context.Background(), "system", "user", nil)
	require.Error(t, err)
	assert.Equal(t, fault.LLMError, fault.KindOf(err))
}

func TestDetectProvider(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "")
	t.Setenv(AnthropicKeyEnv, "")
	assert.Equal(t, Provider(""), DetectProvider())

	t.Setenv(AnthropicKeyEnv, "sk-ant-test")
	assert.Equal(t, ProviderAnthropic, DetectProvider())

	// OpenAI wins when both keys are present.
	t.Setenv(OpenAIKeyEnv, "sk-test")
	assert.Equal(t, ProviderOpenAI, DetectProvider())
}

func TestNewRequiresProvider(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "")
	t.Setenv(AnthropicKeyEnv, "")

	_, err := New(Config{})
	require.Error(t, err)
	assert.Equal(t, fault.LLMError, fault.KindOf(err))
}

func TestNewAppliesDefaults(t *testing.T) {
	t.Setenv(OpenAIKeyEnv, "sk-test")

	client, err := New(Config{Provider: ProviderOpenAI})
	require.NoError(t, err)
	assert.Equal(t, DefaultOpenAIModel, client.Model())
}
