package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/RaunakChhatwal/BashAgent/internal/agent"
	"github.com/RaunakChhatwal/BashAgent/internal/conversation"
)

// OpenAIProvider implements Provider against
// https://api.openai.com/v1/chat/completions.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider constructs an adapter authenticated with apiKey.
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{client: openai.NewClient(apiKey)}
}

func (p *OpenAIProvider) Name() string { return "openai" }

type openaiStream struct {
	inner *openai.ChatCompletionStream
}

func (s *openaiStream) Close() error { return s.inner.Close() }

// isReasoningModel reports whether model belongs to the o1/o3 reasoning
// family, which spec 4.2 says receive reasoning_effort:"high".
func isReasoningModel(model string) bool {
	return strings.HasPrefix(model, "o1") || strings.HasPrefix(model, "o3")
}

// Send builds the request body described in spec 4.2 ("OpenAI
// chat-completions wire form") and opens a streaming call.
func (p *OpenAIProvider) Send(ctx context.Context, exchanges []conversation.Exchange, current conversation.Exchange, params RequestParams) (Stream, error) {
	messages := []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleSystem, Content: params.SystemPrompt}}
	messages = append(messages, convertOpenAIMessages(exchanges, current)...)

	tools := make([]openai.Tool, 0, len(params.Tools))
	for _, t := range params.Tools {
		var parameters map[string]any
		if err := json.Unmarshal([]byte(t.InputSchema), &parameters); err != nil {
			return nil, fmt.Errorf("tool %q has invalid input_schema: %w", t.Name, err)
		}
		strict := true
		tools = append(tools, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  parameters,
				Strict:      strict,
			},
		})
	}

	req := openai.ChatCompletionRequest{
		Model:               params.Model,
		MaxCompletionTokens: params.MaxTokens,
		Temperature:         float32(params.Temperature),
		Stream:              true,
		Tools:               tools,
		Messages:            messages,
	}
	if isReasoningModel(params.Model) {
		req.ReasoningEffort = "high"
	}

	stream, err := p.client.CreateChatCompletionStream(ctx, req)
	if err != nil {
		return nil, &agent.UpstreamError{Provider: "openai", Message: err.Error()}
	}
	return &openaiStream{inner: stream}, nil
}

func convertOpenAIMessages(exchanges []conversation.Exchange, current conversation.Exchange) []openai.ChatCompletionMessage {
	var messages []openai.ChatCompletionMessage
	for _, ex := range append(append([]conversation.Exchange{}, exchanges...), current) {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: ex.Prompt})
		for _, turn := range ex.Response {
			msg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: turn.Message}
			for _, tu := range turn.ToolUses {
				msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
					ID:   tu.Id,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tu.Name,
						Arguments: tu.Input,
					},
				})
			}
			if msg.Content != "" || len(msg.ToolCalls) > 0 {
				messages = append(messages, msg)
			}
			for _, tu := range turn.ToolUses {
				out := tu.ResolvedOutput()
				messages = append(messages, openai.ChatCompletionMessage{
					Role:       openai.ChatMessageRoleTool,
					ToolCallID: tu.Id,
					Content:    out.Text,
				})
			}
		}
	}
	return messages
}

// Decode implements the chunk decoder from spec 4.2: text deltas append to
// message; the first fully-identifying tool_calls[0] fragment (carrying
// both id and function.name) opens a new ToolUse, later fragments without
// an id append to its accumulated arguments. A new identifying fragment, or
// stream end, finalizes the previous tool use's JSON input.
func (p *OpenAIProvider) Decode(ctx context.Context, s Stream, out io.Writer) (conversation.AssistantResponse, error) {
	stream, ok := s.(*openaiStream)
	if !ok {
		return conversation.AssistantResponse{}, fmt.Errorf("openai decode: wrong stream type %T", s)
	}

	var message strings.Builder
	var toolUses []conversation.ToolUse
	var partialArgs strings.Builder

	finalize := func() error {
		if len(toolUses) == 0 {
			return nil
		}
		last := &toolUses[len(toolUses)-1]
		raw := partialArgs.String()
		if raw == "" {
			raw = "{}"
		}
		if !json.Valid([]byte(raw)) {
			return fmt.Errorf("openai decode: tool arguments not valid JSON: %q", raw)
		}
		last.Input = raw
		return nil
	}

	for {
		resp, err := stream.inner.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return conversation.AssistantResponse{}, &agent.UpstreamError{Provider: "openai", Message: err.Error()}
		}
		if len(resp.Choices) == 0 {
			continue
		}
		delta := resp.Choices[0].Delta

		if delta.Content != "" {
			message.WriteString(delta.Content)
			if _, err := io.WriteString(out, delta.Content); err != nil {
				return conversation.AssistantResponse{}, &agent.IOError{Cause: err}
			}
		}

		if len(delta.ToolCalls) > 0 {
			call := delta.ToolCalls[0]
			identifying := call.ID != "" && call.Function.Name != ""
			if identifying {
				if err := finalize(); err != nil {
					return conversation.AssistantResponse{}, err
				}
				partialArgs.Reset()
				toolUses = append(toolUses, conversation.ToolUse{Name: call.Function.Name, Id: call.ID})
			}
			if call.Function.Arguments != "" {
				partialArgs.WriteString(call.Function.Arguments)
			}
		}
	}

	if err := finalize(); err != nil {
		return conversation.AssistantResponse{}, err
	}

	return conversation.AssistantResponse{Message: message.String(), ToolUses: toolUses}, nil
}
