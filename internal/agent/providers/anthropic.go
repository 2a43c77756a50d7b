package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"

	"github.com/RaunakChhatwal/BashAgent/internal/agent"
	"github.com/RaunakChhatwal/BashAgent/internal/conversation"
)

// AnthropicProvider implements Provider against https://api.anthropic.com/v1/messages.
type AnthropicProvider struct {
	client *anthropic.Client
}

// NewAnthropicProvider constructs an adapter authenticated with apiKey.
func NewAnthropicProvider(apiKey string) *AnthropicProvider {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicProvider{client: &client}
}

func (p *AnthropicProvider) Name() string { return "anthropic" }

type anthropicStream struct {
	inner *ssestream.Stream[anthropic.MessageStreamEventUnion]
}

func (s *anthropicStream) Close() error { return s.inner.Close() }

// Send builds the request body described in spec 4.2 ("Anthropic wire
// form") and opens a streaming call.
func (p *AnthropicProvider) Send(ctx context.Context, exchanges []conversation.Exchange, current conversation.Exchange, params RequestParams) (Stream, error) {
	messages, err := convertMessages(exchanges, current)
	if err != nil {
		return nil, err
	}

	tools := make([]anthropic.ToolUnionParam, 0, len(params.Tools))
	for _, t := range params.Tools {
		var schema anthropic.ToolInputSchemaParam
		if err := json.Unmarshal([]byte(t.InputSchema), &schema); err != nil {
			return nil, fmt.Errorf("tool %q has invalid input_schema: %w", t.Name, err)
		}
		tools = append(tools, anthropic.ToolUnionParamOfTool(anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: schema,
		}))
	}

	reqParams := anthropic.MessageNewParams{
		Model:       anthropic.Model(params.Model),
		MaxTokens:   int64(params.MaxTokens),
		Temperature: anthropic.Float(params.Temperature),
		System:      []anthropic.TextBlockParam{{Text: params.SystemPrompt}},
		Tools:       tools,
		Messages:    messages,
	}

	stream := p.client.Messages.NewStreaming(ctx, reqParams)
	return &anthropicStream{inner: stream}, nil
}

func convertMessages(exchanges []conversation.Exchange, current conversation.Exchange) ([]anthropic.MessageParam, error) {
	var messages []anthropic.MessageParam
	for _, ex := range append(append([]conversation.Exchange{}, exchanges...), current) {
		messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(ex.Prompt)))
		for _, turn := range ex.Response {
			var blocks []anthropic.ContentBlockParamUnion
			if turn.Message != "" {
				blocks = append(blocks, anthropic.NewTextBlock(turn.Message))
			}
			for _, tu := range turn.ToolUses {
				var input any
				if tu.Input != "" {
					if err := json.Unmarshal([]byte(tu.Input), &input); err != nil {
						return nil, fmt.Errorf("tool use %s has non-JSON input: %w", tu.Id, err)
					}
				}
				blocks = append(blocks, anthropic.NewToolUseBlock(tu.Id, input, tu.Name))
			}
			if len(blocks) > 0 {
				messages = append(messages, anthropic.NewAssistantMessage(blocks...))
			}
			if len(turn.ToolUses) > 0 {
				var results []anthropic.ContentBlockParamUnion
				for _, tu := range turn.ToolUses {
					out := tu.ResolvedOutput()
					results = append(results, anthropic.NewToolResultBlock(tu.Id, out.Text, out.IsError))
				}
				messages = append(messages, anthropic.NewUserMessage(results...))
			}
		}
	}
	return messages, nil
}

// anthropicPhase models the decoder's explicit state machine per spec 9
// ("Streaming decoder state"): AwaitingFirstBlock/InText, then InToolUse.
type anthropicPhase int

const (
	phaseText anthropicPhase = iota
	phaseToolUse
)

// Decode implements the two-phase state machine from spec 4.2: phase A
// consumes text deltas until the first tool_use block start (or stream
// end); phase B accumulates partial_json fragments per tool use block,
// finalizing each on content_block_stop. A new content_block_start while
// still in phase B appends another ToolUse and resets the fragment buffer.
func (p *AnthropicProvider) Decode(ctx context.Context, s Stream, out io.Writer) (conversation.AssistantResponse, error) {
	stream, ok := s.(*anthropicStream)
	if !ok {
		return conversation.AssistantResponse{}, fmt.Errorf("anthropic decode: wrong stream type %T", s)
	}

	var message strings.Builder
	var toolUses []conversation.ToolUse
	var partialJSON strings.Builder
	phase := phaseText

	for stream.inner.Next() {
		event := stream.inner.Current()

		switch event.Type {
		case "error":
			return conversation.AssistantResponse{}, &agent.UpstreamError{
				Provider: "anthropic",
				Message:  event.Error.Message,
			}

		case "content_block_start":
			if event.ContentBlock.Type == "tool_use" {
				phase = phaseToolUse
				partialJSON.Reset()
				toolUses = append(toolUses, conversation.ToolUse{
					Name: event.ContentBlock.Name,
					Id:   event.ContentBlock.ID,
				})
			}

		case "content_block_delta":
			switch phase {
			case phaseText:
				if text := event.Delta.Text; text != "" {
					message.WriteString(text)
					if _, err := io.WriteString(out, text); err != nil {
						return conversation.AssistantResponse{}, &agent.IOError{Cause: err}
					}
				}
			case phaseToolUse:
				partialJSON.WriteString(event.Delta.PartialJSON)
			}

		case "content_block_stop":
			if phase == phaseToolUse && len(toolUses) > 0 {
				last := &toolUses[len(toolUses)-1]
				raw := partialJSON.String()
				if raw == "" {
					raw = "{}"
				}
				if !json.Valid([]byte(raw)) {
					return conversation.AssistantResponse{}, fmt.Errorf("anthropic decode: tool input not valid JSON: %q", raw)
				}
				last.Input = raw
			}
		}
	}

	if err := stream.inner.Err(); err != nil {
		return conversation.AssistantResponse{}, &agent.UpstreamError{Provider: "anthropic", Message: err.Error()}
	}

	return conversation.AssistantResponse{Message: message.String(), ToolUses: toolUses}, nil
}
