// Package providers implements the two wire adapters (Anthropic, OpenAI)
// behind a common Provider interface: send opens a streaming completion
// request, decode consumes it into a normalized assistant turn.
package providers

import (
	"context"
	"io"

	"github.com/RaunakChhatwal/BashAgent/internal/conversation"
)

// RequestParams carries the per-call generation parameters shared by both
// wire forms.
type RequestParams struct {
	Model        string
	MaxTokens    int
	Temperature  float64
	SystemPrompt string
	Tools        []conversation.ToolDescriptor
}

// Stream is the opaque, provider-specific handle returned by Send and
// consumed by Decode. Each adapter's Stream implementation wraps its own
// SDK's streaming type.
type Stream interface {
	Close() error
}

// Provider is the common interface both adapters implement. The agent loop
// is written against this interface only; it never branches on provider
// identity itself.
type Provider interface {
	Name() string
	// Send opens an HTTPS POST with stream=true and returns a lazy handle
	// over the server-sent event stream. exchanges are the prior,
	// completed exchanges; current is the in-progress one (its final
	// AssistantResponse, if any, is not yet appended and is not sent).
	Send(ctx context.Context, exchanges []conversation.Exchange, current conversation.Exchange, params RequestParams) (Stream, error)

	// Decode consumes the stream, writing text tokens to out as they
	// arrive (for live display), and returns the normalized
	// (message, tool_uses) turn. After Decode returns successfully, every
	// ToolUse.Input is a complete JSON value and Id/Name are set.
	Decode(ctx context.Context, stream Stream, out io.Writer) (conversation.AssistantResponse, error)
}
