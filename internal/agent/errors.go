package agent

import "fmt"

// UpstreamError is raised by a provider HTTP or SSE error event. It aborts
// the current turn and is surfaced to the user; the conversation is left
// unmodified.
type UpstreamError struct {
	Provider string
	Message  string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

// TransportError is an RPC transport failure (dial failure, stream reset,
// deadline exceeded). It aborts the current exchange and is surfaced to the
// user.
type TransportError struct {
	Method string
	Cause  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error calling %s: %v", e.Method, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// ToolUseError is captured as a tool's output (is_error=true) and fed back
// to the model on the next turn. It never aborts the loop. It is produced
// either by client-side input-shape validation or by an RPC status coded
// Unknown.
type ToolUseError struct {
	Message string
}

func (e *ToolUseError) Error() string { return e.Message }

// ExecutionError is an RPC status other than Unknown (Internal, Unavailable,
// ...). It is escalated — the model never sees it, only the user does.
type ExecutionError struct {
	Method string
	Cause  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution error calling %s: %v", e.Method, e.Cause)
}

func (e *ExecutionError) Unwrap() error { return e.Cause }

// IOError is a local stdin/stdout failure.
type IOError struct {
	Cause error
}

func (e *IOError) Error() string { return fmt.Sprintf("io error: %v", e.Cause) }

func (e *IOError) Unwrap() error { return e.Cause }

// ConfigError is a missing API key or malformed CLI invocation. It is
// surfaced before the loop starts and causes a non-zero exit.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }
