// Package conversation holds the data model shared by both provider adapters:
// tool descriptors, tool-use records, assistant turns, and the exchange/
// conversation types the agent loop mutates.
package conversation

// ToolDescriptor is a process-wide constant describing a tool the model may call.
// InputSchema is a JSON Schema object serialized verbatim per-provider.
type ToolDescriptor struct {
	Name        string
	Description string
	InputSchema string
}

// ToolOutput is the result of running a tool, filled in once after dispatch.
type ToolOutput struct {
	Text    string
	IsError bool
}

// ToolUse is one model-issued request to run a named tool with a JSON input.
// Output is nil until the agent loop fills it in after execution; Id is
// provider-assigned and must be echoed back verbatim in the tool result.
type ToolUse struct {
	Name   string
	Id     string
	Input  string // a complete, serialized JSON value
	Output *ToolOutput
}

// AssistantResponse is one model turn: a text message and zero or more tool
// uses. A response with both fields empty is never appended to a turn list.
type AssistantResponse struct {
	Message  string
	ToolUses []ToolUse
}

func (r AssistantResponse) Empty() bool {
	return r.Message == "" && len(r.ToolUses) == 0
}

// Exchange is one user prompt and every model turn responding to it,
// including intervening tool rounds. The invariant that the last Response
// entry of a *completed* exchange has no tool uses is enforced by the agent
// loop, not by this type.
type Exchange struct {
	Prompt   string
	Response []AssistantResponse
}

// Append adds a turn to the exchange unless it is entirely empty.
func (e *Exchange) Append(r AssistantResponse) {
	if r.Empty() {
		return
	}
	e.Response = append(e.Response, r)
}

// Done reports whether the exchange's last turn produced no further tool
// uses, i.e. the model gave its final answer.
func (e *Exchange) Done() bool {
	if len(e.Response) == 0 {
		return false
	}
	return len(e.Response[len(e.Response)-1].ToolUses) == 0
}

// Conversation is an ordered sequence of completed exchanges. It is owned by
// a single agent-loop goroutine; nothing here is safe for concurrent access
// from multiple goroutines because the spec does not require it.
type Conversation struct {
	Exchanges []Exchange
}

// Append records a completed exchange.
func (c *Conversation) Append(e Exchange) {
	c.Exchanges = append(c.Exchanges, e)
}

// CancelledOutput is substituted for any ToolUse whose Output is still nil
// when the exchange is serialized, preserving the provider's invariant that
// every tool_use has a paired tool_result.
const CancelledOutput = "Operation cancelled by user"

// ResolvedOutput returns the tool's recorded output, or the cancellation
// placeholder if the tool never completed.
func (t ToolUse) ResolvedOutput() ToolOutput {
	if t.Output != nil {
		return *t.Output
	}
	return ToolOutput{Text: CancelledOutput, IsError: true}
}
