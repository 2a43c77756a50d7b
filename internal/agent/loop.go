package agent

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/RaunakChhatwal/BashAgent/internal/agent/providers"
	"github.com/RaunakChhatwal/BashAgent/internal/conversation"
)

// ToolRunner dispatches a single tool call to the execution server. A
// non-nil err is a TransportError or ExecutionError and escalates out of
// the loop; otherwise (text, isError) become the tool's recorded output.
type ToolRunner interface {
	RunTool(ctx context.Context, name string, input string) (text string, isError bool, err error)
}

// CancelSignal is a repeatable broadcast, analogous to a tokio::sync::Notify:
// Cancel wakes every current waiter and arms a fresh channel for the next
// one, so SIGINT can abort one turn without poisoning the next.
type CancelSignal struct {
	mu sync.Mutex
	ch chan struct{}
}

func NewCancelSignal() *CancelSignal {
	return &CancelSignal{ch: make(chan struct{})}
}

// Wait returns a channel that closes the next time Cancel is called.
func (c *CancelSignal) Wait() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ch
}

// Cancel wakes all current waiters and arms a new channel for subsequent ones.
func (c *CancelSignal) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	close(c.ch)
	c.ch = make(chan struct{})
}

// Loop orchestrates prompt -> stream -> tool dispatch -> re-stream per spec
// 4.1. It owns the Conversation; nothing else mutates it.
type Loop struct {
	Provider providers.Provider
	Tools    ToolRunner
	Out      io.Writer
	Cancel   *CancelSignal
	Params   providers.RequestParams

	conv conversation.Conversation
}

// ErrCancelled is returned by RunExchange when the in-flight stream or tool
// call was aborted; the partially built exchange is discarded, never
// touching the conversation.
var ErrCancelled = fmt.Errorf("cancelled by user")

// RunExchange executes steps 1-5 of spec 4.1 for one user prompt. On
// success the completed exchange is appended to the conversation. On
// ErrCancelled, nothing is appended.
func (l *Loop) RunExchange(ctx context.Context, prompt string) error {
	current := conversation.Exchange{Prompt: prompt}

	for {
		streamResult, err := l.raceCancel(ctx, func(ctx context.Context) (any, error) {
			return l.Provider.Send(ctx, l.conv.Exchanges, current, l.Params)
		})
		if err != nil {
			return err
		}
		stream := streamResult.(providers.Stream)

		turnResult, err := l.raceCancel(ctx, func(ctx context.Context) (any, error) {
			turn, err := l.Provider.Decode(ctx, stream, l.Out)
			stream.Close()
			return turn, err
		})
		if err != nil {
			return err
		}
		turn := turnResult.(conversation.AssistantResponse)

		if len(turn.ToolUses) == 0 {
			current.Append(turn)
			l.conv.Append(current)
			return nil
		}

		for i := range turn.ToolUses {
			tu := &turn.ToolUses[i]
			result, err := l.raceCancel(ctx, func(ctx context.Context) (any, error) {
				text, isError, err := l.Tools.RunTool(ctx, tu.Name, tu.Input)
				if err != nil {
					return nil, err
				}
				return conversation.ToolOutput{Text: text, IsError: isError}, nil
			})
			if err != nil {
				return err
			}
			out := result.(conversation.ToolOutput)
			tu.Output = &out
		}

		current.Append(turn)
	}
}

// raceCancel runs fn in a goroutine and races it against the cancel signal,
// per spec 5 ("each call to the agent loop races its work against a cancel
// wait using a select primitive").
func (l *Loop) raceCancel(ctx context.Context, fn func(context.Context) (any, error)) (any, error) {
	type outcome struct {
		val any
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		val, err := fn(ctx)
		done <- outcome{val, err}
	}()

	select {
	case o := <-done:
		return o.val, o.err
	case <-l.Cancel.Wait():
		return nil, ErrCancelled
	}
}
