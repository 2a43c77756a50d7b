package conversation

import "testing"

func TestExchangeAppendElidesEmptyTurn(t *testing.T) {
	e := Exchange{Prompt: "hi"}
	e.Append(AssistantResponse{})
	if len(e.Response) != 0 {
		t.Fatalf("expected empty turn to be elided, got %d entries", len(e.Response))
	}
}

func TestExchangeDone(t *testing.T) {
	e := Exchange{Prompt: "hi"}
	if e.Done() {
		t.Fatal("empty exchange must not be done")
	}
	e.Append(AssistantResponse{ToolUses: []ToolUse{{Name: "bash", Id: "1"}}})
	if e.Done() {
		t.Fatal("exchange with pending tool uses must not be done")
	}
	e.Append(AssistantResponse{Message: "final answer"})
	if !e.Done() {
		t.Fatal("exchange whose last turn has no tool uses must be done")
	}
}

func TestResolvedOutputCancellation(t *testing.T) {
	tu := ToolUse{Name: "bash", Id: "1"}
	out := tu.ResolvedOutput()
	if !out.IsError || out.Text != CancelledOutput {
		t.Fatalf("expected cancellation placeholder, got %+v", out)
	}

	filled := ToolOutput{Text: "ok", IsError: false}
	tu.Output = &filled
	if got := tu.ResolvedOutput(); got != filled {
		t.Fatalf("expected filled output %+v, got %+v", filled, got)
	}
}
