package shell

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"testing"
	"time"
)

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available on PATH")
	}
	s, err := Start(NewSentinelOracle(), slog.Default())
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestBashCompletion exercises spec 8 invariant 7: RunBash("echo hello")
// returns output containing "hello" and the shell remains ready.
func TestBashCompletion(t *testing.T) {
	s := newTestShell(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	out, err := s.RunBash(ctx, "echo hello")
	if err != nil {
		t.Fatalf("RunBash: %v", err)
	}
	if !strings.Contains(out, "hello") {
		t.Fatalf("expected output to contain %q, got %q", "hello", out)
	}

	out, err = s.RunBash(ctx, "echo again")
	if err != nil {
		t.Fatalf("second RunBash: %v", err)
	}
	if !strings.Contains(out, "again") {
		t.Fatalf("expected output to contain %q, got %q", "again", out)
	}
}

// TestBashStatePersists exercises spec 8 scenario (e): state (cwd) persists
// across calls because the shell is long-lived, not re-spawned per call.
func TestBashStatePersists(t *testing.T) {
	s := newTestShell(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := s.RunBash(ctx, "cd /tmp"); err != nil {
		t.Fatalf("cd: %v", err)
	}
	out, err := s.RunBash(ctx, "pwd")
	if err != nil {
		t.Fatalf("pwd: %v", err)
	}
	if !strings.Contains(out, "/tmp") {
		t.Fatalf("expected pwd output to contain /tmp, got %q", out)
	}
}
