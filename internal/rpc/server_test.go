package rpc

import (
	"context"
	"log/slog"
	"os/exec"
	"path/filepath"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/RaunakChhatwal/BashAgent/internal/editor"
	"github.com/RaunakChhatwal/BashAgent/internal/rpc/toolrunnerpb"
	"github.com/RaunakChhatwal/BashAgent/internal/shell"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not available on PATH")
	}
	sh, err := shell.Start(shell.NewSentinelOracle(), slog.Default())
	if err != nil {
		t.Fatalf("shell.Start: %v", err)
	}
	t.Cleanup(func() { _ = sh.Close() })
	return New(sh, editor.New(), slog.Default())
}

func TestViewNotFoundMapsToStatus(t *testing.T) {
	s := newTestServer(t)
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := s.View(context.Background(), &toolrunnerpb.ViewRequest{Path: path})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// os.ReadFile on a missing path surfaces as editor.Internal, not NotFound;
	// the path itself is still absolute and well-formed, so this exercises
	// the generic Internal branch of the status mapping.
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("expected a grpc status error, got %v", err)
	}
	if st.Code() != codes.Internal {
		t.Fatalf("code = %v, want %v", st.Code(), codes.Internal)
	}
}

func TestCreateThenRunBash(t *testing.T) {
	s := newTestServer(t)
	path := filepath.Join(t.TempDir(), "a.txt")
	ctx := context.Background()

	if _, err := s.Create(ctx, &toolrunnerpb.CreateRequest{Path: path, FileText: "hi\n"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	snippet, err := s.View(ctx, &toolrunnerpb.ViewRequest{Path: path})
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	if len(snippet.Lines) == 0 || snippet.Lines[0] != "hi" {
		t.Fatalf("unexpected snippet: %+v", snippet)
	}

	resp, err := s.RunBash(ctx, &toolrunnerpb.BashRequest{Input: "echo ok"})
	if err != nil {
		t.Fatalf("RunBash: %v", err)
	}
	if resp.GetOutput() == "" {
		t.Fatal("expected non-empty bash output")
	}
}

func TestRelativePathMapsToInvalidArgument(t *testing.T) {
	s := newTestServer(t)
	_, err := s.View(context.Background(), &toolrunnerpb.ViewRequest{Path: "relative.txt"})
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}
