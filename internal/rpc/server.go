// Package rpc implements the ToolRunner gRPC service: the execution server
// half of spec 6, dispatching onto a single long-lived shell and a file
// editor.
package rpc

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/RaunakChhatwal/BashAgent/internal/editor"
	"github.com/RaunakChhatwal/BashAgent/internal/process"
	"github.com/RaunakChhatwal/BashAgent/internal/rpc/toolrunnerpb"
	"github.com/RaunakChhatwal/BashAgent/internal/shell"
)

// Server implements toolrunnerpb.ToolRunnerServer. Every call is routed
// through a CommandQueue lane: RunBash queues on process.ShellLane so at
// most one bash command runs at a time, and each editor RPC queues on the
// lane named for its path, so edits to the same file serialize while
// distinct files and a concurrent RunBash do not queue behind each other.
// Editor writes (Create, StringReplace, Insert, UndoEdit) still share the
// Editor's single mutex, so writes to distinct files run one at a time.
type Server struct {
	toolrunnerpb.UnimplementedToolRunnerServer

	shell  *shell.Shell
	editor *editor.Editor
	queue  *process.CommandQueue
	logger *slog.Logger
	tracer trace.Tracer
}

func New(sh *shell.Shell, ed *editor.Editor, logger *slog.Logger) *Server {
	return &Server{
		shell:  sh,
		editor: ed,
		queue:  process.NewCommandQueue(),
		logger: logger,
		tracer: otel.Tracer("toolrunner"),
	}
}

func (s *Server) RunBash(ctx context.Context, req *toolrunnerpb.BashRequest) (*toolrunnerpb.BashResponse, error) {
	ctx, span := s.tracer.Start(ctx, "RunBash")
	defer span.End()

	out, err := process.EnqueueInLane(s.queue, process.ShellLane,
		func(ctx context.Context) (string, error) { return s.shell.RunBash(ctx, req.GetInput()) },
		&process.EnqueueOptions{Context: ctx, OnWait: s.logQueueWait("bash")})
	if err != nil {
		span.RecordError(err)
		s.logger.Error("run_bash failed", "error", err)
		return nil, status.Errorf(codes.Internal, "%v", err)
	}
	return &toolrunnerpb.BashResponse{Output: out}, nil
}

func (s *Server) View(ctx context.Context, req *toolrunnerpb.ViewRequest) (*toolrunnerpb.Snippet, error) {
	ctx, span := s.tracer.Start(ctx, "View")
	defer span.End()

	snippet, err := process.EnqueueInLane(s.queue, process.FileLane(req.GetPath()),
		func(ctx context.Context) (editor.Snippet, error) {
			return s.editor.View(req.GetPath(), toEditorRange(req.GetViewRange()))
		}, &process.EnqueueOptions{Context: ctx})
	if err != nil {
		span.RecordError(err)
		return nil, toStatus(err)
	}
	return toProtoSnippet(snippet), nil
}

func (s *Server) Create(ctx context.Context, req *toolrunnerpb.CreateRequest) (*toolrunnerpb.Empty, error) {
	ctx, span := s.tracer.Start(ctx, "Create")
	defer span.End()

	_, err := process.EnqueueInLane(s.queue, process.FileLane(req.GetPath()),
		func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.editor.Create(req.GetPath(), req.GetFileText())
		}, &process.EnqueueOptions{Context: ctx})
	if err != nil {
		span.RecordError(err)
		return nil, toStatus(err)
	}
	return &toolrunnerpb.Empty{}, nil
}

func (s *Server) StringReplace(ctx context.Context, req *toolrunnerpb.StringReplaceRequest) (*toolrunnerpb.Snippet, error) {
	ctx, span := s.tracer.Start(ctx, "StringReplace")
	defer span.End()

	snippet, err := process.EnqueueInLane(s.queue, process.FileLane(req.GetPath()),
		func(ctx context.Context) (editor.Snippet, error) {
			return s.editor.StringReplace(req.GetPath(), req.GetToReplace(), req.GetReplacement())
		}, &process.EnqueueOptions{Context: ctx})
	if err != nil {
		span.RecordError(err)
		return nil, toStatus(err)
	}
	return toProtoSnippet(snippet), nil
}

func (s *Server) Insert(ctx context.Context, req *toolrunnerpb.InsertRequest) (*toolrunnerpb.Snippet, error) {
	ctx, span := s.tracer.Start(ctx, "Insert")
	defer span.End()

	snippet, err := process.EnqueueInLane(s.queue, process.FileLane(req.GetPath()),
		func(ctx context.Context) (editor.Snippet, error) {
			return s.editor.Insert(req.GetPath(), req.GetLineNumber(), req.GetLine())
		}, &process.EnqueueOptions{Context: ctx})
	if err != nil {
		span.RecordError(err)
		return nil, toStatus(err)
	}
	return toProtoSnippet(snippet), nil
}

func (s *Server) UndoEdit(ctx context.Context, req *toolrunnerpb.UndoEditRequest) (*toolrunnerpb.Snippet, error) {
	ctx, span := s.tracer.Start(ctx, "UndoEdit")
	defer span.End()

	snippet, err := process.EnqueueInLane(s.queue, process.FileLane(req.GetPath()),
		func(ctx context.Context) (editor.Snippet, error) { return s.editor.UndoEdit(req.GetPath()) },
		&process.EnqueueOptions{Context: ctx})
	if err != nil {
		span.RecordError(err)
		return nil, toStatus(err)
	}
	return toProtoSnippet(snippet), nil
}

// logQueueWait returns an OnWait callback that logs when a call has been
// queued behind another long enough to warrant a warning.
func (s *Server) logQueueWait(op string) func(waitMs, queuedAhead int) {
	return func(waitMs, queuedAhead int) {
		s.logger.Warn("rpc call queued", "op", op, "wait_ms", waitMs, "queued_ahead", queuedAhead)
	}
}

func toEditorRange(r *toolrunnerpb.ViewRange) *editor.ViewRange {
	if r == nil {
		return nil
	}
	out := &editor.ViewRange{Start: r.GetStart()}
	if r.GetEnd() >= 0 {
		end := uint32(r.GetEnd())
		out.End = &end
	}
	return out
}

func toProtoSnippet(s editor.Snippet) *toolrunnerpb.Snippet {
	return &toolrunnerpb.Snippet{Start: s.Start, Lines: s.Lines}
}

// toStatus implements spec 6's RPC status mapping table.
func toStatus(err error) error {
	var editorErr *editor.Error
	if errors.As(err, &editorErr) {
		switch editorErr.Kind {
		case editor.InvalidArgument:
			return status.Error(codes.InvalidArgument, editorErr.Message)
		case editor.NotFound:
			return status.Error(codes.NotFound, editorErr.Message)
		case editor.AlreadyExists:
			return status.Error(codes.AlreadyExists, editorErr.Message)
		case editor.ResourceExhausted:
			return status.Error(codes.ResourceExhausted, editorErr.Message)
		default:
			return status.Error(codes.Internal, editorErr.Message)
		}
	}
	return status.Error(codes.Unknown, err.Error())
}
