// Package editor implements the line-addressed file editor (spec 4.4.2):
// view/create/str_replace/insert/undo_edit over a per-path undo history.
package editor

// Kind mirrors the RPC status categories from spec 6 ("RPC status
// mapping"); the RPC server translates these directly to gRPC codes.
type Kind string

const (
	InvalidArgument   Kind = "invalid_argument"
	NotFound          Kind = "not_found"
	AlreadyExists     Kind = "already_exists"
	ResourceExhausted Kind = "resource_exhausted"
	Internal          Kind = "internal"
)

// Error is a classified editor failure.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }
