package shell

import "context"

// CompletionOracle detects that the shell has finished producing output for
// the most recent command and is sitting idle at its next prompt, without
// requiring the shell to ever produce EOF. Spec 9 calls this out explicitly
// as an abstract trait so the non-portable kernel primitive can be swapped
// for a portable fallback.
type CompletionOracle interface {
	// Marker returns a distinguished string the Shell should echo after
	// every submitted command, for oracles that detect completion by
	// scanning captured output rather than a kernel probe. An oracle that
	// doesn't need this (the ioctl probe) returns "".
	Marker() string

	// WaitQuiescent blocks until the shell attached to masterFd has
	// finished writing output for the command just submitted, or ctx is
	// cancelled. peek returns a snapshot of the bytes captured on
	// masterFd since the command was written, for oracles that scan for
	// Marker's echo instead of probing the kernel directly.
	WaitQuiescent(ctx context.Context, masterFd uintptr, peek func() []byte) error
}
