// Package shell hosts the single long-lived PTY-attached bash the
// execution server drives, and the completion-oracle abstraction used to
// detect that the shell has finished producing output without ever closing
// the session.
package shell

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

// stragglerDrain is how long RunBash keeps draining output after the
// completion oracle reports quiescence, per spec 4.4.1 step 2 ("briefly
// (<=50ms) keep draining any straggler output").
const stragglerDrain = 50 * time.Millisecond

// Shell owns the master end of a PTY attached to one long-lived bash
// process. It permits at most one in-flight RunBash call at a time (guarded
// by mu); a dead child process is fatal to the server, per spec 4.4.3.
type Shell struct {
	cmd    *exec.Cmd
	master *os.File
	oracle CompletionOracle
	logger *slog.Logger

	mu sync.Mutex // serializes RunBash calls

	bufMu   sync.Mutex
	buf     []byte
	readErr error

	// Exited is closed when the child process's wait() returns.
	Exited  chan struct{}
	ExitErr error
}

// Start spawns bash under a controlling PTY and begins capturing its output.
func Start(oracle CompletionOracle, logger *slog.Logger) (*Shell, error) {
	cmd := exec.Command("bash")
	master, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("start pty-attached bash: %w", err)
	}

	s := &Shell{
		cmd:    cmd,
		master: master,
		oracle: oracle,
		logger: logger,
		Exited: make(chan struct{}),
	}
	go s.readLoop()
	go s.waitLoop()
	return s, nil
}

func (s *Shell) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := s.master.Read(buf)
		if n > 0 {
			s.bufMu.Lock()
			s.buf = append(s.buf, buf[:n]...)
			s.bufMu.Unlock()
		}
		if err != nil {
			s.bufMu.Lock()
			s.readErr = err
			s.bufMu.Unlock()
			return
		}
	}
}

// waitLoop blocks on the child process exiting. Per spec 4.4.3 there is no
// recovery path for a dead shell; the caller should exit the server when
// Exited closes.
func (s *Shell) waitLoop() {
	err := s.cmd.Wait()
	s.ExitErr = err
	close(s.Exited)
}

func (s *Shell) snapshotSince(offset int) []byte {
	s.bufMu.Lock()
	defer s.bufMu.Unlock()
	out := make([]byte, len(s.buf)-offset)
	copy(out, s.buf[offset:])
	return out
}

// RunBash implements the contract in spec 4.4.1. It is the only method that
// writes to the shell's stdin; concurrent calls serialize on mu, so at most
// one runs at a time.
func (s *Shell) RunBash(ctx context.Context, input string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bufMu.Lock()
	start := len(s.buf)
	s.bufMu.Unlock()

	for _, line := range strings.Split(input, "\n") {
		if _, err := s.master.Write([]byte(line + "\n")); err != nil {
			return "", fmt.Errorf("write to pty: %w", err)
		}
	}

	marker := s.oracle.Marker()
	if marker != "" {
		if _, err := s.master.Write([]byte("echo " + marker + "\n")); err != nil {
			return "", fmt.Errorf("write marker to pty: %w", err)
		}
	}

	peek := func() []byte { return s.snapshotSince(start) }

	if err := s.oracle.WaitQuiescent(ctx, s.master.Fd(), peek); err != nil {
		return "", fmt.Errorf("waiting for shell to become quiescent: %w", err)
	}

	select {
	case <-time.After(stragglerDrain):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	raw := peek()
	if marker != "" {
		if idx := bytes.Index(raw, []byte(marker)); idx >= 0 {
			raw = raw[:idx]
		}
	}

	cleaned := stripCSI(raw)
	cleaned = bytes.ToValidUTF8(cleaned, []byte("�"))
	return string(cleaned), nil
}

// Resize adjusts the PTY window size; used so interactive full-screen
// programs started under RunBash render sanely.
func (s *Shell) Resize(cols, rows uint16) error {
	return pty.Setsize(s.master, &pty.Winsize{Cols: cols, Rows: rows})
}

// Close releases the PTY master. It does not wait for the child process.
func (s *Shell) Close() error {
	return s.master.Close()
}
