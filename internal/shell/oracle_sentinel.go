package shell

import (
	"bytes"
	"context"
	"fmt"
	"time"
)

// SentinelOracle is the portable fallback named in spec 9: it injects a
// distinguished end-of-command marker via an extra echo after every
// submitted command, then scans captured output for that marker's echo to
// know the shell has returned to its prompt. Works on any platform with no
// kernel-specific probe.
type SentinelOracle struct {
	marker       string
	pollInterval time.Duration
}

// NewSentinelOracle returns a SentinelOracle with a marker unlikely to
// appear in ordinary command output.
func NewSentinelOracle() *SentinelOracle {
	return &SentinelOracle{
		marker:       "__bashagent_eoc_4f1a9c3d__",
		pollInterval: 5 * time.Millisecond,
	}
}

func (o *SentinelOracle) Marker() string { return o.marker }

func (o *SentinelOracle) WaitQuiescent(ctx context.Context, masterFd uintptr, peek func() []byte) error {
	needle := []byte(fmt.Sprintf("\n%s\n", o.marker))
	ticker := time.NewTicker(o.pollInterval)
	defer ticker.Stop()

	for {
		// The PTY renders each newline as "\r\n" and bash brackets command
		// output with CSI sequences, so match against the output with both
		// removed.
		if bytes.Contains(bytes.ReplaceAll(stripCSI(peek()), []byte("\r"), nil), needle) {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
