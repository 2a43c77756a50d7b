//go:build linux

package shell

import (
	"context"
	"time"

	"golang.org/x/sys/unix"
)

// IoctlOracle approximates spec 4.4.1's "kernel ioctl that blocks until all
// readers on the slave are blocked in read()" using TIOCOUTQ, the one
// portable-on-Linux termios ioctl that reports how many bytes are still
// queued for output on the PTY. There is no stock Linux ioctl that blocks a
// caller until a *specific* process is parked in read(2); TIOCOUTQ draining
// to zero and staying there across a short settle window is the closest
// real, non-fabricated signal that bash has finished writing the prior
// command's output and returned to reading its prompt.
type IoctlOracle struct {
	// PollInterval is how often TIOCOUTQ is sampled.
	PollInterval time.Duration
	// SettleSamples is how many consecutive zero-length samples are
	// required before the shell is considered quiescent.
	SettleSamples int
}

// NewIoctlOracle returns an IoctlOracle with sane defaults.
func NewIoctlOracle() *IoctlOracle {
	return &IoctlOracle{PollInterval: 5 * time.Millisecond, SettleSamples: 3}
}

// Marker reports that this oracle needs no injected sentinel.
func (o *IoctlOracle) Marker() string { return "" }

func (o *IoctlOracle) WaitQuiescent(ctx context.Context, masterFd uintptr, peek func() []byte) error {
	interval := o.PollInterval
	if interval <= 0 {
		interval = 5 * time.Millisecond
	}
	settle := o.SettleSamples
	if settle <= 0 {
		settle = 3
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	consecutive := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			n, err := unix.IoctlGetInt(int(masterFd), unix.TIOCOUTQ)
			if err != nil {
				return err
			}
			if n == 0 {
				consecutive++
				if consecutive >= settle {
					return nil
				}
			} else {
				consecutive = 0
			}
		}
	}
}
