//go:build linux

package shell

// NewCompletionOracle picks the best completion oracle available on this
// platform: the ioctl-based one on Linux, where TIOCOUTQ is available.
func NewCompletionOracle() (CompletionOracle, error) {
	return NewIoctlOracle(), nil
}
