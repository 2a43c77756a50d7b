package process

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestEnqueueInLaneSerializesSameLane(t *testing.T) {
	cq := NewCommandQueue()

	var active int32
	var maxObserved int32
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := EnqueueInLane(cq, ShellLane, func(ctx context.Context) (int, error) {
				n := atomic.AddInt32(&active, 1)
				for {
					old := atomic.LoadInt32(&maxObserved)
					if n <= old || atomic.CompareAndSwapInt32(&maxObserved, old, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				atomic.AddInt32(&active, -1)
				return 0, nil
			}, nil)
			if err != nil {
				t.Errorf("EnqueueInLane: %v", err)
			}
		}()
	}
	wg.Wait()

	if maxObserved != 1 {
		t.Errorf("max concurrent in one lane = %d, want 1", maxObserved)
	}
}

func TestEnqueueInLaneDistinctLanesRunConcurrently(t *testing.T) {
	cq := NewCommandQueue()

	start := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	reached := make(chan CommandLane, 2)

	run := func(lane CommandLane) {
		defer wg.Done()
		_, err := EnqueueInLane(cq, lane, func(ctx context.Context) (int, error) {
			reached <- lane
			<-release
			return 0, nil
		}, nil)
		if err != nil {
			t.Errorf("EnqueueInLane: %v", err)
		}
	}

	wg.Add(2)
	go run(FileLane("a.txt"))
	go run(FileLane("b.txt"))
	close(start)

	seen := map[CommandLane]bool{}
	for i := 0; i < 2; i++ {
		select {
		case lane := <-reached:
			seen[lane] = true
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for both lanes to start concurrently")
		}
	}
	close(release)
	wg.Wait()

	if !seen[FileLane("a.txt")] || !seen[FileLane("b.txt")] {
		t.Errorf("expected both lanes to run concurrently, got %v", seen)
	}
}

func TestEnqueueInLanePropagatesTaskError(t *testing.T) {
	cq := NewCommandQueue()

	sentinel := context.Canceled
	_, err := EnqueueInLane(cq, ShellLane, func(ctx context.Context) (int, error) {
		return 0, sentinel
	}, nil)
	if err != sentinel {
		t.Errorf("err = %v, want %v", err, sentinel)
	}
}

func TestEnqueueInLaneHonorsOnWait(t *testing.T) {
	cq := NewCommandQueue()

	blocker := make(chan struct{})
	go EnqueueInLane(cq, ShellLane, func(ctx context.Context) (int, error) {
		<-blocker
		return 0, nil
	}, nil)

	// Give the blocker task time to become active.
	time.Sleep(10 * time.Millisecond)

	var waited int32
	done := make(chan struct{})
	go func() {
		EnqueueInLane(cq, ShellLane, func(ctx context.Context) (int, error) {
			return 0, nil
		}, &EnqueueOptions{
			WarnAfterMs: 1,
			OnWait:      func(waitMs, queuedAhead int) { atomic.StoreInt32(&waited, 1) },
		})
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	close(blocker)
	<-done

	if atomic.LoadInt32(&waited) != 1 {
		t.Error("expected OnWait to fire for a queued task")
	}
}

func TestGetLaneStats(t *testing.T) {
	cq := NewCommandQueue()
	blocker := make(chan struct{})
	go EnqueueInLane(cq, ShellLane, func(ctx context.Context) (int, error) {
		<-blocker
		return 0, nil
	}, nil)
	time.Sleep(10 * time.Millisecond)

	stats := cq.GetLaneStats(ShellLane)
	if stats.Active != 1 {
		t.Errorf("Active = %d, want 1", stats.Active)
	}
	close(blocker)
}

func TestFileLaneReapedOnceIdle(t *testing.T) {
	cq := NewCommandQueue()
	lane := FileLane("scratch.txt")

	_, err := EnqueueInLane(cq, lane, func(ctx context.Context) (int, error) {
		return 0, nil
	}, nil)
	if err != nil {
		t.Fatalf("EnqueueInLane: %v", err)
	}

	// Give the completing goroutine a moment to run its post-task reap.
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		cq.mu.RLock()
		_, exists := cq.lanes[lane]
		cq.mu.RUnlock()
		if !exists {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Error("expected idle file lane to be reaped from the lane map")
}

func TestShellLaneNeverReaped(t *testing.T) {
	cq := NewCommandQueue()
	_, err := EnqueueInLane(cq, ShellLane, func(ctx context.Context) (int, error) {
		return 0, nil
	}, nil)
	if err != nil {
		t.Fatalf("EnqueueInLane: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	cq.mu.RLock()
	_, exists := cq.lanes[ShellLane]
	cq.mu.RUnlock()
	if !exists {
		t.Error("expected ShellLane to persist even when idle")
	}
}
