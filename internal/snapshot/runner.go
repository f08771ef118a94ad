package snapshot

import (
	"context"
	"time"
)

// Watch reads a snapshot on a fixed interval and emits one Result per
// cycle. Cycles run strictly serially on one goroutine; no overlap, no
// retries. Returns when ctx is done.
func Watch(ctx context.Context, c Client, interval time.Duration, out chan<- Result) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap, err := Read(c)
			out <- Result{At: time.Now(), Snap: snap, Err: err}
		}
	}
}
