package engine

import (
	"context"
	"time"
)

// FrameLoop calls fn every interval with the elapsed time since the previous call
// Blocks until ctx is cancelled, fn returning false also stops the loop
func FrameLoop(ctx context.Context, interval time.Duration, fn func(dt time.Duration) bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if !fn(dt) {
				return
			}
		}
	}
}
