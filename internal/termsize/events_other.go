//go:build !unix

package termsize

import (
	"context"
	"time"
)

const pollInterval = 250 * time.Millisecond

// resizeEvents ticks on platforms without SIGWINCH; Run re-reads the size
// on every tick.
func resizeEvents(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}
