//go:build unix

package termsize

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

func resizeEvents(ctx context.Context) <-chan struct{} {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, unix.SIGWINCH)

	out := make(chan struct{}, 1)
	go func() {
		defer signal.Stop(sig)
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out
}
