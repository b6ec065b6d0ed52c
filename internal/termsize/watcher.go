// Package termsize reports terminal resizes to hosts that do not run a
// Bubble Tea program.
package termsize

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/alexisbeaulieu97/playground/internal/logger"
)

// SizeFunc reads the size of the terminal behind fd.
type SizeFunc func(fd int) (width, height int, err error)

// Watcher publishes the terminal width on every resize event.
type Watcher struct {
	fd     int
	size   SizeFunc
	events func(ctx context.Context) <-chan struct{}
	log    *logger.Logger

	mu     sync.Mutex
	width  int
	height int
	subs   map[uint64]func(int)
	nextID uint64
}

// New watches the terminal behind f.
func New(f *os.File, log *logger.Logger) *Watcher {
	return newWatcher(int(f.Fd()), term.GetSize, resizeEvents, log)
}

func newWatcher(fd int, size SizeFunc, events func(context.Context) <-chan struct{}, log *logger.Logger) *Watcher {
	if log == nil {
		log = logger.Nop()
	}
	return &Watcher{
		fd:     fd,
		size:   size,
		events: events,
		log:    log.WithFields(map[string]any{"component": "termsize"}),
		subs:   make(map[uint64]func(int)),
	}
}

// Refresh reads the current size and hands the width to every subscriber.
func (w *Watcher) Refresh() error {
	width, height, err := w.size(w.fd)
	if err != nil {
		return fmt.Errorf("read terminal size: %w", err)
	}

	w.mu.Lock()
	w.width, w.height = width, height
	subs := make([]func(int), 0, len(w.subs))
	for _, fn := range w.subs {
		subs = append(subs, fn)
	}
	w.mu.Unlock()

	for _, fn := range subs {
		fn(width)
	}
	return nil
}

// Width is the width seen by the last successful Refresh, or 0.
func (w *Watcher) Width() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width
}

// Size is the last size seen.
func (w *Watcher) Size() (width, height int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Subscribe registers fn for resize events. The returned function
// unsubscribes and may be called more than once.
func (w *Watcher) Subscribe(fn func(width int)) (release func()) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.subs[id] = fn
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		delete(w.subs, id)
		w.mu.Unlock()
	}
}

// Run refreshes once and then on every resize event until ctx is done.
// Failed reads are logged and skipped.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Refresh(); err != nil {
		return err
	}
	events := w.events(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			if err := w.Refresh(); err != nil {
				w.log.Warn(err.Error())
			}
		}
	}
}
