package signal

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/playground/internal/logger"
)

const (
	// DefaultInterval is how often a Poller re-reads its probe.
	DefaultInterval = 2 * time.Second
	defaultTimeout  = time.Second
)

// Poller turns a one-shot Probe into a subscribable signal by re-reading it
// on a fixed interval and reporting changes.
type Poller struct {
	probe    Probe
	interval time.Duration
	timeout  time.Duration
	log      *logger.Logger
}

// NewPoller returns a Poller over probe. A non-positive interval selects
// DefaultInterval.
func NewPoller(probe Probe, interval time.Duration, log *logger.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	timeout := defaultTimeout
	if interval < timeout {
		timeout = interval
	}
	return &Poller{
		probe:    probe,
		interval: interval,
		timeout:  timeout,
		log:      log.WithFields(map[string]any{"component": "signal", "probe": probe.Name()}),
	}
}

// PrefersDark reads the probe synchronously. Any probe error reads as unsupported.
func (p *Poller) PrefersDark() (bool, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()
	return p.read(ctx)
}

// Subscribe starts a polling goroutine that calls fn whenever the reading
// changes. The baseline is the first reading taken by that goroutine; an
// unsupported baseline counts as light. cancel stops the goroutine without
// waiting for it.
func (p *Poller) Subscribe(fn func(dark bool)) (cancel func()) {
	ctx, stop := context.WithCancel(context.Background())
	go p.run(ctx, fn)

	var once sync.Once
	return func() { once.Do(stop) }
}

func (p *Poller) run(ctx context.Context, fn func(dark bool)) {
	last, _ := p.readWithin(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			dark, ok := p.readWithin(ctx)
			if !ok || dark == last {
				continue
			}
			last = dark
			if ctx.Err() != nil {
				return
			}
			p.log.WithFields(map[string]any{"dark": dark}).Debug("appearance changed")
			fn(dark)
		}
	}
}

func (p *Poller) readWithin(parent context.Context) (bool, bool) {
	ctx, cancel := context.WithTimeout(parent, p.timeout)
	defer cancel()
	return p.read(ctx)
}

func (p *Poller) read(ctx context.Context) (bool, bool) {
	dark, err := p.probe.PrefersDark(ctx)
	if err != nil {
		p.log.WithFields(map[string]any{"error": err.Error()}).Debug("appearance probe failed")
		return false, false
	}
	return dark, true
}
