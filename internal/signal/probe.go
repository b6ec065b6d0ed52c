// Package signal provides sources for the operating system's "prefers dark"
// appearance signal. One-shot Probes read the preference; Poller turns a
// Probe into a subscribable signal and Manual is driven in-process.
package signal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	playgrounderrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// ErrUnsupported reports that a probe cannot read a preference on this host.
var ErrUnsupported = errors.New("appearance preference unsupported")

// Probe reads the appearance preference once.
type Probe interface {
	Name() string
	PrefersDark(ctx context.Context) (bool, error)
}

// Chain tries each probe in order and returns the first successful reading.
type Chain []Probe

// Name lists the chained probe names.
func (c Chain) Name() string {
	names := make([]string, 0, len(c))
	for _, p := range c {
		names = append(names, p.Name())
	}
	return strings.Join(names, ">")
}

// PrefersDark returns the first reading any probe can provide.
func (c Chain) PrefersDark(ctx context.Context) (bool, error) {
	var errs []error
	for _, p := range c {
		dark, err := p.PrefersDark(ctx)
		if err == nil {
			return dark, nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return false, ErrUnsupported
	}
	return false, fmt.Errorf("%w: %w", ErrUnsupported, errors.Join(errs...))
}

func unsupported(probe, reason string) error {
	return playgrounderrors.NewProbeError(probe, fmt.Errorf("%w: %s", ErrUnsupported, reason))
}
