package signal

import (
	"fmt"
	"time"

	"github.com/alexisbeaulieu97/playground/internal/logger"
	"github.com/alexisbeaulieu97/playground/internal/theme"
)

// Source names accepted in configuration.
const (
	SourceAuto     = "auto"
	SourceDesktop  = "desktop"
	SourceEnv      = "env"
	SourceTerminal = "terminal"
	SourceManual   = "manual"
	SourceNone     = "none"
)

// Sources lists every accepted source name.
var Sources = []string{SourceAuto, SourceDesktop, SourceEnv, SourceTerminal, SourceManual, SourceNone}

// FromSource builds the theme signal for a configured source name. Probing
// sources are polled every interval.
func FromSource(source string, interval time.Duration, log *logger.Logger) (theme.Signal, error) {
	switch source {
	case SourceAuto, "":
		return NewPoller(autoChain(NewEnv(), NewDesktop(), NewTerminal()), interval, log), nil
	case SourceDesktop:
		return NewPoller(NewDesktop(), interval, log), nil
	case SourceEnv:
		return NewPoller(NewEnv(), interval, log), nil
	case SourceTerminal:
		return NewPoller(NewTerminal(), interval, log), nil
	case SourceManual:
		return NewManual(false), nil
	case SourceNone:
		return NewUnsupported(), nil
	default:
		return nil, fmt.Errorf("unknown appearance source %q", source)
	}
}

// autoChain puts the desktop setting behind only the explicit override, so
// a terminal's static COLORFGBG hint never hides live desktop changes.
func autoChain(env Env, desktop Desktop, term *Terminal) Chain {
	override := env
	override.OverrideOnly = true
	env.OverrideOnly = false
	return Chain{override, desktop, env, term}
}
