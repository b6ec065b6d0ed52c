package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Mode is the appearance currently in effect.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ErrInvalidMode is returned when a value is neither light nor dark.
var ErrInvalidMode = errors.New("invalid theme mode")

// ParseMode converts user input into a Mode. Matching is case-insensitive.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, raw)
	}
}

// Valid reports whether m is light or dark.
func (m Mode) Valid() bool {
	return m == Light || m == Dark
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string {
	return string(m)
}

func modeFor(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

// State is a snapshot of the engine.
type State struct {
	Mode     Mode
	Override bool
}

// Phase names the state machine state: system-light, system-dark,
// user-light or user-dark.
func (s State) Phase() string {
	if s.Override {
		return "user-" + s.Mode.String()
	}
	return "system-" + s.Mode.String()
}
