package signal

import (
	"context"
	"os"
	"strconv"
	"strings"
)

// EnvOverride names the variable that forces the reported preference.
const EnvOverride = "PLAYGROUND_OS_THEME"

// Env reads the preference from PLAYGROUND_OS_THEME ("light" or "dark")
// or, failing that, the background index in COLORFGBG. With OverrideOnly
// set, COLORFGBG is ignored.
type Env struct {
	Lookup       func(key string) (string, bool)
	OverrideOnly bool
}

// NewEnv returns an Env probe over the process environment.
func NewEnv() Env {
	return Env{Lookup: os.LookupEnv}
}

// Name identifies the probe.
func (e Env) Name() string {
	if e.OverrideOnly {
		return "env-override"
	}
	return "env"
}

// PrefersDark inspects the environment.
func (e Env) PrefersDark(context.Context) (bool, error) {
	lookup := e.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if raw, ok := lookup(EnvOverride); ok {
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "dark":
			return true, nil
		case "light":
			return false, nil
		}
	}

	if e.OverrideOnly {
		return false, unsupported(e.Name(), EnvOverride+" not set")
	}

	raw, ok := lookup("COLORFGBG")
	if !ok {
		return false, unsupported("env", "neither "+EnvOverride+" nor COLORFGBG set")
	}
	parts := strings.Split(raw, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 {
		return false, unsupported("env", "malformed COLORFGBG "+strconv.Quote(raw))
	}
	// ANSI indices 0-6 and 8 are the dark half of the 16-colour palette.
	return bg <= 6 || bg == 8, nil
}
