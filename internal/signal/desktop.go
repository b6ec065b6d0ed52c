package signal

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"

	playgrounderrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// Runner executes a command and returns its standard output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Desktop reads the desktop environment's appearance setting: macOS
// AppleInterfaceStyle, GNOME color-scheme or the Windows
// AppsUseLightTheme registry value.
type Desktop struct {
	GOOS string
	Run  Runner
}

// NewDesktop returns a Desktop probe for the running platform.
func NewDesktop() Desktop {
	return Desktop{GOOS: runtime.GOOS, Run: execRunner}
}

// Name identifies the probe.
func (d Desktop) Name() string {
	return "desktop"
}

// PrefersDark queries the platform setting.
func (d Desktop) PrefersDark(ctx context.Context) (bool, error) {
	run := d.Run
	if run == nil {
		run = execRunner
	}

	switch d.GOOS {
	case "darwin":
		out, err := run(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				// The key only exists while dark mode is on.
				return false, nil
			}
			return false, playgrounderrors.NewProbeError("defaults", err)
		}
		return strings.EqualFold(strings.TrimSpace(string(out)), "dark"), nil

	case "linux", "freebsd", "openbsd", "netbsd":
		out, err := run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return false, playgrounderrors.NewProbeError("gsettings", err)
		}
		value := strings.Trim(strings.TrimSpace(string(out)), "'\"")
		switch value {
		case "prefer-dark":
			return true, nil
		case "prefer-light", "default":
			return false, nil
		default:
			return false, unsupported("gsettings", "unrecognised color-scheme "+value)
		}

	case "windows":
		out, err := run(ctx, "reg", "query", `HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`, "/v", "AppsUseLightTheme")
		if err != nil {
			return false, playgrounderrors.NewProbeError("reg", err)
		}
		fields := strings.Fields(string(out))
		if len(fields) == 0 {
			return false, unsupported("reg", "empty registry output")
		}
		switch strings.ToLower(fields[len(fields)-1]) {
		case "0x0":
			return true, nil
		case "0x1":
			return false, nil
		default:
			return false, unsupported("reg", "unrecognised AppsUseLightTheme value")
		}
	}

	return false, unsupported("desktop", "no desktop probe for "+d.GOOS)
}
