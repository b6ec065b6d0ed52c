package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	playgrounderrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestParseConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name: "overrides are applied over defaults",
			contents: `theme:
  store_path: /tmp/prefs.json
  source: manual
  poll_interval: 500ms
hero:
  bold: Deep
  regular: Learning
logging:
  level: debug
`,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "/tmp/prefs.json", cfg.Theme.StorePath)
				require.Equal(t, "manual", cfg.Theme.Source)
				require.Equal(t, 500*time.Millisecond, cfg.Theme.PollInterval)
				require.Equal(t, "Deep", cfg.Hero.Bold)
				require.Equal(t, "Welcome to the", cfg.Hero.Subtitle)
				require.Len(t, cfg.Hero.Features, 3)
				require.Equal(t, "debug", cfg.Logging.Level)
				require.True(t, cfg.Logging.HumanReadable)
			},
		},
		{
			name:     "empty store path means memory only",
			contents: "theme:\n  store_path: \"\"\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Empty(t, cfg.Theme.StorePath)
			},
		},
		{
			name:     "empty document yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "auto", cfg.Theme.Source)
				require.Equal(t, 2*time.Second, cfg.Theme.PollInterval)
			},
		},
		{
			name:     "malformed yaml reports the line",
			contents: "theme:\n  source: auto\n  poll_interval: [1, 2]\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *playgrounderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:     "unknown keys are rejected",
			contents: "theme:\n  colour: dark\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *playgrounderrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "invalid values fail validation",
			contents: "theme:\n  source: carrier-pigeon\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var validationErr *playgrounderrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "theme.source", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := ParseConfig(writeConfig(t, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	var parseErr *playgrounderrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".playground", "preferences.json"), cfg.Theme.StorePath)
	require.Equal(t, "Machine Learning", cfg.Hero.Bold)
	require.Equal(t, "Playground", cfg.Hero.Regular)
}

func TestLoadExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	cfg, err := Load(writeConfig(t, "logging:\n  file: ~/logs/playground.log\n"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "logs", "playground.log"), cfg.Logging.File)
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	tests := map[string]string{
		"":             "",
		"~":            home,
		"~/a/b.json":   filepath.Join(home, "a", "b.json"),
		"/abs/b.json":  "/abs/b.json",
		"~other/x":     "~other/x",
		"relative/x.y": "relative/x.y",
	}
	for in, want := range tests {
		got, err := ExpandPath(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
}
