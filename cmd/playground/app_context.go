package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexisbeaulieu97/playground/internal/config"
	"github.com/alexisbeaulieu97/playground/internal/logger"
	"github.com/alexisbeaulieu97/playground/internal/preference"
	"github.com/alexisbeaulieu97/playground/internal/signal"
	"github.com/alexisbeaulieu97/playground/internal/theme"
)

// AppContext bundles long-lived services created for one command.
type AppContext struct {
	Config *config.Config
	Logger *logger.Logger
	Engine *theme.Engine
	// Manual is non-nil when theme.source is "manual".
	Manual *signal.Manual

	closers []func() error
}

// newAppContext loads configuration and wires the theme engine. Logs go to
// logging.file when set, otherwise to logOut.
func newAppContext(flags *rootFlags, logOut io.Writer, appliers ...theme.Applier) (*AppContext, error) {
	path := flags.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	app := &AppContext{Config: cfg}

	if cfg.Logging.File != "" {
		f, err := openLogFile(cfg.Logging.File)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, f.Close)
		logOut = f
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.HumanReadable,
		Writer:        logOut,
	})
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}
	app.Logger = log

	kv := openPreferences(cfg.Theme.StorePath, log)

	sig, err := signal.FromSource(cfg.Theme.Source, cfg.Theme.PollInterval, log)
	if err != nil {
		_ = app.Close()
		return nil, err
	}
	if manual, ok := sig.(*signal.Manual); ok && cfg.Theme.Source == signal.SourceManual {
		app.Manual = manual
	}

	app.Engine = theme.New(theme.Options{
		Store:    preference.NewThemeStore(kv),
		Signal:   sig,
		Appliers: appliers,
		Logger:   log,
	})
	app.closers = append(app.closers, func() error {
		app.Engine.Close()
		return nil
	})

	log.WithFields(map[string]any{
		"config": path,
		"source": cfg.Theme.Source,
		"store":  cfg.Theme.StorePath,
		"phase":  app.Engine.Observe().Phase(),
	}).Debug("theme engine ready")

	return app, nil
}

// Close releases resources in reverse order of acquisition.
func (a *AppContext) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// openPreferences falls back to memory when the file cannot be read, so an
// unreadable preference behaves as an absent one.
func openPreferences(path string, log *logger.Logger) preference.KV {
	if path == "" {
		return preference.NewMemoryStore()
	}
	store, err := preference.NewFileStore(path)
	if err != nil {
		log.WithFields(map[string]any{"path": path}).Error(err, "preference store unavailable, keeping preferences in memory")
		return preference.NewMemoryStore()
	}
	log.WithFields(map[string]any{"path": store.Path()}).Debug("preference store opened")
	return store
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
