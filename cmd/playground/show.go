package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playground/internal/theme"
	"github.com/alexisbeaulieu97/playground/internal/tui"
	"github.com/alexisbeaulieu97/playground/internal/ui"
)

func newShowCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Launch the interactive landing page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, flags)
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, flags *rootFlags) error {
	// The alt screen owns the terminal; logs go to logging.file or nowhere.
	app, err := newAppContext(flags, io.Discard, theme.RendererApplier(nil))
	if err != nil {
		return err
	}
	defer app.Close()

	model := tui.NewModel(tui.Options{
		Engine: app.Engine,
		Manual: app.Manual,
		Hero:   app.Config.Hero,
		Styles: ui.NewStyles(nil, ui.DefaultPalette()),
		Logger: app.Logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	stop := tui.ListenTheme(app.Engine, p.Send)
	defer stop()

	app.Logger.Info("launching playground")
	if _, err := p.Run(); err != nil {
		app.Logger.Error(err, "playground exited with error")
		return fmt.Errorf("run playground: %w", err)
	}
	app.Logger.Info("playground closed")

	return nil
}
