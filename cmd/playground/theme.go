package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/playground/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the current theme",
		Long:  "Show the resolved theme: an explicit choice wins over the operating system, which wins over light.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, flags, func(e *theme.Engine) (theme.State, error) {
				return e.Observe(), nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark and remember the choice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, flags, func(e *theme.Engine) (theme.State, error) {
				return e.Toggle(), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Choose a theme explicitly",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := theme.ParseMode(args[0])
			if err != nil {
				return fmt.Errorf("set theme: %w", err)
			}
			return withEngine(cmd, flags, func(e *theme.Engine) (theme.State, error) {
				return e.SetExplicit(mode)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the explicit choice and follow the operating system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, flags, func(e *theme.Engine) (theme.State, error) {
				return e.ClearOverride(), nil
			})
		},
	})

	return cmd
}

func withEngine(cmd *cobra.Command, flags *rootFlags, op func(*theme.Engine) (theme.State, error)) error {
	app, err := newAppContext(flags, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	state, err := op(app.Engine)
	if err != nil {
		return err
	}

	printState(cmd.OutOrStdout(), state)
	return nil
}

func printState(w io.Writer, s theme.State) {
	fmt.Fprintf(w, "mode:     %s\nphase:    %s\noverride: %t\n", s.Mode, s.Phase(), s.Override)
}
