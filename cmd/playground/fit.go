package main

import (
	"errors"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/playground/internal/autofit"
	"github.com/alexisbeaulieu97/playground/internal/logger"
	"github.com/alexisbeaulieu97/playground/internal/termsize"
	"github.com/alexisbeaulieu97/playground/internal/theme"
	"github.com/alexisbeaulieu97/playground/internal/ui"
)

type fitOptions struct {
	width int
	watch bool
}

func newFitCmd(flags *rootFlags) *cobra.Command {
	opts := &fitOptions{}

	cmd := &cobra.Command{
		Use:   "fit [bold] [regular]",
		Short: "Render the title at the largest size that fits the width",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd, flags, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "Container width in cells (default: terminal width)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Refit on every terminal resize until interrupted")

	return cmd
}

func runFit(cmd *cobra.Command, flags *rootFlags, opts *fitOptions, args []string) error {
	if opts.watch && opts.width > 0 {
		return errors.New("--watch follows the terminal and cannot be combined with --width")
	}

	out := cmd.OutOrStdout()
	renderer := lipgloss.NewRenderer(out)

	app, err := newAppContext(flags, cmd.ErrOrStderr(), theme.RendererApplier(renderer))
	if err != nil {
		return err
	}
	defer app.Close()

	bold, regular := app.Config.Hero.Bold, app.Config.Hero.Regular
	if len(args) > 0 {
		bold, regular = args[0], ""
	}
	if len(args) > 1 {
		regular = args[1]
	}

	styles := ui.NewStyles(renderer, ui.DefaultPalette())
	text := autofit.NewText(autofit.NewBanner(styles.HeroBold, styles.HeroRegular), bold, regular, app.Logger)

	if opts.watch {
		return watchFit(cmd, text, app.Logger)
	}

	width := opts.width
	if width <= 0 {
		watcher := termsize.New(os.Stdout, app.Logger)
		if err := watcher.Refresh(); err != nil {
			return fmt.Errorf("terminal width unknown, pass --width: %w", err)
		}
		width = watcher.Width()
	}

	text.Resize(width)
	fmt.Fprintln(out, text.View())
	return nil
}

func watchFit(cmd *cobra.Command, text *autofit.Text, log *logger.Logger) error {
	ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := termsize.New(os.Stdout, log)
	if err := watcher.Refresh(); err != nil {
		return fmt.Errorf("--watch needs a terminal: %w", err)
	}

	redraw := make(chan struct{}, 1)
	release := text.Activate(redrawSource{watcher: watcher, redraw: redraw})
	defer release()

	screen := termenv.NewOutput(cmd.OutOrStdout())
	draw := func() {
		width, height := watcher.Size()
		log.WithFields(map[string]any{"width": width, "height": height, "size": text.Size()}).Debug("redraw")
		screen.ClearScreen()
		fmt.Fprintln(screen, text.View())
	}
	draw()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(ctx)
	})
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-redraw:
				draw()
			}
		}
	})

	return g.Wait()
}

// redrawSource feeds a Text from the watcher and queues a redraw after
// every refit.
type redrawSource struct {
	watcher *termsize.Watcher
	redraw  chan<- struct{}
}

func (s redrawSource) Width() int {
	return s.watcher.Width()
}

func (s redrawSource) Subscribe(fn func(width int)) (release func()) {
	return s.watcher.Subscribe(func(width int) {
		fn(width)
		select {
		case s.redraw <- struct{}{}:
		default:
		}
	})
}
