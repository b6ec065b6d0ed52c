package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func TestFitRendersLargestSizeForWidth(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "fit", "--width", "40", "HI")
	require.NoError(t, err)

	banner := strings.TrimSuffix(out, "\n")
	require.LessOrEqual(t, lipgloss.Width(banner), 40)
	// Size 6 draws block letters five cells per pixel, three rows per pixel.
	require.Equal(t, 15, lipgloss.Height(banner))
}

func TestFitFallsBackToPlainText(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "fit", "--width", "30")
	require.NoError(t, err)
	require.Equal(t, "Machine Learning Playground\n", out)
}

func TestFitUsesBothRuns(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run(t, "fit", "--width", "13", "A", "B")
	require.NoError(t, err)
	require.Equal(t, 5, lipgloss.Height(strings.TrimSuffix(out, "\n")))
	require.Equal(t, 13, lipgloss.Width(out))
}

func TestFitWatchRejectsFixedWidth(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run(t, "fit", "--watch", "--width", "80")
	require.ErrorContains(t, err, "--watch")
}
