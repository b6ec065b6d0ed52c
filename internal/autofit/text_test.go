package autofit

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/playground/internal/logger"
)

type fakeSource struct {
	mu     sync.Mutex
	width  int
	subs   map[int]func(int)
	nextID int
}

func newFakeSource(width int) *fakeSource {
	return &fakeSource{width: width, subs: map[int]func(int){}}
}

func (s *fakeSource) Subscribe(fn func(int)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *fakeSource) resize(width int) {
	s.mu.Lock()
	s.width = width
	subs := make([]func(int), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(width)
	}
}

func (s *fakeSource) active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// sizedSource also reports its current width up front.
type sizedSource struct{ *fakeSource }

func (s sizedSource) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

func requireLargestFit(t *testing.T, text *Text, banner *Banner, bold, regular string) {
	t.Helper()
	res, ok := text.Result()
	require.True(t, ok)
	if res.ChosenSize == 1 {
		return
	}
	require.LessOrEqual(t, banner.Width(bold, regular, res.ChosenSize), res.ContainerWidth)
	if res.ChosenSize < res.ContainerWidth {
		require.Greater(t, banner.Width(bold, regular, res.ChosenSize+1), res.ContainerWidth)
	}
}

func TestTextIsUnfittedUntilWidthKnown(t *testing.T) {
	text := NewText(plainBanner(), "Machine Learning", "Playground", nil)

	_, ok := text.Result()
	require.False(t, ok)
	require.Equal(t, 1, text.Size())
	require.Equal(t, "Machine Learning Playground", text.View())

	text.Resize(0)
	_, ok = text.Result()
	require.False(t, ok)
	require.Equal(t, 1, text.Size())
}

func TestTextFitsOnMountFromSizedSource(t *testing.T) {
	banner := plainBanner()
	src := newFakeSource(200)
	text := NewText(banner, "Machine Learning", "Playground", nil)

	release := text.Activate(sizedSource{src})
	defer release()

	res, ok := text.Result()
	require.True(t, ok)
	require.Equal(t, 200, res.ContainerWidth)
	require.Greater(t, res.ChosenSize, 1)
	requireLargestFit(t, text, banner, "Machine Learning", "Playground")
}

// shiftingSource reports its width and then resizes to next, as a terminal
// resized right after it was measured would.
type shiftingSource struct {
	*fakeSource
	next int
}

func (s shiftingSource) Width() int {
	s.mu.Lock()
	width := s.width
	s.mu.Unlock()
	s.resize(s.next)
	return width
}

func TestTextActivateKeepsResizeDuringMount(t *testing.T) {
	text := NewText(plainBanner(), "Machine Learning", "Playground", nil)

	release := text.Activate(shiftingSource{fakeSource: newFakeSource(200), next: 40})
	defer release()

	res, ok := text.Result()
	require.True(t, ok)
	require.Equal(t, 40, res.ContainerWidth)
}

func TestTextLogsPassesOnlyAtDebug(t *testing.T) {
	for _, tc := range []struct {
		level string
		want  bool
	}{
		{level: "debug", want: true},
		{level: "info", want: false},
	} {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := logger.New(logger.Options{Level: tc.level, Writer: &buf})
			require.NoError(t, err)

			text := NewText(plainBanner(), "Machine", "Learning", log)
			text.Resize(0)
			text.Resize(80)

			require.Equal(t, tc.want, strings.Contains(buf.String(), "fit skipped"))
			require.Equal(t, tc.want, strings.Contains(buf.String(), "text fitted"))
		})
	}
}

func TestTextRefitsOnResize(t *testing.T) {
	banner := plainBanner()
	src := newFakeSource(0)
	text := NewText(banner, "HI", "", nil)

	release := text.Activate(src)
	defer release()
	_, ok := text.Result()
	require.False(t, ok, "mount without a width is a no-op")

	src.resize(40)
	res, _ := text.Result()
	// HI is 7 pixels plus one gap: 8 cells per unit of scale.
	require.Equal(t, FitResult{ContainerWidth: 40, ChosenSize: 6}, res)

	src.resize(17)
	res, _ = text.Result()
	require.Equal(t, FitResult{ContainerWidth: 17, ChosenSize: 3}, res)

	src.resize(0)
	res, _ = text.Result()
	require.Equal(t, FitResult{ContainerWidth: 17, ChosenSize: 3}, res, "zero width keeps the previous fit")
	require.Equal(t, 3, text.Size())
}

func TestTextRefitsOnContentChange(t *testing.T) {
	banner := plainBanner()
	text := NewText(banner, "HI", "", nil)
	text.Resize(40)
	require.Equal(t, 6, text.Size())

	text.SetContent("Machine Learning", "Playground")
	require.Less(t, text.Size(), 6)
	requireLargestFit(t, text, banner, "Machine Learning", "Playground")
}

func TestTextFallsBackToSmallestSizeWhenNothingFits(t *testing.T) {
	text := NewText(plainBanner(), "Machine Learning", "Playground", nil)
	text.Resize(10)

	res, ok := text.Result()
	require.True(t, ok)
	require.Equal(t, FitResult{ContainerWidth: 10, ChosenSize: 1}, res)
	require.Equal(t, "Machine Learning Playground", text.View())
}

func TestTextActivateReleaseDoesNotLeak(t *testing.T) {
	src := newFakeSource(80)
	text := NewText(plainBanner(), "ML", "", nil)

	for i := 0; i < 100; i++ {
		release := text.Activate(src)
		require.Equal(t, 1, src.active())
		release()
		release()
		require.Zero(t, src.active())
	}

	before := text.Size()
	src.resize(8)
	require.Equal(t, before, text.Size(), "released text ignores resizes")
}

func TestTextUpdateHandlesWindowSize(t *testing.T) {
	text := NewText(plainBanner(), "HI", "", nil)
	text.Inset = 4

	cmd := text.Update(tea.WindowSizeMsg{Width: 44, Height: 20})
	require.Nil(t, cmd)

	res, ok := text.Result()
	require.True(t, ok)
	require.Equal(t, FitResult{ContainerWidth: 40, ChosenSize: 6}, res)

	require.Nil(t, text.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, 6, text.Size())
}

func TestTextSerialisesConcurrentResizes(t *testing.T) {
	banner := plainBanner()
	text := NewText(banner, "HI", "", nil)

	var wg sync.WaitGroup
	for w := 1; w <= 64; w++ {
		wg.Add(1)
		go func(width int) {
			defer wg.Done()
			text.Resize(width)
			_ = text.View()
		}(w)
	}
	wg.Wait()

	requireLargestFit(t, text, banner, "HI", "")
}
