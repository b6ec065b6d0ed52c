package autofit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func linearScan(width int, render func(int) int) int {
	best := 1
	for s := 1; s <= width; s++ {
		if render(s) <= width {
			best = s
		}
	}
	return best
}

func TestMaxSizeScenario(t *testing.T) {
	render := func(s int) int { return 10 * s }
	require.Equal(t, 10, MaxSize(105, render))
	require.Equal(t, 10, MaxSize(100, render))
	require.Equal(t, 9, MaxSize(99, render))
}

func TestMaxSizeBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		render func(int) int
		want   int
	}{
		{name: "zero width", width: 0, render: func(s int) int { return s }, want: 1},
		{name: "negative width", width: -12, render: func(s int) int { return s }, want: 1},
		{name: "nothing fits", width: 40, render: func(s int) int { return 41 + s }, want: 1},
		{name: "everything fits", width: 64, render: func(int) int { return 0 }, want: 64},
		{name: "exact fit at max", width: 7, render: func(s int) int { return s }, want: 7},
		{name: "width one", width: 1, render: func(s int) int { return s }, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, MaxSize(tt.width, tt.render))
		})
	}
}

func TestMaxSizeMatchesLinearScan(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		width := rng.Intn(600) + 1
		slope := rng.Intn(25) + 1
		offset := rng.Intn(80)
		step := rng.Intn(6) + 1

		linear := func(s int) int { return slope*s + offset }
		stepped := func(s int) int { return ((s+step-1)/step)*slope*step + offset }

		require.Equal(t, linearScan(width, linear), MaxSize(width, linear), "linear width=%d slope=%d offset=%d", width, slope, offset)
		require.Equal(t, linearScan(width, stepped), MaxSize(width, stepped), "stepped width=%d slope=%d step=%d", width, slope, step)

		got := MaxSize(width, linear)
		require.GreaterOrEqual(t, got, 1)
		require.LessOrEqual(t, got, width)
		if linear(1) <= width {
			require.LessOrEqual(t, linear(got), width)
			if got < width {
				require.Greater(t, linear(got+1), width)
			}
		}
	}
}

func TestMaxSizeProbesLogarithmically(t *testing.T) {
	calls := 0
	MaxSize(1<<16, func(s int) int {
		calls++
		return s * 3
	})
	require.LessOrEqual(t, calls, 17)
}

type fakeLayout struct {
	width   int
	per     int
	applied []int
}

func (f *fakeLayout) ContainerWidth() int    { return f.width }
func (f *fakeLayout) TextWidth(size int) int { return f.per * size }
func (f *fakeLayout) ApplySize(size int)     { f.applied = append(f.applied, size) }

func TestFitterSkipsWithoutWidth(t *testing.T) {
	layout := &fakeLayout{per: 10}
	fitter := NewFitter(layout)

	require.False(t, fitter.Fit())
	_, ok := fitter.Result()
	require.False(t, ok)
	require.Empty(t, layout.applied)

	layout.width = -3
	require.False(t, fitter.Fit())
	require.Empty(t, layout.applied)
}

func TestFitterAppliesAndRecords(t *testing.T) {
	layout := &fakeLayout{width: 105, per: 10}
	fitter := NewFitter(layout)

	require.True(t, fitter.Fit())
	res, ok := fitter.Result()
	require.True(t, ok)
	require.Equal(t, FitResult{ContainerWidth: 105, ChosenSize: 10}, res)

	layout.width = 0
	require.False(t, fitter.Fit())
	res, ok = fitter.Result()
	require.True(t, ok)
	require.Equal(t, 10, res.ChosenSize, "a skipped pass keeps the previous result")
	require.Equal(t, []int{10}, layout.applied)

	layout.width = 42
	require.True(t, fitter.Fit())
	require.Equal(t, []int{10, 4}, layout.applied)
}
