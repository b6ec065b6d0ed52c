// Package autofit sizes text to the width of its container. MaxSize is a
// binary search over integer sizes; Text re-runs it whenever its content
// or container width changes.
package autofit

// MaxSize returns the largest size in [1, width] whose rendered width does
// not exceed width, or 1 when none fits. render must be non-decreasing in
// size; the result is undefined otherwise.
func MaxSize(width int, render func(size int) int) int {
	lo, hi, best := 1, width, 1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if render(mid) <= width {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

// FitResult is the outcome of one measurement pass.
type FitResult struct {
	ContainerWidth int
	ChosenSize     int
}

// Layout is the host surface a fit pass measures and mutates.
type Layout interface {
	// ContainerWidth is the width available to the text, in cells.
	ContainerWidth() int
	// TextWidth renders the text at size and returns its horizontal extent.
	TextWidth(size int) int
	// ApplySize commits the chosen size to the surface.
	ApplySize(size int)
}

// Fitter runs measurement passes over a Layout and keeps the last result.
// It is not safe for concurrent use; Text serialises access to it.
type Fitter struct {
	layout Layout
	last   FitResult
	fitted bool
}

// NewFitter returns a Fitter bound to l.
func NewFitter(l Layout) *Fitter {
	return &Fitter{layout: l}
}

// Fit runs one pass. It applies nothing and returns false when the
// container has no usable width yet.
func (f *Fitter) Fit() bool {
	width := f.layout.ContainerWidth()
	if width <= 0 {
		return false
	}
	size := MaxSize(width, f.layout.TextWidth)
	f.layout.ApplySize(size)
	f.last = FitResult{ContainerWidth: width, ChosenSize: size}
	f.fitted = true
	return true
}

// Result returns the outcome of the most recent applied pass.
func (f *Fitter) Result() (FitResult, bool) {
	return f.last, f.fitted
}
