package kinetics

import "time"

const (
	// DefaultWindow is the full width of the Gaussian weighting window used
	// when the caller does not override it with WithWindow.
	DefaultWindow = 10 * time.Second

	// DefaultRequiredPoints is the minimum number of distinct sample
	// timestamps inside the window below which a fit is refused.
	DefaultRequiredPoints = 3
)

// Option configures a Fitter. Constructed via the With* functions below;
// mirrors the functional-options style used across this module's other
// configurable types.
type Option func(*Fitter)

// WithWindow sets the full width of the Gaussian weighting window. The
// window's standard deviation is window/6, so its half-width is 3σ.
// Panics if window is not strictly positive: a non-positive window is a
// programmer error, not a runtime condition a caller recovers from.
func WithWindow(window time.Duration) Option {
	if window <= 0 {
		panic("kinetics: WithWindow requires a strictly positive duration")
	}
	return func(f *Fitter) { f.window = window }
}

// WithRequiredPoints sets the minimum number of distinct sample timestamps
// that must fall inside the window for a fit to be attempted. Panics if n
// is negative.
func WithRequiredPoints(n int) Option {
	if n < 0 {
		panic("kinetics: WithRequiredPoints requires a non-negative count")
	}
	return func(f *Fitter) { f.requiredPoints = n }
}

// WithIgnoreAltitude forces altitude and climb rate to zero in every
// snapshot this Fitter produces, and lifts the requirement that samples
// carry a meaningful Alt field.
func WithIgnoreAltitude() Option {
	return func(f *Fitter) { f.ignoreAltitude = true }
}

// Fitter holds the configuration for LocalPolyFit and exposes Interpolate.
// The zero value is not usable; construct with New.
type Fitter struct {
	window         time.Duration
	requiredPoints int
	ignoreAltitude bool
}

// New constructs a Fitter with DefaultWindow and DefaultRequiredPoints,
// applying opts in order.
func New(opts ...Option) *Fitter {
	f := &Fitter{
		window:         DefaultWindow,
		requiredPoints: DefaultRequiredPoints,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f
}
