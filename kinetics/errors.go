package kinetics

import "errors"

var (
	// ErrInvalidArgument is returned by Interpolate for a sample slice
	// that is not sorted by time. A non-positive window or a negative
	// requiredPoints is not reported through it: WithWindow and
	// WithRequiredPoints panic on those.
	ErrInvalidArgument = errors.New("kinetics: invalid argument")

	// ErrNoFit is returned when the window around the query time does not
	// contain enough distinct timestamps, or when the query time is not
	// enclosed by the filtered samples. Fitting never extrapolates.
	ErrNoFit = errors.New("kinetics: insufficient data for a local fit")
)
