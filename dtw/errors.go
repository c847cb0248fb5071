package dtw

import "errors"

var (
	// ErrEmptySequence is returned when either input sequence has zero
	// length; DTW distance is undefined against an empty series.
	ErrEmptySequence = errors.New("dtw: sequences must be non-empty")

	// ErrInvalidOptions is returned by Options.Validate for an unusable
	// combination: a negative window below -1, or a negative penalty.
	ErrInvalidOptions = errors.New("dtw: invalid options combination")
)
