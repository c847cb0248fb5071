package polyfit

import "errors"

// Sentinel errors for polyfit. Callers should branch with errors.Is.
var (
	// ErrUnsupportedDegree indicates a degree outside {1, 2} was requested.
	ErrUnsupportedDegree = errors.New("polyfit: unsupported degree")

	// ErrInsufficientData indicates fewer usable samples than degree+1.
	ErrInsufficientData = errors.New("polyfit: insufficient data for requested degree")

	// ErrSingularSystem indicates the weighted normal equations could not
	// be solved (a zero pivot was encountered during LU decomposition).
	ErrSingularSystem = errors.New("polyfit: singular normal-equations system")

	// ErrLengthMismatch indicates weights, xs, and ys have differing lengths.
	ErrLengthMismatch = errors.New("polyfit: weights/xs/ys length mismatch")
)
