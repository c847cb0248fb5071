// Package polyfit provides a minimal weighted-least-squares polynomial fit,
// the WeightedPolyFit primitive that kinetics relies on to turn a noisy
// time series into a smooth local curve.
//
// WeightedPolyFit accepts degree 1 or 2, a weight per sample, and the x/y
// coordinates, and returns a Polynomial supporting value-at-x and
// derivative-at-x. Internally it builds the normal equations of the
// weighted design matrix and solves them with a Doolittle LU decomposition,
// the same technique (and loop shape) as the teacher's matrix.LU — adapted
// here into a small, dependency-free (degree+1)x(degree+1) solve since a
// fit never needs more than a 3x3 system.
//
// Errors:
//
//	ErrUnsupportedDegree - degree is not 1 or 2.
//	ErrInsufficientData  - fewer samples than degree+1.
//	ErrSingularSystem    - the normal equations are singular (degenerate input,
//	                       such as too few distinct x values or non-zero weights).
package polyfit
