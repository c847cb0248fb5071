// Package kinetics fits a short window of noisy geographic samples to a
// local polynomial and evaluates it at a query time, producing a single
// consistent snapshot of position, heading, and rate-of-change quantities.
//
// The fit is a weighted least squares over a Gaussian window: latitude and
// longitude get a degree-2 polynomial in time, altitude a degree-1
// polynomial (or none, under WithIgnoreAltitude). Everything else — speed,
// course, climb rate, turn rate, acceleration — is derived from the fitted
// polynomials by finite differences, not by differentiating noisy raw
// samples directly.
//
// kinetics never extrapolates: a query time outside the span of the
// filtered window is refused with ErrNoFit, as is a window with too few
// distinct sample timestamps.
package kinetics
