// Package geocore is a small, dependency-light toolkit for spatial and
// sequential data: an order-preserving hashed sequence, a pluggable metric
// index for nearest-neighbor and range queries, and a local-polynomial
// smoother for noisy geographic time series.
//
// What is geocore?
//
//	Three cooperating data structures, usable independently:
//
//	  • sequence — a doubly-linked, hash-indexed sequence with O(1)
//	    neighbor lookup and a mod-count-guarded iterator.
//	  • mtree    — an M-tree-style metric index: kNN and range search over
//	    any user-supplied DistanceMetric, not just Euclidean points.
//	  • kinetics — weighted local-polynomial fitting over time-stamped
//	    position samples, producing a single consistent snapshot of
//	    location, speed, course, climb rate, turn rate, and acceleration.
//
// Why these three together?
//
//   - Single-threaded by design — no locks, no goroutines; callers that
//     need concurrent access own that decision at a higher layer.
//   - Pure Go — no cgo, no hidden dependencies in the core algorithms.
//   - Metric-agnostic — mtree indexes anything with a distance function,
//     demonstrated here over 2D points (mtree.Euclidean2D) and over numeric
//     series (dtw).
//
// Supporting packages:
//
//	geodesy/  — great-circle distance, bearing, midpoint, lat/lon clamping
//	polyfit/  — weighted least-squares polynomial fit
//	dtw/      — Dynamic Time Warping as a mtree.DistanceMetric
//	fixtures/ — deterministic synthetic data for tests and examples
//
// Runnable usage lives in each package's Example functions; there is no
// separate end-to-end examples package.
//
// See DESIGN.md for the rationale and grounding behind each package.
package geocore
