package fixtures

import "github.com/arcspatial/geocore/mtree"

// RandomPoints returns n points uniformly distributed in [0, span) x
// [0, span), suitable for exercising mtree.Index under mtree.Euclidean2D.
func RandomPoints(n int, span float64, opts ...Option) []mtree.Point2D {
	c := newConfig(opts...)

	pts := make([]mtree.Point2D, n)
	for i := range pts {
		pts[i] = mtree.Point2D{
			X: c.rng.Float64() * span,
			Y: c.rng.Float64() * span,
		}
	}

	return pts
}

// DegenerateKeys returns n distinct integers meant to be indexed under a
// metric that collapses every pair to the same non-zero distance (an
// all-equal-distance, worst-case space for any sphere-splitting strategy).
// The keys themselves are just 0..n-1; degeneracy lives in the metric the
// caller pairs them with, not in the keys.
func DegenerateKeys(n int) []int {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}

	return keys
}
