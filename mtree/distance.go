package mtree

import "math"

// observeDistance calls metric(a, b) and validates the result: a NaN or
// negative distance is a hard programmer error in the metric
// implementation, detected on every call rather than allowed to corrupt
// the tree.
func observeDistance[K comparable](metric DistanceMetric[K], a, b K) (float64, error) {
	d, err := metric(a, b)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) || d < 0 {
		return 0, ErrInvalidDistance
	}

	return d, nil
}

// Point2D is a float64 pair interpreted as Cartesian (x, y) coordinates,
// the key type measured by the ready-made Euclidean2D metric.
type Point2D struct {
	X, Y float64
}

// Euclidean2D computes the Euclidean distance between two Point2D values.
func Euclidean2D(a, b Point2D) (float64, error) {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy), nil
}
