package mtree

import "errors"

// Sentinel errors for MetricIndex operations. Callers should branch with
// errors.Is, never string comparison.
var (
	// ErrNullKey indicates a key argument that is a nil pointer, interface,
	// map, slice, channel, or function value.
	ErrNullKey = errors.New("mtree: key is nil")

	// ErrInvalidArgument indicates an out-of-range numeric input: k<1 for
	// KNearest or r<=0 for WithinRange. An invalid capacity or strategy at
	// construction time is not reported through it: WithCapacity and
	// WithStrategy panic on those.
	ErrInvalidArgument = errors.New("mtree: invalid argument")

	// ErrInvalidDistance indicates the configured DistanceMetric returned
	// NaN or a negative value on some pair of keys. This is a hard
	// programmer error in the metric implementation: the index never lets
	// a bad distance value propagate into its structure.
	ErrInvalidDistance = errors.New("mtree: distance metric returned NaN or negative value")
)

// invariantViolation panics with a descriptive message. Per spec.md §7,
// internal invariant violations (split on a non-leaf sphere, a size
// mismatch after rebalance, side-map inconsistency) are fatal assertions,
// not recoverable errors — they indicate a bug in this package, not in the
// caller's usage.
func invariantViolation(msg string) {
	panic("mtree: invariant violation: " + msg)
}
