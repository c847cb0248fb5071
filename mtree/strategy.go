package mtree

import (
	"math"
	"math/rand"
)

// Strategy selects the two center points a leaf split promotes. It owns
// its own *rand.Rand for the life of the index — no package-level or
// time-seeded global RNG is ever consulted, the same discipline the
// teacher's builder.WithSeed / tsp.rngFromSeed apply to their own
// stochastic constructors.
type Strategy[K comparable] interface {
	// chooseTwoCenters picks two distinct indices into keys and returns
	// the corresponding keys as the new centers.
	chooseTwoCenters(keys []K, metric DistanceMetric[K]) (K, K, error)
}

// SingleRandomSample selects two distinct indices uniformly at random
// from the leaf's keys. Simpler than MaxOfRandomSamples but can produce
// lower-quality (more overlapping) splits.
type SingleRandomSample[K comparable] struct {
	rng *rand.Rand
}

// NewSingleRandomSample returns a SingleRandomSample strategy seeded
// deterministically from seed.
func NewSingleRandomSample[K comparable](seed int64) *SingleRandomSample[K] {
	return &SingleRandomSample[K]{rng: rand.New(rand.NewSource(seed))}
}

func (s *SingleRandomSample[K]) chooseTwoCenters(keys []K, _ DistanceMetric[K]) (K, K, error) {
	var zero K
	if len(keys) < 2 {
		return zero, zero, ErrInvalidArgument
	}

	i, j := distinctPair(s.rng, len(keys))
	return keys[i], keys[j], nil
}

// MaxOfRandomSamples draws floor(sqrt(N)) random pairs of distinct
// indices, computes the metric on each, and retains the pair with the
// greatest distance. This is the default strategy: it empirically
// produces better-separated children and therefore fewer overlapping
// spheres than a single random sample.
type MaxOfRandomSamples[K comparable] struct {
	rng *rand.Rand
}

// NewMaxOfRandomSamples returns a MaxOfRandomSamples strategy seeded
// deterministically from seed.
func NewMaxOfRandomSamples[K comparable](seed int64) *MaxOfRandomSamples[K] {
	return &MaxOfRandomSamples[K]{rng: rand.New(rand.NewSource(seed))}
}

func (s *MaxOfRandomSamples[K]) chooseTwoCenters(keys []K, metric DistanceMetric[K]) (K, K, error) {
	var zero K
	n := len(keys)
	if n < 2 {
		return zero, zero, ErrInvalidArgument
	}

	samples := int(math.Sqrt(float64(n)))
	if samples < 1 {
		samples = 1
	}

	bestI, bestJ := distinctPair(s.rng, n)
	bestDist, err := observeDistance(metric, keys[bestI], keys[bestJ])
	if err != nil {
		return zero, zero, err
	}

	for t := 1; t < samples; t++ {
		i, j := distinctPair(s.rng, n)
		d, err := observeDistance(metric, keys[i], keys[j])
		if err != nil {
			return zero, zero, err
		}
		if d > bestDist {
			bestDist = d
			bestI, bestJ = i, j
		}
	}

	return keys[bestI], keys[bestJ], nil
}

// distinctPair returns two distinct indices in [0, n) drawn uniformly at
// random from rng.
func distinctPair(rng *rand.Rand, n int) (int, int) {
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}

	return i, j
}
