package fixtures

import "github.com/arcspatial/geocore/sequence"

// ShuffledInts returns a Fisher-Yates-shuffled permutation of 0..n-1.
func ShuffledInts(n int, opts ...Option) []int {
	c := newConfig(opts...)

	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	for i := n - 1; i > 0; i-- {
		j := c.rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// ShuffledSequence builds a sequence.Sequence[int] containing 0..n-1
// inserted in a shuffled order, exercising InsertBack under non-sorted
// input the way a real caller's insertion order rarely matches 0..n-1.
func ShuffledSequence(n int, opts ...Option) *sequence.Sequence[int] {
	seq := sequence.New[int]()
	for _, v := range ShuffledInts(n, opts...) {
		_ = seq.InsertBack(v)
	}

	return seq
}
