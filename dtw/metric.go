package dtw

import (
	"encoding/binary"
	"math"

	"github.com/arcspatial/geocore/mtree"
)

// SequenceKey is a []float64 series encoded into a comparable value so it
// can serve as a mtree key — mtree.Index requires K comparable for its
// side-map, and a Go slice is not comparable. Encode/Decode round-trip a
// series through SequenceKey; callers never need to inspect its contents.
type SequenceKey string

// Encode packs seq into a SequenceKey. Two equal-valued series encode to
// the same key, matching the equality mtree relies on for its side-map.
func Encode(seq []float64) SequenceKey {
	buf := make([]byte, 8*len(seq))
	for i, v := range seq {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}

	return SequenceKey(buf)
}

// Decode recovers the []float64 series a SequenceKey was built from.
func Decode(key SequenceKey) []float64 {
	buf := []byte(key)
	seq := make([]float64, len(buf)/8)
	for i := range seq {
		bits := binary.LittleEndian.Uint64(buf[i*8:])
		seq[i] = math.Float64frombits(bits)
	}

	return seq
}

// Metric returns a mtree.DistanceMetric over SequenceKey that decodes both
// operands and scores them with Distance under opts. Pass the result to
// mtree.New to index time-series-shaped keys under DTW instead of a
// point-geometry metric like mtree.Euclidean2D.
func Metric(opts Options) mtree.DistanceMetric[SequenceKey] {
	return func(a, b SequenceKey) (float64, error) {
		return Distance(Decode(a), Decode(b), opts)
	}
}
