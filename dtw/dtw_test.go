package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcspatial/geocore/dtw"
)

func TestDistance_IdenticalSequencesAreZero(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	d, err := dtw.Distance(a, a, dtw.DefaultOptions())
	require.NoError(t, err)
	require.Zero(t, d)
}

func TestDistance_ToleratesTimeShift(t *testing.T) {
	// b is a stretched by one repeated sample; a shape-aware distance
	// should score this far cheaper than the naive sum of absolute
	// differences at matching indices.
	a := []float64{0, 1, 2, 3, 2, 1, 0}
	b := []float64{0, 0, 1, 2, 3, 2, 1, 0}

	dtwDist, err := dtw.Distance(a, b, dtw.DefaultOptions())
	require.NoError(t, err)

	var euclideanLike float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		euclideanLike += math.Abs(a[i] - b[i])
	}

	require.Less(t, dtwDist, euclideanLike, "DTW distance should be cheaper than the naive index-aligned sum")
}

func TestDistance_EmptySequenceRejected(t *testing.T) {
	_, err := dtw.Distance(nil, []float64{1}, dtw.DefaultOptions())
	require.ErrorIs(t, err, dtw.ErrEmptySequence)
}

func TestDistance_InvalidOptionsRejected(t *testing.T) {
	_, err := dtw.Distance([]float64{1}, []float64{1}, dtw.Options{Window: -2})
	require.ErrorIs(t, err, dtw.ErrInvalidOptions)
}

func TestDistance_WindowPrunesFarAlignments(t *testing.T) {
	a := make([]float64, 20)
	b := make([]float64, 20)
	for i := range a {
		a[i] = float64(i)
		b[i] = float64(i)
	}
	b[19] = 1000 // a single far outlier at the end

	unconstrained, err := dtw.Distance(a, b, dtw.DefaultOptions())
	require.NoError(t, err)
	windowed, err := dtw.Distance(a, b, dtw.Options{Window: 1})
	require.NoError(t, err)

	// Both must still detect the cost of the outlier; the window only
	// restricts how alignments may drift, not whether an outlier is seen.
	require.Greater(t, unconstrained, 0.0)
	require.Greater(t, windowed, 0.0)
	// Pruning alignments can only keep or raise the cheapest cost.
	require.GreaterOrEqual(t, windowed, unconstrained)
}

func TestEncodeDecode_RoundTrips(t *testing.T) {
	seq := []float64{1.5, -2.25, 0, 3.75}
	got := dtw.Decode(dtw.Encode(seq))
	require.Equal(t, seq, got)
}

func TestEncode_EqualSequencesProduceEqualKeys(t *testing.T) {
	a := dtw.Encode([]float64{1, 2, 3})
	b := dtw.Encode([]float64{1, 2, 3})
	require.Equal(t, a, b)
}
