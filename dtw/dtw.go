package dtw

import "math"

// Distance computes the Dynamic Time Warping distance between a and b under
// opts, using a rolling two-row DP so memory stays O(len(b)) rather than a
// full len(a) x len(b) matrix — a metric evaluated on every comparison
// inside an index never needs the backtraced alignment path, only the
// scalar cost.
//
// Time complexity: O(len(a) * len(b)); when opts.Window is set, cells outside
// the band are still visited but skipped without computing a cost.
// Memory: O(len(b)).
func Distance(a, b []float64, opts Options) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptySequence
	}
	if err := opts.Validate(); err != nil {
		return 0, err
	}

	n, m := len(a), len(b)
	inf := math.Inf(1)

	prevRow := make([]float64, m+1)
	currRow := make([]float64, m+1)

	for j := 1; j <= m; j++ {
		prevRow[j] = inf
	}

	for i := 1; i <= n; i++ {
		currRow[0] = inf

		for j := 1; j <= m; j++ {
			if opts.Window >= 0 && absInt(i-j) > opts.Window {
				currRow[j] = inf
				continue
			}

			localCost := math.Abs(a[i-1] - b[j-1])

			matchCost := prevRow[j-1]
			insertCost := prevRow[j] + opts.SlopePenalty
			deleteCost := currRow[j-1] + opts.SlopePenalty

			currRow[j] = localCost + min3(matchCost, insertCost, deleteCost)
		}

		prevRow, currRow = currRow, prevRow
	}

	return prevRow[m], nil
}

func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
