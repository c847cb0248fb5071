package fixtures_test

import (
	"fmt"

	"github.com/arcspatial/geocore/fixtures"
	"github.com/arcspatial/geocore/mtree"
)

// ExampleRandomPoints builds a metric index from a deterministic random
// point cloud, the way a benchmark or property test seeds its input data.
func ExampleRandomPoints() {
	pts := fixtures.RandomPoints(100, 50, fixtures.WithSeed(11))

	idx := mtree.New[mtree.Point2D, int](mtree.Euclidean2D)
	for i, p := range pts {
		_, _, _ = idx.Put(p, i)
	}

	fmt.Println(idx.Size())
	// Output:
	// 100
}
