package mtree

import (
	"container/heap"
	"math"
)

// candidate is a single search result paired with its distance to the
// query key.
type candidate[K comparable, V any] struct {
	key   K
	value V
	dist  float64
}

// candidateHeap is a max-heap on distance: the worst (largest-distance)
// candidate is cheapest to inspect and evict. The design notes call this
// inversion out explicitly — "the source's simplest search reuses the
// priority queue as the result set; ordering is worst-first so eviction
// is cheap" — and it is intentional here too, not an oversight.
type candidateHeap[K comparable, V any] []candidate[K, V]

func (h candidateHeap[K, V]) Len() int            { return len(h) }
func (h candidateHeap[K, V]) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h candidateHeap[K, V]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap[K, V]) Push(x interface{}) { *h = append(*h, x.(candidate[K, V])) }
func (h *candidateHeap[K, V]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Nearest is shorthand for KNearest(k, 1). If k is already indexed, it is
// returned with distance 0.
func (idx *Index[K, V]) Nearest(k K) ([]Result[K, V], error) {
	return idx.KNearest(k, 1)
}

// KNearest returns up to n entries with the smallest δ(k, entry), sorted
// by ascending distance. Ties are broken arbitrarily but deterministically
// within a single run. Fails with ErrInvalidArgument if n < 1.
//
// Complexity: O(depth) best case; worst case touches every sphere whose
// bounding ball is not yet excludable.
func (idx *Index[K, V]) KNearest(k K, n int) ([]Result[K, V], error) {
	if n < 1 {
		return nil, ErrInvalidArgument
	}

	return idx.search(k, 0, n, true)
}

// WithinRange returns all entries with δ(k, entry) ≤ r. Fails with
// ErrInvalidArgument if r is not strictly positive.
//
// Complexity: O(depth) best case; worst case touches every sphere whose
// bounding ball overlaps the query ball of radius r.
func (idx *Index[K, V]) WithinRange(k K, r float64) ([]Result[K, V], error) {
	if r <= 0 {
		return nil, ErrInvalidArgument
	}

	return idx.search(k, r, 0, false)
}

// Result is a single entry returned by a search, paired with its
// distance to the query key.
type Result[K comparable, V any] struct {
	Key      K
	Value    V
	Distance float64
}

// search is the single iterative driver shared by kNN and range queries,
// per spec.md §4.2 "Search (shared by kNN and range)": an explicit,
// stack-based descent (never recursion), a worst-first candidate heap,
// and a shrinking inclusion radius ρ.
func (idx *Index[K, V]) search(query K, fixedRadius float64, n int, knnMode bool) ([]Result[K, V], error) {
	if idx.root == nil {
		return []Result[K, V]{}, nil
	}

	var q candidateHeap[K, V]
	heap.Init(&q)

	inclusionRadius := func() float64 {
		if !knnMode {
			return fixedRadius
		}
		if len(q) < n {
			return math.Inf(1)
		}
		return q[0].dist
	}

	stack := []*sphere[K, V]{idx.root}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		dCenter, err := observeDistance(idx.metric, query, s.center)
		if err != nil {
			return nil, err
		}

		rho := inclusionRadius()
		if dCenter > s.radius+rho {
			continue // query ball and sphere S are disjoint
		}

		if s.kind == sphereLeaf {
			for _, e := range s.entries {
				d, err := observeDistance(idx.metric, query, e.key)
				if err != nil {
					return nil, err
				}
				rho = inclusionRadius()
				if d <= rho {
					heap.Push(&q, candidate[K, V]{key: e.key, value: e.value, dist: d})
					if knnMode && len(q) > n {
						heap.Pop(&q)
					}
				}
			}
			continue
		}

		dLeft, err := observeDistance(idx.metric, query, s.left.center)
		if err != nil {
			return nil, err
		}
		dRight, err := observeDistance(idx.metric, query, s.right.center)
		if err != nil {
			return nil, err
		}

		// Push the farther child first so the closer child is popped
		// (and its radius tightened) next, achieving a tighter ρ sooner.
		if dLeft <= dRight {
			stack = append(stack, s.right, s.left)
		} else {
			stack = append(stack, s.left, s.right)
		}
	}

	results := make([]Result[K, V], len(q))
	for i, c := range q {
		results[i] = Result[K, V]{Key: c.key, Value: c.value, Distance: c.dist}
	}
	sortResultsByDistance(results)

	return results, nil
}

func sortResultsByDistance[K comparable, V any](results []Result[K, V]) {
	// Simple insertion sort: result sets are bounded by leaf capacity
	// times tree depth in the common case, never large enough to justify
	// pulling in sort.Slice's reflection overhead for this hot path.
	for i := 1; i < len(results); i++ {
		for j := i; j > 0 && results[j].Distance < results[j-1].Distance; j-- {
			results[j], results[j-1] = results[j-1], results[j]
		}
	}
}
