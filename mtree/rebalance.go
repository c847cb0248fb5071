package mtree

import "math/rand"

// BalancedCopy returns a new Index built by inserting every current entry
// in a uniformly shuffled order, using a fresh RNG seeded from seed. The
// new index shares this index's metric, capacity, and strategy
// configuration. Size is preserved exactly; a mismatch is an invariant
// violation (bug in this package), never a caller-visible error.
//
// Complexity: O(size log size) expected.
func (idx *Index[K, V]) BalancedCopy(seed int64) *Index[K, V] {
	entries := idx.Entries()

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})

	fresh := &Index[K, V]{
		side:     make(map[K]*sphere[K, V]),
		metric:   idx.metric,
		strategy: idx.strategy,
		capacity: idx.capacity,
	}

	for _, e := range entries {
		if _, _, err := fresh.Put(e.key, e.value); err != nil {
			invariantViolation("BalancedCopy: re-insertion of an existing entry failed: " + err.Error())
		}
	}

	if fresh.size != idx.size {
		invariantViolation("BalancedCopy: size mismatch after rebuild")
	}

	return fresh
}

// Rebalance replaces this index's internal tree with a BalancedCopy of
// itself, rebuilt from a uniformly shuffled traversal of current entries.
// There is no automatic rebalancing on insert; callers invoke this
// explicitly when ordered insertions have degraded the tree's shape.
func (idx *Index[K, V]) Rebalance(seed int64) {
	fresh := idx.BalancedCopy(seed)

	idx.root = fresh.root
	idx.side = fresh.side
	idx.size = fresh.size
	// sphereCount is a lifetime diagnostic and is not reset; the rebuild's
	// freshly allocated spheres are folded in so it keeps counting up.
	idx.sphereCount += fresh.sphereCount
}
