package mtree

// split redistributes an over-full leaf's entries into two new leaves and
// converts the old sphere into an inner node in place, preserving its
// pointer identity (callers hold on to node and simply continue descending
// into it). Panics via invariantViolation if called on a non-leaf sphere —
// that would be a bug in this package, not a caller error.
func (idx *Index[K, V]) split(node *sphere[K, V]) error {
	if node.kind != sphereLeaf {
		invariantViolation("split called on a non-leaf sphere")
	}

	keys := make([]K, len(node.entries))
	for i, e := range node.entries {
		keys[i] = e.key
	}

	centerA, centerB, err := idx.strategy.chooseTwoCenters(keys, idx.metric)
	if err != nil {
		return err
	}

	left := newLeaf[K, V](centerA, idx.capacity)
	right := newLeaf[K, V](centerB, idx.capacity)
	idx.sphereCount += 2

	// alternate is flipped on every exact tie so that degenerate data
	// sets where many keys are equidistant from both centers (all
	// pairwise distances 0, for instance) cannot produce an unbounded
	// left-leaning re-split: without alternation every tied entry would
	// land in the same child, immediately re-triggering a split there.
	alternate := false
	for _, e := range node.entries {
		dA, err := observeDistance(idx.metric, centerA, e.key)
		if err != nil {
			return err
		}
		dB, err := observeDistance(idx.metric, centerB, e.key)
		if err != nil {
			return err
		}

		var target *sphere[K, V]
		var dist float64
		switch {
		case dA < dB:
			target, dist = left, dA
		case dB < dA:
			target, dist = right, dB
		default:
			if alternate {
				target, dist = right, dB
			} else {
				target, dist = left, dA
			}
			alternate = !alternate
		}

		target.entries = append(target.entries, e)
		if dist > target.radius {
			target.radius = dist
		}
		idx.side[e.key] = target
	}

	node.kind = sphereInner
	node.entries = nil
	node.left = left
	node.right = right

	return nil
}
