// Package mtree implements MetricIndex: an M-tree-style index over an
// arbitrary metric space (Ciaccia, Patella, Zezula, VLDB 1997), supporting
// exact lookup, k-nearest-neighbor, and range queries via a user-supplied
// DistanceMetric.
//
// The tree is a binary hierarchy of spheres: a leaf sphere holds a bounded
// bag of entries, an inner sphere holds exactly two child spheres. Every
// sphere has a center (a key that routed through it at construction) and a
// radius large enough to enclose every descendant key. A side-map gives
// O(1) exact lookup, replace, and locate-for-delete without walking the
// tree. Insertion splits an over-full leaf using a pluggable center-point
// Strategy; search is an explicit, non-recursive stack walk pruned by the
// triangle inequality, with a container/heap-backed worst-first candidate
// queue (grounded in the same heap.Interface shape the teacher's Dijkstra
// and Prim/Kruskal implementations use for their own priority queues).
//
// There is no self-rebalancing: ordered insertions can degrade the tree's
// shape over time. Rebalance or BalancedCopy rebuild from a uniformly
// shuffled traversal of the current entries.
//
// Errors:
//
//	ErrNullKey         - a key argument was nil (pointer/interface/map/slice/chan/func kinds only).
//	ErrInvalidArgument  - k<1 for KNearest, r<=0 for WithinRange (a bad capacity/strategy panics in its option constructor).
//	ErrInvalidDistance  - the configured DistanceMetric returned NaN or a negative value.
package mtree
