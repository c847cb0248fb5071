// Package sequence implements HashedSequence: a doubly-linked, order-
// preserving sequence with O(1) amortized membership, neighbor lookup, and
// insertion anchored on an existing element.
//
// A Sequence is the generic workhorse: Put a comparable payload in at the
// front, back, or next to an existing element, walk forward from the first
// element or from any member in O(1)-seek-then-walk, and remove by value.
// A monotonic modification counter backs Iterator, which detects structural
// changes made outside its own Remove call and refuses to advance.
//
// Errors:
//
//	ErrDuplicate             - insertFront/insertBack/insertBefore/insertAfter on an already-present element.
//	ErrNotFound              - neighborBefore/After or insertBefore/After referenced a missing anchor.
//	ErrNoSuchElement         - neighborBefore/After or Iterator.Next at a sequence boundary.
//	ErrEmpty                 - first/last on an empty sequence.
//	ErrConcurrentModification - Iterator.Next called after an external structural change.
package sequence
