package sequence

import "errors"

// Sentinel errors for sequence operations. Callers should branch with
// errors.Is, never string comparison.
var (
	// ErrDuplicate indicates the element is already present in the sequence.
	ErrDuplicate = errors.New("sequence: element already present")

	// ErrNotFound indicates a referenced anchor element is not present.
	ErrNotFound = errors.New("sequence: anchor element not found")

	// ErrNoSuchElement indicates there is no element at the requested
	// boundary position (e.g. neighborAfter of the last element).
	ErrNoSuchElement = errors.New("sequence: no such element")

	// ErrEmpty indicates the sequence has no elements.
	ErrEmpty = errors.New("sequence: sequence is empty")

	// ErrConcurrentModification indicates the sequence was structurally
	// mutated outside of the iterator that detected it.
	ErrConcurrentModification = errors.New("sequence: concurrent modification")
)
