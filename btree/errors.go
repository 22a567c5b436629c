package btree

import "errors"

var (
	// ErrKeyNotFound signals that a requested key is not stored in the tree.
	ErrKeyNotFound = errors.New("btree: key not found")
	// ErrInvalidDegree signals a construction attempt with minimum degree < 2.
	ErrInvalidDegree = errors.New("btree: invalid minimum degree")
	// ErrTreeInvalid signals a violated structural invariant, found by Check.
	ErrTreeInvalid = errors.New("btree: structural invariant violated")
)
