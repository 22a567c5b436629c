package btree

import "cmp"

// node is a single B-tree node. Keys are strictly ascending. An internal
// node with k keys holds exactly k+1 children; a leaf holds none. The leaf
// status is fixed at construction.
type node[K cmp.Ordered] struct {
	leaf     bool
	keys     []K
	children []*node[K]
}

// newNode materializes an empty node with storage preallocated to the
// capacities fixed by the minimum degree, so that no mutation on a valid
// tree ever reallocates node storage.
func (t *Tree[K]) newNode(leaf bool) *node[K] {
	n := &node[K]{
		leaf: leaf,
		keys: make([]K, 0, t.maxKeys()),
	}
	if !leaf {
		n.children = make([]*node[K], 0, t.maxKeys()+1)
	}
	return n
}

func (t *Tree[K]) newLeaf() *node[K]     { return t.newNode(true) }
func (t *Tree[K]) newInternal() *node[K] { return t.newNode(false) }

func (t *Tree[K]) maxKeys() int { return 2*t.cfg.Degree - 1 }
func (t *Tree[K]) minKeys() int { return t.cfg.Degree - 1 }

// full reports whether n is at max key capacity.
func (t *Tree[K]) full(n *node[K]) bool {
	assert(len(n.keys) <= t.maxKeys(), "node exceeds max key capacity")
	return len(n.keys) == t.maxKeys()
}

// insertKeySorted places key into n's key sequence at the unique position
// that preserves strict ascending order. A key equal to a stored one
// overwrites that entry in place. Children are NOT adjusted; the caller owns
// that concern. Returns the key's index and whether an overwrite happened.
func (t *Tree[K]) insertKeySorted(n *node[K], key K) (int, bool) {
	assert(!t.full(n), "insertKeySorted requires a non-full node")
	i := 0
	for i < len(n.keys) && n.keys[i] < key {
		i++
	}
	if i < len(n.keys) && n.keys[i] == key {
		n.keys[i] = key
		return i, true
	}
	n.keys = insertAt(n.keys, i, key)
	return i, false
}

// insertAt inserts v into s at idx, shifting the tail right.
func insertAt[T any](s []T, idx int, v T) []T {
	assert(idx >= 0 && idx <= len(s), "insertAt index out of range")
	var zero T
	s = append(s, zero)
	copy(s[idx+1:], s[idx:])
	s[idx] = v
	return s
}

// removeAt removes the element at idx, shifting the tail left and clearing
// the vacated slot.
func removeAt[T any](s []T, idx int) []T {
	assert(idx >= 0 && idx < len(s), "removeAt index out of range")
	copy(s[idx:], s[idx+1:])
	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// truncate shortens s to length length, clearing the cut-off tail.
func truncate[T any](s []T, length int) []T {
	assert(length >= 0 && length <= len(s), "truncate length out of range")
	var zero T
	for i := length; i < len(s); i++ {
		s[i] = zero
	}
	return s[:length]
}
