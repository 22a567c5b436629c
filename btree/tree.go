package btree

import "cmp"

// Tree is an in-memory ordered key set, implemented as a classical B-tree
// of minimum degree t.
//
// K is the key type; keys are the only payload. Inserting a key equal to a
// stored one overwrites the stored key and leaves the size unchanged.
//
// All operations visit O(log n) nodes:
//
//	Operation     |   Cost
//	--------------+------------------
//	Search        |   O(t · log_t n)
//	Insert        |   O(t · log_t n)
//	Delete        |   O(t · log_t n)
//	Min / Max     |   O(log_t n)
type Tree[K cmp.Ordered] struct {
	cfg  Config
	root *node[K]
	size int
}

// New creates an empty tree with validated configuration.
func New[K cmp.Ordered](cfg Config) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[K]{cfg: cfg}
	t.root = t.newLeaf()
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K]) Config() Config {
	return t.cfg
}

// Size returns the number of keys in the tree.
func (t *Tree[K]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.Size() == 0
}

// Height returns the number of node levels, where 1 means the root is the
// only node. All leaves sit at the same level, so the leftmost path is
// representative.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	h := 0
	for n := t.root; n != nil; {
		h++
		if n.leaf {
			break
		}
		n = n.children[0]
	}
	return h
}

// Search returns the stored key equal to key. It fails with ErrKeyNotFound
// when descent terminates at a leaf without a match.
func (t *Tree[K]) Search(key K) (K, error) {
	return t.find(t.root, key)
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	_, err := t.find(t.root, key)
	return err == nil
}

func (t *Tree[K]) find(n *node[K], key K) (K, error) {
	i := 0
	for i < len(n.keys) && n.keys[i] < key {
		i++
	}
	if i < len(n.keys) && n.keys[i] == key {
		return n.keys[i], nil
	}
	if n.leaf {
		var none K
		return none, ErrKeyNotFound
	}
	return t.find(n.children[i], key)
}

// Min returns the smallest key in the tree, or ErrKeyNotFound for an empty
// tree.
func (t *Tree[K]) Min() (K, error) {
	if t.IsEmpty() {
		var none K
		return none, ErrKeyNotFound
	}
	return t.min(t.root), nil
}

// Max returns the largest key in the tree, or ErrKeyNotFound for an empty
// tree.
func (t *Tree[K]) Max() (K, error) {
	if t.IsEmpty() {
		var none K
		return none, ErrKeyNotFound
	}
	return t.max(t.root), nil
}

// min returns the leftmost key of the leftmost leaf under n.
func (t *Tree[K]) min(n *node[K]) K {
	for !n.leaf {
		n = n.children[0]
	}
	assert(len(n.keys) > 0, "min reached an empty leaf")
	return n.keys[0]
}

// max returns the rightmost key of the rightmost leaf under n.
func (t *Tree[K]) max(n *node[K]) K {
	for !n.leaf {
		n = n.children[len(n.children)-1]
	}
	assert(len(n.keys) > 0, "max reached an empty leaf")
	return n.keys[len(n.keys)-1]
}

// AppendKeys appends all keys in ascending order to dst and returns the
// extended slice. It is a snapshot helper, not an iterator.
func (t *Tree[K]) AppendKeys(dst []K) []K {
	if cap(dst)-len(dst) < t.size {
		grown := make([]K, len(dst), len(dst)+t.size)
		copy(grown, dst)
		dst = grown
	}
	t.each(t.root, func(key K) bool {
		dst = append(dst, key)
		return true
	})
	return dst
}

// each walks the subtree under n in key order, calling fn for every key
// until fn returns false. Reports whether the walk ran to completion.
func (t *Tree[K]) each(n *node[K], fn func(K) bool) bool {
	if n.leaf {
		for _, key := range n.keys {
			if !fn(key) {
				return false
			}
		}
		return true
	}
	for i, key := range n.keys {
		if !t.each(n.children[i], fn) {
			return false
		}
		if !fn(key) {
			return false
		}
	}
	return t.each(n.children[len(n.keys)], fn)
}

// NodeInfo describes one node of the tree for structural inspection.
type NodeInfo[K cmp.Ordered] struct {
	ID     int // pre-order id, starting at 1
	Parent int // id of the parent node; -1 for the root
	Depth  int // 0 for the root
	Leaf   bool
	Keys   []K // shared with the tree; callers must not mutate
}

// EachNode visits every node in depth-first pre-order. It exists for
// structural inspection and debugging output; the key set itself is
// obtained with AppendKeys.
func (t *Tree[K]) EachNode(fn func(info NodeInfo[K])) {
	nextID := 1
	var walk func(n *node[K], parent, depth int)
	walk = func(n *node[K], parent, depth int) {
		id := nextID
		nextID++
		fn(NodeInfo[K]{
			ID:     id,
			Parent: parent,
			Depth:  depth,
			Leaf:   n.leaf,
			Keys:   n.keys,
		})
		for _, child := range n.children {
			walk(child, id, depth+1)
		}
	}
	walk(t.root, -1, 0)
}
