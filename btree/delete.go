package btree

// Delete removes key from the tree. It fails with ErrKeyNotFound when the
// key is absent; the key set and the size are then unchanged, though
// preemptive rebalancing on the search path may already have reshaped the
// tree. All invariants hold either way.
//
// The descent maintains a single invariant: the node about to be stepped
// into holds at least degree keys, one more than the minimum. Thin children
// are thickened before descending, by borrowing a key from a rich sibling
// or by merging with a thin one, so that losing a key deeper down can never
// underflow a node on the path.
func (t *Tree[K]) Delete(key K) error {
	err := t.remove(t.root, key)
	t.shrinkRoot()
	if err != nil {
		return err
	}
	t.size--
	return nil
}

// shrinkRoot replaces a keyless internal root with its sole child. This is
// the only operation that decreases the tree's depth.
func (t *Tree[K]) shrinkRoot() {
	if t.root.leaf || len(t.root.keys) > 0 {
		return
	}
	assert(len(t.root.children) == 1, "keyless internal root must have one child")
	t.root = t.root.children[0]
	tracer().Debugf("btree: root shrunk, height is now %d", t.Height())
}

// remove deletes key from the subtree under n.
func (t *Tree[K]) remove(n *node[K], key K) error {
	i := 0
	for i < len(n.keys) && n.keys[i] < key {
		i++
	}
	if i < len(n.keys) && n.keys[i] == key {
		if n.leaf {
			n.keys = removeAt(n.keys, i)
			return nil
		}
		return t.removeSeparator(n, i)
	}
	if n.leaf {
		return ErrKeyNotFound
	}
	return t.removeFromSubtree(n, i, key)
}

// removeSeparator deletes the key at index i of the internal node n. The
// key is replaced by its in-order predecessor or successor when the
// corresponding flanking child can spare a key; otherwise both flanking
// children are thin and get merged around it.
func (t *Tree[K]) removeSeparator(n *node[K], i int) error {
	key := n.keys[i]
	y, z := n.children[i], n.children[i+1]
	if len(y.keys) >= t.cfg.Degree {
		pred := t.max(y)
		n.keys[i] = pred
		return t.remove(y, pred)
	}
	if len(z.keys) >= t.cfg.Degree {
		succ := t.min(z)
		n.keys[i] = succ
		return t.remove(z, succ)
	}
	merged := t.mergeChildren(n, i)
	return t.remove(merged, key)
}

// removeFromSubtree deletes key from the i-th child's subtree of the
// internal node n, thickening the child first when it sits at minimum size.
func (t *Tree[K]) removeFromSubtree(n *node[K], i int, key K) error {
	c := n.children[i]
	if len(c.keys) >= t.cfg.Degree {
		return t.remove(c, key)
	}
	switch {
	case i > 0 && len(n.children[i-1].keys) >= t.cfg.Degree:
		t.rotateRight(n, i)
	case i < len(n.children)-1 && len(n.children[i+1].keys) >= t.cfg.Degree:
		t.rotateLeft(n, i)
	case i > 0:
		c = t.mergeChildren(n, i-1)
	default:
		c = t.mergeChildren(n, i)
	}
	return t.remove(c, key)
}

// rotateRight moves the separator left of child i down to the front of the
// child and the left sibling's last key up into its place. For internal
// siblings the left sibling's last child moves along.
func (t *Tree[K]) rotateRight(n *node[K], i int) {
	c, l := n.children[i], n.children[i-1]
	assert(c.leaf == l.leaf, "rotateRight requires siblings of equal leaf status")
	assert(len(l.keys) >= t.cfg.Degree, "rotateRight requires a rich left sibling")
	c.keys = insertAt(c.keys, 0, n.keys[i-1])
	n.keys[i-1] = l.keys[len(l.keys)-1]
	l.keys = truncate(l.keys, len(l.keys)-1)
	if !c.leaf {
		c.children = insertAt(c.children, 0, l.children[len(l.children)-1])
		l.children = truncate(l.children, len(l.children)-1)
	}
	tracer().Debugf("btree: borrowed key from left sibling")
}

// rotateLeft is the mirror image of rotateRight.
func (t *Tree[K]) rotateLeft(n *node[K], i int) {
	c, r := n.children[i], n.children[i+1]
	assert(c.leaf == r.leaf, "rotateLeft requires siblings of equal leaf status")
	assert(len(r.keys) >= t.cfg.Degree, "rotateLeft requires a rich right sibling")
	c.keys = append(c.keys, n.keys[i])
	n.keys[i] = r.keys[0]
	r.keys = removeAt(r.keys, 0)
	if !c.leaf {
		c.children = append(c.children, r.children[0])
		r.children = removeAt(r.children, 0)
	}
	tracer().Debugf("btree: borrowed key from right sibling")
}

// mergeChildren folds the separator key at index i and the child at i+1
// into the child at i, which ends up with 2·degree-1 keys. The right child
// is released. Returns the merged node.
func (t *Tree[K]) mergeChildren(n *node[K], i int) *node[K] {
	y, z := n.children[i], n.children[i+1]
	assert(y.leaf == z.leaf, "mergeChildren requires children of equal leaf status")
	assert(len(y.keys) == t.minKeys() && len(z.keys) == t.minKeys(),
		"mergeChildren requires two thin children")
	y.keys = append(y.keys, n.keys[i])
	y.keys = append(y.keys, z.keys...)
	if !y.leaf {
		y.children = append(y.children, z.children...)
	}
	n.keys = removeAt(n.keys, i)
	n.children = removeAt(n.children, i+1)
	assert(len(y.keys) == t.maxKeys(), "merged node must be full")
	tracer().Debugf("btree: merged two thin siblings")
	return y
}
