package ordset

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/ordset/btree"
)

// Set stores comparable keys in ascending order, backed by a B-tree.
//
// The zero value is ready to use and denotes the empty set with the default
// node shape. Sets are handles: copies of a Set share the same underlying
// tree once it exists.
type Set[K cmp.Ordered] struct {
	tree *btree.Tree[K]
}

// Option configures set construction.
type Option func(*btree.Config) error

// Degree sets the minimum degree t of the backing B-tree. Every tree node
// will hold between t-1 and 2t-1 keys. t must be at least 2.
func Degree(t int) Option {
	return func(cfg *btree.Config) error {
		if t < 2 {
			return fmt.Errorf("%w: minimum degree must be at least 2, have %d",
				ErrIllegalArguments, t)
		}
		cfg.Degree = t
		return nil
	}
}

// New creates an empty set.
func New[K cmp.Ordered](opts ...Option) (*Set[K], error) {
	var cfg btree.Config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	tree, err := btree.New[K](cfg)
	if err != nil {
		return nil, err
	}
	return &Set[K]{tree: tree}, nil
}

// ensure materializes the backing tree for zero-value sets.
func (s *Set[K]) ensure() *btree.Tree[K] {
	if s.tree == nil {
		tree, err := btree.New[K](btree.Config{})
		assert(err == nil, "default set configuration must be valid")
		s.tree = tree
	}
	return s.tree
}

// Size returns the number of keys in the set.
func (s *Set[K]) Size() int {
	if s == nil || s.tree == nil {
		return 0
	}
	return s.tree.Size()
}

// IsEmpty reports whether the set has no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.Size() == 0
}

// Insert puts key into the set. Inserting a key already present overwrites
// the stored key and leaves the size unchanged.
func (s *Set[K]) Insert(key K) {
	s.ensure().Insert(key)
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.ensure().Contains(key)
}

// Search returns the stored key equal to key, or btree.ErrKeyNotFound if
// the set does not contain it.
func (s *Set[K]) Search(key K) (K, error) {
	return s.ensure().Search(key)
}

// Delete removes key from the set. It fails with btree.ErrKeyNotFound when
// the key is absent; the set is then unchanged.
func (s *Set[K]) Delete(key K) error {
	return s.ensure().Delete(key)
}

// Min returns the smallest key, or btree.ErrKeyNotFound for an empty set.
func (s *Set[K]) Min() (K, error) {
	return s.ensure().Min()
}

// Max returns the largest key, or btree.ErrKeyNotFound for an empty set.
func (s *Set[K]) Max() (K, error) {
	return s.ensure().Max()
}

// Keys returns all keys in ascending order as a fresh slice.
func (s *Set[K]) Keys() []K {
	return s.ensure().AppendKeys(nil)
}
