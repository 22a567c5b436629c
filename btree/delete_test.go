package btree

import (
	"errors"
	"testing"
)

// leafOf and innerOf hand-assemble nodes; they pin down individual delete
// cases without depending on insertion order.
func leafOf(tree *Tree[int], keys ...int) *node[int] {
	n := tree.newLeaf()
	n.keys = append(n.keys, keys...)
	return n
}

func innerOf(tree *Tree[int], keys []int, children ...*node[int]) *node[int] {
	n := tree.newInternal()
	n.keys = append(n.keys, keys...)
	n.children = append(n.children, children...)
	return n
}

func countTreeNodes(tree *Tree[int]) int {
	count := 0
	tree.EachNode(func(NodeInfo[int]) { count++ })
	return count
}

func TestDeleteFromLeafRoot(t *testing.T) {
	tree := mustNew(t, 2)
	for _, k := range []int{10, 20, 30} {
		tree.Insert(k)
	}
	if err := tree.Delete(20); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	expectKeys(t, tree, []int{10, 30})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteLastKeyLeavesEmptyLeafRoot(t *testing.T) {
	tree := mustNew(t, 2)
	tree.Insert(7)
	if err := tree.Delete(7); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if tree.Size() != 0 || !tree.root.leaf || len(tree.root.keys) != 0 {
		t.Fatalf("expected empty leaf root, size=%d keys=%v", tree.Size(), tree.root.keys)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteMissingKey(t *testing.T) {
	tree := mustNew(t, 2)
	for _, k := range []int{10, 20, 30, 40} {
		tree.Insert(k)
	}
	before := collectKeys(tree)
	sizeBefore := tree.Size()
	if err := tree.Delete(25); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if tree.Size() != sizeBefore {
		t.Fatalf("failed delete changed size: %d", tree.Size())
	}
	after := collectKeys(tree)
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("failed delete changed contents: %v vs %v", before, after)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteMissingKeyFromEmptyTree(t *testing.T) {
	tree := mustNew(t, 2)
	if err := tree.Delete(1); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestDeleteSeparatorWithRichPredecessorSubtree(t *testing.T) {
	tree := mustNew(t, 2)
	tree.root = innerOf(tree, []int{20},
		leafOf(tree, 5, 10),
		leafOf(tree, 30))
	tree.size = 4

	if err := tree.Delete(20); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	root := tree.root
	if root.leaf || len(root.keys) != 1 || root.keys[0] != 10 {
		t.Fatalf("expected predecessor 10 as separator, got %v", root.keys)
	}
	expectKeys(t, tree, []int{5, 10, 30})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteSeparatorWithRichSuccessorSubtree(t *testing.T) {
	tree := mustNew(t, 2)
	tree.root = innerOf(tree, []int{10},
		leafOf(tree, 5),
		leafOf(tree, 20, 30))
	tree.size = 4

	if err := tree.Delete(10); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	root := tree.root
	if root.leaf || len(root.keys) != 1 || root.keys[0] != 20 {
		t.Fatalf("expected successor 20 as separator, got %v", root.keys)
	}
	expectKeys(t, tree, []int{5, 20, 30})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteSeparatorMergesThinChildrenAndShrinksRoot(t *testing.T) {
	tree := mustNew(t, 2)
	tree.root = innerOf(tree, []int{10},
		leafOf(tree, 5),
		leafOf(tree, 20))
	tree.size = 3
	nodesBefore := countTreeNodes(tree)

	if err := tree.Delete(10); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !tree.root.leaf {
		t.Fatalf("expected root shrink to merged leaf")
	}
	if tree.Height() != 1 {
		t.Fatalf("expected height 1 after root shrink, got %d", tree.Height())
	}
	if countTreeNodes(tree) != nodesBefore-2 {
		t.Fatalf("expected merge and root shrink to release two nodes")
	}
	expectKeys(t, tree, []int{5, 20})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteThickensByBorrowingFromLeftSibling(t *testing.T) {
	tree := mustNew(t, 2)
	tree.root = innerOf(tree, []int{20},
		leafOf(tree, 5, 10),
		leafOf(tree, 30))
	tree.size = 4

	if err := tree.Delete(30); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	root := tree.root
	if len(root.keys) != 1 || root.keys[0] != 10 {
		t.Fatalf("expected rotated separator 10, got %v", root.keys)
	}
	expectKeys(t, tree, []int{5, 10, 20})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteThickensByBorrowingFromRightSibling(t *testing.T) {
	tree := mustNew(t, 2)
	tree.root = innerOf(tree, []int{10},
		leafOf(tree, 5),
		leafOf(tree, 20, 30))
	tree.size = 4

	if err := tree.Delete(5); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	root := tree.root
	if len(root.keys) != 1 || root.keys[0] != 20 {
		t.Fatalf("expected rotated separator 20, got %v", root.keys)
	}
	expectKeys(t, tree, []int{10, 20, 30})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteThickensByMergingWithRightSibling(t *testing.T) {
	tree := mustNew(t, 2)
	tree.root = innerOf(tree, []int{10},
		leafOf(tree, 5),
		leafOf(tree, 20))
	tree.size = 3

	if err := tree.Delete(5); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !tree.root.leaf || tree.Height() != 1 {
		t.Fatalf("expected merged leaf root, height=%d", tree.Height())
	}
	expectKeys(t, tree, []int{10, 20})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteThickensByMergingWithLeftSibling(t *testing.T) {
	tree := mustNew(t, 2)
	tree.root = innerOf(tree, []int{10, 30},
		leafOf(tree, 5),
		leafOf(tree, 20),
		leafOf(tree, 40))
	tree.size = 5

	// Child [40] is thin, its only left neighbor [20] is thin too: the
	// separator 30 gets pulled down into a merged leaf.
	if err := tree.Delete(40); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	root := tree.root
	if root.leaf || len(root.keys) != 1 || root.keys[0] != 10 {
		t.Fatalf("unexpected root after merge: %v", root.keys)
	}
	expectKeys(t, tree, []int{5, 10, 20, 30})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteBorrowMovesChildPointerBetweenInternalSiblings(t *testing.T) {
	tree := mustNew(t, 2)
	left := innerOf(tree, []int{10, 20},
		leafOf(tree, 5),
		leafOf(tree, 15),
		leafOf(tree, 25))
	right := innerOf(tree, []int{40},
		leafOf(tree, 35),
		leafOf(tree, 45))
	tree.root = innerOf(tree, []int{30}, left, right)
	tree.size = 9

	// Deleting below the thin right child forces a borrow from the rich
	// left sibling; 25's leaf must travel along with the rotated keys.
	if err := tree.Delete(45); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if tree.root.keys[0] != 20 {
		t.Fatalf("expected separator 20 after internal borrow, got %v", tree.root.keys)
	}
	expectKeys(t, tree, []int{5, 10, 15, 20, 25, 30, 35, 40})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDeleteCascadingMergeShrinksRoot(t *testing.T) {
	tree := mustNew(t, 2)
	left := innerOf(tree, []int{10},
		leafOf(tree, 5),
		leafOf(tree, 15))
	right := innerOf(tree, []int{30},
		leafOf(tree, 25),
		leafOf(tree, 35))
	tree.root = innerOf(tree, []int{20}, left, right)
	tree.size = 7

	if err := tree.Delete(5); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if tree.Height() != 2 {
		t.Fatalf("expected cascading merge to reduce height 3->2, got %d", tree.Height())
	}
	expectKeys(t, tree, []int{10, 15, 20, 25, 30, 35})
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestDrainAscendingAndDescending(t *testing.T) {
	for _, order := range []string{"ascending", "descending"} {
		tree := mustNew(t, 2)
		for k := 1; k <= 50; k++ {
			tree.Insert(k)
		}
		for i := 0; i < 50; i++ {
			k := i + 1
			if order == "descending" {
				k = 50 - i
			}
			if err := tree.Delete(k); err != nil {
				t.Fatalf("%s drain: delete %d failed: %v", order, k, err)
			}
			if err := tree.Check(); err != nil {
				t.Fatalf("%s drain: invariant check failed after %d: %v", order, k, err)
			}
		}
		if tree.Size() != 0 || !tree.root.leaf {
			t.Fatalf("%s drain: tree not drained to empty leaf root", order)
		}
	}
}

func TestInsertDeleteSearchRoundtrip(t *testing.T) {
	tree := mustNew(t, 2)
	tree.Insert(11)
	if err := tree.Delete(11); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := tree.Search(11); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}
}
