package keytree

import (
	"go.lepak.sg/keytree/tree"
)

// Balanced reports whether every key sits within the bounds inherited from
// its ancestors, seeded with the tree's current minimum and maximum keys.
// An empty tree is balanced.
//
// This is an ordering check, not a height check: it computes no subtree
// heights, and a valid but fully skewed chain still reports true. Height
// repair is Balance's job.
func (t *Tree) Balanced() bool {
	if t.root == nil {
		return true
	}
	return ordered(t.root, t.root.Min().Key, t.root.Max().Key)
}

func ordered(n *tree.Node, lo, hi any) bool {
	if n == nil {
		return true
	}

	if tree.Compare(n.Key, lo) == tree.Less || tree.Compare(n.Key, hi) == tree.Greater {
		return false
	}

	return ordered(n.Left, lo, n.Key) && ordered(n.Right, n.Key, hi)
}

// Balance rebuilds the tree into a minimized-height shape: the sorted
// key/value sequence is extracted, the old node graph dropped, and the
// items reinserted median-first. This is a full O(n log n) rebuild, not an
// incremental rotation-based rebalance. It runs automatically after bulk
// insertions whose result fails the ordering check, and may be called
// manually at any time. No-op on an empty tree.
func (t *Tree) Balance() {
	if t.root == nil {
		return
	}

	pairs := make([]pair, 0, t.Size())
	visitNodes(t.root, func(n *tree.Node) bool {
		pairs = append(pairs, pair{n.Key, n.Value})
		return true
	})

	t.root = nil
	t.rebuild(pairs)
}

type pair struct {
	key, value any
}

// rebuild inserts the middle element first, so the normal insertion descent
// makes it the local root, then rebuilds each half the same way. The split
// point is ceil(n/2).
func (t *Tree) rebuild(pairs []pair) {
	if len(pairs) == 0 {
		return
	}
	if len(pairs) == 1 {
		t.reinsert(pairs[0])
		return
	}

	mid := (len(pairs) + 1) / 2
	t.reinsert(pairs[mid-1])
	t.rebuild(pairs[:mid-1])
	t.rebuild(pairs[mid:])
}

func (t *Tree) reinsert(p pair) {
	t.root = insertNode(t.root, tree.NodeOf(p.key, p.value))
	t.root.Parent = nil
}
