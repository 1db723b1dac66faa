package keytree

import (
	"fmt"

	"go.lepak.sg/keytree/kind"
	"go.lepak.sg/keytree/tree"
)

// Remove deletes the item stored under key. It reports ErrNotFound if the
// tree is empty or holds no matching key, leaving the tree untouched - a
// missing key is never a silent no-op. When duplicates of key exist, the
// one the search descent reaches first is removed.
func (t *Tree) Remove(key any) error {
	if key == nil {
		return fmt.Errorf("remove: key is nil: %w", ErrInvalid)
	}
	if t.root == nil {
		return fmt.Errorf("remove %v: tree is empty: %w", key, ErrNotFound)
	}

	k := kind.NormalizeKey(key)
	if t.kindOf(k) != t.keyKind || t.lookup(k) == nil {
		return fmt.Errorf("remove %v: no such key: %w", key, ErrNotFound)
	}

	t.root = removeNode(t.root, k)
	if t.root == nil {
		t.keyKind = kind.Invalid
	} else {
		t.root.Parent = nil
	}
	return nil
}

// removeNode deletes key from the subtree rooted at n and returns the new
// subtree root; the caller reattaches it. A matched node with two children
// is never unlinked directly: the in-order successor's key and value are
// copied into it, then the successor is deleted from the right subtree.
// That inner deletion always bottoms out at a node without a left child
// (anything left of the successor would be smaller), so the copied data is
// never lost to a second two-child case.
func removeNode(n *tree.Node, key any) *tree.Node {
	if n == nil {
		return nil
	}

	switch tree.Compare(key, n.Key) {
	case tree.Less:
		n.Left = removeNode(n.Left, key)
		if n.Left != nil {
			n.Left.Parent = n
		}
	case tree.Greater:
		n.Right = removeNode(n.Right, key)
		if n.Right != nil {
			n.Right.Parent = n
		}
	default:
		if n.Left == nil {
			return n.Right
		}
		if n.Right == nil {
			return n.Left
		}

		succ := n.Right.Min()
		n.Key, n.Value = succ.Key, succ.Value
		n.Right = removeNode(n.Right, succ.Key)
		if n.Right != nil {
			n.Right.Parent = n
		}
	}

	return n
}
