package iterator

import (
	"go.lepak.sg/keytree/tree"
)

var _ Iterator = (*InOrder)(nil)

// InOrder is an in-order iterator over a binary tree. It walks the parent
// back-references instead of keeping a stack, so it allocates nothing per
// step. The result of mutating the tree while iterating over it is
// undefined.
type InOrder struct {
	root, at *tree.Node
	done     bool
}

// NewInOrder returns an in-order iterator over the tree rooted at root.
// Note: this is meant to be called by tree implementations.
func NewInOrder(root *tree.Node) *InOrder {
	return &InOrder{
		root: root,
	}
}

// Next returns true if there is a next node to yield.
// Next must always be called before Item or Key.
func (i *InOrder) Next() bool {
	if i.done {
		return false
	}

	if i.at == nil {
		i.at = i.root
		if i.at == nil {
			i.done = true
			return false
		}

		i.at = i.at.Min()
		return true
	}

	if i.at.Right != nil {
		i.at = i.at.Right.Min()
		return true
	}

	// climb until we arrive from a left child; may not succeed
	var child *tree.Node
	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		if i.at != nil && i.at.Left == child {
			return true
		}
	}

	i.done = true
	return false
}

// Item returns the value of the current node.
func (i *InOrder) Item() any {
	return i.at.Value
}

// Key returns the key of the current node.
func (i *InOrder) Key() any {
	return i.at.Key
}
