// Package tree holds the node type and key ordering shared by tree
// implementations in this module.
package tree

import (
	"time"

	"github.com/emirpasic/gods/utils"
)

// Node is a single key/value unit of a binary search tree.
// Left and Right are the owned child subtrees; Parent is a non-owning
// back-reference maintained so iterators can walk the tree without a stack.
type Node struct {
	Key   any
	Value any

	Left, Right, Parent *Node
}

// NodeOf returns a detached node holding key and value.
func NodeOf(key, value any) *Node {
	return &Node{
		Key:   key,
		Value: value,
	}
}

// Min returns the leftmost node of the subtree rooted at n.
func (n *Node) Min() *Node {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n.
func (n *Node) Max() *Node {
	for n.Right != nil {
		n = n.Right
	}
	return n
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

// Compare orders two keys of the same kind: strings lexicographically,
// numbers and times by their native order.
//
// Keys must already be normalized (see kind.NormalizeKey) so that every
// number is a float64. Compare panics on anything else - the engine
// validates key kinds at its boundary, so an unsupported or mixed-kind
// key reaching this point is a bug, not an input error.
func Compare(l, r any) Order {
	switch l.(type) {
	case string:
		return orderOf(utils.StringComparator(l, r))
	case float64:
		return orderOf(utils.Float64Comparator(l, r))
	case time.Time:
		return orderOf(utils.TimeComparator(l, r))
	default:
		panic("tree: key is not a normalized string, float64 or time.Time")
	}
}

func orderOf(c int) Order {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}
