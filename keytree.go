// Package keytree implements an ordered, key-indexed binary search tree
// for dynamic values. Keys are strings, numbers or times; values are
// arbitrary: a scalar keys itself, an object-shaped value (struct or
// string-keyed map) is keyed by a configurable field, and an explicit key
// can be supplied for anything else.
package keytree

import (
	"fmt"
	"strings"

	"go.lepak.sg/keytree/kind"
	"go.lepak.sg/keytree/tree"
	"go.lepak.sg/keytree/tree/iterator"
)

// Classifier reports the shape of a value. It is injected so the engine can
// be tested independently of the default classification in package kind.
type Classifier func(v any) kind.Kind

// DefaultKeyField is the field read from object-shaped values to derive
// their key when no key field is configured.
const DefaultKeyField = "id"

// Tree is a binary search tree over dynamic values. It is safe for
// concurrent reads (searching, iterating, etc) but not for concurrent
// reads and writes.
//
// The zero Tree may be used immediately. Tree should not be passed around
// as a value (ie. just use New() or &Tree{} when creating one).
//
// The tree exclusively owns its nodes: a mutating call (Add, Remove,
// Balance, Clear) may relocate or discard any node, including ones
// previously returned by MinimumNode or MaximumNode, so such references
// must not be held across mutations.
//
// Invariants:
//   - At any node N, all keys in the subtree rooted at N.Left are less
//     than N.Key
//   - At any node N, all keys in the subtree rooted at N.Right are greater
//     than or equal to N.Key (duplicates route right)
//   - All keys in one tree are of one kind, fixed by the first insertion
type Tree struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root *tree.Node

	keyField string
	classify Classifier

	// kind of the keys currently stored; Invalid while the tree is empty
	keyKind kind.Kind
}

// Option configures a Tree.
type Option func(*Tree)

// WithKeyField names the field read from object-shaped values to derive
// their key. The default is DefaultKeyField.
func WithKeyField(name string) Option {
	return func(t *Tree) {
		t.keyField = name
	}
}

// WithClassifier replaces the default value classifier, kind.Of.
func WithClassifier(c Classifier) Option {
	return func(t *Tree) {
		t.classify = c
	}
}

// New returns an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, o := range opts {
		o(t)
	}
	return t
}

func (t *Tree) field() string {
	if t.keyField == "" {
		return DefaultKeyField
	}
	return t.keyField
}

func (t *Tree) kindOf(v any) kind.Kind {
	if t.classify == nil {
		return kind.Of(v)
	}
	return t.classify(v)
}

// IsEmpty reports whether the tree holds no items.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Size returns the number of items in the tree, counted by traversal.
func (t *Tree) Size() int {
	n := 0
	visitNodes(t.root, func(*tree.Node) bool {
		n++
		return true
	})
	return n
}

// Clear drops every item. The whole node graph is released at once.
func (t *Tree) Clear() {
	t.root = nil
	t.keyKind = kind.Invalid
}

// Minimum returns the value stored under the smallest key.
// It reports ErrNotFound on an empty tree.
func (t *Tree) Minimum() (any, error) {
	n, err := t.MinimumNode()
	if err != nil {
		return nil, err
	}
	return n.Value, nil
}

// Maximum returns the value stored under the largest key.
// It reports ErrNotFound on an empty tree.
func (t *Tree) Maximum() (any, error) {
	n, err := t.MaximumNode()
	if err != nil {
		return nil, err
	}
	return n.Value, nil
}

// MinimumNode returns the node holding the smallest key. The reference is
// transient: it must not be held across a mutating call.
// It reports ErrNotFound on an empty tree.
func (t *Tree) MinimumNode() (*tree.Node, error) {
	if t.root == nil {
		return nil, fmt.Errorf("minimum of empty tree: %w", ErrNotFound)
	}
	return t.root.Min(), nil
}

// MaximumNode returns the node holding the largest key. The reference is
// transient: it must not be held across a mutating call.
// It reports ErrNotFound on an empty tree.
func (t *Tree) MaximumNode() (*tree.Node, error) {
	if t.root == nil {
		return nil, fmt.Errorf("maximum of empty tree: %w", ErrNotFound)
	}
	return t.root.Max(), nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
// An empty tree has height 0.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *tree.Node) int {
	if n == nil {
		return 0
	}
	l, r := height(n.Left), height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// InOrderIterator returns an iterator object that yields values from the
// tree in ascending key order.
func (t *Tree) InOrderIterator() *iterator.InOrder {
	return iterator.NewInOrder(t.root)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for v := range co.Items() {
//		... do stuff with v ...
//		if v meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished. If you follow the usage
// above, the goroutine will not live beyond the end of the for-range loop.
func (t *Tree) InOrderCoroutine() iterator.CoIterator {
	return iterator.Co(t.InOrderIterator())
}

// visitNodes is the classic recursive in-order walk. Compare this to
// iterator.InOrder, which is not recursive. Returning false from f stops
// the walk.
func visitNodes(n *tree.Node, f func(*tree.Node) bool) bool {
	if n == nil {
		return true
	}

	if !visitNodes(n.Left, f) {
		return false
	}

	if !f(n) {
		return false
	}

	return visitNodes(n.Right, f)
}

// String returns a string representation of the tree shape, by key.
// A complete binary tree with height 3 would look like this:
//
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree) String() string {
	if t.root == nil {
		return ""
	}

	var sb strings.Builder
	printvisit(&sb, t.root, "", "", true, false)
	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit(sb *strings.Builder, n *tree.Node, prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
