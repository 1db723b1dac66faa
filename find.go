package keytree

import (
	"fmt"
	"reflect"

	"go.lepak.sg/keytree/kind"
	"go.lepak.sg/keytree/tree"
)

// Find returns the first item matching key, in ascending key order.
// See FindAll for how keys match; Find only unwraps the first result.
// ok is false when nothing matched.
func (t *Tree) Find(key any) (match any, ok bool, err error) {
	matches, err := t.FindAll(key)
	if err != nil || len(matches) == 0 {
		return nil, false, err
	}
	return matches[0], true, nil
}

// FindAll returns every item matching key, in ascending key order. The
// result is never nil.
//
// A scalar key follows the ordering descent and yields at most one item,
// even when duplicates of the key exist elsewhere in the tree - a single
// search pass finds a single node.
//
// An object-shaped key is a criteria query: the whole tree is traversed
// and every stored value whose fields equal all of the key's fields is
// collected. A criteria object with no fields is an error.
func (t *Tree) FindAll(key any) ([]any, error) {
	if key == nil {
		return nil, fmt.Errorf("find: key is nil: %w", ErrInvalid)
	}

	switch k := t.kindOf(key); {
	case kind.Scalar(k):
		matches := []any{}
		nk := kind.NormalizeKey(key)
		if t.root == nil || t.kindOf(nk) != t.keyKind {
			// a key of another kind cannot be in this tree
			return matches, nil
		}
		if n := t.lookup(nk); n != nil {
			matches = append(matches, n.Value)
		}
		return matches, nil
	case k == kind.Object:
		return t.findByCriteria(key)
	default:
		return nil, fmt.Errorf("find: unsupported key kind %v: %w", k, ErrInvalid)
	}
}

// lookup finds the single node matching key, descending from the root.
func (t *Tree) lookup(key any) *tree.Node {
	n := t.root
	for n != nil {
		switch tree.Compare(key, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		default:
			return n
		}
	}
	return nil
}

func (t *Tree) findByCriteria(criteria any) ([]any, error) {
	fields := kind.Fields(criteria)
	if len(fields) == 0 {
		return nil, fmt.Errorf("find: criteria object has no fields: %w", ErrInvalid)
	}

	matches := []any{}
	visitNodes(t.root, func(n *tree.Node) bool {
		if matchesAll(n.Value, fields) {
			matches = append(matches, n.Value)
		}
		return true
	})
	return matches, nil
}

func matchesAll(v any, fields map[string]any) bool {
	for name, want := range fields {
		got, ok := kind.Field(v, name)
		if !ok || !looseEqual(got, want) {
			return false
		}
	}
	return true
}

// looseEqual compares after numeric normalization, so an int 3 in a stored
// value matches a float64 3 in the criteria.
func looseEqual(a, b any) bool {
	return reflect.DeepEqual(kind.NormalizeKey(a), kind.NormalizeKey(b))
}

// ForEach visits every value in ascending key order. Returning false from
// visit stops the walk early. A nil visitor is an error.
func (t *Tree) ForEach(visit func(value any) bool) error {
	if visit == nil {
		return fmt.Errorf("forEach: visitor is nil: %w", ErrInvalid)
	}

	visitNodes(t.root, func(n *tree.Node) bool {
		return visit(n.Value)
	})
	return nil
}

// Items collects the full in-order value sequence. The result is never nil.
func (t *Tree) Items() []any {
	items := []any{}
	visitNodes(t.root, func(n *tree.Node) bool {
		items = append(items, n.Value)
		return true
	})
	return items
}
