package keytree

import (
	"fmt"

	"go.lepak.sg/keytree/kind"
	"go.lepak.sg/keytree/tree"
)

// Init replaces the tree's contents with values, added one at a time in
// input order. A nil or empty slice just clears the tree. The first failing
// element aborts the remaining ones; elements added before the failure stay
// in the tree. After a successful pass the ordering is checked once and the
// tree rebuilt if the check fails.
func (t *Tree) Init(values []any) error {
	t.Clear()
	if len(values) == 0 {
		return nil
	}

	for i, v := range values {
		if err := t.Add(v); err != nil {
			return fmt.Errorf("failed to add item at index %d: %w", i, err)
		}
	}

	if !t.Balanced() {
		t.Balance()
	}
	return nil
}

// Add inserts value, deriving its key from its shape:
//   - a scalar (string, number, time) is its own key
//   - an object (struct or string-keyed map) is keyed by the configured
//     key field, which must hold a scalar
//   - a slice or array is added element by element; every element must be
//     an object, and one ordering check (with a conditional rebuild) runs
//     at the end
//
// Funcs, nil, and everything else are rejected.
func (t *Tree) Add(value any) error {
	if value == nil {
		return fmt.Errorf("add: value is nil: %w", ErrInvalid)
	}

	switch k := t.kindOf(value); k {
	case kind.String, kind.Number, kind.Date:
		return t.insert(kind.NormalizeKey(value), value)
	case kind.Object:
		return t.addObject(value)
	case kind.Array:
		return t.addObjects(kind.Elems(value))
	default:
		return fmt.Errorf("add: unsupported value kind %v: %w", k, ErrInvalid)
	}
}

// AddKeyed inserts value under an explicit key, which must be a string or
// a number.
func (t *Tree) AddKeyed(key, value any) error {
	if value == nil {
		return fmt.Errorf("add: value is nil: %w", ErrInvalid)
	}
	if key == nil {
		return fmt.Errorf("add: key is nil: %w", ErrInvalid)
	}

	switch k := t.kindOf(key); k {
	case kind.String, kind.Number:
	default:
		return fmt.Errorf("add: key %v has kind %v, want string or number: %w", key, k, ErrInvalid)
	}

	return t.insert(kind.NormalizeKey(key), value)
}

func (t *Tree) addObject(value any) error {
	name := t.field()
	key, ok := kind.Field(value, name)
	if !ok || key == nil {
		return fmt.Errorf("add: object value is missing the %q key field: %w", name, ErrInvalid)
	}
	if k := t.kindOf(key); !kind.Scalar(k) {
		return fmt.Errorf("add: object %q field has kind %v, want a scalar key: %w", name, k, ErrInvalid)
	}
	return t.insert(kind.NormalizeKey(key), value)
}

func (t *Tree) addObjects(values []any) error {
	for i, v := range values {
		if k := t.kindOf(v); k != kind.Object {
			return fmt.Errorf("failed to add item at index %d: element has kind %v, want object: %w",
				i, k, ErrInvalid)
		}
		if err := t.addObject(v); err != nil {
			return fmt.Errorf("failed to add item at index %d: %w", i, err)
		}
	}

	if !t.Balanced() {
		t.Balance()
	}
	return nil
}

// insert places (key, value) in the tree. The first key fixes the tree's
// key kind; later keys must match it, since keys of different kinds have
// no order relative to each other.
func (t *Tree) insert(key, value any) error {
	kk := t.kindOf(key)
	if t.root == nil {
		t.keyKind = kk
	} else if kk != t.keyKind {
		return fmt.Errorf("add: key %v has kind %v, tree keys have kind %v: %w",
			key, kk, t.keyKind, ErrInvalid)
	}

	t.root = insertNode(t.root, tree.NodeOf(key, value))
	t.root.Parent = nil
	return nil
}

// insertNode descends to a free slot and returns the possibly unchanged
// subtree root. Duplicate keys always go right, so equal keys keep their
// insertion order in an in-order walk. No rebalancing happens here - shape
// repair is a separate, explicitly triggered step.
func insertNode(n, add *tree.Node) *tree.Node {
	if n == nil {
		return add
	}

	if tree.Compare(add.Key, n.Key) == tree.Less {
		n.Left = insertNode(n.Left, add)
		n.Left.Parent = n
	} else {
		n.Right = insertNode(n.Right, add)
		n.Right.Parent = n
	}
	return n
}
