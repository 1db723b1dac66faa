package keytree

import "errors"

var (
	// ErrInvalid is wrapped by every error caused by a malformed argument:
	// nil values or keys, keys of an unsupported kind, object values missing
	// the configured key field, and so on. A failed operation never leaves
	// the tree partially mutated.
	ErrInvalid = errors.New("keytree: invalid input")

	// ErrNotFound is wrapped by errors from operations that need an item
	// which isn't there: removing an absent key, or asking an empty tree
	// for its minimum or maximum.
	ErrNotFound = errors.New("keytree: not found")
)
