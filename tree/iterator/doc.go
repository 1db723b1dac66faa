// Package iterator provides in-order iterators over tree nodes.
package iterator

// Iterator describes the common interface for iterators in this package.
// Next must always be called before Item, even for the first round of
// iteration. If Next returns false, Item must not be called.
// The iterator may be abandoned at any time.
//
// The usual usage of an Iterator is like this:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		v := i.Item()
//		... do stuff with v, or break ...
//	}
type Iterator interface {
	Next() bool
	Item() any
}
