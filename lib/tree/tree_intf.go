package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

type RBColor uint8

const (
	Black RBColor = iota
	Red
)

func (color RBColor) String() string {
	if color == Red {
		return "red"
	}
	return "black"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

func (dir RBDirection) String() string {
	switch dir {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
	}
	return "root"
}

// nilIdx addresses the arena's nil sentinel slot. Every absent parent,
// left or right link stores nilIdx instead of a raw nil reference.
const nilIdx uint32 = 0

// RBTree is an ordered key-value collection backed by an arena of
// red-black tree nodes. All mutations run to completion in O(log n)
// and every public mutation leaves the four red-black properties and
// the entry count intact.
//
// The tree is single-threaded by design. Concurrent read-only
// traversals are safe only while no mutation runs; sharing across
// goroutines requires external synchronization by the caller.
type RBTree[K infra.OrderedKey, V any] interface {
	Len() int64
	IsEmpty() bool
	// Get returns the payload bound to key, or the zero value and
	// false when the key is absent.
	Get(key K) (V, bool)
	Contains(key K) bool
	// Insert binds val to key. A duplicate key replaces the payload
	// in place and returns the previous one with true; no structural
	// change happens in that case.
	Insert(key K, val V) (V, bool)
	// InsertIfAbsent only inserts when the key is not present yet and
	// reports whether an insertion happened.
	InsertIfAbsent(key K, val V) bool
	// Remove unbinds key and returns its payload, or the zero value
	// and false when the key is absent.
	Remove(key K) (V, bool)
	Min() (K, V, bool)
	Max() (K, V, bool)
	PopMin() (K, V, bool)
	PopMax() (K, V, bool)
	// Foreach runs an ascending in-order traversal until action
	// returns false. The tree must not be mutated by action.
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	// Iter builds a lazy, restartable iterator. Mutating the tree
	// while an iterator is live is undefined behavior.
	Iter(opts ...IterOpt[K]) *Iterator[K, V]
	Keys() []K
	Values() []V
	// Validate re-checks the red-black structure invariants and the
	// entry count. It only returns a non-nil error on an internal
	// logic fault; valid API usage can never produce one.
	Validate() error
	// Release drops every node and returns the whole arena in one go.
	Release()
}
