package kv

import (
	"io"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

type SafeStoreKeyFilterFunc[K comparable] func(key K) bool

func defaultAllKeysFilter[K comparable](key K) bool {
	return true
}

type Closable interface {
	io.Closer
}

type ThreadSafeStorer[K comparable, V any] interface {
	Purge() error
	AddOrUpdate(key K, obj V)
	Replace(items map[K]V)
	Delete(key K)
	Get(key K) (item V, exists bool)
	ListKeys(filters ...SafeStoreKeyFilterFunc[K]) []K
	ListValues(keys ...K) (items []V)
}

// OrderedMap keeps its entries sorted by key. Lookups and mutations
// are O(log n), traversal yields the keys in comparator order.
type OrderedMap[K infra.OrderedKey, V any] interface {
	Len() int64
	IsEmpty() bool
	Get(key K) (V, bool)
	Contains(key K) bool
	Put(key K, val V) (old V, replaced bool)
	PutIfAbsent(key K, val V) bool
	Remove(key K) (V, bool)
	Min() (K, V, bool)
	Max() (K, V, bool)
	Keys() []K
	Values() []V
	Foreach(action func(key K, val V) bool)
	Iter(opts ...tree.IterOpt[K]) *tree.Iterator[K, V]
	Release()
}

// OrderedSet is a sorted collection of unique keys with the usual
// algebra over two sets sharing a key order.
type OrderedSet[K infra.OrderedKey] interface {
	Len() int64
	IsEmpty() bool
	Add(key K) bool
	Contains(key K) bool
	Remove(key K) bool
	Min() (K, bool)
	Max() (K, bool)
	PopMin() (K, bool)
	PopMax() (K, bool)
	Keys() []K
	Foreach(action func(key K) bool)
	Iter(opts ...tree.IterOpt[K]) *tree.Iterator[K, struct{}]

	Union(other OrderedSet[K]) OrderedSet[K]
	Intersection(other OrderedSet[K]) OrderedSet[K]
	Difference(other OrderedSet[K]) OrderedSet[K]
	SymmetricDifference(other OrderedSet[K]) OrderedSet[K]
	IsSubsetOf(other OrderedSet[K]) bool
	IsSupersetOf(other OrderedSet[K]) bool
	IsDisjointWith(other OrderedSet[K]) bool
	Release()
}
