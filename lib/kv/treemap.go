package kv

import (
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

type treeMap[K infra.OrderedKey, V any] struct {
	tree tree.RBTree[K, V]
}

func (m *treeMap[K, V]) Len() int64    { return m.tree.Len() }
func (m *treeMap[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }
func (m *treeMap[K, V]) Release()      { m.tree.Release() }
func (m *treeMap[K, V]) Keys() []K     { return m.tree.Keys() }
func (m *treeMap[K, V]) Values() []V   { return m.tree.Values() }

func (m *treeMap[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

func (m *treeMap[K, V]) Contains(key K) bool {
	return m.tree.Contains(key)
}

func (m *treeMap[K, V]) Put(key K, val V) (old V, replaced bool) {
	return m.tree.Insert(key, val)
}

func (m *treeMap[K, V]) PutIfAbsent(key K, val V) bool {
	return m.tree.InsertIfAbsent(key, val)
}

func (m *treeMap[K, V]) Remove(key K) (V, bool) {
	return m.tree.Remove(key)
}

func (m *treeMap[K, V]) Min() (K, V, bool) {
	return m.tree.Min()
}

func (m *treeMap[K, V]) Max() (K, V, bool) {
	return m.tree.Max()
}

func (m *treeMap[K, V]) Foreach(action func(key K, val V) bool) {
	m.tree.Foreach(func(idx int64, color tree.RBColor, key K, val V) bool {
		return action(key, val)
	})
}

func (m *treeMap[K, V]) Iter(opts ...tree.IterOpt[K]) *tree.Iterator[K, V] {
	return m.tree.Iter(opts...)
}

func NewTreeMap[K infra.OrderedKey, V any](opts ...tree.RBTreeOpt[K, V]) OrderedMap[K, V] {
	return &treeMap[K, V]{
		tree: tree.NewRBTree[K, V](opts...),
	}
}
