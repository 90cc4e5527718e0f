package kv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/tree"
)

func TestTreeMap_PutGetRemove(t *testing.T) {
	m := NewTreeMap[uint64, string]()
	require.True(t, m.IsEmpty())

	_, replaced := m.Put(7, "a")
	require.False(t, replaced)
	old, replaced := m.Put(7, "b")
	require.True(t, replaced)
	require.Equal(t, "a", old)
	require.Equal(t, int64(1), m.Len())

	require.False(t, m.PutIfAbsent(7, "c"))
	require.True(t, m.PutIfAbsent(3, "d"))

	val, exists := m.Get(7)
	require.True(t, exists)
	require.Equal(t, "b", val)
	require.True(t, m.Contains(3))

	_, removed := m.Remove(99)
	require.False(t, removed)
	val, removed = m.Remove(7)
	require.True(t, removed)
	require.Equal(t, "b", val)
	require.Equal(t, int64(1), m.Len())
}

func TestTreeMap_OrderedTraversal(t *testing.T) {
	m := NewTreeMap[uint64, uint64]()
	for _, k := range []uint64{50, 20, 80, 10, 30} {
		m.Put(k, k*2)
	}

	require.Equal(t, []uint64{10, 20, 30, 50, 80}, m.Keys())
	require.Equal(t, []uint64{20, 40, 60, 100, 160}, m.Values())

	key, val, ok := m.Min()
	require.True(t, ok)
	require.Equal(t, uint64(10), key)
	require.Equal(t, uint64(20), val)
	key, _, ok = m.Max()
	require.True(t, ok)
	require.Equal(t, uint64(80), key)

	collected := make([]uint64, 0, 3)
	m.Foreach(func(key uint64, val uint64) bool {
		collected = append(collected, key)
		return len(collected) < 3
	})
	require.Equal(t, []uint64{10, 20, 30}, collected)

	ranged := make([]uint64, 0, 3)
	it := m.Iter(
		tree.WithIterLowerBound(uint64(20), true),
		tree.WithIterUpperBound(uint64(50), false),
	)
	for it.Next() {
		ranged = append(ranged, it.Key())
	}
	require.Equal(t, []uint64{20, 30}, ranged)

	m.Release()
	require.True(t, m.IsEmpty())
}

func TestTreeMap_DescOrder(t *testing.T) {
	m := NewTreeMap[uint64, string](
		tree.WithRBTreeDesc[uint64, string](),
	)
	for _, k := range []uint64{2, 9, 4} {
		m.Put(k, "x")
	}
	require.Equal(t, []uint64{9, 4, 2}, m.Keys())
}
