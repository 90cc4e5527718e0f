package kv

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThreadSafeMap_BasicOps(t *testing.T) {
	m := NewThreadSafeMap[string, int]()
	m.AddOrUpdate("a", 1)
	m.AddOrUpdate("b", 2)
	m.AddOrUpdate("a", 3)

	v, exists := m.Get("a")
	require.True(t, exists)
	require.Equal(t, 3, v)

	keys := m.ListKeys()
	sort.StringSlice(keys).Sort()
	require.Equal(t, []string{"a", "b"}, keys)

	keys = m.ListKeys(func(key string) bool { return key == "b" })
	require.Equal(t, []string{"b"}, keys)

	vals := m.ListValues("b")
	require.Equal(t, []int{2}, vals)

	m.Delete("a")
	_, exists = m.Get("a")
	require.False(t, exists)

	m.Replace(map[string]int{"z": 9})
	v, exists = m.Get("z")
	require.True(t, exists)
	require.Equal(t, 9, v)

	require.NoError(t, m.Purge())
}

func TestThreadSafeMap_ConcurrentAccess(t *testing.T) {
	m := NewThreadSafeMap[int, int]()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				m.AddOrUpdate(base*100+i, i)
				_, _ = m.Get(base*100 + i)
			}
		}(g)
	}
	wg.Wait()
	require.Equal(t, 800, len(m.ListKeys()))
}
