package tree

import (
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func collect(it *Iterator[uint64, uint64]) []uint64 {
	keys := make([]uint64, 0, 8)
	for it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func TestIterator_FullScan(t *testing.T) {
	tree := NewRBTree[uint64, uint64]().(*rbTree[uint64, uint64])
	for _, k := range []uint64{5, 3, 8, 1, 4} {
		tree.Insert(k, k*10)
	}

	it := tree.Iter()
	require.Equal(t, []uint64{1, 3, 4, 5, 8}, collect(it))

	it.Rewind()
	require.True(t, it.Next())
	require.Equal(t, uint64(1), it.Key())
	require.Equal(t, uint64(10), it.Val())

	it = tree.Iter(WithIterDesc[uint64]())
	require.Equal(t, []uint64{8, 5, 4, 3, 1}, collect(it))
}

func TestIterator_Empty(t *testing.T) {
	tree := NewRBTree[uint64, uint64]().(*rbTree[uint64, uint64])
	it := tree.Iter()
	require.False(t, it.Next())
	it = tree.Iter(WithIterDesc[uint64]())
	require.False(t, it.Next())
}

func TestIterator_Bounds(t *testing.T) {
	tree := NewRBTree[uint64, uint64]().(*rbTree[uint64, uint64])
	for k := uint64(10); k <= 100; k += 10 {
		tree.Insert(k, k)
	}

	type testcase struct {
		name     string
		opts     []IterOpt[uint64]
		expected []uint64
	}
	testcases := []testcase{
		{
			name: "lower inclusive",
			opts: []IterOpt[uint64]{
				WithIterLowerBound(uint64(30), true),
			},
			expected: []uint64{30, 40, 50, 60, 70, 80, 90, 100},
		},
		{
			name: "lower exclusive",
			opts: []IterOpt[uint64]{
				WithIterLowerBound(uint64(30), false),
			},
			expected: []uint64{40, 50, 60, 70, 80, 90, 100},
		},
		{
			name: "upper inclusive",
			opts: []IterOpt[uint64]{
				WithIterUpperBound(uint64(40), true),
			},
			expected: []uint64{10, 20, 30, 40},
		},
		{
			name: "upper exclusive",
			opts: []IterOpt[uint64]{
				WithIterUpperBound(uint64(40), false),
			},
			expected: []uint64{10, 20, 30},
		},
		{
			name: "both bounds",
			opts: []IterOpt[uint64]{
				WithIterLowerBound(uint64(25), true),
				WithIterUpperBound(uint64(75), true),
			},
			expected: []uint64{30, 40, 50, 60, 70},
		},
		{
			name: "both bounds on keys",
			opts: []IterOpt[uint64]{
				WithIterLowerBound(uint64(30), false),
				WithIterUpperBound(uint64(70), false),
			},
			expected: []uint64{40, 50, 60},
		},
		{
			name: "desc both bounds",
			opts: []IterOpt[uint64]{
				WithIterDesc[uint64](),
				WithIterLowerBound(uint64(30), true),
				WithIterUpperBound(uint64(70), true),
			},
			expected: []uint64{70, 60, 50, 40, 30},
		},
		{
			name: "desc upper exclusive",
			opts: []IterOpt[uint64]{
				WithIterDesc[uint64](),
				WithIterUpperBound(uint64(70), false),
			},
			expected: []uint64{60, 50, 40, 30, 20, 10},
		},
		{
			name: "empty range",
			opts: []IterOpt[uint64]{
				WithIterLowerBound(uint64(41), true),
				WithIterUpperBound(uint64(49), true),
			},
			expected: []uint64{},
		},
		{
			name: "inverted range",
			opts: []IterOpt[uint64]{
				WithIterLowerBound(uint64(80), true),
				WithIterUpperBound(uint64(20), true),
			},
			expected: []uint64{},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			it := tree.Iter(tc.opts...)
			require.Equal(tt, tc.expected, collect(it))
			// A rewound iterator replays the same range.
			it.Rewind()
			require.Equal(tt, tc.expected, collect(it))
		})
	}
}

func TestIterator_RandomRange(t *testing.T) {
	total := 2000
	tree := NewRBTree[uint64, uint64]().(*rbTree[uint64, uint64])
	keys := make([]uint64, 0, total)
	seen := make(map[uint64]struct{}, total)
	for len(keys) < total {
		k := randv2.Uint64() % 100_000
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
		tree.Insert(k, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for round := 0; round < 50; round++ {
		lo := randv2.Uint64() % 100_000
		hi := lo + randv2.Uint64()%10_000
		expected := make([]uint64, 0, 64)
		for _, k := range keys {
			if k >= lo && k < hi {
				expected = append(expected, k)
			}
		}
		got := collect(tree.Iter(
			WithIterLowerBound(lo, true),
			WithIterUpperBound(hi, false),
		))
		require.Equal(t, expected, got)
	}
}
