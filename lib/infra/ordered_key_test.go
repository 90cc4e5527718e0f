package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAscOrderedKeyComparator(t *testing.T) {
	kcmp := AscOrderedKeyComparator[uint64]()
	assert.Equal(t, int64(0), kcmp(7, 7))
	assert.Equal(t, int64(-1), kcmp(3, 7))
	assert.Equal(t, int64(1), kcmp(9, 7))

	scmp := AscOrderedKeyComparator[string]()
	assert.Equal(t, int64(-1), scmp("abc", "abd"))
	assert.Equal(t, int64(1), scmp("b", "abd"))
}

func TestDescOrderedKeyComparator(t *testing.T) {
	kcmp := DescOrderedKeyComparator[int32]()
	require.Equal(t, int64(0), kcmp(-1, -1))
	require.Equal(t, int64(1), kcmp(3, 7))
	require.Equal(t, int64(-1), kcmp(9, 7))
}
