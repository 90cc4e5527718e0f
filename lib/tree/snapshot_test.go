package tree

import (
	"bytes"
	"encoding/binary"
	randv2 "math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/benz9527/xtree/lib/infra"
)

func u64Marshal(k uint64) ([]byte, error) {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], k)
	return raw[:], nil
}

func u64Unmarshal(raw []byte) (uint64, error) {
	if len(raw) != 8 {
		return 0, infra.NewErrorStack("bad key size")
	}
	return binary.LittleEndian.Uint64(raw), nil
}

func strMarshal(v string) ([]byte, error) {
	return []byte(v), nil
}

func strUnmarshal(raw []byte) (string, error) {
	return string(raw), nil
}

func TestSnapshot_RoundTrip(t *testing.T) {
	tree := NewRBTree[uint64, string]()
	total := 1000
	for i := 0; i < total; i++ {
		k := randv2.Uint64() % 1_000_000
		tree.Insert(k, "v"+strconv.FormatUint(k, 10))
	}

	var buf bytes.Buffer
	require.NoError(t, SnapshotWrite(&buf, tree, u64Marshal, strMarshal))

	restored, err := SnapshotRead(&buf, u64Unmarshal, strUnmarshal)
	require.NoError(t, err)
	require.Equal(t, tree.Len(), restored.Len())
	require.Equal(t, tree.Keys(), restored.Keys())
	require.Equal(t, tree.Values(), restored.Values())
	require.NoError(t, restored.Validate())
}

func TestSnapshot_Empty(t *testing.T) {
	tree := NewRBTree[uint64, string]()

	var buf bytes.Buffer
	require.NoError(t, SnapshotWrite(&buf, tree, u64Marshal, strMarshal))

	restored, err := SnapshotRead(&buf, u64Unmarshal, strUnmarshal)
	require.NoError(t, err)
	require.Equal(t, int64(0), restored.Len())
}

func TestSnapshot_BadHeader(t *testing.T) {
	_, err := SnapshotRead(bytes.NewReader(nil), u64Unmarshal, strUnmarshal)
	require.Error(t, err)

	_, err = SnapshotRead(bytes.NewReader([]byte("not a snapshot")), u64Unmarshal, strUnmarshal)
	require.Error(t, err)

	tree := NewRBTree[uint64, string]()
	tree.Insert(1, "a")
	var buf bytes.Buffer
	require.NoError(t, SnapshotWrite(&buf, tree, u64Marshal, strMarshal))

	raw := buf.Bytes()
	raw[4] = 0xff // unsupported version
	_, err = SnapshotRead(bytes.NewReader(raw), u64Unmarshal, strUnmarshal)
	require.Error(t, err)
}

func TestSnapshot_Truncated(t *testing.T) {
	tree := NewRBTree[uint64, string]()
	for i := uint64(0); i < 16; i++ {
		tree.Insert(i, "x")
	}

	var buf bytes.Buffer
	require.NoError(t, SnapshotWrite(&buf, tree, u64Marshal, strMarshal))

	raw := buf.Bytes()
	_, err := SnapshotRead(bytes.NewReader(raw[:len(raw)-5]), u64Unmarshal, strUnmarshal)
	require.Error(t, err)
}

func TestSnapshot_KeepsTreeOptions(t *testing.T) {
	tree := NewRBTree[uint64, string]()
	for _, k := range []uint64{5, 3, 8} {
		tree.Insert(k, "x")
	}

	var buf bytes.Buffer
	require.NoError(t, SnapshotWrite(&buf, tree, u64Marshal, strMarshal))

	restored, err := SnapshotRead(&buf, u64Unmarshal, strUnmarshal,
		WithRBTreeDesc[uint64, string](),
	)
	require.NoError(t, err)
	require.Equal(t, []uint64{8, 5, 3}, restored.Keys())
}
