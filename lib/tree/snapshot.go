package tree

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/benz9527/xtree/lib/infra"
)

const (
	snapshotMagic   uint32 = 0x7872_6274 // "xrbt"
	snapshotVersion byte   = 1
	// Single record ceiling, guards the reader against a corrupted
	// length prefix allocating gigabytes.
	snapshotMaxRecordSize uint64 = 64 << 20
)

// EntryMarshaler encodes one key or value into bytes.
type EntryMarshaler[T any] func(T) ([]byte, error)

// EntryUnmarshaler decodes one key or value from bytes.
type EntryUnmarshaler[T any] func([]byte) (T, error)

// SnapshotWrite streams the whole tree to w in sorted key order. The
// layout is a fixed header (magic, version, entry count) followed by
// length-prefixed key and value records.
func SnapshotWrite[K infra.OrderedKey, V any](
	w io.Writer,
	tree RBTree[K, V],
	kenc EntryMarshaler[K],
	venc EntryMarshaler[V],
) error {
	bw := bufio.NewWriter(w)

	var header [13]byte
	binary.LittleEndian.PutUint32(header[0:4], snapshotMagic)
	header[4] = snapshotVersion
	binary.LittleEndian.PutUint64(header[5:13], uint64(tree.Len()))
	if _, err := bw.Write(header[:]); err != nil {
		return infra.WrapErrorStackWithMessage(err, "[rbtree] snapshot write header")
	}

	var (
		err    error
		varBuf [binary.MaxVarintLen64]byte
	)
	writeRecord := func(raw []byte) bool {
		n := binary.PutUvarint(varBuf[:], uint64(len(raw)))
		if _, wErr := bw.Write(varBuf[:n]); wErr != nil {
			err = wErr
			return false
		}
		if _, wErr := bw.Write(raw); wErr != nil {
			err = wErr
			return false
		}
		return true
	}

	tree.Foreach(func(idx int64, color RBColor, key K, val V) bool {
		var raw []byte
		if raw, err = kenc(key); err != nil {
			return false
		}
		if !writeRecord(raw) {
			return false
		}
		if raw, err = venc(val); err != nil {
			return false
		}
		return writeRecord(raw)
	})
	if err != nil {
		return infra.WrapErrorStackWithMessage(err, "[rbtree] snapshot write entry")
	}
	if err = bw.Flush(); err != nil {
		return infra.WrapErrorStackWithMessage(err, "[rbtree] snapshot flush")
	}
	return nil
}

// SnapshotRead rebuilds a tree from a stream produced by SnapshotWrite.
// Entries arrive in sorted order so the rebuild is a plain sequence of
// inserts against a fresh tree built from opts.
func SnapshotRead[K infra.OrderedKey, V any](
	r io.Reader,
	kdec EntryUnmarshaler[K],
	vdec EntryUnmarshaler[V],
	opts ...RBTreeOpt[K, V],
) (RBTree[K, V], error) {
	br := bufio.NewReader(r)

	var header [13]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[rbtree] snapshot read header")
	}
	if binary.LittleEndian.Uint32(header[0:4]) != snapshotMagic {
		return nil, infra.NewErrorStack("[rbtree] snapshot bad magic")
	}
	if header[4] != snapshotVersion {
		return nil, infra.NewErrorStack("[rbtree] snapshot unknown version")
	}
	count := binary.LittleEndian.Uint64(header[5:13])

	readRecord := func() ([]byte, error) {
		size, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, err
		}
		if size > snapshotMaxRecordSize {
			return nil, infra.NewErrorStack("[rbtree] snapshot record too large")
		}
		raw := make([]byte, size)
		if _, err = io.ReadFull(br, raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	if count > uint64(snapshotMaxRecordSize) {
		return nil, infra.NewErrorStack("[rbtree] snapshot entry count too large")
	}
	capHint := uint32(defaultArenaCapacity)
	if count > uint64(capHint) {
		capHint = uint32(count)
	}
	tree := NewRBTree[K, V](append(opts, WithRBTreeArenaCapacity[K, V](capHint))...)

	for i := uint64(0); i < count; i++ {
		raw, err := readRecord()
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "[rbtree] snapshot read key")
		}
		key, err := kdec(raw)
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "[rbtree] snapshot decode key")
		}
		if raw, err = readRecord(); err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "[rbtree] snapshot read value")
		}
		val, err := vdec(raw)
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "[rbtree] snapshot decode value")
		}
		tree.Insert(key, val)
	}
	if tree.Len() != int64(count) {
		return nil, infra.NewErrorStack("[rbtree] snapshot duplicated keys")
	}
	return tree, nil
}
