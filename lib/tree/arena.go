package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

// rbNode is one record inside the node arena. Structural relations are
// arena indices, never raw references, which keeps the node graph free
// of cycles and lets a whole tree be dropped by releasing the arena.
type rbNode[K infra.OrderedKey, V any] struct {
	key    K
	val    V
	parent uint32
	left   uint32
	right  uint32
	color  RBColor
	inUse  bool
}

const defaultArenaCapacity = 32

// nodeArena owns every node of one tree. Slot 0 is reserved as the nil
// sentinel and is never handed out nor mutated. Reclaimed slots are
// kept on a free list and reused before the slab grows, so a live
// index stays stable for the node's whole lifetime.
type nodeArena[K infra.OrderedKey, V any] struct {
	slab []rbNode[K, V]
	free []uint32
	live int64
}

func newNodeArena[K infra.OrderedKey, V any](capHint uint32) *nodeArena[K, V] {
	if capHint == 0 {
		capHint = defaultArenaCapacity
	}
	arena := &nodeArena[K, V]{
		slab: make([]rbNode[K, V], 1, capHint+1),
	}
	return arena
}

func (arena *nodeArena[K, V]) at(idx uint32) *rbNode[K, V] {
	return &arena.slab[idx]
}

// allocate hands out a zeroed slot, preferring reclaimed ones. The
// returned index is stable but any *rbNode obtained before this call
// may point into a stale slab and must be re-fetched.
func (arena *nodeArena[K, V]) allocate(key K, val V, color RBColor, parent uint32) uint32 {
	var idx uint32
	if n := len(arena.free); n > 0 {
		idx = arena.free[n-1]
		arena.free = arena.free[:n-1]
	} else {
		arena.slab = append(arena.slab, rbNode[K, V]{})
		idx = uint32(len(arena.slab) - 1)
	}
	node := &arena.slab[idx]
	node.key, node.val = key, val
	node.color = color
	node.parent, node.left, node.right = parent, nilIdx, nilIdx
	node.inUse = true
	arena.live++
	return idx
}

func (arena *nodeArena[K, V]) reclaim(idx uint32) {
	if idx == nilIdx {
		return
	}
	node := &arena.slab[idx]
	var (
		zeroK K
		zeroV V
	)
	node.key, node.val = zeroK, zeroV
	node.color = Black
	node.parent, node.left, node.right = nilIdx, nilIdx, nilIdx
	node.inUse = false
	arena.free = append(arena.free, idx)
	arena.live--
}

func (arena *nodeArena[K, V]) len() int64 {
	return arena.live
}

func (arena *nodeArena[K, V]) capacity() int {
	return len(arena.slab) - 1
}

// release drops the whole slab and free list at once. No partial
// teardown state exists; afterwards the arena is ready for reuse.
func (arena *nodeArena[K, V]) release() {
	arena.slab = make([]rbNode[K, V], 1, defaultArenaCapacity+1)
	arena.free = nil
	arena.live = 0
}
