package tree

import (
	"github.com/benz9527/xtree/lib/infra"
)

type iterBound[K infra.OrderedKey] struct {
	key       K
	inclusive bool
	enabled   bool
}

type iterCfg[K infra.OrderedKey] struct {
	lower iterBound[K]
	upper iterBound[K]
	desc  bool
}

type IterOpt[K infra.OrderedKey] func(*iterCfg[K])

// WithIterDesc walks the keys from greatest to least.
func WithIterDesc[K infra.OrderedKey]() IterOpt[K] {
	return func(cfg *iterCfg[K]) {
		cfg.desc = true
	}
}

// WithIterLowerBound skips all keys that compare less than key, or
// less-or-equal when inclusive is false.
func WithIterLowerBound[K infra.OrderedKey](key K, inclusive bool) IterOpt[K] {
	return func(cfg *iterCfg[K]) {
		cfg.lower = iterBound[K]{key: key, inclusive: inclusive, enabled: true}
	}
}

// WithIterUpperBound stops before all keys that compare greater than
// key, or greater-or-equal when inclusive is false.
func WithIterUpperBound[K infra.OrderedKey](key K, inclusive bool) IterOpt[K] {
	return func(cfg *iterCfg[K]) {
		cfg.upper = iterBound[K]{key: key, inclusive: inclusive, enabled: true}
	}
}

// Iterator walks a half-open or closed key range in sorted order.
// The zero value is not usable, obtain one through RBTree.Iter.
// Mutating the tree while an iterator is live invalidates it.
type Iterator[K infra.OrderedKey, V any] struct {
	tree *rbTree[K, V]
	cfg  iterCfg[K]
	// Pending ancestors whose own key is still unvisited.
	stack []uint32
	cur   uint32
}

func (tree *rbTree[K, V]) Iter(opts ...IterOpt[K]) *Iterator[K, V] {
	it := &Iterator[K, V]{
		tree: tree,
		cur:  nilIdx,
	}
	for _, o := range opts {
		o(&it.cfg)
	}
	it.Rewind()
	return it
}

// startBound is the bound the traversal starts from, endBound is the
// one it stops at. Which is which depends on the direction.
func (it *Iterator[K, V]) startBound() iterBound[K] {
	if it.cfg.desc {
		return it.cfg.upper
	}
	return it.cfg.lower
}

func (it *Iterator[K, V]) endBound() iterBound[K] {
	if it.cfg.desc {
		return it.cfg.lower
	}
	return it.cfg.upper
}

// withinEnd reports whether key has not yet crossed the stop bound.
func (it *Iterator[K, V]) withinEnd(key K) bool {
	end := it.endBound()
	if !end.enabled {
		return true
	}
	res := it.tree.kcmp(key, end.key)
	if it.cfg.desc {
		res = -res
	}
	if end.inclusive {
		return res <= 0
	}
	return res < 0
}

// Rewind resets the iterator to the first in-range key. It seeks the
// start bound while stacking every ancestor still inside the range,
// so a bounded scan costs O(log n + k).
func (it *Iterator[K, V]) Rewind() {
	tree := it.tree
	it.stack = it.stack[:0]
	it.cur = nilIdx

	start := it.startBound()
	aux := tree.root
	if !start.enabled {
		// Descend to the range's first key.
		for aux != nilIdx {
			it.stack = append(it.stack, aux)
			aux = it.towardStart(aux)
		}
		return
	}

	for aux != nilIdx {
		res := tree.kcmp(start.key, tree.node(aux).key)
		if it.cfg.desc {
			res = -res
		}
		if res == 0 {
			if start.inclusive {
				it.stack = append(it.stack, aux)
			} else {
				aux = it.awayFromStart(aux)
				continue
			}
			break
		} else if res < 0 {
			// aux is past the start bound, its key is still pending.
			it.stack = append(it.stack, aux)
			aux = it.towardStart(aux)
		} else {
			aux = it.awayFromStart(aux)
		}
	}
}

func (it *Iterator[K, V]) towardStart(x uint32) uint32 {
	if it.cfg.desc {
		return it.tree.node(x).right
	}
	return it.tree.node(x).left
}

func (it *Iterator[K, V]) awayFromStart(x uint32) uint32 {
	if it.cfg.desc {
		return it.tree.node(x).left
	}
	return it.tree.node(x).right
}

// Next advances to the following key and reports whether one exists
// inside the range. It must be called once before the first Key/Val.
func (it *Iterator[K, V]) Next() bool {
	tree := it.tree
	size := len(it.stack)
	if size == 0 {
		it.cur = nilIdx
		return false
	}

	x := it.stack[size-1]
	it.stack = it.stack[:size-1]
	if !it.withinEnd(tree.node(x).key) {
		it.stack = it.stack[:0]
		it.cur = nilIdx
		return false
	}

	// Stack the away-side subtree's start chain.
	for aux := it.awayFromStart(x); aux != nilIdx; aux = it.towardStart(aux) {
		it.stack = append(it.stack, aux)
	}
	it.cur = x
	return true
}

func (it *Iterator[K, V]) Key() K {
	return it.tree.node(it.cur).key
}

func (it *Iterator[K, V]) Val() V {
	return it.tree.node(it.cur).val
}
