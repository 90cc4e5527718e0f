package kv

import (
	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

type treeSet[K infra.OrderedKey] struct {
	tree tree.RBTree[K, struct{}]
	opts []tree.RBTreeOpt[K, struct{}]
}

func (s *treeSet[K]) Len() int64    { return s.tree.Len() }
func (s *treeSet[K]) IsEmpty() bool { return s.tree.IsEmpty() }
func (s *treeSet[K]) Release()      { s.tree.Release() }
func (s *treeSet[K]) Keys() []K     { return s.tree.Keys() }

func (s *treeSet[K]) Add(key K) bool {
	return s.tree.InsertIfAbsent(key, struct{}{})
}

func (s *treeSet[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

func (s *treeSet[K]) Remove(key K) bool {
	_, removed := s.tree.Remove(key)
	return removed
}

func (s *treeSet[K]) Min() (K, bool) {
	key, _, exists := s.tree.Min()
	return key, exists
}

func (s *treeSet[K]) Max() (K, bool) {
	key, _, exists := s.tree.Max()
	return key, exists
}

func (s *treeSet[K]) PopMin() (K, bool) {
	key, _, exists := s.tree.PopMin()
	return key, exists
}

func (s *treeSet[K]) PopMax() (K, bool) {
	key, _, exists := s.tree.PopMax()
	return key, exists
}

func (s *treeSet[K]) Foreach(action func(key K) bool) {
	s.tree.Foreach(func(idx int64, color tree.RBColor, key K, val struct{}) bool {
		return action(key)
	})
}

func (s *treeSet[K]) Iter(opts ...tree.IterOpt[K]) *tree.Iterator[K, struct{}] {
	return s.tree.Iter(opts...)
}

// emptyLike clones the receiver's tree options into a fresh set, so
// the algebra results keep the same key order and borrow policy.
func (s *treeSet[K]) emptyLike() *treeSet[K] {
	return &treeSet[K]{
		tree: tree.NewRBTree[K, struct{}](s.opts...),
		opts: s.opts,
	}
}

func (s *treeSet[K]) Union(other OrderedSet[K]) OrderedSet[K] {
	res := s.emptyLike()
	s.Foreach(func(key K) bool {
		res.Add(key)
		return true
	})
	if other != nil {
		other.Foreach(func(key K) bool {
			res.Add(key)
			return true
		})
	}
	return res
}

func (s *treeSet[K]) Intersection(other OrderedSet[K]) OrderedSet[K] {
	res := s.emptyLike()
	if other == nil {
		return res
	}
	// Probe from the smaller side.
	small, big := OrderedSet[K](s), other
	if big.Len() < small.Len() {
		small, big = big, small
	}
	small.Foreach(func(key K) bool {
		if big.Contains(key) {
			res.Add(key)
		}
		return true
	})
	return res
}

func (s *treeSet[K]) Difference(other OrderedSet[K]) OrderedSet[K] {
	res := s.emptyLike()
	s.Foreach(func(key K) bool {
		if other == nil || !other.Contains(key) {
			res.Add(key)
		}
		return true
	})
	return res
}

func (s *treeSet[K]) SymmetricDifference(other OrderedSet[K]) OrderedSet[K] {
	res := s.emptyLike()
	s.Foreach(func(key K) bool {
		if other == nil || !other.Contains(key) {
			res.Add(key)
		}
		return true
	})
	if other != nil {
		other.Foreach(func(key K) bool {
			if !s.Contains(key) {
				res.Add(key)
			}
			return true
		})
	}
	return res
}

func (s *treeSet[K]) IsSubsetOf(other OrderedSet[K]) bool {
	if other == nil || s.Len() > other.Len() {
		return false
	}
	subset := true
	s.Foreach(func(key K) bool {
		if !other.Contains(key) {
			subset = false
		}
		return subset
	})
	return subset
}

func (s *treeSet[K]) IsSupersetOf(other OrderedSet[K]) bool {
	if other == nil {
		return true
	}
	if other.Len() > s.Len() {
		return false
	}
	superset := true
	other.Foreach(func(key K) bool {
		if !s.Contains(key) {
			superset = false
		}
		return superset
	})
	return superset
}

func (s *treeSet[K]) IsDisjointWith(other OrderedSet[K]) bool {
	if other == nil {
		return true
	}
	small, big := OrderedSet[K](s), other
	if big.Len() < small.Len() {
		small, big = big, small
	}
	disjoint := true
	small.Foreach(func(key K) bool {
		if big.Contains(key) {
			disjoint = false
		}
		return disjoint
	})
	return disjoint
}

func NewTreeSet[K infra.OrderedKey](opts ...tree.RBTreeOpt[K, struct{}]) OrderedSet[K] {
	return &treeSet[K]{
		tree: tree.NewRBTree[K, struct{}](opts...),
		opts: opts,
	}
}
