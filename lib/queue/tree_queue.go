package queue

import (
	"sync/atomic"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/tree"
)

// Priorities collide, so each tree node holds a FIFO bucket of items
// instead of a single value. A bucket is unlinked once drained.
type xTreeQueue[K infra.OrderedKey, V any] struct {
	tree tree.RBTree[K, []V]
	size int64
}

func (q *xTreeQueue[K, V]) Len() int64 {
	return atomic.LoadInt64(&q.size)
}

func (q *xTreeQueue[K, V]) IsEmpty() bool {
	return q.Len() <= 0
}

func (q *xTreeQueue[K, V]) Push(priority K, item V) {
	bucket, exists := q.tree.Get(priority)
	if exists {
		q.tree.Insert(priority, append(bucket, item))
	} else {
		q.tree.Insert(priority, []V{item})
	}
	atomic.AddInt64(&q.size, 1)
}

func (q *xTreeQueue[K, V]) PeekMin() (priority K, item V, exists bool) {
	key, bucket, ok := q.tree.Min()
	if !ok {
		return
	}
	return key, bucket[0], true
}

func (q *xTreeQueue[K, V]) PeekMax() (priority K, item V, exists bool) {
	key, bucket, ok := q.tree.Max()
	if !ok {
		return
	}
	return key, bucket[0], true
}

func (q *xTreeQueue[K, V]) popBucketHead(key K, bucket []V) (K, V, bool) {
	item := bucket[0]
	if len(bucket) == 1 {
		q.tree.Remove(key)
	} else {
		q.tree.Insert(key, bucket[1:])
	}
	atomic.AddInt64(&q.size, -1)
	return key, item, true
}

func (q *xTreeQueue[K, V]) PopMin() (priority K, item V, exists bool) {
	key, bucket, ok := q.tree.Min()
	if !ok {
		return
	}
	return q.popBucketHead(key, bucket)
}

func (q *xTreeQueue[K, V]) PopMax() (priority K, item V, exists bool) {
	key, bucket, ok := q.tree.Max()
	if !ok {
		return
	}
	return q.popBucketHead(key, bucket)
}

func (q *xTreeQueue[K, V]) Release() {
	q.tree.Release()
	atomic.StoreInt64(&q.size, 0)
}

func NewXTreeQueue[K infra.OrderedKey, V any](opts ...tree.RBTreeOpt[K, []V]) DoubleEndedPriorityQueue[K, V] {
	return &xTreeQueue[K, V]{
		tree: tree.NewRBTree[K, []V](opts...),
	}
}
