package queue

import "github.com/benz9527/xtree/lib/infra"

// DoubleEndedPriorityQueue serves both the least and the greatest
// priority in O(log n). Items sharing a priority dequeue in FIFO
// order from either end.
type DoubleEndedPriorityQueue[K infra.OrderedKey, V any] interface {
	Len() int64
	IsEmpty() bool
	Push(priority K, item V)
	PeekMin() (K, V, bool)
	PeekMax() (K, V, bool)
	PopMin() (K, V, bool)
	PopMax() (K, V, bool)
	Release()
}
