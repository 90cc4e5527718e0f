package tree

import (
	"sync/atomic"

	"github.com/benz9527/xtree/lib/infra"
)

// redViolationValidate checks p3: a red node never has a red child.
func (tree *rbTree[K, V]) redViolationValidate() error {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	if size <= 0 || aux == nilIdx {
		return nil
	}

	stack := make([]uint32, 0, size>>1)
	for ; aux != nilIdx; aux = tree.node(aux).left {
		stack = append(stack, aux)
	}

	for len(stack) > 0 {
		aux = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := tree.node(aux)
		if node.color == Red {
			if (!tree.isRoot(aux) && tree.isRed(node.parent)) ||
				tree.isRed(node.left) || tree.isRed(node.right) {
				return infra.NewErrorStack("[rbtree] red-violation")
			}
		}
		if node.right != nilIdx {
			for aux = node.right; aux != nilIdx; aux = tree.node(aux).left {
				stack = append(stack, aux)
			}
		}
	}
	return nil
}

// bfsLeaves collects all nodes owning at least one NIL child, i.e. the
// nodes whose downward paths terminate.
func (tree *rbTree[K, V]) bfsLeaves() []uint32 {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	if size <= 0 || aux == nilIdx {
		return nil
	}

	leaves := make([]uint32, 0, size>>1+1)
	queue := []uint32{aux}
	for len(queue) > 0 {
		aux = queue[0]
		queue = queue[1:]
		node := tree.node(aux)
		if node.left == nilIdx || node.right == nilIdx {
			leaves = append(leaves, aux)
		}
		if node.left != nilIdx {
			queue = append(queue, node.left)
		}
		if node.right != nilIdx {
			queue = append(queue, node.right)
		}
	}
	return leaves
}

// blackDepthTo counts the black nodes on the path from x up to the root.
func (tree *rbTree[K, V]) blackDepthTo(x uint32) int64 {
	depth := int64(0)
	for aux := x; aux != nilIdx; aux = tree.node(aux).parent {
		if tree.isBlack(aux) {
			depth++
		}
	}
	return depth
}

// blackViolationValidate checks p4: every root-to-NIL path crosses the
// same number of black nodes. It compares the black depth of each
// semi-leaf instead of enumerating all the NIL paths.
func (tree *rbTree[K, V]) blackViolationValidate() error {
	leaves := tree.bfsLeaves()
	if len(leaves) == 0 {
		return nil
	}

	depth := tree.blackDepthTo(leaves[0])
	for _, leaf := range leaves[1:] {
		if tree.blackDepthTo(leaf) != depth {
			return infra.NewErrorStack("[rbtree] black-violation")
		}
	}

	// A one-child node must hold a red child, otherwise p4 breaks on
	// its NIL side.
	for _, leaf := range leaves {
		node := tree.node(leaf)
		if node.left != nilIdx && tree.isBlack(node.left) {
			return infra.NewErrorStack("[rbtree] black-violation")
		}
		if node.right != nilIdx && tree.isBlack(node.right) {
			return infra.NewErrorStack("[rbtree] black-violation")
		}
	}
	return nil
}

// sizeValidate checks that the reachable node count, the tracked length
// and the arena's live count agree.
func (tree *rbTree[K, V]) sizeValidate() error {
	reachable := int64(0)
	tree.Foreach(func(idx int64, color RBColor, key K, val V) bool {
		reachable++
		return true
	})
	if size := atomic.LoadInt64(&tree.count); reachable != size {
		return infra.NewErrorStack("[rbtree] size mismatch, unreachable nodes")
	}
	if reachable != int64(tree.arena.len()) {
		return infra.NewErrorStack("[rbtree] size mismatch, leaked arena slots")
	}
	return nil
}

func RedViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V]) error {
	t, ok := tree.(*rbTree[K, V])
	if !ok {
		return infra.NewErrorStack("[rbtree] unknown rbtree implementation")
	}
	return t.redViolationValidate()
}

func BlackViolationValidate[K infra.OrderedKey, V any](tree RBTree[K, V]) error {
	t, ok := tree.(*rbTree[K, V])
	if !ok {
		return infra.NewErrorStack("[rbtree] unknown rbtree implementation")
	}
	return t.blackViolationValidate()
}

func SizeValidate[K infra.OrderedKey, V any](tree RBTree[K, V]) error {
	t, ok := tree.(*rbTree[K, V])
	if !ok {
		return infra.NewErrorStack("[rbtree] unknown rbtree implementation")
	}
	return t.sizeValidate()
}
