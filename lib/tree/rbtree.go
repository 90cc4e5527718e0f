package tree

import (
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
	"github.com/benz9527/xtree/lib/xlog"
)

// References:
// https://elixir.bootlin.com/linux/latest/source/lib/rbtree.c
// rbtree properties:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All NIL nodes are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   NIL nodes goes through the same number of black nodes. (black-violation)
// p5. (Optional) The root is black.
// (Conclusion) If a node X has exactly one child, it must be a red child,
//   because if it were black, its NIL descendants would sit at a different
//   black depth than X's NIL child, violating p4.

type rbTree[K infra.OrderedKey, V any] struct {
	arena          *nodeArena[K, V]
	kcmp           infra.OrderedKeyComparator[K]
	logger         xlog.XLogger
	stats          *treeStats
	root           uint32
	count          int64
	isRmBorrowPred bool
	isSelfCheck    bool
}

func (tree *rbTree[K, V]) node(x uint32) *rbNode[K, V] {
	return tree.arena.at(x)
}

func (tree *rbTree[K, V]) isNilLeaf(x uint32) bool {
	return x == nilIdx
}

func (tree *rbTree[K, V]) isRed(x uint32) bool {
	return x != nilIdx && tree.node(x).color == Red
}

func (tree *rbTree[K, V]) isBlack(x uint32) bool {
	return x == nilIdx || tree.node(x).color == Black
}

func (tree *rbTree[K, V]) isRoot(x uint32) bool {
	return x != nilIdx && tree.node(x).parent == nilIdx
}

func (tree *rbTree[K, V]) isLeaf(x uint32) bool {
	if x == nilIdx {
		return false
	}
	node := tree.node(x)
	return node.parent != nilIdx && node.left == nilIdx && node.right == nilIdx
}

func (tree *rbTree[K, V]) parentOf(x uint32) uint32 {
	if x == nilIdx {
		return nilIdx
	}
	return tree.node(x).parent
}

func (tree *rbTree[K, V]) direction(x uint32) RBDirection {
	if x == nilIdx {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] nil leaf node without direction")
	}
	if tree.isRoot(x) {
		return Root
	}
	if x == tree.node(tree.node(x).parent).left {
		return Left
	}
	return Right
}

func (tree *rbTree[K, V]) sibling(x uint32) uint32 {
	switch tree.direction(x) {
	case Left:
		return tree.node(tree.node(x).parent).right
	case Right:
		return tree.node(tree.node(x).parent).left
	default:
	}
	return nilIdx
}

func (tree *rbTree[K, V]) hasSibling(x uint32) bool {
	return !tree.isRoot(x) && tree.sibling(x) != nilIdx
}

func (tree *rbTree[K, V]) uncle(x uint32) uint32 {
	return tree.sibling(tree.node(x).parent)
}

func (tree *rbTree[K, V]) hasUncle(x uint32) bool {
	return !tree.isRoot(x) && tree.hasSibling(tree.node(x).parent)
}

func (tree *rbTree[K, V]) grandpa(x uint32) uint32 {
	return tree.node(tree.node(x).parent).parent
}

// fixLink re-binds both children's parent indices after a rotation
// swapped subtrees around.
func (tree *rbTree[K, V]) fixLink(x uint32) {
	node := tree.node(x)
	if node.left != nilIdx {
		tree.node(node.left).parent = x
	}
	if node.right != nilIdx {
		tree.node(node.right).parent = x
	}
}

func (tree *rbTree[K, V]) minimum(x uint32) uint32 {
	aux := x
	for aux != nilIdx && tree.node(aux).left != nilIdx {
		aux = tree.node(aux).left
	}
	return aux
}

func (tree *rbTree[K, V]) maximum(x uint32) uint32 {
	aux := x
	for aux != nilIdx && tree.node(aux).right != nilIdx {
		aux = tree.node(aux).right
	}
	return aux
}

// The pred node of the current node is its previous node in sorted order.
func (tree *rbTree[K, V]) pred(x uint32) uint32 {
	if x == nilIdx {
		return nilIdx
	}
	if tree.node(x).left != nilIdx {
		return tree.maximum(tree.node(x).left)
	}
	aux := tree.node(x).parent
	// Backtrack to the ancestor that is the x's pred.
	for aux != nilIdx && x == tree.node(aux).left {
		x = aux
		aux = tree.node(aux).parent
	}
	return aux
}

// The succ node of the current node is its next node in sorted order.
func (tree *rbTree[K, V]) succ(x uint32) uint32 {
	if x == nilIdx {
		return nilIdx
	}
	if tree.node(x).right != nilIdx {
		return tree.minimum(tree.node(x).right)
	}
	aux := tree.node(x).parent
	// Backtrack to the ancestor that is the x's succ.
	for aux != nilIdx && x == tree.node(aux).right {
		x = aux
		aux = tree.node(aux).parent
	}
	return aux
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc
*/
func (tree *rbTree[K, V]) leftRotate(x uint32) {
	if x == nilIdx || tree.node(x).right == nilIdx {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] left rotate node x is nil or x.right is nil")
	}

	p, y := tree.node(x).parent, tree.node(x).right
	dir := tree.direction(x)
	tree.node(x).right, tree.node(y).left = tree.node(y).left, x

	tree.fixLink(x)
	tree.fixLink(y)

	switch dir {
	case Root:
		tree.root = y
	case Left:
		tree.node(p).left = y
	case Right:
		tree.node(p).right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to left-rotate")
	}
	tree.node(y).parent = p
	tree.stats.RecordRotation()
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd
*/
func (tree *rbTree[K, V]) rightRotate(x uint32) {
	if x == nilIdx || tree.node(x).left == nilIdx {
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] right rotate node x is nil or x.left is nil")
	}

	p, y := tree.node(x).parent, tree.node(x).left
	dir := tree.direction(x)
	tree.node(x).left, tree.node(y).right = tree.node(y).right, x

	tree.fixLink(x)
	tree.fixLink(y)

	switch dir {
	case Root:
		tree.root = y
	case Left:
		tree.node(p).left = y
	case Right:
		tree.node(p).right = y
	default:
		// impossible run to here
		panic( /* debug assertion */ "[rbtree] unknown node direction to right-rotate")
	}
	tree.node(y).parent = p
	tree.stats.RecordRotation()
}

func (tree *rbTree[K, V]) Len() int64 {
	return atomic.LoadInt64(&tree.count)
}

func (tree *rbTree[K, V]) IsEmpty() bool {
	return tree.Len() <= 0
}

func (tree *rbTree[K, V]) search(key K) uint32 {
	for aux := tree.root; aux != nilIdx; {
		res := tree.kcmp(key, tree.node(aux).key)
		if res == 0 {
			return aux
		} else if res < 0 {
			aux = tree.node(aux).left
		} else {
			aux = tree.node(aux).right
		}
	}
	return nilIdx
}

func (tree *rbTree[K, V]) Get(key K) (val V, exists bool) {
	x := tree.search(key)
	if x == nilIdx {
		return
	}
	return tree.node(x).val, true
}

func (tree *rbTree[K, V]) Contains(key K) bool {
	return tree.search(key) != nilIdx
}

// i1: Empty rbtree, insert directly, but root node is painted to black.
func (tree *rbTree[K, V]) Insert(key K, val V) (old V, replaced bool) {
	if /* i1 */ tree.isNilLeaf(tree.root) {
		tree.root = tree.arena.allocate(key, val, Black, nilIdx)
		atomic.AddInt64(&tree.count, 1)
		tree.stats.RecordInsert()
		tree.selfCheck("insert")
		return
	}

	var x, y uint32 = tree.root, nilIdx
	var res int64
	for x != nilIdx {
		y = x
		res = tree.kcmp(key, tree.node(x).key)
		if /* equal */ res == 0 {
			break
		} else /* less */ if res < 0 {
			x = tree.node(x).left
		} else /* greater */ {
			x = tree.node(x).right
		}
	}

	if /* equal, replace */ res == 0 {
		old, replaced = tree.node(y).val, true
		tree.node(y).val = val
		tree.stats.RecordReplace()
		return
	}

	z := tree.arena.allocate(key, val, Red, y)
	if /* less */ res < 0 {
		tree.node(y).left = z
	} else /* greater */ {
		tree.node(y).right = z
	}

	atomic.AddInt64(&tree.count, 1)
	tree.insertRebalance(z)
	tree.stats.RecordInsert()
	tree.selfCheck("insert")
	return
}

func (tree *rbTree[K, V]) InsertIfAbsent(key K, val V) bool {
	if tree.Contains(key) {
		return false
	}
	tree.Insert(key, val)
	return true
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

im1: Current node X's parent P is black and P is root, so hold p3 and p4.

im2: Current node X's parent P is red and P is root, repaint P into black.

im3: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Recursive to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im4: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation may be still red-violation. Here must enter im5 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im5: Handle im4 scenario, current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]
*/
func (tree *rbTree[K, V]) insertRebalance(x uint32) {
	depth := int64(0)
	defer func() {
		tree.stats.RecordFixupDepth(depth)
	}()
	for x != nilIdx {
		depth++
		if tree.isRoot(x) {
			if tree.isRed(x) {
				tree.node(x).color = Black
			}
			return
		}

		if tree.isBlack(tree.parentOf(x)) {
			return
		}

		if /* im1, im2 */ tree.isRoot(tree.parentOf(x)) {
			if tree.isRed(tree.parentOf(x)) {
				tree.node(tree.parentOf(x)).color = Black
			}
			return
		}

		if /* im3 */ tree.hasUncle(x) && tree.isRed(tree.uncle(x)) {
			tree.node(tree.parentOf(x)).color = Black
			tree.node(tree.uncle(x)).color = Black
			gp := tree.grandpa(x)
			tree.node(gp).color = Red
			x = gp
			continue
		}

		if !tree.hasUncle(x) || tree.isBlack(tree.uncle(x)) {
			dir := tree.direction(x)
			if /* im4 */ dir != tree.direction(tree.parentOf(x)) {
				p := tree.parentOf(x)
				switch dir {
				case Left:
					tree.rightRotate(p)
				case Right:
					tree.leftRotate(p)
				default:
					// impossible run to here
					panic( /* debug assertion */ "[rbtree] insert violate (im4)")
				}
				x = p // enter im5 to fix
			}

			switch /* im5 */ tree.direction(tree.parentOf(x)) {
			case Left:
				tree.rightRotate(tree.grandpa(x))
			case Right:
				tree.leftRotate(tree.grandpa(x))
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] insert violate (im5)")
			}

			tree.node(tree.parentOf(x)).color = Black
			tree.node(tree.sibling(x)).color = Red
			return
		}
	}
}

/*
r1: Only a root node, remove directly.

r2: Current node X has left and right node.
Find node X's pred or succ to replace it to be removed.
Swap the key & value only. Both of pred and succ own at most one child.

r3: (1) Current node X is a red leaf node, remove directly.

r3: (2) Current node X is a black leaf node, we have to rebalance after
remove. (black-violation)

r4: Current node X is not a leaf node but contains a not nil child node.
The child node must be a red node. (See conclusion. Otherwise, black-violation)
*/
func (tree *rbTree[K, V]) removeNode(z uint32) (key K, val V) {
	key, val = tree.node(z).key, tree.node(z).val

	if /* r1 */ atomic.LoadInt64(&tree.count) == 1 && tree.isRoot(z) {
		tree.root = nilIdx
		tree.arena.reclaim(z)
		return
	}

	y := z
	if /* r2 */ tree.node(y).left != nilIdx && tree.node(y).right != nilIdx {
		if tree.isRmBorrowPred {
			y = tree.pred(z) // enter r3-r4
		} else {
			y = tree.succ(z) // enter r3-r4
		}
		// Move the borrowed key & value up, then remove the borrowed slot.
		tree.node(z).key, tree.node(z).val = tree.node(y).key, tree.node(y).val
	}

	if /* r3 */ tree.isLeaf(y) {
		if /* r3 (1) */ tree.isRed(y) {
			switch tree.direction(y) {
			case Left:
				tree.node(tree.parentOf(y)).left = nilIdx
			case Right:
				tree.node(tree.parentOf(y)).right = nilIdx
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] y should be a leaf node, violate (r3-1)")
			}
			tree.arena.reclaim(y)
			return
		}
		/* r3 (2) */
		tree.removeRebalance(y)
	} else /* r4 */ {
		var replace uint32 = nilIdx
		if tree.node(y).right != nilIdx {
			replace = tree.node(y).right
		} else if tree.node(y).left != nilIdx {
			replace = tree.node(y).left
		}

		if replace == nilIdx {
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove a leaf node without child, violate (r4)")
		}

		switch tree.direction(y) {
		case Root:
			tree.root = replace
			tree.node(replace).parent = nilIdx
		case Left:
			tree.node(tree.parentOf(y)).left = replace
			tree.node(replace).parent = tree.parentOf(y)
		case Right:
			tree.node(tree.parentOf(y)).right = replace
			tree.node(replace).parent = tree.parentOf(y)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] impossible run to here")
		}

		if tree.isBlack(y) {
			if tree.isRed(replace) {
				tree.node(replace).color = Black
			} else {
				tree.removeRebalance(replace)
			}
		}
	}

	// Unlink node y.
	if !tree.isRoot(y) {
		p := tree.parentOf(y)
		if tree.node(p).left == y {
			tree.node(p).left = nilIdx
		} else if tree.node(p).right == y {
			tree.node(p).right = nilIdx
		}
	}
	tree.arena.reclaim(y)
	return
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Sc is the same direction to X and it is X's sibling's child node.
Sd is the opposite direction to X and it is X's sibling's child node.

rm1: Current node X's sibling S is red, so the parent P, nephew node Sc
and Sd must be black. (Otherwise, red-violation)
(1) X is left node of P, left rotate P
(2) X is right node of P, right rotate P.
(3) repaint S into black, P into red.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: Current node X's parent P is red, the sibling S, nephew node Sc
and Sd are black. Repaint S into red and P into black.

	  <P>             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: All of current node X's parent P, the sibling S, nephew node Sc
and Sd are black. Unable to satisfy p3 and p4. We have to paint the S
into red to satisfy p4 locally. Then recursive to handle P.

	  [P]             [P]
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm4: Current node X's sibling S is black, nephew node Sc is red and Sd
is black. Ignore X's parent P's color (red or black is okay)
Unable to satisfy p3 and p4.
(1) If X is left node of P, right rotate S.
(2) If X is right node of P, left rotate S.
(3) Repaint S into red, Sc into black.
Enter into rm5 to fix.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm5: Current node X's sibling S is black, nephew node Sc is black and Sd
is red. Ignore X's parent P's color (red or black is okay)
Unable to satisfy p4 (black-violation)
(1) If X is left node of P, left rotate P.
(2) If X is right node of P, right rotate P.
(3) Swap P and S's color (red-violation)
(4) Repaint Sd into black.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *rbTree[K, V]) removeRebalance(x uint32) {
	depth := int64(0)
	defer func() {
		tree.stats.RecordFixupDepth(depth)
	}()
	for {
		depth++
		if tree.isRoot(x) {
			return
		}

		sibling := tree.sibling(x)
		dir := tree.direction(x)
		if /* rm1 */ tree.isRed(sibling) {
			switch dir {
			case Left:
				tree.leftRotate(tree.parentOf(x))
			case Right:
				tree.rightRotate(tree.parentOf(x))
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm1)")
			}
			tree.node(sibling).color = Black
			tree.node(tree.parentOf(x)).color = Red // ready to enter rm2
			sibling = tree.sibling(x)
		}

		var sc, sd uint32
		switch /* rm2 */ dir {
		case Left:
			sc, sd = tree.node(sibling).left, tree.node(sibling).right
		case Right:
			sc, sd = tree.node(sibling).right, tree.node(sibling).left
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (rm2)")
		}

		if tree.isBlack(sc) && tree.isBlack(sd) {
			if /* rm2 */ tree.isRed(tree.parentOf(x)) {
				tree.node(sibling).color = Red
				tree.node(tree.parentOf(x)).color = Black
				break
			}
			/* rm3 */
			tree.node(sibling).color = Red
			x = tree.parentOf(x)
			continue
		}

		if /* rm4 */ sc != nilIdx && tree.isRed(sc) {
			switch dir {
			case Left:
				tree.rightRotate(sibling)
			case Right:
				tree.leftRotate(sibling)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm4)")
			}
			tree.node(sc).color = Black
			tree.node(sibling).color = Red
			sibling = tree.sibling(x)
			switch dir {
			case Left:
				sd = tree.node(sibling).right
			case Right:
				sd = tree.node(sibling).left
			default:
				// impossible run to here
				panic( /* debug assertion */ "[rbtree] remove violate (rm4)")
			}
		}

		switch /* rm5 */ dir {
		case Left:
			tree.leftRotate(tree.parentOf(x))
		case Right:
			tree.rightRotate(tree.parentOf(x))
		default:
			// impossible run to here
			panic( /* debug assertion */ "[rbtree] remove violate (rm5)")
		}
		tree.node(sibling).color = tree.node(tree.parentOf(x)).color
		tree.node(tree.parentOf(x)).color = Black
		if sd != nilIdx {
			tree.node(sd).color = Black
		}
		break
	}
}

func (tree *rbTree[K, V]) Remove(key K) (val V, removed bool) {
	if atomic.LoadInt64(&tree.count) <= 0 {
		return
	}
	z := tree.search(key)
	if z == nilIdx {
		return
	}
	_, val = tree.removeNode(z)
	atomic.AddInt64(&tree.count, -1)
	tree.stats.RecordRemove()
	tree.selfCheck("remove")
	return val, true
}

func (tree *rbTree[K, V]) Min() (key K, val V, exists bool) {
	m := tree.minimum(tree.root)
	if m == nilIdx {
		return
	}
	return tree.node(m).key, tree.node(m).val, true
}

func (tree *rbTree[K, V]) Max() (key K, val V, exists bool) {
	m := tree.maximum(tree.root)
	if m == nilIdx {
		return
	}
	return tree.node(m).key, tree.node(m).val, true
}

func (tree *rbTree[K, V]) PopMin() (key K, val V, exists bool) {
	m := tree.minimum(tree.root)
	if m == nilIdx {
		return
	}
	key, val = tree.removeNode(m)
	atomic.AddInt64(&tree.count, -1)
	tree.stats.RecordRemove()
	tree.selfCheck("pop-min")
	return key, val, true
}

func (tree *rbTree[K, V]) PopMax() (key K, val V, exists bool) {
	m := tree.maximum(tree.root)
	if m == nilIdx {
		return
	}
	key, val = tree.removeNode(m)
	atomic.AddInt64(&tree.count, -1)
	tree.stats.RecordRemove()
	tree.selfCheck("pop-max")
	return key, val, true
}

// Inorder traversal to implement the DFS.
func (tree *rbTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	size := atomic.LoadInt64(&tree.count)
	aux := tree.root
	if size <= 0 || aux == nilIdx {
		return
	}

	stack := make([]uint32, 0, size>>1)
	for ; aux != nilIdx; aux = tree.node(aux).left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		aux = stack[size-1]
		node := tree.node(aux)
		if !action(idx, node.color, node.key, node.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		if node.right != nilIdx {
			for aux = node.right; aux != nilIdx; aux = tree.node(aux).left {
				stack = append(stack, aux)
			}
		}
	}
}

func (tree *rbTree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.Len())
	tree.Foreach(func(idx int64, color RBColor, key K, val V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (tree *rbTree[K, V]) Values() []V {
	values := make([]V, 0, tree.Len())
	tree.Foreach(func(idx int64, color RBColor, key K, val V) bool {
		values = append(values, val)
		return true
	})
	return values
}

func (tree *rbTree[K, V]) Validate() error {
	return multierr.Combine(
		tree.redViolationValidate(),
		tree.blackViolationValidate(),
		tree.sizeValidate(),
	)
}

// selfCheck re-validates the whole structure after a mutation. Any
// violation is an internal logic fault, so it is fatal on purpose.
func (tree *rbTree[K, V]) selfCheck(op string) {
	if !tree.isSelfCheck {
		return
	}
	if err := tree.Validate(); err != nil {
		err = infra.WrapErrorStackWithMessage(err, "[rbtree] structure corrupted after "+op)
		if tree.logger != nil {
			tree.logger.ErrorStack(err, "rbtree self check failed", zap.Int64("len", tree.Len()))
		}
		panic(err)
	}
}

func (tree *rbTree[K, V]) Release() {
	if tree.logger != nil {
		tree.logger.Debug("rbtree released",
			zap.Int64("len", tree.Len()),
			zap.Int("arenaCap", tree.arena.capacity()),
		)
	}
	tree.root = nilIdx
	atomic.StoreInt64(&tree.count, 0)
	tree.arena.release()
}

type RBTreeOpt[K infra.OrderedKey, V any] func(*rbTree[K, V])

// WithRBTreeDesc flips the key order of the whole tree, min/max and the
// iteration bounds included.
func WithRBTreeDesc[K infra.OrderedKey, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.kcmp = infra.DescOrderedKeyComparator[K]()
	}
}

// WithRBTreeRemoveBorrowPred makes the two-children deletion borrow the
// in-order predecessor instead of the successor.
func WithRBTreeRemoveBorrowPred[K infra.OrderedKey, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.isRmBorrowPred = true
	}
}

// WithRBTreeSelfCheck validates all structure invariants after every
// mutation. Meant for tests and debugging, it turns mutations into
// O(n) operations.
func WithRBTreeSelfCheck[K infra.OrderedKey, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.isSelfCheck = true
	}
}

func WithRBTreeLogger[K infra.OrderedKey, V any](logger xlog.XLogger) RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.logger = logger
	}
}

// WithRBTreeArenaCapacity pre-sizes the node arena.
func WithRBTreeArenaCapacity[K infra.OrderedKey, V any](capHint uint32) RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.arena = newNodeArena[K, V](capHint)
	}
}

// WithRBTreeStats publishes mutation counters and fixup depths through
// the global otel meter provider.
func WithRBTreeStats[K infra.OrderedKey, V any]() RBTreeOpt[K, V] {
	return func(tree *rbTree[K, V]) {
		tree.stats = newTreeStats()
	}
}

func NewRBTree[K infra.OrderedKey, V any](opts ...RBTreeOpt[K, V]) RBTree[K, V] {
	tree := &rbTree[K, V]{
		root:  nilIdx,
		count: 0,
		kcmp:  infra.AscOrderedKeyComparator[K](),
	}
	for _, o := range opts {
		o(tree)
	}
	if tree.arena == nil {
		tree.arena = newNodeArena[K, V](defaultArenaCapacity)
	}
	return tree
}
