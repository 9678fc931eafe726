package avl

// Node is a single tree node carrying one key/value pair.
type Node[K, V any] struct {
	key    K
	value  V
	left   *Node[K, V]
	right  *Node[K, V]
	height int
}

// Key returns key of the tree node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns value of the tree node.
func (n *Node[K, V]) Value() V {
	return n.value
}

func (n *Node[K, V]) mostLeft() *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func height[K, V any](n *Node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *Node[K, V]) balance() int {
	return height(n.right) - height(n.left)
}

func (n *Node[K, V]) updateHeight() {
	n.height = 1 + max(height(n.left), height(n.right))
}

func (n *Node[K, V]) rotateLeft() *Node[K, V] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

func (n *Node[K, V]) rotateRight() *Node[K, V] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	n.updateHeight()
	pivot.updateHeight()
	return pivot
}

// rebalance restores the AVL invariant for the subtree rooted at n
// and returns the new subtree root.
func (n *Node[K, V]) rebalance() *Node[K, V] {
	n.updateHeight()
	switch b := n.balance(); {
	case b > 1:
		if n.right.balance() < 0 {
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	case b < -1:
		if n.left.balance() > 0 {
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	}
	return n
}

// iterateInOrder visits the left branch, the node itself, then the right branch.
// Iteration stops as soon as f returns true.
func (n *Node[K, V]) iterateInOrder(f func(node *Node[K, V]) bool) bool {
	if n == nil {
		return false
	}
	if n.left.iterateInOrder(f) {
		return true
	}
	if f(n) {
		return true
	}
	return n.right.iterateInOrder(f)
}

// iteratePostOrder visits both branches before the node itself, so the
// callback always receives leaf nodes first.
func (n *Node[K, V]) iteratePostOrder(f func(node *Node[K, V]) bool) bool {
	if n == nil {
		return false
	}
	if n.left.iteratePostOrder(f) {
		return true
	}
	if n.right.iteratePostOrder(f) {
		return true
	}
	return f(n)
}
