package avl

import (
	"errors"
	"sync"

	"gopkg.in/typ.v4"
)

// Errors used by the package.
var (
	ErrorTreeNodeDuplicate = errors.New("tree node is duplicated")
	ErrorTreeNodeNotFound  = errors.New("tree node is not found")
)

// Tree is a binary search tree for arbitrary key types, implemented as an
// AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing BST.
// This guarantees O(log t) operations on insertion, searching, and deletion.
// The most left node is cached so best-key lookup is O(1).
type Tree[K, V any] struct {
	compare  func(a, b K) int
	pool     *sync.Pool
	root     *Node[K, V]
	mostLeft *Node[K, V]
	size     int
}

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered, V any]() Tree[K, V] {
	return NewTree[K, V](typ.Compare[K])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
	}
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, -1 if a < b, and +1 if a > b.
// Pooled tree uses given pool for nodes creating/releasing.
func NewTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
		pool:    pool,
	}
}

// Size returns the amount of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Contains checks if node with given key exists in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Find finds the node with given key in the tree by iterating the binary search tree.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	n := t.root
	for n != nil {
		switch cmp := t.compare(key, n.key); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// MostLeft returns the node with the smallest key according to the comparator.
func (t *Tree[K, V]) MostLeft() *Node[K, V] {
	return t.mostLeft
}

// Add inserts a node with given key and value to the tree.
// Duplicate keys are not allowed so error will be returned on duplicate.
func (t *Tree[K, V]) Add(key K, value V) (*Node[K, V], error) {
	node := t.newNode(key, value)
	root, err := t.add(t.root, node)
	if err != nil {
		t.putNode(node)
		return nil, err
	}
	t.root = root
	t.size++
	// Update the most left node cache
	if t.mostLeft == nil || t.compare(key, t.mostLeft.key) < 0 {
		t.mostLeft = node
	}
	return node, nil
}

// Remove removes the node with given key from the tree and returns its value.
func (t *Tree[K, V]) Remove(key K) (value V, err error) {
	wasMostLeft := t.mostLeft != nil && t.compare(key, t.mostLeft.key) == 0
	root, removed, value, err := t.remove(t.root, key)
	if err != nil {
		return
	}
	t.root = root
	t.size--
	t.putNode(removed)
	// Update the most left node cache
	if wasMostLeft {
		if t.root != nil {
			t.mostLeft = t.root.mostLeft()
		} else {
			t.mostLeft = nil
		}
	}
	return
}

// Clear will reset this tree to an empty tree.
func (t *Tree[K, V]) Clear() {
	if t.root != nil {
		t.root.iteratePostOrder(func(node *Node[K, V]) bool {
			t.putNode(node)
			return false
		})
	}
	t.root = nil
	t.mostLeft = nil
	t.size = 0
}

// IterateInOrder will iterate all values in this tree in sorted key order.
// Iteration stops as soon as f returns true.
func (t *Tree[K, V]) IterateInOrder(f func(value V) bool) {
	t.root.iterateInOrder(func(n *Node[K, V]) bool {
		return f(n.value)
	})
}

// IteratePostOrder will iterate all values in this tree visiting both
// branches of a node before the node itself.
// Iteration stops as soon as f returns true.
func (t *Tree[K, V]) IteratePostOrder(f func(value V) bool) {
	t.root.iteratePostOrder(func(n *Node[K, V]) bool {
		return f(n.value)
	})
}

func (t *Tree[K, V]) add(n, node *Node[K, V]) (*Node[K, V], error) {
	if n == nil {
		node.height = 1
		return node, nil
	}
	switch cmp := t.compare(node.key, n.key); {
	case cmp < 0:
		left, err := t.add(n.left, node)
		if err != nil {
			return nil, err
		}
		n.left = left
	case cmp > 0:
		right, err := t.add(n.right, node)
		if err != nil {
			return nil, err
		}
		n.right = right
	default:
		return nil, ErrorTreeNodeDuplicate
	}
	return n.rebalance(), nil
}

func (t *Tree[K, V]) remove(n *Node[K, V], key K) (root, removed *Node[K, V], value V, err error) {
	if n == nil {
		err = ErrorTreeNodeNotFound
		return
	}
	switch cmp := t.compare(key, n.key); {
	case cmp < 0:
		n.left, removed, value, err = t.remove(n.left, key)
	case cmp > 0:
		n.right, removed, value, err = t.remove(n.right, key)
	default:
		value = n.value
		switch {
		case n.left == nil:
			return n.right, n, value, nil
		case n.right == nil:
			return n.left, n, value, nil
		default:
			// Two children: move the in-order successor into this node
			// and unlink the successor's own node instead.
			succ := n.right.mostLeft()
			n.key, n.value = succ.key, succ.value
			n.right, removed, _, err = t.remove(n.right, succ.key)
		}
	}
	if err != nil {
		return
	}
	root = n.rebalance()
	return
}

func (t *Tree[K, V]) newNode(key K, value V) *Node[K, V] {
	if t.pool != nil {
		node := t.pool.Get().(*Node[K, V])
		node.key = key
		node.value = value
		return node
	}
	return &Node[K, V]{
		key:   key,
		value: value,
	}
}

func (t *Tree[K, V]) putNode(node *Node[K, V]) {
	if t.pool != nil {
		*node = Node[K, V]{}
		t.pool.Put(node)
	}
}
