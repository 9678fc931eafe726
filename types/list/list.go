package list

import (
	"errors"
	"sync"
)

// Errors used by the package.
var (
	ErrorListElementIsNil          = errors.New("list element is nil")
	ErrorListElementIsNotInTheList = errors.New("list element is not in the list")
)

// Element is an element of a linked list.
type Element[T any] struct {
	Value T

	list       *List[T]
	next, prev *Element[T]
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	if n := e.next; e.list != nil && n != &e.list.root {
		return n
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List represents a doubly linked list.
//
// A doubly linked list (DLL) is a special type of linked list in which each node contains
// a pointer to the previous node as well as the next node of the linked list.
type List[T any] struct {
	pool *sync.Pool // optional pool used to create/release list elements
	root Element[T] // sentinel list element, only &root, root.prev, and root.next are used
	len  int        // current list length excluding (this) sentinel element
}

// NewList creates new List instance.
func NewList[T any]() *List[T] {
	return NewListPooled[T](nil)
}

// NewListPooled creates new List instance.
// Pooled list uses given pool for elements creating/releasing.
func NewListPooled[T any](pool *sync.Pool) *List[T] {
	l := new(List[T])
	l.pool = pool
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Front returns the first element of list l or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of list l or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// Len returns the number of elements of list l.
func (l *List[T]) Len() int {
	return l.len
}

// PushBack inserts a new element e with value v at the back of list l and returns e.
func (l *List[T]) PushBack(v T) *Element[T] {
	var e *Element[T]
	if l.pool != nil {
		e = l.pool.Get().(*Element[T])
		e.Value = v
	} else {
		e = &Element[T]{Value: v}
	}
	e.prev = l.root.prev
	e.next = &l.root
	e.prev.next = e
	e.next.prev = e
	e.list = l
	l.len++
	return e
}

// Remove removes e from l if e is an element of list l and returns its value.
func (l *List[T]) Remove(e *Element[T]) (v T, err error) {
	if e == nil {
		err = ErrorListElementIsNil
		return
	}
	if e.list != l {
		err = ErrorListElementIsNotInTheList
		return
	}
	v = e.Value
	e.prev.next = e.next
	e.next.prev = e.prev
	l.len--

	// Clean up removed element to avoid memory leaks
	e.next, e.prev, e.list = nil, nil, nil

	// Release list entry if pool is used
	if l.pool != nil {
		l.pool.Put(e)
	}
	return
}

// Clean cleans list l by removing all existing elements.
func (l *List[T]) Clean() {
	// Release list entries if pool is used
	if l.pool != nil {
		for e := l.Front(); e != nil; {
			next := e.next
			e.next, e.prev, e.list = nil, nil, nil
			l.pool.Put(e)
			if next == &l.root {
				break
			}
			e = next
		}
	}
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}
