// Package list implements a generic singly linked list.
//
// This file declares the List and node types, sentinel errors, and the
// New constructor.
package list

import "errors"

// Sentinel errors for list operations.
var (
	// ErrEmptyList is returned by Front, Back, PopFront and PopBack when
	// the list holds no elements.
	ErrEmptyList = errors.New("list: list is empty")

	// ErrIndexOutOfBounds is returned when an index falls outside the
	// valid range of the addressed operation.
	ErrIndexOutOfBounds = errors.New("list: index out of bounds")
)

// node is a single link in the chain. Each node is reachable from exactly
// one predecessor (or from the list head), so dropping that link releases
// the node to the garbage collector.
type node[T comparable] struct {
	val  T
	next *node[T]
}

// List is a generic singly linked list of T.
//
// The zero value is NOT ready to use; construct lists with New.
// List is not safe for concurrent use.
type List[T comparable] struct {
	head *node[T]
	tail *node[T] // non-owning shortcut to the last node
	size int
}

// New creates a List seeded with vals, appending them in the given order.
// Complexity: O(len(vals))
func New[T comparable](vals ...T) *List[T] {
	l := &List[T]{}
	for _, v := range vals {
		l.PushBack(v)
	}

	return l
}
