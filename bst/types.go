// Package bst implements a generic unbalanced binary search tree.
//
// This file declares the Tree and node types and the New/NewFunc/Of
// constructors.
package bst

import "cmp"

// node is a tree node owning at most two child subtrees.
type node[T any] struct {
	val   T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree of distinct T values, ordered by the
// comparator supplied at construction.
//
// The zero value is NOT ready to use; construct trees with New, NewFunc
// or Of. Tree is not safe for concurrent use.
type Tree[T any] struct {
	root    *node[T]
	size    int
	compare func(a, b T) int
}

// New creates an empty Tree ordered by the natural ascending order of T.
// Complexity: O(1)
func New[T cmp.Ordered]() *Tree[T] {
	return &Tree[T]{compare: cmp.Compare[T]}
}

// NewFunc creates an empty Tree ordered by compare, which must implement
// a total order: negative when a sorts before b, zero when equal,
// positive when a sorts after b.
// Complexity: O(1)
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// Of creates a Tree seeded with vals, inserting them in the given order
// under the natural ascending order of T. The resulting shape is
// order-dependent, since the tree never rebalances.
// Complexity: O(len(vals) · height)
func Of[T cmp.Ordered](vals ...T) *Tree[T] {
	t := New[T]()
	for _, v := range vals {
		t.Insert(v)
	}

	return t
}
