package bst

import (
	"fmt"
	"strings"
)

// InOrder returns all values in ascending comparator order
// (left subtree, node, right subtree), fully materialized.
// Complexity: O(n) time, O(n) output + O(height) stack slice.
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	var stack []*node[T]
	cur := t.root
	for cur != nil || len(stack) > 0 {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur.val)
		cur = cur.right
	}

	return out
}

// PreOrder returns all values in node, left subtree, right subtree order,
// fully materialized.
// Complexity: O(n)
func (t *Tree[T]) PreOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.val)
		// right first so left pops first
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}

	return out
}

// PostOrder returns all values in left subtree, right subtree, node
// order, fully materialized. Implemented as a reversed node-right-left
// walk over an explicit stack.
// Complexity: O(n)
func (t *Tree[T]) PostOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.val)
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	// out currently holds node-right-left; reverse into left-right-node
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// LevelOrder returns all values breadth-first, top level to bottom, left
// to right within a level, using an explicit FIFO queue.
// Complexity: O(n)
func (t *Tree[T]) LevelOrder() []T {
	out := make([]T, 0, t.size)
	if t.root == nil {
		return out
	}
	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.val)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}

	return out
}

// String renders the in-order contents as "[v0, v1, v2]".
// Complexity: O(n)
func (t *Tree[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range t.InOrder() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')

	return b.String()
}
