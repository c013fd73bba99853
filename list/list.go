package list

import (
	"fmt"
	"iter"
	"strings"
)

// Len reports the number of elements in the list.
// Complexity: O(1)
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list holds no elements.
// Complexity: O(1)
func (l *List[T]) Empty() bool { return l.size == 0 }

// PushFront prepends v, making it the new first element.
// Complexity: O(1)
func (l *List[T]) PushFront(v T) {
	n := &node[T]{val: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// PushBack appends v, making it the new last element.
// Complexity: O(1)
func (l *List[T]) PushBack(v T) {
	n := &node[T]{val: v}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the first element.
// Returns ErrEmptyList if the list is empty.
// Complexity: O(1)
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.size--

	return n.val, nil
}

// PopBack removes and returns the last element.
// Returns ErrEmptyList if the list is empty.
// Complexity: O(n) — the predecessor of the tail must be found by walking.
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}
	old := l.tail
	if l.head == l.tail {
		l.head, l.tail = nil, nil
	} else {
		cur := l.head
		for cur.next != l.tail {
			cur = cur.next
		}
		cur.next = nil
		l.tail = cur
	}
	l.size--

	return old.val, nil
}

// Front returns the first element without removing it.
// Returns ErrEmptyList if the list is empty.
// Complexity: O(1)
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.head.val, nil
}

// Back returns the last element without removing it.
// Returns ErrEmptyList if the list is empty.
// Complexity: O(1)
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmptyList
	}

	return l.tail.val, nil
}

// At returns the element at index i (0-based).
// Returns ErrIndexOutOfBounds unless 0 ≤ i < Len().
// Complexity: O(i)
func (l *List[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, l.size)
	}

	return l.nodeAt(i).val, nil
}

// Set overwrites the element at index i with v.
// Returns ErrIndexOutOfBounds unless 0 ≤ i < Len().
// Complexity: O(i)
func (l *List[T]) Set(i int, v T) error {
	if i < 0 || i >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, l.size)
	}
	l.nodeAt(i).val = v

	return nil
}

// Insert places v at index i, shifting the suffix right; i == Len()
// appends. Returns ErrIndexOutOfBounds unless 0 ≤ i ≤ Len().
// Complexity: O(i)
func (l *List[T]) Insert(i int, v T) error {
	switch {
	case i < 0 || i > l.size:
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, l.size)
	case i == 0:
		l.PushFront(v)
	case i == l.size:
		l.PushBack(v)
	default:
		prev := l.nodeAt(i - 1)
		prev.next = &node[T]{val: v, next: prev.next}
		l.size++
	}

	return nil
}

// Erase removes the element at index i, shifting the suffix left.
// Returns ErrIndexOutOfBounds unless 0 ≤ i < Len().
// Complexity: O(i)
func (l *List[T]) Erase(i int) error {
	if i < 0 || i >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfBounds, i, l.size)
	}
	if i == 0 {
		_, _ = l.PopFront()
		return nil
	}
	prev := l.nodeAt(i - 1)
	gone := prev.next
	prev.next = gone.next
	if gone == l.tail {
		l.tail = prev
	}
	l.size--

	return nil
}

// Clear removes every element, leaving an empty, reusable list.
// Complexity: O(1) — the whole chain is released at once.
func (l *List[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}

// Reverse relinks the chain in place so elements appear in the opposite
// order; head and tail swap roles. Applying Reverse twice restores the
// original order.
// Complexity: O(n)
func (l *List[T]) Reverse() {
	var prev *node[T]
	cur := l.head
	l.tail = l.head
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	l.head = prev
}

// Contains reports whether any element equals v.
// Complexity: O(n)
func (l *List[T]) Contains(v T) bool {
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.val == v {
			return true
		}
	}

	return false
}

// Find returns the first element satisfying pred, scanning head→tail.
// The second result is false when no element matches.
// Complexity: O(n)
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if pred(cur.val) {
			return cur.val, true
		}
	}
	var zero T

	return zero, false
}

// Clone returns a deep copy: new nodes carrying the same values in the
// same order. Mutating either list never affects the other.
// Complexity: O(n)
func (l *List[T]) Clone() *List[T] {
	out := &List[T]{}
	for cur := l.head; cur != nil; cur = cur.next {
		out.PushBack(cur.val)
	}

	return out
}

// All returns a restartable forward-only iterator over the elements,
// head→tail, suitable for range-over-func:
//
//	for v := range l.All() { ... }
//
// The walk is lazy; structurally mutating the list while a walk is active
// is undefined. Complexity: O(n) per full walk.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.val) {
				return
			}
		}
	}
}

// String renders the contents head→tail as "[v0, v1, v2]".
// Complexity: O(n)
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for cur := l.head; cur != nil; cur = cur.next {
		if cur != l.head {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", cur.val)
	}
	b.WriteByte(']')

	return b.String()
}

// nodeAt returns the i-th node; callers must have validated i.
func (l *List[T]) nodeAt(i int) *node[T] {
	cur := l.head
	for ; i > 0; i-- {
		cur = cur.next
	}

	return cur
}
