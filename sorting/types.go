// Package sorting implements classic comparison sorts over slices.
//
// This file declares the Less predicate type, the ready-made orderings,
// and the IsSorted checker.
package sorting

import "cmp"

// Less reports whether a must sort strictly before b. It must implement
// a strict weak order (irreflexive, asymmetric, transitive); violating
// that contract leaves the sort results undefined.
type Less[T any] func(a, b T) bool

// NaturalOrder returns the ascending order of T.
func NaturalOrder[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool { return a < b }
}

// Descending returns the descending order of T.
func Descending[T cmp.Ordered]() Less[T] {
	return func(a, b T) bool { return b < a }
}

// Reverse flips the ordering induced by less.
func Reverse[T any](less Less[T]) Less[T] {
	return func(a, b T) bool { return less(b, a) }
}

// IsSorted reports whether data is in non-descending order under less:
// false exactly when some adjacent pair has less(data[i], data[i-1]).
// Complexity: O(n)
func IsSorted[T any](data []T, less Less[T]) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}

	return true
}
