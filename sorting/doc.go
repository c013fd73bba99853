// Package sorting provides the six classic comparison sorts — Bubble,
// Selection, Insertion, Merge, Quick and Heap — over any slice, driven by
// an injected strict-weak-order predicate, plus an IsSorted checker.
//
// What
//
//   - Each algorithm rearranges the caller's slice in place so adjacent
//     elements satisfy !less(data[i+1], data[i]); Merge additionally uses
//     one O(n) auxiliary buffer.
//   - NaturalOrder and Descending supply ready-made predicates for
//     cmp.Ordered element types; Reverse flips any predicate.
//   - IsSorted verifies the ordering in a single O(n) pass.
//
// Why
//
//   - The canonical algorithm family for teaching complexity trade-offs:
//     quadratic vs linearithmic, stable vs unstable, in-place vs buffered.
//   - A predicate-parameterized surface sorts anything — structs by field,
//     numbers descending, strings by length — without adapters.
//
// Algorithm matrix
//
//	Algorithm  | Time                    | Extra space  | Stable
//	-----------|-------------------------|--------------|-------
//	Bubble     | O(n²), O(n) best        | O(1)         | yes
//	Selection  | O(n²)                   | O(1)         | no
//	Insertion  | O(n²), O(n) best        | O(1)         | yes
//	Merge      | O(n log n)              | O(n)         | yes
//	Quick      | O(n log n) avg, O(n²) worst | O(log n) stack | no
//	Heap       | O(n log n)              | O(1)         | no
//
// Contract
//
//	less must be a strict weak order: irreflexive, asymmetric, transitive.
//	Supplying anything else (or a nil predicate) is undefined behavior —
//	no detection is attempted. For any valid predicate and finite slice
//	no algorithm fails: the result is always a permutation of the input.
//	Empty and single-element slices are no-ops.
//
// Concurrency
//
//	The functions are stateless; sorting the same slice from two
//	goroutines at once is a caller bug, as with any shared mutation.
//
// Usage
//
//	data := []int{64, 34, 25, 12, 22, 11, 90, 45}
//	sorting.Quick(data, sorting.NaturalOrder[int]())
//	sorting.IsSorted(data, sorting.NaturalOrder[int]()) // true
//
//	// descending, via either helper:
//	sorting.Merge(data, sorting.Descending[int]())
//	sorting.Heap(data, sorting.Reverse(sorting.NaturalOrder[int]()))
package sorting
