// Package bst provides a generic, unbalanced binary search tree ordered by
// an injected three-way comparator, with insert/remove/lookup, min/max,
// height, structural validation, and four traversal orders.
//
// What
//
//   - Tree[T] owns a binary tree of distinct values:
//   - Insert descends by comparison and grafts a leaf at the first nil
//     link; inserting a value already present is a no-op
//   - Remove splices leaf and one-child nodes directly; a two-child node
//     receives its in-order successor's value and the successor node is
//     spliced from the right subtree
//   - Contains / Min / Max walk by comparison in O(height)
//   - Height, IsValid, InOrder, PreOrder, PostOrder, LevelOrder inspect
//     the structure without mutating it
//   - All internal walks use explicit stacks and queues — no recursion,
//     so pathological (near-linear) trees cannot overflow the goroutine
//     stack
//
// Why
//
//   - The canonical ordered dictionary: O(height) membership with sorted
//     in-order enumeration for free.
//   - A teaching vehicle for ordering invariants, two-child deletion, and
//     bound-propagating validation.
//
// Ordering
//
//	New[T] uses the natural ascending order of cmp.Ordered types.
//	NewFunc accepts any func(a, b T) int returning <0 / 0 / >0, so any
//	totally ordered element type works. Duplicates (compare == 0) are
//	never stored.
//
// Balance
//
//	The tree does NOT self-balance: shape — and therefore height — depends
//	entirely on insertion order. Sorted input degrades every O(height)
//	operation to O(n). Reach for a balanced structure when adversarial
//	input is possible.
//
// Errors
//
//	None. Remove of an absent value is a no-op (reported via the returned
//	bool), Contains returns false, Min/Max use comma-ok on an empty tree.
//
// Concurrency
//
//	Tree is not safe for concurrent use; callers own their
//	synchronization.
//
// Complexity (n = Len(), h = Height())
//
//   - Insert/Remove/Contains: O(h) — O(log n) balanced, O(n) degenerate
//   - Min/Max: O(h)
//   - Height/IsValid/traversals/String: O(n)
//
// Usage
//
//	t := bst.Of(50, 30, 70, 20, 40, 60, 80)
//	t.Contains(40)        // true
//	min, ok := t.Min()    // 20, true
//	t.Remove(30)
//	fmt.Println(t)        // [20, 40, 50, 60, 70, 80]
package bst
