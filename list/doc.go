// Package list provides a generic singly linked list with O(1) access to
// both ends, positional insert/erase, in-place reversal, and lazy forward
// iteration.
//
// What
//
//   - List[T] owns a chain of single-link nodes plus a tail reference:
//   - PushFront / PushBack append in O(1)
//   - PopFront is O(1); PopBack is O(n) (no backward links to walk)
//   - At / Set / Insert / Erase address elements by index in O(i)
//   - Reverse relinks the whole chain in place in O(n)
//   - Contains scans by equality; Find scans by predicate
//   - Clone produces a fully independent deep copy
//   - All() yields elements head→tail as a restartable iter.Seq
//
// Why
//
//   - Constant-time insertion at either end without slice reallocation.
//   - The canonical teaching structure for ownership chains and pointer
//     surgery (reversal, positional splicing, tail fix-up).
//
// Errors
//
//   - ErrEmptyList         — Front/Back/PopFront/PopBack on an empty list.
//   - ErrIndexOutOfBounds  — index outside the valid range of At/Set/
//     Insert/Erase.
//
// Failed operations leave the list exactly as it was; no partial mutation
// is ever observable.
//
// Concurrency & iteration
//
//	List is not safe for concurrent use; callers own their synchronization.
//	A running All() walk holds non-owning views into the chain — any
//	structural mutation (push, pop, insert, erase, reverse, clear) made
//	while a walk is active leaves the walk undefined.
//
// Complexity (n = Len())
//
//   - PushFront/PushBack/PopFront/Front/Back: O(1)
//   - PopBack: O(n)
//   - At/Set/Insert/Erase: O(index)
//   - Reverse/Contains/Find/Clone/String: O(n)
//
// Usage
//
//	l := list.New(10, 20, 30)
//	l.PushFront(5)
//	if err := l.Insert(2, 15); err != nil { /* ErrIndexOutOfBounds */ }
//	for v := range l.All() {
//		fmt.Println(v)
//	}
//	fmt.Println(l) // [5, 10, 15, 20, 30]
package list
