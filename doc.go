// Package dskit is an in-memory playground of classic data structures and
// algorithms — a generic singly linked list, a binary search tree, and the
// six textbook sorting algorithms, each parameterized over an element type
// and an ordering relation.
//
// 🚀 What is dskit?
//
//	A small, deterministic, zero-I/O library that brings together:
//		• list/    — generic singly linked list: O(1) push front/back,
//		             positional insert/erase, reversal, lazy forward iteration
//		• bst/     — generic unbalanced binary search tree: insert, delete,
//		             min/max, height, validation, four traversal orders
//		• sorting/ — Bubble, Selection, Insertion, Merge, Quick and Heap sort
//		             over any slice, driven by an injected comparison predicate
//
// ✨ Why choose dskit?
//
//   - Beginner-friendly — minimal API, clear, intuitive naming
//   - Explicit contracts — sentinel errors instead of panics, comma-ok
//     instead of nulls, documented complexity on every operation
//   - Pure Go — no cgo, no hidden deps, no goroutines
//   - Honest about limits — unbalanced tree, no thread-safety promises:
//     callers own their synchronization
//
// None of the containers are safe for concurrent mutation; guard shared
// instances with your own locking. Iterators hold non-owning views and are
// invalidated by any structural mutation performed after their creation.
//
// Quick ASCII example:
//
//	    50
//	   /  \
//	  30    70      ← bst.Of(50, 30, 70, 20, 40, 60, 80)
//	 / \   / \
//	20 40 60 80       inorder → [20, 30, 40, 50, 60, 70, 80]
//
// Dive into the per-package docs for full usage, complexity tables, and
// error contracts.
//
//	go get github.com/katalvlaran/dskit
package dskit
