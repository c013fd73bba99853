package sorting

// Heap — Heap Sort
//
// Builds a max-heap (under less) over the slice by sifting down from the
// last internal node, then repeatedly swaps the root maximum to the end
// of the shrinking heap and restores the heap property. Sift-down is
// iterative, so no recursion depth is ever consumed. Root extraction
// teleports elements across the slice, so the sort is not stable.
//
// Time: O(n log n) always. Extra space: O(1). Stable: no.
func Heap[T any](data []T, less Less[T]) {
	n := len(data)
	// heapify: sift down every internal node, bottom-up
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, i, n, less)
	}
	// extract: move the max to the end, shrink the heap, restore
	for end := n - 1; end > 0; end-- {
		data[0], data[end] = data[end], data[0]
		siftDown(data, 0, end, less)
	}
}

// siftDown restores the max-heap property for the subtree rooted at root
// within data[:size].
func siftDown[T any](data []T, root, size int, less Less[T]) {
	for {
		child := 2*root + 1
		if child >= size {
			return
		}
		if child+1 < size && less(data[child], data[child+1]) {
			child++
		}
		if !less(data[root], data[child]) {
			return
		}
		data[root], data[child] = data[child], data[root]
		root = child
	}
}
