package sorting

// Quick — Quick Sort
//
// Lomuto partition around the last element: everything strictly less than
// the pivot is swept to the front, the pivot lands between the partitions,
// and both sides are sorted recursively. Random input averages O(n log n);
// sorted or equal-heavy input degrades to O(n²). Partition swaps reorder
// equal elements, so the sort is not stable.
//
// Time: O(n log n) average, O(n²) worst. Extra space: O(log n) stack
// expected. Stable: no.
func Quick[T any](data []T, less Less[T]) {
	if len(data) < 2 {
		return
	}
	pi := partition(data, less)
	Quick(data[:pi], less)
	Quick(data[pi+1:], less)
}

// partition arranges data around data[len-1] (Lomuto) and returns the
// pivot's final index.
func partition[T any](data []T, less Less[T]) int {
	high := len(data) - 1
	pivot := data[high]
	i := 0
	for j := 0; j < high; j++ {
		if less(data[j], pivot) {
			data[i], data[j] = data[j], data[i]
			i++
		}
	}
	data[i], data[high] = data[high], data[i]

	return i
}
