package sorting

// Selection — Selection Sort
//
// Grows a sorted prefix by repeatedly selecting the minimum (under less)
// of the unsorted suffix and swapping it into place. The long-distance
// swap can reorder equal elements, so the sort is not stable.
//
// Time: O(n²) always. Extra space: O(1). Stable: no.
func Selection[T any](data []T, less Less[T]) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			if less(data[j], data[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			data[i], data[minIdx] = data[minIdx], data[i]
		}
	}
}
