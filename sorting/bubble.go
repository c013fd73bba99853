package sorting

// Bubble — Bubble Sort
//
// Repeatedly sweeps the slice, swapping adjacent out-of-order pairs; each
// pass floats the largest unsorted element to the end. A swap-free pass
// proves the slice sorted and exits early, giving the O(n) best case on
// already-sorted input. Equal elements are never swapped, so the sort is
// stable.
//
// Time: O(n²), O(n) best. Extra space: O(1). Stable: yes.
func Bubble[T any](data []T, less Less[T]) {
	n := len(data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if less(data[j+1], data[j]) {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}
