package sorting

// Insertion — Insertion Sort
//
// Extends a sorted prefix one element at a time, shifting larger prefix
// elements right until the new element's slot is found. Shifts stop at
// the first non-greater element, preserving the relative order of equals
// — the sort is stable. Nearly-sorted input approaches the O(n) best
// case, which makes Insertion the standard finisher for small or almost
// ordered ranges.
//
// Time: O(n²), O(n) best. Extra space: O(1). Stable: yes.
func Insertion[T any](data []T, less Less[T]) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}
