package sorting

// Merge — Merge Sort
//
// Top-down recursive halving followed by a linear merge of the sorted
// halves through a single auxiliary buffer allocated once up front. The
// merge takes from the left half unless the right element is strictly
// less, so equal elements keep their relative order — the sort is stable.
//
// Time: O(n log n) always. Extra space: O(n) buffer + O(log n) stack.
// Stable: yes.
func Merge[T any](data []T, less Less[T]) {
	if len(data) < 2 {
		return
	}
	buf := make([]T, len(data))
	mergeSort(data, buf, less)
}

// mergeSort sorts data in place, using buf (same length) as scratch.
func mergeSort[T any](data, buf []T, less Less[T]) {
	if len(data) < 2 {
		return
	}
	mid := len(data) / 2
	mergeSort(data[:mid], buf[:mid], less)
	mergeSort(data[mid:], buf[mid:], less)
	mergeHalves(data, mid, buf, less)
}

// mergeHalves merges the sorted halves data[:mid] and data[mid:] back
// into data, staging through buf. Left wins ties.
func mergeHalves[T any](data []T, mid int, buf []T, less Less[T]) {
	copy(buf, data)
	i, j := 0, mid
	for k := range data {
		switch {
		case i >= mid:
			data[k] = buf[j]
			j++
		case j >= len(data):
			data[k] = buf[i]
			i++
		case less(buf[j], buf[i]):
			data[k] = buf[j]
			j++
		default:
			data[k] = buf[i]
			i++
		}
	}
}
