package sorting

// Quick sorts seq in place with recursive Lomuto-partition quicksort.
//
// Each view [offset, offset+n) uses its last element as pivot. Elements
// strictly smaller than the pivot are swapped to the front, then the pivot is
// swapped onto the boundary. Every swap emits Swap with global indices;
// swaps of a position with itself are neither performed nor emitted.
//
// Complexity: O(n log n) average, O(n²) on sorted-descending or constant
// input; O(n) worst-case recursion depth.
func Quick(seq []int, emit Emitter) {
	quick(seq, 0, len(seq), orNoop(emit))
}

// quick sorts the view [offset, offset+n).
func quick(seq []int, offset, n int, emit Emitter) {
	if n <= 1 {
		return
	}
	p := partition(seq, offset, n, emit)
	quick(seq, offset, p, emit)
	if rest := n - p - 1; rest > 1 {
		quick(seq, offset+p+1, rest, emit)
	}
}

// partition places the pivot seq[offset+n-1] at its final position and
// returns that position relative to offset.
func partition(seq []int, offset, n int, emit Emitter) int {
	pivot := seq[offset+n-1]
	i := 0
	for j := 0; j < n-1; j++ {
		if seq[offset+j] < pivot {
			if i != j {
				swap(seq, offset+i, offset+j, emit)
			}
			i++
		}
	}
	if i != n-1 {
		swap(seq, offset+i, offset+n-1, emit)
	}
	return i
}
