package sorting

// swap exchanges seq[a] and seq[b] and reports it to emit.
func swap(seq []int, a, b int, emit Emitter) {
	seq[a], seq[b] = seq[b], seq[a]
	emit(Operation{Kind: Swap, A: a, B: b})
}

// Bubble sorts seq in place with classic adjacent-comparison bubble sort.
//
// Every one of the n outer passes scans the pairs (j, j+1) for j in [0, n-1)
// and swaps out-of-order neighbors, emitting Swap(j, j+1) right after each
// swap. There is no early exit: the pass count is always n.
//
// Complexity: O(n²) comparisons, O(1) extra memory.
func Bubble(seq []int, emit Emitter) {
	emit = orNoop(emit)
	n := len(seq)
	for pass := 0; pass < n; pass++ {
		for j := 0; j < n-1; j++ {
			if seq[j] > seq[j+1] {
				swap(seq, j, j+1, emit)
			}
		}
	}
}

// Insertion sorts seq in place by sinking each element through a chain of
// neighbor swaps, emitting Swap(j-1, j) for every inversion it resolves.
//
// Complexity: O(n²) worst case, O(n) on sorted input, O(1) extra memory.
func Insertion(seq []int, emit Emitter) {
	emit = orNoop(emit)
	for i := 1; i < len(seq); i++ {
		for j := i; j > 0 && seq[j-1] > seq[j]; j-- {
			swap(seq, j-1, j, emit)
		}
	}
}

// Selection sorts seq in place. For each position i it finds the earliest
// minimum of seq[i:] and, when that is not already at i, swaps it into place
// and emits Swap(i, m). At most one operation per position.
//
// Complexity: O(n²) comparisons, at most n-1 swaps.
func Selection(seq []int, emit Emitter) {
	emit = orNoop(emit)
	n := len(seq)
	for i := 0; i < n; i++ {
		m := i
		for j := i + 1; j < n; j++ {
			if seq[j] < seq[m] {
				m = j
			}
		}
		if m != i {
			swap(seq, i, m, emit)
		}
	}
}
