package sorting

// merger holds the state shared by every level of one merge sort call.
type merger struct {
	seq  []int
	emit Emitter
	// scratch backs the left/right buffers; sized once to len(seq).
	scratch []int
}

// Merge sorts seq in place with top-down merge sort.
//
// Algorithm Outline:
//  1. A view [offset, offset+n) with n <= 1 is already sorted.
//  2. Split at mid = n/2, sort [offset, offset+mid) and [offset+mid, offset+n).
//  3. Copy both halves out and merge them back from position offset.
//
// Every value written back at offset+k emits Move(src, offset+k, value),
// where src is offset+i for the left half and offset+mid+j for the right.
// Writes whose source is the destination change nothing and are skipped.
// Ties take the left element, so the sort is stable.
//
// Complexity: O(n log n) time, O(n) extra memory.
func Merge(seq []int, emit Emitter) {
	if len(seq) <= 1 {
		return
	}
	m := &merger{
		seq:     seq,
		emit:    orNoop(emit),
		scratch: make([]int, len(seq)),
	}
	m.sort(0, len(seq))
}

// sort orders the view [offset, offset+n).
func (m *merger) sort(offset, n int) {
	if n <= 1 {
		return
	}
	mid := n / 2
	m.sort(offset, mid)
	m.sort(offset+mid, n-mid)
	m.merge(offset, mid, n)
}

// merge combines the sorted halves [offset, offset+mid) and
// [offset+mid, offset+n) into one sorted view.
func (m *merger) merge(offset, mid, n int) {
	// Both buffers live in the same region of scratch as the view they copy.
	left := m.scratch[offset : offset+mid]
	right := m.scratch[offset+mid : offset+n]
	copy(left, m.seq[offset:offset+mid])
	copy(right, m.seq[offset+mid:offset+n])

	i, j := 0, 0
	for k := 0; k < n; k++ {
		var v, src int
		if j >= len(right) || (i < len(left) && left[i] <= right[j]) {
			v, src = left[i], offset+i
			i++
		} else {
			v, src = right[j], offset+mid+j
			j++
		}
		dst := offset + k
		m.seq[dst] = v
		if src != dst {
			m.emit(Operation{Kind: Move, A: src, B: dst, Value: v})
		}
	}
}
