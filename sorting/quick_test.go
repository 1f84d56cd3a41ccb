package sorting_test

import (
	"testing"

	"github.com/katalvlaran/sortviz/sorting"
	"github.com/stretchr/testify/assert"
)

// TestQuick_Trace checks exact swaps, including offset translation in the
// recursive calls.
func TestQuick_Trace(t *testing.T) {
	out, ops := run(t, sorting.QuickSort, []int{5, 3, 8, 1})
	assert.Equal(t, []int{1, 3, 5, 8}, out)
	assert.Equal(t, swaps([2]int{0, 3}, [2]int{2, 3}), ops)

	out, ops = run(t, sorting.QuickSort, []int{9, 1, 8, 2, 7, 3})
	assert.Equal(t, []int{1, 2, 3, 7, 8, 9}, out)
	assert.Equal(t, swaps(
		[2]int{0, 1}, [2]int{1, 3}, [2]int{2, 5}, [2]int{3, 4}, [2]int{4, 5},
	), ops)
}

// TestQuick_PivotPlacement pins down when the final pivot swap is emitted:
// never when the pivot is already at the boundary, always otherwise, even
// between equal values.
func TestQuick_PivotPlacement(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []sorting.Operation
	}{
		{"sorted", []int{1, 2, 3}, nil},
		{"equal values", []int{4, 4, 4}, swaps([2]int{0, 2}, [2]int{1, 2})},
		{"pair", []int{2, 1}, swaps([2]int{0, 1})},
		{"pivot smallest", []int{3, 2, 1}, swaps([2]int{0, 2})},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, ops := run(t, sorting.QuickSort, tc.in)
			assert.Equal(t, sortedCopy(tc.in), out)
			assert.Equal(t, tc.want, ops)
		})
	}
}
