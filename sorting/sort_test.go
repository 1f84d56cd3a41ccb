package sorting_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/sortviz/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSort_AllAlgorithmsSort covers the sortedness, multiset and replay
// properties for every algorithm over edge cases and random inputs.
func TestSort_AllAlgorithmsSort(t *testing.T) {
	inputs := append(append([][]int(nil), edgeInputs...), randomInputs(42, 200, 24)...)
	for _, alg := range sorting.Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			for _, in := range inputs {
				out, ops := run(t, alg, in)
				want := sortedCopy(in)
				require.Equal(t, len(in), len(out), "length changed for %v", in)
				if len(in) == 0 {
					require.Empty(t, out)
				} else {
					require.Equal(t, want, out, "not sorted: %v", in)
				}
				for _, op := range ops {
					require.NotEqual(t, op.A, op.B, "degenerate operation %v", op)
					require.True(t, op.A >= 0 && op.A < len(in) && op.B >= 0 && op.B < len(in),
						"operation %v out of range for len %d", op, len(in))
				}
				if len(in) > 0 {
					require.Equal(t, want, replay(in, ops), "replay mismatch for %v", in)
				}
			}
		})
	}
}

// TestSort_SwapLawAtEmission checks that every Swap reported by the
// swap-based algorithms was already applied when the emitter ran.
func TestSort_SwapLawAtEmission(t *testing.T) {
	swapAlgs := []sorting.Algorithm{
		sorting.BubbleSort, sorting.InsertionSort, sorting.SelectionSort, sorting.QuickSort,
	}
	for _, alg := range swapAlgs {
		for _, in := range randomInputs(7, 60, 16) {
			seq := append([]int(nil), in...)
			shadow := append([]int(nil), in...)
			err := sorting.Sort(alg, seq, func(op sorting.Operation) {
				require.Equal(t, sorting.Swap, op.Kind, "%s emitted %v", alg, op)
				shadow[op.A], shadow[op.B] = shadow[op.B], shadow[op.A]
				require.Equal(t, shadow, seq, "%s: swap %v not mirrored", alg, op)
			})
			require.NoError(t, err)
		}
	}
}

// TestSort_AlreadySorted expects no operations at all on [1,2,3], [] and [7].
func TestSort_AlreadySorted(t *testing.T) {
	for _, alg := range sorting.Algorithms() {
		for _, in := range [][]int{{1, 2, 3}, {}, {7}} {
			out, ops := run(t, alg, in)
			assert.Equal(t, in, out, "%s on %v", alg, in)
			assert.Empty(t, ops, "%s on %v", alg, in)
		}
	}
}

// TestSort_Duplicates runs every algorithm over [4,4,4].
func TestSort_Duplicates(t *testing.T) {
	want := map[sorting.Algorithm]int{
		sorting.BubbleSort:    0,
		sorting.InsertionSort: 0,
		sorting.SelectionSort: 0,
		sorting.MergeSort:     0,
		sorting.QuickSort:     2, // strict < keeps the boundary at 0
	}
	for alg, count := range want {
		out, ops := run(t, alg, []int{4, 4, 4})
		assert.Equal(t, []int{4, 4, 4}, out, string(alg))
		assert.Len(t, ops, count, string(alg))
	}
}

// TestSort_Unsupported ensures a bad selector fails before any mutation.
func TestSort_Unsupported(t *testing.T) {
	seq := []int{3, 1, 2}
	called := false
	for _, name := range []string{"", "heap_sort", "Bubble_Sort", "bubble"} {
		err := sorting.Sort(sorting.Algorithm(name), seq, func(sorting.Operation) { called = true })
		require.Error(t, err)
		assert.True(t, errors.Is(err, sorting.ErrUnsupportedAlgorithm), "selector %q", name)
	}
	assert.Equal(t, []int{3, 1, 2}, seq)
	assert.False(t, called, "emitter must not fire on failure")
}

// TestMustSort panics on an unsupported selector and sorts otherwise.
func TestMustSort(t *testing.T) {
	seq := []int{2, 1}
	assert.NotPanics(t, func() { sorting.MustSort(sorting.QuickSort, seq, nil) })
	assert.Equal(t, []int{1, 2}, seq)
	assert.Panics(t, func() { sorting.MustSort("shell_sort", seq, nil) })
}

// TestParseAlgorithm covers valid tokens, whitespace and rejects.
func TestParseAlgorithm(t *testing.T) {
	for _, alg := range sorting.Algorithms() {
		got, err := sorting.ParseAlgorithm(string(alg))
		require.NoError(t, err)
		assert.Equal(t, alg, got)
		assert.True(t, got.Valid())
	}

	got, err := sorting.ParseAlgorithm("  merge_sort\n")
	require.NoError(t, err)
	assert.Equal(t, sorting.MergeSort, got)

	_, err = sorting.ParseAlgorithm("bogo_sort")
	assert.ErrorIs(t, err, sorting.ErrUnsupportedAlgorithm)
	assert.Contains(t, err.Error(), `"bogo_sort"`)
	assert.False(t, sorting.Algorithm("bogo_sort").Valid())
}

// TestEmitters covers Pairs, Tee and nil handling.
func TestEmitters(t *testing.T) {
	var pairs [][2]int
	var kinds []sorting.Kind
	emit := sorting.Tee(
		sorting.Pairs(func(a, b int) { pairs = append(pairs, [2]int{a, b}) }),
		nil,
		func(op sorting.Operation) { kinds = append(kinds, op.Kind) },
	)
	require.NoError(t, sorting.Sort(sorting.MergeSort, []int{2, 1}, emit))
	assert.Equal(t, [][2]int{{1, 0}, {0, 1}}, pairs)
	assert.Equal(t, []sorting.Kind{sorting.Move, sorting.Move}, kinds)

	assert.NotPanics(t, func() { sorting.Pairs(nil)(sorting.Operation{}) })
	assert.NotPanics(t, func() { sorting.Tee()(sorting.Operation{}) })
}

// TestOperation_String checks the textual forms used in logs and examples.
func TestOperation_String(t *testing.T) {
	assert.Equal(t, "swap(0,1)", sorting.Operation{Kind: sorting.Swap, A: 0, B: 1}.String())
	assert.Equal(t, "move(2->0)=7", sorting.Operation{Kind: sorting.Move, A: 2, B: 0, Value: 7}.String())
	assert.Equal(t, "kind(9)", sorting.Kind(9).String())
}
