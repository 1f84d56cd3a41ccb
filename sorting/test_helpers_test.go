package sorting_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/sortviz/sorting"
	"github.com/stretchr/testify/require"
)

// run sorts a copy of in with alg and returns the result and the trace.
func run(t *testing.T, alg sorting.Algorithm, in []int) ([]int, []sorting.Operation) {
	t.Helper()
	seq := append(in[:0:0], in...)
	var ops []sorting.Operation
	err := sorting.Sort(alg, seq, func(op sorting.Operation) {
		ops = append(ops, op)
	})
	require.NoError(t, err)
	return seq, ops
}

// sortedCopy returns an ascending copy of in.
func sortedCopy(in []int) []int {
	out := append(in[:0:0], in...)
	sort.Ints(out)
	return out
}

// replay applies ops to a copy of in, honoring each operation's Kind.
func replay(in []int, ops []sorting.Operation) []int {
	out := append(in[:0:0], in...)
	for _, op := range ops {
		switch op.Kind {
		case sorting.Swap:
			out[op.A], out[op.B] = out[op.B], out[op.A]
		case sorting.Move:
			out[op.B] = op.Value
		}
	}
	return out
}

// replayAsSwaps treats every operation as a swap, ignoring Kind.
func replayAsSwaps(in []int, ops []sorting.Operation) []int {
	out := append(in[:0:0], in...)
	for _, op := range ops {
		out[op.A], out[op.B] = out[op.B], out[op.A]
	}
	return out
}

// swaps builds a Swap trace from index pairs.
func swaps(pairs ...[2]int) []sorting.Operation {
	ops := make([]sorting.Operation, len(pairs))
	for i, p := range pairs {
		ops[i] = sorting.Operation{Kind: sorting.Swap, A: p[0], B: p[1]}
	}
	return ops
}

// move is shorthand for a Move operation.
func move(src, dst, v int) sorting.Operation {
	return sorting.Operation{Kind: sorting.Move, A: src, B: dst, Value: v}
}

// randomInputs returns count deterministic sequences of length [0, maxLen].
func randomInputs(seed int64, count, maxLen int) [][]int {
	rnd := rand.New(rand.NewSource(seed))
	out := make([][]int, count)
	for i := range out {
		n := rnd.Intn(maxLen + 1)
		s := make([]int, n)
		for j := range s {
			s[j] = rnd.Intn(41) - 10 // small range forces duplicates and negatives
		}
		out[i] = s
	}
	return out
}

// edgeInputs are the fixed corner cases every algorithm must handle.
var edgeInputs = [][]int{
	nil,
	{},
	{7},
	{1, 2},
	{2, 1},
	{1, 2, 3},
	{3, 2, 1},
	{4, 4, 4},
	{5, 3, 8, 1},
	{9, 1, 8, 2, 7, 3},
	{-3, 0, -3, 12, 0, -7},
}
