package trace

import (
	"fmt"

	"github.com/katalvlaran/sortviz/sorting"
)

// Replay applies ops in order to a copy of initial and returns the result.
//
//   - Swap: exchange positions A and B.
//   - Move: store op.Value at B; A is left as is.
//
// For any trace produced by sorting.Sort on initial, the result equals the
// sorted sequence. initial is never modified.
//
// Errors:
//   - ErrIndexOutOfRange, ErrSameIndex or ErrUnknownKind, wrapped with the
//     position of the offending operation in ops. Nothing is returned then.
func Replay(initial []int, ops []sorting.Operation) ([]int, error) {
	out := append([]int(nil), initial...)
	for i, op := range ops {
		if err := check(op, len(out)); err != nil {
			return nil, fmt.Errorf("operation %d (%v): %w", i, op, err)
		}
		switch op.Kind {
		case sorting.Swap:
			out[op.A], out[op.B] = out[op.B], out[op.A]
		case sorting.Move:
			out[op.B] = op.Value
		}
	}
	return out, nil
}

// ReplaySwaps applies every operation as a swap, ignoring Kind and Value.
// This is how a swap-only renderer animates a trace: exact for bubble,
// insertion, selection and quick sort, but not for merge sort's moves.
func ReplaySwaps(initial []int, ops []sorting.Operation) ([]int, error) {
	out := append([]int(nil), initial...)
	for i, op := range ops {
		if err := checkIndices(op, len(out)); err != nil {
			return nil, fmt.Errorf("operation %d (%v): %w", i, op, err)
		}
		out[op.A], out[op.B] = out[op.B], out[op.A]
	}
	return out, nil
}

// check validates the kind and both indices of op against a length n.
func check(op sorting.Operation, n int) error {
	if op.Kind != sorting.Swap && op.Kind != sorting.Move {
		return ErrUnknownKind
	}
	return checkIndices(op, n)
}

// checkIndices validates that A and B are distinct positions in [0, n).
func checkIndices(op sorting.Operation, n int) error {
	if op.A < 0 || op.A >= n || op.B < 0 || op.B >= n {
		return fmt.Errorf("%w: len %d", ErrIndexOutOfRange, n)
	}
	if op.A == op.B {
		return ErrSameIndex
	}
	return nil
}
