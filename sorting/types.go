// Package sorting defines the operation trace types, emitter contract,
// algorithm selectors and sentinel errors of the instrumented sorting engine.
package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for sorting.
var (
	// ErrUnsupportedAlgorithm is returned by Sort when the selector does not
	// name one of the enumerated algorithms. The sequence is left untouched.
	ErrUnsupportedAlgorithm = errors.New("sorting: unsupported algorithm")
)

// Kind tells a renderer how to apply an Operation.
//
//   - Swap: positions A and B exchanged their values.
//   - Move: Value was read from source A and written into destination B;
//     A keeps whatever it held until a later operation overwrites it.
type Kind int

const (
	// Swap is emitted by bubble, insertion, selection and quick sort.
	Swap Kind = iota

	// Move is emitted by merge sort for every write into the merged view.
	Move
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Swap:
		return "swap"
	case Move:
		return "move"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Operation is one visually significant change at two positions of the
// sequence being sorted. A and B are always distinct, valid indices of the
// caller's original sequence (offsets are already applied).
//
// Value is only meaningful for Move: merge sort reads from temporary buffers,
// so the source position may already be overwritten when the write happens.
type Operation struct {
	Kind  Kind
	A     int
	B     int
	Value int
}

// String renders the operation as "swap(0,1)" or "move(2->0)=7".
func (op Operation) String() string {
	if op.Kind == Move {
		return fmt.Sprintf("move(%d->%d)=%d", op.A, op.B, op.Value)
	}
	return fmt.Sprintf("%s(%d,%d)", op.Kind, op.A, op.B)
}

// Emitter receives operations synchronously, in the exact order the
// algorithm performs them. It must not retain or mutate the sequence.
type Emitter func(op Operation)

// noop is the emitter used when the caller passes nil.
func noop(Operation) {}

// orNoop returns emit, or the no-op emitter if emit is nil.
func orNoop(emit Emitter) Emitter {
	if emit == nil {
		return noop
	}
	return emit
}

// Pairs adapts a two-argument index callback to an Emitter. The kind and
// value are dropped; this is the contract a swap-only renderer expects.
func Pairs(fn func(a, b int)) Emitter {
	if fn == nil {
		return noop
	}
	return func(op Operation) {
		fn(op.A, op.B)
	}
}

// Tee returns an Emitter that forwards each operation to every non-nil
// emitter, in argument order.
func Tee(emitters ...Emitter) Emitter {
	sinks := make([]Emitter, 0, len(emitters))
	for _, e := range emitters {
		if e != nil {
			sinks = append(sinks, e)
		}
	}
	return func(op Operation) {
		for _, e := range sinks {
			e(op)
		}
	}
}

// Algorithm selects one of the instrumented sorting algorithms.
type Algorithm string

// Supported selectors.
const (
	BubbleSort    Algorithm = "bubble_sort"
	InsertionSort Algorithm = "insertion_sort"
	SelectionSort Algorithm = "selection_sort"
	MergeSort     Algorithm = "merge_sort"
	QuickSort     Algorithm = "quick_sort"
)

// Algorithms returns every supported selector in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{BubbleSort, InsertionSort, SelectionSort, MergeSort, QuickSort}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	_, ok := registry[a]
	return ok
}

// ParseAlgorithm converts a selector token into an Algorithm.
// Surrounding whitespace is ignored; matching is exact otherwise.
// Returns ErrUnsupportedAlgorithm for any other token.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(strings.TrimSpace(s))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
	return a, nil
}
