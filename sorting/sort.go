package sorting

import "fmt"

// algorithmFunc is the shared signature of every instrumented algorithm.
type algorithmFunc func(seq []int, emit Emitter)

// registry maps each selector to its implementation.
var registry = map[Algorithm]algorithmFunc{
	BubbleSort:    Bubble,
	InsertionSort: Insertion,
	SelectionSort: Selection,
	MergeSort:     Merge,
	QuickSort:     Quick,
}

// Sort runs the algorithm named by alg over seq, in place, invoking emit
// synchronously for every operation. A nil emit is allowed.
//
// Returns ErrUnsupportedAlgorithm (wrapped with the selector) if alg is not
// one of Algorithms(); in that case seq is not touched and emit never fires.
func Sort(alg Algorithm, seq []int, emit Emitter) error {
	fn, ok := registry[alg]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(alg))
	}
	fn(seq, emit)
	return nil
}

// MustSort is like Sort but panics on an unsupported selector.
func MustSort(alg Algorithm, seq []int, emit Emitter) {
	if err := Sort(alg, seq, emit); err != nil {
		panic(err)
	}
}
