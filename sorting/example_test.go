package sorting_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sortviz/sorting"
)

// ExampleSort_bubble prints every swap bubble sort performs on [5 3 8 1].
func ExampleSort_bubble() {
	seq := []int{5, 3, 8, 1}
	err := sorting.Sort(sorting.BubbleSort, seq, func(op sorting.Operation) {
		fmt.Println(op)
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(seq)
	// Output:
	// swap(0,1)
	// swap(2,3)
	// swap(1,2)
	// swap(0,1)
	// [1 3 5 8]
}

// ExampleSort_merge shows the directed moves of merge sort, with global
// indices even inside the right half.
func ExampleSort_merge() {
	seq := []int{3, 1, 2}
	_ = sorting.Sort(sorting.MergeSort, seq, func(op sorting.Operation) {
		fmt.Println(op)
	})
	fmt.Println(seq)
	// Output:
	// move(1->0)=1
	// move(2->1)=2
	// move(0->2)=3
	// [1 2 3]
}

// ExampleSort_unsupported shows the dispatcher rejecting a selector.
func ExampleSort_unsupported() {
	seq := []int{2, 1}
	err := sorting.Sort("heap_sort", seq, nil)
	fmt.Println(errors.Is(err, sorting.ErrUnsupportedAlgorithm), seq)
	// Output:
	// true [2 1]
}

// ExamplePairs adapts a plain index callback, as a swap-only renderer would.
func ExamplePairs() {
	seq := []int{9, 1, 8}
	emit := sorting.Pairs(func(a, b int) { fmt.Printf("(%d,%d) ", a, b) })
	sorting.Selection(seq, emit)
	fmt.Println(seq)
	// Output:
	// (0,1) (1,2) [1 8 9]
}
