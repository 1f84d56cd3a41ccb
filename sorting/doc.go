// Package sorting is an instrumented sorting engine: classic in-place sorts
// over []int that report every structurally meaningful step to a
// caller-supplied Emitter, so a renderer can animate the sort while it runs.
//
// What
//
//   - Five algorithms, one selector each:
//   - bubble_sort     Bubble, adjacent swaps, n full passes
//   - insertion_sort  Insertion, neighbor swaps per inversion
//   - selection_sort  Selection, at most one swap per position
//   - merge_sort      Merge, top-down with directed moves
//   - quick_sort      Quick, Lomuto partition with swaps
//   - Sort dispatches a selector to its algorithm; MustSort panics instead of
//     returning ErrUnsupportedAlgorithm.
//   - Emitters: Pairs adapts a plain (a, b) callback, Tee fans out to several.
//
// Operations
//
//	Every Operation carries a Kind:
//	  Swap  A and B exchanged values (bubble, insertion, selection, quick).
//	  Move  Value was read from A and written to B (merge).
//	Replaying a merge trace as swaps does not reproduce the sorted sequence;
//	renderers must branch on Kind (see trace.Replay).
//	A and B are always distinct, in-bounds positions of the caller's slice:
//	the recursive algorithms translate view-local indices by their offset
//	before emitting.
//
// Determinism
//
//	Every call is a pure function of (selector, input) plus its emitter calls.
//	The emitter runs synchronously, in exactly the order operations happen.
//	There is no buffering, goroutine, cancellation or global mutable state.
//
// Complexity (n = len(seq))
//
//   - Bubble:    O(n²) time, O(1) memory
//   - Insertion: O(n²) time, O(1) memory
//   - Selection: O(n²) time, O(1) memory
//   - Merge:     O(n log n) time, O(n) memory
//   - Quick:     O(n log n) average, O(n²) worst time; O(n) worst stack depth
//
// Usage
//
//	seq := []int{5, 3, 8, 1}
//	err := sorting.Sort(sorting.BubbleSort, seq, func(op sorting.Operation) {
//	    fmt.Println(op) // swap(0,1), swap(2,3), ...
//	})
//	if errors.Is(err, sorting.ErrUnsupportedAlgorithm) {
//	    // reject the selector; seq is untouched
//	}
//
// Errors
//
//   - ErrUnsupportedAlgorithm if the selector is not one of Algorithms().
package sorting
