// Package trace records, replays and streams the operation traces produced
// by package sorting.
//
// What
//
//   - Recorder: an in-memory sink (rec.Emit) with swap/move statistics.
//   - Replay: applies a trace to a copy of the input, branching on Kind.
//   - ReplaySwaps: the swap-only replay a naive renderer performs; exact for
//     swap-based algorithms, wrong for merge sort.
//   - Encoder: writes each operation as a text or JSON line the moment it is
//     emitted, so another process can animate the sort live.
//
// Usage
//
//	rec := trace.NewRecorder()
//	in := []int{9, 1, 8, 2, 7, 3}
//	seq := append([]int(nil), in...)
//	_ = sorting.Sort(sorting.MergeSort, seq, rec.Emit)
//	out, err := trace.Replay(in, rec.Operations()) // out == seq
//
// Errors
//
//   - ErrIndexOutOfRange, ErrSameIndex, ErrUnknownKind from Replay/ReplaySwaps.
//   - ErrUnknownFormat from ParseFormat/NewEncoder.
package trace
