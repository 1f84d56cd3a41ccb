// Package sortviz sorts integer sequences while reporting every step, so
// the sort can be drawn as it happens.
//
// What is in the box?
//
//	A small engine plus the plumbing around it:
//		• Five instrumented sorts: bubble, insertion, selection, merge, quick
//		• Operations: Swap for exchanges, Move for merge's directed writes
//		• Traces: record, replay, stream as text or JSON lines
//		• Inputs: seeded random, sorted, reversed, nearly sorted, few unique
//		• Terminal bars: one frame per operation, touched rows highlighted
//
// Layout:
//
//	sorting/  algorithms, Operation, Emitter, the Sort dispatcher
//	trace/    Recorder, Replay, ReplaySwaps, Encoder
//	gen/      deterministic input generators
//	render/   Bars state and the Terminal renderer
//	config/   TOML file and SORTVIZ_* environment defaults
//	cli/      the sortviz commands: algorithms, sort, animate
//
// Quick example:
//
//	seq := []int{5, 3, 8, 1}
//	_ = sorting.Sort(sorting.BubbleSort, seq, func(op sorting.Operation) {
//		fmt.Println(op) // swap(0,1) swap(2,3) swap(1,2) swap(0,1)
//	})
//
//	go install github.com/katalvlaran/sortviz/cmd/sortviz@latest
package sortviz
