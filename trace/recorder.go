package trace

import "github.com/katalvlaran/sortviz/sorting"

// Recorder collects operations in emission order. It is the in-memory sink
// for tests, summaries and replay; nothing is persisted.
//
// A Recorder is not safe for concurrent use, matching the engine's single
// thread of control.
type Recorder struct {
	ops   []sorting.Operation
	stats Stats
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// Emit records op. It has the sorting.Emitter signature, so a method value
// (rec.Emit) can be handed to sorting.Sort directly.
func (r *Recorder) Emit(op sorting.Operation) {
	r.ops = append(r.ops, op)
	switch op.Kind {
	case sorting.Swap:
		r.stats.Swaps++
	case sorting.Move:
		r.stats.Moves++
	}
}

// Operations returns a copy of the recorded operations.
func (r *Recorder) Operations() []sorting.Operation {
	out := make([]sorting.Operation, len(r.ops))
	copy(out, r.ops)
	return out
}

// Len returns the number of recorded operations.
func (r *Recorder) Len() int { return len(r.ops) }

// Stats returns swap and move counts.
func (r *Recorder) Stats() Stats { return r.stats }

// Reset drops every recorded operation, keeping the allocated capacity.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.stats = Stats{}
}
