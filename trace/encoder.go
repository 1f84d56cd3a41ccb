package trace

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/sortviz/sorting"
)

// record is the JSON shape of one operation line.
type record struct {
	Seq   int    `json:"seq"`
	Kind  string `json:"kind"`
	A     int    `json:"a"`
	B     int    `json:"b"`
	Value *int   `json:"value,omitempty"`
}

// Encoder streams operations to a writer as they are emitted, one line per
// operation, for an external renderer reading the other end of a pipe.
//
// Emitters cannot return errors, so the first write error is kept and every
// later operation is dropped; check Err after the sort returns.
type Encoder struct {
	w      io.Writer
	format Format
	enc    *json.Encoder
	n      int
	err    error
}

// NewEncoder returns an Encoder writing f to w.
// Returns ErrUnknownFormat for anything but Text or JSON.
func NewEncoder(w io.Writer, f Format) (*Encoder, error) {
	e := &Encoder{w: w, format: f}
	switch f {
	case Text:
	case JSON:
		e.enc = json.NewEncoder(w)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	return e, nil
}

// Emit writes op. It has the sorting.Emitter signature.
func (e *Encoder) Emit(op sorting.Operation) {
	if e.err != nil {
		return
	}
	if e.format == JSON {
		r := record{Seq: e.n, Kind: op.Kind.String(), A: op.A, B: op.B}
		if op.Kind == sorting.Move {
			v := op.Value
			r.Value = &v
		}
		e.err = e.enc.Encode(r)
	} else {
		switch op.Kind {
		case sorting.Move:
			_, e.err = fmt.Fprintf(e.w, "%s %d %d %d\n", op.Kind, op.A, op.B, op.Value)
		default:
			_, e.err = fmt.Fprintf(e.w, "%s %d %d\n", op.Kind, op.A, op.B)
		}
	}
	if e.err == nil {
		e.n++
	}
}

// Count returns how many operations were written successfully.
func (e *Encoder) Count() int { return e.n }

// Err returns the first write error, if any.
func (e *Encoder) Err() error { return e.err }
