// Package render is the visual collaborator of the sorting engine: it keeps
// one bar per sequence entry and updates them as operations arrive.
package render

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sortviz/sorting"
)

// Sentinel errors for rendering.
var (
	// ErrIndexOutOfRange is returned when an operation names a missing bar.
	ErrIndexOutOfRange = errors.New("render: index out of range")

	// ErrUnknownKind is returned for an operation kind Apply cannot draw.
	ErrUnknownKind = errors.New("render: unknown operation kind")
)

// Bars is the drawable state: bar i has magnitude heights[i]. Magnitudes
// are the input values as given; drawing code treats non-positive ones as
// empty bars.
type Bars struct {
	heights []int
}

// NewBars builds one bar per value. values is copied.
func NewBars(values []int) *Bars {
	return &Bars{heights: append([]int(nil), values...)}
}

// Len returns the number of bars.
func (b *Bars) Len() int { return len(b.heights) }

// Heights returns a copy of the current magnitudes.
func (b *Bars) Heights() []int {
	return append([]int(nil), b.heights...)
}

// Apply updates the bars for op: Swap exchanges bars A and B, Move sets bar
// B to op.Value.
func (b *Bars) Apply(op sorting.Operation) error {
	if err := b.bounds(op.A, op.B); err != nil {
		return err
	}
	switch op.Kind {
	case sorting.Swap:
		b.heights[op.A], b.heights[op.B] = b.heights[op.B], b.heights[op.A]
	case sorting.Move:
		b.heights[op.B] = op.Value
	default:
		return fmt.Errorf("%w: %v", ErrUnknownKind, op.Kind)
	}
	return nil
}

// ApplySwap exchanges bars a and b regardless of operation kind. Driving a
// merge sort trace through it desynchronizes the bars from the data.
func (b *Bars) ApplySwap(i, j int) error {
	if err := b.bounds(i, j); err != nil {
		return err
	}
	b.heights[i], b.heights[j] = b.heights[j], b.heights[i]
	return nil
}

// bounds checks that i and j address existing bars.
func (b *Bars) bounds(i, j int) error {
	n := len(b.heights)
	if i < 0 || i >= n || j < 0 || j >= n {
		return fmt.Errorf("%w: (%d,%d) with %d bars", ErrIndexOutOfRange, i, j, n)
	}
	return nil
}

// peak returns the largest magnitude, or 0 when there is no positive one.
func (b *Bars) peak() int {
	m := 0
	for _, h := range b.heights {
		if h > m {
			m = h
		}
	}
	return m
}
