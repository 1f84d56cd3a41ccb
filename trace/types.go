// Package trace defines sentinel errors, formats and summary types for
// recording, replaying and streaming sorting operation traces.
package trace

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for trace handling.
var (
	// ErrIndexOutOfRange is returned when an operation names a position
	// outside the replayed sequence.
	ErrIndexOutOfRange = errors.New("trace: index out of range")

	// ErrSameIndex is returned when an operation names the same position twice.
	ErrSameIndex = errors.New("trace: operation indices must differ")

	// ErrUnknownKind is returned for an operation kind that is neither swap nor move.
	ErrUnknownKind = errors.New("trace: unknown operation kind")

	// ErrUnknownFormat is returned when an encoder format is not supported.
	ErrUnknownFormat = errors.New("trace: unknown format")
)

// Format selects the line encoding used by Encoder.
type Format string

const (
	// Text writes "swap 0 1" or "move 2 0 7" per line.
	Text Format = "text"

	// JSON writes one JSON object per line.
	JSON Format = "json"
)

// ParseFormat converts a case-insensitive format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Stats summarizes a trace.
//   - Swaps: number of two-way exchanges.
//   - Moves: number of directed writes.
type Stats struct {
	Swaps int
	Moves int
}

// Total returns Swaps + Moves.
func (s Stats) Total() int {
	return s.Swaps + s.Moves
}
