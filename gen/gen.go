// Package gen builds deterministic integer sequences to feed the sorting
// engine: random, sorted, reversed, nearly sorted and few-unique inputs.
package gen

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Sentinel errors for sequence generation.
var (
	// ErrBadSize indicates a negative sequence length.
	ErrBadSize = errors.New("gen: invalid size")

	// ErrBadRange indicates an empty value range (lo > hi) or one too wide
	// to draw from.
	ErrBadRange = errors.New("gen: invalid value range")

	// ErrUnknownKind indicates an unsupported generator name.
	ErrUnknownKind = errors.New("gen: unknown kind")
)

// Kind names a sequence shape.
type Kind string

// Supported kinds.
const (
	Random       Kind = "random"
	Sorted       Kind = "sorted"
	Reversed     Kind = "reversed"
	NearlySorted Kind = "nearly_sorted"
	FewUnique    Kind = "few_unique"
)

// fewUniqueValues is how many distinct values FewUnique draws from.
const fewUniqueValues = 4

// nearlySortedRatio is the share of positions NearlySorted perturbs, as 1/n.
const nearlySortedRatio = 10

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{Random, Sorted, Reversed, NearlySorted, FewUnique}
}

// ParseKind converts a case-insensitive name into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Generate returns n values of the given kind drawn from the configured
// range (default [1, 100]).
//
//   - Random:       independent uniform draws.
//   - Sorted:       Random, ascending.
//   - Reversed:     Random, descending.
//   - NearlySorted: Sorted with about n/10 (at least one) random pair swaps.
//   - FewUnique:    uniform draws from at most 4 distinct values.
//
// Same options and seed ⇒ same output.
//
// Errors: ErrBadSize (n < 0), ErrBadRange, ErrUnknownKind.
func Generate(kind Kind, n int, opts ...Option) ([]int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadSize, n)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	switch kind {
	case Random:
		return uniform(cfg, n), nil
	case Sorted:
		out := uniform(cfg, n)
		sort.Ints(out)
		return out, nil
	case Reversed:
		out := uniform(cfg, n)
		sort.Sort(sort.Reverse(sort.IntSlice(out)))
		return out, nil
	case NearlySorted:
		out := uniform(cfg, n)
		sort.Ints(out)
		perturb(cfg.rng, out)
		return out, nil
	case FewUnique:
		return fewUnique(cfg, n), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}

// uniform draws n values from [cfg.lo, cfg.hi].
func uniform(cfg genConfig, n int) []int {
	out := make([]int, n)
	span := cfg.hi - cfg.lo + 1
	for i := range out {
		out[i] = cfg.lo + cfg.rng.Intn(span)
	}
	return out
}

// perturb swaps about len(a)/nearlySortedRatio random pairs.
func perturb(r *rand.Rand, a []int) {
	if len(a) < 2 {
		return
	}
	swaps := len(a) / nearlySortedRatio
	if swaps == 0 {
		swaps = 1
	}
	for k := 0; k < swaps; k++ {
		i, j := r.Intn(len(a)), r.Intn(len(a))
		a[i], a[j] = a[j], a[i]
	}
}

// fewUnique picks up to fewUniqueValues distinct values, then fills n slots
// from them.
func fewUnique(cfg genConfig, n int) []int {
	pool := make([]int, fewUniqueValues)
	for i := range pool {
		pool[i] = cfg.lo + cfg.rng.Intn(cfg.hi-cfg.lo+1)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = pool[cfg.rng.Intn(len(pool))]
	}
	return out
}
