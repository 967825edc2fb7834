package perm

import (
	"iter"
	"slices"

	"github.com/matzehuels/trotter/pkg/errors"
)

// MaxSize is the largest size accepted by [New]. 20! is the largest factorial
// representable in a 64-bit signed int; beyond it the emission counter would
// silently wrap and report a wrong exhaustion point.
const MaxSize = 20

// Generator lazily enumerates all permutations of [0, 1, ..., n-1] in
// Steinhaus-Johnson-Trotter order using Even's speedup: each call to
// [Generator.Next] costs O(n) time and performs no recursion.
//
// A Generator is one-way. Once exhausted it stays exhausted; construct a new
// one to iterate again. Generators are not safe for concurrent use; callers
// must synchronize access if one instance is shared across goroutines.
// Independent instances never share state and can run in parallel.
type Generator struct {
	order []int  // position -> value, the current permutation
	pos   []int  // value -> position, always the inverse of order
	dir   []int8 // per value: -1 moves toward lower positions, +1 toward higher

	produced int // permutations emitted so far, capped at total
	total    int // n!
}

// New creates a Generator for permutations of [0, 1, ..., n-1].
//
// The first [Generator.Next] call yields the identity permutation; every
// subsequent call yields a permutation differing from the previous one by a
// single swap of two adjacent positions, until all n! have been produced.
//
// New returns an error with code [errors.ErrCodeInvalidSize] for n < 0, and
// with code [errors.ErrCodeSizeTooLarge] for n > [MaxSize], since n! must fit
// the emission counter.
func New(n int) (*Generator, error) {
	if n < 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "size must be non-negative, got %d", n)
	}
	if n > MaxSize {
		return nil, errors.New(errors.ErrCodeSizeTooLarge, "size %d too large: %d! does not fit a 64-bit counter (max %d)", n, n, MaxSize)
	}

	g := &Generator{
		order: Seq(n),
		pos:   Seq(n),
		dir:   make([]int8, n),
		total: Factorial(n),
	}
	for v := range g.dir {
		g.dir[v] = -1
	}
	return g, nil
}

// Len returns the fixed size n the generator was created with.
func (g *Generator) Len() int {
	return len(g.order)
}

// Produced returns how many permutations have been emitted so far.
// It never exceeds [Factorial] of [Generator.Len].
func (g *Generator) Produced() int {
	return g.produced
}

// Next returns the next permutation and true, or nil and false once all n!
// permutations have been produced.
//
// The returned slice is a copy; callers may keep or modify it freely. The
// values are meant to be used as indices into caller-owned data, so the
// generator never touches anything but its own state.
//
// Exhaustion is terminal and idempotent: every call after the last
// permutation returns (nil, false) without mutating the generator.
func (g *Generator) Next() ([]int, bool) {
	if g.produced >= g.total {
		return nil, false
	}
	if g.produced == 0 {
		// The initial state is itself the first permutation.
		g.produced++
		return slices.Clone(g.order), true
	}

	m := g.largestMobile()
	if m < 0 {
		g.produced = g.total
		return nil, false
	}

	// Swap m one step along its direction, keeping pos in sync.
	from := g.pos[m]
	to := from + int(g.dir[m])
	w := g.order[to]
	g.order[from], g.order[to] = w, m
	g.pos[m], g.pos[w] = to, from

	// Even's speedup: only values above m need their direction refreshed, and
	// each ends up pointing at m's new position.
	for v := m + 1; v < len(g.order); v++ {
		if g.pos[v] < to {
			g.dir[v] = 1
		} else {
			g.dir[v] = -1
		}
	}

	g.produced++
	return slices.Clone(g.order), true
}

// largestMobile returns the largest value that can move one step in its
// current direction onto a strictly smaller value, or -1 if none can.
func (g *Generator) largestMobile() int {
	for v := len(g.order) - 1; v >= 0; v-- {
		p := g.pos[v] + int(g.dir[v])
		if p >= 0 && p < len(g.order) && g.order[p] < v {
			return v
		}
	}
	return -1
}

// All returns an iterator over the generator's remaining permutations, in
// order, ending at exhaustion. It is a range-over-func view of repeated
// [Generator.Next] calls and consumes the generator as it goes: breaking out
// early leaves the generator positioned after the last yielded permutation.
func (g *Generator) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for p, ok := g.Next(); ok; p, ok = g.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
