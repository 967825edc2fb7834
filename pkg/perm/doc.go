// Package perm generates permutations of [0, 1, ..., n-1] lazily, one at a
// time, without recursion.
//
// # Overview
//
// Enumerating permutations naively means materializing n! slices up front or
// recursing n levels deep. This package instead keeps a single O(n) state and
// advances it in place:
//
//   - [Generator]: A stateful stepper producing the next permutation on demand
//     in O(n) time per step
//   - [Generate]: Eager convenience for collecting permutations with an
//     optional limit
//   - [Seq], [Factorial], [Inverse]: Helpers for combinatorial calculations
//
// # Steinhaus-Johnson-Trotter Order
//
// Permutations are emitted in Steinhaus-Johnson-Trotter (SJT) order: each
// permutation differs from its predecessor by exactly one swap of two adjacent
// positions. This is not lexicographic order. For n = 3 the full sequence is:
//
//	[0 1 2] [0 2 1] [2 0 1] [2 1 0] [1 2 0] [1 0 2]
//
// The adjacent-swap property makes SJT order attractive for search code that
// maintains incremental state per arrangement: moving to the next candidate
// means undoing and redoing a single transposition, not rebuilding from
// scratch.
//
// # How It Works
//
// Every value carries a direction, initially toward lower positions. Each step
// finds the largest mobile value — one whose neighbor in its direction holds a
// smaller value — and swaps it one position along its direction. Even's
// speedup then refreshes the directions of only the values larger than the one
// that moved, so a step never rescans the whole state for mobility. When no
// value is mobile, all n! permutations have been produced.
//
// # Basic Usage
//
// Create a generator, then pull permutations until exhaustion:
//
//	g, err := perm.New(4)
//	if err != nil {
//	    return err
//	}
//	for p, ok := g.Next(); ok; p, ok = g.Next() {
//	    // p is a fresh copy, safe to keep
//	}
//
// Or range over the remaining permutations with [Generator.All]:
//
//	for p := range g.All() {
//	    process(p)
//	}
//
// Generators are one-way: after exhaustion, [Generator.Next] keeps returning
// (nil, false). Construct a new generator to iterate again.
//
// # Using Permutations
//
// Emitted values are meant as indices into caller-owned data. To visit every
// arrangement of an arbitrary slice, index through the permutation:
//
//	items := []string{"a", "b", "c"}
//	g, _ := perm.New(len(items))
//	for p := range g.All() {
//	    for _, i := range p {
//	        visit(items[i])
//	    }
//	}
//
// # Limits
//
// [New] rejects sizes above [MaxSize] (20), the largest n whose factorial fits
// a 64-bit signed counter. Within that range a generator never allocates more
// than the O(n) state it owns, plus the copy it hands back per step.
//
// # Concurrency
//
// A Generator is mutable state owned by its caller and is not safe for
// concurrent use. Independent generators share nothing and may run in
// parallel across goroutines.
package perm
