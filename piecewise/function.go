// SPDX-License-Identifier: MIT
// Package: stepfn/piecewise
//
// function.go — Function, the immutable step function, its trusted fast-path
// constructor and its read-only queries.
//
// Contract:
//   • Segments of a Function are pairwise disjoint. Builder and Multiply
//     guarantee it; FromSortedDisjoint trusts the caller.
//   • A nil *Function behaves as the empty function.
//   • No method mutates a Function; accessors return copies.

package piecewise

import (
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/stepfn/interval"
)

// Function is a piecewise-constant function from T to V.
// Construct it with a Builder, FromSortedDisjoint, Multiply or Scale.
type Function[T constraints.Ordered, V any] struct {
	segs []Segment[T, V]
}

// Empty returns the function with no segments; ValueAt is absent everywhere.
func Empty[T constraints.Ordered, V any]() *Function[T, V] {
	return &Function[T, V]{}
}

// FromSortedDisjoint builds a Function directly from segs without the
// overlay cost.
//
// The caller asserts that segs is sorted left to right and pairwise
// disjoint. This is NOT checked. If the assertion is false the result is
// still safe to query, but ValueAt answers for overlapping points are
// unspecified and Multiply may miss products.
//
// segs is copied; the caller may reuse it.
//
// Complexity: O(n).
func FromSortedDisjoint[T constraints.Ordered, V any](segs ...Segment[T, V]) *Function[T, V] {
	return &Function[T, V]{segs: slices.Clone(segs)}
}

// ValueAt returns the value of the first segment, in storage order, whose
// interval contains p. ok is false when no segment covers p ("absent");
// this is a normal outcome, not an error.
//
// Complexity: O(n) linear scan.
func (f *Function[T, V]) ValueAt(p T) (v V, ok bool) {
	if f == nil {
		return v, false
	}
	for i := range f.segs {
		if f.segs[i].iv.Contains(p) {
			return f.segs[i].v, true
		}
	}

	return v, false
}

// Len returns the number of stored segments.
func (f *Function[T, V]) Len() int {
	if f == nil {
		return 0
	}

	return len(f.segs)
}

// IsEmpty reports whether f has no segments.
func (f *Function[T, V]) IsEmpty() bool { return f.Len() == 0 }

// Segments returns a copy of the segments in storage order.
func (f *Function[T, V]) Segments() []Segment[T, V] {
	if f == nil {
		return nil
	}

	return slices.Clone(f.segs)
}

// All iterates over (storage index, segment) pairs without copying.
func (f *Function[T, V]) All() iter.Seq2[int, Segment[T, V]] {
	return func(yield func(int, Segment[T, V]) bool) {
		if f == nil {
			return
		}
		for i, s := range f.segs {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Domain returns the intervals of the covered region in storage order.
// Empty-interval segments are skipped.
func (f *Function[T, V]) Domain() []interval.Interval[T] {
	if f == nil {
		return nil
	}
	out := make([]interval.Interval[T], 0, len(f.segs))
	for _, s := range f.segs {
		if !s.iv.IsEmpty() {
			out = append(out, s.iv)
		}
	}

	return out
}

// Covers reports whether every point of iv lies in some segment of f, i.e.
// whether f is total over iv. Covers(Empty) is true.
//
// Implementation: iv is clipped by the complement of each segment in turn
// (the same clipping Overlay applies); f covers iv when nothing survives.
//
// Complexity: O(n·k) where k ≤ n+1 is the number of surviving pieces.
func (f *Function[T, V]) Covers(iv interval.Interval[T]) bool {
	rest := []interval.Interval[T]{}
	if !iv.IsEmpty() {
		rest = append(rest, iv)
	}
	for _, s := range f.All() {
		if len(rest) == 0 {
			break
		}
		rest = clip(rest, s.iv.Complement())
	}

	return len(rest) == 0
}

// clip intersects every interval of ivs with every piece and keeps the
// non-empty results, outer loop over ivs, inner loop over pieces.
func clip[T constraints.Ordered](ivs, pieces []interval.Interval[T]) []interval.Interval[T] {
	out := make([]interval.Interval[T], 0, len(ivs)*len(pieces))
	for _, iv := range ivs {
		for _, c := range pieces {
			if x := iv.Intersect(c); !x.IsEmpty() {
				out = append(out, x)
			}
		}
	}

	return out
}

// String lists one "interval -> value" pair per line in storage order.
// The empty function renders as "<empty>".
func (f *Function[T, V]) String() string {
	if f.IsEmpty() {
		return "<empty>"
	}
	var sb strings.Builder
	for i, s := range f.segs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.String())
	}

	return sb.String()
}
