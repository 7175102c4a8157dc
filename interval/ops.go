// SPDX-License-Identifier: MIT
// Package: stepfn/interval
//
// ops.go — the algebra: Contains, Intersect, Complement, Compare, Order.
//
// All operations are total: they never panic and never return errors. An
// impossible result (no overlap, incomparable bounds) is the Empty interval.

package interval

import "golang.org/x/exp/constraints"

// Contains reports whether p belongs to iv.
//
// A point that is not equal to itself (NaN) is never contained, not even in
// the Unbounded interval.
//
// Complexity: O(1).
func (iv Interval[T]) Contains(p T) bool {
	if iv.kind == Empty || p != p {
		return false
	}
	lo, hi := iv.lower(), iv.upper()
	if !lo.inf {
		if lo.closed && !(p >= lo.v) {
			return false
		}
		if !lo.closed && !(p > lo.v) {
			return false
		}
	}
	if !hi.inf {
		if hi.closed && !(p <= hi.v) {
			return false
		}
		if !hi.closed && !(p < hi.v) {
			return false
		}
	}

	return true
}

// Intersect returns iv ∩ o, normalised. The result is Empty when the two
// intervals share no point or when their bounds cannot be ordered.
//
// Complexity: O(1).
func (iv Interval[T]) Intersect(o Interval[T]) Interval[T] {
	if iv.kind == Empty || o.kind == Empty {
		return Interval[T]{}
	}
	lo, ok := tighterLower(iv.lower(), o.lower())
	if !ok {
		return Interval[T]{}
	}
	hi, ok := tighterUpper(iv.upper(), o.upper())
	if !ok {
		return Interval[T]{}
	}

	return fromBounds(lo, hi)
}

// Overlaps reports whether iv and o share at least one point.
func (iv Interval[T]) Overlaps(o Interval[T]) bool {
	return !iv.Intersect(o).IsEmpty()
}

// Complement returns the pieces of the domain not covered by iv, ordered
// left to right:
//
//	∅          → [(-∞, +∞)]
//	(-∞, +∞)   → []
//	[a, +∞)    → [(-∞, a)]
//	(-∞, b]    → [(b, +∞)]
//	[a, b)     → [(-∞, a), [b, +∞)]
//
// The pieces are pairwise disjoint and disjoint from iv.
//
// Complexity: O(1); allocates at most two Intervals.
func (iv Interval[T]) Complement() []Interval[T] {
	switch iv.kind {
	case Empty:
		return []Interval[T]{{kind: Unbounded}}
	case Unbounded:
		return nil
	}

	out := make([]Interval[T], 0, 2)
	if lo := iv.lower(); !lo.inf {
		// flip closedness: [a → (-∞, a) ; (a → (-∞, a]
		out = append(out, fromBounds(bound[T]{inf: true}, bound[T]{v: lo.v, closed: !lo.closed}))
	}
	if hi := iv.upper(); !hi.inf {
		out = append(out, fromBounds(bound[T]{v: hi.v, closed: !hi.closed}, bound[T]{inf: true}))
	}

	return out
}

// Compare orders iv relative to o for sorting and merging.
//
// Order: lower bound first (-∞ smallest; at equal values a closed bound
// precedes an open one), then upper bound (at equal values an open bound
// precedes a closed one; +∞ largest). Identical intervals compare 0.
// For pairwise-disjoint non-empty intervals this is plain left-to-right
// order, so it agrees with ordering by either endpoint.
//
// ok is false when the operands are incomparable: either is Empty, or a
// bound comparison involves NaN. The int result is 0 in that case.
//
// Complexity: O(1).
func (iv Interval[T]) Compare(o Interval[T]) (c int, ok bool) {
	if iv.kind == Empty || o.kind == Empty {
		return 0, false
	}
	if c, ok = compareLower(iv.lower(), o.lower()); !ok || c != 0 {
		return c, ok
	}

	return compareUpper(iv.upper(), o.upper())
}

// Order is Compare with a deterministic fallback for incomparable operands:
// a is treated as "not greater" than b and -1 is returned.
// It is the merge key used by piecewise multiplication.
func Order[T constraints.Ordered](a, b Interval[T]) int {
	c, ok := a.Compare(b)
	if !ok {
		return -1
	}

	return c
}
