// SPDX-License-Identifier: MIT
// Package: stepfn/interval
//
// bound.go — internal bound representation shared by the algebra.
//
// Every non-empty Interval decomposes into a lower and an upper bound; each
// bound is either infinite or a (value, closed) pair. Intersect, Complement
// and Compare work on bounds and rebuild a normalised Interval via fromBounds.

package interval

import "golang.org/x/exp/constraints"

// bound is one end of an interval. inf marks -∞ for a lower bound and +∞ for
// an upper bound; v and closed are ignored when inf is set.
type bound[T constraints.Ordered] struct {
	v      T
	closed bool
	inf    bool
}

// lower returns the lower bound of iv. Undefined for Empty.
func (iv Interval[T]) lower() bound[T] {
	switch iv.kind {
	case Singleton, Closed, RightHalfOpen, UnboundedClosedLeft:
		return bound[T]{v: iv.lo, closed: true}
	case Open, LeftHalfOpen, UnboundedOpenLeft:
		return bound[T]{v: iv.lo}
	default: // UnboundedClosedRight, UnboundedOpenRight, Unbounded
		return bound[T]{inf: true}
	}
}

// upper returns the upper bound of iv. Undefined for Empty.
func (iv Interval[T]) upper() bound[T] {
	switch iv.kind {
	case Singleton, Closed, LeftHalfOpen, UnboundedClosedRight:
		return bound[T]{v: iv.hi, closed: true}
	case Open, RightHalfOpen, UnboundedOpenRight:
		return bound[T]{v: iv.hi}
	default: // UnboundedClosedLeft, UnboundedOpenLeft, Unbounded
		return bound[T]{inf: true}
	}
}

// fromBounds rebuilds the most specific Interval for lo..hi.
// Returns Empty when the bounds describe no point or cannot be ordered.
func fromBounds[T constraints.Ordered](lo, hi bound[T]) Interval[T] {
	if !lo.inf && isNaN(lo.v) || !hi.inf && isNaN(hi.v) {
		return Interval[T]{}
	}
	switch {
	case lo.inf && hi.inf:
		return Interval[T]{kind: Unbounded}
	case lo.inf:
		if hi.closed {
			return Interval[T]{kind: UnboundedClosedRight, hi: hi.v}
		}
		return Interval[T]{kind: UnboundedOpenRight, hi: hi.v}
	case hi.inf:
		if lo.closed {
			return Interval[T]{kind: UnboundedClosedLeft, lo: lo.v}
		}
		return Interval[T]{kind: UnboundedOpenLeft, lo: lo.v}
	}

	c, ok := compareValues(lo.v, hi.v)
	if !ok || c > 0 {
		return Interval[T]{}
	}
	if c == 0 {
		if lo.closed && hi.closed {
			return Interval[T]{kind: Singleton, lo: lo.v, hi: lo.v}
		}
		return Interval[T]{}
	}

	switch {
	case lo.closed && hi.closed:
		return Interval[T]{kind: Closed, lo: lo.v, hi: hi.v}
	case lo.closed:
		return Interval[T]{kind: RightHalfOpen, lo: lo.v, hi: hi.v}
	case hi.closed:
		return Interval[T]{kind: LeftHalfOpen, lo: lo.v, hi: hi.v}
	default:
		return Interval[T]{kind: Open, lo: lo.v, hi: hi.v}
	}
}

// isNaN reports whether v is not equal to itself. Only floating-point NaN is.
func isNaN[T constraints.Ordered](v T) bool {
	return v != v
}

// compareValues is a three-way comparison that reports ok=false when a and b
// are not mutually ordered (NaN on either side).
func compareValues[T constraints.Ordered](a, b T) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	default:
		return 0, false
	}
}

// tighterLower returns the larger of two lower bounds (the one that starts
// later). At equal values the open bound is tighter.
func tighterLower[T constraints.Ordered](a, b bound[T]) (bound[T], bool) {
	if a.inf {
		return b, true
	}
	if b.inf {
		return a, true
	}
	c, ok := compareValues(a.v, b.v)
	switch {
	case !ok:
		return bound[T]{}, false
	case c < 0:
		return b, true
	case c > 0:
		return a, true
	default:
		return bound[T]{v: a.v, closed: a.closed && b.closed}, true
	}
}

// tighterUpper returns the smaller of two upper bounds (the one that ends
// earlier). At equal values the open bound is tighter.
func tighterUpper[T constraints.Ordered](a, b bound[T]) (bound[T], bool) {
	if a.inf {
		return b, true
	}
	if b.inf {
		return a, true
	}
	c, ok := compareValues(a.v, b.v)
	switch {
	case !ok:
		return bound[T]{}, false
	case c < 0:
		return a, true
	case c > 0:
		return b, true
	default:
		return bound[T]{v: a.v, closed: a.closed && b.closed}, true
	}
}

// compareLower orders lower bounds: -∞ first, then by value, closed before
// open at equal values.
func compareLower[T constraints.Ordered](a, b bound[T]) (int, bool) {
	switch {
	case a.inf && b.inf:
		return 0, true
	case a.inf:
		return -1, true
	case b.inf:
		return 1, true
	}
	c, ok := compareValues(a.v, b.v)
	if !ok || c != 0 {
		return c, ok
	}

	return compareClosedness(a.closed, b.closed, -1), true
}

// compareUpper orders upper bounds: by value, open before closed at equal
// values, +∞ last.
func compareUpper[T constraints.Ordered](a, b bound[T]) (int, bool) {
	switch {
	case a.inf && b.inf:
		return 0, true
	case a.inf:
		return 1, true
	case b.inf:
		return -1, true
	}
	c, ok := compareValues(a.v, b.v)
	if !ok || c != 0 {
		return c, ok
	}

	return compareClosedness(a.closed, b.closed, 1), true
}

// compareClosedness breaks a value tie; closedFirst is the result returned
// when only a is closed.
func compareClosedness(a, b bool, closedFirst int) int {
	switch {
	case a == b:
		return 0
	case a:
		return closedFirst
	default:
		return -closedFirst
	}
}
