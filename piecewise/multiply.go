// SPDX-License-Identifier: MIT
// Package: stepfn/piecewise
//
// multiply.go — pointwise multiplication and scaling of step functions.
//
// Multiplication is a single ordered merge over both segment lists, keyed by
// interval.Order. The merge remembers the most recently visited segment of
// each side ("pending") and at every step handles exactly one of:
//
//	Left-only  (left's next segment precedes right's, or right is exhausted):
//	           emit next_left ∩ pending_right; pending_left = next_left
//	Right-only symmetric
//	Both       (aligned: Order == 0):
//	           right-induced := pending_left ∩ next_right
//	           left-induced  := next_left ∩ pending_right
//	           emit right-induced if it exists and is non-empty,
//	           otherwise left-induced if it exists, never both;
//	           always emit next_left ∩ next_right;
//	           pending_left, pending_right = next_left, next_right
//
// Every product takes its value from mul(left value, right value). Empty
// candidates are dropped and emission order is the final storage order.
// Incomparable keys resolve as "left is not greater" (Left-only).

package piecewise

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/stepfn/interval"
)

// Multiply returns the pointwise product l·r: for every point p,
// ValueAt(p) is l.ValueAt(p) * r.ValueAt(p) when both are present and absent
// otherwise. The result's domain is the intersection of both domains,
// refined to the common partition, stored in interval order.
//
// Neither operand is mutated. A nil or empty operand yields an empty result.
//
// Complexity: O(n + m) for operands stored in interval order (every
// Multiply result is), plus a sort of a private copy otherwise.
func Multiply[T constraints.Ordered, V Number](l, r *Function[T, V]) *Function[T, V] {
	return MultiplyFunc(l, r, func(a, b V) V { return a * b })
}

// MultiplyFunc is Multiply for arbitrary value types: products are computed
// as mul(leftValue, rightValue).
func MultiplyFunc[T constraints.Ordered, V any](l, r *Function[T, V], mul func(a, b V) V) *Function[T, V] {
	ls, rs := mergeOrder(l), mergeOrder(r)
	if len(ls) == 0 || len(rs) == 0 {
		return &Function[T, V]{}
	}

	m := merger[T, V]{mul: mul, out: make([]Segment[T, V], 0, len(ls)+len(rs))}
	i, j := 0, 0
	for i < len(ls) || j < len(rs) {
		switch {
		case j == len(rs):
			m.leftOnly(ls[i])
			i++
		case i == len(ls):
			m.rightOnly(rs[j])
			j++
		default:
			switch c := interval.Order(ls[i].iv, rs[j].iv); {
			case c < 0:
				m.leftOnly(ls[i])
				i++
			case c > 0:
				m.rightOnly(rs[j])
				j++
			default:
				m.both(ls[i], rs[j])
				i++
				j++
			}
		}
	}

	return &Function[T, V]{segs: m.out}
}

// mergeOrder returns f's non-empty segments in interval.Order. f's storage
// is returned as-is when it already qualifies; otherwise a sorted copy.
//
// Empty-interval segments cover nothing, but as a pending segment they would
// hide the real predecessor on their side, so they are dropped up front.
func mergeOrder[T constraints.Ordered, V any](f *Function[T, V]) []Segment[T, V] {
	if f.IsEmpty() {
		return nil
	}
	segs, owned := f.segs, false
	if slices.ContainsFunc(segs, isEmptySegment[T, V]) {
		segs, owned = slices.DeleteFunc(slices.Clone(segs), isEmptySegment[T, V]), true
	}
	if slices.IsSortedFunc(segs, bySegmentOrder[T, V]) {
		return segs
	}
	if !owned {
		segs = slices.Clone(segs)
	}
	slices.SortStableFunc(segs, bySegmentOrder[T, V])

	return segs
}

func isEmptySegment[T constraints.Ordered, V any](s Segment[T, V]) bool {
	return s.iv.IsEmpty()
}

// bySegmentOrder is only a strict weak order on non-empty intervals:
// interval.Order answers -1 both ways for incomparable pairs, and an
// Interval is incomparable only when Empty. mergeOrder drops those first.
func bySegmentOrder[T constraints.Ordered, V any](a, b Segment[T, V]) int {
	return interval.Order(a.iv, b.iv)
}

// merger carries the pending segments and the output across merge steps.
type merger[T constraints.Ordered, V any] struct {
	mul          func(a, b V) V
	pendL, pendR Segment[T, V]
	hasL, hasR   bool
	out          []Segment[T, V]
}

// candidate is a product segment that may still turn out Empty. A zero
// candidate stands for a product whose pending operand was absent.
type candidate[T constraints.Ordered, V any] struct {
	seg Segment[T, V]
	ok  bool
}

// product builds the candidate l ∩ r with value mul(l.v, r.v). The value is
// only computed for a non-empty intersection.
func (m *merger[T, V]) product(l, r Segment[T, V]) candidate[T, V] {
	x := l.iv.Intersect(r.iv)
	if x.IsEmpty() {
		return candidate[T, V]{seg: Segment[T, V]{iv: x}, ok: true}
	}

	return candidate[T, V]{seg: Segment[T, V]{iv: x, v: m.mul(l.v, r.v)}, ok: true}
}

func (m *merger[T, V]) emit(c candidate[T, V]) {
	if c.ok && !c.seg.iv.IsEmpty() {
		m.out = append(m.out, c.seg)
	}
}

func (m *merger[T, V]) leftOnly(l Segment[T, V]) {
	if m.hasR {
		m.emit(m.product(l, m.pendR))
	}
	m.pendL, m.hasL = l, true
}

func (m *merger[T, V]) rightOnly(r Segment[T, V]) {
	if m.hasL {
		m.emit(m.product(m.pendL, r))
	}
	m.pendR, m.hasR = r, true
}

func (m *merger[T, V]) both(l, r Segment[T, V]) {
	m.emit(m.induced(l, r))
	m.emit(m.product(l, r))
	m.pendL, m.hasL = l, true
	m.pendR, m.hasR = r, true
}

// induced picks at most one boundary product for an aligned step: the
// right-induced candidate (pending left × new right) when it exists and is
// non-empty, otherwise the left-induced one (new left × pending right).
func (m *merger[T, V]) induced(l, r Segment[T, V]) candidate[T, V] {
	var rightInduced, leftInduced candidate[T, V]
	if m.hasL {
		rightInduced = m.product(m.pendL, r)
	}
	if m.hasR {
		leftInduced = m.product(l, m.pendR)
	}
	if rightInduced.ok && !rightInduced.seg.iv.IsEmpty() {
		return rightInduced
	}

	return leftInduced
}

// Scale returns f with every value multiplied by k. Intervals and storage
// order are unchanged; ValueAt(p) is f.ValueAt(p) * k wherever f is defined.
//
// Complexity: O(n).
func Scale[T constraints.Ordered, V Number](f *Function[T, V], k V) *Function[T, V] {
	return ScaleFunc(f, k, func(v, factor V) V { return v * factor })
}

// ScaleFunc returns f with every value replaced by mul(value, k).
func ScaleFunc[T constraints.Ordered, V, K any](f *Function[T, V], k K, mul func(V, K) V) *Function[T, V] {
	out := make([]Segment[T, V], 0, f.Len())
	for _, s := range f.All() {
		out = append(out, ScaleSegmentFunc(s, k, mul))
	}

	return &Function[T, V]{segs: out}
}
