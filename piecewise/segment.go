// SPDX-License-Identifier: MIT
// Package: stepfn/piecewise
//
// segment.go — Segment, the (interval, value) atom of a step function, and
// segment-level scaling.

package piecewise

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/stepfn/interval"
)

// Number is the set of built-in value types with a native * operator.
// Use the ...Func variants for any other value type.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Segment pairs one interval with one value. It is immutable: scaling and
// every other transformation return a new Segment.
type Segment[T constraints.Ordered, V any] struct {
	iv interval.Interval[T]
	v  V
}

// NewSegment returns the segment (iv, v). No validation is performed; an
// Empty interval yields a segment that covers nothing.
func NewSegment[T constraints.Ordered, V any](iv interval.Interval[T], v V) Segment[T, V] {
	return Segment[T, V]{iv: iv, v: v}
}

// Interval returns the segment's interval.
func (s Segment[T, V]) Interval() interval.Interval[T] { return s.iv }

// Value returns the segment's value.
func (s Segment[T, V]) Value() V { return s.v }

// String renders the segment as "interval -> value", e.g. "[1, 2] -> 4".
func (s Segment[T, V]) String() string {
	return fmt.Sprintf("%v -> %v", s.iv, s.v)
}

// ScaleSegment returns a segment with the same interval and value v*k.
func ScaleSegment[T constraints.Ordered, V Number](s Segment[T, V], k V) Segment[T, V] {
	return Segment[T, V]{iv: s.iv, v: s.v * k}
}

// ScaleSegmentFunc returns a segment with the same interval and value
// mul(v, k). The factor type K may differ from the value type, e.g. a money
// amount scaled by a float ratio.
func ScaleSegmentFunc[T constraints.Ordered, V, K any](s Segment[T, V], k K, mul func(V, K) V) Segment[T, V] {
	return Segment[T, V]{iv: s.iv, v: mul(s.v, k)}
}
