// SPDX-License-Identifier: MIT
// Package: stepfn/piecewise
//
// builder.go — Builder, the overlay-based staging area for a Function.
//
// Overlay algorithm (newest segment wins):
//  1. pieces := new.Interval().Complement()          // 0, 1 or 2 pieces
//  2. for each existing segment e (outer loop):
//     for each piece c (inner loop):
//     x := e.Interval() ∩ c; keep (x, e.Value()) unless x is Empty
//  3. the kept segments replace the old list, in that order
//  4. append new itself
//
// Each overlay leaves the list pairwise disjoint if it was before, so Build
// hands the list over without re-validation.

package piecewise

import "golang.org/x/exp/constraints"

// Builder accumulates segments into a Function with overlay semantics.
//
// The zero value is an empty Builder ready for use. A Builder is not safe for
// concurrent use.
type Builder[T constraints.Ordered, V any] struct {
	segs  []Segment[T, V]
	spare []Segment[T, V] // second buffer, swapped with segs on every Overlay
}

// NewBuilder returns an empty Builder configured by opts.
func NewBuilder[T constraints.Ordered, V any](opts ...BuilderOption) *Builder[T, V] {
	cfg := newBuilderConfig(opts...)
	b := &Builder[T, V]{}
	if cfg.capacity > 0 {
		b.segs = make([]Segment[T, V], 0, cfg.capacity)
		b.spare = make([]Segment[T, V], 0, cfg.capacity)
	}

	return b
}

// Overlay inserts s so that it takes precedence over prior coverage: every
// existing segment is clipped to the part of its interval that s does not
// cover, then s is appended. Returns b for chaining.
//
// Overlaying onto an empty Builder is a pure append; overlaying the same
// segment twice is the same as overlaying it once.
//
// Complexity: O(n) time; the two internal buffers are reused across calls.
func (b *Builder[T, V]) Overlay(s Segment[T, V]) *Builder[T, V] {
	pieces := s.iv.Complement()

	next := b.spare[:0]
	for _, e := range b.segs {
		for _, c := range pieces {
			if x := e.iv.Intersect(c); !x.IsEmpty() {
				next = append(next, Segment[T, V]{iv: x, v: e.v})
			}
		}
	}
	next = append(next, s)

	b.spare = b.segs[:0]
	b.segs = next

	return b
}

// OverlayAll overlays segs in order. Returns b for chaining.
func (b *Builder[T, V]) OverlayAll(segs ...Segment[T, V]) *Builder[T, V] {
	for _, s := range segs {
		b.Overlay(s)
	}

	return b
}

// Len returns the number of staged segments.
func (b *Builder[T, V]) Len() int { return len(b.segs) }

// Build hands the staged segments over to a new Function unchanged, in
// staging order, and resets b to empty. Later overlays on b never affect the
// returned Function.
//
// Complexity: O(1).
func (b *Builder[T, V]) Build() *Function[T, V] {
	f := &Function[T, V]{segs: b.segs}
	b.segs, b.spare = nil, nil

	return f
}
