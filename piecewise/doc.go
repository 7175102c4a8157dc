// Package piecewise represents small piecewise-constant ("step") functions:
// a set of pairwise-disjoint intervals of an ordered domain, each carrying a
// single value.
//
// 🚀 What is a step function?
//
//	A function that is constant on every piece of a partition of (part of)
//	its domain. Here a piece is a Segment: an interval.Interval plus a value.
//	Points not covered by any segment are "absent": ValueAt reports ok=false.
//
// ✨ Key features:
//   - Builder with overlay semantics: the newest segment wins wherever it
//     overlaps earlier coverage, earlier segments are clipped to what is left
//   - FromSortedDisjoint: trusted fast path for pre-sorted, disjoint input
//   - Multiply / MultiplyFunc: pointwise product of two functions in a single
//     ordered merge pass over both segment lists
//   - Scale / ScaleFunc / ScaleSegment: scalar scaling, same intervals
//   - generic over the domain (constraints.Ordered) and the value type
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/stepfn/interval"
//	  "github.com/katalvlaran/stepfn/piecewise"
//	)
//
//	f := piecewise.NewBuilder[float64, float64]().
//	  Overlay(piecewise.NewSegment(interval.All[float64](), 5.0)).
//	  Overlay(piecewise.NewSegment(interval.AtLeast(230.0), 2.0)).
//	  Overlay(piecewise.NewSegment(interval.Below(200.0), 1.0)).
//	  Build()
//
//	v, ok := f.ValueAt(210) // 5, true
//
// Storage & lookup:
//
//	Segments live in one contiguous slice and ValueAt is a linear scan in
//	storage order: for the handful of segments this package targets that
//	beats binary search. Functions built by Multiply are stored in interval
//	order; functions built by overlays are stored in overlay order.
//
// Coverage:
//
//	A Function is not required to cover its whole domain; gaps are a valid,
//	expected state. Use Covers to check totality over a region.
//
// Concurrency:
//
//	A built Function is immutable and safe for concurrent readers. A Builder
//	is not safe for concurrent use.
//
// Complexity:
//
//   - ValueAt:  O(n)
//   - Overlay:  O(n) per call (complements have at most two pieces)
//   - Multiply: O(n + m) for operands already in interval order,
//     O(n log n + m log m) otherwise
package piecewise
