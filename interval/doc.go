// Package interval implements the interval algebra used by piecewise step
// functions: a closed set of interval variants over an ordered domain, with
// containment, intersection, complement and an ordering comparator.
//
// 🚀 What is an Interval?
//
//	A convex subset of an ordered domain T. Each Interval carries a Kind tag
//	and up to two bounds:
//
//	  Empty                 ∅
//	  Singleton             {a}
//	  Closed                [a, b]
//	  Open                  (a, b)
//	  LeftHalfOpen          (a, b]
//	  RightHalfOpen         [a, b)
//	  UnboundedClosedRight  (-∞, b]
//	  UnboundedOpenRight    (-∞, b)
//	  UnboundedClosedLeft   [a, +∞)
//	  UnboundedOpenLeft     (a, +∞)
//	  Unbounded             (-∞, +∞)
//
// ✨ Key features:
//   - value semantics: an Interval is a small comparable struct, copy freely
//   - the zero value is Empty
//   - bounded constructors validate (ErrInvertedBounds, ErrIncomparableBounds);
//     degenerate pairs normalise ([a,a] → {a}, (a,a) → ∅)
//   - Intersect and Complement always return normalised Kinds
//   - Compare orders by lower bound then upper bound and reports
//     incomparable operands (Empty, NaN bounds) instead of guessing
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/stepfn/interval"
//
//	day := interval.MustRightHalfOpen(0.0, 24.0)   // [0, 24)
//	peak := interval.MustClosed(17.0, 21.0)        // [17, 21]
//	fmt.Println(day.Intersect(peak))               // [17, 21]
//	fmt.Println(peak.Complement())                 // [(-∞, 17) (21, +∞)]
//
// Floating-point NaN is never contained in any interval and makes every
// comparison it takes part in incomparable. A NaN bound never survives into
// an Interval: total constructors and the algebra return Empty for it, and
// the validating constructors return ErrIncomparableBounds.
//
// Complexity: every operation is O(1) time and allocation-free except
// Complement, which allocates a slice of at most two Intervals.
package interval
