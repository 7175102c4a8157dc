// SPDX-License-Identifier: MIT
// Package: stepfn/interval
//
// errors.go — sentinel errors for interval construction.
//
// Error policy:
//   • Only bounded constructors (Closed, Open, LeftHalfOpen, RightHalfOpen)
//     validate and return these sentinels. Algebra operations are total.
//   • Callers branch with errors.Is; constructors wrap with the offending
//     bounds via %w so the sentinel stays matchable.
//   • MustX constructors panic with the wrapped error (programmer error).

package interval

import "errors"

// ErrInvertedBounds indicates a bound pair whose upper bound is strictly
// less than its lower bound.
var ErrInvertedBounds = errors.New("interval: upper bound is less than lower bound")

// ErrIncomparableBounds indicates a bound pair that cannot be ordered
// (for floating-point domains: at least one bound is NaN).
var ErrIncomparableBounds = errors.New("interval: bounds are not comparable")
