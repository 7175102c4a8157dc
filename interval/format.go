// SPDX-License-Identifier: MIT
// Package: stepfn/interval
//
// format.go — Stringer rendering of intervals in mathematical notation.

package interval

import (
	"fmt"
	"strings"
)

// String renders iv in mathematical notation: "∅", "{5}", "[1, 2)",
// "(-∞, 200)", "[230, +∞)", "(-∞, +∞)". Bound values use the %v verb.
func (iv Interval[T]) String() string {
	switch iv.kind {
	case Empty:
		return "∅"
	case Singleton:
		return fmt.Sprintf("{%v}", iv.lo)
	}

	var sb strings.Builder
	lo, hi := iv.lower(), iv.upper()
	switch {
	case lo.inf:
		sb.WriteString("(-∞")
	case lo.closed:
		fmt.Fprintf(&sb, "[%v", lo.v)
	default:
		fmt.Fprintf(&sb, "(%v", lo.v)
	}
	sb.WriteString(", ")
	switch {
	case hi.inf:
		sb.WriteString("+∞)")
	case hi.closed:
		fmt.Fprintf(&sb, "%v]", hi.v)
	default:
		fmt.Fprintf(&sb, "%v)", hi.v)
	}

	return sb.String()
}
