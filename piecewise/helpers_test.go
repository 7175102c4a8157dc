// SPDX-License-Identifier: MIT
// Package piecewise_test contains shared fixtures and reference models for
// the piecewise tests.
//
// Purpose:
//   - Deterministic random segment generators (seeded math/rand).
//   - Brute-force reference models for overlay and multiplication evaluated
//     on a probe grid that hits every bound and every gap between bounds.
//   - A go-cmp option that compares segments through their accessors.

package piecewise_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/stepfn/interval"
	"github.com/katalvlaran/stepfn/piecewise"
)

// Bounds of generated intervals are integers in [0, boundMax]; probes are the
// half-steps in [-1, boundMax+1] so both bounds and interiors are visited.
const (
	boundMax   = 20
	seedBase   = 42
	nRandTrial = 200
)

type seg = piecewise.Segment[float64, float64]

// segmentComparer makes cmp.Diff usable on segments with unexported fields.
var segmentComparer = cmp.Comparer(func(a, b seg) bool {
	return a.Interval() == b.Interval() && a.Value() == b.Value()
})

// probes returns the half-step grid used by the reference checks.
func probes() []float64 {
	out := make([]float64, 0, 2*(boundMax+3))
	for p := -2; p <= 2*(boundMax+1); p++ {
		out = append(out, float64(p)/2)
	}

	return out
}

// randomInterval draws an interval of any Kind with integer bounds, plus
// NaN-bounded ones that must behave as Empty.
func randomInterval(rng *rand.Rand) interval.Interval[float64] {
	a := float64(rng.Intn(boundMax))
	b := a + 1 + float64(rng.Intn(boundMax-int(a)))
	switch rng.Intn(13) {
	case 0:
		return interval.EmptySet[float64]()
	case 1:
		return interval.Point(a)
	case 2:
		return interval.MustClosed(a, b)
	case 3:
		return interval.MustOpen(a, b)
	case 4:
		return interval.MustLeftHalfOpen(a, b)
	case 5:
		return interval.MustRightHalfOpen(a, b)
	case 6:
		return interval.AtMost(a)
	case 7:
		return interval.Below(a)
	case 8:
		return interval.AtLeast(a)
	case 9:
		return interval.Above(a)
	case 10:
		return interval.Point(math.NaN())
	case 11:
		return interval.Below(math.NaN())
	default:
		return interval.All[float64]()
	}
}

// randomSegments draws n segments with small integer values in [-5, 5].
func randomSegments(rng *rand.Rand, n int) []seg {
	out := make([]seg, n)
	for i := range out {
		out[i] = piecewise.NewSegment(randomInterval(rng), float64(rng.Intn(11)-5))
	}

	return out
}

// newestWins is the reference model of overlay: the last segment containing
// p decides the value.
func newestWins(segs []seg, p float64) (float64, bool) {
	for i := len(segs) - 1; i >= 0; i-- {
		if segs[i].Interval().Contains(p) {
			return segs[i].Value(), true
		}
	}

	return 0, false
}

// MustDisjoint fails t when any probe point lies in two segments of f.
func MustDisjoint(t *testing.T, f *piecewise.Function[float64, float64], ctx string) {
	t.Helper()
	for _, p := range probes() {
		n := 0
		for _, s := range f.All() {
			if s.Interval().Contains(p) {
				n++
			}
		}
		if n > 1 {
			t.Fatalf("%s: point %v covered by %d segments:\n%v", ctx, p, n, f)
		}
	}
}

// MustAbsent fails t when f is defined at p.
func MustAbsent(t *testing.T, f *piecewise.Function[float64, float64], p float64) {
	t.Helper()
	if v, ok := f.ValueAt(p); ok {
		t.Fatalf("ValueAt(%v) = %v, want absent", p, v)
	}
}

// MustValue fails t when f is not defined at p or has a different value.
func MustValue(t *testing.T, f *piecewise.Function[float64, float64], p, want float64) {
	t.Helper()
	v, ok := f.ValueAt(p)
	if !ok {
		t.Fatalf("ValueAt(%v) absent, want %v", p, want)
	}
	if v != want {
		t.Fatalf("ValueAt(%v) = %v, want %v", p, v, want)
	}
}
