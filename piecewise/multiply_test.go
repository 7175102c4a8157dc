// SPDX-License-Identifier: MIT
// Package piecewise_test verifies pointwise multiplication and scaling.

package piecewise_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepfn/interval"
	"github.com/katalvlaran/stepfn/piecewise"
)

// unsortedRays is built by overlays in the order [230, +∞) → 2, (-∞, 200) → 1,
// so its storage is not in interval order.
func unsortedRays() *piecewise.Function[float64, float64] {
	return piecewise.NewBuilder[float64, float64]().
		Overlay(piecewise.NewSegment(interval.AtLeast(230.0), 2.0)).
		Overlay(piecewise.NewSegment(interval.Below(200.0), 1.0)).
		Build()
}

// rayFrom180 is {[180, +∞) → -10}.
func rayFrom180() *piecewise.Function[float64, float64] {
	return piecewise.NewBuilder[float64, float64]().
		Overlay(piecewise.NewSegment(interval.AtLeast(180.0), -10.0)).
		Build()
}

// TestMultiply_TwoRays evaluates A·B inside, at and between the ray bounds.
func TestMultiply_TwoRays(t *testing.T) {
	p := piecewise.Multiply(unsortedRays(), rayFrom180())
	MustAbsent(t, p, 1)
	MustValue(t, p, 190, -10.0)
	MustAbsent(t, p, 200)
	MustValue(t, p, 230, -20.0)

	want := []seg{
		piecewise.NewSegment(interval.MustRightHalfOpen(180.0, 200.0), -10.0),
		piecewise.NewSegment(interval.AtLeast(230.0), -20.0),
	}
	if diff := cmp.Diff(want, p.Segments(), segmentComparer); diff != "" {
		t.Errorf("product storage mismatch (-want +got):\n%s", diff)
	}
}

// TestMultiply_DoesNotMutateOperands checks that sorting for the merge works
// on a private copy.
func TestMultiply_DoesNotMutateOperands(t *testing.T) {
	a := unsortedRays()
	before := a.Segments()
	_ = piecewise.Multiply(a, rayFrom180())
	if diff := cmp.Diff(before, a.Segments(), segmentComparer); diff != "" {
		t.Errorf("operand storage changed (-before +after):\n%s", diff)
	}
}

// TestMultiply_EmptyOperand yields an empty product on either side.
func TestMultiply_EmptyOperand(t *testing.T) {
	empty := piecewise.Empty[float64, float64]()
	var nilFn *piecewise.Function[float64, float64]
	for _, p := range []*piecewise.Function[float64, float64]{
		piecewise.Multiply(unsortedRays(), empty),
		piecewise.Multiply(empty, unsortedRays()),
		piecewise.Multiply(nilFn, rayFrom180()),
		piecewise.Multiply(empty, empty),
	} {
		require.NotNil(t, p)
		assert.True(t, p.IsEmpty())
		for _, x := range probes() {
			MustAbsent(t, p, x)
		}
	}
}

// TestMultiply_Refinement: a coarse operand times a fine one is refined to
// the common partition, in interval order.
func TestMultiply_Refinement(t *testing.T) {
	fine := piecewise.FromSortedDisjoint(
		piecewise.NewSegment(interval.MustLeftHalfOpen(0.0, 2.0), 2.0),
		piecewise.NewSegment(interval.MustLeftHalfOpen(2.0, 4.0), 3.0),
		piecewise.NewSegment(interval.MustLeftHalfOpen(4.0, 6.0), 5.0),
	)
	coarse := piecewise.FromSortedDisjoint(
		piecewise.NewSegment(interval.MustClosed(1.0, 10.0), 10.0),
	)

	want := []seg{
		piecewise.NewSegment(interval.MustClosed(1.0, 2.0), 20.0),
		piecewise.NewSegment(interval.MustLeftHalfOpen(2.0, 4.0), 30.0),
		piecewise.NewSegment(interval.MustLeftHalfOpen(4.0, 6.0), 50.0),
	}
	for name, p := range map[string]*piecewise.Function[float64, float64]{
		"fine*coarse": piecewise.Multiply(fine, coarse),
		"coarse*fine": piecewise.Multiply(coarse, fine),
	} {
		if diff := cmp.Diff(want, p.Segments(), segmentComparer); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// TestMultiply_SharedBoundaryTieBreak targets the aligned step with pending
// segments on both sides. The operands overlap at 5 (they break the
// disjointness contract on purpose, through the trusted constructor) so both
// boundary candidates are non-empty: only the right-induced one
// (pending left × new right) is emitted.
func TestMultiply_SharedBoundaryTieBreak(t *testing.T) {
	l := piecewise.FromSortedDisjoint(
		piecewise.NewSegment(interval.MustClosed(0.0, 5.0), 2.0),
		piecewise.NewSegment(interval.MustClosed(5.0, 10.0), 3.0),
	)
	r := piecewise.FromSortedDisjoint(
		piecewise.NewSegment(interval.MustClosed(0.0, 5.0), 5.0),
		piecewise.NewSegment(interval.MustClosed(5.0, 10.0), 7.0),
	)

	want := []seg{
		piecewise.NewSegment(interval.MustClosed(0.0, 5.0), 10.0),
		piecewise.NewSegment(interval.Point(5.0), 14.0), // 2 × 7, not 3 × 5
		piecewise.NewSegment(interval.MustClosed(5.0, 10.0), 21.0),
	}
	if diff := cmp.Diff(want, piecewise.Multiply(l, r).Segments(), segmentComparer); diff != "" {
		t.Errorf("tie-break mismatch (-want +got):\n%s", diff)
	}
}

// TestMultiply_TieBreakFallsBackToLeftInduced: when the right-induced
// candidate is empty the left-induced one is emitted instead.
func TestMultiply_TieBreakFallsBackToLeftInduced(t *testing.T) {
	l := piecewise.FromSortedDisjoint(
		piecewise.NewSegment(interval.MustRightHalfOpen(0.0, 5.0), 2.0),
		piecewise.NewSegment(interval.MustClosed(5.0, 10.0), 3.0),
	)
	r := piecewise.FromSortedDisjoint(
		piecewise.NewSegment(interval.MustClosed(0.0, 5.0), 5.0),
		piecewise.NewSegment(interval.MustClosed(5.0, 10.0), 7.0),
	)

	want := []seg{
		piecewise.NewSegment(interval.MustRightHalfOpen(0.0, 5.0), 10.0),
		piecewise.NewSegment(interval.Point(5.0), 15.0), // 3 × 5: [0, 5) × [5, 10] is empty
		piecewise.NewSegment(interval.MustClosed(5.0, 10.0), 21.0),
	}
	if diff := cmp.Diff(want, piecewise.Multiply(l, r).Segments(), segmentComparer); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}

// TestMultiply_RandomMatchesPointwise compares products of random overlay-built
// functions with the pointwise product of their evaluations.
func TestMultiply_RandomMatchesPointwise(t *testing.T) {
	rng := rand.New(rand.NewSource(seedBase + 1))
	for trial := 0; trial < nRandTrial; trial++ {
		l := piecewise.NewBuilder[float64, float64]().OverlayAll(randomSegments(rng, 1+rng.Intn(6))...).Build()
		r := piecewise.NewBuilder[float64, float64]().OverlayAll(randomSegments(rng, 1+rng.Intn(6))...).Build()
		p := piecewise.Multiply(l, r)

		MustDisjoint(t, p, "random product")
		for _, x := range probes() {
			lv, lok := l.ValueAt(x)
			rv, rok := r.ValueAt(x)
			pv, pok := p.ValueAt(x)
			if pok != (lok && rok) || (pok && pv != lv*rv) {
				t.Fatalf("trial %d: ValueAt(%v) = (%v, %v), want (%v, %v)\nL:\n%v\nR:\n%v\nP:\n%v",
					trial, x, pv, pok, lv*rv, lok && rok, l, r, p)
			}
		}
		domain := p.Domain()
		for i := 1; i < len(domain); i++ {
			if interval.Order(domain[i-1], domain[i]) >= 0 {
				t.Fatalf("trial %d: product not in interval order at %d:\n%v", trial, i, p)
			}
		}
	}
}

// TestMultiplyFunc_CustomValues multiplies a non-numeric value type.
func TestMultiplyFunc_CustomValues(t *testing.T) {
	type rate struct{ num, den int }
	mul := func(a, b rate) rate { return rate{a.num * b.num, a.den * b.den} }

	l := piecewise.FromSortedDisjoint(piecewise.NewSegment(interval.AtLeast(0), rate{1, 2}))
	r := piecewise.FromSortedDisjoint(
		piecewise.NewSegment(interval.MustRightHalfOpen(0, 10), rate{3, 4}),
		piecewise.NewSegment(interval.AtLeast(10), rate{1, 1}),
	)
	p := piecewise.MultiplyFunc(l, r, mul)

	v, ok := p.ValueAt(5)
	require.True(t, ok)
	assert.Equal(t, rate{3, 8}, v)
	v, ok = p.ValueAt(10)
	require.True(t, ok)
	assert.Equal(t, rate{1, 2}, v)
	_, ok = p.ValueAt(-1)
	assert.False(t, ok)
}

// TestMultiply_IntegerDomain exercises a non-float domain and value type.
func TestMultiply_IntegerDomain(t *testing.T) {
	l := piecewise.NewBuilder[int, int]().
		Overlay(piecewise.NewSegment(interval.All[int](), 2)).
		Overlay(piecewise.NewSegment(interval.MustClosed(10, 20), 3)).
		Build()
	r := piecewise.FromSortedDisjoint(piecewise.NewSegment(interval.MustOpen(15, 30), 4))
	p := piecewise.Multiply(l, r)

	for x, want := range map[int]int{16: 12, 20: 12, 21: 8, 29: 8} {
		v, ok := p.ValueAt(x)
		require.True(t, ok, "x=%d", x)
		assert.Equal(t, want, v, "x=%d", x)
	}
	for _, x := range []int{15, 30, 0} {
		_, ok := p.ValueAt(x)
		assert.False(t, ok, "x=%d", x)
	}
}

// TestScale checks (k·f)(p) == f(p)·k and that gaps stay gaps.
func TestScale(t *testing.T) {
	rng := rand.New(rand.NewSource(seedBase + 2))
	for trial := 0; trial < nRandTrial/4; trial++ {
		f := piecewise.NewBuilder[float64, float64]().OverlayAll(randomSegments(rng, 1+rng.Intn(6))...).Build()
		k := float64(rng.Intn(9) - 4)
		g := piecewise.Scale(f, k)

		require.Equal(t, f.Domain(), g.Domain(), "intervals and order are unchanged")
		for _, x := range probes() {
			fv, fok := f.ValueAt(x)
			gv, gok := g.ValueAt(x)
			require.Equal(t, fok, gok, "x=%v", x)
			if fok {
				require.Equal(t, fv*k, gv, "x=%v", x)
			}
		}
	}
}

// TestScaleFunc scales by a factor of a different type.
func TestScaleFunc(t *testing.T) {
	f := gappedRays()
	g := piecewise.ScaleFunc(f, 3, func(v float64, k int) float64 { return v * float64(k) })
	MustValue(t, g, 1, 3.0)
	MustValue(t, g, 230, 6.0)
	MustAbsent(t, g, 215)
	assert.True(t, piecewise.Scale(piecewise.Empty[float64, float64](), 2.0).IsEmpty())
}
