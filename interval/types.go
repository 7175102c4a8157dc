// SPDX-License-Identifier: MIT
// Package: stepfn/interval
//
// types.go — Kind taxonomy, the Interval value type and its constructors.
//
// Contract:
//   • Interval is immutable; every operation returns a new value.
//   • Bounded constructors validate and return sentinel errors; unbounded and
//     point constructors are total.
//   • Constructors normalise degenerate pairs so Kind is always the most
//     specific variant for the described set.

package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Kind tags the shape of an Interval.
type Kind uint8

const (
	// Empty is the empty set. It is the zero Kind.
	Empty Kind = iota
	// Singleton is the one-point set {a}.
	Singleton
	// Closed is [a, b].
	Closed
	// Open is (a, b).
	Open
	// LeftHalfOpen is (a, b].
	LeftHalfOpen
	// RightHalfOpen is [a, b).
	RightHalfOpen
	// UnboundedClosedRight is (-∞, b].
	UnboundedClosedRight
	// UnboundedOpenRight is (-∞, b).
	UnboundedOpenRight
	// UnboundedClosedLeft is [a, +∞).
	UnboundedClosedLeft
	// UnboundedOpenLeft is (a, +∞).
	UnboundedOpenLeft
	// Unbounded is the whole domain (-∞, +∞).
	Unbounded
)

var kindNames = [...]string{
	Empty:                "Empty",
	Singleton:            "Singleton",
	Closed:               "Closed",
	Open:                 "Open",
	LeftHalfOpen:         "LeftHalfOpen",
	RightHalfOpen:        "RightHalfOpen",
	UnboundedClosedRight: "UnboundedClosedRight",
	UnboundedOpenRight:   "UnboundedOpenRight",
	UnboundedClosedLeft:  "UnboundedClosedLeft",
	UnboundedOpenLeft:    "UnboundedOpenLeft",
	Unbounded:            "Unbounded",
}

// String returns the Kind name, e.g. "RightHalfOpen".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Interval is a convex subset of an ordered domain T.
//
// Fields are unexported so that every Interval in circulation went through a
// constructor or an algebra operation and therefore carries a normalised Kind.
// lo is meaningful for kinds with a finite lower bound, hi for kinds with a
// finite upper bound; Singleton stores its point in both.
type Interval[T constraints.Ordered] struct {
	kind Kind
	lo   T
	hi   T
}

// EmptySet returns the empty interval ∅ (same as the zero value).
func EmptySet[T constraints.Ordered]() Interval[T] {
	return Interval[T]{}
}

// Point returns the singleton {a}, or Empty when a is NaN.
func Point[T constraints.Ordered](a T) Interval[T] {
	if isNaN(a) {
		return Interval[T]{}
	}
	return Interval[T]{kind: Singleton, lo: a, hi: a}
}

// All returns the unbounded interval (-∞, +∞).
func All[T constraints.Ordered]() Interval[T] {
	return Interval[T]{kind: Unbounded}
}

// AtMost returns (-∞, b]. Like every ray it is Empty when the bound is NaN.
func AtMost[T constraints.Ordered](b T) Interval[T] {
	return ray(UnboundedClosedRight, b)
}

// Below returns (-∞, b).
func Below[T constraints.Ordered](b T) Interval[T] {
	return ray(UnboundedOpenRight, b)
}

// AtLeast returns [a, +∞).
func AtLeast[T constraints.Ordered](a T) Interval[T] {
	return ray(UnboundedClosedLeft, a)
}

// Above returns (a, +∞).
func Above[T constraints.Ordered](a T) Interval[T] {
	return ray(UnboundedOpenLeft, a)
}

// ray builds a half-unbounded interval of kind k with finite bound v.
func ray[T constraints.Ordered](k Kind, v T) Interval[T] {
	switch {
	case isNaN(v):
		return Interval[T]{}
	case k == UnboundedClosedRight || k == UnboundedOpenRight:
		return Interval[T]{kind: k, hi: v}
	default:
		return Interval[T]{kind: k, lo: v}
	}
}

// NewClosed returns [a, b]. NewClosed(a, a) is the singleton {a}.
//
// Errors:
//   - ErrInvertedBounds     if b < a.
//   - ErrIncomparableBounds if a and b cannot be ordered (NaN).
func NewClosed[T constraints.Ordered](a, b T) (Interval[T], error) {
	return newBounded(Closed, a, b)
}

// NewOpen returns (a, b). NewOpen(a, a) is Empty.
// Errors as NewClosed.
func NewOpen[T constraints.Ordered](a, b T) (Interval[T], error) {
	return newBounded(Open, a, b)
}

// NewLeftHalfOpen returns (a, b]. NewLeftHalfOpen(a, a) is Empty.
// Errors as NewClosed.
func NewLeftHalfOpen[T constraints.Ordered](a, b T) (Interval[T], error) {
	return newBounded(LeftHalfOpen, a, b)
}

// NewRightHalfOpen returns [a, b). NewRightHalfOpen(a, a) is Empty.
// Errors as NewClosed.
func NewRightHalfOpen[T constraints.Ordered](a, b T) (Interval[T], error) {
	return newBounded(RightHalfOpen, a, b)
}

// MustClosed is NewClosed that panics on invalid bounds.
// Intended for literals in tests and examples.
func MustClosed[T constraints.Ordered](a, b T) Interval[T] {
	return must(NewClosed(a, b))
}

// MustOpen is NewOpen that panics on invalid bounds.
func MustOpen[T constraints.Ordered](a, b T) Interval[T] {
	return must(NewOpen(a, b))
}

// MustLeftHalfOpen is NewLeftHalfOpen that panics on invalid bounds.
func MustLeftHalfOpen[T constraints.Ordered](a, b T) Interval[T] {
	return must(NewLeftHalfOpen(a, b))
}

// MustRightHalfOpen is NewRightHalfOpen that panics on invalid bounds.
func MustRightHalfOpen[T constraints.Ordered](a, b T) Interval[T] {
	return must(NewRightHalfOpen(a, b))
}

// newBounded validates (a, b) and builds an interval of the requested
// bounded kind, normalising a == b.
func newBounded[T constraints.Ordered](k Kind, a, b T) (Interval[T], error) {
	c, ok := compareValues(a, b)
	if !ok {
		return Interval[T]{}, fmt.Errorf("%s(%v, %v): %w", k, a, b, ErrIncomparableBounds)
	}
	if c > 0 {
		return Interval[T]{}, fmt.Errorf("%s(%v, %v): %w", k, a, b, ErrInvertedBounds)
	}
	if c == 0 {
		if k == Closed {
			return Point(a), nil
		}

		return Interval[T]{}, nil
	}

	return Interval[T]{kind: k, lo: a, hi: b}, nil
}

func must[T constraints.Ordered](iv Interval[T], err error) Interval[T] {
	if err != nil {
		panic(err)
	}

	return iv
}

// Kind reports the variant of iv.
func (iv Interval[T]) Kind() Kind { return iv.kind }

// IsEmpty reports whether iv is the empty set.
func (iv Interval[T]) IsEmpty() bool { return iv.kind == Empty }

// Lower returns the finite lower bound and true, or the zero T and false when
// iv is Empty or unbounded below.
func (iv Interval[T]) Lower() (T, bool) {
	b := iv.lower()
	if iv.kind == Empty || b.inf {
		var zero T
		return zero, false
	}

	return b.v, true
}

// Upper returns the finite upper bound and true, or the zero T and false when
// iv is Empty or unbounded above.
func (iv Interval[T]) Upper() (T, bool) {
	b := iv.upper()
	if iv.kind == Empty || b.inf {
		var zero T
		return zero, false
	}

	return b.v, true
}

// LowerClosed reports whether iv has a finite lower bound that belongs to it.
func (iv Interval[T]) LowerClosed() bool {
	b := iv.lower()
	return iv.kind != Empty && !b.inf && b.closed
}

// UpperClosed reports whether iv has a finite upper bound that belongs to it.
func (iv Interval[T]) UpperClosed() bool {
	b := iv.upper()
	return iv.kind != Empty && !b.inf && b.closed
}
