// Package stepfn is a small toolkit for piecewise-constant functions over
// ordered domains: prices that change by time of day, rates keyed by
// quantity brackets, masks that switch a signal on and off.
//
// 🚀 What is inside?
//
//	interval/  — the eleven interval kinds over any ordered type, with
//	             Contains, Intersect, Complement and a merge ordering
//	piecewise/ — Segment, the immutable Function, the overlay Builder
//	             (newest segment wins), Multiply and Scale
//
// ✨ Why stepfn?
//
//   - Generic – any ordered domain (ints, floats, strings, time offsets)
//     and any value type through the *Func variants
//   - Predictable – overlay never leaves overlaps; gaps are explicit and
//     ValueAt reports them as absent instead of guessing
//   - Pure Go – no cgo, no I/O, no global state
//
// Quick ASCII example (overlay of three segments):
//
//	5 ────────────────────────────────      (-∞, +∞) → 5
//	2                    [230 ─────────     [230, +∞) → 2
//	1 ───────── 200)                        (-∞, 200) → 1
//	=  1 ─ 200) [200 5 230) [230 2 ────
//
// See examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/stepfn
package stepfn
