// Package ease provides pure easing curves mapping linear time progress
// to eased progress.
//
// The package defines a small tagged [Spec] covering three curve families:
//
//   - Linear: identity
//   - Power: standard monotonic curves (quad..circ, in/out/in-out)
//   - Spring: decaying oscillation with overshoot
//
// Power curves satisfy f(0) = 0 and f(1) = 1 exactly and never leave
// [0, 1]. Spring curves deliberately overshoot: for any positive amplitude
// there are inputs in (0, 1) whose output exceeds 1. Callers must not clamp
// eased output; the overshoot is what makes spring interpolation visible
// downstream.
//
// # Example
//
//	spec, _ := ease.Parse("out-cubic")
//	eased := ease.Apply(0.5, spec)
//
// All functions are pure and safe for concurrent use.
package ease
