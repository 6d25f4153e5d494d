// Package engine executes animation timelines against target elements.
//
// The unit of execution is the [Slot]: a set of element handles, one
// immutable [timeline.Master], stagger offsets for both play directions,
// an interrupt policy, and per-element execution state. Slots are driven
// through one of two modes selected once at construction:
//
//   - [Timed]: the host calls Tick with a monotonic clock reading each
//     frame; the slot completes when every property of every element has
//     reached full time progress.
//   - [Scrubbed]: the host supplies a scalar progress in [0,1] on every
//     call; the slot tracks whatever it is given and never completes on
//     its own.
//
// Time progress is clamped to [0,1] exactly once, at the clock boundary,
// before easing; eased progress is deliberately unbounded so springs can
// overshoot. Within one tick every property of one element is emitted as
// a single atomic batch.
//
// Recoverable conditions (unknown easing, unit mismatches, out-of-domain
// scrub input) degrade locally and go to the slot's [Reporter]; only
// build-time configuration errors prevent a slot from starting.
//
// # Thread Safety
//
// Slot instances are NOT thread-safe: the execution state has exactly one
// writer, the driving goroutine. Concurrency here means multiple
// independently progressing slots, each driven from a single logical
// thread of control.
package engine
