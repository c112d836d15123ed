// Package playback wraps a traversal generator in a step-sequencer
// state machine: configure, start, pause, resume, single-step, tick
// and reset, with every consumed step republished to observers along
// with the resulting accumulation delta.
//
// The controller owns the progress cursor; generators are pure index
// functions, so pausing, scrubbing speed or resetting can never drift
// from the canonical sequence. One controller is driven by exactly
// one caller loop at a time; it performs no internal pacing and no
// internal parallelism.
package playback
