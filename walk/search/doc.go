// Package search implements the per-worker sampling loop: draw a
// candidate step sequence, score it against the Recorder's catalogue, and
// insert novel or improved representatives.
//
// One Simulator belongs to exactly one goroutine/OS thread; it shares
// nothing with its siblings except the *record.Recorder handle. Workers
// never synchronize with each other directly.
package search
