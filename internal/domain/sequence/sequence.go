// Package sequence owns the ordered frame log, its portable JSON codec and
// the fluent builder used to construct sequences offline.
package sequence

import "github.com/FinnBaltazar1111/kitsune/internal/domain/input"

// Frame pairs an input vector with the frame index it was captured on.
// Index is informational only: playback selects frames by position in the
// sequence, so index and position coincide only when no frames were skipped.
type Frame struct {
	Index  int
	Vector input.Vector
}

// Sequence is an ordered, replayable log of per-tick input vectors.
// Insertion order is playback order.
type Sequence []Frame

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}
