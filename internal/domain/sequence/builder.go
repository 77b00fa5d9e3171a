package sequence

import "github.com/FinnBaltazar1111/kitsune/internal/domain/input"

// Starter starts playback of a built sequence.
type Starter interface {
	StartPlayback(Sequence) error
}

// Builder constructs sequences offline with a fluent interface. It keeps its
// own frame counter, independent of any recording session.
//
// Each call appends whole frames asserting at most one slot, so simultaneous
// multi-slot input within a single frame is not expressible through the
// builder; callers needing arbitrary combinations set the full vector on the
// controller instead.
type Builder struct {
	frames Sequence
	next   int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Hold appends n frames, each asserting exactly the given slot.
func (b *Builder) Hold(s input.Slot, n int) *Builder {
	v := input.FromSlot(s)
	for i := 0; i < n; i++ {
		b.frames = append(b.frames, Frame{Index: b.next, Vector: v})
		b.next++
	}
	return b
}

// Wait appends n all-released frames.
func (b *Builder) Wait(n int) *Builder {
	for i := 0; i < n; i++ {
		b.frames = append(b.frames, Frame{Index: b.next})
		b.next++
	}
	return b
}

// Left appends n frames holding left.
func (b *Builder) Left(n int) *Builder { return b.Hold(input.SlotLeft, n) }

// Right appends n frames holding right.
func (b *Builder) Right(n int) *Builder { return b.Hold(input.SlotRight, n) }

// Up appends n frames holding up.
func (b *Builder) Up(n int) *Builder { return b.Hold(input.SlotUp, n) }

// Down appends n frames holding down.
func (b *Builder) Down(n int) *Builder { return b.Hold(input.SlotDown, n) }

// Action appends n frames holding action.
func (b *Builder) Action(n int) *Builder { return b.Hold(input.SlotAction, n) }

// Cancel appends n frames holding cancel.
func (b *Builder) Cancel(n int) *Builder { return b.Hold(input.SlotCancel, n) }

// Len returns the number of frames accumulated so far.
func (b *Builder) Len() int {
	return len(b.frames)
}

// Build returns a finalized copy of the accumulated sequence. Further builder
// calls do not affect the returned value.
func (b *Builder) Build() Sequence {
	return b.frames.Clone()
}

// Play builds the sequence and hands it straight to playback.
func (b *Builder) Play(s Starter) error {
	return s.StartPlayback(b.Build())
}
