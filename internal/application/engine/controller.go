// Package engine implements the recording and playback session: a single
// long-lived state machine that snapshots the host's input vector on every
// observed tick while recording, and drives logged vectors back through the
// input adapter while playing.
package engine

import (
	"log/slog"
	"sync"
	"time"

	"github.com/FinnBaltazar1111/kitsune/internal/application/adapter"
	"github.com/FinnBaltazar1111/kitsune/internal/application/host"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/sequence"
)

// DefaultFrameRate is the host's nominal simulation rate in ticks per second.
const DefaultFrameRate = 30

// Status is a point-in-time snapshot of the session for debugging.
type Status struct {
	Mode          Mode
	Cursor        int
	SequenceLen   int
	HookInstalled bool
	Bound         bool
	Strategy      string
}

// Controller is the session: it owns the sequence, the mode and the playback
// cursor, and coordinates the recorder and player callbacks on each host
// tick. Create once and keep for the process lifetime.
//
// All session state is guarded by one mutex so a multi-threaded host cannot
// violate the single-writer invariant; the tick callback and the public
// operations serialize behind it.
type Controller struct {
	mu sync.Mutex

	adapter adapter.Adapter
	hook    *Hook

	mode    Mode
	seq     sequence.Sequence
	cursor  int
	counter int

	frameRate int
	logger    *slog.Logger
}

// New creates a controller. adapter and ticks may be nil when the host is not
// ready yet; bind them later with Bind. A non-positive frameRate falls back
// to DefaultFrameRate.
func New(a adapter.Adapter, ticks host.TickSource, frameRate int, logger *slog.Logger) *Controller {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		adapter:   a,
		mode:      ModeIdle,
		frameRate: frameRate,
		logger:    logger,
	}
	c.hook = NewHook(ticks, c.onTick)
	return c
}

// Bind attaches the controller to a host. Rebinding the tick source is only
// possible while the hook is not yet installed.
func (c *Controller) Bind(a adapter.Adapter, ticks host.TickSource) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.adapter = a
	c.hook.Rebind(ticks)
}

// onTick runs once per host frame, after the host's own work: recorder first,
// then player, in that fixed order.
func (c *Controller) onTick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recordTick()
	c.playTick()
}

// recordTick appends the current host vector while recording. Recording N
// observed ticks yields exactly N frames, indices 0..N-1.
func (c *Controller) recordTick() {
	if c.mode != ModeRecording {
		return
	}
	if !c.bound() {
		c.logger.Warn("recording tick with no bound adapter")
		return
	}
	c.seq = append(c.seq, sequence.Frame{Index: c.counter, Vector: c.adapter.ReadVector()})
	c.counter++
}

// playTick applies the next logged vector and reports whether a frame was
// consumed. Exhausting the sequence is normal termination: the session goes
// idle, every key is released and the cursor resets.
func (c *Controller) playTick() bool {
	if c.mode != ModePlaying {
		return false
	}
	if c.cursor >= len(c.seq) {
		c.finishPlayback()
		return false
	}
	if c.bound() {
		c.adapter.ApplyVector(c.seq[c.cursor].Vector)
	} else {
		c.logger.Warn("playback tick with no bound adapter")
	}
	c.cursor++
	if c.cursor >= len(c.seq) {
		c.finishPlayback()
		return true
	}
	return true
}

func (c *Controller) finishPlayback() {
	c.mode = ModeIdle
	c.cursor = 0
	if c.bound() {
		c.adapter.ReleaseAll()
	}
	c.logger.Info("playback finished", "frames", len(c.seq))
}

// StartRecording clears the sequence, resets the frame counter and begins
// snapshotting the host vector each tick. Any active playback stops first.
func (c *Controller) StartRecording() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.hook.Install() {
		return ErrHookUnavailable
	}
	c.seq = nil
	c.counter = 0
	c.cursor = 0
	c.mode = ModeRecording
	c.logger.Info("recording started")
	return nil
}

// StopRecording goes idle and returns a snapshot copy of what was recorded.
// The returned sequence does not alias the live one.
func (c *Controller) StopRecording() sequence.Sequence {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModeRecording {
		c.mode = ModeIdle
		c.logger.Info("recording stopped", "frames", len(c.seq))
	}
	return c.seq.Clone()
}

// StartPlayback begins replaying seq on the host's ticks. A nil or empty
// argument replays the session's current sequence. Starting while recording
// stops the recording in the same critical section, so no tick observes both
// modes. An empty resulting sequence is rejected with ErrEmptySequence and
// the session is left unchanged.
func (c *Controller) StartPlayback(seq sequence.Sequence) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.seq
	if len(seq) > 0 {
		target = seq.Clone()
	}
	if len(target) == 0 {
		c.logger.Warn("playback requested with empty sequence")
		return ErrEmptySequence
	}
	if !c.hook.Install() {
		return ErrHookUnavailable
	}

	c.seq = target
	c.cursor = 0
	c.counter = 0
	c.mode = ModePlaying
	c.logger.Info("playback started", "frames", len(target))
	return nil
}

// StartPlaybackEncoded decodes a serialized sequence and plays it. A decode
// failure aborts the operation and leaves the prior session state untouched.
func (c *Controller) StartPlaybackEncoded(data []byte) error {
	seq, err := sequence.Decode(data)
	if err != nil {
		return err
	}
	return c.StartPlayback(seq)
}

// StopPlayback goes idle, resets the cursor and releases every key, whether
// or not playback was active, so a manual stop can never leave a stuck key.
func (c *Controller) StopPlayback() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode == ModePlaying {
		c.logger.Info("playback stopped", "cursor", c.cursor)
	}
	c.mode = ModeIdle
	c.cursor = 0
	if c.bound() {
		c.adapter.ReleaseAll()
	}
}

// StepPlayback manually drives a single playback frame and reports whether a
// frame was applied. Only meaningful while playing.
func (c *Controller) StepPlayback() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playTick()
}

// Export serializes the session's current sequence to its portable form.
func (c *Controller) Export() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sequence.Encode(c.seq)
}

// Import replaces the session's sequence wholesale with a decoded one. On
// decode failure the prior sequence is kept.
func (c *Controller) Import(data []byte) error {
	seq, err := sequence.Decode(data)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = seq
	c.cursor = 0
	return nil
}

// Sequence returns a snapshot copy of the session's current sequence.
func (c *Controller) Sequence() sequence.Sequence {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.Clone()
}

// Press asserts a single slot on the host.
func (c *Controller) Press(s input.Slot) {
	if a := c.boundAdapter("press"); a != nil {
		a.PressSlot(s)
	}
}

// Release releases a single slot on the host.
func (c *Controller) Release(s input.Slot) {
	if a := c.boundAdapter("release"); a != nil {
		a.ReleaseSlot(s)
	}
}

// Tap holds a slot for the given number of frames, then releases it. With
// frames <= 0 the adapter's minimum tap duration is used. The wait is
// wall-clock, independent of observed ticks, and is not cancellable once
// started; stopping playback or recording does not interrupt it.
func (c *Controller) Tap(s input.Slot, frames int) {
	a := c.boundAdapter("tap")
	if a == nil {
		return
	}
	d := c.FrameDuration(frames)
	if frames <= 0 {
		d = adapter.DefaultTapDuration
	}
	a.PressSlot(s)
	time.Sleep(d)
	a.ReleaseSlot(s)
}

// WaitFrames suspends the caller for the wall-clock duration of n host
// frames. Not cancellable once started.
func (c *Controller) WaitFrames(n int) {
	time.Sleep(c.FrameDuration(n))
}

// FrameDuration returns the wall-clock duration of n host frames.
func (c *Controller) FrameDuration(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(c.frameRate)
}

// Vector reads the host's current input state.
func (c *Controller) Vector() input.Vector {
	if a := c.boundAdapter("read vector"); a != nil {
		return a.ReadVector()
	}
	return input.Zero
}

// SetVector applies an arbitrary full vector to the host. Unlike the builder
// this supports any slot combination within one frame.
func (c *Controller) SetVector(v input.Vector) {
	if a := c.boundAdapter("set vector"); a != nil {
		a.ApplyVector(v)
	}
}

// ReleaseAll releases every slot on the host.
func (c *Controller) ReleaseAll() {
	if a := c.boundAdapter("release all"); a != nil {
		a.ReleaseAll()
	}
}

// Status returns a snapshot of the session for inspection.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := Status{
		Mode:          c.mode,
		Cursor:        c.cursor,
		SequenceLen:   len(c.seq),
		HookInstalled: c.hook.Installed(),
		Bound:         c.bound(),
	}
	if c.bound() {
		st.Strategy = c.adapter.Strategy()
	}
	return st
}

// Mode returns the session's current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *Controller) bound() bool {
	return c.adapter != nil && c.adapter.Bound()
}

// boundAdapter returns the adapter when usable, logging a warning otherwise.
// Holding c.mu only to fetch the reference keeps slow adapter calls (event
// dispatch, taps) outside the session lock.
func (c *Controller) boundAdapter(op string) adapter.Adapter {
	c.mu.Lock()
	a := c.adapter
	c.mu.Unlock()
	if a == nil || !a.Bound() {
		c.logger.Warn("not bound to host", "op", op)
		return nil
	}
	return a
}
