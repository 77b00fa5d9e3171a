package adapter

import (
	"log/slog"
	"sync"
	"time"

	"github.com/FinnBaltazar1111/kitsune/internal/application/host"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
)

// DefaultTapDuration is how long a bare tap holds a key before the automatic
// release, modeling the minimum duration of a physical key press.
const DefaultTapDuration = 50 * time.Millisecond

// Event synthesizes native key events through the host's own event path.
// Higher fidelity than direct state mutation, at the cost of event-loop
// scheduling latency.
type Event struct {
	dispatch host.KeyDispatcher
	reader   host.StateReader
	keymap   input.KeyMap
	tap      time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	down map[int]bool // codes currently held by this adapter
	gen  map[int]int  // press generation, so a stale auto-release is dropped
}

// NewEvent creates an event-dispatch adapter. A non-positive tap duration
// falls back to DefaultTapDuration.
func NewEvent(dispatch host.KeyDispatcher, reader host.StateReader, bindings host.Bindings, tap time.Duration, logger *slog.Logger) *Event {
	if tap <= 0 {
		tap = DefaultTapDuration
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Event{
		dispatch: dispatch,
		reader:   reader,
		keymap:   resolveBindings(bindings),
		tap:      tap,
		logger:   logger,
		down:     make(map[int]bool),
		gen:      make(map[int]int),
	}
}

// Strategy identifies the adapter strategy.
func (e *Event) Strategy() string { return "event" }

// Bound reports whether the adapter can reach the host.
func (e *Event) Bound() bool {
	return e != nil && e.dispatch != nil && e.reader != nil
}

// ApplyVector dispatches only the presses and releases needed to bring the
// held-key set to exactly v, so applying the same vector twice dispatches
// nothing the second time.
func (e *Event) ApplyVector(v input.Vector) {
	if !e.Bound() {
		warnNotBound(e.logger, e.Strategy(), "apply vector")
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range input.Slots {
		code, ok := e.keymap.Code(s)
		if !ok {
			continue
		}
		e.setKeyLocked(code, v.Get(s))
	}
}

// ReadVector reads the host's current input state into a vector.
func (e *Event) ReadVector() input.Vector {
	if !e.Bound() {
		warnNotBound(e.logger, e.Strategy(), "read vector")
		return input.Zero
	}
	return readVector(e.reader)
}

// PressSlot dispatches a press and holds the key until an explicit release.
func (e *Event) PressSlot(s input.Slot) {
	e.setSlot(s, true, "press slot")
}

// ReleaseSlot dispatches a release for the slot.
func (e *Event) ReleaseSlot(s input.Slot) {
	e.setSlot(s, false, "release slot")
}

// TapSlot dispatches a press and schedules the release after the tap
// duration, unless the caller releases the slot explicitly first.
func (e *Event) TapSlot(s input.Slot) {
	if !e.Bound() {
		warnNotBound(e.logger, e.Strategy(), "tap slot")
		return
	}
	code, ok := e.keymap.Code(s)
	if !ok {
		return
	}
	e.mu.Lock()
	e.setKeyLocked(code, true)
	gen := e.gen[code]
	e.mu.Unlock()

	time.AfterFunc(e.tap, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		// A newer press or an explicit release already superseded this tap.
		if e.gen[code] != gen || !e.down[code] {
			return
		}
		e.setKeyLocked(code, false)
	})
}

// ReleaseAll dispatches a release for every mapped slot.
func (e *Event) ReleaseAll() {
	if !e.Bound() {
		warnNotBound(e.logger, e.Strategy(), "release all")
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, s := range input.Slots {
		if code, ok := e.keymap.Code(s); ok {
			e.setKeyLocked(code, false)
		}
	}
}

func (e *Event) setSlot(s input.Slot, down bool, op string) {
	if !e.Bound() {
		warnNotBound(e.logger, e.Strategy(), op)
		return
	}
	code, ok := e.keymap.Code(s)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.setKeyLocked(code, down)
}

// setKeyLocked dispatches only on state change. Callers hold e.mu.
func (e *Event) setKeyLocked(code int, down bool) {
	if e.down[code] == down {
		return
	}
	e.down[code] = down
	if down {
		e.gen[code]++
	}
	e.dispatch.DispatchKey(code, down)
}
