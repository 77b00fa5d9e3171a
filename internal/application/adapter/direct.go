package adapter

import (
	"log/slog"

	"github.com/FinnBaltazar1111/kitsune/internal/application/host"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
)

// Direct mutates the host's pressed-key map in place, bypassing event
// dispatch. Lowest latency; requires the host's internal key map to be
// reachable.
type Direct struct {
	keys    host.KeyMap
	reader  host.StateReader
	keymap  input.KeyMap
	logger  *slog.Logger
}

// NewDirect creates a direct-state adapter over the host's key map. bindings
// may be nil when the host has not exposed a live mapping.
func NewDirect(keys host.KeyMap, reader host.StateReader, bindings host.Bindings, logger *slog.Logger) *Direct {
	if logger == nil {
		logger = slog.Default()
	}
	return &Direct{
		keys:   keys,
		reader: reader,
		keymap: resolveBindings(bindings),
		logger: logger,
	}
}

// Strategy identifies the adapter strategy.
func (d *Direct) Strategy() string { return "direct" }

// Bound reports whether the adapter can reach the host.
func (d *Direct) Bound() bool {
	return d != nil && d.keys != nil && d.reader != nil
}

// ApplyVector sets the host's input state to exactly v: every mapped slot is
// written, pressed or released, so no state from a prior call survives.
func (d *Direct) ApplyVector(v input.Vector) {
	if !d.Bound() {
		warnNotBound(d.logger, d.Strategy(), "apply vector")
		return
	}
	for _, s := range input.Slots {
		code, ok := d.keymap.Code(s)
		if !ok {
			continue // unmapped slot, nothing to drive
		}
		d.keys.SetKey(code, v.Get(s))
	}
}

// ReadVector reads the host's current input state into a vector.
func (d *Direct) ReadVector() input.Vector {
	if !d.Bound() {
		warnNotBound(d.logger, d.Strategy(), "read vector")
		return input.Zero
	}
	return readVector(d.reader)
}

// PressSlot asserts a single slot, leaving the others untouched.
func (d *Direct) PressSlot(s input.Slot) {
	d.setSlot(s, true, "press slot")
}

// ReleaseSlot releases a single slot, leaving the others untouched.
func (d *Direct) ReleaseSlot(s input.Slot) {
	d.setSlot(s, false, "release slot")
}

func (d *Direct) setSlot(s input.Slot, down bool, op string) {
	if !d.Bound() {
		warnNotBound(d.logger, d.Strategy(), op)
		return
	}
	code, ok := d.keymap.Code(s)
	if !ok {
		return
	}
	d.keys.SetKey(code, down)
}

// ReleaseAll releases every mapped slot.
func (d *Direct) ReleaseAll() {
	if !d.Bound() {
		warnNotBound(d.logger, d.Strategy(), "release all")
		return
	}
	for _, s := range input.Slots {
		if code, ok := d.keymap.Code(s); ok {
			d.keys.SetKey(code, false)
		}
	}
}
