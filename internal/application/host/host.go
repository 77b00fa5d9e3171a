// Package host declares the narrow capability surface the engine needs from
// the game it drives. The engine never reaches past these interfaces into
// host internals.
package host

import "github.com/FinnBaltazar1111/kitsune/internal/domain/input"

// TickSource lets the engine observe the completion of each simulation frame.
// RegisterTick appends fn to run after the host's own per-frame work has
// completed unmodified. It returns false when the host loop is not reachable
// yet; callers are expected to retry later.
type TickSource interface {
	RegisterTick(fn func()) bool
}

// StateReader exposes the host's current pressed state per slot. Axis is a
// raw directional read-out for display only; playback never consumes it.
type StateReader interface {
	SlotPressed(s input.Slot) bool
	Axis() (x, y float64)
}

// KeyMap is the host's mutable pressed-key map, keyed by platform key code.
// The direct-state adapter strategy writes through this surface.
type KeyMap interface {
	SetKey(code int, down bool)
	Key(code int) bool
}

// KeyDispatcher delivers synthetic key events through the host's own event
// path, as the event-dispatch adapter strategy requires.
type KeyDispatcher interface {
	DispatchKey(code int, down bool)
}

// Bindings exposes the host's live slot-to-key-code mapping. Hosts that have
// not exposed one return the zero map; unmapped slots fall back to the fixed
// default table.
type Bindings interface {
	Bindings() input.KeyMap
}
