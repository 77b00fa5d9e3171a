// Package adapter translates between the engine's abstract six-slot input
// vector and the host's native input representation. Adapters are the only
// components that touch host state.
package adapter

import (
	"log/slog"

	"github.com/FinnBaltazar1111/kitsune/internal/application/host"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
)

// Adapter drives the host's input state from abstract vectors.
//
// ApplyVector must leave the host's observable input state equal to exactly
// the given vector: every set slot asserted, every clear slot released, with
// no residue from a prior call. Applying the same vector twice is equivalent
// to applying it once.
//
// All methods on an adapter that is not yet bound to a host degrade to logged
// no-ops; the engine must tolerate being invoked before the host is ready.
type Adapter interface {
	ApplyVector(v input.Vector)
	ReadVector() input.Vector
	PressSlot(s input.Slot)
	ReleaseSlot(s input.Slot)
	ReleaseAll()
	Bound() bool
	Strategy() string
}

// resolveBindings merges the host's live bindings, when exposed, over the
// fixed default table.
func resolveBindings(b host.Bindings) input.KeyMap {
	if b == nil {
		return input.DefaultKeyMap
	}
	return input.DefaultKeyMap.Merge(b.Bindings())
}

func warnNotBound(logger *slog.Logger, strategy, op string) {
	logger.Warn("input adapter not bound to host", "strategy", strategy, "op", op)
}

func readVector(reader host.StateReader) input.Vector {
	var v input.Vector
	for _, s := range input.Slots {
		if reader.SlotPressed(s) {
			v = v.Set(s, true)
		}
	}
	return v
}
