package engine

import "github.com/FinnBaltazar1111/kitsune/internal/application/host"

// Hook is the one-time interception point on the host's frame loop. Once
// installed it observes every simulation tick for the rest of the process
// lifetime; there is no uninstall.
type Hook struct {
	ticks     host.TickSource
	onTick    func()
	installed bool
}

// NewHook creates a hook that will run onTick after each host frame.
func NewHook(ticks host.TickSource, onTick func()) *Hook {
	return &Hook{ticks: ticks, onTick: onTick}
}

// Install registers the tick observer with the host. It is idempotent: every
// call after the first is a no-op reporting the installed state. Install
// returns false while the host loop is unreachable, without side effects.
func (h *Hook) Install() bool {
	if h.installed {
		return true
	}
	if h.ticks == nil {
		return false
	}
	if !h.ticks.RegisterTick(h.onTick) {
		return false
	}
	h.installed = true
	return true
}

// Installed reports whether the hook has been installed.
func (h *Hook) Installed() bool {
	return h.installed
}

// Rebind points the hook at a new tick source. Only legal before install.
func (h *Hook) Rebind(ticks host.TickSource) {
	if !h.installed {
		h.ticks = ticks
	}
}
