// Package ebitenhost adapts an ebiten game loop to the engine's host
// capability surface: it is the pressed-key map, the key event sink and the
// tick source the demo host exposes to the engine.
package ebitenhost

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
)

// ebitenKeys maps slots to the physical keys the demo host listens to.
var ebitenKeys = [input.SlotCount]ebiten.Key{
	input.SlotLeft:   ebiten.KeyArrowLeft,
	input.SlotRight:  ebiten.KeyArrowRight,
	input.SlotUp:     ebiten.KeyArrowUp,
	input.SlotDown:   ebiten.KeyArrowDown,
	input.SlotAction: ebiten.KeyZ,
	input.SlotCancel: ebiten.KeyX,
}

// InputManager is the demo host's input state. Injected key state (from the
// engine's adapters) merges with the real keyboard, so recordings capture
// human play and playback drives the same surface the keyboard does.
type InputManager struct {
	mu       sync.Mutex
	pressed  map[int]bool
	bindings input.KeyMap
	ticks    []func()

	// ReadKeyboard merges the physical keyboard into SlotPressed. Off in
	// tests, on inside a running ebiten game.
	ReadKeyboard bool
}

// New creates an input manager exposing the given live bindings. A zero
// bindings map keeps the engine's fixed fallback table in charge.
func New(bindings input.KeyMap) *InputManager {
	return &InputManager{
		pressed:  make(map[int]bool),
		bindings: bindings,
	}
}

// RegisterTick implements host.TickSource. The manager is reachable as soon
// as it exists, so registration always succeeds.
func (m *InputManager) RegisterTick(fn func()) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks = append(m.ticks, fn)
	return true
}

// Tick runs registered observers in registration order. The game calls this
// at the end of Update, after its own frame work.
func (m *InputManager) Tick() {
	m.mu.Lock()
	observers := m.ticks
	m.mu.Unlock()
	for _, fn := range observers {
		fn()
	}
}

// SetKey implements host.KeyMap: the direct-state strategy writes here.
func (m *InputManager) SetKey(code int, down bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if down {
		m.pressed[code] = true
	} else {
		delete(m.pressed, code)
	}
}

// Key reports the injected state of a key code.
func (m *InputManager) Key(code int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pressed[code]
}

// DispatchKey implements host.KeyDispatcher. The demo host's "event path" is
// its own listener updating the pressed map, so synthetic events land in the
// same place direct mutation does.
func (m *InputManager) DispatchKey(code int, down bool) {
	m.SetKey(code, down)
}

// Bindings implements host.Bindings.
func (m *InputManager) Bindings() input.KeyMap {
	return m.bindings
}

// SlotPressed implements host.StateReader, merging injected state with the
// physical keyboard when enabled.
func (m *InputManager) SlotPressed(s input.Slot) bool {
	code, ok := input.DefaultKeyMap.Merge(m.bindings).Code(s)
	if ok && m.Key(code) {
		return true
	}
	if m.ReadKeyboard && s.Valid() {
		return ebiten.IsKeyPressed(ebitenKeys[s])
	}
	return false
}

// Axis implements host.StateReader. The raw vector is informational only.
func (m *InputManager) Axis() (float64, float64) {
	var x, y float64
	if m.SlotPressed(input.SlotLeft) {
		x -= 1
	}
	if m.SlotPressed(input.SlotRight) {
		x += 1
	}
	if m.SlotPressed(input.SlotUp) {
		y -= 1
	}
	if m.SlotPressed(input.SlotDown) {
		y += 1
	}
	return x, y
}
