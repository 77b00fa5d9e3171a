package ebitenhost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
)

func TestInputManager_SetKey(t *testing.T) {
	m := New(input.KeyMap{})

	m.SetKey(37, true)
	assert.True(t, m.Key(37))
	assert.True(t, m.SlotPressed(input.SlotLeft))

	m.SetKey(37, false)
	assert.False(t, m.Key(37))
	assert.False(t, m.SlotPressed(input.SlotLeft))
}

func TestInputManager_DispatchKey(t *testing.T) {
	// Synthetic events land in the same pressed map direct mutation does.
	m := New(input.KeyMap{})

	m.DispatchKey(90, true)
	assert.True(t, m.SlotPressed(input.SlotAction))

	m.DispatchKey(90, false)
	assert.False(t, m.SlotPressed(input.SlotAction))
}

func TestInputManager_Bindings(t *testing.T) {
	bindings := input.KeyMap{input.SlotAction: 13}
	m := New(bindings)
	assert.Equal(t, bindings, m.Bindings())

	// The remapped code drives the slot; the default no longer does.
	m.SetKey(13, true)
	assert.True(t, m.SlotPressed(input.SlotAction))

	m.SetKey(13, false)
	m.SetKey(90, true)
	assert.False(t, m.SlotPressed(input.SlotAction))
}

func TestInputManager_Ticks(t *testing.T) {
	m := New(input.KeyMap{})

	var order []string
	assert.True(t, m.RegisterTick(func() { order = append(order, "first") }))
	assert.True(t, m.RegisterTick(func() { order = append(order, "second") }))

	m.Tick()
	m.Tick()
	assert.Equal(t, []string{"first", "second", "first", "second"}, order)
}

func TestInputManager_Axis(t *testing.T) {
	m := New(input.KeyMap{})

	x, y := m.Axis()
	assert.Zero(t, x)
	assert.Zero(t, y)

	m.SetKey(39, true) // right
	m.SetKey(38, true) // up
	x, y = m.Axis()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, -1.0, y)

	m.SetKey(37, true) // left cancels right
	x, _ = m.Axis()
	assert.Zero(t, x)
}
