package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlot_String(t *testing.T) {
	tests := []struct {
		slot     Slot
		expected string
	}{
		{SlotLeft, "Left"},
		{SlotRight, "Right"},
		{SlotUp, "Up"},
		{SlotDown, "Down"},
		{SlotAction, "Action"},
		{SlotCancel, "Cancel"},
		{Slot(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.slot.String())
		})
	}
}

func TestSlotConstants(t *testing.T) {
	// Verify the fixed slot indices
	assert.Equal(t, Slot(0), SlotLeft)
	assert.Equal(t, Slot(1), SlotRight)
	assert.Equal(t, Slot(2), SlotUp)
	assert.Equal(t, Slot(3), SlotDown)
	assert.Equal(t, Slot(4), SlotAction)
	assert.Equal(t, Slot(5), SlotCancel)
}

func TestVector_GetSet(t *testing.T) {
	v := Zero
	for _, s := range Slots {
		assert.False(t, v.Get(s))

		pressed := v.Set(s, true)
		assert.True(t, pressed.Get(s), "slot %s should be set", s)
		// Set returns a copy; the original is unchanged
		assert.False(t, v.Get(s))

		released := pressed.Set(s, false)
		assert.Equal(t, Zero, released)
	}
}

func TestVector_FromSlot(t *testing.T) {
	v := FromSlot(SlotAction)
	for _, s := range Slots {
		assert.Equal(t, s == SlotAction, v.Get(s))
	}
}

func TestVector_Any(t *testing.T) {
	assert.False(t, Zero.Any())
	assert.True(t, FromSlot(SlotLeft).Any())
	assert.True(t, Vector{Left: true, Action: true}.Any())
}
