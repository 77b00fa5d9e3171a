package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyMap_Code(t *testing.T) {
	code, ok := DefaultKeyMap.Code(SlotLeft)
	assert.True(t, ok)
	assert.Equal(t, 37, code)

	code, ok = DefaultKeyMap.Code(SlotAction)
	assert.True(t, ok)
	assert.Equal(t, 90, code)

	// Unmapped slot
	var empty KeyMap
	_, ok = empty.Code(SlotLeft)
	assert.False(t, ok)

	// Invalid slot
	_, ok = DefaultKeyMap.Code(Slot(42))
	assert.False(t, ok)
}

func TestKeyMap_Merge(t *testing.T) {
	override := KeyMap{SlotAction: 32} // remap action to space
	merged := DefaultKeyMap.Merge(override)

	code, ok := merged.Code(SlotAction)
	assert.True(t, ok)
	assert.Equal(t, 32, code)

	// Zero entries keep the default
	code, ok = merged.Code(SlotLeft)
	assert.True(t, ok)
	assert.Equal(t, 37, code)

	// Merge does not mutate the receiver
	code, _ = DefaultKeyMap.Code(SlotAction)
	assert.Equal(t, 90, code)
}
