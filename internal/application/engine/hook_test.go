package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHook_InstallIdempotent(t *testing.T) {
	ticks := &fakeTicks{available: true}
	calls := 0
	h := NewHook(ticks, func() { calls++ })

	assert.False(t, h.Installed())
	assert.True(t, h.Install())
	assert.True(t, h.Installed())

	// Re-install is a no-op reporting the installed state.
	assert.True(t, h.Install())
	assert.True(t, h.Install())
	assert.Len(t, ticks.observers, 1, "the observer registers exactly once")

	ticks.tick(3)
	assert.Equal(t, 3, calls)
}

func TestHook_Unavailable(t *testing.T) {
	ticks := &fakeTicks{available: false}
	h := NewHook(ticks, func() {})

	assert.False(t, h.Install())
	assert.False(t, h.Installed())

	// The host comes up later; retry succeeds.
	ticks.available = true
	assert.True(t, h.Install())
}

func TestHook_NilTickSource(t *testing.T) {
	h := NewHook(nil, func() {})
	assert.False(t, h.Install())

	h.Rebind(&fakeTicks{available: true})
	assert.True(t, h.Install())

	// Rebind after install changes nothing.
	other := &fakeTicks{available: true}
	h.Rebind(other)
	assert.Empty(t, other.observers)
}
