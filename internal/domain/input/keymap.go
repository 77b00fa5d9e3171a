package input

// KeyMap maps slots to platform key codes. A zero entry means the slot is
// unmapped and press/release for it becomes a no-op.
type KeyMap [SlotCount]int

// DefaultKeyMap is the fallback mapping used when the host has not exposed
// its own bindings: arrow keys for directions, Z for action, X for cancel.
var DefaultKeyMap = KeyMap{
	SlotLeft:   37,
	SlotRight:  39,
	SlotUp:     38,
	SlotDown:   40,
	SlotAction: 90,
	SlotCancel: 88,
}

// Code returns the platform key code for the slot and whether the slot is
// mapped at all.
func (m KeyMap) Code(s Slot) (int, bool) {
	if !s.Valid() || m[s] == 0 {
		return 0, false
	}
	return m[s], true
}

// Merge returns a copy of m with every nonzero entry of override applied on
// top. The host's live bindings win over the fixed table wherever present.
func (m KeyMap) Merge(override KeyMap) KeyMap {
	for i, code := range override {
		if code != 0 {
			m[i] = code
		}
	}
	return m
}
