// Package input defines the abstract six-slot input vector shared by the
// recorder, player and adapters.
package input

// Slot identifies one of the six fixed input slots.
type Slot int

const (
	SlotLeft Slot = iota
	SlotRight
	SlotUp
	SlotDown
	SlotAction
	SlotCancel
)

// SlotCount is the number of input slots.
const SlotCount = 6

// Slots lists every slot in index order.
var Slots = [SlotCount]Slot{SlotLeft, SlotRight, SlotUp, SlotDown, SlotAction, SlotCancel}

// String returns the string representation of the slot.
func (s Slot) String() string {
	switch s {
	case SlotLeft:
		return "Left"
	case SlotRight:
		return "Right"
	case SlotUp:
		return "Up"
	case SlotDown:
		return "Down"
	case SlotAction:
		return "Action"
	case SlotCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// Valid reports whether the slot is one of the six fixed slots.
func (s Slot) Valid() bool {
	return s >= SlotLeft && s <= SlotCancel
}

// Vector is the per-frame input state: exactly six named booleans.
// Vectors are values; Set returns a modified copy.
type Vector struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Action bool
	Cancel bool
}

// Zero is the all-released vector.
var Zero = Vector{}

// Get returns the state of the given slot.
func (v Vector) Get(s Slot) bool {
	switch s {
	case SlotLeft:
		return v.Left
	case SlotRight:
		return v.Right
	case SlotUp:
		return v.Up
	case SlotDown:
		return v.Down
	case SlotAction:
		return v.Action
	case SlotCancel:
		return v.Cancel
	default:
		return false
	}
}

// Set returns a copy of the vector with the given slot set to pressed.
func (v Vector) Set(s Slot, pressed bool) Vector {
	switch s {
	case SlotLeft:
		v.Left = pressed
	case SlotRight:
		v.Right = pressed
	case SlotUp:
		v.Up = pressed
	case SlotDown:
		v.Down = pressed
	case SlotAction:
		v.Action = pressed
	case SlotCancel:
		v.Cancel = pressed
	}
	return v
}

// FromSlot returns a vector asserting exactly the given slot.
func FromSlot(s Slot) Vector {
	return Zero.Set(s, true)
}

// Any reports whether any slot is pressed.
func (v Vector) Any() bool {
	return v != Zero
}
