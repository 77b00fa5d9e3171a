package engine

// Mode represents the current state of the session.
type Mode int

const (
	ModeIdle Mode = iota
	ModeRecording
	ModePlaying
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeRecording:
		return "Recording"
	case ModePlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}
