package sequence

import (
	"encoding/json"
	"fmt"

	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
)

// record is the wire form of a single frame. Released slots are omitted so
// long idle stretches stay compact; absence and false are equivalent.
type record struct {
	Frame  int  `json:"frame"`
	Left   bool `json:"left,omitempty"`
	Right  bool `json:"right,omitempty"`
	Up     bool `json:"up,omitempty"`
	Down   bool `json:"down,omitempty"`
	Action bool `json:"action,omitempty"`
	Cancel bool `json:"cancel,omitempty"`
}

func toRecord(f Frame) record {
	return record{
		Frame:  f.Index,
		Left:   f.Vector.Left,
		Right:  f.Vector.Right,
		Up:     f.Vector.Up,
		Down:   f.Vector.Down,
		Action: f.Vector.Action,
		Cancel: f.Vector.Cancel,
	}
}

func fromRecord(r record) Frame {
	return Frame{
		Index: r.Frame,
		Vector: input.Vector{
			Left:   r.Left,
			Right:  r.Right,
			Up:     r.Up,
			Down:   r.Down,
			Action: r.Action,
			Cancel: r.Cancel,
		},
	}
}

// Encode serializes the sequence to its portable form: an ordered JSON array
// of frame records.
func Encode(s Sequence) ([]byte, error) {
	records := make([]record, len(s))
	for i, f := range s {
		records[i] = toRecord(f)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sequence: %w", err)
	}
	return data, nil
}

// Decode parses the portable form back into a sequence. Malformed input is
// reported as an error, never a panic; Encode and Decode round-trip exactly.
func Decode(data []byte) (Sequence, error) {
	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode sequence: %w", err)
	}
	s := make(Sequence, len(records))
	for i, r := range records {
		s[i] = fromRecord(r)
	}
	return s, nil
}
