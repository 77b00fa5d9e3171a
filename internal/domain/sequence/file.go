package sequence

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
)

// FileVersion is the current on-disk envelope version.
const FileVersion = "1.0"

// File is the on-disk envelope around a sequence.
type File struct {
	Version   string   `json:"version"`
	ID        string   `json:"id"`
	CreatedAt string   `json:"createdAt"`
	Frames    []record `json:"frames"`
}

// SaveFile writes the sequence to filename wrapped in a fresh envelope.
func SaveFile(filename string, s Sequence) error {
	if len(s) == 0 {
		return fmt.Errorf("no frames to save")
	}

	f := File{
		Version:   FileVersion,
		ID:        uuid.NewString(),
		CreatedAt: time.Now().Format(time.RFC3339),
		Frames:    make([]record, len(s)),
	}
	for i, fr := range s {
		f.Frames[i] = toRecord(fr)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(f); err != nil {
		return fmt.Errorf("failed to encode sequence file: %w", err)
	}

	return nil
}

// LoadFile reads an envelope from filename and returns its sequence.
func LoadFile(filename string) (Sequence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var f File
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode sequence file: %w", err)
	}

	s := make(Sequence, len(f.Frames))
	for i, r := range f.Frames {
		s[i] = fromRecord(r)
	}
	return s, nil
}

// GenerateFilename creates a filename based on the current time.
func GenerateFilename() string {
	return fmt.Sprintf("sequence_%s.json", time.Now().Format("20060102_150405"))
}
