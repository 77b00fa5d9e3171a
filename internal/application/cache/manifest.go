// Package cache mirrors a fixed manifest of remote resources into a local
// store so the host game's assets stay available offline.
package cache

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the fixed list of resources the cache mirrors. Entries are
// paths relative to the base URL; the version tags every stored copy.
type Manifest struct {
	Version string   `yaml:"version"`
	BaseURL string   `yaml:"baseUrl"`
	Entries []string `yaml:"entries"`
}

// ParseManifest parses a YAML manifest document.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if m.Version == "" {
		return nil, fmt.Errorf("manifest has no version")
	}
	if m.BaseURL == "" {
		return nil, fmt.Errorf("manifest has no baseUrl")
	}
	return &m, nil
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	return ParseManifest(data)
}
