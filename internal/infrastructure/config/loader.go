package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
)

// Loader loads configuration from JSON files using the fs.FS interface.
// Environment variables override file values.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a config loader rooted at a filesystem path.
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a config loader from an fs.FS.
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadEngine loads engine.json and applies environment overrides.
func (l *Loader) LoadEngine() (*EngineConfig, error) {
	cfg := DefaultEngine()
	if err := l.load("engine.json", cfg); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}
	return cfg, nil
}

// LoadCache loads cache.json and applies environment overrides.
func (l *Loader) LoadCache() (*CacheConfig, error) {
	var cfg CacheConfig
	if err := l.load("cache.json", &cfg); err != nil {
		return nil, err
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}
	return &cfg, nil
}

// LoadAll loads all base configurations.
func (l *Loader) LoadAll() (*Config, error) {
	engine, err := l.LoadEngine()
	if err != nil {
		return nil, err
	}

	cache, err := l.LoadCache()
	if err != nil {
		return nil, err
	}

	return &Config{
		Engine: engine,
		Cache:  cache,
	}, nil
}

func (l *Loader) load(name string, target any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
