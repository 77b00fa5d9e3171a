package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfigs(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	engine := `{
  "strategy": "event",
  "tapDurationMs": 80,
  "framerate": 30,
  "keys": [0, 0, 0, 0, 32, 0]
}`
	cache := `{
  "manifest": "assets/manifest.yaml",
  "database": "cache.db"
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "engine.json"), []byte(engine), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cache.json"), []byte(cache), 0o644))
	return dir
}

func TestLoader_LoadEngine(t *testing.T) {
	loader := NewLoader(writeTestConfigs(t))

	cfg, err := loader.LoadEngine()
	require.NoError(t, err)

	assert.Equal(t, "event", cfg.Strategy)
	assert.Equal(t, 80, cfg.TapDurationMS)
	assert.Equal(t, 30, cfg.Framerate)
	assert.Equal(t, 32, cfg.Keys[4])
}

func TestLoader_LoadEngine_EnvOverride(t *testing.T) {
	t.Setenv("KITSUNE_STRATEGY", "direct")
	t.Setenv("KITSUNE_FRAMERATE", "60")

	loader := NewLoader(writeTestConfigs(t))
	cfg, err := loader.LoadEngine()
	require.NoError(t, err)

	assert.Equal(t, "direct", cfg.Strategy)
	assert.Equal(t, 60, cfg.Framerate)
	// Untouched values keep the file's settings
	assert.Equal(t, 80, cfg.TapDurationMS)
}

func TestLoader_LoadCache(t *testing.T) {
	loader := NewLoader(writeTestConfigs(t))

	cfg, err := loader.LoadCache()
	require.NoError(t, err)
	assert.Equal(t, "assets/manifest.yaml", cfg.Manifest)
	assert.Equal(t, "cache.db", cfg.Database)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader(writeTestConfigs(t))

	cfg, err := loader.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, "event", cfg.Engine.Strategy)
	assert.Equal(t, "cache.db", cfg.Cache.Database)
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader(t.TempDir())
	_, err := loader.LoadEngine()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read engine.json")
}

func TestLoader_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "engine.json"), []byte("{broken"), 0o644))

	_, err := NewLoader(dir).LoadEngine()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse engine.json")
}

func TestDefaultEngine(t *testing.T) {
	cfg := DefaultEngine()
	assert.Equal(t, "direct", cfg.Strategy)
	assert.Equal(t, 50, cfg.TapDurationMS)
	assert.Equal(t, 30, cfg.Framerate)
}
