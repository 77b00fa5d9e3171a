package config

// EngineConfig configures the controller and input adapter.
type EngineConfig struct {
	// Strategy selects the input adapter: "direct" or "event".
	Strategy string `json:"strategy" env:"KITSUNE_STRATEGY"`
	// TapDurationMS is the minimum held duration of a bare tap under the
	// event-dispatch strategy.
	TapDurationMS int `json:"tapDurationMs" env:"KITSUNE_TAP_DURATION_MS"`
	// Framerate is the host's simulation rate in ticks per second.
	Framerate int `json:"framerate" env:"KITSUNE_FRAMERATE"`
	// Keys overrides the fallback slot-to-key-code table. Zero entries
	// keep the default for that slot.
	Keys [6]int `json:"keys"`
}

// CacheConfig configures the offline resource cache.
type CacheConfig struct {
	Manifest string `json:"manifest" env:"KITSUNE_MANIFEST"`
	Database string `json:"database" env:"KITSUNE_CACHE_DB"`
}

// Config holds all loaded configurations.
type Config struct {
	Engine *EngineConfig
	Cache  *CacheConfig
}

// DefaultEngine returns the engine defaults used when no config file exists.
func DefaultEngine() *EngineConfig {
	return &EngineConfig{
		Strategy:      "direct",
		TapDurationMS: 50,
		Framerate:     30,
	}
}
