package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Store is the persistence surface for cached resources.
type Store interface {
	Put(ctx context.Context, path, version string, body []byte) error
	Get(ctx context.Context, path string) ([]byte, string, error)
	Has(ctx context.Context, path, version string) (bool, error)
	Purge(ctx context.Context, keepVersion string) (int64, error)
}

// ProgressFunc is called after each manifest entry completes, with the number
// of entries done so far and the total.
type ProgressFunc func(done, total int)

// Cache primes and serves the manifest's resources from a local store.
type Cache struct {
	manifest *Manifest
	store    Store
	client   *http.Client
	logger   *slog.Logger
}

// New creates a cache over the given manifest and store. client may be nil
// for http.DefaultClient.
func New(m *Manifest, st Store, client *http.Client, logger *slog.Logger) *Cache {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{manifest: m, store: st, client: client, logger: logger}
}

// Prime fetches every manifest entry into the store, skipping entries already
// present at the manifest version. onProgress, when non-nil, runs after each
// entry including skipped ones.
func (c *Cache) Prime(ctx context.Context, onProgress ProgressFunc) error {
	total := len(c.manifest.Entries)
	for i, entry := range c.manifest.Entries {
		ok, err := c.store.Has(ctx, entry, c.manifest.Version)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", entry, err)
		}
		if !ok {
			body, err := c.fetch(ctx, entry)
			if err != nil {
				return err
			}
			if err := c.store.Put(ctx, entry, c.manifest.Version, body); err != nil {
				return fmt.Errorf("failed to store %s: %w", entry, err)
			}
			c.logger.Debug("cached resource", "path", entry, "bytes", len(body))
		}
		if onProgress != nil {
			onProgress(i+1, total)
		}
	}
	c.logger.Info("cache primed", "entries", total, "version", c.manifest.Version)
	return nil
}

// Get returns the cached bytes for a manifest path.
func (c *Cache) Get(ctx context.Context, path string) ([]byte, error) {
	body, _, err := c.store.Get(ctx, path)
	return body, err
}

// Purge drops every stored row from versions other than the manifest's,
// returning how many were removed.
func (c *Cache) Purge(ctx context.Context) (int64, error) {
	return c.store.Purge(ctx, c.manifest.Version)
}

func (c *Cache) fetch(ctx context.Context, entry string) ([]byte, error) {
	url := strings.TrimRight(c.manifest.BaseURL, "/") + "/" + strings.TrimLeft(entry, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", entry, err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", entry, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status %d", entry, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", entry, err)
	}
	return body, nil
}
