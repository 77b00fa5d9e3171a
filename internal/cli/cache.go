package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/FinnBaltazar1111/kitsune/internal/application/cache"
	"github.com/FinnBaltazar1111/kitsune/internal/infrastructure/store"
)

// CacheOptions holds flags for the cache commands.
type CacheOptions struct {
	*RootOptions
	Manifest string
	Database string
}

// NewCacheCommand creates the cache command group.
func NewCacheCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CacheOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the offline resource cache",
	}

	cmd.PersistentFlags().StringVar(&opts.Manifest, "manifest", "", "manifest file (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "cache database path (overrides config)")

	cmd.AddCommand(newCachePrimeCommand(opts))
	cmd.AddCommand(newCachePurgeCommand(opts))

	return cmd
}

func newCachePrimeCommand(opts *CacheOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prime",
		Short: "Fetch every manifest resource into the local store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, st, err := openCache(opts)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			return c.Prime(cmd.Context(), func(done, total int) {
				fmt.Fprintf(cmd.OutOrStdout(), "\rcaching %d/%d", done, total)
				if done == total {
					fmt.Fprintln(cmd.OutOrStdout())
				}
			})
		},
	}
}

func newCachePurgeCommand(opts *CacheOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Drop cached resources from other manifest versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, st, err := openCache(opts)
			if err != nil {
				return err
			}
			defer func() { _ = st.Close() }()

			n, err := c.Purge(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d stale resources\n", n)
			return nil
		},
	}
}

func openCache(opts *CacheOptions) (*cache.Cache, *store.SQLite, error) {
	cfg, err := opts.configLoader().LoadCache()
	if err != nil {
		return nil, nil, err
	}
	if opts.Manifest != "" {
		cfg.Manifest = opts.Manifest
	}
	if opts.Database != "" {
		cfg.Database = opts.Database
	}
	if cfg.Manifest == "" || cfg.Database == "" {
		return nil, nil, fmt.Errorf("cache needs both a manifest and a database path")
	}

	m, err := cache.LoadManifest(cfg.Manifest)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return cache.New(m, st, nil, slog.Default()), st, nil
}
