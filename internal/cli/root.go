// Package cli wires the kitsune commands.
package cli

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/FinnBaltazar1111/kitsune/internal/infrastructure/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool

	// ConfigFS is the embedded default configuration; the --config flag
	// points at a directory overriding it.
	ConfigFS  fs.FS
	ConfigDir string
}

// NewRootCommand creates the root command for the kitsune CLI.
func NewRootCommand(configFS fs.FS) *cobra.Command {
	opts := &RootOptions{ConfigFS: configFS}

	cmd := &cobra.Command{
		Use:   "kitsune",
		Short: "Kitsune - deterministic input recording and playback",
		Long: `Kitsune records a host game's per-frame input vector and replays it
with frame-exact fidelity, and mirrors the game's resources into an
offline cache.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel := slog.LevelInfo
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ConfigDir, "config", "", "config directory (defaults to built-in)")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewCacheCommand(opts))

	return cmd
}

// configLoader returns a loader over the --config directory when given, the
// embedded defaults otherwise.
func (o *RootOptions) configLoader() *config.Loader {
	if o.ConfigDir != "" {
		return config.NewLoader(o.ConfigDir)
	}
	return config.NewFSLoader(o.ConfigFS, "configs")
}
