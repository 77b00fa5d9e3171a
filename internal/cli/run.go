package cli

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/FinnBaltazar1111/kitsune/internal/application/adapter"
	"github.com/FinnBaltazar1111/kitsune/internal/application/engine"
	"github.com/FinnBaltazar1111/kitsune/internal/application/game"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/sequence"
	"github.com/FinnBaltazar1111/kitsune/internal/infrastructure/ebitenhost"
)

const (
	screenWidth  = 320
	screenHeight = 240
	screenScale  = 2
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Strategy string
	Play     string
	Save     string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo host game",
		Long: `Run the demo host: a box driven by the six-slot input vector at the
host frame rate. The engine records and replays the box's input.

Example:
  kitsune run --strategy event --save session.json
  kitsune run --play session.json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts)
		},
	}

	cmd.Flags().StringVar(&opts.Strategy, "strategy", "", "input adapter strategy (direct|event)")
	cmd.Flags().StringVar(&opts.Play, "play", "", "sequence file to play on startup")
	cmd.Flags().StringVar(&opts.Save, "save", "", "filename for F5 saves")

	return cmd
}

func runDemo(opts *RunOptions) error {
	cfg, err := opts.configLoader().LoadEngine()
	if err != nil {
		return err
	}
	if opts.Strategy != "" {
		cfg.Strategy = opts.Strategy
	}

	inputs := ebitenhost.New(input.KeyMap(cfg.Keys))
	inputs.ReadKeyboard = true

	var a adapter.Adapter
	switch cfg.Strategy {
	case "direct":
		a = adapter.NewDirect(inputs, inputs, inputs, slog.Default())
	case "event":
		tap := time.Duration(cfg.TapDurationMS) * time.Millisecond
		a = adapter.NewEvent(inputs, inputs, inputs, tap, slog.Default())
	default:
		return fmt.Errorf("unknown strategy %q: must be direct or event", cfg.Strategy)
	}

	ctrl := engine.New(a, inputs, cfg.Framerate, slog.Default())

	if opts.Play != "" {
		seq, err := sequence.LoadFile(opts.Play)
		if err != nil {
			return err
		}
		if err := ctrl.StartPlayback(seq); err != nil {
			return err
		}
	}

	g := game.New(inputs, ctrl, screenWidth, screenHeight, opts.Save)

	ebiten.SetWindowSize(screenWidth*screenScale, screenHeight*screenScale)
	ebiten.SetWindowTitle("Kitsune Demo Host")
	ebiten.SetTPS(cfg.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("demo host exited: %w", err)
	}
	return nil
}
