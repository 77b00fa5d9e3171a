package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FinnBaltazar1111/kitsune/internal/application/engine"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/input"
	"github.com/FinnBaltazar1111/kitsune/internal/domain/sequence"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <sequence-file>",
		Short: "Print statistics for a recorded sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd, args[0])
		},
	}
	return cmd
}

func inspect(cmd *cobra.Command, filename string) error {
	seq, err := sequence.LoadFile(filename)
	if err != nil {
		return err
	}

	duration := time.Duration(len(seq)) * time.Second / engine.DefaultFrameRate

	var held [input.SlotCount]int
	idle := 0
	for _, f := range seq {
		if !f.Vector.Any() {
			idle++
			continue
		}
		for _, s := range input.Slots {
			if f.Vector.Get(s) {
				held[s]++
			}
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d frames (%s at %d fps)\n", filename, len(seq), duration, engine.DefaultFrameRate)
	fmt.Fprintf(out, "  idle frames: %d\n", idle)
	for _, s := range input.Slots {
		if held[s] > 0 {
			fmt.Fprintf(out, "  %-6s held %d frames\n", s, held[s])
		}
	}
	return nil
}
