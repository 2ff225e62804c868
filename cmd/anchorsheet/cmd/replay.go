package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/go-drift/anchorsheet/cmd/anchorsheet/internal/script"
	"github.com/go-drift/anchorsheet/pkg/anchor"
	"github.com/go-drift/anchorsheet/pkg/sheet"
)

var replayFinal bool

func init() {
	replayCmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Replay a scripted drag session and print the sheet state",
		Long: `Replay feeds the measurement, drag, snap and tick events of a script into
a sheet configured by anchorsheet.yaml and prints the committed and
presented state after every event.

A script's viewport, when set, overrides the configured one.`,
		Args: cobra.ExactArgs(1),
		RunE: runReplay,
	}
	replayCmd.Flags().BoolVar(&replayFinal, "final", false, "Print only the state after the last event")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s, err := script.Load(args[0])
	if err != nil {
		return err
	}

	viewport := cfg.Viewport
	if s.Viewport != nil {
		viewport = sheet.Viewport{Height: s.Viewport.Height, BottomInset: s.Viewport.BottomInset}
	}

	r := script.NewRunner(cfg.Sheet, viewport, anchor.NewRegistry())
	defer r.Close()

	out := cmd.OutOrStdout()
	var last *script.Step
	r.Run(s, func(step script.Step) {
		if replayFinal {
			last = &step
			return
		}
		printStep(out, step)
	})
	if last != nil {
		printStep(out, *last)
	}
	return nil
}

func printStep(w io.Writer, step script.Step) {
	snap := step.Snapshot
	fmt.Fprintf(w, "%3d %-8s height=%-7.1f offset=%-7.1f shown=%-5t presented=%-7.1f opacity=%.2f stops=%v\n",
		step.Index, step.Event,
		snap.ContainerHeight, snap.ContentOffset, snap.IsMainContentShown,
		step.Presentation.ContainerHeight, step.Presentation.ContentOpacity,
		snap.Stops)
}
