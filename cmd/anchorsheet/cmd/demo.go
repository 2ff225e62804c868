package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/anchorsheet/cmd/anchorsheet/internal/tui"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Run the terminal demo",
		Long: `Open a map with a bottom sheet in the terminal.

Drag the sheet with the mouse, or use the keyboard:
  k/up, j/down   step between stops
  e, c           expand, collapse
  /              search
  q              quit`,
		Args: cobra.NoArgs,
		RunE: runDemo,
	})
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	return tui.Start(*cfg)
}
