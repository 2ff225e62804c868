// Package cmd implements the anchorsheet CLI commands.
//
// The root command dispatches to subcommands (replay, demo, version). Each
// subcommand registers itself with the root from an init function.
package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/go-drift/anchorsheet/cmd/anchorsheet/internal/config"
	"github.com/go-drift/anchorsheet/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

var (
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "anchorsheet",
	Short: "Multi-stop bottom sheet core: replay drags or try the terminal demo",
	Long: `anchorsheet drives a draggable bottom sheet whose stops come from anchors
placed in its content or from fixed heights.

Use "anchorsheet <command> --help" for more information about a command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		errors.SetHandler(&errors.LogHandler{
			Verbose: verbose,
			Logger:  log.New(cmd.ErrOrStderr(), "", log.LstdFlags),
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory containing "+config.FileName)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log error kinds and stack traces")
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return rootCmd.Execute()
}

func resolveConfig() (*config.Resolved, error) {
	return config.Resolve(configDir)
}
