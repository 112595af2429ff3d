// Package cli implements the bailey command-line interface using Cobra.
// It provides commands for launching AI coding agents in sandboxed
// containers, plus diagnostics for the local container runtime and
// credential setup.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/andybons/bailey/internal/log"
)

var (
	verbose     bool
	jsonOut     bool
	runtimeFlag string
)

var rootCmd = &cobra.Command{
	Use:   "bailey",
	Short: "Bailey - Sandboxed launcher for AI coding agents",
	Long: `Bailey launches an AI coding agent (codex, copilot) inside a
sandboxed container. Your working directory is mounted at /workspace,
the agent's credentials are injected from your host setup, and the
agent runs with full autonomy inside the sandbox.

Core promise: bailey codex just works - the image is built on first
use, credentials are found where the agent's own CLI left them, and
the container's exit code is your exit code.

Exit codes:
  0    the container exited cleanly
  1    bad configuration or another local failure
  2    the image build failed, or --no-build found no image
  n    the container exited with code n (passed through verbatim)`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := log.Init(log.Options{Verbose: verbose, JSONFormat: jsonOut}); err != nil {
			// Logging is best-effort; fall back to the default logger.
			cmd.PrintErrf("Warning: failed to initialize logging: %v\n", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "log in JSON format")
	rootCmd.PersistentFlags().StringVar(&runtimeFlag, "runtime", "", "container runtime to use: docker or podman (default: auto-detect)")
}
