package cli

import (
	"github.com/spf13/cobra"
)

var codexCmd = &cobra.Command{
	Use:   "codex [-- command]",
	Short: "Launch OpenAI Codex CLI in a sandboxed container",
	Long: `Launch OpenAI Codex CLI in a sandboxed container.

The current directory is mounted at /workspace and your Codex
credentials (~/.codex/device_auth.json or ~/.codex/auth.json) are
mounted read-only into the container. Codex runs with --full-auto
since the container provides the isolation.

Examples:
  # Start Codex in the current directory
  bailey codex

  # Work on a different project
  bailey codex --mount-dir ~/src/project

  # Drop into a shell in the Codex image instead
  bailey codex -- bash`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, "codex", args)
	},
}

func init() {
	rootCmd.AddCommand(codexCmd)
	addLaunchFlags(codexCmd)
}
