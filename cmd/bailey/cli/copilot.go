package cli

import (
	"github.com/spf13/cobra"
)

var copilotCmd = &cobra.Command{
	Use:   "copilot [-- command]",
	Short: "Launch GitHub Copilot CLI in a sandboxed container",
	Long: `Launch GitHub Copilot CLI in a sandboxed container.

The current directory is mounted at /workspace and your GH_TOKEN and
GITHUB_TOKEN environment variables are forwarded into the container.
Copilot runs with --allow-all-tools since the container provides the
isolation.

Examples:
  # Start Copilot in the current directory
  bailey copilot

  # Work on a different project
  bailey copilot --mount-dir ~/src/project

  # Forward a port for a dev server the agent starts
  bailey copilot --docker-arg -p --docker-arg 3000:3000`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, "copilot", args)
	},
}

func init() {
	rootCmd.AddCommand(copilotCmd)
	addLaunchFlags(copilotCmd)
}
