package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/andybons/bailey/internal/agent"
)

var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the agents bailey can launch",
	RunE:  runAgents,
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}

func runAgents(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tIMAGE\tCREDENTIALS\tCOMMAND")
	for _, name := range agent.Names() {
		spec := agent.Get(name)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			spec.Name, spec.Image, credentialSummary(spec), strings.Join(spec.Command, " "))
	}
	return tw.Flush()
}

// credentialSummary describes an agent's credential sources in one line.
func credentialSummary(spec *agent.Spec) string {
	var parts []string
	for _, f := range spec.Files {
		parts = append(parts, f.Path)
	}
	for _, name := range spec.Env {
		parts = append(parts, "$"+name)
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
