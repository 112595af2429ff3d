package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/andybons/bailey/internal/system"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove stale build context directories",
	Long: `Scan for and remove stale bailey build contexts in the temp directory.

When bailey builds an image from its bundled Dockerfile, the build
context is materialized to a temporary directory and removed when the
build finishes. If bailey is killed mid-build, the directory is left
behind.

This command removes bailey-build-* directories older than the
specified age (default: 1 hour).`,
	RunE: runClean,
}

var (
	cleanMinAge time.Duration
	cleanForce  bool
	cleanDryRun bool
)

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().DurationVar(&cleanMinAge, "min-age", 1*time.Hour,
		"minimum age of build contexts to remove (e.g., 1h, 24h)")
	cleanCmd.Flags().BoolVarP(&cleanForce, "force", "f", false,
		"skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false,
		"show what would be removed without removing anything")
}

func runClean(cmd *cobra.Command, args []string) error {
	stale, err := system.FindStaleBuildContexts(cleanMinAge)
	if err != nil {
		return fmt.Errorf("scanning for stale build contexts: %w", err)
	}

	if len(stale) == 0 {
		fmt.Println("No stale build contexts found.")
		return nil
	}

	fmt.Printf("Found %d stale build context%s:\n\n", len(stale), plural(len(stale), "", "s"))

	var totalSize int64
	for _, dir := range stale {
		totalSize += dir.Size
		fmt.Printf("  %s\n", dir.Path)
		fmt.Printf("    Age: %s  Size: %s\n", formatDuration(time.Since(dir.ModTime)), system.FormatSize(dir.Size))
	}
	fmt.Printf("\nTotal size: %s\n\n", system.FormatSize(totalSize))

	if cleanDryRun {
		fmt.Println("Dry run mode - nothing was removed.")
		return nil
	}

	if !cleanForce {
		fmt.Print("Remove these directories? [y/N]: ")
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Canceled.")
			return nil
		}
		fmt.Println()
	}

	if err := system.RemoveStaleBuildContexts(stale, cleanMinAge); err != nil {
		return err
	}

	fmt.Printf("Removed %d build context%s.\n", len(stale), plural(len(stale), "", "s"))
	return nil
}

func plural(count int, singular, pluralForm string) string {
	if count == 1 {
		return singular
	}
	return pluralForm
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
	if d < time.Hour {
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%.1fh", d.Hours())
	}
	return fmt.Sprintf("%.0fd", d.Hours()/24)
}
