package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andybons/bailey/internal/agent"
	"github.com/andybons/bailey/internal/config"
	"github.com/andybons/bailey/internal/container"
	"github.com/andybons/bailey/internal/log"
	"github.com/andybons/bailey/internal/run"
)

var (
	agentFlag        string
	mountDirFlag     string
	authFileFlag     string
	noAuthFlag       bool
	forceBuildFlag   bool
	noBuildFlag      bool
	noTTYFlag        bool
	nameFlag         string
	imageFlag        string
	dockerfileFlag   string
	buildContextFlag string
	dockerArgFlags   []string
)

var runCmd = &cobra.Command{
	Use:   "run [-- command]",
	Short: "Launch an agent in a sandboxed container",
	Long: `Launch an AI coding agent in a sandboxed container.

The mount directory (default: current directory) is mounted at
/workspace inside the container, and the agent's credentials are
injected from your host setup: codex mounts ~/.codex/device_auth.json
or ~/.codex/auth.json read-only, copilot forwards GH_TOKEN and
GITHUB_TOKEN. The image is built from the bundled Dockerfile on first
use.

Everything after -- replaces the agent's default command inside the
container.

Examples:
  # Launch the default agent (codex) in the current directory
  bailey run

  # Launch copilot instead
  bailey run --agent copilot

  # Mount a different directory
  bailey run --mount-dir ~/src/project

  # Use a specific credentials file
  bailey run --auth-file ~/work/auth.json

  # Run without credentials
  bailey run --no-auth

  # Force a rebuild of the image
  bailey run --force-build

  # Pass raw arguments to the container runtime
  bailey run --docker-arg -p --docker-arg 8080:8080

  # Run a one-off command instead of the agent
  bailey run -- bash -lc "make test"`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch(cmd, agentFlag, args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&agentFlag, "agent", "", "agent to launch (default: codex, or default_agent from config)")
	addLaunchFlags(runCmd)
}

// addLaunchFlags registers the flags shared by run and the per-agent
// shortcut commands.
func addLaunchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mountDirFlag, "mount-dir", ".", "directory to mount at /workspace")
	cmd.Flags().StringVar(&authFileFlag, "auth-file", "", "credentials file to mount, or 'none' to disable")
	cmd.Flags().BoolVar(&noAuthFlag, "no-auth", false, "launch without mounting credentials")
	cmd.Flags().BoolVar(&forceBuildFlag, "force-build", false, "rebuild the image even if it exists")
	cmd.Flags().BoolVar(&noBuildFlag, "no-build", false, "never build; fail if the image is missing")
	cmd.Flags().BoolVar(&noTTYFlag, "no-tty", false, "do not allocate a pseudo-TTY")
	cmd.Flags().StringVar(&nameFlag, "name", "", "container name (default: assigned by the runtime)")
	cmd.Flags().StringVar(&imageFlag, "image", "", "image tag to run (default: the agent's image)")
	cmd.Flags().StringVar(&dockerfileFlag, "dockerfile", "", "Dockerfile to build from (default: Dockerfile in the build context)")
	cmd.Flags().StringVar(&buildContextFlag, "build-context", "", "build context directory (default: bundled with bailey)")
	cmd.Flags().StringArrayVar(&dockerArgFlags, "docker-arg", nil, "raw argument passed to the runtime's run command (repeatable)")
}

// launch is the shared entry point for run and the per-agent shortcuts.
// agentName may be empty, in which case the config default and then the
// built-in default apply.
func launch(cmd *cobra.Command, agentName string, args []string) error {
	if forceBuildFlag && noBuildFlag {
		return fmt.Errorf("--force-build and --no-build are mutually exclusive")
	}

	globalCfg, err := config.Load()
	if err != nil {
		return err
	}

	if agentName == "" {
		agentName = globalCfg.DefaultAgent
	}
	if agentName == "" {
		agentName = agent.DefaultName
	}
	spec := agent.Get(agentName)
	if spec == nil {
		return fmt.Errorf("unknown agent %q: must be one of %s",
			agentName, strings.Join(agent.Names(), ", "))
	}

	// Everything after -- is the container command. Bare positional
	// arguments have no meaning here.
	var containerCmd []string
	if dashIdx := cmd.ArgsLenAtDash(); dashIdx >= 0 {
		if dashIdx > 0 {
			return fmt.Errorf("unexpected argument %q (flags go before --, the container command after)", args[0])
		}
		containerCmd = args[dashIdx:]
	} else if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q (use -- to pass a container command)", args[0])
	}

	mountDir, err := resolveDir("mount", mountDirFlag)
	if err != nil {
		return err
	}

	buildContext := buildContextFlag
	if buildContext == "" {
		buildContext = globalCfg.BuildContext
	}
	if buildContext != "" {
		if buildContext, err = resolveDir("build context", buildContext); err != nil {
			return err
		}
	}

	dockerArgs := append([]string{}, globalCfg.DockerArgs...)
	dockerArgs = append(dockerArgs, dockerArgFlags...)

	log.Debug("preparing launch",
		"agent", spec.Name,
		"mount", mountDir,
		"cmd", containerCmd,
	)

	ctx := context.Background()
	rt, err := selectRuntime(ctx, globalCfg)
	if err != nil {
		return err
	}

	launcher := &run.Launcher{Runtime: rt}
	return launcher.Launch(ctx, &run.Config{
		Agent:        spec,
		Image:        imageFlag,
		Name:         nameFlag,
		BuildContext: buildContext,
		Dockerfile:   dockerfileFlag,
		MountDir:     mountDir,
		TTY:          !noTTYFlag,
		ForceBuild:   forceBuildFlag,
		NoBuild:      noBuildFlag,
		AuthFile:     authFileFlag,
		NoAuth:       noAuthFlag,
		DockerArgs:   dockerArgs,
		Command:      containerCmd,
	})
}

// selectRuntime picks the container runtime: the --runtime flag wins,
// then the config file, then auto-detection.
func selectRuntime(ctx context.Context, globalCfg *config.Global) (container.Runtime, error) {
	name := runtimeFlag
	if name == "" {
		name = globalCfg.Runtime
	}
	if name != "" {
		return container.Select(ctx, name)
	}
	return container.Detect(ctx)
}

// resolveDir resolves and validates a directory argument. Returns the
// absolute, symlink-resolved path.
func resolveDir(label, path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s path: %w", label, err)
	}

	absPath, err = filepath.EvalSymlinks(absPath)
	if err != nil {
		return "", fmt.Errorf("%s path %q: %w", label, path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("%s path %q: %w", label, absPath, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s path %q is not a directory", label, absPath)
	}

	return absPath, nil
}
