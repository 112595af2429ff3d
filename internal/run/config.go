// Package run drives the launch pipeline: ensure the agent's image
// exists, resolve credentials, assemble the container invocation, and
// execute it in the foreground with the caller's terminal attached.
package run

import (
	"github.com/andybons/bailey/internal/agent"
)

// workspacePath is the fixed in-container mount point for the caller's
// working directory.
const workspacePath = "/workspace"

// Config is the resolved input for a single launch. It is constructed
// once from CLI input and configuration and not mutated after assembly
// begins.
type Config struct {
	// Agent is the selected agent spec.
	Agent *agent.Spec
	// Image overrides the agent's default image tag. Empty means the
	// agent default.
	Image string
	// Name optionally assigns a container name.
	Name string
	// BuildContext is the directory holding the build definition. Empty
	// selects the build context bundled in the binary.
	BuildContext string
	// Dockerfile optionally points at a Dockerfile outside the build
	// context's default location. Relative paths anchor at BuildContext.
	Dockerfile string
	// MountDir is the absolute host directory mounted at /workspace.
	MountDir string
	// TTY requests interactive terminal allocation.
	TTY bool
	// ForceBuild rebuilds the image even when it is already present.
	ForceBuild bool
	// NoBuild forbids building; a missing image is a BuildError.
	NoBuild bool
	// AuthFile overrides credential file resolution. The value "none"
	// disables mounting.
	AuthFile string
	// NoAuth disables credential resolution entirely.
	NoAuth bool
	// HomeDir is the caller's home directory, used to expand ~ in
	// credential paths. Passed in explicitly so resolution stays a pure
	// function of its inputs.
	HomeDir string
	// DockerArgs are passed through verbatim to the run invocation.
	DockerArgs []string
	// Command replaces the agent's default in-container command.
	Command []string
}

// ImageTag returns the image the launch targets: the explicit override
// or the agent's default. Existence checks, builds, and the run vector
// all use this one string.
func (c *Config) ImageTag() string {
	if c.Image != "" {
		return c.Image
	}
	return c.Agent.Image
}

// command returns the in-container command: the caller's explicit
// command if one followed the -- separator, else the agent's default.
func (c *Config) command() []string {
	if len(c.Command) > 0 {
		return c.Command
	}
	return c.Agent.Command
}
