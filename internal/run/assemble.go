package run

import (
	"github.com/andybons/bailey/internal/credential"
)

// hostGatewayMapping makes the host reachable as host.docker.internal
// from inside the container on both Docker and Podman.
const hostGatewayMapping = "host.docker.internal:host-gateway"

// BuildRunArgs assembles the argument vector for the container run
// invocation, starting at the "run" verb. Assembly is pure data
// transformation: identical inputs produce identical vectors.
func BuildRunArgs(cfg *Config, auth credential.Resolved) []string {
	args := []string{"run", "--rm"}
	if cfg.TTY {
		args = append(args, "-it")
	}
	if cfg.Name != "" {
		args = append(args, "--name", cfg.Name)
	}
	// The gateway mapping goes in before user-supplied args so an
	// explicit conflicting mapping wins under the runtime's
	// last-one-wins rule.
	args = append(args, "--add-host", hostGatewayMapping)
	args = append(args, "-v", cfg.MountDir+":"+workspacePath, "-w", workspacePath)
	if m := auth.Mount; m != nil {
		args = append(args, "-v", m.Source+":"+m.Dest+":ro")
	}
	for _, env := range auth.Env {
		args = append(args, "-e", env)
	}
	args = append(args, cfg.DockerArgs...)
	args = append(args, cfg.ImageTag())
	return append(args, cfg.command()...)
}
