// Package config handles ~/.bailey/config.yaml parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andybons/bailey/internal/agent"
)

// Global holds settings from ~/.bailey/config.yaml. Every field is
// optional; command-line flags override whatever is set here.
type Global struct {
	// DefaultAgent is launched when the command line names none.
	DefaultAgent string `yaml:"default_agent,omitempty"`

	// Runtime pins the container runtime ("docker" or "podman")
	// instead of probing the PATH.
	Runtime string `yaml:"runtime,omitempty"`

	// BuildContext points at a directory to build images from in place
	// of the bundled context.
	BuildContext string `yaml:"build_context,omitempty"`

	// DockerArgs are appended to every assembled run command, before
	// any --docker-arg flags from the command line.
	DockerArgs []string `yaml:"docker_args,omitempty"`
}

// Dir returns the path to ~/.bailey.
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".bailey")
	}
	return filepath.Join(homeDir, ".bailey")
}

// Path returns the config file location, honoring the BAILEY_CONFIG
// environment variable.
func Path() string {
	if p := os.Getenv("BAILEY_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the global config file. A missing file yields the zero
// config rather than an error.
func Load() (*Global, error) {
	path := Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Global{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Global
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.DefaultAgent != "" && agent.Get(cfg.DefaultAgent) == nil {
		return nil, fmt.Errorf("invalid default_agent %q: must be one of %s",
			cfg.DefaultAgent, strings.Join(agent.Names(), ", "))
	}
	if cfg.Runtime != "" && cfg.Runtime != "docker" && cfg.Runtime != "podman" {
		return nil, fmt.Errorf("invalid runtime %q: must be 'docker' or 'podman'", cfg.Runtime)
	}

	return &cfg, nil
}
