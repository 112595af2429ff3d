// Package agent defines the registry of launchable AI coding agents.
//
// Each agent carries its default image tag, its credential sources on the
// host, and the command to run inside the container. The registry is a
// closed set: supporting a new agent means adding an entry here.
package agent

import "sort"

// DefaultName is the agent selected when the caller does not choose one.
const DefaultName = "codex"

// FileSource is a candidate credential file on the host together with its
// fixed destination inside the container.
type FileSource struct {
	// Path is the host path. A leading ~ refers to the user's home directory.
	Path string
	// Dest is the absolute in-container path the file is mounted at.
	Dest string
}

// Spec describes one launchable agent. Specs are immutable; callers must
// not modify the returned values.
type Spec struct {
	// Name is the agent identifier used on the command line.
	Name string
	// Image is the default image tag built and run for this agent.
	Image string
	// Files lists credential file candidates in priority order. At most
	// one is mounted per run: the first path that exists on the host.
	Files []FileSource
	// Env lists host environment variables forwarded into the container
	// under the same name when set and non-empty.
	Env []string
	// Command is the default command run inside the container when the
	// caller does not supply one.
	Command []string
}

var registry = map[string]*Spec{
	"codex": {
		Name:  "codex",
		Image: "bailey-codex",
		Files: []FileSource{
			{Path: "~/.codex/device_auth.json", Dest: "/root/.codex/auth.json"},
			{Path: "~/.codex/auth.json", Dest: "/root/.codex/auth.json"},
		},
		Command: []string{"codex", "--full-auto"},
	},
	"copilot": {
		Name:    "copilot",
		Image:   "bailey-copilot",
		Env:     []string{"GH_TOKEN", "GITHUB_TOKEN"},
		Command: []string{"copilot", "--add-dir", "/workspace", "--allow-all-tools"},
	},
}

// Get returns the spec for the named agent, or nil if unknown.
func Get(name string) *Spec {
	return registry[name]
}

// Names returns the names of all registered agents, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
