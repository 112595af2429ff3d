// Package credential locates host credential material for an agent:
// at most one file mounted read-only into the container, plus any
// environment variables forwarded under their own names.
//
// Absence of credentials is never an error. Missing files produce a
// single warning and the launch proceeds without them; the agent CLI
// inside the container reports its own authentication state.
package credential

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/andybons/bailey/internal/agent"
	"github.com/andybons/bailey/internal/log"
	"github.com/andybons/bailey/internal/ui"
)

// NoneSentinel disables file mounting when given as the auth file
// override. Matched case-insensitively.
const NoneSentinel = "none"

// overrideDest is where an explicit auth file lands when the agent
// defines no file sources of its own.
const overrideDest = "/root/.codex/auth.json"

// Mount maps one host file to a fixed in-container path. The mount is
// always read-only.
type Mount struct {
	// Source is the absolute host path.
	Source string
	// Dest is the absolute in-container path.
	Dest string
}

// Resolved holds the credential material for a single launch. It is
// computed fresh each run and never persisted.
type Resolved struct {
	// Mount is the credential file mount, or nil when no file resolved.
	Mount *Mount
	// Env holds KEY=value assignments forwarded into the container.
	Env []string
}

// Options controls resolution.
type Options struct {
	// AuthFile overrides default file resolution. The value "none"
	// (any case) disables mounting entirely, like NoAuth.
	AuthFile string
	// NoAuth skips file resolution: no filesystem access, no warning.
	NoAuth bool
	// BaseDir anchors relative credential paths. Callers pass the
	// absolute mount directory.
	BaseDir string
	// HomeDir expands a leading ~ in credential paths. Defaults to the
	// current user's home directory.
	HomeDir string
	// Getenv reads host environment variables. Defaults to os.Getenv.
	Getenv func(string) string
}

// Resolve locates credential material for spec according to opts.
func Resolve(spec *agent.Spec, opts Options) Resolved {
	var res Resolved
	if opts.NoAuth || strings.EqualFold(opts.AuthFile, NoneSentinel) {
		return res
	}

	if opts.AuthFile != "" {
		res.Mount = resolveOverride(spec, opts)
	} else {
		res.Mount = resolveDefault(spec, opts)
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, name := range spec.Env {
		if v := getenv(name); v != "" {
			log.Debug("forwarding environment variable", "name", name)
			res.Env = append(res.Env, name+"="+v)
		}
	}
	return res
}

// Status reports the availability of one credential source.
type Status struct {
	// Source is the expanded host path, or $NAME for an environment
	// variable.
	Source string
	// Available reports whether the source currently resolves.
	Available bool
}

// Check reports the availability of every credential source spec
// defines, in registry order. Diagnostics use this; Resolve is the
// launch path.
func Check(spec *agent.Spec, opts Options) []Status {
	var out []Status
	for _, f := range spec.Files {
		path := expandPath(f.Path, opts)
		out = append(out, Status{Source: path, Available: isFile(path)})
	}
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	for _, name := range spec.Env {
		out = append(out, Status{Source: "$" + name, Available: getenv(name) != ""})
	}
	return out
}

// resolveOverride handles an explicit --auth-file path. The path is
// validated eagerly: if it does not exist, a warning is emitted and the
// launch continues without a mount rather than deferring the failure to
// container start.
func resolveOverride(spec *agent.Spec, opts Options) *Mount {
	path := expandPath(opts.AuthFile, opts)
	if !isFile(path) {
		warnMissing([]string{path})
		return nil
	}
	dest := overrideDest
	if len(spec.Files) > 0 {
		dest = spec.Files[0].Dest
	}
	log.Debug("using auth file override", "path", path, "dest", dest)
	return &Mount{Source: path, Dest: dest}
}

// resolveDefault walks the agent's file sources in priority order and
// selects the first that exists on the host.
func resolveDefault(spec *agent.Spec, opts Options) *Mount {
	if len(spec.Files) == 0 {
		return nil
	}
	checked := make([]string, 0, len(spec.Files))
	for _, f := range spec.Files {
		path := expandPath(f.Path, opts)
		if isFile(path) {
			log.Debug("found credential file", "path", path, "dest", f.Dest)
			return &Mount{Source: path, Dest: f.Dest}
		}
		checked = append(checked, path)
	}
	warnMissing(checked)
	return nil
}

func warnMissing(checked []string) {
	ui.Warnf("auth file not found at %s; continuing without mounting credentials",
		strings.Join(checked, ", "))
}

// expandPath expands a leading ~ against the home directory and anchors
// relative paths at BaseDir.
func expandPath(path string, opts Options) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home := opts.HomeDir
		if home == "" {
			if h, err := os.UserHomeDir(); err == nil {
				home = h
			}
		}
		if home != "" {
			path = filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if !filepath.IsAbs(path) && opts.BaseDir != "" {
		path = filepath.Join(opts.BaseDir, path)
	}
	return filepath.Clean(path)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
