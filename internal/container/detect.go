package container

import (
	"context"
	"fmt"
	"time"

	"github.com/andybons/bailey/internal/log"
)

// pingTimeout bounds the health check run against a candidate runtime.
const pingTimeout = 10 * time.Second

// Detect selects the container CLI: docker when on PATH, podman
// otherwise. The selected runtime must pass a health check. A runtime
// that is installed but not responding is an error, never a
// fallthrough to the next candidate.
func Detect(ctx context.Context) (Runtime, error) {
	var rt *CLIRuntime
	for _, name := range []string{"docker", "podman"} {
		r, err := NewCLIRuntime(name)
		if err != nil {
			log.Debug("container CLI not found", "runtime", name)
			continue
		}
		rt = r
		break
	}
	if rt == nil {
		return nil, fmt.Errorf("neither docker nor podman found on PATH: install Docker Desktop or Podman")
	}

	if err := ping(ctx, rt); err != nil {
		return nil, fmt.Errorf("%s is installed but not responding: %w", rt.Name(), err)
	}

	if rt.Name() == "podman" {
		log.Info("using podman as container runtime because docker was not found")
	}
	return rt, nil
}

// Select returns the named runtime after a health check, bypassing
// detection.
func Select(ctx context.Context, name string) (Runtime, error) {
	rt, err := NewCLIRuntime(name)
	if err != nil {
		return nil, err
	}
	if err := ping(ctx, rt); err != nil {
		return nil, fmt.Errorf("%s is not responding: %w", name, err)
	}
	return rt, nil
}

func ping(ctx context.Context, rt Runtime) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return rt.Ping(pingCtx)
}
