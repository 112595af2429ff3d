package run

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/andybons/bailey/internal/agent"
	"github.com/andybons/bailey/internal/container"
	"github.com/andybons/bailey/internal/log"
	"github.com/andybons/bailey/internal/system"
)

// buildTimeout bounds a single image build.
const buildTimeout = 15 * time.Minute

//go:embed assets
var assetsFS embed.FS

// EnsureImage makes cfg's image tag available in the runtime's local
// store, building it when absent or when a rebuild is forced. With
// NoBuild set it only checks existence and reports a BuildError when
// the image is missing.
func EnsureImage(ctx context.Context, rt container.Runtime, cfg *Config) error {
	tag := cfg.ImageTag()

	switch {
	case cfg.NoBuild:
		exists, err := rt.ImageExists(ctx, tag)
		if err != nil {
			return err
		}
		if !exists {
			return &BuildError{Image: tag, Err: errors.New("not found and building is disabled")}
		}
		log.Debug("image present, build skipped", "image", tag)
		return nil
	case cfg.ForceBuild:
		log.Info("force build requested", "image", tag)
	default:
		exists, err := rt.ImageExists(ctx, tag)
		if err != nil {
			return err
		}
		if exists {
			log.Debug("image exists, skipping build", "image", tag)
			return nil
		}
		log.Info("image not found locally, building", "image", tag)
	}

	return buildImage(ctx, rt, cfg, tag)
}

func buildImage(ctx context.Context, rt container.Runtime, cfg *Config, tag string) error {
	contextDir := cfg.BuildContext
	if contextDir == "" {
		dir, cleanup, err := materializeContext(cfg.Agent)
		if err != nil {
			return &BuildError{Image: tag, Err: err}
		}
		defer cleanup()
		contextDir = dir
	}

	dockerfile := cfg.Dockerfile
	if dockerfile == "" {
		dockerfile = filepath.Join(contextDir, "Dockerfile")
	} else if !filepath.IsAbs(dockerfile) {
		dockerfile = filepath.Join(contextDir, dockerfile)
	}
	if _, err := os.Stat(dockerfile); err != nil {
		return &BuildError{Image: tag, Err: fmt.Errorf("dockerfile not found at %s", dockerfile)}
	}

	buildCtx, cancel := context.WithTimeout(ctx, buildTimeout)
	defer cancel()

	if err := rt.BuildImage(buildCtx, container.BuildOptions{
		Tag:        tag,
		Context:    contextDir,
		Dockerfile: dockerfile,
	}); err != nil {
		return &BuildError{Image: tag, Err: err}
	}
	return nil
}

// materializeContext writes the agent's bundled build context to a temp
// directory so the container CLI can consume it like any other context
// directory.
func materializeContext(spec *agent.Spec) (dir string, cleanup func(), err error) {
	src := path.Join("assets", spec.Name)
	entries, err := assetsFS.ReadDir(src)
	if err != nil {
		return "", nil, fmt.Errorf("no bundled build context for agent %q", spec.Name)
	}

	dir, err = os.MkdirTemp("", system.BuildContextPattern)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp dir: %w", err)
	}
	cleanup = func() { os.RemoveAll(dir) }

	for _, entry := range entries {
		data, err := assetsFS.ReadFile(path.Join(src, entry.Name()))
		if err != nil {
			cleanup()
			return "", nil, fmt.Errorf("reading bundled %s: %w", entry.Name(), err)
		}
		if err := os.WriteFile(filepath.Join(dir, entry.Name()), data, 0o644); err != nil {
			cleanup()
			return "", nil, fmt.Errorf("writing %s: %w", entry.Name(), err)
		}
	}
	return dir, cleanup, nil
}
