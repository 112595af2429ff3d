package run

import (
	"context"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/andybons/bailey/internal/container"
	"github.com/andybons/bailey/internal/credential"
	"github.com/andybons/bailey/internal/log"
)

// Launcher executes the launch pipeline against a container runtime.
type Launcher struct {
	Runtime container.Runtime
}

// Launch runs the pipeline in order: ensure the image, resolve
// credentials, assemble the run vector, and execute it as a foreground
// child with inherited stdio. A non-zero container exit surfaces as an
// ExitError so callers can pass the code through unchanged.
func (l *Launcher) Launch(ctx context.Context, cfg *Config) error {
	if err := EnsureImage(ctx, l.Runtime, cfg); err != nil {
		return err
	}

	auth := credential.Resolve(cfg.Agent, credential.Options{
		AuthFile: cfg.AuthFile,
		NoAuth:   cfg.NoAuth,
		BaseDir:  cfg.MountDir,
		HomeDir:  cfg.HomeDir,
	})

	args := BuildRunArgs(cfg, auth)
	log.Debug("assembled run command",
		"cmd", strings.Join(Redact(append([]string{l.Runtime.Name()}, args...)), " "))

	if cfg.TTY && !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Debug("stdin is not a terminal; TTY allocation may fail")
	}

	code, err := l.Runtime.Run(ctx, args)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}
