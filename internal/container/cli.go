package container

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/andybons/bailey/internal/log"
)

// CLIRuntime implements Runtime by shelling out to a container CLI.
// Docker and Podman share the verbs this package uses, so one
// implementation covers both.
type CLIRuntime struct {
	name string
	bin  string
}

// NewCLIRuntime resolves the named container CLI on PATH.
func NewCLIRuntime(name string) (*CLIRuntime, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s CLI not found: %w", name, err)
	}
	return &CLIRuntime{name: name, bin: bin}, nil
}

// Name returns the runtime binary name.
func (r *CLIRuntime) Name() string { return r.name }

// Ping runs "<cli> info" to verify the runtime service is reachable.
func (r *CLIRuntime) Ping(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, r.bin, "info")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s info: %w: %s", r.name, err, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// ImageExists checks the local image store via "image inspect". An
// inspect that exits non-zero means the image is absent; only failures
// to run the CLI at all are errors.
func (r *CLIRuntime) ImageExists(ctx context.Context, tag string) (bool, error) {
	cmd := exec.CommandContext(ctx, r.bin, "image", "inspect", tag)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, fmt.Errorf("%s image inspect: %w", r.name, err)
	}
	return true, nil
}

// BuildImage runs "<cli> build" with output streamed to the caller's
// standard streams.
func (r *CLIRuntime) BuildImage(ctx context.Context, opts BuildOptions) error {
	args := []string{"build", "-t", opts.Tag}
	if opts.Dockerfile != "" {
		args = append(args, "-f", opts.Dockerfile)
	}
	args = append(args, opts.Context)

	log.Debug("building image", "runtime", r.name, "tag", opts.Tag, "context", opts.Context)

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s build: %w", r.name, err)
	}
	return nil
}

// Run executes the argument vector as a foreground child with inherited
// stdio. The child's exit code is returned, never treated as an error;
// a child killed by a signal reports 128 plus the signal number, the
// shell convention.
//
// While the child runs, SIGINT is ignored in this process: the terminal
// delivers Ctrl-C to the whole foreground process group, so the child
// receives it directly and shuts down first, and its exit code is then
// reported here. SIGTERM is forwarded so non-terminal kills reach the
// child too.
func (r *CLIRuntime) Run(ctx context.Context, args []string) (int, error) {
	log.Debug("running container", "runtime", r.name)

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("%s run: %w", r.name, err)
	}

	signal.Ignore(os.Interrupt)
	termCh := make(chan os.Signal, 1)
	signal.Notify(termCh, syscall.SIGTERM)
	go func() {
		for s := range termCh {
			_ = cmd.Process.Signal(s)
		}
	}()
	defer func() {
		signal.Stop(termCh)
		close(termCh)
		signal.Reset(os.Interrupt)
	}()

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return 128 + int(ws.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}
	return 0, fmt.Errorf("%s run: %w", r.name, err)
}
