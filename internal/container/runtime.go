// Package container abstracts the host container runtime behind a
// narrow interface. It supports Docker and Podman, with automatic
// detection.
package container

import "context"

// Runtime is the contract the launch pipeline needs from a container
// runtime: check an image, build an image, run a command vector.
type Runtime interface {
	// Name returns the runtime binary name, e.g. "docker" or "podman".
	Name() string

	// Ping verifies the runtime is installed and responding.
	Ping(ctx context.Context) error

	// ImageExists reports whether the tagged image is present in the
	// runtime's local image store.
	ImageExists(ctx context.Context, tag string) (bool, error)

	// BuildImage builds an image from a build context, streaming build
	// output to the caller's standard streams.
	BuildImage(ctx context.Context, opts BuildOptions) error

	// Run executes the argument vector as a foreground child process
	// with inherited stdin/stdout/stderr and returns its exit code.
	// A non-zero exit code is not an error; the error return covers
	// failures to start the child at all.
	Run(ctx context.Context, args []string) (int, error)
}

// BuildOptions describes one image build.
type BuildOptions struct {
	// Tag is the image tag to build.
	Tag string
	// Context is the build context directory.
	Context string
	// Dockerfile optionally points at a Dockerfile outside the default
	// Context/Dockerfile location.
	Dockerfile string
}
