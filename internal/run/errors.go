package run

import "fmt"

// ExitError carries the container's exit code so main can pass it
// through unchanged as the process exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("container exited with status %d", e.Code)
}

// BuildError is a fatal failure to produce the image before any
// container is started: the build exited non-zero, or a required build
// was skipped.
type BuildError struct {
	Image string
	Err   error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("image %s: %v", e.Image, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }
