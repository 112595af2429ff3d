package main

import (
	"errors"
	"os"

	"github.com/andybons/bailey/cmd/bailey/cli"
	"github.com/andybons/bailey/internal/run"
	"github.com/andybons/bailey/internal/ui"
)

func main() {
	err := cli.Execute()
	if err == nil {
		return
	}

	// The container's own exit code passes through verbatim. It already
	// wrote its output, so there is nothing to print.
	var exitErr *run.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	ui.Errorf("%v", err)
	var buildErr *run.BuildError
	if errors.As(err, &buildErr) {
		os.Exit(2)
	}
	os.Exit(1)
}
