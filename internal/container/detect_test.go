package container

import (
	"context"
	"strings"
	"testing"
)

func TestDetect_PrefersDocker(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "docker", "exit 0")
	writeStub(t, dir, "podman", "exit 0")
	t.Setenv("PATH", dir)

	rt, err := Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if rt.Name() != "docker" {
		t.Errorf("Name() = %q, want %q", rt.Name(), "docker")
	}
}

func TestDetect_FallsBackToPodman(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "podman", "exit 0")
	t.Setenv("PATH", dir)

	rt, err := Detect(context.Background())
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if rt.Name() != "podman" {
		t.Errorf("Name() = %q, want %q", rt.Name(), "podman")
	}
}

func TestDetect_NeitherInstalled(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Detect(context.Background())
	if err == nil {
		t.Fatal("expected error with no runtime on PATH")
	}
	if !strings.Contains(err.Error(), "docker") || !strings.Contains(err.Error(), "podman") {
		t.Errorf("error = %q, want it to name both candidates", err)
	}
}

func TestDetect_InstalledButNotResponding(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "docker", `echo "cannot connect" >&2; exit 1`)
	// A healthy podman must not be used when docker is installed but down.
	writeStub(t, dir, "podman", "exit 0")
	t.Setenv("PATH", dir)

	_, err := Detect(context.Background())
	if err == nil {
		t.Fatal("expected error when docker is present but not responding")
	}
	if !strings.Contains(err.Error(), "docker is installed but not responding") {
		t.Errorf("error = %q, want not-responding diagnosis", err)
	}
}

func TestSelect(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "podman", "exit 0")
	t.Setenv("PATH", dir)

	rt, err := Select(context.Background(), "podman")
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if rt.Name() != "podman" {
		t.Errorf("Name() = %q, want %q", rt.Name(), "podman")
	}
}

func TestSelect_NotResponding(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "docker", "exit 1")
	t.Setenv("PATH", dir)

	if _, err := Select(context.Background(), "docker"); err == nil {
		t.Fatal("expected error for unresponsive runtime")
	}
}
