package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func makeStaleDir(t *testing.T, path string, age time.Duration) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatal(err)
	}
}

func TestFindStaleBuildContexts(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("TMPDIR", tmpDir)

	makeStaleDir(t, filepath.Join(tmpDir, "bailey-build-abc123"), 2*time.Hour)
	makeStaleDir(t, filepath.Join(tmpDir, "bailey-build-def456"), 0)
	makeStaleDir(t, filepath.Join(tmpDir, "unrelated-dir"), 2*time.Hour)

	tests := []struct {
		name      string
		minAge    time.Duration
		wantCount int
	}{
		{name: "older than 1 hour", minAge: 1 * time.Hour, wantCount: 1},
		{name: "older than 3 hours", minAge: 3 * time.Hour, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stale, err := FindStaleBuildContexts(tt.minAge)
			if err != nil {
				t.Fatalf("FindStaleBuildContexts() error = %v", err)
			}
			if len(stale) != tt.wantCount {
				t.Errorf("FindStaleBuildContexts() found %d directories, want %d", len(stale), tt.wantCount)
			}
		})
	}
}

func TestRemoveStaleBuildContexts(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "bailey-build-abc123")
	makeStaleDir(t, dir, 2*time.Hour)

	stale := []StaleDir{{Path: dir, ModTime: time.Now().Add(-2 * time.Hour)}}
	if err := RemoveStaleBuildContexts(stale, 1*time.Hour); err != nil {
		t.Errorf("RemoveStaleBuildContexts() error = %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("directory %s still exists after cleanup", dir)
	}
}

func TestRemoveStaleBuildContexts_SkipsRecentlyModified(t *testing.T) {
	tmpDir := t.TempDir()
	dir := filepath.Join(tmpDir, "bailey-build-abc123")
	makeStaleDir(t, dir, 2*time.Hour)

	stale := []StaleDir{{Path: dir, ModTime: time.Now().Add(-2 * time.Hour)}}

	// Touch the directory between scan and removal.
	now := time.Now()
	if err := os.Chtimes(dir, now, now); err != nil {
		t.Fatal(err)
	}

	if err := RemoveStaleBuildContexts(stale, 1*time.Hour); err != nil {
		t.Errorf("RemoveStaleBuildContexts() error = %v", err)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Error("recently modified directory was incorrectly removed")
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero bytes", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"kilobytes", 1024, "1.0 KiB"},
		{"megabytes", 1024 * 1024, "1.0 MiB"},
		{"mixed", 1536, "1.5 KiB"},
		{"large", 5 * 1024 * 1024 * 1024, "5.0 GiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSize(tt.bytes); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestDirSize(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "Dockerfile"), []byte("FROM scratch\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sub := filepath.Join(tmpDir, "scripts")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "setup.sh"), []byte("set -e\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	size, err := dirSize(tmpDir)
	if err != nil {
		t.Errorf("dirSize() error = %v", err)
	}
	if want := int64(len("FROM scratch\n") + len("set -e\n")); size != want {
		t.Errorf("dirSize() = %d, want %d", size, want)
	}
}
