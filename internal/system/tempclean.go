// Package system inspects and cleans up host state left behind by
// interrupted launches.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/andybons/bailey/internal/log"
)

// BuildContextPattern matches the temp directories bundled build
// contexts are materialized into. A finished build removes its
// directory; stale ones accumulate only when the process dies
// mid-build.
const BuildContextPattern = "bailey-build-*"

// StaleDir is a leftover build context directory.
type StaleDir struct {
	Path    string
	ModTime time.Time
	Size    int64
}

// FindStaleBuildContexts scans the temp directory for materialized
// build contexts older than minAge.
func FindStaleBuildContexts(minAge time.Duration) ([]StaleDir, error) {
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), BuildContextPattern))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", os.TempDir(), err)
	}

	cutoff := time.Now().Add(-minAge)
	var stale []StaleDir
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil {
			continue
		}
		// A recent mtime means a build may still be running.
		if info.ModTime().After(cutoff) {
			continue
		}

		size, _ := dirSize(match)
		stale = append(stale, StaleDir{
			Path:    match,
			ModTime: info.ModTime(),
			Size:    size,
		})
	}
	return stale, nil
}

// RemoveStaleBuildContexts deletes dirs. Each directory's age is
// re-checked immediately before removal so a build started between
// scan and removal keeps its context.
func RemoveStaleBuildContexts(dirs []StaleDir, minAge time.Duration) error {
	cutoff := time.Now().Add(-minAge)

	var errs []string
	for _, dir := range dirs {
		if info, err := os.Stat(dir.Path); err == nil && info.ModTime().After(cutoff) {
			log.Debug("skipping build context modified since scan", "path", dir.Path)
			continue
		}
		if err := os.RemoveAll(dir.Path); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", dir.Path, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("failed to remove some directories:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func dirSize(path string) (int64, error) {
	var size int64
	err := filepath.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

// FormatSize formats a byte count as a human-readable string.
func FormatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
