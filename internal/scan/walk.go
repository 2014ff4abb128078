// Package scan provides the shared filesystem walking substrate for all
// heuristics checks: skip-dir pruning, extension filters, bounded file
// collection, and best-effort reads.
package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultSkipDirs are directories never descended into by any check.
var DefaultSkipDirs = []string{
	"node_modules", ".git", "dist", "build",
	"__pycache__", ".venv", "venv", ".next",
}

// Walker collects files under a root with skip-dir pruning.
type Walker struct {
	skip map[string]struct{}
}

// NewWalker builds a walker. With no dirs given, DefaultSkipDirs applies.
func NewWalker(skipDirs []string) *Walker {
	if len(skipDirs) == 0 {
		skipDirs = DefaultSkipDirs
	}
	skip := make(map[string]struct{}, len(skipDirs))
	for _, d := range skipDirs {
		skip[d] = struct{}{}
	}
	return &Walker{skip: skip}
}

// Skipped reports whether a directory name is pruned.
func (w *Walker) Skipped(name string) bool {
	_, ok := w.skip[name]
	return ok
}

// Collect walks root and returns up to limit paths accepted by match,
// sorted for deterministic output. A limit of 0 means unbounded.
// Unreadable subtrees are skipped, not reported: every check treats the
// filesystem as best-effort input.
func (w *Walker) Collect(root string, limit int, match func(rel string, d fs.DirEntry) bool) []string {
	var files []string

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if path != root && w.Skipped(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if match(filepath.ToSlash(rel), d) {
			files = append(files, path)
		}
		return nil
	})

	sort.Strings(files)
	if limit > 0 && len(files) > limit {
		files = files[:limit]
	}
	return files
}

// HasExt reports whether path carries one of the given lowercase extensions.
func HasExt(path string, exts map[string]bool) bool {
	return exts[strings.ToLower(filepath.Ext(path))]
}

// ReadText reads a file as text, best effort. The second return is false
// when the file could not be read.
func ReadText(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// ContainsAny reports whether s contains any of the given substrings.
func ContainsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// NameMatchesAny reports whether the lowercase base name contains any of
// the given fragments. Used to exclude test/spec/mock files from linting.
func NameMatchesAny(path string, fragments ...string) bool {
	name := strings.ToLower(filepath.Base(path))
	for _, f := range fragments {
		if strings.Contains(name, f) {
			return true
		}
	}
	return false
}
