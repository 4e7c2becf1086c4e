package app

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"vibescan/internal/core/errors"
	"vibescan/internal/engine/language"
)

// denyDirSubstrings is the fixed denylist: a candidate path containing any of
// these anywhere is excluded. Not configurable; user globs only extend it.
var denyDirSubstrings = []string{"node_modules", ".git", "dist", "build", "__pycache__"}

var (
	readmeGlob  = glob.MustCompile("readme*")
	exampleGlob = glob.MustCompile("example*")
	demoGlob    = glob.MustCompile("demo*")
)

// collectFiles enumerates candidate source files under root. An unreadable
// root is a top-level error; failures deeper in the tree are logged and the
// affected subtree skipped.
func (a *App) collectFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return errors.Wrap(err, errors.CodeNotFound, "cannot read repository path")
			}
			slog.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		base := filepath.Base(path)
		if d.IsDir() {
			if path != root && isDenied(path) {
				return filepath.SkipDir
			}
			for _, g := range a.excludeDirs {
				if g.Match(base) {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !language.IsCollected(path) || isDenied(path) {
			return nil
		}
		for _, g := range a.excludeFiles {
			if g.Match(base) {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func isDenied(path string) bool {
	for _, sub := range denyDirSubstrings {
		if strings.Contains(path, sub) {
			return true
		}
	}
	return false
}

// hasReadme probes for a README-like file directly under root.
func hasReadme(root string) bool {
	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if readmeGlob.Match(strings.ToLower(entry.Name())) {
			return true
		}
	}
	return false
}

// hasExamplePaths probes for any example/demo file or directory anywhere
// under root. The probe deliberately ignores the exclude rules: a vendored
// examples directory still counts as documentation.
func hasExamplePaths(root string) bool {
	found := false
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}
		base := strings.ToLower(filepath.Base(path))
		if exampleGlob.Match(base) || demoGlob.Match(base) {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	return found
}

// hasTestFiles reports whether any collected file matches its family's test
// naming conventions: basename patterns, or membership in a tests directory
// for the extensions that use that layout.
func (a *App) hasTestFiles(files []string) bool {
	for _, path := range files {
		ext := strings.ToLower(filepath.Ext(path))
		base := filepath.Base(path)
		for _, g := range a.testMatchers[ext] {
			if g.Match(base) {
				return true
			}
		}
		if language.LookupExt(ext).TestDirMember && inTestsDir(path) {
			return true
		}
	}
	return false
}

func inTestsDir(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == "tests" {
			return true
		}
	}
	return false
}

// generatedMarkers flag machine-written files the scan can optionally skip.
var generatedMarkers = [][]byte{
	[]byte("Code generated"),
	[]byte("DO NOT EDIT"),
	[]byte("@generated"),
}

func isGeneratedFile(content []byte) bool {
	head := content
	if len(head) > 2048 {
		head = head[:2048]
	}
	for _, marker := range generatedMarkers {
		if bytes.Contains(head, marker) {
			return true
		}
	}
	return false
}
