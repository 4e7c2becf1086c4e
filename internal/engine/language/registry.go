// Package language maps file extensions onto the closed set of language
// families that drive comment counting, structural extraction and test-file
// conventions. Extensions on the collector allow-list without a family are
// still scanned as files but contribute no per-family metrics.
package language

import (
	"path/filepath"
	"sort"
	"strings"
)

// Family identifies one comment-syntax/structure group.
type Family string

const (
	FamilyNone       Family = ""
	FamilyPython     Family = "python"
	FamilyJavaScript Family = "javascript"
	FamilyTypeScript Family = "typescript"
	FamilyGo         Family = "go"
	FamilyRuby       Family = "ruby"
	FamilyPHP        Family = "php"
	FamilyRust       Family = "rust"
	FamilyCLike      Family = "clike"
	FamilyMarkup     Family = "markup"
	FamilyStyleSheet Family = "stylesheet"
	FamilyShell      Family = "shell"
)

// Spec describes how one extension participates in analysis.
type Spec struct {
	Family Family
	// TestGlobs are matched against the file basename (case-sensitive,
	// mirroring the conventions of each ecosystem).
	TestGlobs []string
	// TestDirMember marks extensions whose files count as tests when any
	// path segment is a "tests" directory.
	TestDirMember bool
}

// registry holds every extension the collector accepts. An entry with
// FamilyNone is collected but skipped by the comment and structure stages.
var registry = map[string]Spec{
	".py":  {Family: FamilyPython, TestGlobs: []string{"test_*.py", "*_test.py"}, TestDirMember: true},
	".js":  {Family: FamilyJavaScript, TestGlobs: []string{"test_*.js", "*.test.js", "*.spec.js"}},
	".jsx": {Family: FamilyJavaScript},
	".ts":  {Family: FamilyTypeScript, TestGlobs: []string{"test_*.ts", "*.test.ts", "*.spec.ts"}},
	".tsx": {Family: FamilyTypeScript},
	".go":  {Family: FamilyGo, TestGlobs: []string{"*_test.go"}},
	".rb":  {Family: FamilyRuby},
	".php": {Family: FamilyPHP},
	".rs":  {Family: FamilyRust},

	".java": {Family: FamilyCLike, TestGlobs: []string{"test_*.java", "*Test.java", "*Tests.java"}},
	".cpp":  {Family: FamilyCLike, TestGlobs: []string{"test_*.cpp", "*_test.cpp"}, TestDirMember: true},
	".c":    {Family: FamilyCLike},
	".h":    {Family: FamilyCLike},
	".cs":   {Family: FamilyCLike},

	".html": {Family: FamilyMarkup},
	".htm":  {Family: FamilyMarkup},
	".xml":  {Family: FamilyMarkup},

	".css":  {Family: FamilyStyleSheet},
	".scss": {Family: FamilyStyleSheet},
	".sass": {Family: FamilyStyleSheet},

	".sh":  {Family: FamilyShell},
	".bat": {Family: FamilyShell},
	".ps1": {Family: FamilyShell},

	// Collected for file/line totals only.
	".swift":  {},
	".kt":     {},
	".scala":  {},
	".vue":    {},
	".svelte": {},
	".dart":   {},
	".elm":    {},
	".ex":     {},
	".exs":    {},
	".erl":    {},
}

// commentMarkers lists the line prefixes counted as comments per family.
var commentMarkers = map[Family][]string{
	FamilyPython:     {"#"},
	FamilyRuby:       {"#"},
	FamilyShell:      {"#"},
	FamilyJavaScript: {"//", "/*", "*"},
	FamilyTypeScript: {"//", "/*", "*"},
	FamilyGo:         {"//", "/*", "*"},
	FamilyPHP:        {"//", "/*", "*"},
	FamilyRust:       {"//", "/*", "*"},
	FamilyCLike:      {"//", "/*", "*"},
	FamilyMarkup:     {"<!--"},
	FamilyStyleSheet: {"/*", "*"},
}

// DetectFamily returns the family for a path, or FamilyNone.
func DetectFamily(path string) Family {
	return Lookup(path).Family
}

// Lookup returns the extension spec for a path. The zero Spec means the
// extension is not on the allow-list at all.
func Lookup(path string) Spec {
	return LookupExt(filepath.Ext(path))
}

// LookupExt is Lookup keyed by a bare extension like ".py".
func LookupExt(ext string) Spec {
	return registry[strings.ToLower(ext)]
}

// IsCollected reports whether the collector accepts this path's extension.
func IsCollected(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	_, ok := registry[ext]
	return ok
}

// CommentMarkers returns the comment line prefixes for a family. Families
// without comment syntax rules return nil.
func CommentMarkers(f Family) []string {
	return commentMarkers[f]
}

// Extensions returns the full allow-list in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(registry))
	for ext := range registry {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
