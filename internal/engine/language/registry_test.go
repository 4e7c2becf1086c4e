package language

import "testing"

func TestDetectFamily(t *testing.T) {
	cases := map[string]Family{
		"main.py":      FamilyPython,
		"app.JSX":      FamilyJavaScript,
		"widget.tsx":   FamilyTypeScript,
		"server.go":    FamilyGo,
		"gem.rb":       FamilyRuby,
		"index.php":    FamilyPHP,
		"lib.rs":       FamilyRust,
		"Main.java":    FamilyCLike,
		"page.html":    FamilyMarkup,
		"theme.scss":   FamilyStyleSheet,
		"install.sh":   FamilyShell,
		"App.swift":    FamilyNone,
		"notes.txt":    FamilyNone,
		"component.ex": FamilyNone,
	}
	for path, want := range cases {
		if got := DetectFamily(path); got != want {
			t.Errorf("%s: expected family %q, got %q", path, want, got)
		}
	}
}

func TestIsCollected(t *testing.T) {
	// Extensions without a family are still collected for file totals.
	for _, path := range []string{"a.py", "b.swift", "c.elm", "d.erl"} {
		if !IsCollected(path) {
			t.Errorf("%s should be on the allow-list", path)
		}
	}
	for _, path := range []string{"a.txt", "Makefile", "b.json"} {
		if IsCollected(path) {
			t.Errorf("%s should not be on the allow-list", path)
		}
	}
}

func TestCommentMarkers_EveryMappedFamilyHasMarkers(t *testing.T) {
	for ext, spec := range registry {
		if spec.Family == FamilyNone {
			continue
		}
		if len(CommentMarkers(spec.Family)) == 0 {
			t.Errorf("family %q (ext %s) has no comment markers", spec.Family, ext)
		}
	}
}
