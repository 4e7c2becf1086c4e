package analyze

import (
	"testing"

	"vibescan/internal/engine/language"
)

func TestCountCommentLines_Python(t *testing.T) {
	content := "# header\n\nx = 1\n# trailing\n  # indented\n"
	got := CountCommentLines([]byte(content), language.FamilyPython)
	if got != 3 {
		t.Errorf("expected 3 comment lines, got %d", got)
	}
}

func TestCountCommentLines_CStyle(t *testing.T) {
	content := "// line\n/* block open\n * continuation\nint x; // not counted, prefix only\n"
	got := CountCommentLines([]byte(content), language.FamilyGo)
	if got != 3 {
		t.Errorf("expected 3 comment lines, got %d", got)
	}
}

func TestCountCommentLines_MarkupAndStyles(t *testing.T) {
	if got := CountCommentLines([]byte("<!-- note -->\n<div>\n"), language.FamilyMarkup); got != 1 {
		t.Errorf("markup: expected 1, got %d", got)
	}
	if got := CountCommentLines([]byte("/* a */\n * b\n.c {}\n"), language.FamilyStyleSheet); got != 2 {
		t.Errorf("stylesheet: expected 2, got %d", got)
	}
}

func TestCountCommentLines_UnmappedFamily(t *testing.T) {
	if got := CountCommentLines([]byte("# looks like a comment\n"), language.FamilyNone); got != 0 {
		t.Errorf("unmapped family must count 0, got %d", got)
	}
}

func TestCountLines(t *testing.T) {
	if got := CountLines([]byte("a\nb\nc")); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
	// A trailing newline yields one more segment, matching the reference
	// split behavior.
	if got := CountLines([]byte("a\nb\n")); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}
