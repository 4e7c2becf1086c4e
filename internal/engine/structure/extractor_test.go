package structure

import (
	"testing"

	"vibescan/internal/engine/language"
)

func TestExtract_Python(t *testing.T) {
	e := New()
	code := `
class Greeter:
    def __init__(self):
        self.name = "hi"

    def greet(self):
        return self.name

def top_level():
    pass
`
	counts := e.Extract("greeter.py", []byte(code))
	if counts.Functions != 3 {
		t.Errorf("expected 3 functions, got %d", counts.Functions)
	}
	if counts.Classes != 1 {
		t.Errorf("expected 1 class, got %d", counts.Classes)
	}
}

func TestExtract_Go(t *testing.T) {
	e := New()
	code := `
package sample

type Point struct{ X, Y int }

type Named interface{ Name() string }

func Origin() Point { return Point{} }

func (p Point) Scale(f int) Point { return Point{p.X * f, p.Y * f} }
`
	counts := e.Extract("point.go", []byte(code))
	if counts.Functions != 2 {
		t.Errorf("expected 2 functions, got %d", counts.Functions)
	}
	// Interfaces and aliases do not count as classes, only structs do.
	if counts.Classes != 1 {
		t.Errorf("expected 1 class, got %d", counts.Classes)
	}
}

func TestExtract_JavaScript(t *testing.T) {
	e := New()
	code := `
class Cart {
  total() { return 0; }
}

function checkout() {}

const pay = (amount) => amount;
`
	counts := e.Extract("cart.js", []byte(code))
	if counts.Functions != 3 {
		t.Errorf("expected 3 functions, got %d", counts.Functions)
	}
	if counts.Classes != 1 {
		t.Errorf("expected 1 class, got %d", counts.Classes)
	}
}

func TestExtract_FallbackFamilies(t *testing.T) {
	e := New()

	ruby := "class Invoice\n  def total\n  end\nend\n"
	counts := e.Extract("invoice.rb", []byte(ruby))
	if counts.Functions != 1 || counts.Classes != 1 {
		t.Errorf("ruby fallback: expected (1,1), got (%d,%d)", counts.Functions, counts.Classes)
	}

	php := "<?php\nclass Order {\n  function total() { return 0; }\n}\n"
	counts = e.Extract("order.php", []byte(php))
	if counts.Functions != 1 || counts.Classes != 1 {
		t.Errorf("php fallback: expected (1,1), got (%d,%d)", counts.Functions, counts.Classes)
	}
}

func TestExtract_UnsupportedFamilies(t *testing.T) {
	e := New()
	for _, path := range []string{"index.html", "theme.css", "run.sh", "app.swift", "notes.txt"} {
		counts := e.Extract(path, []byte("function f() {}\nclass X {}"))
		if counts != (Counts{}) {
			t.Errorf("%s: expected (0,0), got (%d,%d)", path, counts.Functions, counts.Classes)
		}
	}
}

func TestFallbackRulesCoverEveryGrammarFamily(t *testing.T) {
	// Parse failure must always have somewhere to land.
	for fam := range declHandlers {
		if _, ok := fallbacks[fam]; !ok {
			t.Errorf("family %q has a grammar but no fallback rules", fam)
		}
	}
	if language.DetectFamily("x.rs") != language.FamilyRust {
		t.Fatal("registry drifted: .rs should map to the rust family")
	}
}
