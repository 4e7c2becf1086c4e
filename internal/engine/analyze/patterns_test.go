package analyze

import (
	"strings"
	"testing"
)

func TestGenericNames_ThresholdBoundary(t *testing.T) {
	ten := strings.Repeat("data ", 10)
	if Detect([]byte(ten)).GenericNames {
		t.Error("10 occurrences must not trigger the generic-identifier detector")
	}

	eleven := strings.Repeat("data ", 11)
	if !Detect([]byte(eleven)).GenericNames {
		t.Error("11 occurrences must trigger the generic-identifier detector")
	}
}

func TestGenericNames_CaseInsensitiveAndPrefixed(t *testing.T) {
	content := "DATA Result handleRequest processEvent runAll helperThing utilBox sharedState commonCase executeNow performTask doWork"
	if !Detect([]byte(content)).GenericNames {
		t.Error("mixed-case vocabulary and prefixed words should trigger")
	}
}

func TestPerfectFormatting_MultipleOfFourIndent(t *testing.T) {
	lines := []string{
		"def f():",
		"    x = 1",
		"    if x:",
		"        return x",
	}
	d := Detect([]byte(strings.Join(lines, "\n")))
	if !d.PerfectFormatting {
		t.Error("all indents multiple of 4 should yield fraction 1.0 and trigger")
	}
}

func TestPerfectFormatting_IrregularIndent(t *testing.T) {
	// Half the lines sit at odd widths, well under the 0.95 threshold.
	lines := []string{
		"a = 1",
		"  b = 2",
		"     c = 3",
		"   d = 4",
		" e = 5",
		"  f = 6",
		"   g = 7",
		" h = 8",
	}
	if Detect([]byte(strings.Join(lines, "\n"))).PerfectFormatting {
		t.Error("irregular indentation must not trigger")
	}
}

func TestPerfectFormatting_TabIndent(t *testing.T) {
	lines := []string{
		"\tx := 1",
		"\ty := 2",
		"\t\tz := 3",
	}
	if !Detect([]byte(strings.Join(lines, "\n"))).PerfectFormatting {
		t.Error("purely tab-based indentation on every line should trigger")
	}
}

func TestBoilerplate(t *testing.T) {
	content := strings.Repeat("def stub(): pass\n", 4)
	if !Detect([]byte(content)).Boilerplate {
		t.Error("4 placeholder bodies exceed the threshold of 3")
	}
	if Detect([]byte(strings.Repeat("def stub(): pass\n", 3))).Boilerplate {
		t.Error("3 placeholder bodies must not trigger")
	}
}

func TestRepetition(t *testing.T) {
	lines := []string{
		"x = get()", "x = get()",
		"y =  put()", "y = put()", // same after whitespace normalization
		"z = 1", "z = 1",
	}
	d := Detect([]byte(strings.Join(lines, "\n")))
	if !d.Repetition {
		t.Error("3 of 6 normalized lines repeat; ratio 0.5 should trigger")
	}
}

func TestRepetition_TooFewLines(t *testing.T) {
	content := "a\na\na\na"
	if Detect([]byte(content)).Repetition {
		t.Error("files under 5 non-blank lines are never judged repetitive")
	}
}

func TestTemplatedComments(t *testing.T) {
	content := strings.Repeat("# TODO: fill in\n", 6)
	if !Detect([]byte(content)).TemplatedComments {
		t.Error("6 stock openers exceed the threshold of 5")
	}
	if Detect([]byte(strings.Repeat("// todo: later\n", 5))).TemplatedComments {
		t.Error("5 stock openers must not trigger")
	}
}
