// Package score turns the accumulated per-run totals into the bounded report
// scores and the ordered highlight list.
package score

import (
	"fmt"

	"vibescan/internal/engine/analyze"
)

// Totals accumulates raw counts across every analyzed file.
type Totals struct {
	Files     int
	Lines     int
	Comments  int
	Functions int
	Classes   int
}

// PatternCounters counts files that tripped each detector, in detector
// declaration order. Monotonically non-decreasing during a run.
type PatternCounters struct {
	GenericNames      int
	PerfectFormatting int
	Boilerplate       int
	Repetition        int
	TemplatedComments int
}

// Fold increments the counters that a single file triggered.
func (c *PatternCounters) Fold(d analyze.Detections) {
	if d.GenericNames {
		c.GenericNames++
	}
	if d.PerfectFormatting {
		c.PerfectFormatting++
	}
	if d.Boilerplate {
		c.Boilerplate++
	}
	if d.Repetition {
		c.Repetition++
	}
	if d.TemplatedComments {
		c.TemplatedComments++
	}
}

// Probes are the repository-level existence checks feeding the score rules.
type Probes struct {
	HasReadme   bool
	HasExamples bool
	HasTests    bool
}

// Report is the externally visible result. Scores are integers in [0,10];
// TestsScore is binary (0 or 10). Immutable once produced.
type Report struct {
	CommentsScore int      `json:"comments_score"`
	NamingScore   int      `json:"naming_score"`
	TestsScore    int      `json:"tests_score"`
	ExamplesScore int      `json:"examples_score"`
	Highlights    []string `json:"highlights"`
}

// Aggregate computes the four scores and highlights. A run that discovered
// no code files reports all zeros with the dedicated fallback highlight.
func Aggregate(t Totals, c PatternCounters, p Probes) Report {
	if t.Files == 0 {
		return Report{Highlights: []string{"No code files found"}}
	}

	r := Report{
		CommentsScore: commentsScore(t),
		NamingScore:   namingScore(t, c),
		ExamplesScore: examplesScore(t, p),
	}
	if p.HasTests {
		r.TestsScore = 10
	}
	r.Highlights = highlights(c, p, r)
	return r
}

func commentsScore(t Totals) int {
	if t.Lines == 0 {
		return 0
	}
	ratio := float64(t.Comments) / float64(t.Lines)
	switch {
	case ratio > 0.3:
		return 10
	case ratio > 0.2:
		return 8
	case ratio > 0.1:
		return 6
	case ratio > 0.05:
		return 4
	default:
		return 2
	}
}

func namingScore(t Totals, c PatternCounters) int {
	s := 10
	switch {
	case float64(c.GenericNames) > float64(t.Files)*0.3:
		s -= 4
	case float64(c.GenericNames) > float64(t.Files)*0.1:
		s -= 2
	}
	if s < 0 {
		s = 0
	}
	return s
}

func examplesScore(t Totals, p Probes) int {
	s := 0
	if p.HasReadme {
		s += 5
	}
	if p.HasExamples {
		s += 3
	}
	if t.Functions > 0 {
		s += 2
	}
	if s > 10 {
		s = 10
	}
	return s
}

// highlights builds the ordered findings: one line per triggered detector in
// declaration order, then the positive findings, then the fallback.
func highlights(c PatternCounters, p Probes, r Report) []string {
	var out []string

	add := func(label string, files int) {
		if files > 0 {
			out = append(out, fmt.Sprintf("%s (%d files)", label, files))
		}
	}
	add("Generic naming patterns detected", c.GenericNames)
	add("Perfect formatting detected", c.PerfectFormatting)
	add("Boilerplate code patterns", c.Boilerplate)
	add("Repetitive code patterns", c.Repetition)
	add("AI-generated comment patterns", c.TemplatedComments)

	if p.HasReadme {
		out = append(out, "README present")
	}
	if r.TestsScore > 0 {
		out = append(out, "Test files found")
	}
	if r.ExamplesScore > 5 {
		out = append(out, "Good documentation/examples")
	}

	if len(out) == 0 {
		out = append(out, "Basic code structure")
	}
	return out
}
