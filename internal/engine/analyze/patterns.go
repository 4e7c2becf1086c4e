package analyze

import (
	"regexp"
	"strings"
)

// Detector thresholds. These were tuned empirically against the scoring
// buckets and must not drift; they are deliberately not configurable.
const (
	genericNameThreshold = 10
	formattingThreshold  = 0.95
	boilerplateThreshold = 3
	repetitionThreshold  = 0.3
	repetitionMinLines   = 5
	templatedThreshold   = 5
)

// Detections holds the per-file boolean outcome of each detector.
type Detections struct {
	GenericNames      bool
	PerfectFormatting bool
	Boilerplate       bool
	Repetition        bool
	TemplatedComments bool
}

// genericNameRe matches one occurrence of the generic-identifier vocabulary.
// Each word occurrence counts once, even where vocabulary entries overlap.
var genericNameRe = regexp.MustCompile(`(?i)\b(data|datas|result|value|item|items|temp|tempvar|tempvalue|tempdata|user|users|list|lists|(?:handle|process|execute|perform|do|run)\w*|(?:helper|util|common|shared)\w*)\b`)

// boilerplateRes match near-empty function/class shapes across the main
// language families. Non-greedy bodies keep the match on the smallest block.
var boilerplateRes = []*regexp.Regexp{
	regexp.MustCompile(`function\s+\w+\s*\(\s*\)\s*\{[\s\S]*?\}`),
	regexp.MustCompile(`class\s+\w+\s*\{[\s\S]*?\}`),
	regexp.MustCompile(`const\s+\w+\s*=\s*\([^)]*\)\s*=>\s*\{[\s\S]*?\}`),
	regexp.MustCompile(`def\s+\w+\s*\([^)]*\):\s*pass`),
}

// templatedCommentRes are stock comment openers across the three main
// comment-marker styles.
var templatedCommentRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)# This function`),
	regexp.MustCompile(`(?i)# TODO:`),
	regexp.MustCompile(`(?i)# FIXME:`),
	regexp.MustCompile(`(?i)# Note:`),
	regexp.MustCompile(`(?i)# This is a`),
	regexp.MustCompile(`(?i)# The following`),
	regexp.MustCompile(`(?i)/\* This function`),
	regexp.MustCompile(`(?i)/\* TODO:`),
	regexp.MustCompile(`(?i)// This function`),
	regexp.MustCompile(`(?i)// TODO:`),
}

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// Detect runs all five detectors over one file's content.
func Detect(content []byte) Detections {
	lines := strings.Split(string(content), "\n")
	return Detections{
		GenericNames:      len(genericNameRe.FindAllIndex(content, -1)) > genericNameThreshold,
		PerfectFormatting: indentUniformity(lines) > formattingThreshold,
		Boilerplate:       countMatches(boilerplateRes, content) > boilerplateThreshold,
		Repetition:        repetitionRatio(lines) > repetitionThreshold,
		TemplatedComments: countMatches(templatedCommentRes, content) > templatedThreshold,
	}
}

func countMatches(res []*regexp.Regexp, content []byte) int {
	total := 0
	for _, re := range res {
		total += len(re.FindAllIndex(content, -1))
	}
	return total
}

// indentUniformity returns the larger of two fractions over non-blank lines:
// indent width a multiple of 4, and indent purely tab-based and non-empty.
// A file with no non-blank lines counts as uniform.
func indentUniformity(lines []string) float64 {
	total := 0
	multipleOfFour := 0
	tabbed := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		total++
		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if len(indent)%4 == 0 {
			multipleOfFour++
		}
		if len(indent) > 0 && strings.Count(indent, "\t") == len(indent) {
			tabbed++
		}
	}
	if total == 0 {
		return 1.0
	}
	frac := float64(multipleOfFour) / float64(total)
	if tabFrac := float64(tabbed) / float64(total); tabFrac > frac {
		frac = tabFrac
	}
	return frac
}

// repetitionRatio is the share of non-blank lines whose whitespace-normalized
// form appears more than once. Files under repetitionMinLines lines are too
// small to judge and return 0.
func repetitionRatio(lines []string) float64 {
	normalized := make([]string, 0, len(lines))
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		normalized = append(normalized, whitespaceRunRe.ReplaceAllString(stripped, " "))
	}
	if len(normalized) < repetitionMinLines {
		return 0
	}

	counts := make(map[string]int, len(normalized))
	for _, line := range normalized {
		counts[line]++
	}
	repeated := 0
	for _, n := range counts {
		if n > 1 {
			repeated++
		}
	}
	return float64(repeated) / float64(len(normalized))
}
