package structure

import (
	"regexp"

	"vibescan/internal/engine/language"
)

// fallbackRules approximate declaration counts with pattern matching when no
// grammar is available or parsing failed.
type fallbackRules struct {
	functions *regexp.Regexp
	classes   *regexp.Regexp
}

var fallbacks = map[language.Family]fallbackRules{
	language.FamilyPython: {
		functions: regexp.MustCompile(`def\s+\w+\s*\(`),
		classes:   regexp.MustCompile(`class\s+\w+`),
	},
	language.FamilyJavaScript: {
		functions: regexp.MustCompile(`function\s+\w+\s*\(|const\s+\w+\s*=\s*\([^)]*\)\s*=>`),
		classes:   regexp.MustCompile(`class\s+\w+`),
	},
	language.FamilyTypeScript: {
		functions: regexp.MustCompile(`function\s+\w+\s*\(|const\s+\w+\s*=\s*\([^)]*\)\s*=>`),
		classes:   regexp.MustCompile(`class\s+\w+`),
	},
	language.FamilyGo: {
		functions: regexp.MustCompile(`func\s+\w+`),
		classes:   regexp.MustCompile(`type\s+\w+\s+struct`),
	},
	language.FamilyRuby: {
		functions: regexp.MustCompile(`def\s+\w+`),
		classes:   regexp.MustCompile(`class\s+\w+`),
	},
	language.FamilyPHP: {
		functions: regexp.MustCompile(`function\s+\w+\s*\(`),
		classes:   regexp.MustCompile(`class\s+\w+`),
	},
	language.FamilyRust: {
		functions: regexp.MustCompile(`fn\s+\w+`),
		classes:   regexp.MustCompile(`(?:struct|enum|trait)\s+\w+`),
	},
	language.FamilyCLike: {
		functions: regexp.MustCompile(`\w+\s+\w+\s*\([^)]*\)\s*\{`),
		classes:   regexp.MustCompile(`class\s+\w+`),
	},
}

func fallback(fam language.Family, content []byte) Counts {
	rules, found := fallbacks[fam]
	if !found {
		return Counts{}
	}
	return Counts{
		Functions: len(rules.functions.FindAllIndex(content, -1)),
		Classes:   len(rules.classes.FindAllIndex(content, -1)),
	}
}
