// Package structure counts function-like and class-like declarations per
// file. Families with a bundled tree-sitter grammar get a precise pass over
// the syntax tree; anything else, and any parse failure, degrades to
// per-family pattern matching. No failure escapes this package.
package structure

import (
	"path/filepath"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"vibescan/internal/engine/language"
)

// Counts is the structural tally for one file.
type Counts struct {
	Functions int
	Classes   int
}

// Extractor owns the loaded grammars. Safe for concurrent use; each Parse
// call creates its own parser.
type Extractor struct {
	grammars map[string]*sitter.Language
}

// New loads the bundled grammars. Grammar IDs mirror file dialects rather
// than families so .ts and .tsx each get the right grammar variant.
func New() *Extractor {
	return &Extractor{
		grammars: map[string]*sitter.Language{
			"python":     sitter.NewLanguage(tree_sitter_python.Language()),
			"javascript": sitter.NewLanguage(tree_sitter_javascript.Language()),
			"typescript": sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
			"tsx":        sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
			"go":         sitter.NewLanguage(tree_sitter_go.Language()),
			"java":       sitter.NewLanguage(tree_sitter_java.Language()),
			"rust":       sitter.NewLanguage(tree_sitter_rust.Language()),
		},
	}
}

// Extract returns the declaration counts for one file. Unsupported families
// yield (0, 0).
func (e *Extractor) Extract(path string, content []byte) Counts {
	fam := language.DetectFamily(path)
	if fam == language.FamilyNone {
		return Counts{}
	}

	if grammar := e.grammars[grammarID(fam, path)]; grammar != nil {
		if counts, ok := e.precise(grammar, fam, content); ok {
			return counts
		}
	}
	return fallback(fam, content)
}

// grammarID maps a family (plus extension, for dialect grammars) to the
// grammar table key. Empty means pattern matching only.
func grammarID(fam language.Family, path string) string {
	switch fam {
	case language.FamilyPython:
		return "python"
	case language.FamilyJavaScript:
		return "javascript"
	case language.FamilyTypeScript:
		if strings.EqualFold(filepath.Ext(path), ".tsx") {
			return "tsx"
		}
		return "typescript"
	case language.FamilyGo:
		return "go"
	case language.FamilyRust:
		return "rust"
	case language.FamilyCLike:
		// Only Java has a bundled grammar in this family.
		if strings.EqualFold(filepath.Ext(path), ".java") {
			return "java"
		}
	}
	return ""
}

// precise parses the content and counts declaration nodes by kind. Returns
// ok=false when the parse yields nothing usable so the caller can fall back.
func (e *Extractor) precise(grammar *sitter.Language, fam language.Family, content []byte) (counts Counts, ok bool) {
	// The grammar bindings cross a cgo boundary; treat any panic as a
	// parse failure rather than letting it abort the file.
	defer func() {
		if recover() != nil {
			counts, ok = Counts{}, false
		}
	}()

	parser := sitter.NewParser()
	defer parser.Close()
	if err := parser.SetLanguage(grammar); err != nil {
		return Counts{}, false
	}

	tree := parser.Parse(content, nil)
	if tree == nil {
		return Counts{}, false
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return Counts{}, false
	}

	walkCounting(root, declHandlers[fam], &counts)
	return counts, true
}

// walkCounting dispatches the handler for every node kind it knows about and
// recurses into all children.
func walkCounting(node *sitter.Node, handlers map[string]func(*sitter.Node, *Counts), counts *Counts) {
	if node == nil {
		return
	}
	if handler, found := handlers[node.Kind()]; found {
		handler(node, counts)
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		walkCounting(node.Child(i), handlers, counts)
	}
}

func addFunction(_ *sitter.Node, c *Counts) { c.Functions++ }
func addClass(_ *sitter.Node, c *Counts)    { c.Classes++ }

// addGoStruct counts a type_spec only when it declares a struct, so aliases
// and interface declarations stay out of the class tally.
func addGoStruct(node *sitter.Node, c *Counts) {
	if t := node.ChildByFieldName("type"); t != nil && t.Kind() == "struct_type" {
		c.Classes++
	}
}

// declHandlers maps each precisely-parsed family to its declaration kinds.
var declHandlers = map[language.Family]map[string]func(*sitter.Node, *Counts){
	language.FamilyPython: {
		"function_definition": addFunction,
		"class_definition":    addClass,
	},
	language.FamilyJavaScript: {
		"function_declaration":           addFunction,
		"generator_function_declaration": addFunction,
		"method_definition":              addFunction,
		"arrow_function":                 addFunction,
		"class_declaration":              addClass,
	},
	language.FamilyTypeScript: {
		"function_declaration":           addFunction,
		"generator_function_declaration": addFunction,
		"method_definition":              addFunction,
		"arrow_function":                 addFunction,
		"class_declaration":              addClass,
	},
	language.FamilyGo: {
		"function_declaration": addFunction,
		"method_declaration":   addFunction,
		"type_spec":            addGoStruct,
	},
	language.FamilyCLike: {
		"method_declaration":      addFunction,
		"constructor_declaration": addFunction,
		"class_declaration":       addClass,
		"interface_declaration":   addClass,
		"enum_declaration":        addClass,
	},
	language.FamilyRust: {
		"function_item": addFunction,
		"struct_item":   addClass,
		"enum_item":     addClass,
		"trait_item":    addClass,
	},
}
