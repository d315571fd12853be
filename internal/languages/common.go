package languages

import (
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/jenian/envdrift/internal/usage"
)

// Language represents a programming language
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageGo         Language = "go"
	LanguagePython     Language = "python"
	LanguageRuby       Language = "ruby"
	LanguageRust       Language = "rust"
	LanguageJava       Language = "java"
	LanguagePHP        Language = "php"
	LanguageShell      Language = "shell"
	LanguageUnknown    Language = "unknown"
)

// Rule pairs a pattern with the usage kind it reports. The pattern's first
// capture group is the variable name. All rules for a language are tried
// independently on every line; they are not mutually exclusive.
type Rule struct {
	Pattern *regexp.Regexp
	Kind    usage.Kind
}

// byExtension routes file extensions (lowercase, with dot) to a language.
var byExtension = map[string]Language{
	".js":   LanguageJavaScript,
	".jsx":  LanguageJavaScript,
	".mjs":  LanguageJavaScript,
	".cjs":  LanguageJavaScript,
	".ts":   LanguageTypeScript,
	".tsx":  LanguageTypeScript,
	".go":   LanguageGo,
	".py":   LanguagePython,
	".rb":   LanguageRuby,
	".rs":   LanguageRust,
	".java": LanguageJava,
	".php":  LanguagePHP,
	".sh":   LanguageShell,
	".bash": LanguageShell,
	".zsh":  LanguageShell,
}

// ruleTable maps each language to its ordered rule list. TypeScript shares
// the JavaScript rules. New languages extend this table without touching
// traversal or aggregation logic.
var ruleTable = map[Language][]Rule{
	LanguageJavaScript: javascriptRules,
	LanguageTypeScript: javascriptRules,
	LanguageGo:         goRules,
	LanguagePython:     pythonRules,
	LanguageRuby:       rubyRules,
	LanguageRust:       rustRules,
	LanguageJava:       javaRules,
	LanguagePHP:        phpRules,
	LanguageShell:      shellRules,
}

// commentMarkers lists the single-line comment prefixes per language. A line
// whose stripped content starts with one of these is skipped by policy.
// Inline trailing comments are not detected; under-counting there is an
// accepted trade-off.
var commentMarkers = map[Language][]string{
	LanguageJavaScript: {"//"},
	LanguageTypeScript: {"//"},
	LanguageGo:         {"//"},
	LanguagePython:     {"#"},
	LanguageRuby:       {"#"},
	LanguageRust:       {"//"},
	LanguageJava:       {"//"},
	LanguagePHP:        {"//", "#"},
	LanguageShell:      {"#"},
}

// ForExtension returns the language for a file extension. Matching is
// case-insensitive; unrecognized extensions map to LanguageUnknown.
func ForExtension(ext string) Language {
	if lang, ok := byExtension[strings.ToLower(ext)]; ok {
		return lang
	}
	return LanguageUnknown
}

// ForPath returns the language for a file path based on its extension.
func ForPath(path string) Language {
	return ForExtension(filepath.Ext(path))
}

// Rules returns the ordered rule list for a language, or nil for unknown.
func Rules(lang Language) []Rule {
	return ruleTable[lang]
}

// CommentMarkers returns the single-line comment prefixes for a language.
func CommentMarkers(lang Language) []string {
	return commentMarkers[lang]
}

// Extensions returns all recognized extensions, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(byExtension))
	for ext := range byExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// IsNoise reports whether a matched name should be discarded. Names are
// normalized to uppercase before this filter runs. Single characters and
// all-digit matches come from overly permissive capture groups.
func IsNoise(name string) bool {
	if len(name) < 2 {
		return true
	}
	for _, c := range name {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
