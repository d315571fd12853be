package scanner

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/jenian/envdrift/internal/languages"
	"github.com/jenian/envdrift/internal/usage"
)

// FileInfo contains information about a file selected for scanning
type FileInfo struct {
	Path     string
	Language languages.Language
}

// Scanner handles file discovery, filtering and per-file extraction
type Scanner struct {
	excludeDirs  map[string]bool // Directory names to exclude (e.g., "node_modules")
	allowExts    map[string]bool // Extension allow-list; nil means the full registry
	skipComments bool
}

// New creates a scanner with the default exclusions. Comment skipping is on
// by default.
func New() *Scanner {
	return &Scanner{
		excludeDirs: map[string]bool{
			".git":          true,
			"node_modules":  true,
			"vendor":        true,
			"venv":          true,
			".venv":         true,
			"__pycache__":   true,
			"build":         true,
			"dist":          true,
			"target":        true,
			"bin":           true,
			"out":           true,
			".next":         true,
			".cache":        true,
			".tox":          true,
			".mypy_cache":   true,
			".pytest_cache": true,
			".terraform":    true,
			".gradle":       true,
		},
		skipComments: true,
	}
}

// AddExcludeDirs adds directory names to exclude from traversal.
func (s *Scanner) AddExcludeDirs(names []string) {
	for _, name := range names {
		if name != "" {
			s.excludeDirs[name] = true
		}
	}
}

// SetAllowedExtensions restricts scanning to the given extensions. Entries
// may be given with or without a leading dot; matching is case-insensitive.
// An empty list restores the full registry.
func (s *Scanner) SetAllowedExtensions(exts []string) {
	if len(exts) == 0 {
		s.allowExts = nil
		return
	}
	s.allowExts = make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		s.allowExts[ext] = true
	}
}

// SetSkipComments toggles the leading-line-comment heuristic.
func (s *Scanner) SetSkipComments(enabled bool) {
	s.skipComments = enabled
}

// accepts reports whether a path passes extension routing.
func (s *Scanner) accepts(path string) (languages.Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if s.allowExts != nil && !s.allowExts[ext] {
		return languages.LanguageUnknown, false
	}
	lang := languages.ForExtension(ext)
	if lang == languages.LanguageUnknown {
		return lang, false
	}
	return lang, true
}

// isHidden reports whether an entry name carries the hidden-entry marker.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// excludedComponent reports whether any component of the path relative to
// root is an excluded or hidden directory. Exclusion applies to every
// ancestor, not just the immediate parent.
func (s *Scanner) excludedComponent(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(dir), "/") {
		if s.excludeDirs[part] || isHidden(part) {
			return true
		}
	}
	return false
}

// ScanFile scans a single file and returns one record per pattern match.
// Unrecognized extensions, unreadable files and undecodable content all
// degrade to an empty result; a single bad file never aborts a traversal.
func (s *Scanner) ScanFile(path string) []usage.Record {
	lang, ok := s.accepts(path)
	if !ok {
		return nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	rules := languages.Rules(lang)
	markers := languages.CommentMarkers(lang)

	var records []usage.Record
	reader := bufio.NewScanner(file)
	reader.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for reader.Scan() {
		lineNum++
		line := reader.Text()
		if !utf8.ValidString(line) {
			line = strings.ToValidUTF8(line, "")
		}

		if s.skipComments && isCommentLine(line, markers) {
			continue
		}

		for _, rule := range rules {
			for _, m := range rule.Pattern.FindAllStringSubmatch(line, -1) {
				key := strings.ToUpper(m[1])
				if languages.IsNoise(key) {
					continue
				}
				records = append(records, usage.Record{
					Key:  key,
					File: path,
					Line: lineNum,
					Kind: rule.Kind,
				})
			}
		}
	}
	// A partial read still yields the records collected so far.
	return records
}

func isCommentLine(line string, markers []string) bool {
	trimmed := strings.TrimSpace(line)
	for _, marker := range markers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// Discover walks a root path and returns the files to scan. A missing root
// yields an empty result; a single-file root yields that file if its
// extension is recognized.
func (s *Scanner) Discover(root string) []FileInfo {
	info, err := os.Stat(root)
	if err != nil {
		return nil
	}

	if info.Mode().IsRegular() {
		if lang, ok := s.accepts(root); ok {
			return []FileInfo{{Path: root, Language: lang}}
		}
		return nil
	}
	if !info.IsDir() {
		return nil
	}

	var files []FileInfo
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && (s.excludeDirs[name] || isHidden(name)) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if isHidden(name) || s.excludedComponent(root, path) {
			return nil
		}
		if lang, ok := s.accepts(path); ok {
			files = append(files, FileInfo{Path: path, Language: lang})
		}
		return nil
	})
	return files
}

// ScanTree scans every file under root sequentially and returns the
// concatenated records in path order. Records within a file are in ascending
// line order.
func (s *Scanner) ScanTree(root string) []usage.Record {
	var records []usage.Record
	for _, f := range s.Discover(root) {
		records = append(records, s.ScanFile(f.Path)...)
	}
	return records
}
