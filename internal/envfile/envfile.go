package envfile

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// candidates is the locator priority order: most-specific example variants
// first, the live .env last.
var candidates = []string{
	".env.example",
	".env.sample",
	".env.template",
	".env.defaults",
	".env",
}

// identifier optionally followed by '='
var declRegex = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*(=|$)`)

// Parser extracts declared variable names from dotenv-style documents
type Parser struct {
	// AllowBare accepts a line that is just an identifier with no '=' as a
	// declaration. Minimalist template files list bare names; disable this
	// when that looks like a false sense of documentation.
	AllowBare bool
}

// NewParser creates a parser with the default policy (bare names accepted).
func NewParser() *Parser {
	return &Parser{AllowBare: true}
}

// Parse reads a declaration file and returns the set of declared names,
// normalized to uppercase. A missing or unreadable file yields an empty set,
// never an error. Duplicate declarations collapse; order is not preserved.
func (p *Parser) Parse(path string) map[string]bool {
	vars := make(map[string]bool)

	file, err := os.Open(path)
	if err != nil {
		return vars
	}
	defer file.Close()

	reader := bufio.NewScanner(file)
	for reader.Scan() {
		line := strings.TrimSpace(reader.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		line = strings.TrimSpace(line)

		m := declRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if m[2] == "" && !p.AllowBare {
			continue
		}
		vars[strings.ToUpper(m[1])] = true
	}
	return vars
}

// Locate returns the first existing declaration file in a directory, in
// candidate priority order. Existence check only; content is not validated.
func Locate(dir string) (string, bool) {
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}
