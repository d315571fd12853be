package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/jenian/envdrift/internal/analyzer"
)

// WriteReport renders the scan result as a Markdown document and writes it
// to path.
func WriteReport(path string, result *analyzer.Result, root string) error {
	return os.WriteFile(path, []byte(renderReport(result, root)), 0644)
}

func renderReport(result *analyzer.Result, root string) string {
	envLabel := "not found"
	if result.EnvFile != "" {
		envLabel = result.EnvFile
	}

	var b strings.Builder
	b.WriteString("# envdrift Report\n\n")
	fmt.Fprintf(&b, "**Source directory:** `%s`\n", root)
	fmt.Fprintf(&b, "**Env file:** `%s`\n", envLabel)
	fmt.Fprintf(&b, "**Code variables found:** %d\n", len(result.CodeVars))
	fmt.Fprintf(&b, "**Declared variables:** %d\n", len(result.Declared))
	fmt.Fprintf(&b, "**Files scanned:** %d\n\n", result.FilesScanned)

	if len(result.Missing) == 0 && len(result.Orphaned) == 0 {
		b.WriteString("All clear! No issues found.\n")
		return b.String()
	}

	if len(result.Missing) > 0 {
		fmt.Fprintf(&b, "## Missing (%d)\n\n", len(result.Missing))
		b.WriteString("| Variable | Used at |\n")
		b.WriteString("|----------|---------|\n")
		for _, key := range sortedKeys(result.Missing) {
			locs, more := locations(result, root, key)
			for i, loc := range locs {
				locs[i] = "`" + loc + "`"
			}
			line := strings.Join(locs, ", ")
			if more > 0 {
				line += fmt.Sprintf(" (+%d more)", more)
			}
			fmt.Fprintf(&b, "| `%s` | %s |\n", key, line)
		}
		b.WriteString("\n")
	}

	if len(result.Orphaned) > 0 {
		fmt.Fprintf(&b, "## Orphaned (%d)\n\n", len(result.Orphaned))
		b.WriteString("| Variable | Status |\n")
		b.WriteString("|----------|--------|\n")
		for _, key := range sortedKeys(result.Orphaned) {
			fmt.Fprintf(&b, "| `%s` | declared but never used in code |\n", key)
		}
		b.WriteString("\n")
	}

	return b.String()
}
