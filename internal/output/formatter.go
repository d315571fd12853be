package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/term"

	"github.com/jenian/envdrift/internal/analyzer"
	"github.com/jenian/envdrift/internal/usage"
)

var (
	// Color support detection
	colorEnabled = initColorSupport()
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGreen  = "\033[32m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// maxLocations caps the per-variable location listing. Records are never
// deduplicated at the scanner layer, so the cap is applied here.
const maxLocations = 3

// initColorSupport initializes color support for the terminal
func initColorSupport() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	// On Windows, ANSI processing has to be enabled explicitly
	// (formatter_windows.go); Unix terminals support it as-is.
	return enableANSI()
}

// getColor returns the color code if colors are enabled, empty string otherwise
func getColor(code string) string {
	if colorEnabled {
		return code
	}
	return ""
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Missing      []MissingVar `json:"missing"`
	Orphaned     []string     `json:"orphaned"`
	FilesScanned int          `json:"files_scanned"`
	EnvFile      string       `json:"env_file"`
}

// MissingVar represents a missing environment variable with its locations
type MissingVar struct {
	Key       string   `json:"key"`
	Locations []string `json:"locations"`
}

// Format renders the scan result. root is the scan root; file paths are
// shown relative to it.
func Format(result *analyzer.Result, root string, jsonOutput, silent, skipOrphaned bool) error {
	if silent {
		// Silent mode: exit code only, handled by the caller.
		return nil
	}
	if jsonOutput {
		return formatJSON(result, root, skipOrphaned)
	}
	return formatHumanReadable(result, root, skipOrphaned)
}

// locations returns up to maxLocations display strings for a variable, plus
// the number of further references.
func locations(result *analyzer.Result, root, key string) ([]string, int) {
	var locs []string
	total := 0
	for _, u := range result.Usages {
		if u.Key != key {
			continue
		}
		total++
		if len(locs) < maxLocations {
			locs = append(locs, fmt.Sprintf("%s:%d", relPath(root, u.File), u.Line))
		}
	}
	return locs, total - len(locs)
}

// ciOnly reports whether every reference to key came from a workflow file.
func ciOnly(result *analyzer.Result, key string) bool {
	seen := false
	for _, u := range result.Usages {
		if u.Key != key {
			continue
		}
		if u.Kind != usage.KindWorkflowSecret && u.Kind != usage.KindWorkflowEnv {
			return false
		}
		seen = true
	}
	return seen
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(path)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// formatJSON outputs results in JSON format
func formatJSON(result *analyzer.Result, root string, skipOrphaned bool) error {
	out := JSONOutput{
		Missing:      []MissingVar{},
		Orphaned:     []string{},
		FilesScanned: result.FilesScanned,
		EnvFile:      result.EnvFile,
	}

	for _, key := range sortedKeys(result.Missing) {
		locs, _ := locations(result, root, key)
		out.Missing = append(out.Missing, MissingVar{Key: key, Locations: locs})
	}
	if !skipOrphaned {
		out.Orphaned = sortedKeys(result.Orphaned)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// formatHumanReadable outputs results in human-readable format
func formatHumanReadable(result *analyzer.Result, root string, skipOrphaned bool) error {
	envLabel := "declarations"
	if result.EnvFile != "" {
		envLabel = filepath.Base(result.EnvFile)
	}

	missing := sortedKeys(result.Missing)
	if len(missing) > 0 {
		fmt.Printf("%s%sMissing in %s (%d):%s\n\n", getColor(colorBold), getColor(colorRed), envLabel, len(missing), getColor(colorReset))
		for _, key := range missing {
			label := key
			if ciOnly(result, key) {
				label += " (CI only)"
			}
			fmt.Printf("  %s%s%s\n", getColor(colorRed), label, getColor(colorReset))
			locs, more := locations(result, root, key)
			line := strings.Join(locs, ", ")
			if more > 0 {
				line += fmt.Sprintf(" (+%d more)", more)
			}
			fmt.Printf("    %sused in:%s %s%s%s\n", getColor(colorGray), getColor(colorReset), getColor(colorCyan), line, getColor(colorReset))
		}
		fmt.Println()
	}

	orphaned := sortedKeys(result.Orphaned)
	if !skipOrphaned && len(orphaned) > 0 {
		fmt.Printf("%s%sOrphaned in %s (%d):%s\n\n", getColor(colorBold), getColor(colorYellow), envLabel, len(orphaned), getColor(colorReset))
		for _, key := range orphaned {
			fmt.Printf("  %s%s%s %sdeclared but never used%s\n", getColor(colorYellow), key, getColor(colorReset), getColor(colorGray), getColor(colorReset))
		}
		fmt.Println()
	}

	issues := len(missing)
	if !skipOrphaned {
		issues += len(orphaned)
	}
	if issues == 0 {
		fmt.Printf("%s%s✓ No drift detected. All environment variables are accounted for.%s\n", getColor(colorGreen), getColor(colorBold), getColor(colorReset))
	} else {
		orphanedCount := 0
		if !skipOrphaned {
			orphanedCount = len(orphaned)
		}
		fmt.Printf("%s%s✗ %d issue(s) found (%d missing, %d orphaned).%s\n", getColor(colorBold), getColor(colorRed), issues, len(missing), orphanedCount, getColor(colorReset))
	}
	return nil
}
