package analyzer

import "github.com/jenian/envdrift/internal/usage"

// Result contains the complete analysis of one scan invocation
type Result struct {
	Usages       []usage.Record  // All references found, sorted by (file, line)
	CodeVars     map[string]bool // Distinct names referenced in code and workflows
	Declared     map[string]bool // Names declared by the env file and extra sources
	Missing      map[string]bool // Referenced but not declared (after suppression)
	Orphaned     map[string]bool // Declared but never referenced
	FilesScanned int             // Distinct files that contributed at least one record
	EnvFile      string          // Declaration file used, empty if none was found
}

// HasIssues reports whether the scan found any drift. Orphaned entries are
// ignored when skipOrphaned is set.
func (r *Result) HasIssues(skipOrphaned bool) bool {
	if len(r.Missing) > 0 {
		return true
	}
	return !skipOrphaned && len(r.Orphaned) > 0
}
