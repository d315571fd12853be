package analyzer

// DefaultSuppressed lists ambient OS/shell variables that code legitimately
// reads but that never belong in a project's declaration file. They are never
// reported as missing regardless of input. The list is extendable via
// configuration; it is deliberately not applied to the orphaned side.
var DefaultSuppressed = map[string]bool{
	"PATH":     true,
	"HOME":     true,
	"USER":     true,
	"SHELL":    true,
	"PWD":      true,
	"OLDPWD":   true,
	"TERM":     true,
	"LANG":     true,
	"LC_ALL":   true,
	"HOSTNAME": true,
	"TMPDIR":   true,
}

// FindMissing returns code names absent from the declared set, minus the
// suppressed set. Pure set difference; empty inputs yield empty outputs.
func FindMissing(codeVars, declared, suppressed map[string]bool) map[string]bool {
	missing := make(map[string]bool)
	for key := range codeVars {
		if declared[key] || suppressed[key] {
			continue
		}
		missing[key] = true
	}
	return missing
}

// FindOrphaned returns declared names never referenced in code. No
// suppression applies here; an orphaned entry is always reportable.
func FindOrphaned(codeVars, declared map[string]bool) map[string]bool {
	orphaned := make(map[string]bool)
	for key := range declared {
		if !codeVars[key] {
			orphaned[key] = true
		}
	}
	return orphaned
}
