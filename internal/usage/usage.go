package usage

// Kind identifies the syntactic form that produced a Record.
type Kind int

const (
	// KindAttr is an attribute-style access, e.g. process.env.PORT
	KindAttr Kind = iota
	// KindSubscript is a subscript access with a quoted key, e.g. os.environ["KEY"]
	KindSubscript
	// KindCall is a call with a quoted argument, e.g. os.getenv("KEY")
	KindCall
	// KindExpansion is a shell substitution, e.g. $VAR or ${VAR}
	KindExpansion
	// KindWorkflowSecret is a ${{ secrets.NAME }} reference in a CI workflow
	KindWorkflowSecret
	// KindWorkflowEnv is a ${{ env.NAME }} reference in a CI workflow
	KindWorkflowEnv
)

func (k Kind) String() string {
	switch k {
	case KindAttr:
		return "attr"
	case KindSubscript:
		return "subscript"
	case KindCall:
		return "call"
	case KindExpansion:
		return "expansion"
	case KindWorkflowSecret:
		return "workflow-secret"
	case KindWorkflowEnv:
		return "workflow-env"
	default:
		return "unknown"
	}
}

// Record represents a single reference to an environment variable in a file.
// The key is normalized to uppercase at extraction time. Records are never
// deduplicated at the scanner layer; one record is emitted per call site.
type Record struct {
	Key  string // The environment variable name, uppercased
	File string // File path where it's referenced
	Line int    // 1-based line number where it's referenced
	Kind Kind   // Which syntactic pattern matched
}

// Keys projects a record sequence onto the set of distinct variable names.
func Keys(records []Record) map[string]bool {
	keys := make(map[string]bool)
	for _, r := range records {
		keys[r.Key] = true
	}
	return keys
}

// CountFiles returns the number of distinct files that contributed at least
// one record.
func CountFiles(records []Record) int {
	files := make(map[string]bool)
	for _, r := range records {
		files[r.File] = true
	}
	return len(files)
}
