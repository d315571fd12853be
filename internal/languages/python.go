package languages

import (
	"regexp"

	"github.com/jenian/envdrift/internal/usage"
)

// pythonRules match the stdlib os module conventions. Dynamic keys
// (os.environ["prefix_" + name]) are not resolved.
var pythonRules = []Rule{
	// os.environ["KEY"] or os.environ['KEY']
	{regexp.MustCompile(`os\.environ\[\s*["']([A-Za-z_][A-Za-z0-9_]*)["']\s*\]`), usage.KindSubscript},
	// os.environ.get("KEY", default)
	{regexp.MustCompile(`os\.environ\.get\(\s*["']([A-Za-z_][A-Za-z0-9_]*)["']`), usage.KindCall},
	// os.getenv("KEY", default)
	{regexp.MustCompile(`os\.getenv\(\s*["']([A-Za-z_][A-Za-z0-9_]*)["']`), usage.KindCall},
}
