package languages

import (
	"regexp"

	"github.com/jenian/envdrift/internal/usage"
)

// javascriptRules match Node-style environment access. Shared by JavaScript
// and TypeScript. Template-literal and computed-key forms are out of scope;
// only literal names are reported.
var javascriptRules = []Rule{
	// process.env.PORT
	{regexp.MustCompile(`process\.env\.([A-Za-z_][A-Za-z0-9_]*)`), usage.KindAttr},
	// process.env["PORT"] or process.env['PORT']
	{regexp.MustCompile(`process\.env\[\s*["']([A-Za-z_][A-Za-z0-9_]*)["']\s*\]`), usage.KindSubscript},
	// Deno.env.get("PORT")
	{regexp.MustCompile(`Deno\.env\.get\(\s*["']([A-Za-z_][A-Za-z0-9_]*)["']`), usage.KindCall},
}
