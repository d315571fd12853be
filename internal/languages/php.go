package languages

import (
	"regexp"

	"github.com/jenian/envdrift/internal/usage"
)

// phpRules match the superglobal arrays and getenv().
var phpRules = []Rule{
	// $_ENV['KEY'] or $_SERVER['KEY']
	{regexp.MustCompile(`\$_(?:ENV|SERVER)\[\s*["']([A-Za-z_][A-Za-z0-9_]*)["']\s*\]`), usage.KindSubscript},
	// getenv('KEY')
	{regexp.MustCompile(`getenv\(\s*["']([A-Za-z_][A-Za-z0-9_]*)["']`), usage.KindCall},
}
