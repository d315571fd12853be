package languages

import (
	"regexp"

	"github.com/jenian/envdrift/internal/usage"
)

// rubyRules match the ENV pseudo-hash.
var rubyRules = []Rule{
	// ENV["KEY"] or ENV['KEY']
	{regexp.MustCompile(`ENV\[\s*["']([A-Za-z_][A-Za-z0-9_]*)["']\s*\]`), usage.KindSubscript},
	// ENV.fetch("KEY", default)
	{regexp.MustCompile(`ENV\.fetch\(\s*["']([A-Za-z_][A-Za-z0-9_]*)["']`), usage.KindCall},
}
