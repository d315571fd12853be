package languages

import (
	"regexp"

	"github.com/jenian/envdrift/internal/usage"
)

// shellRules match parameter expansion in shell scripts. The braced rule
// tolerates modifiers like ${VAR:-default}; positional parameters and
// single-character loop variables fall out through the noise filter.
var shellRules = []Rule{
	// ${VAR} / ${VAR:-default}
	{regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)`), usage.KindExpansion},
	// $VAR
	{regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`), usage.KindExpansion},
}
