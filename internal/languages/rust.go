package languages

import (
	"regexp"

	"github.com/jenian/envdrift/internal/usage"
)

// rustRules match std::env lookups and the compile-time env macros.
var rustRules = []Rule{
	// env::var("KEY") / std::env::var("KEY") / env::var_os("KEY")
	{regexp.MustCompile(`(?:std::)?env::var(?:_os)?\(\s*"([A-Za-z_][A-Za-z0-9_]*)"`), usage.KindCall},
	// env!("KEY") / option_env!("KEY")
	{regexp.MustCompile(`(?:option_)?env!\(\s*"([A-Za-z_][A-Za-z0-9_]*)"`), usage.KindCall},
}
