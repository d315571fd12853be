package languages

import (
	"regexp"

	"github.com/jenian/envdrift/internal/usage"
)

var javaRules = []Rule{
	// System.getenv("KEY")
	{regexp.MustCompile(`System\.getenv\(\s*"([A-Za-z_][A-Za-z0-9_]*)"`), usage.KindCall},
}
