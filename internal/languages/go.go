package languages

import (
	"regexp"

	"github.com/jenian/envdrift/internal/usage"
)

// goRules match the os package lookup functions.
var goRules = []Rule{
	// os.Getenv("KEY")
	{regexp.MustCompile(`os\.Getenv\(\s*"([A-Za-z_][A-Za-z0-9_]*)"`), usage.KindCall},
	// os.LookupEnv("KEY")
	{regexp.MustCompile(`os\.LookupEnv\(\s*"([A-Za-z_][A-Za-z0-9_]*)"`), usage.KindCall},
}
