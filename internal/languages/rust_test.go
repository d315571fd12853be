package languages

import "testing"

func TestRust_EnvVar(t *testing.T) {
	assertKeys(t, LanguageRust, `let url = env::var("DATABASE_URL")?;`, "DATABASE_URL")
	assertKeys(t, LanguageRust, `let url = std::env::var("DATABASE_URL").unwrap();`, "DATABASE_URL")
	assertKeys(t, LanguageRust, `let home = env::var_os("CARGO_HOME");`, "CARGO_HOME")
}

func TestRust_Macros(t *testing.T) {
	assertKeys(t, LanguageRust, `const VERSION: &str = env!("CARGO_PKG_VERSION");`, "CARGO_PKG_VERSION")
	assertKeys(t, LanguageRust, `let key = option_env!("API_KEY");`, "API_KEY")
}

func TestRust_NoMatch(t *testing.T) {
	assertKeys(t, LanguageRust, `let v = env::var(name)?;`)
}
