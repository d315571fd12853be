package languages

import (
	"testing"
)

// matchKeys applies every rule for a language to one line and returns the
// captured names, in rule order.
func matchKeys(t *testing.T, lang Language, line string) []string {
	t.Helper()
	var keys []string
	for _, rule := range Rules(lang) {
		for _, m := range rule.Pattern.FindAllStringSubmatch(line, -1) {
			keys = append(keys, m[1])
		}
	}
	return keys
}

func assertKeys(t *testing.T, lang Language, line string, want ...string) {
	t.Helper()
	got := matchKeys(t, lang, line)
	if len(got) != len(want) {
		t.Fatalf("line %q: expected keys %v, got %v", line, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %q: expected key %q at %d, got %q", line, want[i], i, got[i])
		}
	}
}

func TestForExtension(t *testing.T) {
	tests := []struct {
		ext      string
		expected Language
	}{
		{".js", LanguageJavaScript},
		{".jsx", LanguageJavaScript},
		{".mjs", LanguageJavaScript},
		{".ts", LanguageTypeScript},
		{".tsx", LanguageTypeScript},
		{".go", LanguageGo},
		{".py", LanguagePython},
		{".rb", LanguageRuby},
		{".rs", LanguageRust},
		{".java", LanguageJava},
		{".php", LanguagePHP},
		{".sh", LanguageShell},
		{".PY", LanguagePython}, // case-insensitive
		{".txt", LanguageUnknown},
		{"", LanguageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			if got := ForExtension(tt.ext); got != tt.expected {
				t.Errorf("ForExtension(%q) = %v, want %v", tt.ext, got, tt.expected)
			}
		})
	}
}

func TestForPath(t *testing.T) {
	if got := ForPath("src/App.TSX"); got != LanguageTypeScript {
		t.Errorf("ForPath(src/App.TSX) = %v, want typescript", got)
	}
	if got := ForPath("Makefile"); got != LanguageUnknown {
		t.Errorf("ForPath(Makefile) = %v, want unknown", got)
	}
}

func TestRules_UnknownLanguage(t *testing.T) {
	if rules := Rules(LanguageUnknown); rules != nil {
		t.Errorf("expected nil rules for unknown language, got %d", len(rules))
	}
}

func TestCommentMarkers(t *testing.T) {
	tests := []struct {
		lang     Language
		expected []string
	}{
		{LanguagePython, []string{"#"}},
		{LanguageGo, []string{"//"}},
		{LanguagePHP, []string{"//", "#"}},
	}

	for _, tt := range tests {
		got := CommentMarkers(tt.lang)
		if len(got) != len(tt.expected) {
			t.Fatalf("%s: expected %v, got %v", tt.lang, tt.expected, got)
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("%s: expected marker %q, got %q", tt.lang, tt.expected[i], got[i])
			}
		}
	}
}

func TestExtensions_SortedAndComplete(t *testing.T) {
	exts := Extensions()
	if len(exts) != len(byExtension) {
		t.Fatalf("expected %d extensions, got %d", len(byExtension), len(exts))
	}
	for i := 1; i < len(exts); i++ {
		if exts[i-1] >= exts[i] {
			t.Errorf("extensions not sorted: %q before %q", exts[i-1], exts[i])
		}
	}
}

func TestIsNoise(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"API_KEY", false},
		{"DB", false},
		{"X1", false},
		{"A", true},   // too short
		{"", true},    // empty
		{"12345", true}, // digits only
		{"1A", false},
	}

	for _, tt := range tests {
		if got := IsNoise(tt.name); got != tt.expected {
			t.Errorf("IsNoise(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}
