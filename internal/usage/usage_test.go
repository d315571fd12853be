package usage

import "testing"

func TestKeys(t *testing.T) {
	records := []Record{
		{Key: "API_KEY", File: "a.py", Line: 1, Kind: KindCall},
		{Key: "API_KEY", File: "b.py", Line: 2, Kind: KindSubscript},
		{Key: "DB_HOST", File: "a.py", Line: 3, Kind: KindCall},
	}
	keys := Keys(records)
	if len(keys) != 2 || !keys["API_KEY"] || !keys["DB_HOST"] {
		t.Errorf("unexpected key set: %v", keys)
	}
}

func TestCountFiles(t *testing.T) {
	records := []Record{
		{Key: "A_KEY", File: "a.py", Line: 1},
		{Key: "B_KEY", File: "a.py", Line: 2},
		{Key: "C_KEY", File: "b.py", Line: 1},
	}
	if got := CountFiles(records); got != 2 {
		t.Errorf("CountFiles = %d, want 2", got)
	}
	if got := CountFiles(nil); got != 0 {
		t.Errorf("CountFiles(nil) = %d, want 0", got)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindAttr, "attr"},
		{KindSubscript, "subscript"},
		{KindCall, "call"},
		{KindExpansion, "expansion"},
		{KindWorkflowSecret, "workflow-secret"},
		{KindWorkflowEnv, "workflow-env"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}
