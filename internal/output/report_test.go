package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jenian/envdrift/internal/analyzer"
	"github.com/jenian/envdrift/internal/usage"
)

func sampleResult(root string) *analyzer.Result {
	return &analyzer.Result{
		Usages: []usage.Record{
			{Key: "TIMEOUT", File: root + "/src/app.py", Line: 3, Kind: usage.KindCall},
			{Key: "TIMEOUT", File: root + "/src/worker.py", Line: 9, Kind: usage.KindCall},
			{Key: "API_KEY", File: root + "/src/app.py", Line: 1, Kind: usage.KindCall},
		},
		CodeVars:     map[string]bool{"TIMEOUT": true, "API_KEY": true},
		Declared:     map[string]bool{"API_KEY": true, "OLD_SECRET": true},
		Missing:      map[string]bool{"TIMEOUT": true},
		Orphaned:     map[string]bool{"OLD_SECRET": true},
		FilesScanned: 2,
		EnvFile:      root + "/.env.example",
	}
}

func TestRenderReport(t *testing.T) {
	root := "/repo"
	report := renderReport(sampleResult(root), root)

	assert.Contains(t, report, "# envdrift Report")
	assert.Contains(t, report, "**Files scanned:** 2")
	assert.Contains(t, report, "## Missing (1)")
	assert.Contains(t, report, "| `TIMEOUT` | `src/app.py:3`, `src/worker.py:9` |")
	assert.Contains(t, report, "## Orphaned (1)")
	assert.Contains(t, report, "| `OLD_SECRET` | declared but never used in code |")
}

func TestRenderReport_AllClear(t *testing.T) {
	result := &analyzer.Result{
		CodeVars: map[string]bool{"API_KEY": true},
		Declared: map[string]bool{"API_KEY": true},
		Missing:  map[string]bool{},
		Orphaned: map[string]bool{},
		EnvFile:  "/repo/.env.example",
	}
	report := renderReport(result, "/repo")
	assert.Contains(t, report, "All clear! No issues found.")
	assert.NotContains(t, report, "## Missing")
}

func TestLocations_CapAndOverflow(t *testing.T) {
	result := &analyzer.Result{}
	for i := 1; i <= 5; i++ {
		result.Usages = append(result.Usages, usage.Record{
			Key: "BUSY_KEY", File: "/repo/app.py", Line: i, Kind: usage.KindCall,
		})
	}

	locs, more := locations(result, "/repo", "BUSY_KEY")
	assert.Len(t, locs, 3)
	assert.Equal(t, 2, more)
	assert.Equal(t, "app.py:1", locs[0])
}

func TestCIOnly(t *testing.T) {
	result := &analyzer.Result{
		Usages: []usage.Record{
			{Key: "DEPLOY_TOKEN", File: "ci.yml", Line: 1, Kind: usage.KindWorkflowSecret},
			{Key: "API_KEY", File: "app.py", Line: 1, Kind: usage.KindCall},
			{Key: "API_KEY", File: "ci.yml", Line: 2, Kind: usage.KindWorkflowEnv},
		},
	}
	assert.True(t, ciOnly(result, "DEPLOY_TOKEN"))
	assert.False(t, ciOnly(result, "API_KEY"))
	assert.False(t, ciOnly(result, "NEVER_SEEN"))
}

func TestRelPath(t *testing.T) {
	assert.Equal(t, "src/app.py", relPath("/repo", "/repo/src/app.py"))
	// Paths outside the root are shown as-is.
	assert.True(t, strings.HasPrefix(relPath("/repo", "/other/app.py"), "/other"))
}
