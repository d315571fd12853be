package workflow

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jenian/envdrift/internal/languages"
	"github.com/jenian/envdrift/internal/usage"
)

// Workflow files are scanned as raw lines, not parsed as YAML. The two
// templating forms below are all we look for; structural validity of the
// document is not our concern.
var (
	secretRef = regexp.MustCompile(`\$\{\{\s*secrets\.([A-Za-z0-9_]+)\s*\}\}`)
	envRef    = regexp.MustCompile(`\$\{\{\s*env\.([A-Za-z0-9_]+)\s*\}\}`)
)

// ScanRepo locates CI workflow files under .github/workflows and returns
// records for every secret and env reference. A missing workflows directory
// yields an empty result.
func ScanRepo(root string) []usage.Record {
	dir := filepath.Join(root, ".github", "workflows")
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var records []usage.Record
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yml" && ext != ".yaml" {
			continue
		}
		records = append(records, ScanFile(filepath.Join(dir, entry.Name()))...)
	}
	return records
}

// ScanFile scans a single workflow file. Secret names keep their source
// casing convention (uppercased like everything else); env names may be
// mixed-case in source and are normalized.
func ScanFile(path string) []usage.Record {
	file, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var records []usage.Record
	reader := bufio.NewScanner(file)
	reader.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for reader.Scan() {
		lineNum++
		line := reader.Text()

		for _, m := range secretRef.FindAllStringSubmatch(line, -1) {
			key := strings.ToUpper(m[1])
			if languages.IsNoise(key) {
				continue
			}
			records = append(records, usage.Record{
				Key:  key,
				File: path,
				Line: lineNum,
				Kind: usage.KindWorkflowSecret,
			})
		}
		for _, m := range envRef.FindAllStringSubmatch(line, -1) {
			key := strings.ToUpper(m[1])
			if languages.IsNoise(key) {
				continue
			}
			records = append(records, usage.Record{
				Key:  key,
				File: path,
				Line: lineNum,
				Kind: usage.KindWorkflowEnv,
			})
		}
	}
	return records
}

// SecretNames projects a record sequence onto the set of unique secret names,
// filtering to the workflow-secret kind only. A secret consumed by a workflow
// is an environment dependency of the system just like a variable read by
// application code.
func SecretNames(records []usage.Record) map[string]bool {
	names := make(map[string]bool)
	for _, r := range records {
		if r.Kind == usage.KindWorkflowSecret {
			names[r.Key] = true
		}
	}
	return names
}
