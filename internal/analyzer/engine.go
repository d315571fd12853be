package analyzer

import (
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jenian/envdrift/internal/envfile"
	"github.com/jenian/envdrift/internal/scanner"
	"github.com/jenian/envdrift/internal/usage"
	"github.com/jenian/envdrift/internal/workflow"
)

// scanWorkers bounds the file-scan fan-out. Each file's scan is independent,
// so results are identical to a sequential walk once sorted.
const scanWorkers = 10

// Options configures a scan
type Options struct {
	EnvFile          string   // Explicit declaration file; auto-located when empty
	Extensions       []string // Extension allow-list; empty means the full registry
	ExcludeDirs      []string // Extra directory names to exclude
	IncludeWorkflows bool     // Also scan .github/workflows
	ComposeFiles     []string // docker-compose files to fold into the declared set
	K8sFiles         []string // Kubernetes manifests to fold into the declared set
	SuppressNames    []string // Extra names suppressed from the missing report
	ScanComments     bool     // Scan commented-out lines too (off by default)
	RequireAssign    bool     // Reject bare-identifier declaration lines
}

// Engine wires the walker, the workflow scanner, the declaration parser and
// the reconciler into one scan invocation.
type Engine struct {
	opts       Options
	scanner    *scanner.Scanner
	parser     *envfile.Parser
	suppressed map[string]bool
}

// New creates an engine for the given options.
func New(opts Options) *Engine {
	s := scanner.New()
	s.SetAllowedExtensions(opts.Extensions)
	s.AddExcludeDirs(opts.ExcludeDirs)
	s.SetSkipComments(!opts.ScanComments)

	p := envfile.NewParser()
	p.AllowBare = !opts.RequireAssign

	suppressed := make(map[string]bool, len(DefaultSuppressed)+len(opts.SuppressNames))
	for k := range DefaultSuppressed {
		suppressed[k] = true
	}
	for _, name := range opts.SuppressNames {
		if name != "" {
			suppressed[name] = true
		}
	}

	return &Engine{
		opts:       opts,
		scanner:    s,
		parser:     p,
		suppressed: suppressed,
	}
}

// Files returns the files the walker selects under root, for reporting.
func (e *Engine) Files(root string) []scanner.FileInfo {
	return e.scanner.Discover(root)
}

// Run scans root and reconciles the findings against the declaration file.
// Not-found conditions (missing root, missing env file, missing workflows
// directory) degrade to empty sets; partial results are always preferable to
// total failure for a drift check.
func (e *Engine) Run(root string) *Result {
	records := e.scanRecords(root)

	if e.opts.IncludeWorkflows {
		records = append(records, workflow.ScanRepo(root)...)
	}

	envPath := e.opts.EnvFile
	if envPath == "" {
		envPath, _ = envfile.Locate(root)
	}

	declared := make(map[string]bool)
	if envPath != "" {
		declared = e.parser.Parse(envPath)
	}
	for _, path := range e.opts.ComposeFiles {
		declared = envfile.Merge(declared, envfile.ParseCompose(path))
	}
	for _, path := range e.opts.K8sFiles {
		declared = envfile.Merge(declared, envfile.ParseK8s(path))
	}

	codeVars := usage.Keys(records)

	return &Result{
		Usages:       records,
		CodeVars:     codeVars,
		Declared:     declared,
		Missing:      FindMissing(codeVars, declared, e.suppressed),
		Orphaned:     FindOrphaned(codeVars, declared),
		FilesScanned: usage.CountFiles(records),
		EnvFile:      envPath,
	}
}

// scanRecords fans file scans out over a bounded worker group. Aggregation is
// append-only under a mutex; the final sort restores the deterministic
// (file, line) order a sequential walk would produce.
func (e *Engine) scanRecords(root string) []usage.Record {
	files := e.scanner.Discover(root)
	if len(files) == 0 {
		return nil
	}

	var mu sync.Mutex
	var records []usage.Record

	var g errgroup.Group
	g.SetLimit(scanWorkers)
	for _, f := range files {
		f := f
		g.Go(func() error {
			found := e.scanner.ScanFile(f.Path)
			if len(found) == 0 {
				return nil
			}
			mu.Lock()
			records = append(records, found...)
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].File != records[j].File {
			return records[i].File < records[j].File
		}
		return records[i].Line < records[j].Line
	})
	return records
}
