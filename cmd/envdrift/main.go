package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jenian/envdrift/internal/analyzer"
	"github.com/jenian/envdrift/internal/config"
	"github.com/jenian/envdrift/internal/output"
	"github.com/jenian/envdrift/internal/scanner"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	rootCmd = &cobra.Command{
		Use:   "envdrift",
		Short: "Detect drift between env vars used in code and documented in .env files",
		Long:  "A CLI tool that scans codebases for environment variable references and compares them with an example env file.",
	}

	scanCmd = &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a codebase for environment variable drift",
		Long:  "Recursively scan a directory for environment variable references and reconcile them with the declaration file.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScan,
	}

	initConfigCmd = &cobra.Command{
		Use:   "init-config",
		Short: "Create a " + config.FileName + " file in the current directory",
		Long:  "Creates a " + config.FileName + " file with default configuration in the current directory.",
		RunE:  runInitConfig,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	}

	// Flags
	envFile      string
	jsonOutput   bool
	silent       bool
	strict       bool
	skipOrphaned bool
	noHeader     bool
	ciScan       bool
	extensions   []string
	composeFiles []string
	k8sFiles     []string
	reportPath   string
)

func init() {
	scanCmd.Flags().StringVarP(&envFile, "env-file", "e", "", "Declaration file to reconcile against (auto-detected if not specified)")
	scanCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	scanCmd.Flags().BoolVar(&silent, "silent", false, "Silent mode (exit code only)")
	scanCmd.Flags().BoolVar(&strict, "strict", false, "Exit with code 1 if any issues are found")
	scanCmd.Flags().BoolVar(&skipOrphaned, "skip-orphaned", false, "Skip reporting orphaned declarations")
	scanCmd.Flags().BoolVar(&noHeader, "no-header", false, "Skip printing the header")
	scanCmd.Flags().BoolVar(&ciScan, "ci", false, "Also scan .github/workflows for secrets and env references")
	scanCmd.Flags().StringSliceVar(&extensions, "ext", []string{}, "Extension allow-list (e.g. .py,.go)")
	scanCmd.Flags().StringSliceVar(&composeFiles, "compose", []string{}, "docker-compose files to fold into the declared set")
	scanCmd.Flags().StringSliceVar(&k8sFiles, "k8s", []string{}, "Kubernetes ConfigMap/Secret manifests to fold into the declared set")
	scanCmd.Flags().StringVarP(&reportPath, "output", "o", "", "Save a Markdown report to file")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(initConfigCmd)
	rootCmd.AddCommand(versionCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", absPath)
	}

	if !noHeader && !jsonOutput && !silent {
		printHeader()
	}

	cfg, err := config.Load(absPath)
	if err != nil {
		if !silent {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		cfg = &config.Config{}
	}

	engine := analyzer.New(analyzer.Options{
		EnvFile:          envFile,
		Extensions:       extensions,
		ExcludeDirs:      cfg.Ignores.Folders,
		IncludeWorkflows: ciScan,
		ComposeFiles:     composeFiles,
		K8sFiles:         k8sFiles,
		SuppressNames:    cfg.Ignores.Missing,
		ScanComments:     !cfg.SkipComments(),
		RequireAssign:    !cfg.BareDeclarations(),
	})

	if !silent && !jsonOutput {
		fmt.Fprintf(os.Stderr, "Scanning %s...\n", absPath)
		fmt.Fprintf(os.Stderr, "%s\n", reportFileCounts(engine.Files(absPath)))
	}

	result := engine.Run(absPath)

	if !silent && !jsonOutput {
		if result.EnvFile != "" {
			fmt.Fprintf(os.Stderr, "Env file: %s (%d variables)\n\n", result.EnvFile, len(result.Declared))
		} else {
			fmt.Fprintf(os.Stderr, "Warning: no declaration file found\n\n")
		}
	}

	if err := output.Format(result, absPath, jsonOutput, silent, skipOrphaned); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if reportPath != "" {
		if err := output.WriteReport(reportPath, result, absPath); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if !silent && !jsonOutput {
			fmt.Fprintf(os.Stderr, "Report saved to %s\n", reportPath)
		}
	}

	if (strict || silent) && result.HasIssues(skipOrphaned) {
		os.Exit(1)
	}
	return nil
}

// reportFileCounts generates a formatted report string of file counts by language
func reportFileCounts(files []scanner.FileInfo) string {
	langCounts := make(map[string]int)
	for _, file := range files {
		langCounts[string(file.Language)]++
	}

	var parts []string
	langOrder := []string{"javascript", "typescript", "go", "python", "ruby", "rust", "java", "php", "shell"}
	for _, lang := range langOrder {
		if count := langCounts[lang]; count > 0 {
			shortName := lang
			switch lang {
			case "javascript":
				shortName = "js"
			case "typescript":
				shortName = "ts"
			}
			parts = append(parts, fmt.Sprintf("%s: %d", shortName, count))
			delete(langCounts, lang)
		}
	}
	for lang, count := range langCounts {
		if count > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", lang, count))
		}
	}

	if len(parts) > 0 {
		return fmt.Sprintf("Found %d files (%s)", len(files), joinParts(parts))
	}
	return fmt.Sprintf("Found %d files to scan", len(files))
}

func joinParts(parts []string) string {
	out := ""
	for i, part := range parts {
		if i > 0 {
			out += ", "
		}
		out += part
	}
	return out
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(config.FileName); err == nil {
		return fmt.Errorf("%s already exists in the current directory", config.FileName)
	}

	configContent := `# ` + config.FileName + `
# Configuration file for envdrift

ignores:
  # Variables configured outside the declaration file (never reported missing)
  missing:
    # - CUSTOM_API_KEY
    # - EXTERNAL_SERVICE_TOKEN

  # Directory names to skip when scanning
  folders:
    # - config
    # - deployments

policy:
  # Skip lines whose stripped content starts with a comment marker
  skip_comments: true
  # Accept a declaration line that is just NAME with no '='
  bare_declarations: true
`

	if err := os.WriteFile(config.FileName, []byte(configContent), 0644); err != nil {
		return fmt.Errorf("failed to create %s: %w", config.FileName, err)
	}

	fmt.Printf("Created %s in the current directory\n", config.FileName)
	return nil
}

func printHeader() {
	fmt.Println("envdrift: detect environment variable drift")
	fmt.Printf("Version: %s\n\n", Version)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
