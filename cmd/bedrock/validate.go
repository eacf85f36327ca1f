package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mason-hq/bedrock/pkg/cli"
	"mason-hq/bedrock/pkg/conf"
	conferrors "mason-hq/bedrock/pkg/conf/errors"
	"mason-hq/bedrock/pkg/conf/loader"
)

var validateFlags struct {
	file   string
	dir    string
	format string
	watch  bool
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate definition files",
	Long: `Validate build-definition files for syntax and structural errors.

The validate command loads definition files into the node tree and checks:
  - YAML syntax
  - structural rules (mapping top level, supported value types)
  - symbol-name rules for every mapping key

Examples:
  # Validate a single file
  bedrock validate --file elements/app.yaml

  # Validate a directory
  bedrock validate --dir elements/

  # Re-validate whenever files change
  bedrock validate --dir elements/ --watch

  # JSON output for CI/CD
  bedrock validate --dir elements/ --format json`,
	RunE: validateDefinitions,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "definition file to validate")
	validateCmd.Flags().StringVarP(&validateFlags.dir, "dir", "d", "", "directory of definition files")
	validateCmd.Flags().StringVar(&validateFlags.format, "format", "text", "output format: text, json")
	validateCmd.Flags().BoolVar(&validateFlags.watch, "watch", false, "re-validate when files change")
}

// ValidationResult represents the validation outcome for a single file.
type ValidationResult struct {
	File   string            `json:"file"`
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`

	// diags carries the full diagnostics for text rendering.
	diags []*conferrors.Error
}

// ValidationError represents a single located finding.
type ValidationError struct {
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Message  string `json:"message"`
	Category string `json:"category,omitempty"`
}

func validateDefinitions(cmd *cobra.Command, args []string) error {
	files, err := collectDefinitionFiles()
	if err != nil {
		return err
	}

	if err := runValidation(files); err != nil && !validateFlags.watch {
		return err
	}

	if !validateFlags.watch {
		return nil
	}

	// Watch mode: re-validate on change until interrupted.
	paths := []string{validateFlags.dir}
	if validateFlags.dir == "" {
		paths = []string{validateFlags.file}
	}
	w, err := loader.NewWatcher(&loader.WatcherConfig{Paths: paths}, nil)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx := cli.SetupSignalHandler()
	return w.Watch(ctx, func(changed []string) error {
		files, err := collectDefinitionFiles()
		if err != nil {
			return err
		}
		return runValidation(files)
	})
}

func collectDefinitionFiles() ([]string, error) {
	if validateFlags.file == "" && validateFlags.dir == "" {
		return nil, fmt.Errorf("either --file or --dir must be specified")
	}

	var files []string
	if validateFlags.file != "" {
		files = append(files, validateFlags.file)
	}
	if validateFlags.dir != "" {
		for _, pattern := range []string{"*.yaml", "*.yml"} {
			matches, err := filepath.Glob(filepath.Join(validateFlags.dir, pattern))
			if err != nil {
				return nil, fmt.Errorf("failed to list definition files: %w", err)
			}
			files = append(files, matches...)
		}
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no definition files found")
	}
	return files, nil
}

func runValidation(files []string) error {
	// One loader for the whole pass keeps file indices consistent.
	l := loader.NewLoader(nil)

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, validateDefinitionFile(l, file))
	}

	if validateFlags.format == "json" {
		if err := cli.NewFormatter(cli.FormatJSON).FormatTo(os.Stdout, results); err != nil {
			return err
		}
	} else {
		outputText(results)
	}

	for _, r := range results {
		if !r.Valid {
			return fmt.Errorf("validation failed")
		}
	}
	return nil
}

func validateDefinitionFile(l *loader.Loader, path string) ValidationResult {
	result := ValidationResult{File: path, Valid: true}

	tree, err := l.Load(path)
	if err != nil {
		result.recordFindings(err)
		return result
	}

	if err := conf.ValidateSymbols(tree); err != nil {
		result.recordFindings(err)
	}

	return result
}

// recordFindings flattens a diagnostic, a diagnostic list, or a plain error
// into located findings.
func (r *ValidationResult) recordFindings(err error) {
	r.Valid = false

	var list *conferrors.List
	if errors.As(err, &list) {
		for _, diag := range list.Errors {
			r.diags = append(r.diags, diag)
			r.Errors = append(r.Errors, toFinding(diag))
		}
		return
	}

	var diag *conferrors.Error
	if !errors.As(err, &diag) {
		diag = conferrors.Classify(err)
	}
	r.diags = append(r.diags, diag)
	r.Errors = append(r.Errors, toFinding(diag))
}

func toFinding(diag *conferrors.Error) ValidationError {
	return ValidationError{
		Line:     diag.Provenance.Line,
		Column:   diag.Provenance.Column,
		Message:  diag.Message,
		Category: string(diag.Category),
	}
}

func outputText(results []ValidationResult) {
	total := 0
	for _, result := range results {
		fmt.Printf("Validating %s...\n", result.File)
		if result.Valid {
			fmt.Println("  ok")
			continue
		}
		for _, diag := range result.diags {
			cli.PrintDiagnostic(os.Stdout, conferrors.WithContext(diag, 2))
			total++
		}
	}
	if total > 0 {
		fmt.Printf("\n%d error(s) found\n", total)
	}
}
