package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ibromley/great-expectations/internal/fixture"
)

// FileValidation holds the validation outcome for one fixture file.
type FileValidation struct {
	Path   string   `json:"path"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ValidationReport holds the overall validation result.
type ValidationReport struct {
	Files   []FileValidation `json:"files"`
	Valid   int              `json:"valid"`
	Invalid int              `json:"invalid"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <fixture-file-or-dir>...",
		Short: "Validate fixture documents without running them",
		Long: `Validate expectation fixture documents against the fixture schema.

Performs strict decoding and CUE schema validation without evaluating any
expectation. Faster than test for authoring feedback.

Exit codes:
  0 - All documents valid
  1 - One or more documents invalid
  2 - Command error (path not found, etc.)`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	files, err := collectFixtureFiles(paths)
	if err != nil {
		return err
	}
	formatter.VerboseLog("Validating %d fixture file(s)", len(files))

	report := ValidationReport{Files: make([]FileValidation, 0, len(files))}
	for _, path := range files {
		fv := FileValidation{Path: path, Valid: true}
		if _, err := fixture.Load(path); err != nil {
			fv.Valid = false
			fv.Errors = []string{err.Error()}
			report.Invalid++
		} else {
			report.Valid++
		}
		report.Files = append(report.Files, fv)
	}

	if opts.Format == "json" {
		var cliErr *CLIError
		if report.Invalid > 0 {
			cliErr = &CLIError{
				Code:    ErrCodeInvalid,
				Message: fmt.Sprintf("%d fixture file(s) invalid", report.Invalid),
			}
		}
		if err := formatter.JSON(report, cliErr); err != nil {
			return err
		}
		if report.Invalid > 0 {
			return NewExitError(ExitFailure, fmt.Sprintf("%d fixture file(s) invalid", report.Invalid))
		}
		return nil
	}

	w := cmd.OutOrStdout()
	for _, fv := range report.Files {
		if fv.Valid {
			fmt.Fprintf(w, "✓ %s\n", fv.Path)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", fv.Path)
		for _, e := range fv.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}
	if report.Invalid > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d fixture file(s) invalid", report.Invalid))
	}
	fmt.Fprintf(w, "%d fixture file(s) valid\n", report.Valid)
	return nil
}

// collectFixtureFiles expands the argument list: directories are walked for
// fixture files, plain files are taken as-is.
func collectFixtureFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if os.IsNotExist(err) {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("path not found: %s", path))
		}
		if err != nil {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("error accessing %s: %v", path, err))
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := fixture.FindFiles(path, "")
		if err != nil {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("error scanning %s: %v", path, err))
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("no fixture files found in %s", filepath.Join(paths...)))
	}
	return files, nil
}
