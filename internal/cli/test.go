package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ibromley/great-expectations/internal/fixture"
	"github.com/ibromley/great-expectations/internal/harness"
	"github.com/ibromley/great-expectations/internal/store"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // fixture filter (glob pattern)
	DBPath string // optional result store
}

// SuiteSummary holds the result of a single fixture suite.
type SuiteSummary struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Passed int      `json:"passed"`
	Failed int      `json:"failed"`
	RunID  string   `json:"run_id,omitempty"`
	Errors []string `json:"errors,omitempty"`
}

// TestReport holds the overall test result.
type TestReport struct {
	Suites []SuiteSummary `json:"suites"`
	Passed int            `json:"passed"`
	Failed int            `json:"failed"`
	Total  int            `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <fixtures-dir>",
		Short: "Run fixture suites through the expectation engine",
		Long: `Run every fixture document in a directory through the harness.

Each document's test cases are evaluated against its datasets and compared
with their expected outputs, honoring exact_match_out and catch_exceptions.

Exit codes:
  0 - All suites passed
  1 - One or more suites failed
  2 - Command error (invalid paths, etc.)

Examples:
  gx test ./fixtures
  gx test ./fixtures --filter "distinct-*"
  gx test ./fixtures --format json
  gx test ./fixtures --db results.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter fixtures by glob pattern")
	cmd.Flags().StringVar(&opts.DBPath, "db", "", "record results to this SQLite database")

	return cmd
}

func runTests(opts *TestOptions, fixturesDir string, cmd *cobra.Command) error {
	if _, err := os.Stat(fixturesDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("fixtures directory not found: %s", fixturesDir))
	}

	files, err := fixture.FindFiles(fixturesDir, opts.Filter)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("failed to find fixtures: %v", err))
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if len(files) == 0 {
		if opts.Format == "json" {
			return formatter.JSON(TestReport{Suites: []SuiteSummary{}}, nil)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No fixtures found.")
		return nil
	}

	var st *store.Store
	if opts.DBPath != "" {
		st, err = store.Open(opts.DBPath)
		if err != nil {
			return NewExitError(ExitCommandError, fmt.Sprintf("failed to open result store: %v", err))
		}
		defer st.Close()
	}

	h := harness.New(harnessOptions(opts)...)

	report := TestReport{
		Suites: make([]SuiteSummary, 0, len(files)),
		Total:  len(files),
	}
	for _, file := range files {
		summary := runSuite(cmd, opts, h, st, file)
		report.Suites = append(report.Suites, summary)
		if summary.Pass {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	if opts.Format == "json" {
		var cliErr *CLIError
		if report.Failed > 0 {
			cliErr = &CLIError{
				Code:    ErrCodeSuitesFailed,
				Message: fmt.Sprintf("%d suite(s) failed", report.Failed),
			}
		}
		if err := formatter.JSON(report, cliErr); err != nil {
			return err
		}
		if report.Failed > 0 {
			return NewExitError(ExitFailure, fmt.Sprintf("%d suite(s) failed", report.Failed))
		}
		return nil
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Suite Summary: %d passed, %d failed, %d total\n", report.Passed, report.Failed, report.Total)
	if report.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d suite(s) failed", report.Failed))
	}
	fmt.Fprintln(w, "✓ All suites passed")
	return nil
}

// harnessOptions builds harness options from flags: verbose mode routes the
// harness log to stderr instead of discarding it.
func harnessOptions(opts *TestOptions) []harness.Option {
	if !opts.Verbose {
		return nil
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return []harness.Option{harness.WithLogger(logger)}
}

// runSuite loads and executes a single fixture document.
func runSuite(cmd *cobra.Command, opts *TestOptions, h *harness.Harness, st *store.Store, file string) SuiteSummary {
	w := cmd.OutOrStdout()
	name := suiteName(file)

	doc, err := fixture.Load(file)
	if err != nil {
		if opts.Format != "json" {
			fmt.Fprintf(w, "✗ %s\n", name)
			fmt.Fprintf(w, "  Load error: %v\n", err)
		}
		return SuiteSummary{
			Name:   name,
			Pass:   false,
			Errors: []string{fmt.Sprintf("failed to load fixture: %v", err)},
		}
	}

	result, err := h.RunDocument(name, doc)
	if err != nil {
		if opts.Format != "json" {
			fmt.Fprintf(w, "✗ %s\n", name)
			fmt.Fprintf(w, "  Execution error: %v\n", err)
		}
		return SuiteSummary{
			Name:   name,
			Pass:   false,
			Errors: []string{fmt.Sprintf("execution failed: %v", err)},
		}
	}

	summary := SuiteSummary{
		Name:   name,
		Pass:   result.Pass(),
		Passed: result.Passed,
		Failed: result.Failed,
	}
	for _, c := range result.Cases {
		for _, e := range c.Errors {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %s", c.Title, e))
		}
	}

	if st != nil {
		runID, err := st.RecordRun(cmd.Context(), result)
		if err != nil {
			summary.Pass = false
			summary.Errors = append(summary.Errors, fmt.Sprintf("failed to record run: %v", err))
		} else {
			summary.RunID = runID
		}
	}

	if opts.Format != "json" {
		if summary.Pass {
			fmt.Fprintf(w, "✓ %s (%d case(s))\n", name, result.Passed)
		} else {
			fmt.Fprintf(w, "✗ %s\n", name)
			for _, e := range summary.Errors {
				fmt.Fprintf(w, "  %s\n", e)
			}
		}
	}
	return summary
}

// suiteName derives the suite name from the fixture file path.
func suiteName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
