package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ibromley/great-expectations/internal/store"
)

// RunsOptions holds flags for the runs command.
type RunsOptions struct {
	*RootOptions
	DBPath string
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded validation runs",
		Long: `List validation runs recorded by "gx test --db".

Runs are listed newest first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "SQLite database with recorded runs")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runRuns(opts *RunsOptions, cmd *cobra.Command) error {
	if _, err := os.Stat(opts.DBPath); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", opts.DBPath))
	}

	st, err := store.Open(opts.DBPath)
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("failed to open result store: %v", err))
	}
	defer st.Close()

	runs, err := st.ListRuns(cmd.Context())
	if err != nil {
		return NewExitError(ExitCommandError, fmt.Sprintf("failed to list runs: %v", err))
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Format == "json" {
		return formatter.JSON(runs, nil)
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return nil
	}
	for _, r := range runs {
		status := "✓"
		if r.Failed > 0 {
			status = "✗"
		}
		fmt.Fprintf(w, "%s %s  %s  %s  %d passed, %d failed\n",
			status, r.StartedAt, r.ID, r.Suite, r.Passed, r.Failed)
	}
	return nil
}
