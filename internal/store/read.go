package store

import (
	"context"
	"database/sql"
	"fmt"
)

// RunSummary is one row of the run listing.
type RunSummary struct {
	ID              string `json:"id"`
	Suite           string `json:"suite"`
	ExpectationType string `json:"expectation_type"`
	StartedAt       string `json:"started_at"`
	Passed          int    `json:"passed"`
	Failed          int    `json:"failed"`
}

// StoredResult is one recorded case outcome.
type StoredResult struct {
	Title    string `json:"title"`
	Status   string `json:"status"`
	Success  bool   `json:"success"`
	Observed string `json:"observed,omitempty"` // canonical JSON, empty when absent
}

// ListRuns returns all recorded runs, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, suite, expectation_type, started_at, passed, failed
		FROM validation_runs
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Suite, &r.ExpectationType, &r.StartedAt, &r.Passed, &r.Failed); err != nil {
			return nil, fmt.Errorf("list runs: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the recorded case outcomes for a run, in insertion order.
func (s *Store) Results(ctx context.Context, runID string) ([]StoredResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT title, status, success, observed
		FROM validation_results
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("results for run %s: %w", runID, err)
	}
	defer rows.Close()

	var results []StoredResult
	for rows.Next() {
		var r StoredResult
		var observed sql.NullString
		if err := rows.Scan(&r.Title, &r.Status, &r.Success, &observed); err != nil {
			return nil, fmt.Errorf("results for run %s: %w", runID, err)
		}
		if observed.Valid {
			r.Observed = observed.String
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
