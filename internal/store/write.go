package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ibromley/great-expectations/internal/column"
	"github.com/ibromley/great-expectations/internal/fixture"
	"github.com/ibromley/great-expectations/internal/harness"
)

// RecordRun persists a suite result and its per-case outcomes in one
// transaction. Returns the new run's UUIDv7 identifier; time-sortable IDs
// keep run listings in chronological order without an extra index.
func (s *Store) RecordRun(ctx context.Context, result *harness.SuiteResult) (string, error) {
	runID := uuid.Must(uuid.NewV7()).String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO validation_runs (id, suite, expectation_type, started_at, passed, failed)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		runID,
		result.Name,
		result.ExpectationType,
		time.Now().UTC().Format(time.RFC3339),
		result.Passed,
		result.Failed,
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}

	for _, c := range result.Cases {
		var success bool
		var observed any // NULL when no observed value was computed
		if c.Actual != nil {
			success = c.Actual.Success
			if c.Actual.HasObserved() {
				data, err := fixture.MarshalCanonical(column.ToGo(c.Actual.Observed))
				if err != nil {
					return "", fmt.Errorf("record run: serialize observed value for %q: %w", c.Title, err)
				}
				observed = string(data)
			}
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO validation_results (run_id, title, status, success, observed)
			VALUES (?, ?, ?, ?, ?)
		`,
			runID,
			c.Title,
			string(c.Status),
			success,
			observed,
		)
		if err != nil {
			return "", fmt.Errorf("record run: case %q: %w", c.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return runID, nil
}
