// Package harness executes declarative fixture documents against the
// expectation engine.
//
// For each dataset block the harness materializes a dataset once, then feeds
// every test case's in-parameters to the registered evaluator and compares
// the actual result against the case's expected out block, honoring
// exact_match_out. The engine stays pure; all fixture I/O and comparison
// lives here.
//
// catch_exceptions is a harness-level directive: when a case sets it and the
// evaluator surfaces an error, the case is recorded as a non-fatal
// "could not evaluate" outcome instead of failing the run. Without it, a
// surfaced error fails the case.
package harness

import (
	"io"
	"log/slog"

	"github.com/ibromley/great-expectations/internal/column"
	"github.com/ibromley/great-expectations/internal/expectation"
	"github.com/ibromley/great-expectations/internal/fixture"
)

// Harness runs fixture documents against an expectation registry.
type Harness struct {
	registry *expectation.Registry
	logger   *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithRegistry overrides the default expectation registry.
func WithRegistry(r *expectation.Registry) Option {
	return func(h *Harness) {
		h.registry = r
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// New creates a harness with the built-in registry and a discarding logger.
func New(opts ...Option) *Harness {
	h := &Harness{
		registry: expectation.Default(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RunDocument executes every test case in a fixture document.
// Dataset materialization errors abort the run; evaluator errors are scoped
// to their case.
func (h *Harness) RunDocument(name string, doc *fixture.Document) (*SuiteResult, error) {
	result := &SuiteResult{
		Name:            name,
		ExpectationType: doc.ExpectationType,
		Cases:           []CaseResult{},
	}

	for _, dsf := range doc.Datasets {
		ds, err := column.DatasetFromRaw(dsf.Data)
		if err != nil {
			return nil, err
		}
		for _, tc := range dsf.Tests {
			result.add(h.runCase(doc.ExpectationType, ds, tc))
		}
	}

	h.logger.Info("suite finished",
		"suite", result.Name,
		"expectation_type", result.ExpectationType,
		"passed", result.Passed,
		"failed", result.Failed,
	)
	return result, nil
}

// runCase evaluates one test case and compares against its expected output.
func (h *Harness) runCase(typ string, ds *column.Dataset, tc fixture.TestCase) CaseResult {
	params := expectation.Params(tc.In)

	actual, err := h.registry.Evaluate(typ, ds, params)
	if err != nil {
		if params.CatchExceptions() {
			h.logger.Info("case caught evaluation error",
				"title", tc.Title,
				"error", err,
			)
			return CaseResult{
				Title:  tc.Title,
				Status: StatusCaught,
				Errors: []string{err.Error()},
			}
		}
		return CaseResult{
			Title:  tc.Title,
			Status: StatusError,
			Errors: []string{err.Error()},
		}
	}

	if mismatches := matchExpected(tc.Out, actual, tc.ExactMatchOut); len(mismatches) > 0 {
		return CaseResult{
			Title:  tc.Title,
			Status: StatusFail,
			Errors: mismatches,
			Actual: &actual,
		}
	}

	return CaseResult{
		Title:  tc.Title,
		Status: StatusPass,
		Actual: &actual,
	}
}
