package harness

import "github.com/ibromley/great-expectations/internal/expectation"

// Status classifies the outcome of one test case.
type Status string

const (
	// StatusPass means the actual result matched the expected output.
	StatusPass Status = "pass"

	// StatusFail means evaluation succeeded but the result did not match.
	StatusFail Status = "fail"

	// StatusError means the evaluator surfaced an error and the case did
	// not ask for it to be caught.
	StatusError Status = "error"

	// StatusCaught means the evaluator surfaced an error and the case set
	// catch_exceptions: the error is recorded as a non-fatal
	// could-not-evaluate outcome instead of failing the run.
	StatusCaught Status = "caught"
)

// CaseResult is the outcome of one fixture test case.
type CaseResult struct {
	Title  string   `json:"title"`
	Status Status   `json:"status"`
	Errors []string `json:"errors,omitempty"`

	// Actual is the engine's result, present when evaluation completed.
	Actual *expectation.Result `json:"actual,omitempty"`
}

// SuiteResult is the outcome of running every case in one fixture document.
type SuiteResult struct {
	// Name identifies the suite, normally the fixture file base name.
	Name string `json:"name"`

	// ExpectationType is the expectation type the document exercises.
	ExpectationType string `json:"expectation_type"`

	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

// Pass reports whether every case passed (caught cases count as non-fatal).
func (r *SuiteResult) Pass() bool {
	return r.Failed == 0
}

// add records one case outcome and updates the counters.
func (r *SuiteResult) add(c CaseResult) {
	r.Cases = append(r.Cases, c)
	switch c.Status {
	case StatusFail, StatusError:
		r.Failed++
	default:
		r.Passed++
	}
}
