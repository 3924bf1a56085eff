// Package expectation is the evaluation core of the engine: a registry of
// expectation types, their evaluators, and the bound/containment comparator.
//
// An expectation is a named, parameterized assertion about a dataset column.
// Evaluating one resolves the column, computes a derived statistic under the
// null-exclusion policy in package stats, compares it against the caller's
// bounds or set criteria, and returns a pass/fail verdict plus the observed
// value.
//
// Evaluation is a pure, synchronous computation over immutable inputs: the
// same dataset and parameters always yield the same result, nothing blocks
// on I/O, and no shared state is mutated. The only shared structure is the
// registry, which is populated before first use and read-only afterwards, so
// callers may evaluate concurrently without locking.
//
// Parameter maps are validated against a per-type JSON Schema at dispatch
// time before an evaluator sees them; malformed parameters surface as
// INVALID_PARAMETER errors. Bound parameters treat null as "no constraint",
// never as an error.
package expectation
