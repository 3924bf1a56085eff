package harness

import (
	"fmt"
	"math"

	"github.com/ibromley/great-expectations/internal/column"
	"github.com/ibromley/great-expectations/internal/expectation"
)

// floatTolerance bounds float comparison between expected and observed
// numeric values. Proportions are exact rationals computed the same way on
// both sides, but fixture authors write decimal literals.
const floatTolerance = 1e-9

// matchExpected compares the actual result against a fixture's expected out
// block. When exact is false, only the keys present in out are checked
// (subset semantics); when true, the full record {success, observed_value}
// must agree, including observed_value's presence or absence.
// Returns human-readable mismatch descriptions, empty on match.
func matchExpected(out map[string]any, actual expectation.Result, exact bool) []string {
	var mismatches []string

	for key := range out {
		if key != "success" && key != "observed_value" {
			mismatches = append(mismatches, fmt.Sprintf("unknown expected-output field %q", key))
		}
	}

	expectedSuccess, hasSuccess := out["success"]
	if hasSuccess {
		want, ok := expectedSuccess.(bool)
		if !ok {
			mismatches = append(mismatches, fmt.Sprintf("expected success must be a boolean, got %T", expectedSuccess))
		} else if actual.Success != want {
			mismatches = append(mismatches, fmt.Sprintf("success: expected %v, got %v", want, actual.Success))
		}
	} else if exact {
		mismatches = append(mismatches, "exact match requires an expected success field")
	}

	expectedObserved, hasObserved := out["observed_value"]
	switch {
	case hasObserved:
		if !actual.HasObserved() {
			mismatches = append(mismatches, fmt.Sprintf("observed_value: expected %v, none reported", expectedObserved))
		} else if err := observedEqual(expectedObserved, actual.Observed); err != nil {
			mismatches = append(mismatches, fmt.Sprintf("observed_value: %v", err))
		}
	case exact && actual.HasObserved():
		mismatches = append(mismatches, fmt.Sprintf("observed_value: expected none, got %v", column.ToGo(actual.Observed)))
	}

	return mismatches
}

// observedEqual compares a fixture-authored expected value against an
// observed engine value. Sequences compare elementwise in order; fixtures
// author them in the same ascending-sorted order the engine reports.
func observedEqual(expected any, actual column.Value) error {
	if items, ok := expected.([]any); ok {
		list, ok := actual.(column.List)
		if !ok {
			return fmt.Errorf("expected a sequence, got %v", column.ToGo(actual))
		}
		if len(items) != len(list) {
			return fmt.Errorf("expected %d values, got %d (%v)", len(items), len(list), column.ToGo(actual))
		}
		for i, item := range items {
			if err := scalarEqual(item, list[i]); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return nil
	}
	return scalarEqual(expected, actual)
}

func scalarEqual(expected any, actual column.Value) error {
	want, err := column.FromGo(expected)
	if err != nil {
		return fmt.Errorf("unsupported expected value: %v", err)
	}
	if wn, ok := want.(column.Number); ok {
		an, ok := actual.(column.Number)
		if !ok {
			return fmt.Errorf("expected %v, got %v", expected, column.ToGo(actual))
		}
		if math.Abs(float64(wn)-float64(an)) > floatTolerance {
			return fmt.Errorf("expected %v, got %v", float64(wn), float64(an))
		}
		return nil
	}
	if want != actual {
		return fmt.Errorf("expected %v, got %v", expected, column.ToGo(actual))
	}
	return nil
}
