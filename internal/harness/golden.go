package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ibromley/great-expectations/internal/column"
	"github.com/ibromley/great-expectations/internal/fixture"
)

// Snapshot converts a suite result into the plain map form used for
// canonical serialization and golden comparison.
func Snapshot(result *SuiteResult) map[string]any {
	cases := make([]any, len(result.Cases))
	for i, c := range result.Cases {
		caseMap := map[string]any{
			"title":  c.Title,
			"status": string(c.Status),
		}
		if len(c.Errors) > 0 {
			errs := make([]any, len(c.Errors))
			for j, e := range c.Errors {
				errs[j] = e
			}
			caseMap["errors"] = errs
		}
		if c.Actual != nil {
			actualMap := map[string]any{"success": c.Actual.Success}
			if c.Actual.HasObserved() {
				actualMap["observed_value"] = column.ToGo(c.Actual.Observed)
			}
			caseMap["actual"] = actualMap
		}
		cases[i] = caseMap
	}

	return map[string]any{
		"name":             result.Name,
		"expectation_type": result.ExpectationType,
		"cases":            cases,
		"passed":           result.Passed,
		"failed":           result.Failed,
	}
}

// AssertGolden compares a suite result against its golden file under
// testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, result *SuiteResult) {
	t.Helper()

	data, err := fixture.MarshalCanonical(Snapshot(result))
	if err != nil {
		t.Fatalf("marshal suite snapshot: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, result.Name, data)
}
