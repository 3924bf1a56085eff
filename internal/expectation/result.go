package expectation

import (
	"encoding/json"

	"github.com/ibromley/great-expectations/internal/column"
)

// Result is the structured outcome of one evaluation.
type Result struct {
	// Success is the pass/fail verdict.
	Success bool `json:"success"`

	// Observed is the observed value: a scalar (e.g. a proportion) or a
	// column.List (e.g. sorted distinct values). nil means absent - the
	// evaluation was vacuous and skipped computing it.
	Observed column.Value `json:"-"`
}

// HasObserved reports whether an observed value was computed.
func (r Result) HasObserved() bool {
	return r.Observed != nil
}

// MarshalJSON implements json.Marshaler. The observed value is emitted under
// the observed_value key only when present.
func (r Result) MarshalJSON() ([]byte, error) {
	out := map[string]any{"success": r.Success}
	if r.Observed != nil {
		out["observed_value"] = column.ToGo(r.Observed)
	}
	return json.Marshal(out)
}
