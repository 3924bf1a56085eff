package expectation

import (
	"github.com/ibromley/great-expectations/internal/column"
	"github.com/ibromley/great-expectations/internal/stats"
)

// TypeDistinctValuesToContainSet is the expectation-type identifier for the
// distinct-values superset check.
const TypeDistinctValuesToContainSet = "distinct_values_to_contain_set"

// distinctContainSet checks that every member of value_set appears at least
// once among the column's non-null values. Containment, not equality: extra
// distinct values in the column are fine. A partial intersection is a plain
// failure, never partial credit.
//
// The observed value is always the full ascending-sorted distinct-value
// sequence, on success and failure alike, so a caller can see what was
// actually present.
type distinctContainSet struct{}

func (distinctContainSet) Type() string {
	return TypeDistinctValuesToContainSet
}

func (e distinctContainSet) Evaluate(ds *column.Dataset, in Params) (Result, error) {
	name, err := columnParam(e.Type(), in)
	if err != nil {
		return Result{}, err
	}
	col, ok := ds.Column(name)
	if !ok {
		return Result{}, newColumnNotFound(e.Type(), name)
	}

	set, err := valueSetParam(e.Type(), in)
	if err != nil {
		return Result{}, err
	}

	summary := stats.Describe(col)
	return Result{
		Success:  summary.ContainsAll(set),
		Observed: column.List(summary.SortedDistinct()),
	}, nil
}
