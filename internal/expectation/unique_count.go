package expectation

import (
	"github.com/ibromley/great-expectations/internal/column"
	"github.com/ibromley/great-expectations/internal/stats"
)

// TypeUniqueValueCountToBeBetween is the expectation-type identifier for the
// distinct-count bound check.
const TypeUniqueValueCountToBeBetween = "unique_value_count_to_be_between"

// uniqueCountBetween checks that the number of distinct non-null values falls
// inside the caller's bounds. Same bound semantics as the proportion
// expectation: nil means unbounded, both nil is vacuous.
type uniqueCountBetween struct{}

func (uniqueCountBetween) Type() string {
	return TypeUniqueValueCountToBeBetween
}

func (e uniqueCountBetween) Evaluate(ds *column.Dataset, in Params) (Result, error) {
	name, err := columnParam(e.Type(), in)
	if err != nil {
		return Result{}, err
	}
	col, ok := ds.Column(name)
	if !ok {
		return Result{}, newColumnNotFound(e.Type(), name)
	}

	minVal, err := boundParam(e.Type(), in, "min_value")
	if err != nil {
		return Result{}, err
	}
	maxVal, err := boundParam(e.Type(), in, "max_value")
	if err != nil {
		return Result{}, err
	}
	if unbounded(minVal, maxVal) {
		return Result{Success: true}, nil
	}

	count := stats.Describe(col).UniqueValueCount()
	return Result{
		Success:  between(float64(count), minVal, maxVal),
		Observed: column.Number(count),
	}, nil
}
