package expectation

import (
	"github.com/ibromley/great-expectations/internal/column"
	"github.com/ibromley/great-expectations/internal/stats"
)

// TypeProportionOfUniqueValuesToBeBetween is the expectation-type identifier
// for the unique-proportion bound check.
const TypeProportionOfUniqueValuesToBeBetween = "proportion_of_unique_values_to_be_between"

// uniqueProportionBetween checks that the fraction of distinct non-null
// values over non-null values falls inside the caller's bounds.
//
// The proportion's denominator is the non-null count, not the total count.
// A column with no non-null values has proportion 0.
type uniqueProportionBetween struct{}

func (uniqueProportionBetween) Type() string {
	return TypeProportionOfUniqueValuesToBeBetween
}

func (e uniqueProportionBetween) Evaluate(ds *column.Dataset, in Params) (Result, error) {
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

	// Both bounds unset is vacuously true; skip the scan entirely and
	// report no observed value.
	if unbounded(minVal, maxVal) {
		return Result{Success: true}, nil
	}

	observed := stats.Describe(col).UniqueProportion()
	return Result{
		Success:  between(observed, minVal, maxVal),
		Observed: column.Number(observed),
	}, nil
}
