package expectation

import (
	"github.com/ibromley/great-expectations/internal/column"
	"github.com/ibromley/great-expectations/internal/stats"
)

// TypeDistinctValuesToBeInSet is the expectation-type identifier for the
// distinct-values subset check.
const TypeDistinctValuesToBeInSet = "distinct_values_to_be_in_set"

// TypeDistinctValuesToEqualSet is the expectation-type identifier for the
// distinct-values set-equality check.
const TypeDistinctValuesToEqualSet = "distinct_values_to_equal_set"

// distinctInSet checks that every distinct non-null column value is a member
// of value_set - the mirror image of distinctContainSet.
type distinctInSet struct{}

func (distinctInSet) Type() string {
	return TypeDistinctValuesToBeInSet
}

func (e distinctInSet) Evaluate(ds *column.Dataset, in Params) (Result, error) {
	summary, set, err := describeWithSet(e.Type(), ds, in)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Success:  summary.SubsetOf(set),
		Observed: column.List(summary.SortedDistinct()),
	}, nil
}

// distinctEqualSet checks that the distinct non-null values and value_set
// contain exactly the same members.
type distinctEqualSet struct{}

func (distinctEqualSet) Type() string {
	return TypeDistinctValuesToEqualSet
}

func (e distinctEqualSet) Evaluate(ds *column.Dataset, in Params) (Result, error) {
	summary, set, err := describeWithSet(e.Type(), ds, in)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Success:  summary.EqualsSet(set),
		Observed: column.List(summary.SortedDistinct()),
	}, nil
}

// describeWithSet resolves the column and value_set parameters shared by the
// set-membership evaluators.
func describeWithSet(typ string, ds *column.Dataset, in Params) (stats.Summary, []column.Value, error) {
	name, err := columnParam(typ, in)
	if err != nil {
		return stats.Summary{}, nil, err
	}
	col, ok := ds.Column(name)
	if !ok {
		return stats.Summary{}, nil, newColumnNotFound(typ, name)
	}
	set, err := valueSetParam(typ, in)
	if err != nil {
		return stats.Summary{}, nil, err
	}
	return stats.Describe(col), set, nil
}
