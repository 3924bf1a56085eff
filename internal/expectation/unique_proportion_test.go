package expectation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibromley/great-expectations/internal/column"
)

func TestUniqueProportionBetween(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		in       Params
		success  bool
		observed float64
	}{
		{
			name:     "all unique within bounds",
			values:   []any{1, 2, 3, 4, 5, 6, 7, 8},
			in:       Params{"column": "a", "min_value": 0.5, "max_value": 1},
			success:  true,
			observed: 1,
		},
		{
			name:     "nulls excluded from denominator",
			values:   []any{1, 2, 3, 4, 5, nil, nil, nil},
			in:       Params{"column": "a", "min_value": 0.5, "max_value": 1},
			success:  true,
			observed: 1,
		},
		{
			name:     "duplicates shrink the proportion",
			values:   []any{2, 2, 2, 2, 5, 6, 7, 8},
			in:       Params{"column": "a", "min_value": 0.6, "max_value": 0.7},
			success:  true,
			observed: 0.625,
		},
		{
			name:     "below open-ended minimum",
			values:   []any{1, 1, 1, 1, nil, nil, nil, nil},
			in:       Params{"column": "a", "min_value": 0.3, "max_value": nil},
			success:  false,
			observed: 0.25,
		},
		{
			name:     "inclusive at the boundary",
			values:   []any{1, 1, 2, 2},
			in:       Params{"column": "a", "min_value": 0.5, "max_value": 0.5},
			success:  true,
			observed: 0.5,
		},
		{
			name:     "max only",
			values:   []any{1, 2, 3, 4},
			in:       Params{"column": "a", "max_value": 0.5},
			success:  false,
			observed: 1,
		},
		{
			name:     "all-null column degrades to zero",
			values:   []any{nil, nil, nil},
			in:       Params{"column": "a", "min_value": 0.5, "max_value": 1},
			success:  false,
			observed: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(TypeProportionOfUniqueValuesToBeBetween, testDataset(t, tt.values), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			require.True(t, res.HasObserved())
			assert.InDelta(t, tt.observed, float64(res.Observed.(column.Number)), 1e-9)
		})
	}
}

func TestUniqueProportionBothBoundsAbsentIsVacuous(t *testing.T) {
	for _, in := range []Params{
		{"column": "a"},
		{"column": "a", "min_value": nil, "max_value": nil},
	} {
		res, err := Evaluate(TypeProportionOfUniqueValuesToBeBetween, testDataset(t, []any{1, 1, 2}), in)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.False(t, res.HasObserved(), "vacuous result must not report an observed value")
	}
}

func TestUniqueProportionColumnNotFound(t *testing.T) {
	_, err := Evaluate(TypeProportionOfUniqueValuesToBeBetween, testDataset(t, []any{1}), Params{
		"column":    "missing",
		"min_value": 0.5,
	})
	require.Error(t, err)
	assert.True(t, IsColumnNotFound(err))

	var ee *Error
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, "missing", ee.Column)
}

func TestUniqueProportionMissingColumnParam(t *testing.T) {
	_, err := Evaluate(TypeProportionOfUniqueValuesToBeBetween, testDataset(t, []any{1}), Params{
		"min_value": 0.5,
	})
	require.Error(t, err)
	assert.True(t, IsInvalidParameter(err))
}
