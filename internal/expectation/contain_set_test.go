package expectation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibromley/great-expectations/internal/column"
)

func numbers(vals ...float64) column.List {
	out := make(column.List, len(vals))
	for i, v := range vals {
		out[i] = column.Number(v)
	}
	return out
}

func TestDistinctContainSet(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		in       Params
		success  bool
		observed column.List
	}{
		{
			name:     "missing member fails",
			values:   []any{1, 2, 3, 4, 5, 6, 7, 8},
			in:       Params{"column": "a", "value_set": []any{1, 9}},
			success:  false,
			observed: numbers(1, 2, 3, 4, 5, 6, 7, 8),
		},
		{
			name:     "contained despite duplicates and nulls",
			values:   []any{1, 1, 1, 1, 2, nil, nil, nil},
			in:       Params{"column": "a", "value_set": []any{1}},
			success:  true,
			observed: numbers(1, 2),
		},
		{
			name:     "partial intersection is a plain failure",
			values:   []any{1, 2, 3},
			in:       Params{"column": "a", "value_set": []any{2, 3, 4}},
			success:  false,
			observed: numbers(1, 2, 3),
		},
		{
			name:     "value_set order and duplicates are irrelevant",
			values:   []any{3, 1, 2},
			in:       Params{"column": "a", "value_set": []any{2, 2, 1}},
			success:  true,
			observed: numbers(1, 2, 3),
		},
		{
			name:     "empty value_set is trivially contained",
			values:   []any{5, 5},
			in:       Params{"column": "a", "value_set": []any{}},
			success:  true,
			observed: numbers(5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(TypeDistinctValuesToContainSet, testDataset(t, tt.values), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			require.True(t, res.HasObserved(), "observed distinct values are reported on success and failure alike")
			assert.Equal(t, tt.observed, res.Observed)
		})
	}
}

func TestDistinctContainSetMixedTypesSortNumbersFirst(t *testing.T) {
	res, err := Evaluate(TypeDistinctValuesToContainSet, testDataset(t, []any{"b", 2, "a", 1}), Params{
		"column":    "a",
		"value_set": []any{"a", 1},
	})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, column.List{
		column.Number(1), column.Number(2), column.String("a"), column.String("b"),
	}, res.Observed)
}

func TestDistinctContainSetRejectsNullMember(t *testing.T) {
	_, err := Evaluate(TypeDistinctValuesToContainSet, testDataset(t, []any{1}), Params{
		"column":    "a",
		"value_set": []any{1, nil},
	})
	require.Error(t, err)
	assert.True(t, IsInvalidParameter(err))
}

func TestDistinctContainSetColumnNotFound(t *testing.T) {
	_, err := Evaluate(TypeDistinctValuesToContainSet, testDataset(t, []any{1}), Params{
		"column":    "b",
		"value_set": []any{1},
	})
	require.Error(t, err)
	assert.True(t, IsColumnNotFound(err))
}
