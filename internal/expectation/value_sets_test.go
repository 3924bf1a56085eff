package expectation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ibromley/great-expectations/internal/column"
)

func TestDistinctValuesToBeInSet(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		in       Params
		success  bool
		observed column.List
	}{
		{
			name:     "proper subset passes",
			values:   []any{1, 1, 2, nil},
			in:       Params{"column": "a", "value_set": []any{1, 2, 3}},
			success:  true,
			observed: numbers(1, 2),
		},
		{
			name:     "stray value fails",
			values:   []any{1, 2, 7},
			in:       Params{"column": "a", "value_set": []any{1, 2}},
			success:  false,
			observed: numbers(1, 2, 7),
		},
		{
			name:     "all-null column is a subset of anything",
			values:   []any{nil, nil},
			in:       Params{"column": "a", "value_set": []any{1}},
			success:  true,
			observed: column.List(nil),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(TypeDistinctValuesToBeInSet, testDataset(t, tt.values), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			assert.Equal(t, tt.observed, res.Observed)
		})
	}
}

func TestDistinctValuesToEqualSet(t *testing.T) {
	tests := []struct {
		name    string
		values  []any
		in      Params
		success bool
	}{
		{
			name:    "same members in any order",
			values:  []any{2, 1, 2, nil},
			in:      Params{"column": "a", "value_set": []any{1, 2}},
			success: true,
		},
		{
			name:    "column missing a member",
			values:  []any{1},
			in:      Params{"column": "a", "value_set": []any{1, 2}},
			success: false,
		},
		{
			name:    "column has an extra member",
			values:  []any{1, 2, 3},
			in:      Params{"column": "a", "value_set": []any{1, 2}},
			success: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Evaluate(TypeDistinctValuesToEqualSet, testDataset(t, tt.values), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.success, res.Success)
			require.True(t, res.HasObserved())
		})
	}
}

func TestValueSetsMissingValueSetParam(t *testing.T) {
	for _, typ := range []string{
		TypeDistinctValuesToContainSet,
		TypeDistinctValuesToBeInSet,
		TypeDistinctValuesToEqualSet,
	} {
		_, err := Evaluate(typ, testDataset(t, []any{1}), Params{"column": "a"})
		require.Error(t, err, typ)
		assert.True(t, IsInvalidParameter(err), typ)
	}
}
