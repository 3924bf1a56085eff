package column

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGo(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil is null", nil, Null{}},
		{"string", "hello", String("hello")},
		{"bool", true, Bool(true)},
		{"int", 7, Number(7)},
		{"int64", int64(7), Number(7)},
		{"float64", 0.625, Number(0.625)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGo(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromGoRejectsContainers(t *testing.T) {
	_, err := FromGo(map[string]any{"k": 1})
	require.Error(t, err)
}

func TestIntAndFloatOfSameValueAreEqual(t *testing.T) {
	a, err := FromGo(1)
	require.NoError(t, err)
	b, err := FromGo(float64(1))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNullDoesNotCollideWithData(t *testing.T) {
	// The null marker must never compare equal to any real value.
	assert.NotEqual(t, Value(Null{}), Value(Number(0)))
	assert.NotEqual(t, Value(Null{}), Value(String("")))
	assert.NotEqual(t, Value(Null{}), Value(Bool(false)))
	assert.True(t, IsNull(Null{}))
	assert.False(t, IsNull(Number(0)))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"numbers ascending", Number(1), Number(2), -1},
		{"equal numbers", Number(2), Number(2), 0},
		{"strings lexicographic", String("a"), String("b"), -1},
		{"false before true", Bool(false), Bool(true), -1},
		{"numbers before strings", Number(9), String("a"), -1},
		{"strings before bools", String("z"), Bool(false), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

func TestSortWithCompare(t *testing.T) {
	vals := []Value{Number(8), Number(1), Number(5), Number(2)}
	slices.SortFunc(vals, Compare)
	assert.Equal(t, []Value{Number(1), Number(2), Number(5), Number(8)}, vals)
}

func TestToGoRoundTrip(t *testing.T) {
	assert.Equal(t, nil, ToGo(Null{}))
	assert.Equal(t, float64(3), ToGo(Number(3)))
	assert.Equal(t, "x", ToGo(String("x")))
	assert.Equal(t, true, ToGo(Bool(true)))
	assert.Equal(t, []any{float64(1), "a"}, ToGo(List{Number(1), String("a")}))
}
