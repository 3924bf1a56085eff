package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ibromley/great-expectations/internal/column"
	"github.com/ibromley/great-expectations/internal/expectation"
)

func TestMatchExpectedPartial(t *testing.T) {
	actual := expectation.Result{Success: true, Observed: column.Number(0.625)}

	// subset semantics: unchecked fields are ignored
	assert.Empty(t, matchExpected(map[string]any{"success": true}, actual, false))
	assert.Empty(t, matchExpected(map[string]any{"observed_value": 0.625}, actual, false))
	assert.Empty(t, matchExpected(map[string]any{}, actual, false))

	assert.NotEmpty(t, matchExpected(map[string]any{"success": false}, actual, false))
	assert.NotEmpty(t, matchExpected(map[string]any{"observed_value": 0.5}, actual, false))
}

func TestMatchExpectedExact(t *testing.T) {
	actual := expectation.Result{Success: true, Observed: column.Number(1)}

	assert.Empty(t, matchExpected(map[string]any{"success": true, "observed_value": 1}, actual, true))

	// exact mode requires the success field
	assert.NotEmpty(t, matchExpected(map[string]any{"observed_value": 1}, actual, true))

	// exact mode requires observed presence to agree in both directions
	assert.NotEmpty(t, matchExpected(map[string]any{"success": true}, actual, true))

	vacuous := expectation.Result{Success: true}
	assert.Empty(t, matchExpected(map[string]any{"success": true}, vacuous, true))
	assert.NotEmpty(t, matchExpected(map[string]any{"success": true, "observed_value": 1}, vacuous, true))
}

func TestMatchExpectedFloatTolerance(t *testing.T) {
	actual := expectation.Result{Success: true, Observed: column.Number(1.0 / 3.0)}
	assert.Empty(t, matchExpected(map[string]any{"observed_value": 0.3333333333333333}, actual, false))
	assert.NotEmpty(t, matchExpected(map[string]any{"observed_value": 0.3333}, actual, false))
}

func TestMatchExpectedSequences(t *testing.T) {
	actual := expectation.Result{
		Success:  true,
		Observed: column.List{column.Number(1), column.Number(2)},
	}

	assert.Empty(t, matchExpected(map[string]any{"observed_value": []any{1, 2}}, actual, false))

	// order matters: fixtures author the engine's ascending order
	assert.NotEmpty(t, matchExpected(map[string]any{"observed_value": []any{2, 1}}, actual, false))
	assert.NotEmpty(t, matchExpected(map[string]any{"observed_value": []any{1}}, actual, false))
	assert.NotEmpty(t, matchExpected(map[string]any{"observed_value": 1}, actual, false))
}

func TestMatchExpectedRejectsUnknownField(t *testing.T) {
	actual := expectation.Result{Success: true}
	assert.NotEmpty(t, matchExpected(map[string]any{"succes": true}, actual, false))
}
