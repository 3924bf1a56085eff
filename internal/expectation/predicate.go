package expectation

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ibromley/great-expectations/internal/column"
)

// TypeColumnValuesToMatchPredicate is the expectation-type identifier for the
// row-condition check.
const TypeColumnValuesToMatchPredicate = "column_values_to_match_predicate"

// valuesMatchPredicate checks that a boolean expr-lang expression holds for
// at least a `mostly` fraction of the column's non-null values. The
// expression sees each value as `value`, e.g. `value > 0` or
// `value matches "^[a-z]+$"`.
//
// mostly defaults to 1.0 (every non-null value must satisfy the predicate).
// The observed value is the passing fraction. A column with no non-null
// values has nothing to violate: the result is vacuously true with no
// observed value.
type valuesMatchPredicate struct{}

func (valuesMatchPredicate) Type() string {
	return TypeColumnValuesToMatchPredicate
}

func (e valuesMatchPredicate) Evaluate(ds *column.Dataset, in Params) (Result, error) {
	name, err := columnParam(e.Type(), in)
	if err != nil {
		return Result{}, err
	}
	col, ok := ds.Column(name)
	if !ok {
		return Result{}, newColumnNotFound(e.Type(), name)
	}

	predicate, err := stringParam(e.Type(), in, "predicate")
	if err != nil {
		return Result{}, err
	}
	mostly := 1.0
	if m, err := boundParam(e.Type(), in, "mostly"); err != nil {
		return Result{}, err
	} else if m != nil {
		if *m < 0 || *m > 1 {
			return Result{}, newInvalidParameter(e.Type(), "mostly must be within [0, 1], got %v", *m)
		}
		mostly = *m
	}

	program, err := compilePredicate(predicate)
	if err != nil {
		return Result{}, newInvalidParameter(e.Type(), "compile predicate %q: %v", predicate, err)
	}

	nonNull, passing := 0, 0
	for _, v := range col.Values() {
		if column.IsNull(v) {
			continue
		}
		nonNull++
		matched, err := runPredicate(program, v)
		if err != nil {
			return Result{}, newInvalidParameter(e.Type(), "predicate %q failed for value %v: %v", predicate, column.ToGo(v), err)
		}
		if matched {
			passing++
		}
	}

	if nonNull == 0 {
		return Result{Success: true}, nil
	}

	observed := float64(passing) / float64(nonNull)
	return Result{
		Success:  observed >= mostly,
		Observed: column.Number(observed),
	}, nil
}

// compilePredicate compiles an expr-lang expression that must produce a bool.
func compilePredicate(predicate string) (*vm.Program, error) {
	return expr.Compile(predicate,
		expr.Env(map[string]any{"value": any(nil)}),
		expr.AsBool(),
	)
}

// runPredicate evaluates the compiled predicate against one column value.
func runPredicate(program *vm.Program, v column.Value) (bool, error) {
	out, err := expr.Run(program, map[string]any{"value": column.ToGo(v)})
	if err != nil {
		return false, err
	}
	matched, ok := out.(bool)
	if !ok {
		return false, errNotBool
	}
	return matched, nil
}

var errNotBool = &Error{
	Code:    CodeInvalidParameter,
	Message: "predicate did not produce a boolean",
}
