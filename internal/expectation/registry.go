package expectation

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ibromley/great-expectations/internal/column"
)

// Evaluator is the uniform contract every expectation satisfies: given an
// immutable dataset and a raw parameter map, produce a verdict plus observed
// value, or a structured error. Evaluation is pure - no I/O, no mutation of
// the dataset or any shared state - so evaluators are safe to call
// concurrently.
type Evaluator interface {
	// Type returns the expectation-type identifier this evaluator handles.
	Type() string

	// Evaluate runs the expectation against the dataset.
	Evaluate(ds *column.Dataset, in Params) (Result, error)
}

// Registry maps expectation-type identifiers to evaluators.
//
// A registry is populated before first use and treated as read-only
// thereafter; registration happening-before lookup is the only ordering
// concurrent callers need.
type Registry struct {
	evaluators map[string]Evaluator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{evaluators: make(map[string]Evaluator)}
}

// Register adds an evaluator. Duplicate types are an error - silently
// replacing an evaluator would make fixture results depend on registration
// order.
func (r *Registry) Register(e Evaluator) error {
	typ := e.Type()
	if _, dup := r.evaluators[typ]; dup {
		return fmt.Errorf("expectation type %q already registered", typ)
	}
	r.evaluators[typ] = e
	return nil
}

// Lookup finds the evaluator for an expectation type.
func (r *Registry) Lookup(typ string) (Evaluator, bool) {
	e, ok := r.evaluators[typ]
	return e, ok
}

// Types returns the registered expectation types, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.evaluators))
	for typ := range r.evaluators {
		types = append(types, typ)
	}
	sort.Strings(types)
	return types
}

// Evaluate dispatches to the registered evaluator, validating the raw
// parameters against the type's schema first.
func (r *Registry) Evaluate(typ string, ds *column.Dataset, in Params) (Result, error) {
	e, ok := r.evaluators[typ]
	if !ok {
		return Result{}, &Error{
			Code:        CodeUnknownExpectation,
			Expectation: typ,
			Message:     "no evaluator registered for expectation type",
		}
	}
	if err := validateParams(typ, in); err != nil {
		return Result{}, err
	}
	return e.Evaluate(ds, in)
}

// defaultRegistry holds the built-in evaluators. Built once, on first use.
var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	builtins := []Evaluator{
		uniqueProportionBetween{},
		distinctContainSet{},
		distinctInSet{},
		distinctEqualSet{},
		uniqueCountBetween{},
		valuesMatchPredicate{},
	}
	for _, e := range builtins {
		if err := r.Register(e); err != nil {
			panic(fmt.Sprintf("expectation: %v", err))
		}
	}
	return r
})

// Default returns the registry of built-in evaluators.
func Default() *Registry {
	return defaultRegistry()
}

// Evaluate dispatches against the default registry.
func Evaluate(typ string, ds *column.Dataset, in Params) (Result, error) {
	return Default().Evaluate(typ, ds, in)
}
