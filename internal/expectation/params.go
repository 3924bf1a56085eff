package expectation

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/ibromley/great-expectations/internal/column"
)

// Params is the raw, loosely-typed parameter map an expectation receives
// from its caller (fixture "in" blocks, API callers). Each evaluator
// validates it against a per-type JSON Schema at dispatch time and then
// decodes the fields it needs into typed form.
type Params map[string]any

//go:embed schemas/*.json
var schemaFS embed.FS

// paramSchemas holds the compiled per-type parameter schemas, keyed by
// expectation type. Populated once at process start; read-only thereafter.
var paramSchemas = compileSchemas()

func compileSchemas() map[string]*jsonschema.Schema {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		panic(fmt.Sprintf("expectation: read embedded schemas: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		raw, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			panic(fmt.Sprintf("expectation: read schema %s: %v", entry.Name(), err))
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			panic(fmt.Sprintf("expectation: parse schema %s: %v", entry.Name(), err))
		}
		if err := compiler.AddResource(entry.Name(), doc); err != nil {
			panic(fmt.Sprintf("expectation: add schema %s: %v", entry.Name(), err))
		}
		names = append(names, entry.Name())
	}

	schemas := make(map[string]*jsonschema.Schema, len(names))
	for _, name := range names {
		sch, err := compiler.Compile(name)
		if err != nil {
			panic(fmt.Sprintf("expectation: compile schema %s: %v", name, err))
		}
		typ := name[:len(name)-len(".json")]
		schemas[typ] = sch
	}
	return schemas
}

// validateParams checks the raw parameter map against the expectation type's
// schema. The map is round-tripped through JSON so that YAML- and Go-typed
// scalars (int vs float64) normalize to JSON number handling before
// validation.
func validateParams(typ string, in Params) error {
	sch, ok := paramSchemas[typ]
	if !ok {
		// Evaluator registered without a schema file: nothing to check.
		return nil
	}

	data, err := json.Marshal(map[string]any(in))
	if err != nil {
		return newInvalidParameter(typ, "parameters are not JSON-representable: %v", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return newInvalidParameter(typ, "parameters are not valid JSON: %v", err)
	}
	if err := sch.Validate(doc); err != nil {
		return newInvalidParameter(typ, "parameter schema violation: %v", err)
	}
	return nil
}

// columnParam extracts the required column name.
func columnParam(typ string, in Params) (string, error) {
	raw, ok := in["column"]
	if !ok {
		return "", newInvalidParameter(typ, "missing required parameter %q", "column")
	}
	name, ok := raw.(string)
	if !ok || name == "" {
		return "", newInvalidParameter(typ, "parameter %q must be a non-empty string, got %T", "column", raw)
	}
	return name, nil
}

// boundParam extracts an optional numeric bound. Absent or explicit null both
// mean unbounded and return nil. A null bound is a success-path semantic, not
// an error.
func boundParam(typ string, in Params, key string) (*float64, error) {
	raw, ok := in[key]
	if !ok || raw == nil {
		return nil, nil
	}
	f, err := toFloat(raw)
	if err != nil {
		return nil, newInvalidParameter(typ, "parameter %q must be a number or null, got %T", key, raw)
	}
	return &f, nil
}

// valueSetParam extracts the value_set parameter as typed scalar values.
// Nulls inside the set are rejected; null never names a real data value.
func valueSetParam(typ string, in Params) ([]column.Value, error) {
	raw, ok := in["value_set"]
	if !ok {
		return nil, newInvalidParameter(typ, "missing required parameter %q", "value_set")
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, newInvalidParameter(typ, "parameter %q must be a sequence, got %T", "value_set", raw)
	}
	set := make([]column.Value, 0, len(items))
	for i, item := range items {
		if item == nil {
			return nil, newInvalidParameter(typ, "value_set[%d]: null is not a member value", i)
		}
		v, err := column.FromGo(item)
		if err != nil {
			return nil, newInvalidParameter(typ, "value_set[%d]: %v", i, err)
		}
		set = append(set, v)
	}
	return set, nil
}

// stringParam extracts a required string parameter.
func stringParam(typ string, in Params, key string) (string, error) {
	raw, ok := in[key]
	if !ok {
		return "", newInvalidParameter(typ, "missing required parameter %q", key)
	}
	s, ok := raw.(string)
	if !ok || s == "" {
		return "", newInvalidParameter(typ, "parameter %q must be a non-empty string, got %T", key, raw)
	}
	return s, nil
}

// toFloat normalizes the numeric representations produced by the JSON and
// YAML decoders.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}

// CatchExceptions reports the caller's catch_exceptions flag. The engine
// itself never acts on it; the harness uses it to convert surfaced errors
// into recorded non-fatal outcomes.
func (p Params) CatchExceptions() bool {
	flag, ok := p["catch_exceptions"].(bool)
	return ok && flag
}
