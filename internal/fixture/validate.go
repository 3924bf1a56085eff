package fixture

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// ValidationError is one schema violation, with a path into the document.
type ValidationError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// documentSchema compiles the embedded CUE schema once. The compiled value
// is immutable and safe to share across goroutines.
var documentSchema = sync.OnceValue(func() cue.Value {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		panic(fmt.Sprintf("fixture: embedded schema does not compile: %v", err))
	}
	def := schema.LookupPath(cue.ParsePath("#Document"))
	if !def.Exists() {
		panic("fixture: embedded schema has no #Document definition")
	}
	return def
})

// ValidateDocument checks a generically-decoded document against the CUE
// schema. Returns one ValidationError per violation, nil if the document is
// well-formed.
func ValidateDocument(raw any) []*ValidationError {
	// JSON is a subset of CUE, so the document round-trips through JSON
	// into a concrete CUE value; YAML-decoded and JSON-decoded documents
	// normalize to the same shape along the way.
	data, err := json.Marshal(raw)
	if err != nil {
		return []*ValidationError{{Message: fmt.Sprintf("document is not JSON-representable: %v", err)}}
	}

	ctx := cuecontext.New()
	docVal := ctx.CompileBytes(data, cue.Filename("fixture.json"))
	if err := docVal.Err(); err != nil {
		return []*ValidationError{{Message: fmt.Sprintf("document does not parse: %v", err)}}
	}

	unified := documentSchema().Unify(docVal)
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		var out []*ValidationError
		for _, e := range cueerrors.Errors(err) {
			out = append(out, &ValidationError{
				Path:    strings.Join(cueerrors.Path(e), "."),
				Message: e.Error(),
			})
		}
		return out
	}
	return nil
}
