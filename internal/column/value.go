package column

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Value is a sealed interface over the scalar types that may appear in a
// column: Null, Number, String, and Bool. Modeling null as its own type
// keeps the absent marker out of the value domain - no sentinel value can
// collide with real data.
//
// List is also a Value so that set-valued observed results (e.g. the sorted
// distinct values of a column) share the same representation.
type Value interface {
	value() // sealed - only types in this package implement it
}

// Null represents an absent value in a column.
type Null struct{}

func (Null) value() {}

// MarshalJSON implements json.Marshaler for Null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// Number represents a numeric value. All numbers are float64; fixture data
// carries both integers and fractions and the engine's derived statistics
// (proportions) are fractional.
type Number float64

func (Number) value() {}

// String represents a text value.
type String string

func (String) value() {}

// Bool represents a boolean value.
type Bool bool

func (Bool) value() {}

// List represents a sequence of values. Used for set-valued observed
// results; never stored inside a column.
type List []Value

func (List) value() {}

// MarshalJSON implements json.Marshaler for List.
func (l List) MarshalJSON() ([]byte, error) {
	out := make([]any, len(l))
	for i, v := range l {
		out[i] = ToGo(v)
	}
	return json.Marshal(out)
}

// kindRank orders value kinds for cross-type comparison: numbers sort before
// strings, strings before booleans. Columns in practice are homogeneous, but
// the order must be total so sorted reporting is deterministic either way.
func kindRank(v Value) int {
	switch v.(type) {
	case Number:
		return 0
	case String:
		return 1
	case Bool:
		return 2
	default:
		return 3
	}
}

// Compare returns -1, 0, or 1 ordering a before b. Numbers compare by value,
// strings lexicographically, booleans false before true. Values of different
// kinds order by kind.
func Compare(a, b Value) int {
	if ra, rb := kindRank(a), kindRank(b); ra != rb {
		if ra < rb {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case Number:
		bv := b.(Number)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case String:
		return strings.Compare(string(av), string(b.(String)))
	case Bool:
		bv := b.(Bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	}
	return 0
}

// FromGo converts a decoded JSON/YAML scalar into a Value.
// nil maps to Null; ints, floats, and json.Number map to Number.
// Nested containers are rejected - columns hold scalars only.
func FromGo(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return val, nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case float64:
		return Number(val), nil
	case float32:
		return Number(val), nil
	case int:
		return Number(val), nil
	case int64:
		return Number(val), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("number out of range: %s", val)
		}
		return Number(f), nil
	default:
		return nil, fmt.Errorf("unsupported scalar type %T", v)
	}
}

// ToGo converts a Value back to the plain Go representation used at
// serialization boundaries. Null becomes nil, List becomes []any.
func ToGo(v Value) any {
	switch val := v.(type) {
	case Null:
		return nil
	case Number:
		return float64(val)
	case String:
		return string(val)
	case Bool:
		return bool(val)
	case List:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = ToGo(elem)
		}
		return out
	default:
		return nil
	}
}

// IsNull reports whether v is the null marker.
func IsNull(v Value) bool {
	_, ok := v.(Null)
	return ok
}
