// Package column provides the value column abstraction: an ordered sequence
// of nullable scalar values identified by name, and the dataset that groups
// columns for one evaluation.
//
// Columns and datasets are immutable once constructed. Evaluators only read
// them, so a dataset may be shared across concurrent evaluations without
// locking.
package column

import "fmt"

// Column is a named, ordered sequence of nullable scalar values.
// Order is preserved: distinct-value computations report first occurrence
// before any sorting is applied. Duplicates are retained in storage.
type Column struct {
	name   string
	values []Value
}

// New constructs a column from already-typed values.
// The slice is copied so callers cannot mutate the column afterwards.
func New(name string, values []Value) *Column {
	vs := make([]Value, len(values))
	copy(vs, values)
	return &Column{name: name, values: vs}
}

// FromRaw constructs a column from decoded fixture scalars.
func FromRaw(name string, raw []any) (*Column, error) {
	values := make([]Value, len(raw))
	for i, rv := range raw {
		v, err := FromGo(rv)
		if err != nil {
			return nil, fmt.Errorf("column %q index %d: %w", name, i, err)
		}
		if _, ok := v.(List); ok {
			return nil, fmt.Errorf("column %q index %d: nested sequences are not column values", name, i)
		}
		values[i] = v
	}
	return &Column{name: name, values: values}, nil
}

// Name returns the column name.
func (c *Column) Name() string {
	return c.name
}

// Len returns the number of values including nulls.
func (c *Column) Len() int {
	return len(c.values)
}

// Values returns the column's values in order.
// The returned slice is shared; callers must not modify it.
func (c *Column) Values() []Value {
	return c.values
}

// Dataset maps unique column names to columns. It is read-only for the
// duration of an evaluation; no evaluator mutates it.
type Dataset struct {
	columns map[string]*Column
}

// NewDataset builds a dataset from columns. Duplicate names are an error.
func NewDataset(columns ...*Column) (*Dataset, error) {
	ds := &Dataset{columns: make(map[string]*Column, len(columns))}
	for _, col := range columns {
		if _, dup := ds.columns[col.Name()]; dup {
			return nil, fmt.Errorf("duplicate column %q", col.Name())
		}
		ds.columns[col.Name()] = col
	}
	return ds, nil
}

// DatasetFromRaw builds a dataset from a fixture data block
// (column name to list of scalars).
func DatasetFromRaw(data map[string][]any) (*Dataset, error) {
	ds := &Dataset{columns: make(map[string]*Column, len(data))}
	for name, raw := range data {
		col, err := FromRaw(name, raw)
		if err != nil {
			return nil, err
		}
		ds.columns[name] = col
	}
	return ds, nil
}

// Column looks up a column by name.
func (ds *Dataset) Column(name string) (*Column, bool) {
	col, ok := ds.columns[name]
	return col, ok
}

// Names returns the column names in unspecified order.
func (ds *Dataset) Names() []string {
	names := make([]string, 0, len(ds.columns))
	for name := range ds.columns {
		names = append(names, name)
	}
	return names
}
