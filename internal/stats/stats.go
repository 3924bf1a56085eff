// Package stats computes null-safe aggregate statistics over a column.
//
// Policy: nulls are always excluded from distinct-value and proportion
// computations. They count toward TotalCount only. The denominator for the
// unique-value proportion is NonNullCount, not TotalCount.
package stats

import (
	"slices"

	"github.com/ibromley/great-expectations/internal/column"
)

// Summary holds the derived quantities for one column.
// A Summary is immutable after Describe returns.
type Summary struct {
	// TotalCount is the number of values including nulls.
	TotalCount int

	// NonNullCount is the number of non-null values.
	NonNullCount int

	distinct []column.Value // order-stable by first occurrence, nulls excluded
}

// Describe scans a column once and produces its summary.
func Describe(col *column.Column) Summary {
	s := Summary{TotalCount: col.Len()}
	seen := make(map[column.Value]struct{})
	for _, v := range col.Values() {
		if column.IsNull(v) {
			continue
		}
		s.NonNullCount++
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		s.distinct = append(s.distinct, v)
	}
	return s
}

// UniqueValueCount returns the number of distinct non-null values.
func (s Summary) UniqueValueCount() int {
	return len(s.distinct)
}

// DistinctNonNull returns the distinct non-null values in first-occurrence
// order. The returned slice is a copy.
func (s Summary) DistinctNonNull() []column.Value {
	return slices.Clone(s.distinct)
}

// SortedDistinct returns the distinct non-null values in ascending order.
// This is the order used for reported observed values.
func (s Summary) SortedDistinct() []column.Value {
	sorted := slices.Clone(s.distinct)
	slices.SortFunc(sorted, column.Compare)
	return sorted
}

// ContainsAll reports whether every value in set appears at least once among
// the distinct non-null values. Order and duplicates in set are irrelevant.
func (s Summary) ContainsAll(set []column.Value) bool {
	members := s.memberSet()
	for _, v := range set {
		if _, ok := members[v]; !ok {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every distinct non-null value appears in set.
func (s Summary) SubsetOf(set []column.Value) bool {
	members := make(map[column.Value]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}
	for _, v := range s.distinct {
		if _, ok := members[v]; !ok {
			return false
		}
	}
	return true
}

// EqualsSet reports whether the distinct non-null values and set contain
// exactly the same members.
func (s Summary) EqualsSet(set []column.Value) bool {
	members := make(map[column.Value]struct{}, len(set))
	for _, v := range set {
		members[v] = struct{}{}
	}
	if len(members) != len(s.distinct) {
		return false
	}
	for _, v := range s.distinct {
		if _, ok := members[v]; !ok {
			return false
		}
	}
	return true
}

// UniqueProportion returns UniqueValueCount / NonNullCount.
// An all-null or empty column has no principled proportion; it degrades to 0
// to keep the function total rather than raising an undefined-statistic error.
func (s Summary) UniqueProportion() float64 {
	if s.NonNullCount == 0 {
		return 0
	}
	return float64(len(s.distinct)) / float64(s.NonNullCount)
}

func (s Summary) memberSet() map[column.Value]struct{} {
	members := make(map[column.Value]struct{}, len(s.distinct))
	for _, v := range s.distinct {
		members[v] = struct{}{}
	}
	return members
}
