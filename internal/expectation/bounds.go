package expectation

// between reports whether observed satisfies the optional closed bounds.
// A nil bound imposes no constraint. Both bounds nil is vacuously true;
// callers short-circuit that case before computing the observed value.
func between(observed float64, min, max *float64) bool {
	if min != nil && observed < *min {
		return false
	}
	if max != nil && observed > *max {
		return false
	}
	return true
}

// unbounded reports whether both bounds are nil.
func unbounded(min, max *float64) bool {
	return min == nil && max == nil
}
