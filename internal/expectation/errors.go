package expectation

import (
	"errors"
	"fmt"
)

// Code categorizes evaluation errors.
type Code string

const (
	// CodeColumnNotFound indicates the referenced column is absent from the dataset.
	CodeColumnNotFound Code = "COLUMN_NOT_FOUND"

	// CodeInvalidParameter indicates a malformed or type-incompatible parameter.
	CodeInvalidParameter Code = "INVALID_PARAMETER"

	// CodeUnknownExpectation indicates no evaluator is registered for the type.
	CodeUnknownExpectation Code = "UNKNOWN_EXPECTATION"

	// CodeUndefinedStatistic is reserved for degenerate inputs where a
	// statistic has no principled value. The built-in proportion evaluator
	// defines 0 for the zero-denominator case instead of raising this, but
	// the slot exists for evaluators that cannot default safely.
	CodeUndefinedStatistic Code = "UNDEFINED_STATISTIC"
)

// Error is a structured evaluation error surfaced to the caller.
// No error is swallowed inside the engine; catch_exceptions is a harness
// directive, not an engine one.
type Error struct {
	// Code identifies the error category.
	Code Code

	// Expectation is the expectation type being evaluated.
	Expectation string

	// Column is the referenced column, when relevant.
	Column string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: %s (expectation=%s, column=%s)", e.Code, e.Message, e.Expectation, e.Column)
	}
	if e.Expectation != "" {
		return fmt.Sprintf("%s: %s (expectation=%s)", e.Code, e.Message, e.Expectation)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsColumnNotFound reports whether err is a column-not-found error.
// Uses errors.As to handle wrapped errors.
func IsColumnNotFound(err error) bool {
	return hasCode(err, CodeColumnNotFound)
}

// IsInvalidParameter reports whether err is an invalid-parameter error.
func IsInvalidParameter(err error) bool {
	return hasCode(err, CodeInvalidParameter)
}

// IsUnknownExpectation reports whether err names an unregistered expectation type.
func IsUnknownExpectation(err error) bool {
	return hasCode(err, CodeUnknownExpectation)
}

func hasCode(err error, code Code) bool {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Code == code
	}
	return false
}

// newColumnNotFound creates an Error for a missing column.
func newColumnNotFound(expectation, col string) *Error {
	return &Error{
		Code:        CodeColumnNotFound,
		Expectation: expectation,
		Column:      col,
		Message:     fmt.Sprintf("column %q not found in dataset", col),
	}
}

// newInvalidParameter creates an Error for a malformed parameter.
func newInvalidParameter(expectation, format string, args ...any) *Error {
	return &Error{
		Code:        CodeInvalidParameter,
		Expectation: expectation,
		Message:     fmt.Sprintf(format, args...),
	}
}
