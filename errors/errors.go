// Package errors defines the failure kinds shared by the guard, enum and
// validate packages. Each kind is a sentinel, so callers classify a failure
// with errors.Is regardless of how it was wrapped.
package errors

import "errors"

// Guard failure kinds.
var (
	ErrNullValue        = errors.New("null value")
	ErrNullOrEmptyValue = errors.New("null or empty value")
	ErrWhitespaceValue  = errors.New("whitespace value")
	ErrOutOfRangeValue  = errors.New("value out of range")
	ErrConfiguration    = errors.New("invalid guard configuration")
	ErrZeroValue        = errors.New("zero value")
	ErrNegativeValue    = errors.New("negative value")
	ErrNonPositiveValue = errors.New("non-positive value")
	ErrInvalidEnumValue = errors.New("invalid enum value")
	ErrDefaultValue     = errors.New("default value")
)

var (
	// ErrValidation wraps every failure returned by validate.Validate.
	ErrValidation = errors.New("validation failed")

	// ErrPanicRecovery marks a Validate method that panicked instead of returning an error.
	ErrPanicRecovery = errors.New("recovered from panic")
)

type kind struct {
	err  error
	name string
}

// Most specific first: a whitespace failure is also a null-or-empty failure,
// and a null-or-empty failure may carry a null cause.
var kinds = []kind{ //nolint:gochecknoglobals
	{ErrWhitespaceValue, "whitespace"},
	{ErrNullOrEmptyValue, "null_or_empty"},
	{ErrNullValue, "null"},
	{ErrConfiguration, "configuration"},
	{ErrOutOfRangeValue, "out_of_range"},
	{ErrZeroValue, "zero"},
	{ErrNegativeValue, "negative"},
	{ErrNonPositiveValue, "non_positive"},
	{ErrInvalidEnumValue, "invalid_enum"},
	{ErrDefaultValue, "default"},
}

// Kinds returns every guard failure kind, most specific first.
func Kinds() []error {
	out := make([]error, len(kinds))
	for i, k := range kinds {
		out[i] = k.err
	}

	return out
}

// KindNames returns the labels KindName can produce, in the order of Kinds,
// followed by "unknown".
func KindNames() []string {
	out := make([]string, 0, len(kinds)+1)
	for _, k := range kinds {
		out = append(out, k.name)
	}

	return append(out, "unknown")
}

// KindName returns a short snake_case label for the most specific guard kind
// err matches. It returns "unknown" for nil or unclassified errors.
func KindName(err error) string {
	if err == nil {
		return "unknown"
	}

	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}

	return "unknown"
}
