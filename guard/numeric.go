package guard

import (
	"cmp"

	"github.com/pscompsci/guardagainst/enum"
	"github.com/pscompsci/guardagainst/errors"
)

// Number is satisfied by every integer and floating-point kind.
type Number interface {
	enum.Integer | ~float32 | ~float64
}

// NonZero fails with errors.ErrZeroValue when value == 0.
func NonZero[T Number](value T, parameterName string) (T, error) {
	if value == 0 {
		return 0, fail(errors.ErrZeroValue, parameterName,
			"Required input %s cannot be zero.", parameterName)
	}

	return value, nil
}

// NonNegative fails with errors.ErrNegativeValue when value < 0.
// Values are ordered with cmp.Compare, so NaN counts as negative.
func NonNegative[T Number](value T, parameterName string) (T, error) {
	if cmp.Compare(value, 0) < 0 {
		return 0, negativeFailure(parameterName)
	}

	return value, nil
}

// Positive fails with errors.ErrNonPositiveValue when value <= 0, NaN included.
func Positive[T Number](value T, parameterName string) (T, error) {
	if cmp.Compare(value, 0) <= 0 {
		return 0, nonPositiveFailure(parameterName)
	}

	return value, nil
}

func negativeFailure(parameterName string) *Error {
	return fail(errors.ErrNegativeValue, parameterName,
		"Required input %s cannot be negative.", parameterName)
}

func nonPositiveFailure(parameterName string) *Error {
	return fail(errors.ErrNonPositiveValue, parameterName,
		"Required input %s cannot be zero or negative.", parameterName)
}
