package guard

import (
	"github.com/pscompsci/guardagainst/errors"
	"github.com/pscompsci/guardagainst/optional"
	"github.com/pscompsci/guardagainst/zero"
)

// NotNil fails with errors.ErrNullValue when value is nil: a nil pointer, map,
// slice, channel, function or interface, including an interface that holds a
// typed nil pointer. Types that cannot be nil always pass.
func NotNil[T any](value T, parameterName string) (T, error) {
	if zero.IsNil(value) {
		return zero.Value[T](), nullFailure(parameterName)
	}

	return value, nil
}

// Present unwraps value, failing with errors.ErrNullValue when it is None.
// It is the null check for value types, where absence has to be explicit.
func Present[T any](value optional.Value[T], parameterName string) (T, error) {
	v, ok := value.Get()
	if !ok {
		return zero.Value[T](), nullFailure(parameterName)
	}

	return v, nil
}

func nullFailure(parameterName string) *Error {
	return fail(errors.ErrNullValue, parameterName,
		"Required input %s cannot be null.", parameterName)
}
