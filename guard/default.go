package guard

import (
	"github.com/pscompsci/guardagainst/errors"
	"github.com/pscompsci/guardagainst/zero"
)

// NotDefault fails with errors.ErrDefaultValue when value is the zero value of
// T. A nil reference counts as default even where it differs from T's zero
// value, which happens when T is an interface holding a typed nil pointer.
func NotDefault[T comparable](value T, parameterName string) (T, error) {
	var zeroVal T

	if value == zeroVal || zero.IsNil(value) {
		return zeroVal, defaultFailure[T](parameterName)
	}

	return value, nil
}

// NotDefaultValue is NotDefault for types that do not support ==, such as
// structs with slice fields. It compares deeply, so an empty non-nil slice
// inside a struct is not default.
func NotDefaultValue[T any](value T, parameterName string) (T, error) {
	if zero.IsZero(value) {
		return zero.Value[T](), defaultFailure[T](parameterName)
	}

	return value, nil
}

func defaultFailure[T any](parameterName string) *Error {
	return fail(errors.ErrDefaultValue, parameterName,
		"%s is default value for type %s", parameterName, typeName[T]())
}
