package guard

import (
	"iter"
	"strings"

	"github.com/pscompsci/guardagainst/errors"
)

// NotEmpty fails with errors.ErrNullOrEmptyValue when value is "".
func NotEmpty[S ~string](value S, parameterName string) (S, error) {
	if value == "" {
		return "", emptyFailure(parameterName, nil)
	}

	return value, nil
}

// NotNilOrEmpty fails with errors.ErrNullOrEmptyValue when value is nil or
// points to "". A nil value also matches errors.ErrNullValue.
func NotNilOrEmpty[S ~string](value *S, parameterName string) (*S, error) {
	if _, err := NotNil(value, parameterName); err != nil {
		return nil, emptyFailure(parameterName, err)
	}

	if _, err := NotEmpty(*value, parameterName); err != nil {
		return nil, err
	}

	return value, nil
}

// NotEmptySlice fails with errors.ErrNullOrEmptyValue when value is nil or has
// no elements. A nil value also matches errors.ErrNullValue.
func NotEmptySlice[T ~[]E, E any](value T, parameterName string) (T, error) {
	if value == nil {
		return nil, emptyFailure(parameterName, nullFailure(parameterName))
	}

	if len(value) == 0 {
		return nil, emptyFailure(parameterName, nil)
	}

	return value, nil
}

// NotEmptyMap fails with errors.ErrNullOrEmptyValue when value is nil or has
// no entries. A nil value also matches errors.ErrNullValue.
func NotEmptyMap[M ~map[K]V, K comparable, V any](value M, parameterName string) (M, error) {
	if value == nil {
		return nil, emptyFailure(parameterName, nullFailure(parameterName))
	}

	if len(value) == 0 {
		return nil, emptyFailure(parameterName, nil)
	}

	return value, nil
}

// NotEmptySeq fails with errors.ErrNullOrEmptyValue when value is nil or
// yields no element. It pulls at most one element, so a single-use sequence
// is consumed by the check; pass such sequences through NotEmptySlice after
// collecting them instead.
func NotEmptySeq[E any](value iter.Seq[E], parameterName string) (iter.Seq[E], error) {
	if value == nil {
		return nil, emptyFailure(parameterName, nullFailure(parameterName))
	}

	for range value {
		return value, nil
	}

	return nil, emptyFailure(parameterName, nil)
}

// NotWhitespace fails with errors.ErrNullOrEmptyValue when value is "" or
// consists only of Unicode white space. The empty string fails at the empty
// stage; only the white space stage also matches errors.ErrWhitespaceValue.
func NotWhitespace[S ~string](value S, parameterName string) (S, error) {
	if _, err := NotEmpty(value, parameterName); err != nil {
		return "", err
	}

	if strings.TrimSpace(string(value)) == "" {
		return "", &Error{
			Kind:    errors.ErrNullOrEmptyValue,
			Param:   parameterName,
			Message: "Required input " + parameterName + " cannot be whitespace.",
			Cause:   errors.ErrWhitespaceValue,
		}
	}

	return value, nil
}

// NotNilOrWhitespace is NotWhitespace for an optional string: nil fails like
// it does for NotNilOrEmpty.
func NotNilOrWhitespace[S ~string](value *S, parameterName string) (*S, error) {
	if _, err := NotNilOrEmpty(value, parameterName); err != nil {
		return nil, err
	}

	if _, err := NotWhitespace(*value, parameterName); err != nil {
		return nil, err
	}

	return value, nil
}

// emptyFailure reports an empty value. A nil cause means the value was
// present but empty; otherwise the message is the cause's.
func emptyFailure(parameterName string, cause error) *Error {
	if cause != nil {
		return &Error{
			Kind:    errors.ErrNullOrEmptyValue,
			Param:   parameterName,
			Message: cause.Error(),
			Cause:   cause,
		}
	}

	return fail(errors.ErrNullOrEmptyValue, parameterName,
		"Required input %s is empty.", parameterName)
}
