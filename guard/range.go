package guard

import (
	"cmp"
	"time"

	"github.com/pscompsci/guardagainst/errors"
	"github.com/pscompsci/guardagainst/zero"
)

// InRange returns value when rangeFrom <= value <= rangeTo.
//
// The bounds are checked first: rangeFrom > rangeTo is a mistake of the
// caller, not of the input, and fails with errors.ErrConfiguration whatever
// value is. Otherwise a value outside the interval fails with
// errors.ErrOutOfRangeValue. Floats are ordered by cmp.Compare, so NaN is
// below every bound.
func InRange[T cmp.Ordered](value T, parameterName string, rangeFrom, rangeTo T) (T, error) {
	return InRangeFunc(value, parameterName, rangeFrom, rangeTo, cmp.Compare[T])
}

// InRangeFunc is InRange for types ordered by a comparison function, which
// returns a negative number when a < b, zero when a == b and a positive number
// when a > b.
func InRangeFunc[T any](value T, parameterName string, rangeFrom, rangeTo T, compare func(a, b T) int) (T, error) {
	if compare(rangeFrom, rangeTo) > 0 {
		return zero.Value[T](), fail(errors.ErrConfiguration, parameterName,
			"rangeFrom should be less or equal than rangeTo for input %s: %v > %v",
			parameterName, rangeFrom, rangeTo)
	}

	if compare(value, rangeFrom) < 0 || compare(value, rangeTo) > 0 {
		return zero.Value[T](), fail(errors.ErrOutOfRangeValue, parameterName,
			"Input %s was out of range: %v not in [%v, %v]",
			parameterName, value, rangeFrom, rangeTo)
	}

	return value, nil
}

// InRangeTime is InRange for instants, ordered by time.Time.Compare.
func InRangeTime(value time.Time, parameterName string, rangeFrom, rangeTo time.Time) (time.Time, error) {
	return InRangeFunc(value, parameterName, rangeFrom, rangeTo, time.Time.Compare)
}
