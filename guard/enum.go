package guard

import (
	"strings"

	"github.com/pscompsci/guardagainst/enum"
	"github.com/pscompsci/guardagainst/errors"
)

// ValidEnumMember fails with errors.ErrInvalidEnumValue when value is not one
// of the declared members.
func ValidEnumMember[E enum.Integer](value E, parameterName string, members enum.Set[E]) (E, error) {
	if !members.Contains(value) {
		return 0, invalidEnumFailure(parameterName, members)
	}

	return value, nil
}

// ValidEnumValue is ValidEnumMember for the underlying integer, as read from
// a wire format or a database column. It accepts exactly the integers whose
// conversion to E is a declared member without overflow.
func ValidEnumValue[E enum.Integer](value int, parameterName string, members enum.Set[E]) (int, error) {
	if !members.ContainsInt(value) {
		return 0, invalidEnumFailure(parameterName, members)
	}

	return value, nil
}

func invalidEnumFailure[E enum.Integer](parameterName string, members enum.Set[E]) *Error {
	failure := fail(errors.ErrInvalidEnumValue, parameterName,
		"Required input %s was not a valid enum value for %s.", parameterName, members.TypeName())

	if members.Len() > 0 {
		failure.Message += " Valid values: " + strings.Join(members.Names(), ", ") + "."
	}

	return failure
}
