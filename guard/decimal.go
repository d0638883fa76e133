package guard

import (
	"github.com/pscompsci/guardagainst/errors"
	"github.com/shopspring/decimal"
)

// Decimal overloads. decimal.Decimal is a struct, so the Number checks
// cannot take it; these compare by value rather than by representation, so
// 0.00 is zero and 1.50 equals 1.5.

// InRangeDecimal is InRange for decimals.
func InRangeDecimal(value decimal.Decimal, parameterName string, rangeFrom, rangeTo decimal.Decimal) (decimal.Decimal, error) {
	return InRangeFunc(value, parameterName, rangeFrom, rangeTo, decimal.Decimal.Cmp)
}

// NonZeroDecimal fails with errors.ErrZeroValue when value is zero.
func NonZeroDecimal(value decimal.Decimal, parameterName string) (decimal.Decimal, error) {
	if value.IsZero() {
		return decimal.Decimal{}, fail(errors.ErrZeroValue, parameterName,
			"Required input %s cannot be zero.", parameterName)
	}

	return value, nil
}

// NonNegativeDecimal fails with errors.ErrNegativeValue when value < 0.
func NonNegativeDecimal(value decimal.Decimal, parameterName string) (decimal.Decimal, error) {
	if value.IsNegative() {
		return decimal.Decimal{}, negativeFailure(parameterName)
	}

	return value, nil
}

// PositiveDecimal fails with errors.ErrNonPositiveValue when value <= 0.
func PositiveDecimal(value decimal.Decimal, parameterName string) (decimal.Decimal, error) {
	if !value.IsPositive() {
		return decimal.Decimal{}, nonPositiveFailure(parameterName)
	}

	return value, nil
}
