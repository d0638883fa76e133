package guard_test

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	commonerrors "github.com/pscompsci/guardagainst/errors"
	"github.com/pscompsci/guardagainst/guard"
)

func propertyParameters() *gopter.TestParameters {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200

	return params
}

func TestProperty_StringChecks(t *testing.T) {
	t.Parallel()

	props := gopter.NewProperties(propertyParameters())
	strings := gen.OneGenOf(gen.AnyString(), gen.Const(""), gen.Const(" \t\n"), gen.Const("x"))

	props.Property("not_empty_fails_iff_empty", prop.ForAll(
		func(s string) bool {
			result, err := guard.NotEmpty(s, "s")
			if s == "" {
				return errors.Is(err, commonerrors.ErrNullOrEmptyValue)
			}

			return err == nil && result == s
		},
		strings,
	))

	props.Property("nil_or_empty_fails_iff_nil_or_empty", prop.ForAll(
		func(s string, present bool) bool {
			var ptr *string
			if present {
				ptr = &s
			}

			result, err := guard.NotNilOrEmpty(ptr, "s")
			if ptr == nil || s == "" {
				return errors.Is(err, commonerrors.ErrNullOrEmptyValue)
			}

			return err == nil && result == ptr
		},
		strings,
		gen.Bool(),
	))

	props.TestingRun(t)
}

func TestProperty_SliceChecks(t *testing.T) {
	t.Parallel()

	props := gopter.NewProperties(propertyParameters())

	props.Property("not_empty_slice_fails_iff_nil_or_empty", prop.ForAll(
		func(values []int, isNil bool) bool {
			if isNil {
				values = nil
			}

			result, err := guard.NotEmptySlice(values, "values")
			if len(values) == 0 {
				return errors.Is(err, commonerrors.ErrNullOrEmptyValue)
			}

			return err == nil && len(result) == len(values) && &result[0] == &values[0]
		},
		gen.SliceOf(gen.Int()),
		gen.Bool(),
	))

	props.TestingRun(t)
}

func TestProperty_InRange(t *testing.T) {
	t.Parallel()

	props := gopter.NewProperties(propertyParameters())
	ints := gen.IntRange(-50, 50)

	props.Property("in_range_iff_between_bounds", prop.ForAll(
		func(v, lo, hi int) bool {
			result, err := guard.InRange(v, "v", lo, hi)

			switch {
			case lo > hi:
				return errors.Is(err, commonerrors.ErrConfiguration) &&
					!errors.Is(err, commonerrors.ErrOutOfRangeValue)
			case v < lo || v > hi:
				return errors.Is(err, commonerrors.ErrOutOfRangeValue) &&
					!errors.Is(err, commonerrors.ErrConfiguration)
			default:
				return err == nil && result == v
			}
		},
		ints, ints, ints,
	))

	props.TestingRun(t)
}

func TestProperty_SignChecks(t *testing.T) {
	t.Parallel()

	props := gopter.NewProperties(propertyParameters())
	ints := gen.OneGenOf(gen.Int64(), gen.Int64Range(-2, 2))

	props.Property("non_zero_fails_iff_zero", prop.ForAll(
		func(v int64) bool {
			_, err := guard.NonZero(v, "v")

			return (v == 0) == errors.Is(err, commonerrors.ErrZeroValue) && (v == 0) == (err != nil)
		},
		ints,
	))

	props.Property("non_negative_fails_iff_negative", prop.ForAll(
		func(v int64) bool {
			_, err := guard.NonNegative(v, "v")

			return (v < 0) == errors.Is(err, commonerrors.ErrNegativeValue) && (v < 0) == (err != nil)
		},
		ints,
	))

	props.Property("positive_fails_iff_not_positive", prop.ForAll(
		func(v int64) bool {
			_, err := guard.Positive(v, "v")

			return (v <= 0) == errors.Is(err, commonerrors.ErrNonPositiveValue) && (v <= 0) == (err != nil)
		},
		ints,
	))

	props.Property("float_sign_checks", prop.ForAll(
		func(v float64) bool {
			_, zeroErr := guard.NonZero(v, "v")
			_, negErr := guard.NonNegative(v, "v")
			_, posErr := guard.Positive(v, "v")

			if math.IsNaN(v) {
				return zeroErr == nil &&
					errors.Is(negErr, commonerrors.ErrNegativeValue) &&
					errors.Is(posErr, commonerrors.ErrNonPositiveValue)
			}

			return (v == 0) == (zeroErr != nil) &&
				(v < 0) == (negErr != nil) &&
				(v <= 0) == (posErr != nil)
		},
		gen.OneGenOf(gen.Float64(), gen.Const(0.0), gen.Const(math.NaN())),
	))

	props.TestingRun(t)
}

func TestProperty_NotDefault(t *testing.T) {
	t.Parallel()

	props := gopter.NewProperties(propertyParameters())

	props.Property("not_default_fails_iff_zero", prop.ForAll(
		func(n int, s string) bool {
			_, intErr := guard.NotDefault(n, "n")
			_, strErr := guard.NotDefault(s, "s")

			return (n == 0) == errors.Is(intErr, commonerrors.ErrDefaultValue) &&
				(s == "") == errors.Is(strErr, commonerrors.ErrDefaultValue)
		},
		gen.OneGenOf(gen.Int(), gen.Const(0)),
		gen.OneGenOf(gen.AlphaString(), gen.Const("")),
	))

	props.TestingRun(t)
}

func TestProperty_Idempotent(t *testing.T) {
	t.Parallel()

	props := gopter.NewProperties(propertyParameters())
	ints := gen.IntRange(-20, 20)

	props.Property("same_inputs_same_outcome", prop.ForAll(
		func(v, lo, hi int) bool {
			first, firstErr := guard.InRange(v, "v", lo, hi)
			second, secondErr := guard.InRange(v, "v", lo, hi)

			if (firstErr == nil) != (secondErr == nil) || first != second {
				return false
			}

			return firstErr == nil || firstErr.Error() == secondErr.Error()
		},
		ints, ints, ints,
	))

	props.TestingRun(t)
}
