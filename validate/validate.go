package validate

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/pscompsci/guardagainst/errors"
	"github.com/pscompsci/guardagainst/guard"
	"github.com/pscompsci/guardagainst/logger"
	"github.com/pscompsci/guardagainst/zero"
)

// HasValidate is implemented by types that can validate themselves.
type HasValidate interface {
	Validate() error
}

// HasValidateWithContext is implemented by types whose validation needs a context.
type HasValidateWithContext interface {
	Validate(ctx context.Context) error
}

// Validate calls the Validate method of value, if it has one.
//
// Nil values and values implementing neither interface pass. A failure is
// returned as "validation failed: <cause>", so errors.Is matches both
// errors.ErrValidation and the guard kind of the cause. A panicking Validate
// method is reported as errors.ErrPanicRecovery instead of crashing the caller.
//
// Example:
//
//	type CreateUser struct {
//	    Email string
//	    Age   int
//	}
//
//	func (r CreateUser) Validate() error {
//	    if _, err := guard.NotWhitespace(r.Email, "email"); err != nil {
//	        return err
//	    }
//
//	    _, err := guard.InRange(r.Age, "age", 13, 130)
//
//	    return err
//	}
//
//	if err := validate.Validate(ctx, req); err != nil {
//	    return err
//	}
func Validate(ctx context.Context, value any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	canValidate, err := validateInternal(ctx, value)
	observe(value, canValidate, err, time.Since(start))

	if err == nil {
		return nil
	}

	logFailure(ctx, value, err)

	return fmt.Errorf("%w: %w", errors.ErrValidation, err)
}

// validateInternal reports whether value could be validated, and the outcome.
func validateInternal(ctx context.Context, value any) (canValidate bool, err error) {
	if zero.IsNil(value) {
		return false, nil
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			err = panicError(recovered)
		}
	}()

	switch v := value.(type) {
	case HasValidate:
		canValidate = true

		return canValidate, v.Validate()
	case HasValidateWithContext:
		canValidate = true

		return canValidate, v.Validate(ctx)
	default:
		logger.Get(ctx).Warn("Validate called on unsupported type",
			"type", fmt.Sprintf("%T", v))

		return false, nil
	}
}

func panicError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return fmt.Errorf("%w: %w", errors.ErrPanicRecovery, err)
	}

	return fmt.Errorf("%w: %v", errors.ErrPanicRecovery, recovered)
}

func logFailure(ctx context.Context, value any, err error) {
	attrs := []any{
		"type", fmt.Sprintf("%T", value),
		"kind", errors.KindName(err),
	}

	var guardErr *guard.Error
	if stderrors.As(err, &guardErr) {
		attrs = append(attrs, "param", guardErr.Param)
	}

	logger.Get(ctx).Debug("validation failed", append(attrs, "error", err.Error())...)
}
