package validate

import "context"

// Func wraps a validation function into a type that implements the HasValidate interface.
// This is useful when the checks for a value are written inline as guard calls and need
// to be handed to code that expects a HasValidate implementation.
//
// The wrapped function runs each time Validate() is invoked on the returned value.
// If the provided function is nil, Validate() returns nil (validation succeeds).
//
// Parameters:
//   - f: The validation function to wrap. Can be nil, in which case validation always succeeds.
//
// Returns:
//   - A HasValidate implementation that delegates to the provided function
//
// Example:
//
//	checkPort := func() error {
//	    _, err := guard.InRange(port, "port", 1, 65535)
//
//	    return err
//	}
//
//	if err := validate.Validate(ctx, validate.Func(checkPort)); err != nil {
//	    // errors.Is(err, errors.ErrValidation) and
//	    // errors.Is(err, errors.ErrOutOfRangeValue) both hold here.
//	    return err
//	}
func Func(f func() error) HasValidate {
	return &validateFunc{validate: f}
}

// FuncWithContext wraps a context-aware validation function into a type that implements
// the HasValidateWithContext interface. Use it when the checks need the context, for
// example to log through logger.Get(ctx) or to honor cancellation.
//
// If the provided function is nil, Validate() returns nil (validation succeeds).
//
// Parameters:
//   - f: The context-aware validation function to wrap. Can be nil, in which case validation always succeeds.
//
// Returns:
//   - A HasValidateWithContext implementation that delegates to the provided function
//
// Example:
//
//	checkTenant := func(ctx context.Context) error {
//	    if err := ctx.Err(); err != nil {
//	        return err
//	    }
//
//	    _, err := guard.NotWhitespace(tenantID, "tenantID")
//
//	    return err
//	}
//
//	err := validate.Validate(ctx, validate.FuncWithContext(checkTenant))
func FuncWithContext(f func(ctx context.Context) error) HasValidateWithContext {
	return &validateFuncWithContext{validate: f}
}

type validateFunc struct {
	validate func() error
}

var _ HasValidate = (*validateFunc)(nil)

func (v *validateFunc) Validate() error {
	if v.validate != nil {
		return v.validate()
	}

	return nil
}

type validateFuncWithContext struct {
	validate func(ctx context.Context) error
}

var _ HasValidateWithContext = (*validateFuncWithContext)(nil)

func (v *validateFuncWithContext) Validate(ctx context.Context) error {
	if v.validate != nil {
		return v.validate(ctx)
	}

	return nil
}
