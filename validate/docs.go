// Package validate runs the Validate method of request and configuration
// types, typically a sequence of guard checks, and reports the outcome
// uniformly: failures are wrapped with errors.ErrValidation, counted per
// guard kind in Prometheus and logged at debug level.
package validate
