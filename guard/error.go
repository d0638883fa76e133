package guard

import (
	"fmt"
	"reflect"
)

// Error is returned by every failing check.
type Error struct {
	// Kind is one of the sentinels of the errors package.
	Kind error
	// Param is the name of the rejected parameter.
	Param string
	// Message names the parameter and the violated constraint.
	Message string
	// Cause is the more primitive failure this one was derived from, if any.
	Cause error
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Cause}
}

func fail(kind error, param string, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Param:   param,
		Message: fmt.Sprintf(format, args...),
	}
}

// typeName mirrors the short type names used in messages: "int", "Time",
// and the full string for unnamed types such as "*guard.Error" or "[]int".
func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}
