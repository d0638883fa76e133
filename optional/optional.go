// Package optional models a value that may be absent. Go value types such as
// int or string have no null, so code that needs to distinguish "not given"
// from "given as zero" carries a Value instead.
package optional

import "fmt"

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
// The zero Value is None.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPointer converts a pointer into a Value. This is the bridge from APIs that
// signal absence with nil (decoded JSON, database scans) to guard.Present.
//
// Parameters:
//   - ptr: The pointer to read. A nil pointer means absent.
//
// Returns:
//   - None for a nil pointer, otherwise Some holding a copy of *ptr
//
// Example:
//
//	var req struct {
//	    Limit *int `json:"limit"`
//	}
//
//	limit, err := guard.Present(optional.FromPointer(req.Limit), "limit")
func FromPointer[T any](ptr *T) Value[T] {
	if ptr == nil {
		return None[T]()
	}

	return Some(*ptr)
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and a boolean indicating whether the value is present.
// This is the safe way to extract a value from a Value.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T {
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// Ptr returns a pointer to a copy of the value, or nil for None.
func (o Value[T]) Ptr() *T {
	if !o.isSet {
		return nil
	}

	v := o.value

	return &v
}

// String returns "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}
