// Package zero provides zero-value and nil detection for generic type parameters.
package zero

import "reflect"

// Value returns the zero value for type T.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T, or holds a nil
// reference. The second half matters when T is an interface type: an
// interface holding a typed nil pointer is not equal to the nil interface, but
// it still refers to nothing.
//
// Example:
//
//	zero.IsZero(0)                 // true
//	zero.IsZero("hello")           // false
//	zero.IsZero[any]((*int)(nil))  // true
//	zero.IsZero([]int{})           // false, an empty slice is not nil
func IsZero[T any](value T) bool {
	if IsNil(value) {
		return true
	}

	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}

// IsNil returns true if the value is a literal nil
// or if it holds a reference kind whose value is nil.
//
// A plain `val == nil` misses the common Go pitfall of an interface that
// wraps a typed nil pointer; IsNil reports true for that case too.
//
// Parameters:
//   - val: Any value. Reference kinds (chan, func, map, pointer, unsafe
//     pointer, interface, slice) are inspected with reflection.
//
// Returns:
//   - true for nil and nil references, false for every other value,
//     including zero structs, 0 and ""
//
// Example:
//
//	var p *Config
//	var v any = p
//
//	v == nil            // false
//	zero.IsNil(v)       // true
//	zero.IsNil([]int{}) // false, an empty slice is not nil
func IsNil(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}
