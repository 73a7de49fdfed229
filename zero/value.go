// Package zero provides utilities for working with zero values of generic types.
package zero

// Value returns the zero value for type T.
// This is useful on error paths that must return something of a generic
// type parameter without having a meaningful value to return.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultStr = zero.Value[string]()     // returns ""
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}
