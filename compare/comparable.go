// Package compare provides utilities for comparing values.
package compare

import "slices"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T Comparable[T]](a, b T) bool {
	return a.Equals(b)
}

// EqualSlices reports whether two slices hold equal elements in the same
// order, comparing element-wise with each element's Equals method.
// A nil slice and an empty slice are considered equal.
func EqualSlices[T Comparable[T]](a, b []T) bool {
	return slices.EqualFunc(a, b, func(x, y T) bool {
		return x.Equals(y)
	})
}
