package sortable

import "facette.io/natsort"

// NaturalString is a sortable string type ordered using natural sort order.
// Natural sort treats numbers within strings numerically, so "file2" comes
// before "file10" (plain String ordering would put "file10" first).
//
// Example:
//
//	c := container.Of[sortable.NaturalString]("file10", "file2", "file1")
//	// Ascending traversal yields: "file1", "file2", "file10"
type NaturalString string

// Compile-time check that NaturalString implements Sortable[NaturalString].
var _ Sortable[NaturalString] = (*NaturalString)(nil)

// Equals returns true if both strings are byte-for-byte identical.
func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

// LessThan returns true if this string sorts before the other in natural order.
func (s NaturalString) LessThan(other NaturalString) bool {
	return natsort.Compare(string(s), string(other))
}
