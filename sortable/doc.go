// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, enabling their use with ordered containers and
// sorted traversals.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides
// ready-to-use implementations for common primitive types: [Int], [Byte],
// [String], and [Float64], plus specialized string orderings ([NaturalString],
// [Collated]) and a sortable [UUID] wrapper.
//
// The Sortable interface extends [github.com/amp-labs/amp-container/compare.Comparable]
// by adding a LessThan method, providing both equality comparison and ordering.
// The sorted traversal orders (ascending, descending, side-cross) require
// their element type to be Sortable; the insertion-derived orders only
// require Comparable.
//
// # Usage
//
// Use the provided wrapper types when you need sorted traversals:
//
//	c := container.Of[sortable.Int](7, 15, 6, 1, 2)
//
//	cur := order.BeginAscending(c)
//	end := order.EndAscending(c)
//	for !cur.Equals(end) {
//	    v, _ := cur.Value()
//	    fmt.Println(int(v)) // 1, 2, 6, 7, 15
//	    _ = cur.Advance()
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type MyType struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (m MyType) Equals(other MyType) bool {
//	    return m.Priority == other.Priority && m.Name == other.Name
//	}
//
//	func (m MyType) LessThan(other MyType) bool {
//	    if m.Priority != other.Priority {
//	        return m.Priority < other.Priority
//	    }
//	    return m.Name < other.Name
//	}
//
// LessThan must define a strict total order that is consistent with Equals:
// for any a and b, exactly one of a.LessThan(b), b.LessThan(a), or
// a.Equals(b) should hold.
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently
// thread-safe for read operations. Containers holding these types are not
// thread-safe and require external synchronization for concurrent access.
package sortable
