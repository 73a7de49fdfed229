// Package container provides a generic insertion-ordered container with
// duplicate elements and snapshot-based traversals.
//
// A Container keeps its elements in the order they were added and permits
// duplicates; there is no uniqueness invariant. Elements must implement
// [github.com/amp-labs/amp-container/compare.Comparable] so that removal
// and traversal equality checks can compare them.
//
// Traversal orders over a container live in the order package. Every
// traversal operates on a snapshot: mutating the container after a
// traversal has been built never changes what that traversal observes.
//
// Thread-safety: a Container has no internal synchronization. Concurrent
// access must be synchronized by the caller.
package container

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/amp-labs/amp-container/compare"
)

// ErrNotFound is returned by RemoveAll when the container holds zero
// occurrences of the requested value. The message text is a compatibility
// contract relied on by existing callers; do not reword it.
var ErrNotFound = errors.New("This element does not exist in the container")

// Container is an insertion-ordered sequence of elements with duplicates
// permitted. The zero value is not usable; construct with New or Of.
type Container[T compare.Comparable[T]] struct {
	data []T
}

// New creates an empty container.
func New[T compare.Comparable[T]]() *Container[T] {
	return &Container[T]{}
}

// Of creates a container holding the given elements in the given order.
func Of[T compare.Comparable[T]](elements ...T) *Container[T] {
	c := New[T]()
	for _, e := range elements {
		c.Add(e)
	}

	return c
}

// Add appends value to the end of the container. It always succeeds and
// runs in amortized O(1). Traversals built before the call are unaffected.
func (c *Container[T]) Add(value T) {
	c.data = append(c.data, value)
}

// RemoveAll removes every element equal to value, preserving the relative
// order of the surviving elements. If the container held zero occurrences
// of value, it returns ErrNotFound and leaves the contents unchanged;
// otherwise all occurrences are removed and nil is returned. Runs in O(n).
func (c *Container[T]) RemoveAll(value T) error {
	before := len(c.data)

	c.data = slices.DeleteFunc(c.data, func(e T) bool {
		return e.Equals(value)
	})

	if len(c.data) == before {
		return ErrNotFound
	}

	return nil
}

// Size returns the current number of elements. O(1).
func (c *Container[T]) Size() int {
	return len(c.data)
}

// Snapshot returns a copy of the element sequence as it is at the moment
// of the call. Later mutation of the container does not affect the
// returned slice, and mutating the returned slice does not affect the
// container.
func (c *Container[T]) Snapshot() []T {
	return slices.Clone(c.data)
}

// Seq returns an iterator over a snapshot of the container in insertion
// order, yielding (index, element) pairs. Mutation of the container during
// iteration does not affect the sequence being ranged over.
//
// Compatible with Go 1.23+ range-over-func syntax:
//
//	for i, elem := range c.Seq() {
//	    // process index and element
//	}
func (c *Container[T]) Seq() iter.Seq2[int, T] {
	snapshot := c.Snapshot()

	return func(yield func(int, T) bool) {
		for i, e := range snapshot {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Render returns the elements in insertion order as text: each element
// followed by a single space, the whole output terminated by one newline.
// Elements 42 and 17 render as exactly "42 17 \n"; an empty container
// renders "\n". The trailing space before the newline is part of the
// format contract.
func (c *Container[T]) Render() string {
	var sb strings.Builder

	for _, e := range c.data {
		fmt.Fprintf(&sb, "%v ", e)
	}

	sb.WriteByte('\n')

	return sb.String()
}

// String implements fmt.Stringer by delegating to Render.
func (c *Container[T]) String() string {
	return c.Render()
}
