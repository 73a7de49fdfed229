package order

import (
	"errors"
	"iter"
	"slices"

	"github.com/amp-labs/amp-container/compare"
	"github.com/amp-labs/amp-container/zero"
)

// ErrOutOfBounds is returned when a cursor is dereferenced or advanced
// while positioned at its end sentinel.
var ErrOutOfBounds = errors.New("cursor position is out of bounds")

// Cursor walks one materialized traversal view. It is a (view, position)
// pair: the view is an immutable reordered copy of a container snapshot,
// and the position ranges over [0, Len()], where Len() is the end sentinel
// with no addressable element.
//
// Cursors have value semantics. Two cursors are equal iff their positions
// match and their views are element-wise equal, regardless of where either
// was built. Nothing mutates the view; only the position advances.
type Cursor[T compare.Comparable[T]] struct {
	view []T
	pos  int
}

func newCursor[T compare.Comparable[T]](view []T, pos int) Cursor[T] {
	return Cursor[T]{view: view, pos: pos}
}

// Value returns the element at the current position. It returns
// ErrOutOfBounds when the cursor is at the end sentinel or the position is
// otherwise invalid.
func (c Cursor[T]) Value() (T, error) {
	if c.pos < 0 || c.pos >= len(c.view) {
		return zero.Value[T](), ErrOutOfBounds
	}

	return c.view[c.pos], nil
}

// Advance moves the cursor forward by one position. Advancing a cursor
// already at the end sentinel returns ErrOutOfBounds and leaves the cursor
// unchanged, so a cursor can never move past Len().
func (c *Cursor[T]) Advance() error {
	if c.pos >= len(c.view) {
		return ErrOutOfBounds
	}

	c.pos++

	return nil
}

// AdvancePost advances the cursor and returns a snapshot of it as it was
// before the advance (postfix semantics). The returned cursor owns its own
// copy of the view. If the cursor is already at the end sentinel, it is
// left unchanged and ErrOutOfBounds is returned.
func (c *Cursor[T]) AdvancePost() (Cursor[T], error) {
	prev := c.Clone()

	if err := c.Advance(); err != nil {
		return prev, err
	}

	return prev, nil
}

// Equals reports whether both cursors are at the same position over
// element-wise equal views. This is value comparison, not provenance:
// cursors built independently from equal containers compare equal.
func (c Cursor[T]) Equals(other Cursor[T]) bool {
	return c.pos == other.pos && compare.EqualSlices(c.view, other.view)
}

// Done reports whether the cursor is at the end sentinel.
func (c Cursor[T]) Done() bool {
	return c.pos >= len(c.view)
}

// Position returns the current position in [0, Len()].
func (c Cursor[T]) Position() int {
	return c.pos
}

// Len returns the length of the underlying view. It is fixed at
// construction and equals the container's size at snapshot time.
func (c Cursor[T]) Len() int {
	return len(c.view)
}

// Clone returns a cursor at the same position over its own copy of the view.
func (c Cursor[T]) Clone() Cursor[T] {
	return Cursor[T]{view: slices.Clone(c.view), pos: c.pos}
}

// Seq returns an iterator over the remaining elements, from the current
// position to the end of the view, yielding (position, element) pairs.
// The cursor itself is not advanced.
//
// Compatible with Go 1.23+ range-over-func syntax:
//
//	for i, elem := range cur.Seq() {
//	    // process position and element
//	}
func (c Cursor[T]) Seq() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := c.pos; i < len(c.view); i++ {
			if !yield(i, c.view[i]) {
				return
			}
		}
	}
}
