// Package order provides six read-only traversal orders over a container,
// each delimited by a begin/end pair of cursors.
//
// Every Begin/End factory takes its own snapshot of the container at call
// time and materializes a full reordered view up front, so no traversal
// observes later mutation of the container. The six orders are
// permutations of the snapshot, never filters: view length always equals
// the container size at snapshot time.
//
// Insertion, Reverse, and MiddleOut derive purely from insertion order and
// only require element equality. Ascending, Descending, and SideCross sort
// and therefore require elements to be
// [github.com/amp-labs/amp-container/sortable.Sortable].
//
// Walking a traversal:
//
//	cur := order.BeginAscending(c)
//	end := order.EndAscending(c)
//	for !cur.Equals(end) {
//	    v, err := cur.Value()
//	    // ...
//	    _ = cur.Advance()
//	}
package order

import (
	"slices"

	"github.com/amp-labs/amp-container/compare"
	"github.com/amp-labs/amp-container/container"
	"github.com/amp-labs/amp-container/sortable"
	"github.com/amp-labs/amp-container/tuple"
)

// Pair is a begin/end cursor pair delimiting one traversal.
type Pair[T compare.Comparable[T]] = tuple.Tuple2[Cursor[T], Cursor[T]]

func begin[T compare.Comparable[T]](view []T) Cursor[T] {
	return newCursor(view, 0)
}

func end[T compare.Comparable[T]](view []T) Cursor[T] {
	return newCursor(view, len(view))
}

// ===== Insertion order =====

// BeginInsertion returns a cursor at the first element in insertion order.
func BeginInsertion[T compare.Comparable[T]](c *container.Container[T]) Cursor[T] {
	return begin(insertionView(c.Snapshot()))
}

// EndInsertion returns the end sentinel cursor for insertion order.
func EndInsertion[T compare.Comparable[T]](c *container.Container[T]) Cursor[T] {
	return end(insertionView(c.Snapshot()))
}

// Insertion returns the begin/end cursor pair for insertion order.
func Insertion[T compare.Comparable[T]](c *container.Container[T]) Pair[T] {
	return tuple.NewTuple2(BeginInsertion(c), EndInsertion(c))
}

// insertionView is the identity: the snapshot already is the view.
func insertionView[T compare.Comparable[T]](snapshot []T) []T {
	return snapshot
}

// ===== Reverse insertion order =====

// BeginReverse returns a cursor at the first element in reverse insertion order.
func BeginReverse[T compare.Comparable[T]](c *container.Container[T]) Cursor[T] {
	return begin(reverseView(c.Snapshot()))
}

// EndReverse returns the end sentinel cursor for reverse insertion order.
func EndReverse[T compare.Comparable[T]](c *container.Container[T]) Cursor[T] {
	return end(reverseView(c.Snapshot()))
}

// Reverse returns the begin/end cursor pair for reverse insertion order.
func Reverse[T compare.Comparable[T]](c *container.Container[T]) Pair[T] {
	return tuple.NewTuple2(BeginReverse(c), EndReverse(c))
}

func reverseView[T compare.Comparable[T]](snapshot []T) []T {
	slices.Reverse(snapshot)

	return snapshot
}

// ===== Ascending order =====

// BeginAscending returns a cursor at the smallest element.
func BeginAscending[T sortable.Sortable[T]](c *container.Container[T]) Cursor[T] {
	return begin(ascendingView(c.Snapshot()))
}

// EndAscending returns the end sentinel cursor for ascending order.
func EndAscending[T sortable.Sortable[T]](c *container.Container[T]) Cursor[T] {
	return end(ascendingView(c.Snapshot()))
}

// Ascending returns the begin/end cursor pair for ascending order.
func Ascending[T sortable.Sortable[T]](c *container.Container[T]) Pair[T] {
	return tuple.NewTuple2(BeginAscending(c), EndAscending(c))
}

func ascendingView[T sortable.Sortable[T]](snapshot []T) []T {
	slices.SortFunc(snapshot, ascending[T])

	return snapshot
}

// ascending adapts LessThan to the three-way comparison slices.SortFunc
// expects. LessThan must be a strict total order.
func ascending[T sortable.Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// ===== Descending order =====

// BeginDescending returns a cursor at the largest element.
func BeginDescending[T sortable.Sortable[T]](c *container.Container[T]) Cursor[T] {
	return begin(descendingView(c.Snapshot()))
}

// EndDescending returns the end sentinel cursor for descending order.
func EndDescending[T sortable.Sortable[T]](c *container.Container[T]) Cursor[T] {
	return end(descendingView(c.Snapshot()))
}

// Descending returns the begin/end cursor pair for descending order.
func Descending[T sortable.Sortable[T]](c *container.Container[T]) Pair[T] {
	return tuple.NewTuple2(BeginDescending(c), EndDescending(c))
}

func descendingView[T sortable.Sortable[T]](snapshot []T) []T {
	slices.SortFunc(snapshot, func(a, b T) int {
		return ascending(b, a)
	})

	return snapshot
}

// ===== Side-cross order =====

// BeginSideCross returns a cursor at the first element of the side-cross
// traversal: smallest, largest, second smallest, second largest, and so on.
func BeginSideCross[T sortable.Sortable[T]](c *container.Container[T]) Cursor[T] {
	return begin(sideCrossView(c.Snapshot()))
}

// EndSideCross returns the end sentinel cursor for side-cross order.
func EndSideCross[T sortable.Sortable[T]](c *container.Container[T]) Cursor[T] {
	return end(sideCrossView(c.Snapshot()))
}

// SideCross returns the begin/end cursor pair for side-cross order.
func SideCross[T sortable.Sortable[T]](c *container.Container[T]) Pair[T] {
	return tuple.NewTuple2(BeginSideCross(c), EndSideCross(c))
}

// sideCrossView sorts ascending, then alternately takes from the low and
// high ends of the unconsumed range, starting low. With an odd count the
// final element is the middle one, taken from the low side.
func sideCrossView[T sortable.Sortable[T]](snapshot []T) []T {
	slices.SortFunc(snapshot, ascending[T])

	view := make([]T, 0, len(snapshot))
	low, high := 0, len(snapshot)-1
	takeLow := true

	for low <= high {
		if takeLow {
			view = append(view, snapshot[low])
			low++
		} else {
			view = append(view, snapshot[high])
			high--
		}

		takeLow = !takeLow
	}

	return view
}

// ===== Middle-out order =====

// BeginMiddleOut returns a cursor at the first element of the middle-out
// traversal: the middle of the insertion sequence first, then alternating
// left and right neighbors outward.
func BeginMiddleOut[T compare.Comparable[T]](c *container.Container[T]) Cursor[T] {
	return begin(middleOutView(c.Snapshot()))
}

// EndMiddleOut returns the end sentinel cursor for middle-out order.
func EndMiddleOut[T compare.Comparable[T]](c *container.Container[T]) Cursor[T] {
	return end(middleOutView(c.Snapshot()))
}

// MiddleOut returns the begin/end cursor pair for middle-out order.
func MiddleOut[T compare.Comparable[T]](c *container.Container[T]) Pair[T] {
	return tuple.NewTuple2(BeginMiddleOut(c), EndMiddleOut(c))
}

// middleOutView starts at index (n-1)/2 of the insertion sequence (the
// lower middle when n is even), then alternates left and right starting
// left. Once one side runs out, the remaining side is drained in order.
func middleOutView[T compare.Comparable[T]](snapshot []T) []T {
	n := len(snapshot)
	view := make([]T, 0, n)

	if n == 0 {
		return view
	}

	mid := (n - 1) / 2
	view = append(view, snapshot[mid])

	left, right := mid-1, mid+1
	takeLeft := true

	for len(view) < n {
		if takeLeft && left >= 0 {
			view = append(view, snapshot[left])
			left--
		} else if !takeLeft && right < n {
			view = append(view, snapshot[right])
			right++
		}

		switch {
		case left < 0:
			takeLeft = false
		case right >= n:
			takeLeft = true
		default:
			takeLeft = !takeLeft
		}
	}

	return view
}
