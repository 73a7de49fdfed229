package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-container/sortable"
)

func TestCursorValue(t *testing.T) {
	t.Parallel()

	t.Run("returns the element at the current position", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(10, 20, 30), 1)

		v, err := cur.Value()
		require.NoError(t, err)
		assert.Equal(t, sortable.Int(20), v)
	})

	t.Run("end sentinel returns ErrOutOfBounds", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(10, 20), 2)

		_, err := cur.Value()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})

	t.Run("empty view returns ErrOutOfBounds", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(), 0)

		_, err := cur.Value()
		assert.ErrorIs(t, err, ErrOutOfBounds)
	})
}

func TestCursorAdvance(t *testing.T) {
	t.Parallel()

	t.Run("moves forward one position at a time", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(1, 2, 3), 0)

		require.NoError(t, cur.Advance())
		assert.Equal(t, 1, cur.Position())

		require.NoError(t, cur.Advance())
		require.NoError(t, cur.Advance())
		assert.Equal(t, 3, cur.Position())
		assert.True(t, cur.Done())
	})

	t.Run("advancing at the end sentinel fails and leaves the cursor unchanged", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(1, 2), 2)

		err := cur.Advance()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, 2, cur.Position())
	})
}

func TestCursorAdvancePost(t *testing.T) {
	t.Parallel()

	t.Run("returns the pre-advance cursor and advances", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(1, 2, 3), 0)

		prev, err := cur.AdvancePost()
		require.NoError(t, err)

		assert.Equal(t, 0, prev.Position())
		assert.Equal(t, 1, cur.Position())

		v, err := prev.Value()
		require.NoError(t, err)
		assert.Equal(t, sortable.Int(1), v)
	})

	t.Run("returned snapshot owns its own view", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(1, 2), 0)

		prev, err := cur.AdvancePost()
		require.NoError(t, err)

		// Advancing the original further does not move the snapshot.
		require.NoError(t, cur.Advance())
		assert.Equal(t, 0, prev.Position())
		assert.Equal(t, 2, cur.Position())
	})

	t.Run("at the end sentinel fails without moving", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(1), 1)

		_, err := cur.AdvancePost()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Equal(t, 1, cur.Position())
	})
}

func TestCursorEquals(t *testing.T) {
	t.Parallel()

	t.Run("equal position over equal views", func(t *testing.T) {
		t.Parallel()

		a := newCursor(ints(1, 2, 3), 1)
		b := newCursor(ints(1, 2, 3), 1)

		assert.True(t, a.Equals(b))
		assert.True(t, b.Equals(a))
	})

	t.Run("different positions are unequal", func(t *testing.T) {
		t.Parallel()

		a := newCursor(ints(1, 2, 3), 0)
		b := newCursor(ints(1, 2, 3), 1)

		assert.False(t, a.Equals(b))
	})

	t.Run("different view contents are unequal", func(t *testing.T) {
		t.Parallel()

		a := newCursor(ints(1, 2, 3), 0)
		b := newCursor(ints(1, 2, 4), 0)

		assert.False(t, a.Equals(b))
	})

	t.Run("different view lengths are unequal", func(t *testing.T) {
		t.Parallel()

		a := newCursor(ints(1, 2), 0)
		b := newCursor(ints(1, 2, 3), 0)

		assert.False(t, a.Equals(b))
	})

	t.Run("independently materialized equal views compare equal", func(t *testing.T) {
		t.Parallel()

		a := newCursor(ints(1, 2, 3), 2)
		b := newCursor(ints(1, 2, 3), 2)

		require.NotSame(t, &a, &b)
		assert.True(t, a.Equals(b))
	})

	t.Run("two empty end cursors are equal", func(t *testing.T) {
		t.Parallel()

		a := newCursor(ints(), 0)
		b := newCursor(ints(), 0)

		assert.True(t, a.Equals(b))
	})
}

func TestCursorClone(t *testing.T) {
	t.Parallel()

	orig := newCursor(ints(1, 2, 3), 1)
	clone := orig.Clone()

	assert.True(t, orig.Equals(clone))

	require.NoError(t, clone.Advance())
	assert.Equal(t, 1, orig.Position())
	assert.Equal(t, 2, clone.Position())
	assert.False(t, orig.Equals(clone))
}

func TestCursorSeq(t *testing.T) {
	t.Parallel()

	t.Run("yields remaining elements with positions", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(10, 20, 30), 1)

		var positions []int

		var elems []sortable.Int

		for i, e := range cur.Seq() {
			positions = append(positions, i)
			elems = append(elems, e)
		}

		assert.Equal(t, []int{1, 2}, positions)
		assert.Equal(t, ints(20, 30), elems)
		assert.Equal(t, 1, cur.Position(), "Seq must not advance the cursor")
	})

	t.Run("supports early break", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(1, 2, 3), 0)

		count := 0

		for range cur.Seq() {
			count++

			break
		}

		assert.Equal(t, 1, count)
	})

	t.Run("end sentinel yields nothing", func(t *testing.T) {
		t.Parallel()

		cur := newCursor(ints(1, 2), 2)

		for range cur.Seq() {
			t.Fatal("unexpected element")
		}
	})
}

func TestCursorLenAndDone(t *testing.T) {
	t.Parallel()

	cur := newCursor(ints(1, 2), 0)

	assert.Equal(t, 2, cur.Len())
	assert.False(t, cur.Done())

	require.NoError(t, cur.Advance())
	require.NoError(t, cur.Advance())

	assert.Equal(t, 2, cur.Len())
	assert.True(t, cur.Done())
}
