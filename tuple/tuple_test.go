package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTuple2(t *testing.T) {
	t.Parallel()

	tuple := NewTuple2("hello", 42)

	assert.Equal(t, "hello", tuple.First())
	assert.Equal(t, 42, tuple.Second())
}

func TestTuple2Unpack(t *testing.T) {
	t.Parallel()

	first, second := NewTuple2(1.5, true).Unpack()

	assert.InDelta(t, 1.5, first, 0)
	assert.True(t, second)
}
