package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing(t *testing.T) {
	square := Square()
	ring := NewRing(square.Points)
	require.Equal(t, 4, ring.Len())
	assert.Equal(t, 0, ring.Head())
	assert.Equal(t, square.Points, ring.Points())

	t.Run("wraps around", func(t *testing.T) {
		assert.Equal(t, 3, ring.Prev(0))
		assert.Equal(t, 0, ring.Next(3))
	})

	t.Run("removing the head moves it forward", func(t *testing.T) {
		ring.Remove(0)
		assert.Equal(t, 3, ring.Len())
		assert.Equal(t, 1, ring.Head())
		assert.Equal(t, 3, ring.Prev(1))
		assert.Equal(t, 1, ring.Next(3))
		assert.Equal(t, square.Points[1:], ring.Points())
	})

	t.Run("indexes survive removals", func(t *testing.T) {
		ring.Remove(2)
		assert.Equal(t, 2, ring.Len())
		assert.Equal(t, square.Points[3], ring.Point(3))
		assert.Equal(t, 3, ring.Next(1))
		assert.Equal(t, 1, ring.Next(3))
	})

	t.Run("double removal", func(t *testing.T) {
		assert.Panics(t, func() {
			ring.Remove(2)
		})
	})

	t.Run("does not alias its input", func(t *testing.T) {
		points := []Point{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
		ring := NewRing(points)
		points[0].X = 42
		assert.Equal(t, 0.0, ring.Point(0).X)
	})
}

func TestRingDbgString(t *testing.T) {
	ring := NewRing(Square().Points)
	dump := ring.DbgString(FaceOrientation(Square().Points))
	assert.Contains(t, dump, "Ring(4)")
	assert.Contains(t, dump, "(-1, -1)")
	assert.Contains(t, dump, "(-1, 1)")
}
