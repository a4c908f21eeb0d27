package earclip

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	triangles, err := Triangulate(points...)
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)
}

func TestTriangulate_Errors(t *testing.T) {
	triangles, err := Triangulate(Point{X: 0, Y: 0}, Point{X: 1, Y: 1})
	assert.ErrorIs(t, err, ErrDegenerate)
	assert.Nil(t, triangles)

	triangles, err = Triangulate(
		Point{X: -1, Y: -1},
		Point{X: 1, Y: 1},
		Point{X: 1, Y: -1},
		Point{X: -1, Y: 1},
	)
	assert.ErrorIs(t, err, ErrUntriangulable)
	assert.Nil(t, triangles)
}

func TestTriangulateShaded(t *testing.T) {
	triangles, shades, err := TriangulateShaded(
		Point{X: -1, Y: -1},
		Point{X: 1, Y: -1},
		Point{X: 1, Y: 1},
		Point{X: -1, Y: 1},
	)
	require.NoError(t, err)
	assert.Len(t, triangles, 2)
	assert.Equal(t, []Shade{0.25, 0.5}, shades)
}

func ExampleTriangulate() {
	triangles, err := Triangulate(
		Point{X: -1, Y: -1},
		Point{X: 1, Y: -1},
		Point{X: 1, Y: 1},
		Point{X: -1, Y: 1},
	)
	if err != nil {
		panic(err)
	}
	for _, t := range triangles {
		fmt.Println(t)
	}
	// Output:
	// △[(-1, 1) (-1, -1) (1, -1)]
	// △[(1, -1) (1, 1) (-1, 1)]
}
