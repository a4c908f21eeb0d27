package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSVGPolygon(t *testing.T) {
	doc := `<svg xmlns="http://www.w3.org/2000/svg">
  <polygon points="0,0 2,0 0,2"/>
  <polygon points="5,5 6,5 5,6"/>
</svg>`

	t.Run("first polygon wins", func(t *testing.T) {
		poly, err := ParseSVGPolygon(strings.NewReader(doc), false)
		require.NoError(t, err)
		assert.Equal(t, []Point{{0, 0, 0}, {2, 0, 0}, {0, 2, 0}}, poly.Points)
	})

	t.Run("flipped", func(t *testing.T) {
		poly, err := ParseSVGPolygon(strings.NewReader(doc), true)
		require.NoError(t, err)
		assert.Equal(t, []Point{{0, 0, 0}, {2, 0, 0}, {0, -2, 0}}, poly.Points)
		assert.True(t, IsCW(poly))
	})

	t.Run("no polygon", func(t *testing.T) {
		_, err := ParseSVGPolygon(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), false)
		assert.EqualError(t, err, "no polygon element found")
	})
}

func TestParsePointList(t *testing.T) {
	points, err := ParsePointList("1,2 3.5,-4\n5 6")
	require.NoError(t, err)
	assert.Equal(t, []Point{{1, 2, 0}, {3.5, -4, 0}, {5, 6, 0}}, points)

	_, err = ParsePointList("1,2 3")
	assert.Error(t, err)

	_, err = ParsePointList("1,x")
	assert.Error(t, err)

	points, err = ParsePointList("")
	require.NoError(t, err)
	assert.Empty(t, points)
}
