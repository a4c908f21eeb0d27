package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles.
// 2. The set of points in the triangles equals the set of points in the polygon.
// 3. Every edge of the polygon is an edge of some triangle.
// 4. Every triangle winds the same way as the polygon, with nonzero area.
// 5. The sum of the areas of all triangles equals the area of the polygon.
func AssertValidTriangulation(t *testing.T, polygon Polygon, triangles []Triangle) {
	require.Len(t, triangles, len(polygon.Points)-2, "triangle count must be n-2")

	polyPoints := make(map[Point]struct{})
	for _, p := range polygon.Points {
		polyPoints[p] = struct{}{}
	}
	trianglePoints := make(map[Point]struct{})
	for _, tri := range triangles {
		for _, p := range tri.Points() {
			trianglePoints[p] = struct{}{}
		}
	}
	require.Equal(t, polyPoints, trianglePoints, "set of points in the triangles must equal the set of points in the polygon")

	ccw := IsCCW(polygon)
	triangleSegmentSet := make(normalizedSegmentSet)
	for _, tri := range triangles {
		require.Equal(t, ccw, IsCCW(tri), "triangle %s winds against the polygon", tri)
		require.False(t, Equal(Area(tri), 0), "zero area triangle %s", tri)
		triangleSegmentSet.add(tri.A, tri.B)
		triangleSegmentSet.add(tri.B, tri.C)
		triangleSegmentSet.add(tri.C, tri.A)
	}

	for i, p1 := range polygon.Points {
		p2 := polygon.Points[(i+1)%len(polygon.Points)]
		require.True(t, triangleSegmentSet.contains(p1, p2), "segment %v-%v of the polygon is not in the set of segments in the triangles", p1, p2)
	}

	require.InDelta(t, Area(polygon), TotalArea(triangles), 1e-6, "sum of the areas of all triangles must equal the area of the polygon")
}

// A segment with its endpoints in a canonical order, so that A-B and B-A
// compare equal.
type normalizedSegment struct {
	lower, upper Point
}

func newNormalizedSegment(a, b Point) normalizedSegment {
	if a.Below(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b Point) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b Point) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}

// Sample a grid over the polygon's bounding box and check that every sample
// strictly inside the polygon is strictly inside exactly one triangle, and
// every sample outside is in none. Samples that land on the line through any
// triangle edge are skipped, since the answer there depends on rounding.
func validateTrianglesBySampling(t *testing.T, polygon Polygon, triangles []Triangle) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, p := range polygon.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	step := math.Max(maxX-minX, maxY-minY) / 40
	// Pad the box, and offset the grid so it doesn't line up with integer
	// coordinates in the fixtures
	minX -= 2*step - 0.0071
	minY -= 2*step - 0.0123
	maxX += 2 * step
	maxY += 2 * step

	for y := minY; y <= maxY; y += step {
	sample:
		for x := minX; x <= maxX; x += step {
			p := Point{X: x, Y: y}
			count := 0
			for _, tri := range triangles {
				inside, onEdge := strictlyContains(tri, p)
				if onEdge {
					continue sample
				}
				if inside {
					count++
				}
			}

			if polygon.ContainsPointByEvenOdd(p) {
				assert.Equal(t, 1, count, "point %v inside the polygon should be covered exactly once", p)
			} else {
				assert.Equal(t, 0, count, "point %v outside the polygon should not be covered", p)
			}
		}
	}
}

func strictlyContains(tri Triangle, p Point) (inside bool, onEdge bool) {
	d1 := Side(p, tri.A, tri.B)
	d2 := Side(p, tri.B, tri.C)
	d3 := Side(p, tri.C, tri.A)
	if math.Abs(d1) < 1e-9 || math.Abs(d2) < 1e-9 || math.Abs(d3) < 1e-9 {
		return false, true
	}
	return (d1 > 0) == (d2 > 0) && (d2 > 0) == (d3 > 0), false
}
