package internal

import (
	"embed"
	"log"
	"math"
)

// SVG fixtures live in fixtures/ and are available by name, sans extension.
// Each is converted into a CCW polygon. If anything goes wrong, the test binary
// dies.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	result, err := ParseSVGPolygon(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Ensure that the polygon is CCW
	if IsCW(result) {
		result = result.Reverse()
	}
	return result
}

// Some ad hoc code specified fixtures

func Square() Polygon {
	return Polygon{[]Point{
		{X: -1, Y: -1},
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
	}}
}

// n points evenly spaced around a circle, counterclockwise
func RegularPolygon(n int, radius float64) Polygon {
	points := make([]Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return Polygon{points}
}

// A five pointed star, counterclockwise, with the inner vertices at
// innerRadius.
func Star(outerRadius, innerRadius float64) Polygon {
	var points []Point
	for i := 0; i < 10; i++ {
		radius := outerRadius
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return Polygon{points}
}

// A self-intersecting quadrilateral.
func Bowtie() Polygon {
	return Polygon{[]Point{
		{X: -1, Y: -1},
		{X: 1, Y: 1},
		{X: 1, Y: -1},
		{X: -1, Y: 1},
	}}
}
