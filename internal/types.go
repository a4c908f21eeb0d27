package internal

import "fmt"

// Points are plain values. Two points are the same point if their coordinates
// are equal, so coincident vertices in a polygon are indistinguishable. Z is
// carried along for callers that work in 3-component vectors, but nothing in
// the triangulation looks at it.
type Point struct {
	X float64
	Y float64
	Z float64
}

type Polygon struct {
	Points []Point
}

type Triangle struct {
	A, B, C Point
}

// The result of one triangulation pass. Shades is parallel to Triangles when a
// shader was supplied, and nil otherwise.
type Tessellation struct {
	Triangles []Triangle
	Shades    []Shade
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Z component of the cross product p × other.
func (p Point) CrossZ(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

func (t Triangle) String() string {
	return fmt.Sprintf("△[%s %s %s]", t.A, t.B, t.C)
}

// Copy the point list so the copy can be mutated freely.
func (poly Polygon) Clone() Polygon {
	points := make([]Point, len(poly.Points))
	copy(points, poly.Points)
	return Polygon{points}
}
