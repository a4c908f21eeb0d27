package internal

import "math"

type AreaShape interface {
	SignedArea() float64
}

// Shoelace area. Counterclockwise triangles have positive area.
func (t Triangle) SignedArea() float64 {
	return (t.A.X*(t.B.Y-t.C.Y) + t.B.X*(t.C.Y-t.A.Y) + t.C.X*(t.A.Y-t.B.Y)) / 2
}

// Shoelace area of the loop. Counterclockwise loops have positive area.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	n := len(poly.Points)
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, n)]
		sum += p.X*next.Y - next.X*p.Y
	}
	return sum / 2
}

func Area(s AreaShape) float64 {
	return math.Abs(s.SignedArea())
}

func IsCCW(s AreaShape) bool {
	return s.SignedArea() > 0
}

func IsCW(s AreaShape) bool {
	return s.SignedArea() < 0
}

// Total unsigned area of a triangle list.
func TotalArea(triangles []Triangle) float64 {
	var sum float64
	for _, t := range triangles {
		sum += Area(t)
	}
	return sum
}
