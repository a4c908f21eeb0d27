package internal

// Even-odd point-in-polygon. This is provided primarily for testing
// triangulations by sampling.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Number of polygon edges crossed by a ray cast from p toward +X.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]

		if vertex.Below(p) == nextVertex.Below(p) {
			continue
		}
		// Solve for the x where the edge crosses the ray's horizontal
		t := (p.Y - vertex.Y) / (nextVertex.Y - vertex.Y)
		x := vertex.X + t*(nextVertex.X-vertex.X)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// A point is "below" another if it has a smaller Y, with X breaking ties. This
// keeps the crossing count consistent for vertices that sit exactly on the ray.
func (p Point) Below(otherPoint Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}
