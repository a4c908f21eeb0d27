package internal

// Orientation predicates used by the ear clipper. None of these use a
// tolerance: a zero result means exactly collinear, and the callers decide what
// that means for them.

// Which side of the line through v1 and v2 the point lies on. The magnitude is
// twice the area of the triangle (p, v1, v2); the sign flips when v1 and v2 are
// swapped. Zero means the three points are collinear.
func Side(p, v1, v2 Point) float64 {
	return (p.X-v2.X)*(v1.Y-v2.Y) - (p.Y-v2.Y)*(v1.X-v2.X)
}

// Z component of the cross product of the two legs leaving vertex, toward prev
// and toward next.
func CornerCross(prev, vertex, next Point) float64 {
	return prev.Sub(vertex).CrossZ(next.Sub(vertex))
}

// A vertex is convex when its corner turns the same way as the face as a whole.
// A collinear corner has a zero cross product and is never convex, so exactly
// straight vertices are never clipped as ears on their own.
func IsConvex(prev, vertex, next Point, faceOrientation float64) bool {
	return CornerCross(prev, vertex, next)*faceOrientation > 0
}

// Inclusive point-in-triangle test. The three side values only disagree in
// sign when the point is outside; a zero (the point is on an edge line) never
// excludes it by itself. Works for either winding of v1, v2, v3.
func TriangleContains(p, v1, v2, v3 Point) bool {
	d1 := Side(p, v1, v2)
	d2 := Side(p, v2, v3)
	d3 := Side(p, v3, v1)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// The overall turning direction of a vertex loop, as the mean corner cross
// product. Only the sign is meaningful.
//
// This is not the signed area. Long legs weigh more than short ones, so a
// concave polygon whose reflex corners have long legs can come out with the
// wrong sign (a deep five pointed star does). The ear clipper then classifies
// its corners backwards and usually stalls. That behavior is kept on purpose:
// swapping in the shoelace area would change which ears are cut on concave
// input.
func FaceOrientation(points []Point) float64 {
	n := len(points)
	if n == 0 {
		return 0
	}
	var sum float64
	for i, vertex := range points {
		prev := points[CircularIndex(i-1, n)]
		next := points[CircularIndex(i+1, n)]
		sum += CornerCross(prev, vertex, next)
	}
	return sum / float64(n)
}
