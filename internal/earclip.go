package internal

// Ear clipping. A vertex is an ear when its corner is convex and the triangle
// it forms with its two neighbors holds no other vertex of the loop. Cutting
// an ear emits that triangle and drops the vertex, leaving a loop one vertex
// shorter, until a single triangle remains.
//
// The cursor walks the ring backward one vertex per step whether or not an ear
// was cut. Nothing about the ring is cached between steps, so each candidate
// costs a full containment scan and a pass is O(n²).
//
// There is no backtracking. If the cursor goes around the ring twice without
// cutting anything, the loop cannot be finished this way and the pass fails.

// Triangulate a polygon loop, panicking with an *UntriangulableError if the
// clipper stalls. The polygon itself is never modified. Use Tessellate unless
// the caller is already recovering panics.
func ClipEars(polygon Polygon, shader Shader) Tessellation {
	n := len(polygon.Points)
	if n < 3 {
		throw(ErrDegenerate)
	}

	e := &emitter{
		shader:      shader,
		vertexCount: n,
		result: Tessellation{
			Triangles: make([]Triangle, 0, n-2),
		},
	}
	if shader != nil {
		e.result.Shades = make([]Shade, 0, n-2)
	}

	if n == 3 {
		e.emit(polygon.Points[0], polygon.Points[1], polygon.Points[2])
		return e.result
	}

	faceOrientation := FaceOrientation(polygon.Points)
	ring := NewRing(polygon.Points)
	curr := ring.Head()

	// Stall detection. Every step that doesn't shrink the ring counts against
	// it, and twice around the ring without a cut is a failure.
	lastLen := ring.Len()
	stalls := 0

	for ring.Len() > 3 {
		if ring.Len() == lastLen {
			stalls++
		} else {
			lastLen = ring.Len()
			stalls = 0
		}
		if stalls == 2*lastLen {
			throw(&UntriangulableError{
				VertexCount: n,
				Remaining:   ring.Points(),
				Ring:        ring.DbgString(faceOrientation),
			})
		}

		prev := ring.Prev(curr)
		next := ring.Next(curr)
		a, b, c := ring.Point(prev), ring.Point(curr), ring.Point(next)

		if IsConvex(a, b, c, faceOrientation) && !ringIntrudes(ring, prev, next, a, b, c) {
			e.emit(a, b, c)
			ring.Remove(curr)
		}

		// Step backward. prev survives the removal of curr either way.
		curr = prev
	}

	// Whatever is left is the last triangle
	first := ring.Head()
	second := ring.Next(first)
	third := ring.Next(second)
	e.emit(ring.Point(first), ring.Point(second), ring.Point(third))
	return e.result
}

// Triangulate a polygon loop, returning an error instead of panicking. On
// failure the tessellation is empty; there is never partial output.
func Tessellate(polygon Polygon, shader Shader) (result Tessellation, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = Tessellation{}
			err = recoveredErr
		}
	}()
	return ClipEars(polygon, shader), nil
}

// Is any vertex other than the candidate ear's own three inside (or on) the
// candidate triangle? The scan runs from the vertex after next around to, but
// not including, prev.
func ringIntrudes(ring *Ring, prev, next int, a, b, c Point) bool {
	for node := ring.Next(next); node != prev; node = ring.Next(node) {
		if TriangleContains(ring.Point(node), a, b, c) {
			return true
		}
	}
	return false
}

type emitter struct {
	shader      Shader
	vertexCount int
	result      Tessellation
}

func (e *emitter) emit(a, b, c Point) {
	e.result.Triangles = append(e.result.Triangles, Triangle{a, b, c})
	if e.shader != nil {
		emitted := len(e.result.Triangles)
		e.result.Shades = append(e.result.Shades, e.shader.Shade(emitted, e.vertexCount))
	}
}
