package internal

import (
	"fmt"

	"github.com/pkg/errors"
)

// Threading errors through every step of the ear clipper would add noise to the
// loop for a failure that can only happen in one place. Instead, we use panics,
// and the entry points recover to convert to an error.

type TriangulateError error

var (
	// Every failure to triangulate a loop of three or more points wraps this.
	ErrUntriangulable = errors.New("cannot tessellate polygon")
	// Returned for loops with fewer than three points.
	ErrDegenerate = errors.New("polygon has fewer than 3 vertices")
)

// The ear clipper went around the ring twice without finding an ear. This
// happens for self-intersecting loops, loops with coincident vertices, and
// concave loops whose face orientation comes out backwards.
type UntriangulableError struct {
	// Vertex count of the loop that was handed to the clipper
	VertexCount int
	// The vertices still in the ring when the clipper gave up, in loop order
	Remaining []Point
	// Colored dump of the ring at the time of failure
	Ring string
}

func (e *UntriangulableError) Error() string {
	return fmt.Sprintf("%s: stalled with %d of %d vertices remaining",
		ErrUntriangulable, len(e.Remaining), e.VertexCount)
}

func (e *UntriangulableError) Unwrap() error {
	return ErrUntriangulable
}

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

// Panic with an arbitrary error, typically one of the sentinels above.
func throw(err error) {
	panic(TriangulateError(err))
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
