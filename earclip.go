// A small ear-clipping triangulation package for Go.
//
// This package converts a simple polygon, which may be non-convex and may wind
// either way, into a fan of triangles that uses only the original points. It
// favors predictability over speed: every pass is O(n²), there is no
// backtracking, and a loop the clipper cannot finish fails cleanly instead of
// looping forever.
//
// For building a polygon one vertex at a time, with per-triangle shading, see
// the advanced package.
package earclip

import "github.com/osuushi/earclip/advanced"

type Point = advanced.Point
type Triangle = advanced.Triangle
type Polygon = advanced.Polygon
type Shade = advanced.Shade

var (
	ErrUntriangulable = advanced.ErrUntriangulable
	ErrDegenerate     = advanced.ErrDegenerate
)

// Take a loop of points and convert it into triangles.
//
// The loop must be simple (no self intersections) and have at least three
// points. Either winding works, and each triangle keeps the loop's winding.
// Failures wrap ErrUntriangulable or ErrDegenerate; the concrete type of an
// untriangulable failure is *advanced.UntriangulableError.
func Triangulate(points ...Point) (result []Triangle, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.ClipEars(Polygon{Points: points}, nil).Triangles, nil
}

// Like Triangulate, but also returns a shade per triangle that brightens with
// the order the triangles were cut in.
func TriangulateShaded(points ...Point) (triangles []Triangle, shades []Shade, err error) {
	result, err := advanced.Tessellate(Polygon{Points: points}, advanced.Progressive)
	if err != nil {
		return nil, nil, err
	}
	return result.Triangles, result.Shades, nil
}
