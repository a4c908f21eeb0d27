// Building blocks for callers that need more than a one-shot triangulation:
// the incremental Session, shading strategies, the orientation predicates the
// clipper is built on, and readers for point lists.
package advanced

import "github.com/osuushi/earclip/internal"

type Point = internal.Point
type Triangle = internal.Triangle
type Polygon = internal.Polygon
type Tessellation = internal.Tessellation
type Shade = internal.Shade
type Shader = internal.Shader
type ShaderFunc = internal.ShaderFunc
type UntriangulableError = internal.UntriangulableError

var (
	ErrUntriangulable = internal.ErrUntriangulable
	ErrDegenerate     = internal.ErrDegenerate

	Progressive = internal.Progressive
)

var (
	ClipEars                      = internal.ClipEars
	Tessellate                    = internal.Tessellate
	HandleTriangulatePanicRecover = internal.HandleTriangulatePanicRecover

	Side             = internal.Side
	IsConvex         = internal.IsConvex
	TriangleContains = internal.TriangleContains
	FaceOrientation  = internal.FaceOrientation

	Area      = internal.Area
	TotalArea = internal.TotalArea
	IsCCW     = internal.IsCCW
	IsCW      = internal.IsCW

	ParseSVGPolygon = internal.ParseSVGPolygon
)
