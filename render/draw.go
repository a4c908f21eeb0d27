// Rasterizes session frames and gasket point clouds. Geometry is expected in
// clip space, so the whole [-1, 1] square fills the canvas.
package render

import (
	"io"
	"sort"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/earclip/advanced"
	"github.com/osuushi/earclip/config"
	"github.com/pkg/errors"
)

type Canvas struct {
	Width, Height int
	PointSize     float64
	// Hex colors, as accepted by gg's SetHexColor
	Background, Foreground string
}

func NewCanvas(cfg config.Canvas) Canvas {
	return Canvas{
		Width:      cfg.Width,
		Height:     cfg.Height,
		PointSize:  cfg.PointSize,
		Background: cfg.Background,
		Foreground: cfg.Foreground,
	}
}

// Draw a frame the way its mode asks: dots for points mode, filled and
// outlined triangles for triangles mode. Triangles without shades are filled
// with the foreground color.
func (cv Canvas) Draw(frame advanced.Frame) *gg.Context {
	c := cv.newContext()
	switch frame.Mode {
	case advanced.ModeTriangles:
		for i, tri := range frame.Triangles {
			cv.trianglePath(c, tri)
			if frame.Shades != nil {
				c.SetRGBA(frame.Shades[i].RGBA())
			} else {
				c.SetHexColor(cv.Foreground)
			}
			c.Fill()
		}
		// Outline after filling so later fills don't cover earlier edges
		c.SetHexColor(cv.Foreground)
		c.SetLineWidth(1)
		for _, tri := range frame.Triangles {
			cv.trianglePath(c, tri)
			c.Stroke()
		}
	default:
		c.SetHexColor(cv.Foreground)
		for _, p := range frame.Points {
			x, y := cv.fromClip(p)
			c.DrawCircle(x, y, cv.PointSize)
			c.Fill()
		}
	}
	return c
}

// Draw a 3D point cloud with an orthographic projection down the Z axis.
// Points nearer the viewer (larger Z) are drawn later and brighter.
func (cv Canvas) DrawPoints3D(points []Point) *gg.Context {
	c := cv.newContext()
	sorted := append([]Point(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Z < sorted[j].Z
	})

	minZ, maxZ := 0.0, 0.0
	if len(sorted) > 0 {
		minZ, maxZ = sorted[0].Z, sorted[len(sorted)-1].Z
	}
	for _, p := range sorted {
		depth := 1.0
		if maxZ > minZ {
			depth = (p.Z - minZ) / (maxZ - minZ)
		}
		intensity := 0.3 + 0.7*depth
		c.SetRGB(0, intensity, intensity)
		x, y := cv.fromClip(p)
		c.DrawCircle(x, y, cv.PointSize/2)
		c.Fill()
	}
	return c
}

func SavePNG(c *gg.Context, path string) error {
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

// Print a PNG to the terminal (iTerm only).
func Preview(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func (cv Canvas) newContext() *gg.Context {
	c := gg.NewContext(cv.Width, cv.Height)
	c.SetHexColor(cv.Background)
	c.DrawRectangle(0, 0, float64(cv.Width), float64(cv.Height))
	c.Fill()
	return c
}

func (cv Canvas) trianglePath(c *gg.Context, tri advanced.Triangle) {
	x, y := cv.fromClip(tri.A)
	c.MoveTo(x, y)
	x, y = cv.fromClip(tri.B)
	c.LineTo(x, y)
	x, y = cv.fromClip(tri.C)
	c.LineTo(x, y)
	c.ClosePath()
}

func (cv Canvas) fromClip(p Point) (float64, float64) {
	return FromClip(p, float64(cv.Width), float64(cv.Height))
}
