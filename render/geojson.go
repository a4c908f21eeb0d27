package render

import (
	"os"

	"github.com/osuushi/earclip/advanced"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Export a frame as GeoJSON. Triangles mode gives one Polygon feature per
// triangle, in emission order, with "index", "area" and (when shaded) "shade"
// properties. Points mode gives a single MultiPoint feature, or nothing when
// there are no points.
func GeoJSON(frame advanced.Frame) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	switch frame.Mode {
	case advanced.ModeTriangles:
		for i, tri := range frame.Triangles {
			ring := orb.Ring{toOrb(tri.A), toOrb(tri.B), toOrb(tri.C), toOrb(tri.A)}
			feature := geojson.NewFeature(orb.Polygon{ring})
			feature.Properties["index"] = i
			feature.Properties["area"] = advanced.Area(tri)
			if frame.Shades != nil {
				feature.Properties["shade"] = float64(frame.Shades[i])
			}
			fc.Append(feature)
		}
	default:
		if len(frame.Points) == 0 {
			break
		}
		multiPoint := make(orb.MultiPoint, len(frame.Points))
		for i, p := range frame.Points {
			multiPoint[i] = toOrb(p)
		}
		fc.Append(geojson.NewFeature(multiPoint))
	}
	return fc
}

func WriteGeoJSON(path string, frame advanced.Frame) error {
	data, err := GeoJSON(frame).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal geojson")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func toOrb(p Point) orb.Point {
	return orb.Point{p.X, p.Y}
}
