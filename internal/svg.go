package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read the first <polygon> element of an SVG document. This is not a full (or
// even correct) SVG reader: transforms, paths and units are ignored, and only
// the "points" attribute of the polygon is used. Points keep the order they
// appear in, so the winding is whatever the document says.
//
// SVG's Y axis points down. With flipY, Y values are negated so that a loop
// that looks counterclockwise on screen comes out counterclockwise.
func ParseSVGPolygon(r io.Reader, flipY bool) (Polygon, error) {
	rootEl, err := svgparser.Parse(r, false)
	if err != nil {
		return Polygon{}, errors.Wrap(err, "parse svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return Polygon{}, errors.New("no polygon element found")
	}

	points, err := ParsePointList(polygons[0].Attributes["points"])
	if err != nil {
		return Polygon{}, err
	}
	if flipY {
		for i := range points {
			points[i].Y = -points[i].Y
		}
	}
	return Polygon{Points: points}, nil
}

// Parse an SVG points attribute: "x,y x,y ...". Pairs may also be separated by
// whitespace alone ("x y x y").
func ParsePointList(s string) ([]Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in point list %q", s)
	}

	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}
