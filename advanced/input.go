package advanced

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Read a point list, one point per line in the form "x y" (or "x,y"). An
// optional third value is kept as Z. Blank lines and lines starting with '#'
// are skipped.
func ReadPoints(in io.Reader) ([]Point, error) {
	var points []Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read points")
	}
	return points, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) < 2 || len(parts) > 3 {
		return Point{}, errors.Errorf("expected 2 or 3 coordinates, got %q", line)
	}

	var coords [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Point{}, errors.Wrapf(err, "invalid coordinate %q", part)
		}
		coords[i] = v
	}
	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}
