package render

import "github.com/osuushi/earclip/advanced"

type Point = advanced.Point

// Convert a canvas pixel position, origin at the top left with Y down, into
// clip space: (-1, -1) at the bottom left corner, (1, 1) at the top right.
func ToClip(px, py, width, height float64) Point {
	return Point{
		X: 2*px/width - 1,
		Y: 2*(height-py)/height - 1,
	}
}

// Inverse of ToClip. Z is ignored.
func FromClip(p Point, width, height float64) (px, py float64) {
	px = (p.X + 1) * width / 2
	py = height - (p.Y+1)*height/2
	return px, py
}
