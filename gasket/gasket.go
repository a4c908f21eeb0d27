// Sierpinski gasket point clouds, by the chaos game: start somewhere inside
// the hull of the corners, then repeatedly jump halfway toward a randomly
// chosen corner. Each jump lands strictly inside the hull, so every point
// generated is too.
package gasket

import (
	"math/rand"
	"time"

	"github.com/osuushi/earclip/advanced"
)

type Point = advanced.Point

const DefaultPoints = 5000

var (
	Triangle = [3]Point{
		{X: -1, Y: -1},
		{X: 0, Y: 1},
		{X: 1, Y: -1},
	}

	Tetrahedron = [4]Point{
		{X: -0.5, Y: -0.5, Z: -0.5},
		{X: 0.5, Y: -0.5, Z: -0.5},
		{X: 0, Y: 0.5, Z: 0},
		{X: 0, Y: -0.5, Z: 0.5},
	}
)

// n points of a 2D gasket. The first is a random weighted average of the
// corners, with every weight strictly positive. A nil rng seeds one from the
// clock.
func Generate2D(n int, corners [3]Point, rng *rand.Rand) []Point {
	if n <= 0 {
		return []Point{}
	}
	rng = ensureRand(rng)

	var weights [3]float64
	var total float64
	for i := range weights {
		// Float64 is in [0, 1); flip it so no weight is zero
		weights[i] = 1 - rng.Float64()
		total += weights[i]
	}
	var seed Point
	for i, corner := range corners {
		seed = add(seed, scale(corner, weights[i]/total))
	}

	return chaosGame(n, seed, corners[:], rng)
}

// n points of a 3D gasket, starting from the centroid of the corners.
func Generate3D(n int, corners [4]Point, rng *rand.Rand) []Point {
	if n <= 0 {
		return []Point{}
	}
	rng = ensureRand(rng)

	var seed Point
	for _, corner := range corners {
		seed = add(seed, scale(corner, 0.25))
	}
	return chaosGame(n, seed, corners[:], rng)
}

func chaosGame(n int, seed Point, corners []Point, rng *rand.Rand) []Point {
	points := make([]Point, 0, n)
	points = append(points, seed)
	p := seed
	for len(points) < n {
		corner := corners[rng.Intn(len(corners))]
		p = scale(add(p, corner), 0.5)
		points = append(points, p)
	}
	return points
}

func ensureRand(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rng
}

func add(a, b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

func scale(p Point, s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}
