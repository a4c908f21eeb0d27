package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/earclip/dbg"
)

// The working copy of a polygon loop while ears are cut from it. Nodes live in
// an arena and link to each other by index, so removing a vertex never shifts
// the position of any other vertex, and a cursor into the ring stays valid
// across removals of other nodes.
type Ring struct {
	nodes []ringNode
	// The surviving vertex that came earliest in the original loop.
	head int
	size int
}

type ringNode struct {
	point      Point
	prev, next int
	removed    bool
}

// Build a ring over a copy of the points. Node i holds points[i].
func NewRing(points []Point) *Ring {
	n := len(points)
	ring := &Ring{
		nodes: make([]ringNode, n),
		size:  n,
	}
	for i, p := range points {
		ring.nodes[i] = ringNode{
			point: p,
			prev:  CircularIndex(i-1, n),
			next:  CircularIndex(i+1, n),
		}
	}
	return ring
}

func (r *Ring) Len() int {
	return r.size
}

func (r *Ring) Head() int {
	return r.head
}

func (r *Ring) Point(node int) Point {
	return r.nodes[node].point
}

func (r *Ring) Next(node int) int {
	return r.nodes[node].next
}

func (r *Ring) Prev(node int) int {
	return r.nodes[node].prev
}

// Unlink a node. Its neighbors become adjacent.
func (r *Ring) Remove(node int) {
	n := &r.nodes[node]
	if n.removed {
		fatalf("ring node %d removed twice", node)
	}
	if r.size == 0 {
		fatalf("remove from empty ring")
	}
	r.nodes[n.prev].next = n.next
	r.nodes[n.next].prev = n.prev
	if r.head == node {
		r.head = n.next
	}
	n.removed = true
	r.size--
}

// The surviving points in loop order, starting at the head.
func (r *Ring) Points() []Point {
	points := make([]Point, 0, r.size)
	node := r.head
	for i := 0; i < r.size; i++ {
		points = append(points, r.nodes[node].point)
		node = r.nodes[node].next
	}
	return points
}

// Dump the ring for diagnostics. Each vertex gets a readable name, colored by
// how it classifies against the face: green for convex, red for reflex, cyan
// for exactly straight.
func (r *Ring) DbgString(faceOrientation float64) string {
	var parts []string
	node := r.head
	for i := 0; i < r.size; i++ {
		n := r.nodes[node]
		cross := CornerCross(r.nodes[n.prev].point, n.point, r.nodes[n.next].point)
		name := dbg.Name(n.point)
		switch {
		case cross == 0:
			name = aurora.Cyan(name).String()
		case cross*faceOrientation > 0:
			name = aurora.Green(name).String()
		default:
			name = aurora.Red(name).String()
		}
		parts = append(parts, fmt.Sprintf("%s%s", name, n.point))
		node = n.next
	}
	return fmt.Sprintf("Ring(%d) [%s]", r.size, strings.Join(parts, " → "))
}
