package advanced

import (
	"log"
	"os"

	"github.com/osuushi/earclip/internal"
)

// What a renderer should draw for the current state of a Session.
type DisplayMode int

const (
	// Fewer than three vertices, or the last polygon was thrown away. Draw the
	// raw vertices as points.
	ModePoints DisplayMode = iota
	// Draw the triangles, shaded if shades are present.
	ModeTriangles
)

func (m DisplayMode) String() string {
	switch m {
	case ModePoints:
		return "points"
	case ModeTriangles:
		return "triangles"
	}
	return "unknown"
}

// A snapshot of everything a renderer needs. Slices in a Frame are copies and
// belong to the receiver.
type Frame struct {
	Mode      DisplayMode
	Points    []Point
	Triangles []Triangle
	// Parallel to Triangles when the session has a shader, otherwise nil
	Shades []Shade
}

// A polygon built up one vertex at a time, the way a user clicks one out.
// Every vertex from the third on re-triangulates the whole loop from scratch.
// If the loop can't be triangulated, the session logs the vertex set and
// starts over from nothing.
//
// A Session is not safe for concurrent use.
type Session struct {
	points       []Point
	tessellation Tessellation
	mode         DisplayMode

	shader    Shader
	logger    *log.Logger
	observers []func(Frame)
}

type Option func(*Session)

// Shade triangles as they are emitted. Without this, frames carry no shades.
func WithShader(shader Shader) Option {
	return func(s *Session) {
		s.shader = shader
	}
}

// Where failure diagnostics go. Defaults to stderr.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Call fn with a new frame after every change to the session.
func WithObserver(fn func(Frame)) Option {
	return func(s *Session) {
		s.observers = append(s.observers, fn)
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		logger: log.New(os.Stderr, "earclip: ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append a vertex to the loop. No deduplication or validation is done.
//
// Once the loop has three or more vertices, the whole loop is triangulated
// again and the result replaces the previous one. If that fails, the failure
// is logged, the session is reset, and the error is returned. The returned
// error is always an *UntriangulableError.
func (s *Session) AddVertex(p Point) error {
	s.points = append(s.points, p)
	if len(s.points) < 3 {
		s.mode = ModePoints
		s.notify()
		return nil
	}

	snapshot := Polygon{Points: s.points}.Clone()
	result, err := internal.Tessellate(snapshot, s.shader)
	if err != nil {
		s.logger.Printf("can't tessellate %v: %v", snapshot.Points, err)
		s.Reset()
		return err
	}

	s.tessellation = result
	s.mode = ModeTriangles
	s.notify()
	return nil
}

// Throw away the loop and its triangulation.
func (s *Session) Reset() {
	s.points = nil
	s.tessellation = Tessellation{}
	s.mode = ModePoints
	s.notify()
}

func (s *Session) Mode() DisplayMode {
	return s.mode
}

func (s *Session) Len() int {
	return len(s.points)
}

func (s *Session) Points() []Point {
	return clonePoints(s.points)
}

func (s *Session) Triangles() []Triangle {
	if s.tessellation.Triangles == nil {
		return nil
	}
	return append([]Triangle(nil), s.tessellation.Triangles...)
}

func (s *Session) Shades() []Shade {
	if s.tessellation.Shades == nil {
		return nil
	}
	return append([]Shade(nil), s.tessellation.Shades...)
}

func (s *Session) Frame() Frame {
	return Frame{
		Mode:      s.mode,
		Points:    s.Points(),
		Triangles: s.Triangles(),
		Shades:    s.Shades(),
	}
}

func (s *Session) notify() {
	if len(s.observers) == 0 {
		return
	}
	frame := s.Frame()
	for _, fn := range s.observers {
		fn(frame)
	}
}

func clonePoints(points []Point) []Point {
	if points == nil {
		return nil
	}
	return append([]Point(nil), points...)
}
