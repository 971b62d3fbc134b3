package mesh

import "github.com/go-gl/mathgl/mgl64"

// VerticesPerCube is the number of vertices of one cube drawn as 12 triangles.
const VerticesPerCube = 36

// Vertex is a position with an RGB color in [0, 1]
type Vertex struct {
	Position mgl64.Vec3
	Color    mgl64.Vec3
}

// Range selects a run of vertices inside the cube mesh
type Range struct {
	First int
	Count int
}

// Color ranges of the mesh, each one a full unit cube
var (
	White   = Range{First: 0, Count: VerticesPerCube}
	Green   = Range{First: 36, Count: VerticesPerCube}
	Red     = Range{First: 72, Count: VerticesPerCube}
	Blue    = Range{First: 108, Count: VerticesPerCube}
	Black   = Range{First: 144, Count: VerticesPerCube}
	Orange  = Range{First: 180, Count: VerticesPerCube}
	Rainbow = Range{First: 216, Count: VerticesPerCube}
)

// Topology is the primitive assembly used by a draw call
type Topology int

const (
	Triangles Topology = iota
	Lines
	Points
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case Points:
		return "points"
	}
	return "unknown"
}

// ParseTopology returns the topology named s and false when s is unknown.
func ParseTopology(s string) (Topology, bool) {
	for _, t := range []Topology{Triangles, Lines, Points} {
		if t.String() == s {
			return t, true
		}
	}
	return Triangles, false
}

// face lists the four corners of a cube face, counter-clockwise seen from outside
type face [4]mgl64.Vec3

var cubeFaces = [6]face{
	// -X
	{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
	// -Z
	{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}},
	// -Y
	{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
	// +Z
	{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
	// +X
	{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},
	// +Y
	{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},
}

// rainbowColors gives each face of the rainbow cube its own color
var rainbowColors = [6]mgl64.Vec3{
	{1, 0, 0},
	{1, 0.5, 0},
	{1, 1, 0},
	{0, 1, 0},
	{0, 0, 1},
	{0.5, 0, 1},
}

// Cube returns the vertices of the seven colored unit cubes, laid out back to
// back in the order of the exported ranges.
func Cube() []Vertex {
	vertices := make([]Vertex, 0, 7*VerticesPerCube)

	solid := []mgl64.Vec3{
		{1, 1, 1},      // white
		{0, 1, 0},      // green
		{1, 0, 0},      // red
		{0, 0, 1},      // blue
		{0, 0, 0},      // black
		{1, 0.55, 0.1}, // orange
	}
	for _, color := range solid {
		vertices = appendCube(vertices, func(int) mgl64.Vec3 { return color })
	}
	vertices = appendCube(vertices, func(f int) mgl64.Vec3 { return rainbowColors[f] })

	return vertices
}

func appendCube(vertices []Vertex, colorOf func(face int) mgl64.Vec3) []Vertex {
	for i, f := range cubeFaces {
		c := colorOf(i)
		vertices = append(vertices,
			Vertex{f[0], c}, Vertex{f[1], c}, Vertex{f[2], c},
			Vertex{f[0], c}, Vertex{f[2], c}, Vertex{f[3], c},
		)
	}
	return vertices
}

// Slice returns the vertices selected by r, clamped to the bounds of vertices.
func (r Range) Slice(vertices []Vertex) []Vertex {
	first := max(0, min(r.First, len(vertices)))
	last := max(first, min(r.First+r.Count, len(vertices)))
	return vertices[first:last]
}
