package snowscene

import (
	"github.com/akmonengine/snowscene/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

var axisRanges = [3]mesh.Range{mesh.Red, mesh.Green, mesh.Blue}
var axisNames = [3]string{"x axis", "y axis", "z axis"}

// DrawCommand is one draw call of the cube mesh
type DrawCommand struct {
	Name     string
	World    mgl64.Mat4
	Topology mesh.Topology
	Range    mesh.Range
}

// Frame holds everything needed to draw the scene once
type Frame struct {
	View       mgl64.Mat4
	Projection mgl64.Mat4
	Draws      []DrawCommand
}

// Renderer receives the view once per frame, then one world matrix right
// before each draw call.
type Renderer interface {
	SetView(view, projection mgl64.Mat4)
	Draw(world mgl64.Mat4, topology mesh.Topology, r mesh.Range)
}

// Render hands the frame to r in draw order
func (f Frame) Render(r Renderer) {
	r.SetView(f.View, f.Projection)
	for _, d := range f.Draws {
		r.Draw(d.World, d.Topology, d.Range)
	}
}

// Frame builds the draw list: grid, axes, then the figure parts in the
// current render mode.
func (s *Scene) Frame() Frame {
	parts := s.Figure.Parts()
	draws := make([]DrawCommand, 0, len(s.Grid)+len(s.Axes)+len(parts))

	for _, line := range s.Grid {
		draws = append(draws, DrawCommand{
			Name:     "grid",
			World:    line.Matrix(),
			Topology: mesh.Lines,
			Range:    mesh.White,
		})
	}

	for i, axis := range s.Axes {
		draws = append(draws, DrawCommand{
			Name:     axisNames[i],
			World:    axis.Matrix(),
			Topology: mesh.Lines,
			Range:    axisRanges[i],
		})
	}

	for _, part := range parts {
		draws = append(draws, DrawCommand{
			Name:     part.Name,
			World:    part.Instance.Matrix(),
			Topology: s.Mode,
			Range:    part.Range,
		})
	}

	return Frame{
		View:       s.Camera.ViewMatrix(),
		Projection: s.Camera.Projection(s.Aspect),
		Draws:      draws,
	}
}

// Render builds the current frame and hands it to r
func (s *Scene) Render(r Renderer) {
	s.Frame().Render(r)
}
