package snowscene

import (
	"math/rand/v2"

	"github.com/akmonengine/snowscene/camera"
	"github.com/akmonengine/snowscene/figure"
	"github.com/akmonengine/snowscene/instance"
	"github.com/akmonengine/snowscene/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_ASPECT = 1024.0 / 768.0

// Scene owns the camera, the figure and the static ground geometry, and
// turns one frame of input into state changes and events.
type Scene struct {
	Camera *camera.Camera
	Figure *figure.Snowman

	// Ground grid and coordinate axes, always drawn as lines
	Grid []instance.Instance
	Axes [3]instance.Instance

	// Mode is the topology used to draw the figure
	Mode   mesh.Topology
	Aspect float64
	// Rand feeds figure repositioning
	Rand figure.Rand

	Events Events

	closeRequested bool
}

// NewScene creates a scene with the default grid and axes around the given
// camera and figure, drawing the figure as triangles.
func NewScene(cam *camera.Camera, snowman *figure.Snowman) *Scene {
	return &Scene{
		Camera: cam,
		Figure: snowman,
		Grid:   instance.Grid(instance.DEFAULT_GRID_HALF_EXTENT, instance.DEFAULT_GRID_LINE_LENGTH),
		Axes:   instance.Axes(instance.DEFAULT_AXIS_LENGTH),
		Mode:   mesh.Triangles,
		Aspect: DEFAULT_ASPECT,
		Rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Events: NewEvents(),
	}
}

// DefaultScene creates a scene with the camera at its starting point and the
// figure at the origin.
func DefaultScene() *Scene {
	return NewScene(camera.NewCamera(mgl64.Vec3{5.5, 5.5, 2}, 90, 0), figure.NewSnowman())
}

// CloseRequested reports whether the exit action has been seen
func (s *Scene) CloseRequested() bool {
	return s.closeRequested
}

// Step applies one frame of input: figure and render actions first, then the
// camera. Events raised by the step are delivered before it returns.
func (s *Scene) Step(dt float64, in Input) {
	s.applyFigure(in.Actions)
	s.applyMode(in.Actions)

	if in.Actions.Has(ActionResetCamera) {
		s.Camera.Reset()
		s.Events.emit(CameraResetEvent{})
	}

	s.Camera.Update(dt, in.MouseDX, in.MouseDY, in.Buttons)
	s.Camera.Fly(dt,
		in.Actions.axis(ActionFlyForward, ActionFlyBackward),
		in.Actions.axis(ActionStrafeRight, ActionStrafeLeft),
		in.Fast,
	)

	if in.Actions.Has(ActionExit) && !s.closeRequested {
		s.closeRequested = true
		s.Events.emit(CloseRequestedEvent{})
	}

	s.Events.flush()
}

func (s *Scene) applyFigure(held Action) {
	if held.Has(ActionReposition) {
		s.Figure.Reposition(s.Rand)
		s.Events.emit(FigureRepositionedEvent{Placement: s.Figure.Placement})
	}

	if scale := held.axis(ActionGrow, ActionShrink); scale != 0 {
		before := s.Figure.Placement.Scale
		if scale > 0 {
			s.Figure.Grow()
		} else {
			s.Figure.Shrink()
		}
		if s.Figure.Placement.Scale != before {
			s.Events.emit(FigureScaledEvent{Scale: s.Figure.Placement.Scale})
		}
	}

	stepsX := held.axis(ActionMoveXPos, ActionMoveXNeg)
	stepsZ := held.axis(ActionMoveZPos, ActionMoveZNeg)
	if stepsX != 0 || stepsZ != 0 {
		s.Figure.Move(stepsX, stepsZ)
		s.Events.emit(FigureMovedEvent{Placement: s.Figure.Placement})
	}

	if held.Has(ActionReset) {
		s.Figure.Reset()
		s.Events.emit(FigureResetEvent{})
		s.setMode(mesh.Triangles)
	}
}

func (s *Scene) applyMode(held Action) {
	switch {
	case held.Has(ActionPoints):
		s.setMode(mesh.Points)
	case held.Has(ActionLines):
		s.setMode(mesh.Lines)
	case held.Has(ActionTriangles):
		s.setMode(mesh.Triangles)
	}
}

// setMode changes the figure topology, sending an event only on change
func (s *Scene) setMode(mode mesh.Topology) {
	if s.Mode == mode {
		return
	}
	s.Events.emit(RenderModeChangedEvent{From: s.Mode, To: mode})
	s.Mode = mode
}

// SetGrid replaces the ground grid
func (s *Scene) SetGrid(halfExtent int, lineLength float64) {
	s.Grid = instance.Grid(halfExtent, lineLength)
}

// SetAxes replaces the coordinate axes
func (s *Scene) SetAxes(length float64) {
	s.Axes = instance.Axes(length)
}
