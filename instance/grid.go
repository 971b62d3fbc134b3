package instance

import "github.com/go-gl/mathgl/mgl64"

const (
	DEFAULT_GRID_HALF_EXTENT = 50
	DEFAULT_GRID_LINE_LENGTH = 100.0
	DEFAULT_AXIS_LENGTH      = 5.0
)

// Axis is one of the world axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "unknown"
}

// unit returns the unit vector of the axis
func (a Axis) unit() mgl64.Vec3 {
	switch a {
	case AxisY:
		return mgl64.Vec3{0, 1, 0}
	case AxisZ:
		return mgl64.Vec3{0, 0, 1}
	}
	return mgl64.Vec3{1, 0, 0}
}

// runsAlong returns the axis followed by a grid line perpendicular to a
func (a Axis) runsAlong() Axis {
	if a == AxisX {
		return AxisZ
	}
	return AxisX
}

// GridLine returns one line perpendicular to axis, placed at index along it.
// The line runs along the other ground axis (X for Z and Y, Z for X); the cube
// is flattened to zero on every other dimension so it collapses onto a segment.
func GridLine(axis Axis, index int, length float64) Instance {
	return Instance{
		Translation: axis.unit().Mul(float64(index)),
		Scale:       axis.runsAlong().unit().Mul(length),
	}
}

// GridLines returns the lines perpendicular to axis for every index in
// [-halfExtent, halfExtent].
func GridLines(axis Axis, halfExtent int, length float64) []Instance {
	if halfExtent < 0 {
		return nil
	}

	lines := make([]Instance, 0, 2*halfExtent+1)
	for i := -halfExtent; i <= halfExtent; i++ {
		lines = append(lines, GridLine(axis, i, length))
	}
	return lines
}

// Grid returns the ground grid: the lines across Z followed by the lines across X
func Grid(halfExtent int, length float64) []Instance {
	return append(GridLines(AxisZ, halfExtent, length), GridLines(AxisX, halfExtent, length)...)
}

// AxisLine returns the instance drawing axis from the origin to length
func AxisLine(axis Axis, length float64) Instance {
	u := axis.unit()
	return Instance{
		Translation: u.Mul(length / 2),
		Scale:       u.Mul(length),
	}
}

// Axes returns the X, Y and Z axis lines, in that order
func Axes(length float64) [3]Instance {
	return [3]Instance{
		AxisLine(AxisX, length),
		AxisLine(AxisY, length),
		AxisLine(AxisZ, length),
	}
}
