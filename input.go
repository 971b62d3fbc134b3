package snowscene

import "github.com/akmonengine/snowscene/camera"

// Action is a set of held keyboard actions
type Action uint32

const (
	ActionMoveXNeg Action = 1 << iota
	ActionMoveXPos
	ActionMoveZPos
	ActionMoveZNeg
	ActionGrow
	ActionShrink
	ActionReposition
	ActionPoints
	ActionLines
	ActionTriangles
	ActionReset
	ActionResetCamera
	ActionFlyForward
	ActionFlyBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionExit
)

// Has reports whether every action of a is held
func (held Action) Has(a Action) bool {
	return held&a == a
}

// axis returns +1, -1 or 0 depending on which of the two opposite actions is held
func (held Action) axis(positive, negative Action) float64 {
	var v float64
	if held.Has(positive) {
		v++
	}
	if held.Has(negative) {
		v--
	}
	return v
}

// Input is the state sampled once per frame
type Input struct {
	Actions Action
	Buttons camera.Buttons
	// Mouse movement since the previous frame, in pixels
	MouseDX, MouseDY float64
	// Fast selects the camera fast speed for flying
	Fast bool
}
