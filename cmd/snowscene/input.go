package main

import (
	"github.com/akmonengine/snowscene"
	"github.com/akmonengine/snowscene/camera"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	key    ebiten.Key
	action snowscene.Action
	// repeat keeps the action active every frame while the key is held
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyW, snowscene.ActionMoveXNeg, true},
	{ebiten.KeyS, snowscene.ActionMoveXPos, true},
	{ebiten.KeyA, snowscene.ActionMoveZPos, true},
	{ebiten.KeyD, snowscene.ActionMoveZNeg, true},
	{ebiten.KeyU, snowscene.ActionGrow, true},
	{ebiten.KeyJ, snowscene.ActionShrink, true},
	{ebiten.KeySpace, snowscene.ActionReposition, false},
	{ebiten.KeyP, snowscene.ActionPoints, false},
	{ebiten.KeyL, snowscene.ActionLines, false},
	{ebiten.KeyT, snowscene.ActionTriangles, false},
	{ebiten.KeyEnter, snowscene.ActionReset, false},
	{ebiten.KeyHome, snowscene.ActionResetCamera, false},
	{ebiten.KeyArrowUp, snowscene.ActionFlyForward, true},
	{ebiten.KeyArrowDown, snowscene.ActionFlyBackward, true},
	{ebiten.KeyArrowLeft, snowscene.ActionStrafeLeft, true},
	{ebiten.KeyArrowRight, snowscene.ActionStrafeRight, true},
	{ebiten.KeyEscape, snowscene.ActionExit, false},
}

var buttons = []struct {
	button ebiten.MouseButton
	camera camera.Buttons
}{
	{ebiten.MouseButtonRight, camera.Pan},
	{ebiten.MouseButtonMiddle, camera.Tilt},
	{ebiten.MouseButtonLeft, camera.Zoom},
}

// inputState turns ebiten's polled state into one snowscene.Input per tick
type inputState struct {
	cursorX, cursorY int
	tracking         bool
}

func (s *inputState) sample() snowscene.Input {
	var in snowscene.Input

	for _, b := range bindings {
		if b.repeat && ebiten.IsKeyPressed(b.key) || !b.repeat && inpututil.IsKeyJustPressed(b.key) {
			in.Actions |= b.action
		}
	}
	in.Fast = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)

	for _, b := range buttons {
		if ebiten.IsMouseButtonPressed(b.button) {
			in.Buttons |= b.camera
		}
	}

	x, y := ebiten.CursorPosition()
	if s.tracking {
		in.MouseDX = float64(x - s.cursorX)
		in.MouseDY = float64(y - s.cursorY)
	}
	s.cursorX, s.cursorY, s.tracking = x, y, true

	return in
}
