package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/akmonengine/snowscene"
	"github.com/akmonengine/snowscene/camera"
	"github.com/akmonengine/snowscene/figure"
	"github.com/akmonengine/snowscene/mesh"
)

// SceneDebugger instruments the walkthrough
type SceneDebugger interface {
	DebugCamera(cam *camera.Camera)
	DebugFigure(snowman *figure.Snowman)
	DebugFrame(frame snowscene.Frame)
	DebugEvent(event snowscene.Event)
}

// SimpleDebugger prints everything to stdout
type SimpleDebugger struct{}

func (d *SimpleDebugger) DebugCamera(cam *camera.Camera) {
	fmt.Printf("🎥 Camera:\n")
	fmt.Printf("   Position: %v\n", cam.Position)
	fmt.Printf("   Angles: horizontal=%.2f vertical=%.2f\n", cam.HorizontalAngle, cam.VerticalAngle)
	fmt.Printf("   Look: %v (len=%.6f)\n", cam.LookDirection(), cam.LookDirection().Len())
}

func (d *SimpleDebugger) DebugFigure(snowman *figure.Snowman) {
	bounds := snowman.Bounds()
	fmt.Printf("⛄ Figure:\n")
	fmt.Printf("   Placement: x=%.2f z=%.2f scale=%.2f\n", snowman.Placement.X, snowman.Placement.Z, snowman.Placement.Scale)
	fmt.Printf("   Bounds: %v -> %v\n", bounds.Min, bounds.Max)
	for _, part := range snowman.Parts() {
		fmt.Printf("   %-10s translation=%v scale=%v\n", part.Name, part.Instance.Translation, part.Instance.Scale)
	}
}

func (d *SimpleDebugger) DebugFrame(frame snowscene.Frame) {
	counts := map[mesh.Topology]int{}
	for _, draw := range frame.Draws {
		counts[draw.Topology]++
	}
	fmt.Printf("🖼️  Frame: %d draws (triangles=%d lines=%d points=%d)\n",
		len(frame.Draws), counts[mesh.Triangles], counts[mesh.Lines], counts[mesh.Points])
}

func (d *SimpleDebugger) DebugEvent(event snowscene.Event) {
	fmt.Printf("📣 Event: %T %+v\n", event, event)
}

// step is one scripted frame of input
type step struct {
	label string
	input snowscene.Input
}

// SetupScene creates the default scene with a seeded random source
func SetupScene() (*snowscene.Scene, SceneDebugger) {
	debugger := &SimpleDebugger{}

	scene := snowscene.DefaultScene()
	scene.Rand = rand.New(rand.NewPCG(42, 1337))
	scene.Events.SubscribeAll(debugger.DebugEvent)

	return scene, debugger
}

// Walkthrough drives the scene through a fixed script and prints its state
func Walkthrough() {
	fmt.Println("🧪 Walkthrough: snowman and camera")
	fmt.Println("==================================")

	scene, debugger := SetupScene()

	fmt.Printf("Initial state:\n")
	debugger.DebugCamera(scene.Camera)
	debugger.DebugFigure(scene.Figure)
	debugger.DebugFrame(scene.Frame())
	fmt.Println()

	const dt float64 = 1.0 / 60.0
	script := []step{
		{"move toward +X", snowscene.Input{Actions: snowscene.ActionMoveXPos}},
		{"move toward +Z", snowscene.Input{Actions: snowscene.ActionMoveZPos}},
		{"grow", snowscene.Input{Actions: snowscene.ActionGrow}},
		{"pan right", snowscene.Input{Buttons: camera.Pan, MouseDX: 30}},
		{"tilt down", snowscene.Input{Buttons: camera.Tilt, MouseDY: 20}},
		{"dolly in", snowscene.Input{Buttons: camera.Zoom, MouseDY: -40}},
		{"fly forward fast", snowscene.Input{Actions: snowscene.ActionFlyForward, Fast: true}},
		{"lines", snowscene.Input{Actions: snowscene.ActionLines}},
		{"reposition", snowscene.Input{Actions: snowscene.ActionReposition}},
		{"reset figure", snowscene.Input{Actions: snowscene.ActionReset}},
		{"reset camera", snowscene.Input{Actions: snowscene.ActionResetCamera}},
		{"exit", snowscene.Input{Actions: snowscene.ActionExit}},
	}

	for i, s := range script {
		fmt.Printf("--- STEP %d: %s ---\n", i+1, s.label)
		scene.Step(dt, s.input)

		debugger.DebugCamera(scene.Camera)
		fmt.Printf("⛄ Placement: %+v, mode: %v\n", scene.Figure.Placement, scene.Mode)
		fmt.Println()

		if scene.CloseRequested() {
			break
		}
	}

	fmt.Printf("Final state:\n")
	debugger.DebugFigure(scene.Figure)
	debugger.DebugFrame(scene.Frame())
	fmt.Println("Walkthrough done!")
}

func main() {
	Walkthrough()
}
