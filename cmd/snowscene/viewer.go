package main

import (
	"time"

	"github.com/akmonengine/snowscene"
	"github.com/akmonengine/snowscene/raster"
	"github.com/hajimehoshi/ebiten/v2"
)

// viewer steps the scene once per tick and presents the raster image
type viewer struct {
	scene  *snowscene.Scene
	raster *raster.Rasterizer
	input  inputState

	last   time.Time
	frame  *ebiten.Image
	frames int
}

func newViewer(scene *snowscene.Scene, r *raster.Rasterizer) *viewer {
	return &viewer{scene: scene, raster: r}
}

func (v *viewer) Update() error {
	now := time.Now()
	var dt float64
	if !v.last.IsZero() {
		dt = now.Sub(v.last).Seconds()
	}
	v.last = now

	v.scene.Step(dt, v.input.sample())
	if v.scene.CloseRequested() {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.raster.Clear()
	v.scene.Render(v.raster)
	v.raster.Flush()

	if v.frame == nil {
		v.frame = ebiten.NewImage(v.raster.Size())
	}
	v.frame.WritePixels(v.raster.Image().Pix)
	screen.DrawImage(v.frame, nil)
	v.frames++
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.raster.Size()
}
