package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/akmonengine/snowscene"
	"github.com/akmonengine/snowscene/camera"
	"github.com/akmonengine/snowscene/figure"
	"github.com/akmonengine/snowscene/mesh"
	"github.com/akmonengine/snowscene/raster"
	"github.com/go-gl/mathgl/mgl64"
)

// Flags are command-line overrides; zero values leave the file value alone
type Flags struct {
	Width       int
	Height      int
	Mode        string
	Format      string
	Supersample int
	Figure      *figure.Placement
}

// Resolve returns a copy of c with the non-zero flags applied
func (c Config) Resolve(f Flags) Config {
	if f.Width > 0 {
		c.Window.Width = f.Width
	}
	if f.Height > 0 {
		c.Window.Height = f.Height
	}
	if f.Mode != "" {
		c.Scene.Mode = f.Mode
	}
	if f.Format != "" {
		c.Render.Format = f.Format
	}
	if f.Supersample > 0 {
		c.Render.Supersample = f.Supersample
	}
	if f.Figure != nil {
		c.Figure.X = f.Figure.X
		c.Figure.Z = f.Figure.Z
		c.Figure.Scale = f.Figure.Scale
	}
	return c
}

// NewCamera builds the camera described by the camera section
func (c Config) NewCamera() *camera.Camera {
	cam := camera.NewCameraWithPitch(mgl64.Vec3(c.Camera.Position), c.Camera.Horizontal, c.Camera.Vertical, c.Camera.MaxPitch)
	cam.Speed = c.Camera.Speed
	cam.FastSpeed = c.Camera.FastSpeed
	cam.AngularSpeed = c.Camera.AngularSpeed
	cam.Lens = camera.Lens{FovY: c.Camera.FovY, Near: c.Camera.Near, Far: c.Camera.Far}
	return cam
}

// NewSnowman builds the figure described by the figure section
func (c Config) NewSnowman() *figure.Snowman {
	s := figure.NewSnowman()
	s.MinScale = c.Figure.MinScale
	s.ScaleStep = c.Figure.ScaleStep
	s.MoveStep = c.Figure.MoveStep
	s.RepositionSize = c.Figure.RepositionSize
	s.Placement = figure.Placement{X: c.Figure.X, Z: c.Figure.Z}
	s.SetScale(c.Figure.Scale)
	return s
}

// NewScene validates c and builds the scene it describes
func (c Config) NewScene() (*snowscene.Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mode, _ := mesh.ParseTopology(c.Scene.Mode)

	s := snowscene.NewScene(c.NewCamera(), c.NewSnowman())
	s.SetGrid(c.Scene.GridHalfExtent, c.Scene.GridLineLength)
	s.SetAxes(c.Scene.AxisLength)
	s.Mode = mode
	s.Aspect = float64(c.Window.Width) / float64(c.Window.Height)
	return s, nil
}

// NewRasterizer creates a rasterizer of the window size times scale
func (c Config) NewRasterizer(scale int) *raster.Rasterizer {
	scale = max(scale, 1)
	r := raster.New(c.Window.Width*scale, c.Window.Height*scale)
	r.Workers = c.Render.Workers
	r.PointSize = c.Render.PointSize * scale
	r.Background = color.NRGBA{R: c.Render.Background[0], G: c.Render.Background[1], B: c.Render.Background[2], A: 255}
	r.Clear()
	return r
}

// ParseSize parses "WIDTHxHEIGHT"
func ParseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("config: size %q: want WIDTHxHEIGHT: %w", s, ErrInvalid)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(ws))
	h, errH := strconv.Atoi(strings.TrimSpace(hs))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("config: size %q: %w", s, ErrInvalid)
	}
	return w, h, nil
}

// ParsePlacement parses "x,z,scale"
func ParsePlacement(s string) (figure.Placement, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return figure.Placement{}, fmt.Errorf("config: figure %q: want x,z,scale: %w", s, ErrInvalid)
	}

	var values [3]float64
	for i, field := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return figure.Placement{}, fmt.Errorf("config: figure %q: %w", s, err)
		}
		values[i] = v
	}
	return figure.Placement{X: values[0], Z: values[1], Scale: values[2]}, nil
}
