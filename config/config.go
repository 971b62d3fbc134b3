package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/snowscene/camera"
	"github.com/akmonengine/snowscene/export"
	"github.com/akmonengine/snowscene/figure"
	"github.com/akmonengine/snowscene/instance"
	"github.com/akmonengine/snowscene/mesh"
	"github.com/akmonengine/snowscene/raster"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation and flag parsing error
var ErrInvalid = errors.New("invalid configuration")

// Window is the output size, shared by the viewer window and snapshots
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Camera is the starting pose, speeds and lens of the camera.
// MaxPitch must lie in (0, 90).
type Camera struct {
	Position     [3]float64 `yaml:"position,flow"`
	Horizontal   float64    `yaml:"horizontal"`
	Vertical     float64    `yaml:"vertical"`
	Speed        float64    `yaml:"speed"`
	FastSpeed    float64    `yaml:"fast_speed"`
	AngularSpeed float64    `yaml:"angular_speed"`
	MaxPitch     float64    `yaml:"max_pitch"`
	FovY         float64    `yaml:"fov_y"`
	Near         float64    `yaml:"near"`
	Far          float64    `yaml:"far"`
}

// Scene holds the ground grid, the axes and the figure render mode
type Scene struct {
	GridHalfExtent int     `yaml:"grid_half_extent"`
	GridLineLength float64 `yaml:"grid_line_length"`
	AxisLength     float64 `yaml:"axis_length"`
	// Mode is the figure topology: points, lines or triangles
	Mode string `yaml:"mode"`
}

// Figure is the starting placement and the edit steps of the snowman
type Figure struct {
	X              float64 `yaml:"x"`
	Z              float64 `yaml:"z"`
	Scale          float64 `yaml:"scale"`
	MinScale       float64 `yaml:"min_scale"`
	ScaleStep      float64 `yaml:"scale_step"`
	MoveStep       float64 `yaml:"move_step"`
	RepositionSize float64 `yaml:"reposition_size"`
}

// Render configures the software rasterizer and the snapshot encoding
type Render struct {
	Workers     int      `yaml:"workers"`
	PointSize   int      `yaml:"point_size"`
	Background  [3]uint8 `yaml:"background,flow"`
	Supersample int      `yaml:"supersample"`
	Format      string   `yaml:"format"`
}

// Config is the whole configuration file
type Config struct {
	Window Window `yaml:"window"`
	Camera Camera `yaml:"camera"`
	Scene  Scene  `yaml:"scene"`
	Figure Figure `yaml:"figure"`
	Render Render `yaml:"render"`
}

// Default returns the built-in configuration, matching the package defaults
// of camera, figure, instance and raster.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Snow scene",
			Width:  1024,
			Height: 768,
		},
		Camera: Camera{
			Position:     [3]float64{5.5, 5.5, 2},
			Horizontal:   90,
			Vertical:     0,
			Speed:        camera.DEFAULT_SPEED,
			FastSpeed:    2 * camera.DEFAULT_SPEED,
			AngularSpeed: camera.DEFAULT_ANGULAR_SPEED,
			MaxPitch:     camera.DEFAULT_MAX_PITCH,
			FovY:         camera.DEFAULT_FOV_Y,
			Near:         camera.DEFAULT_NEAR,
			Far:          camera.DEFAULT_FAR,
		},
		Scene: Scene{
			GridHalfExtent: instance.DEFAULT_GRID_HALF_EXTENT,
			GridLineLength: instance.DEFAULT_GRID_LINE_LENGTH,
			AxisLength:     instance.DEFAULT_AXIS_LENGTH,
			Mode:           mesh.Triangles.String(),
		},
		Figure: Figure{
			Scale:          1,
			MinScale:       figure.DEFAULT_MIN_SCALE,
			ScaleStep:      figure.DEFAULT_SCALE_STEP,
			MoveStep:       figure.DEFAULT_MOVE_STEP,
			RepositionSize: figure.DEFAULT_REPOSITION_SIZE,
		},
		Render: Render{
			Workers:     raster.DEFAULT_WORKERS,
			PointSize:   raster.DEFAULT_POINT_SIZE,
			Supersample: 2,
			Format:      export.WebP.String(),
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value; unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate reports every invalid value, each wrapping ErrInvalid
func (c Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format+": %w", append(args, ErrInvalid)...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		invalid("camera planes near %v far %v", c.Camera.Near, c.Camera.Far)
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		invalid("camera fov_y %v", c.Camera.FovY)
	}
	if c.Camera.Speed < 0 || c.Camera.FastSpeed < 0 || c.Camera.AngularSpeed < 0 {
		invalid("negative camera speed")
	}
	if c.Camera.MaxPitch <= 0 || c.Camera.MaxPitch >= 90 {
		invalid("camera max_pitch %v", c.Camera.MaxPitch)
	}
	if c.Scene.GridHalfExtent < 0 {
		invalid("scene grid_half_extent %d", c.Scene.GridHalfExtent)
	}
	if c.Scene.GridLineLength < 0 || c.Scene.AxisLength < 0 {
		invalid("scene grid_line_length %v, axis_length %v", c.Scene.GridLineLength, c.Scene.AxisLength)
	}
	if _, ok := mesh.ParseTopology(c.Scene.Mode); !ok {
		invalid("scene mode %q", c.Scene.Mode)
	}
	if c.Figure.MinScale <= 0 {
		invalid("figure min_scale %v", c.Figure.MinScale)
	}
	if c.Figure.Scale < c.Figure.MinScale {
		invalid("figure scale %v below min_scale %v", c.Figure.Scale, c.Figure.MinScale)
	}
	if c.Figure.ScaleStep < 0 || c.Figure.MoveStep < 0 || c.Figure.RepositionSize < 0 {
		invalid("figure scale_step %v, move_step %v, reposition_size %v",
			c.Figure.ScaleStep, c.Figure.MoveStep, c.Figure.RepositionSize)
	}
	if c.Render.Workers < 1 || c.Render.PointSize < 1 || c.Render.Supersample < 1 {
		invalid("render workers %d, point_size %d, supersample %d",
			c.Render.Workers, c.Render.PointSize, c.Render.Supersample)
	}
	if _, err := export.ParseFormat(c.Render.Format); err != nil {
		invalid("render format %q", c.Render.Format)
	}

	return errors.Join(errs...)
}
