package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/akmonengine/snowscene"
	"github.com/akmonengine/snowscene/camera"
	"github.com/akmonengine/snowscene/figure"
	"github.com/akmonengine/snowscene/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("round trip = %+v, want %+v", cfg, Default())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, c Config)
		wantErr bool
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			check: func(t *testing.T, c Config) {
				if !reflect.DeepEqual(c, Default()) {
					t.Errorf("empty document changed the defaults")
				}
			},
		},
		{
			name: "partial override",
			yaml: "window:\n  width: 640\nfigure:\n  scale: 2\n",
			check: func(t *testing.T, c Config) {
				if c.Window.Width != 640 || c.Window.Height != 768 {
					t.Errorf("window = %dx%d, want 640x768", c.Window.Width, c.Window.Height)
				}
				if c.Figure.Scale != 2 || c.Figure.MinScale != figure.DEFAULT_MIN_SCALE {
					t.Errorf("figure = %+v", c.Figure)
				}
			},
		},
		{
			name: "flow sequences",
			yaml: "camera:\n  position: [1, 2, 3]\nrender:\n  background: [10, 20, 30]\n",
			check: func(t *testing.T, c Config) {
				if c.Camera.Position != [3]float64{1, 2, 3} {
					t.Errorf("position = %v", c.Camera.Position)
				}
				if c.Render.Background != [3]uint8{10, 20, 30} {
					t.Errorf("background = %v", c.Render.Background)
				}
			},
		},
		{name: "unknown key", yaml: "window:\n  depth: 3\n", wantErr: true},
		{name: "bad type", yaml: "window:\n  width: wide\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if tt.wantErr {
				if err == nil || !strings.HasPrefix(err.Error(), "config: parse: ") {
					t.Errorf("Parse() error = %v, want a config: parse: error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			tt.check(t, c)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("scene:\n  mode: lines\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Scene.Mode != "lines" {
		t.Errorf("Mode = %q, want lines", c.Scene.Mode)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() of a missing file error = %v, want ErrNotExist", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -1 }},
		{"near beyond far", func(c *Config) { c.Camera.Near = 200 }},
		{"zero near", func(c *Config) { c.Camera.Near = 0 }},
		{"flat fov", func(c *Config) { c.Camera.FovY = 0 }},
		{"negative speed", func(c *Config) { c.Camera.Speed = -1 }},
		{"pitch at the pole", func(c *Config) { c.Camera.MaxPitch = 90 }},
		{"zero max pitch", func(c *Config) { c.Camera.MaxPitch = 0 }},
		{"negative grid line length", func(c *Config) { c.Scene.GridLineLength = -1 }},
		{"negative axis length", func(c *Config) { c.Scene.AxisLength = -1 }},
		{"negative scale step", func(c *Config) { c.Figure.ScaleStep = -0.1 }},
		{"negative move step", func(c *Config) { c.Figure.MoveStep = -0.5 }},
		{"negative reposition size", func(c *Config) { c.Figure.RepositionSize = -1 }},
		{"negative grid", func(c *Config) { c.Scene.GridHalfExtent = -1 }},
		{"unknown mode", func(c *Config) { c.Scene.Mode = "wireframe" }},
		{"zero min scale", func(c *Config) { c.Figure.MinScale = 0 }},
		{"scale below floor", func(c *Config) { c.Figure.Scale = 0.05 }},
		{"no workers", func(c *Config) { c.Render.Workers = 0 }},
		{"unknown format", func(c *Config) { c.Render.Format = "bmp" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	placement := figure.Placement{X: 3, Z: -2, Scale: 1.5}
	c := Default().Resolve(Flags{
		Width:       320,
		Mode:        "points",
		Format:      "png",
		Supersample: 4,
		Figure:      &placement,
	})

	if c.Window.Width != 320 || c.Window.Height != 768 {
		t.Errorf("window = %dx%d, want 320x768", c.Window.Width, c.Window.Height)
	}
	if c.Scene.Mode != "points" || c.Render.Format != "png" || c.Render.Supersample != 4 {
		t.Errorf("render = %+v, mode %q", c.Render, c.Scene.Mode)
	}
	if c.Figure.X != 3 || c.Figure.Z != -2 || c.Figure.Scale != 1.5 {
		t.Errorf("figure = %+v", c.Figure)
	}

	if !reflect.DeepEqual(Default().Resolve(Flags{}), Default()) {
		t.Errorf("empty flags changed the configuration")
	}
}

func TestNewScene(t *testing.T) {
	c := Default()
	c.Window.Width, c.Window.Height = 800, 400
	c.Scene.GridHalfExtent = 10
	c.Scene.Mode = "lines"
	c.Figure.X, c.Figure.Z, c.Figure.Scale = 1, 2, 3
	c.Camera.Position = [3]float64{0, 1, 0}

	s, err := c.NewScene()
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}

	if len(s.Grid) != 42 {
		t.Errorf("len(Grid) = %d, want 42", len(s.Grid))
	}
	if s.Mode != mesh.Lines {
		t.Errorf("Mode = %v, want lines", s.Mode)
	}
	if s.Aspect != 2 {
		t.Errorf("Aspect = %v, want 2", s.Aspect)
	}
	if s.Figure.Placement != (figure.Placement{X: 1, Z: 2, Scale: 3}) {
		t.Errorf("Placement = %+v", s.Figure.Placement)
	}
	if s.Camera.Position != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("camera Position = %v", s.Camera.Position)
	}

	c.Window.Width = 0
	if _, err := c.NewScene(); !errors.Is(err, ErrInvalid) {
		t.Errorf("NewScene() with an invalid config error = %v", err)
	}
}

func TestNewScene_CameraPitch(t *testing.T) {
	c := Default()
	c.Camera.MaxPitch = 89
	c.Camera.Vertical = 88

	s, err := c.NewScene()
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	if s.Camera.VerticalAngle != 88 || s.Camera.MaxPitch != 89 {
		t.Fatalf("camera pitch = %v (max %v), want 88 (max 89)", s.Camera.VerticalAngle, s.Camera.MaxPitch)
	}

	s.Step(0.1, snowscene.Input{Buttons: camera.Tilt, MouseDY: 20})
	s.Step(0.1, snowscene.Input{Actions: snowscene.ActionResetCamera})
	if s.Camera.VerticalAngle != 88 {
		t.Errorf("VerticalAngle after camera reset = %v, want 88", s.Camera.VerticalAngle)
	}
}

func TestNewScene_FigureResetKeepsFloor(t *testing.T) {
	c := Default()
	c.Figure.MinScale = 2
	c.Figure.Scale = 3

	s, err := c.NewScene()
	if err != nil {
		t.Fatalf("NewScene() error = %v", err)
	}
	s.Step(0.016, snowscene.Input{Actions: snowscene.ActionReset})

	if s.Figure.Placement.Scale != 2 {
		t.Errorf("Scale after reset = %v, want 2", s.Figure.Placement.Scale)
	}
}

func TestNewRasterizer(t *testing.T) {
	c := Default()
	c.Window.Width, c.Window.Height = 40, 30
	c.Render.Background = [3]uint8{1, 2, 3}

	r := c.NewRasterizer(2)
	if w, h := r.Size(); w != 80 || h != 60 {
		t.Errorf("Size() = %dx%d, want 80x60", w, h)
	}
	if got := r.Image().NRGBAAt(0, 0); got.R != 1 || got.G != 2 || got.B != 3 || got.A != 255 {
		t.Errorf("background = %v", got)
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		input   string
		w, h    int
		wantErr bool
	}{
		{"1024x768", 1024, 768, false},
		{"64X32", 64, 32, false},
		{"100", 0, 0, true},
		{"0x10", 0, 0, true},
		{"axb", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w, h, err := ParseSize(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSize(%q) error = %v", tt.input, err)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("ParseSize(%q) = %dx%d, want %dx%d", tt.input, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("1.5, -2, 0.5")
	if err != nil {
		t.Fatalf("ParsePlacement() error = %v", err)
	}
	if p != (figure.Placement{X: 1.5, Z: -2, Scale: 0.5}) {
		t.Errorf("ParsePlacement() = %+v", p)
	}

	for _, bad := range []string{"", "1,2", "1,2,x", "1,2,3,4"} {
		if _, err := ParsePlacement(bad); err == nil {
			t.Errorf("ParsePlacement(%q) should fail", bad)
		}
	}
}
