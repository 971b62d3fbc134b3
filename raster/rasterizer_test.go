package raster

import (
	"image"
	"image/color"
	"math"
	"sync/atomic"
	"testing"

	"github.com/akmonengine/snowscene"
	"github.com/akmonengine/snowscene/camera"
	"github.com/akmonengine/snowscene/instance"
	"github.com/akmonengine/snowscene/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

const size = 64

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
)

// newTestRasterizer looks down -Z from (0, 0, 3)
func newTestRasterizer() *Rasterizer {
	r := New(size, size)
	cam := camera.NewCamera(mgl64.Vec3{0, 0, 3}, 90, 0)
	r.SetView(cam.ViewMatrix(), cam.Projection(1))
	return r
}

func countColor(img *image.NRGBA, c color.NRGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.NRGBAAt(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestTask(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		items   int
	}{
		{"single worker", 1, 10},
		{"several workers", 4, 10},
		{"more workers than items", 16, 3},
		{"no workers", 0, 5},
		{"no items", 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]int, tt.items)
			for i := range data {
				data[i] = i + 1
			}

			var sum atomic.Int64
			task(tt.workers, data, func(v int) {
				sum.Add(int64(v))
			})

			if want := int64(tt.items * (tt.items + 1) / 2); sum.Load() != want {
				t.Errorf("sum = %d, want %d", sum.Load(), want)
			}
		})
	}
}

func TestNewFrameBuffer(t *testing.T) {
	fb := NewFrameBuffer(4, 3)

	if len(fb.Color) != 4*3*4 || len(fb.ZBuf) != 4*3 {
		t.Fatalf("buffer sizes = %d, %d, want 48, 12", len(fb.Color), len(fb.ZBuf))
	}
	for i, z := range fb.ZBuf {
		if !math.IsInf(z, 1) {
			t.Fatalf("ZBuf[%d] = %v, want +inf", i, z)
		}
	}
	for i := 3; i < len(fb.Color); i += 4 {
		if fb.Color[i] != 255 {
			t.Fatalf("alpha at %d = %d, want 255", i, fb.Color[i])
		}
	}
}

func TestFrameBuffer_Plot(t *testing.T) {
	fb := NewFrameBuffer(2, 2)

	fb.plot(1, 1, 0.5, mgl64.Vec3{1, 0, 0})
	fb.plot(1, 1, 0.7, mgl64.Vec3{0, 1, 0})
	fb.plot(1, 1, 2, mgl64.Vec3{0, 0, 1})
	fb.plot(5, -1, 0, mgl64.Vec3{1, 1, 1})

	idx := (1*2 + 1) * 4
	if got := fb.Color[idx : idx+4]; got[0] != 255 || got[1] != 0 || got[2] != 0 {
		t.Errorf("pixel = %v, want red", got)
	}
	if fb.ZBuf[3] != 0.5 {
		t.Errorf("depth = %v, want 0.5", fb.ZBuf[3])
	}
}

func TestRasterizer_Triangles(t *testing.T) {
	r := newTestRasterizer()
	r.Draw(instance.Identity().Matrix(), mesh.Triangles, mesh.White)
	r.Flush()
	img := r.Image()

	if img.Bounds() != image.Rect(0, 0, size, size) {
		t.Fatalf("Bounds() = %v", img.Bounds())
	}
	if got := img.NRGBAAt(size/2, size/2); got != white {
		t.Errorf("centre pixel = %v, want white", got)
	}
	if got := img.NRGBAAt(0, 0); got != black {
		t.Errorf("corner pixel = %v, want background", got)
	}
}

func TestRasterizer_DepthTest(t *testing.T) {
	far := instance.Identity().Matrix()
	near := instance.Instance{Translation: mgl64.Vec3{0, 0, 1}, Scale: mgl64.Vec3{0.5, 0.5, 0.5}}.Matrix()

	tests := []struct {
		name  string
		order []mgl64.Mat4
		rngs  []mesh.Range
	}{
		{"far first", []mgl64.Mat4{far, near}, []mesh.Range{mesh.Red, mesh.Green}},
		{"near first", []mgl64.Mat4{near, far}, []mesh.Range{mesh.Green, mesh.Red}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRasterizer()
			for i := range tt.order {
				r.Draw(tt.order[i], mesh.Triangles, tt.rngs[i])
			}
			r.Flush()

			if got := r.Image().NRGBAAt(size/2, size/2); got != green {
				t.Errorf("centre pixel = %v, want the nearer green cube", got)
			}
		})
	}
}

func TestRasterizer_DropsGeometryBehindCamera(t *testing.T) {
	r := newTestRasterizer()
	behind := instance.Instance{Translation: mgl64.Vec3{0, 0, 6}, Scale: mgl64.Vec3{1, 1, 1}}.Matrix()

	for _, topology := range []mesh.Topology{mesh.Triangles, mesh.Lines, mesh.Points} {
		r.Draw(behind, topology, mesh.White)
	}
	r.Flush()

	if n := countColor(r.Image(), black); n != size*size {
		t.Errorf("%d background pixels, want %d", n, size*size)
	}
}

func TestRasterizer_Lines(t *testing.T) {
	r := newTestRasterizer()
	line := instance.Instance{Scale: mgl64.Vec3{2, 0, 0}}.Matrix()
	r.Draw(line, mesh.Lines, mesh.White)
	r.Flush()
	img := r.Image()

	if n := countColor(img, white); n < size/4 {
		t.Fatalf("%d white pixels, want a horizontal segment", n)
	}
	for y := 0; y < size; y++ {
		if y >= size/2-1 && y <= size/2 {
			continue
		}
		for x := 0; x < size; x++ {
			if img.NRGBAAt(x, y) != black {
				t.Fatalf("pixel (%d, %d) lit away from the segment", x, y)
			}
		}
	}
}

func TestRasterizer_LineCrossingNearPlane(t *testing.T) {
	r := newTestRasterizer()
	// Runs from behind the camera to far in front of it
	line := instance.Instance{Translation: mgl64.Vec3{0, -1, 0}, Scale: mgl64.Vec3{0, 0, 20}}.Matrix()
	r.Draw(line, mesh.Lines, mesh.White)
	r.Flush()

	if countColor(r.Image(), white) == 0 {
		t.Errorf("clipped segment should still be drawn")
	}
}

func TestRasterizer_Points(t *testing.T) {
	tests := []struct {
		name      string
		pointSize int
	}{
		{"one pixel", 1},
		{"default", DEFAULT_POINT_SIZE},
		{"large", 6},
	}

	var previous int
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRasterizer()
			r.PointSize = tt.pointSize
			r.Draw(instance.Identity().Matrix(), mesh.Points, mesh.White)
			r.Flush()

			n := countColor(r.Image(), white)
			if n == 0 {
				t.Fatalf("no points drawn")
			}
			if n <= previous {
				t.Errorf("%d pixels lit with size %d, want more than %d", n, tt.pointSize, previous)
			}
			previous = n
		})
	}
}

func TestRasterizer_ClearAndFlush(t *testing.T) {
	r := newTestRasterizer()
	r.Draw(instance.Identity().Matrix(), mesh.Triangles, mesh.White)
	r.Clear()
	r.Flush()

	if n := countColor(r.Image(), black); n != size*size {
		t.Errorf("Clear() should drop queued draws, %d pixels lit", size*size-n)
	}

	r.Draw(instance.Identity().Matrix(), mesh.Triangles, mesh.White)
	r.Flush()
	lit := r.Image()
	r.Flush()
	if again := r.Image(); countColor(again, white) != countColor(lit, white) {
		t.Errorf("second Flush() changed the image")
	}

	r.Background = color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	r.Clear()
	if got := r.Image().NRGBAAt(size/2, size/2); got != r.Background {
		t.Errorf("pixel after Clear() = %v, want %v", got, r.Background)
	}
}

func TestRasterizer_Workers(t *testing.T) {
	render := func(workers int) *image.NRGBA {
		r := New(size, size)
		r.Workers = workers
		snowscene.DefaultScene().Render(r)
		r.Flush()
		return r.Image()
	}

	single := render(1)
	parallel := render(8)

	if countColor(single, black) == size*size {
		t.Fatalf("default scene rendered nothing")
	}
	for i := range single.Pix {
		if single.Pix[i] != parallel.Pix[i] {
			t.Fatalf("parallel projection changed byte %d", i)
		}
	}
}

func TestClipSegment(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		t0, t1         float64
		ok             bool
	}{
		{"inside", 1, 1, 5, 5, 0, 1, true},
		{"crosses left edge", -5, 5, 5, 5, 0.5, 1, true},
		{"crosses both edges", -10, 5, 20, 5, 1.0 / 3, 2.0 / 3, true},
		{"outside", -5, -5, -1, -1, 0, 0, false},
		{"vertical outside", 12, 0, 12, 10, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t0, t1, ok := clipSegment(tt.x0, tt.y0, tt.x1, tt.y1, 10, 10)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if !mgl64.FloatEqualThreshold(t0, tt.t0, 1e-9) || !mgl64.FloatEqualThreshold(t1, tt.t1, 1e-9) {
				t.Errorf("clipSegment() = (%v, %v), want (%v, %v)", t0, t1, tt.t0, tt.t1)
			}
		})
	}
}
