package raster

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // NDC depth per pixel, len = W*H, smaller is closer
}

// NewFrameBuffer allocates a framebuffer cleared to opaque black with a +inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
	}
	fb.Clear(color.NRGBA{A: 255})
	return fb
}

// Clear fills the colour buffer with c and resets every depth to +inf
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = c.R
		fb.Color[i+1] = c.G
		fb.Color[i+2] = c.B
		fb.Color[i+3] = c.A
	}
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(1)
	}
}

// plot writes one fragment if it is on screen, inside the depth range and
// closer than what the pixel already holds.
func (fb *FrameBuffer) plot(x, y int, z float64, c mgl64.Vec3) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	if z < -1 || z > 1 {
		return
	}

	zIdx := y*fb.Width + x
	if z >= fb.ZBuf[zIdx] {
		return
	}
	fb.ZBuf[zIdx] = z

	pxIdx := zIdx * 4
	fb.Color[pxIdx] = clamp255(c[0] * 255)
	fb.Color[pxIdx+1] = clamp255(c[1] * 255)
	fb.Color[pxIdx+2] = clamp255(c[2] * 255)
	fb.Color[pxIdx+3] = 255
}

func clamp255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
