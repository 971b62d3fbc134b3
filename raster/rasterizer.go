package raster

import (
	"image"
	"image/color"

	"github.com/akmonengine/snowscene/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_WORKERS    = 1
	DEFAULT_POINT_SIZE = 3
)

// job is one queued draw call and, after projection, its clip-space vertices
type job struct {
	mvp      mgl64.Mat4
	topology mesh.Topology
	rng      mesh.Range
	clip     []clipVertex
}

// Rasterizer draws the cube mesh into a FrameBuffer. Draw calls are queued and
// rendered in submission order by Flush.
type Rasterizer struct {
	// Workers projecting queued draws in parallel during Flush
	Workers int
	// PointSize is the side in pixels of the square drawn for each point
	PointSize  int
	Background color.NRGBA

	fb       *FrameBuffer
	vertices []mesh.Vertex

	view       mgl64.Mat4
	projection mgl64.Mat4
	queue      []*job
}

// New creates a rasterizer with an identity view and projection
func New(width, height int) *Rasterizer {
	return &Rasterizer{
		Workers:    DEFAULT_WORKERS,
		PointSize:  DEFAULT_POINT_SIZE,
		Background: color.NRGBA{A: 255},
		fb:         NewFrameBuffer(width, height),
		vertices:   mesh.Cube(),
		view:       mgl64.Ident4(),
		projection: mgl64.Ident4(),
	}
}

// Size returns the framebuffer dimensions
func (r *Rasterizer) Size() (int, int) {
	return r.fb.Width, r.fb.Height
}

// SetView sets the camera matrices used by every following draw
func (r *Rasterizer) SetView(view, projection mgl64.Mat4) {
	r.view = view
	r.projection = projection
}

// Draw queues a draw of the given mesh range with the current view
func (r *Rasterizer) Draw(world mgl64.Mat4, topology mesh.Topology, rng mesh.Range) {
	r.queue = append(r.queue, &job{
		mvp:      r.projection.Mul4(r.view).Mul4(world),
		topology: topology,
		rng:      rng,
	})
}

// Flush projects the queued draws, rasterizes them in order and empties the queue
func (r *Rasterizer) Flush() {
	task(r.Workers, r.queue, func(j *job) {
		r.project(j)
	})

	for _, j := range r.queue {
		r.rasterize(j)
	}

	clear(r.queue)
	r.queue = r.queue[:0]
}

// Clear drops queued draws and resets the framebuffer to the background
func (r *Rasterizer) Clear() {
	clear(r.queue)
	r.queue = r.queue[:0]
	r.fb.Clear(r.Background)
}

// Image returns a copy of the colour buffer
func (r *Rasterizer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.fb.Width, r.fb.Height))
	copy(img.Pix, r.fb.Color)
	return img
}

// project transforms the job's vertex range to clip space
func (r *Rasterizer) project(j *job) {
	vertices := j.rng.Slice(r.vertices)
	j.clip = make([]clipVertex, len(vertices))
	for i, v := range vertices {
		j.clip[i] = clipVertex{
			Position: j.mvp.Mul4x1(v.Position.Vec4(1)),
			Color:    v.Color,
		}
	}
}

func (r *Rasterizer) rasterize(j *job) {
	switch j.topology {
	case mesh.Triangles:
		for i := 0; i+2 < len(j.clip); i += 3 {
			rasterizeTriangle(r.fb, j.clip[i], j.clip[i+1], j.clip[i+2])
		}
	case mesh.Lines:
		for i := 0; i+1 < len(j.clip); i += 2 {
			rasterizeLine(r.fb, j.clip[i], j.clip[i+1])
		}
	case mesh.Points:
		for _, v := range j.clip {
			rasterizePoint(r.fb, v, r.PointSize)
		}
	}
}
