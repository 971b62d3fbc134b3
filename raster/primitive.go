package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Smallest clip-space w accepted before the perspective divide
const wEpsilon = 1e-9

// clipVertex is a vertex after the model-view-projection transform
type clipVertex struct {
	Position mgl64.Vec4
	Color    mgl64.Vec3
}

// inFront reports whether the vertex is on the visible side of the near plane
func (v clipVertex) inFront() bool {
	return v.Position.W() > wEpsilon && v.Position.Z() >= -v.Position.W()
}

func (v clipVertex) lerp(to clipVertex, t float64) clipVertex {
	return clipVertex{
		Position: v.Position.Add(to.Position.Sub(v.Position).Mul(t)),
		Color:    v.Color.Add(to.Color.Sub(v.Color).Mul(t)),
	}
}

// screenVertex is a vertex in pixel coordinates, y pointing down, with its NDC depth
type screenVertex struct {
	X, Y, Z float64
	Color   mgl64.Vec3
}

func (fb *FrameBuffer) toScreen(v clipVertex) screenVertex {
	ndc := v.Position.Vec3().Mul(1 / v.Position.W())
	return screenVertex{
		X:     (ndc.X() + 1) * 0.5 * float64(fb.Width),
		Y:     (1 - ndc.Y()) * 0.5 * float64(fb.Height),
		Z:     ndc.Z(),
		Color: v.Color,
	}
}

// rasterizeTriangle fills a triangle with barycentric colour and depth
// interpolation, sampling pixel centres. Both windings are drawn.
func rasterizeTriangle(fb *FrameBuffer, a, b, c clipVertex) {
	if !a.inFront() || !b.inFront() || !c.inFront() {
		return
	}
	v0, v1, v2 := fb.toScreen(a), fb.toScreen(b), fb.toScreen(c)

	minX := max(int(math.Floor(min(v0.X, v1.X, v2.X))), 0)
	maxX := min(int(math.Ceil(max(v0.X, v1.X, v2.X))), fb.Width-1)
	minY := max(int(math.Floor(min(v0.Y, v1.Y, v2.Y))), 0)
	maxY := min(int(math.Ceil(max(v0.Y, v1.Y, v2.Y))), fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	det := (v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y)
	if det > -1e-12 && det < 1e-12 {
		return
	}
	invDet := 1.0 / det

	dy12 := v1.Y - v2.Y
	dx21 := v2.X - v1.X
	dy20 := v2.Y - v0.Y
	dx02 := v0.X - v2.X

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) + 0.5 - v2.Y
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - v2.X
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.Z + w1*v1.Z + w2*v2.Z
			col := v0.Color.Mul(w0).Add(v1.Color.Mul(w1)).Add(v2.Color.Mul(w2))
			fb.plot(sx, sy, z, col)
		}
	}
}

// rasterizeLine draws a segment one pixel wide, clipped against the near
// plane and then the screen.
func rasterizeLine(fb *FrameBuffer, a, b clipVertex) {
	da := a.Position.Z() + a.Position.W()
	db := b.Position.Z() + b.Position.W()
	if da < 0 && db < 0 {
		return
	}
	if da < 0 {
		a = a.lerp(b, da/(da-db))
	} else if db < 0 {
		b = b.lerp(a, db/(db-da))
	}
	if a.Position.W() <= wEpsilon || b.Position.W() <= wEpsilon {
		return
	}

	p0, p1 := fb.toScreen(a), fb.toScreen(b)
	t0, t1, ok := clipSegment(p0.X, p0.Y, p1.X, p1.Y, float64(fb.Width), float64(fb.Height))
	if !ok {
		return
	}
	p0, p1 = lerpScreen(p0, p1, t0), lerpScreen(p0, p1, t1)

	dx, dy := p1.X-p0.X, p1.Y-p0.Y
	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		fb.plot(int(math.Floor(p0.X)), int(math.Floor(p0.Y)), p0.Z, p0.Color)
		return
	}

	for i := 0; i <= steps; i++ {
		p := lerpScreen(p0, p1, float64(i)/float64(steps))
		fb.plot(int(math.Floor(p.X)), int(math.Floor(p.Y)), p.Z, p.Color)
	}
}

// rasterizePoint draws a size x size square centred on the vertex
func rasterizePoint(fb *FrameBuffer, v clipVertex, size int) {
	if !v.inFront() {
		return
	}
	p := fb.toScreen(v)
	size = max(size, 1)

	x0 := int(math.Floor(p.X)) - (size-1)/2
	y0 := int(math.Floor(p.Y)) - (size-1)/2
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			fb.plot(x, y, p.Z, p.Color)
		}
	}
}

func lerpScreen(a, b screenVertex, t float64) screenVertex {
	return screenVertex{
		X:     a.X + (b.X-a.X)*t,
		Y:     a.Y + (b.Y-a.Y)*t,
		Z:     a.Z + (b.Z-a.Z)*t,
		Color: a.Color.Add(b.Color.Sub(a.Color).Mul(t)),
	}
}

// clipSegment clips the segment to [0, w] x [0, h] (Liang-Barsky) and returns
// the parameters of the kept part.
func clipSegment(x0, y0, x1, y1, w, h float64) (float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	for _, edge := range [4][2]float64{
		{-dx, x0},
		{dx, w - x0},
		{-dy, y0},
		{dy, h - y0},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	return t0, t1, true
}
