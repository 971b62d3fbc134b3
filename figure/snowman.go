package figure

import (
	"github.com/akmonengine/snowscene/instance"
	"github.com/akmonengine/snowscene/mesh"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_MIN_SCALE       = 0.1
	DEFAULT_SCALE_STEP      = 0.11
	DEFAULT_MOVE_STEP       = 0.5
	DEFAULT_REPOSITION_SIZE = 50.0
)

// PartDef is a named part of the figure, expressed in the figure frame
type PartDef struct {
	Name   string
	Offset mgl64.Vec3
	Scale  mgl64.Vec3
	Range  mesh.Range
}

// SnowmanParts lists the parts of the snowman, feet on the ground at the origin
var SnowmanParts = []PartDef{
	{Name: "lower body", Offset: mgl64.Vec3{0, 1, 0}, Scale: mgl64.Vec3{1, 1, 1}, Range: mesh.White},
	{Name: "upper body", Offset: mgl64.Vec3{0, 1.75, 0}, Scale: mgl64.Vec3{0.75, 0.75, 0.75}, Range: mesh.White},
	{Name: "head", Offset: mgl64.Vec3{0, 2.3, 0}, Scale: mgl64.Vec3{0.5, 0.5, 0.5}, Range: mesh.White},
	{Name: "nose", Offset: mgl64.Vec3{0.25, 2.25, 0}, Scale: mgl64.Vec3{0.1, 0.1, 0.1}, Range: mesh.Orange},
	{Name: "arms", Offset: mgl64.Vec3{0, 2, 0}, Scale: mgl64.Vec3{0.1, 0.1, 2}, Range: mesh.White},
	{Name: "right eye", Offset: mgl64.Vec3{0.25, 2.45, -0.15}, Scale: mgl64.Vec3{0.1, 0.1, 0.1}, Range: mesh.Rainbow},
	{Name: "left eye", Offset: mgl64.Vec3{0.25, 2.45, 0.15}, Scale: mgl64.Vec3{0.1, 0.1, 0.1}, Range: mesh.Rainbow},
	{Name: "right leg", Offset: mgl64.Vec3{0, 0.25, -0.2}, Scale: mgl64.Vec3{0.15, 0.5, 0.15}, Range: mesh.White},
	{Name: "left leg", Offset: mgl64.Vec3{0, 0.25, 0.2}, Scale: mgl64.Vec3{0.15, 0.5, 0.15}, Range: mesh.White},
}

// Placement positions the whole figure on the ground plane
type Placement struct {
	X, Z  float64
	Scale float64
}

// Offset returns the world offset of the figure frame
func (p Placement) Offset() mgl64.Vec3 {
	return mgl64.Vec3{p.X, 0, p.Z}
}

// Part is a placed figure part, ready to be drawn
type Part struct {
	Name     string
	Instance instance.Instance
	Range    mesh.Range
}

// Rand is the random source used by Reposition
type Rand interface {
	Float64() float64
}

// Snowman is a rigid, non-rotating assembly of parts sharing one Placement
type Snowman struct {
	Placement Placement

	MinScale       float64
	ScaleStep      float64
	MoveStep       float64
	RepositionSize float64

	defs []PartDef
}

// NewSnowman creates a snowman at the origin with a scale of 1
func NewSnowman() *Snowman {
	return &Snowman{
		Placement:      Placement{Scale: 1},
		MinScale:       DEFAULT_MIN_SCALE,
		ScaleStep:      DEFAULT_SCALE_STEP,
		MoveStep:       DEFAULT_MOVE_STEP,
		RepositionSize: DEFAULT_REPOSITION_SIZE,
		defs:           SnowmanParts,
	}
}

// Move shifts the figure by whole steps on X and Z
func (s *Snowman) Move(stepsX, stepsZ float64) {
	s.Placement.X += stepsX * s.MoveStep
	s.Placement.Z += stepsZ * s.MoveStep
}

// Grow increases the scale by one step
func (s *Snowman) Grow() {
	s.SetScale(s.Placement.Scale + s.ScaleStep)
}

// Shrink decreases the scale by one step, never below MinScale
func (s *Snowman) Shrink() {
	s.SetScale(s.Placement.Scale - s.ScaleStep)
}

// SetScale sets the uniform scale, clamped to MinScale
func (s *Snowman) SetScale(scale float64) {
	s.Placement.Scale = max(scale, s.MinScale)
}

// Reposition moves the figure to a random point of the
// [-RepositionSize, RepositionSize] square, keeping its scale.
func (s *Snowman) Reposition(rng Rand) {
	s.Placement.X = (rng.Float64()*2 - 1) * s.RepositionSize
	s.Placement.Z = (rng.Float64()*2 - 1) * s.RepositionSize
}

// Reset puts the figure back at the origin with a scale of 1, or MinScale
// when the floor is above 1.
func (s *Snowman) Reset() {
	s.Placement = Placement{}
	s.SetScale(1)
}

// Parts returns every part placed for the current Placement
func (s *Snowman) Parts() []Part {
	offset := s.Placement.Offset()
	parts := make([]Part, len(s.defs))
	for i, def := range s.defs {
		parts[i] = Part{
			Name:     def.Name,
			Instance: instance.Part(def.Offset, def.Scale, offset, s.Placement.Scale),
			Range:    def.Range,
		}
	}
	return parts
}

// Bounds returns the box enclosing all parts
func (s *Snowman) Bounds() instance.AABB {
	bounds := instance.EmptyAABB()
	for _, part := range s.Parts() {
		bounds = bounds.Union(part.Instance.Bounds())
	}
	return bounds
}
