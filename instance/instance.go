package instance

import "github.com/go-gl/mathgl/mgl64"

// Instance places the unit cube in world space.
// There is no rotation: an instance can only be moved and resized.
type Instance struct {
	Translation mgl64.Vec3
	Scale       mgl64.Vec3
}

// Identity returns the instance leaving the unit cube untouched
func Identity() Instance {
	return Instance{Scale: mgl64.Vec3{1, 1, 1}}
}

// Matrix returns the world matrix T * S of the instance
func (i Instance) Matrix() mgl64.Mat4 {
	t := i.Translation
	s := i.Scale
	return mgl64.Translate3D(t.X(), t.Y(), t.Z()).Mul4(mgl64.Scale3D(s.X(), s.Y(), s.Z()))
}

// Bounds returns the axis-aligned box covered by the scaled unit cube
func (i Instance) Bounds() AABB {
	half := mgl64.Vec3{abs(i.Scale.X()), abs(i.Scale.Y()), abs(i.Scale.Z())}.Mul(0.5)
	return AABB{
		Min: i.Translation.Sub(half),
		Max: i.Translation.Add(half),
	}
}

// Part places a figure part: localOffset and localScale are expressed in the
// figure frame, which is scaled by globalScale then moved to globalOffset.
// Parts built with the same global values keep their relative spacing.
func Part(localOffset, localScale, globalOffset mgl64.Vec3, globalScale float64) Instance {
	return Instance{
		Translation: localOffset.Mul(globalScale).Add(globalOffset),
		Scale:       localScale.Mul(globalScale),
	}
}

// PartTransform returns the world matrix of Part
func PartTransform(localOffset, localScale, globalOffset mgl64.Vec3, globalScale float64) mgl64.Mat4 {
	return Part(localOffset, localScale, globalOffset, globalScale).Matrix()
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
