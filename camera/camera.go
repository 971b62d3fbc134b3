package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_SPEED         = 1.0
	DEFAULT_ANGULAR_SPEED = 60.0 // degrees per pixel per second
	DEFAULT_MAX_PITCH     = 85.0
	// PITCH_LIMIT caps MaxPitch so the look direction never reaches Up
	PITCH_LIMIT = 89.9

	DEFAULT_FOV_Y = 70.0 // degrees
	DEFAULT_NEAR  = 0.01
	DEFAULT_FAR   = 100.0
)

// Up is the constant up vector of the camera
var Up = mgl64.Vec3{0, 1, 0}

// Buttons is the set of held mouse buttons driving the camera
type Buttons uint8

const (
	// Pan turns the camera horizontally from the horizontal mouse delta
	Pan Buttons = 1 << iota
	// Tilt turns the camera vertically from the vertical mouse delta
	Tilt
	// Zoom moves the camera along its look direction from the vertical mouse delta
	Zoom
)

// Has reports whether every button of b is held.
func (held Buttons) Has(b Buttons) bool {
	return held&b == b
}

// Lens holds the projection parameters
type Lens struct {
	FovY float64 // degrees
	Near float64
	Far  float64
}

// Camera is a free-look camera driven by horizontal and vertical angles, in degrees.
// The look direction is always derived from both angles.
type Camera struct {
	Position        mgl64.Vec3
	HorizontalAngle float64
	VerticalAngle   float64

	Speed        float64
	FastSpeed    float64
	AngularSpeed float64
	// MaxPitch bounds the vertical angle to [-MaxPitch, MaxPitch], itself
	// within [0, PITCH_LIMIT]. Set it with SetMaxPitch to re-clamp the pose.
	MaxPitch float64

	Lens Lens

	initial pose
}

// pose is the state restored by Reset
type pose struct {
	Position        mgl64.Vec3
	HorizontalAngle float64
	VerticalAngle   float64
}

// NewCamera creates a camera at position, looking along the given angles,
// with default speeds.
func NewCamera(position mgl64.Vec3, horizontalAngle, verticalAngle float64) *Camera {
	c := &Camera{
		Position:        position,
		HorizontalAngle: wrapDegrees(horizontalAngle),
		Speed:           DEFAULT_SPEED,
		FastSpeed:       2 * DEFAULT_SPEED,
		AngularSpeed:    DEFAULT_ANGULAR_SPEED,
		MaxPitch:        DEFAULT_MAX_PITCH,
		Lens: Lens{
			FovY: DEFAULT_FOV_Y,
			Near: DEFAULT_NEAR,
			Far:  DEFAULT_FAR,
		},
	}
	c.VerticalAngle = c.clampPitch(verticalAngle)
	c.capture()

	return c
}

// NewCameraWithPitch creates a camera like NewCamera, clamping verticalAngle
// to maxPitch instead of DEFAULT_MAX_PITCH.
func NewCameraWithPitch(position mgl64.Vec3, horizontalAngle, verticalAngle, maxPitch float64) *Camera {
	c := NewCamera(position, horizontalAngle, 0)
	c.MaxPitch = maxPitch
	c.VerticalAngle = c.clampPitch(verticalAngle)
	c.capture()

	return c
}

// SetMaxPitch changes the pitch bound and re-clamps the current vertical
// angle and the one restored by Reset.
func (c *Camera) SetMaxPitch(maxPitch float64) {
	c.MaxPitch = maxPitch
	c.VerticalAngle = c.clampPitch(c.VerticalAngle)
	c.initial.VerticalAngle = c.clampPitch(c.initial.VerticalAngle)
}

// UpdateOrientation turns the camera from the mouse delta, scaled by the frame time.
// The horizontal angle only follows dx while Pan is held, the vertical angle
// only follows dy while Tilt is held.
func (c *Camera) UpdateOrientation(dt, dx, dy float64, held Buttons) {
	if held.Has(Pan) {
		c.HorizontalAngle = wrapDegrees(c.HorizontalAngle - dx*c.AngularSpeed*dt)
	}
	if held.Has(Tilt) {
		c.VerticalAngle = c.clampPitch(c.VerticalAngle - dy*c.AngularSpeed*dt)
	}
}

// Dolly moves the camera along its look direction while Zoom is held.
// Moving the mouse down pulls the camera back.
func (c *Camera) Dolly(dt, dy float64, held Buttons) {
	if !held.Has(Zoom) {
		return
	}
	c.Position = c.Position.Sub(c.LookDirection().Mul(dy * dt * c.FastSpeed))
}

// Fly moves the camera along its look direction and its right vector.
// forward and right are in [-1, 1]; the distance is CurrentSpeed(fast) * dt.
func (c *Camera) Fly(dt, forward, right float64, fast bool) {
	if forward == 0 && right == 0 {
		return
	}
	look := c.LookDirection()
	side := look.Cross(Up).Normalize()
	step := c.CurrentSpeed(fast) * dt

	c.Position = c.Position.Add(look.Mul(forward * step)).Add(side.Mul(right * step))
}

// Update applies one frame of mouse input: orientation first, then dolly.
func (c *Camera) Update(dt, dx, dy float64, held Buttons) {
	c.UpdateOrientation(dt, dx, dy, held)
	c.Dolly(dt, dy, held)
}

// LookDirection returns the unit vector the camera looks along.
// A horizontal angle of 0 looks along +X, a positive vertical angle tilts toward +Y.
func (c *Camera) LookDirection() mgl64.Vec3 {
	theta := mgl64.DegToRad(c.HorizontalAngle)
	phi := mgl64.DegToRad(c.VerticalAngle)

	sinTheta, cosTheta := math.Sincos(theta)
	sinPhi, cosPhi := math.Sincos(phi)

	return mgl64.Vec3{cosPhi * cosTheta, sinPhi, -cosPhi * sinTheta}
}

// ViewMatrix returns the right-handed look-at matrix of the camera
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Position.Add(c.LookDirection()), Up)
}

// Projection returns the perspective matrix of the lens for the given aspect ratio
func (c *Camera) Projection(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Lens.FovY), aspect, c.Lens.Near, c.Lens.Far)
}

// CurrentSpeed returns FastSpeed when fast is set, Speed otherwise
func (c *Camera) CurrentSpeed(fast bool) float64 {
	if fast {
		return c.FastSpeed
	}
	return c.Speed
}

// Aim turns the camera toward target, keeping its position.
// Nothing happens when target is the camera position.
func (c *Camera) Aim(target mgl64.Vec3) {
	direction := target.Sub(c.Position)
	length := direction.Len()
	if length < 1e-9 {
		return
	}
	direction = direction.Mul(1 / length)

	c.VerticalAngle = c.clampPitch(mgl64.RadToDeg(math.Asin(mgl64.Clamp(direction.Y(), -1, 1))))
	c.HorizontalAngle = wrapDegrees(mgl64.RadToDeg(math.Atan2(-direction.Z(), direction.X())))
}

// Reset restores the position and angles the camera was created with
func (c *Camera) Reset() {
	c.Position = c.initial.Position
	c.HorizontalAngle = c.initial.HorizontalAngle
	c.VerticalAngle = c.initial.VerticalAngle
}

func (c *Camera) clampPitch(angle float64) float64 {
	limit := mgl64.Clamp(c.MaxPitch, 0, PITCH_LIMIT)
	return mgl64.Clamp(angle, -limit, limit)
}

// capture records the current pose as the one restored by Reset
func (c *Camera) capture() {
	c.initial = pose{
		Position:        c.Position,
		HorizontalAngle: c.HorizontalAngle,
		VerticalAngle:   c.VerticalAngle,
	}
}

// wrapDegrees brings angle into [-180, 180]
func wrapDegrees(angle float64) float64 {
	return math.Remainder(angle, 360)
}
