package renderer

import (
	gomath "math"

	"github.com/spaghettifunk/landscape/engine/math"
)

// Pitch stays inside this many degrees of the horizon to avoid gimbal lock.
const pitchLimit = 89.0

/**
 * @brief A camera described by a position and pitch/yaw angles in degrees.
 * With no rotation it looks down -Z with +Y up.
 */
type Camera struct {
	Position math.Vec3[float64]
	// Rotation around X in degrees. Positive looks up.
	Pitch float64
	// Rotation around Y in degrees. Positive turns left.
	Yaw float64

	IsDirty bool
	world   math.Transform[float64]
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Position = math.NewVec3Zero[float64]()
	c.Pitch = 0
	c.Yaw = 0
	c.IsDirty = true
}

func (c *Camera) SetPosition(position math.Vec3[float64]) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) SetRotation(pitch, yaw float64) {
	c.Pitch = math.Clamp(pitch, -pitchLimit, pitchLimit)
	c.Yaw = yaw
	c.IsDirty = true
}

// World places the camera: pitch, then yaw, then the position.
func (c *Camera) World() math.Transform[float64] {
	if c.IsDirty {
		c.world = math.NewTransformRotateX(c.Pitch).
			Mul(math.NewTransformRotateY(c.Yaw)).
			Mul(math.NewTransformTranslate(c.Position))
		c.IsDirty = false
	}
	return c.world
}

// View maps world space into camera space.
func (c *Camera) View() math.Transform[float64] {
	return c.World().Inverse()
}

func (c *Camera) Forward() math.Vec3[float64] {
	return c.World().TransformVector(math.NewVec3(0.0, 0, -1))
}

func (c *Camera) Right() math.Vec3[float64] {
	return c.World().TransformVector(math.NewVec3(1.0, 0, 0))
}

func (c *Camera) Up() math.Vec3[float64] {
	return c.World().TransformVector(math.NewVec3(0.0, 1, 0))
}

func (c *Camera) MoveForward(amount float64) {
	c.SetPosition(c.Position.Add(c.Forward().MulScalar(amount)))
}

func (c *Camera) MoveRight(amount float64) {
	c.SetPosition(c.Position.Add(c.Right().MulScalar(amount)))
}

func (c *Camera) MoveUp(amount float64) {
	c.SetPosition(c.Position.Add(math.NewVec3(0, amount, 0)))
}

// LookAt turns the camera toward target. Nothing changes when target is the
// camera position.
func (c *Camera) LookAt(target math.Vec3[float64]) {
	d := target.Sub(c.Position)
	if d.Len2() < math.Threshold*math.Threshold {
		return
	}
	d.Normalize()
	pitch := math.RadToDeg(gomath.Asin(math.Clamp(d.Y, -1, 1)))
	yaw := math.RadToDeg(gomath.Atan2(-d.X, -d.Z))
	c.SetRotation(pitch, yaw)
}

// Orbit swings the camera angleDeg around the vertical axis through centre
// and keeps it looking at centre.
func (c *Camera) Orbit(centre math.Vec3[float64], angleDeg float64) {
	offset := c.Position.Sub(centre).RotationY(angleDeg)
	c.SetPosition(centre.Add(offset))
	c.LookAt(centre)
}

// Ray is the line of sight through the middle of the view.
func (c *Camera) Ray() math.Ray[float64] {
	return math.NewRay(c.Position, c.Forward())
}
