package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Velocities ramp toward 1 while a pan or look key is held and bleed
// off once it is released. Both rates are divided by the current frame
// rate, so the feel does not depend on the refresh.
const (
	acceleration = 3.0
	braking      = -3.0
	maxVelocity  = 1.0

	// Vertical orbit stops within this cosine of either pole.
	gimbalLimit = 0.9

	nearPlane = 0.1
	farPlane  = 100.0
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera holds the viewing pose and the damped velocity axes that
// drive it.
type Camera struct {
	eye mgl32.Vec3
	at  mgl32.Vec3
	up  mgl32.Vec3

	fov    float32
	aspect float32
	fps    float32

	forwardVel float32
	lateralVel float32
	lookVel    float32
	orbitVel   float32
}

// New returns a camera at the default vantage point, looking at the
// origin.
func New() *Camera {
	return NewAt(mgl32.Vec3{10, 5, 0}, mgl32.Vec3{}, worldUp)
}

// NewAt returns a camera with an explicit eye, look-at point and up
// direction. Field of view starts at 1 radian with a square aspect.
func NewAt(eye, at, up mgl32.Vec3) *Camera {
	return &Camera{
		eye:    eye,
		at:     at,
		up:     up,
		fov:    1.0,
		aspect: 1.0,
		fps:    1.0,
	}
}

// SetFPS records the frame rate that scales this frame's velocity
// changes and displacements.
func (c *Camera) SetFPS(fps float32) {
	if fps <= 0 {
		fps = 1
	}
	c.fps = fps
}

// SetAspect sets the viewport width to height ratio.
func (c *Camera) SetAspect(ratio float32) {
	if ratio > 0 {
		c.aspect = ratio
	}
}

// SetFOV sets the vertical field of view in radians.
func (c *Camera) SetFOV(rad float32) {
	if rad > 0 {
		c.fov = rad
	}
}

// Decay bleeds every velocity axis toward zero. Called once per frame,
// before the frame's input events are applied.
func (c *Camera) Decay() {
	c.forwardVel = clampVelocity(c.forwardVel + braking/c.fps)
	c.lateralVel = clampVelocity(c.lateralVel + braking/c.fps)
	c.lookVel = clampVelocity(c.lookVel + braking/c.fps)
	c.orbitVel = clampVelocity(c.orbitVel + braking/c.fps)
}

func clampVelocity(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > maxVelocity {
		return maxVelocity
	}
	return v
}

func (c *Camera) ramp(v float32) float32 {
	return clampVelocity(v + acceleration/c.fps)
}

// flatForward is the view direction projected onto the XZ plane,
// normalized. Zero when the camera looks straight up or down.
func (c *Camera) flatForward() mgl32.Vec3 {
	dir := c.at.Sub(c.eye)
	dir[1] = 0
	if dir.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return dir.Normalize()
}

// PanForward moves the eye and look-at point together along the
// flattened view direction. Only the sign of direction matters; the
// magnitude of the step comes from the ramped forward velocity.
func (c *Camera) PanForward(direction float32) {
	dir := c.flatForward()
	if dir == (mgl32.Vec3{}) {
		return
	}
	c.forwardVel = c.ramp(c.forwardVel)
	sign := float32(1)
	if direction < 0 {
		sign = -1
	}
	step := dir.Mul(sign * c.forwardVel / c.fps)
	c.at = c.at.Add(step)
	c.eye = c.eye.Add(step)
}

// PanLateral strafes the eye and look-at point along the right vector
// of the flattened view direction.
func (c *Camera) PanLateral(direction float32) {
	dir := c.flatForward()
	if dir == (mgl32.Vec3{}) {
		return
	}
	right := dir.Cross(worldUp)
	if direction < 0 {
		right = right.Mul(-1)
	}
	c.lateralVel = c.ramp(c.lateralVel)
	step := right.Mul(c.lateralVel / c.fps)
	c.at = c.at.Add(step)
	c.eye = c.eye.Add(step)
}

// OrbitVertical rotates the eye about the look-at point in the
// vertical plane of the current view, by angle radians. Positive
// raises the eye. Near either pole, rotation pushing further toward
// that pole is rejected whole; the opposite direction stays free, so
// the camera can always back out.
func (c *Camera) OrbitVertical(angle float32) {
	offset := c.eye.Sub(c.at)
	if offset.Len() < 1e-6 {
		return
	}
	cosine := offset.Normalize().Dot(worldUp)
	if (cosine > gimbalLimit && angle >= 0) || (cosine < -gimbalLimit && angle <= 0) {
		return
	}
	flat := offset
	flat[1] = 0
	if flat.Len() < 1e-6 {
		return
	}
	axis := flat.Normalize().Cross(worldUp)
	rotated := mgl32.HomogRotate3D(angle, axis).Mul4x1(offset.Vec4(0)).Vec3()
	c.eye = c.at.Add(rotated)
}

// OrbitHorizontal swings the eye around the look-at point about the
// world up axis by angle radians, applied immediately without the
// velocity ramp.
func (c *Camera) OrbitHorizontal(angle float32) {
	offset := c.eye.Sub(c.at)
	rotated := mgl32.HomogRotate3D(angle, worldUp).Mul4x1(offset.Vec4(0)).Vec3()
	c.eye = c.at.Add(rotated)
}

// OrbitLookAt swings the look-at point around the eye about the world
// up axis. Velocity driven like the pans; a full-speed frame turns
// pi/fps radians.
func (c *Camera) OrbitLookAt(direction float32) {
	c.lookVel = c.ramp(c.lookVel)
	sign := float32(1)
	if direction < 0 {
		sign = -1
	}
	offset := c.at.Sub(c.eye)
	angle := sign * float32(math.Pi) * c.lookVel / c.fps
	rotated := mgl32.HomogRotate3D(angle, worldUp).Mul4x1(offset.Vec4(0)).Vec3()
	c.at = c.eye.Add(rotated)
}

// View returns the look-at matrix for the current pose.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.eye, c.at, c.up)
}

// Projection returns the perspective matrix for the current field of
// view and aspect ratio.
func (c *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(c.fov, c.aspect, nearPlane, farPlane)
}

// Eye returns the camera position.
func (c *Camera) Eye() mgl32.Vec3 { return c.eye }

// At returns the look-at point.
func (c *Camera) At() mgl32.Vec3 { return c.at }
