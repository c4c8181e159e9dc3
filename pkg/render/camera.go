package render

import (
	"math"

	"github.com/taigrr/planets/pkg/math3d"
)

// Camera is a look-at camera that orbits its center.
type Camera struct {
	Eye    math3d.Vec3
	Center math3d.Vec3
	Up     math3d.Vec3
}

// NewCamera creates a camera at eye looking at center with +Y up.
func NewCamera(eye, center math3d.Vec3) *Camera {
	return &Camera{Eye: eye, Center: center, Up: math3d.Up()}
}

// ViewMatrix returns the look-at view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return ViewMatrix(c.Eye, c.Center, c.Up)
}

// Distance returns the distance from eye to center.
func (c *Camera) Distance() float64 {
	return c.Eye.Distance(c.Center)
}

// SetDistance moves the eye along its current line of sight so it sits
// d units from the center.
func (c *Camera) SetDistance(d float64) {
	dir := c.Eye.Sub(c.Center).Normalize()
	if dir.LenSq() == 0 {
		dir = math3d.V3(0, 0, 1)
	}
	c.Eye = c.Center.Add(dir.Scale(d))
}

// Orbit rotates the eye around the center by yaw (about Up) and pitch
// (about the camera's right axis), both in radians. Pitch stops short of
// the poles so the view never flips.
func (c *Camera) Orbit(yaw, pitch float64) {
	offset := c.Eye.Sub(c.Center)
	r := offset.Len()
	if r == 0 {
		return
	}

	theta := math.Atan2(offset.X, offset.Z) + yaw
	phi := math.Asin(offset.Y/r) + pitch

	const maxPitch = math.Pi/2 - 0.01
	phi = math.Max(-maxPitch, math.Min(maxPitch, phi))

	c.Eye = c.Center.Add(math3d.V3(
		r*math.Cos(phi)*math.Sin(theta),
		r*math.Sin(phi),
		r*math.Cos(phi)*math.Cos(theta),
	))
}
