package main

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/planets/pkg/render"
)

// OrbitAxis is one camera orbit direction. Key presses add velocity, which
// a critically damped spring eases back to zero.
type OrbitAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewOrbitAxis creates an axis with harmonica spring for smooth velocity decay
func NewOrbitAxis(fps int) OrbitAxis {
	return OrbitAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update returns this frame's angle step and decays the velocity.
func (a *OrbitAxis) Update() float64 {
	step := a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
	return step
}

// Zoom eases the camera distance toward a target.
type Zoom struct {
	Target   float64
	Distance float64
	Min, Max float64

	spring harmonica.Spring
	vel    float64
}

// NewZoom starts at distance d with the target already reached.
func NewZoom(fps int, d float64) *Zoom {
	return &Zoom{
		Target:   d,
		Distance: d,
		Min:      1.5,
		Max:      20,
		spring:   harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Nudge moves the target by delta within [Min, Max].
func (z *Zoom) Nudge(delta float64) {
	z.Target = math.Max(z.Min, math.Min(z.Max, z.Target+delta))
}

// Update advances the spring one frame and returns the new distance.
func (z *Zoom) Update() float64 {
	z.Distance, z.vel = z.spring.Update(z.Distance, z.vel, z.Target)
	return z.Distance
}

// CameraRig drives a scene camera from keyboard input.
type CameraRig struct {
	Yaw, Pitch OrbitAxis
	Zoom       *Zoom

	camera *render.Camera
}

// NewCameraRig wraps cam, starting the zoom at its current distance.
func NewCameraRig(fps int, cam *render.Camera) *CameraRig {
	return &CameraRig{
		Yaw:    NewOrbitAxis(fps),
		Pitch:  NewOrbitAxis(fps),
		Zoom:   NewZoom(fps, cam.Distance()),
		camera: cam,
	}
}

// ApplyImpulse adds orbit velocity in radians per frame.
func (r *CameraRig) ApplyImpulse(yaw, pitch float64) {
	r.Yaw.Velocity += yaw
	r.Pitch.Velocity += pitch
}

// Update moves the camera one frame.
func (r *CameraRig) Update() {
	r.camera.Orbit(r.Yaw.Update(), r.Pitch.Update())
	r.camera.SetDistance(r.Zoom.Update())
}
