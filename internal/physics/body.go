// Package physics drives the decorative falling icon on the welcome screen.
// It integrates a single box body under gravity and bounces it off a floor;
// it makes no attempt at rigid-body fidelity.
package physics

import "math"

const (
	// PixelsPerMeter converts world units to screen pixels
	PixelsPerMeter = 50.0
	// Gravity in m/s², pointing down the screen
	Gravity = 9.8
	// TimeStep is the fixed simulation step
	TimeStep = 1.0 / 60.0
)

// restSteps is how many steps of gravity a rebound must outlast; slower
// rebounds would be cancelled within a frame or two, so the body stops instead.
const restSteps = 2

// Body is an axis-aligned box falling onto a horizontal floor
type Body struct {
	X, Y        float64 // center, meters
	HalfW       float64
	HalfH       float64
	VelY        float64
	Restitution float64
	Floor       float64 // top of the floor, meters
	resting     bool
	bounces     int
}

// NewBodyPx creates a body from pixel coordinates: top-left corner, size and floor line
func NewBodyPx(left, top, width, height, floorY, restitution float64) *Body {
	return &Body{
		X:           (left + width/2) / PixelsPerMeter,
		Y:           (top + height/2) / PixelsPerMeter,
		HalfW:       width / 2 / PixelsPerMeter,
		HalfH:       height / 2 / PixelsPerMeter,
		Restitution: restitution,
		Floor:       floorY / PixelsPerMeter,
	}
}

// Step advances the body by dt seconds (semi-implicit Euler)
func (b *Body) Step(dt float64) {
	if b.resting {
		return
	}

	b.VelY += Gravity * dt
	b.Y += b.VelY * dt

	if bottom := b.Y + b.HalfH; bottom >= b.Floor && b.VelY > 0 {
		b.Y = b.Floor - b.HalfH
		b.VelY = -b.VelY * b.Restitution
		b.bounces++
		if math.Abs(b.VelY) < Gravity*dt*restSteps {
			b.VelY = 0
			b.resting = true
		}
	}
}

// TopLeftPx returns the body's top-left corner in pixels
func (b *Body) TopLeftPx() (float64, float64) {
	return (b.X - b.HalfW) * PixelsPerMeter, (b.Y - b.HalfH) * PixelsPerMeter
}

// Resting reports whether the body has come to rest on the floor
func (b *Body) Resting() bool {
	return b.resting
}

// Bounces returns the number of floor contacts so far
func (b *Body) Bounces() int {
	return b.bounces
}

// Energy returns the mechanical energy per unit mass relative to the floor
func (b *Body) Energy() float64 {
	height := b.Floor - (b.Y + b.HalfH)
	return 0.5*b.VelY*b.VelY + Gravity*height
}
