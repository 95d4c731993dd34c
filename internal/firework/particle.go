// Package firework implements the click-triggered firework effect: bursts of
// fading particles, their per-frame update rule, and the frame driver that
// advances and renders them. It has no terminal or window dependencies so
// every front end drives the same simulation.
package firework

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Simulation constants, tuned for 60 frames per second.
const (
	Gravity    = 0.02  // Speed lost along the current heading every frame
	Drag       = 0.98  // Speed multiplier applied every frame
	FadeStep   = 0.015 // Alpha lost every frame
	GlowRadius = 10.0  // Blur radius drawn around every particle, in pixels

	MinSpeed = 2.0 // Launch speed range [MinSpeed, MaxSpeed), pixels per frame
	MaxSpeed = 5.0
	MinSize  = 1.0 // Radius range [MinSize, MaxSize), pixels
	MaxSize  = 3.0
)

// Particle is a single glowing point of a burst.
type Particle struct {
	X, Y    float64        // Position in surface pixels
	Color   colorful.Color // One of Palette
	Angle   float64        // Travel direction in radians
	Speed   float64        // Scalar speed along Angle, pixels per frame
	Size    float64        // Radius in pixels, fixed at creation
	Alpha   float64        // Opacity, starts at 1 and only decreases
	Gravity float64        // Constant subtracted from Speed every frame
}

// Update advances the particle by one frame.
//
// Gravity decrements the scalar speed along the current heading rather than
// accelerating downwards; slow particles therefore stop and drift back
// through their origin before fading out.
func (p *Particle) Update() {
	p.X += math.Cos(p.Angle) * p.Speed
	p.Y += math.Sin(p.Angle) * p.Speed
	p.Speed *= Drag
	p.Alpha -= FadeStep
	p.Speed -= p.Gravity
}

// Expired reports whether the particle has faded out.
func (p Particle) Expired() bool {
	return p.Alpha <= 0
}

// circle returns the draw call for the particle's current state.
func (p Particle) circle() Circle {
	return Circle{
		X:      p.X,
		Y:      p.Y,
		Radius: p.Size,
		Color:  p.Color,
		Alpha:  p.Alpha,
		Glow:   GlowRadius,
	}
}
