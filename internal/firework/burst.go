package firework

import (
	"math"
	"slices"
)

// Burst is one explosion: a set of particles launched together from one
// origin. Its particle set only shrinks after creation.
type Burst struct {
	X, Y      float64
	particles []Particle
}

// newBurst creates count particles at (x, y) with independently randomized
// angle, speed, color and size. A non-positive count yields an empty burst.
func newBurst(x, y float64, count int, rng Source) *Burst {
	b := &Burst{X: x, Y: y}
	if count <= 0 {
		return b
	}

	b.particles = make([]Particle, 0, count)
	for range count {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64()*(MaxSpeed-MinSpeed) + MinSpeed
		color := Palette[pick(rng, len(Palette))]
		size := rng.Float64()*(MaxSize-MinSize) + MinSize

		b.particles = append(b.particles, Particle{
			X:       x,
			Y:       y,
			Color:   color,
			Angle:   angle,
			Speed:   speed,
			Size:    size,
			Alpha:   1,
			Gravity: Gravity,
		})
	}
	return b
}

// pick maps a [0, 1) draw to an index in [0, n).
func pick(rng Source, n int) int {
	i := int(rng.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// update advances every particle one frame and drops the ones that faded
// out. Survivors keep their relative order.
func (b *Burst) update() {
	live := b.particles[:0]
	for i := range b.particles {
		p := b.particles[i]
		p.Update()
		if !p.Expired() {
			live = append(live, p)
		}
	}
	b.particles = live
}

// Len returns the number of live particles.
func (b *Burst) Len() int {
	return len(b.particles)
}

// Empty reports whether every particle has faded out.
func (b *Burst) Empty() bool {
	return len(b.particles) == 0
}

// Particles returns a copy of the live particles.
func (b *Burst) Particles() []Particle {
	return slices.Clone(b.particles)
}
