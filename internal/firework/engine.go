package firework

import "slices"

// Particle counts per burst.
const (
	DefaultParticleCount   = 30 // Click launches
	ReferenceParticleCount = 50 // Keyboard "grand" launches
)

// Engine owns the live bursts of one session.
//
// There is no cap on live bursts: rapid clicking grows the engine without
// bound, and dense overlap is what produces the glow.
type Engine struct {
	bursts []*Burst
	rng    Source
}

// NewEngine creates an engine drawing creation-time randomness from rng.
// A nil rng is replaced by a clock-seeded source.
func NewEngine(rng Source) *Engine {
	if rng == nil {
		rng = NewSource(0)
	}
	return &Engine{rng: rng}
}

// NewSeededEngine creates an engine whose bursts are reproducible for a
// given seed. A zero seed means seed from the clock.
func NewSeededEngine(seed int64) *Engine {
	return NewEngine(NewSource(seed))
}

// SpawnBurst launches a burst of count particles at (x, y) in surface
// pixels and returns it. The count is not validated: callers clamp it, and
// a non-positive count produces an empty burst that the next AdvanceFrame
// reclaims.
func (e *Engine) SpawnBurst(x, y float64, count int) *Burst {
	b := newBurst(x, y, count, e.rng)
	e.bursts = append(e.bursts, b)
	return b
}

// AdvanceFrame applies the update rule to every particle, drops faded
// particles, then drops bursts left empty. It is a no-op with no bursts.
func (e *Engine) AdvanceFrame() {
	if len(e.bursts) == 0 {
		return
	}

	for _, b := range e.bursts {
		b.update()
	}

	live := e.bursts[:0]
	for _, b := range e.bursts {
		if !b.Empty() {
			live = append(live, b)
		}
	}
	clear(e.bursts[len(live):])
	e.bursts = live
}

// RenderFrame clears dst and draws every live particle. Engine state is not
// modified.
func (e *Engine) RenderFrame(dst Surface) {
	dst.Clear()
	for _, b := range e.bursts {
		for _, p := range b.particles {
			dst.FillCircle(p.circle())
		}
	}
}

// Bursts returns the live bursts.
func (e *Engine) Bursts() []*Burst {
	return slices.Clone(e.bursts)
}

// BurstCount returns the number of live bursts.
func (e *Engine) BurstCount() int {
	return len(e.bursts)
}

// ParticleCount returns the number of live particles across all bursts.
func (e *Engine) ParticleCount() int {
	n := 0
	for _, b := range e.bursts {
		n += b.Len()
	}
	return n
}
