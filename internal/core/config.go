package core

// RuntimeConfig contains the settings every front end passes to the
// firework driver when a session starts.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second (default 60)
	Seed     int64 // RNG seed for reproducible bursts

	ParticlesPerClick int // Particles in a pointer-launched burst
	GrandParticles    int // Particles in a keyboard-launched burst
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:           80,
		ScreenH:           24,
		TickRate:          60,
		Seed:              0, // 0 means use current time in platform layer
		ParticlesPerClick: 30,
		GrandParticles:    50,
	}
}

// Normalized returns a copy with out-of-range values replaced by defaults.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	def := DefaultConfig()
	if c.ScreenW <= 0 {
		c.ScreenW = def.ScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = def.ScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = def.TickRate
	}
	c.ParticlesPerClick = max(c.ParticlesPerClick, 0)
	c.GrandParticles = max(c.GrandParticles, 0)
	return c
}
