// Package config provides YAML-based greeting configuration loading for the
// hbd front ends.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-hbd/internal/core"
	"github.com/vovakirdan/tui-hbd/internal/greeting"
)

// Particle count limits accepted from configuration files.
const (
	MaxParticlesPerBurst = 500
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// GreetingConfig contains everything a viewer can customize.
type GreetingConfig struct {
	Title      string   `yaml:"title"`
	Name       string   `yaml:"name"`
	Messages   []string `yaml:"messages"`
	UnlockTime string   `yaml:"unlock_time"` // Local wall-clock time, empty for none

	ParticlesPerClick int `yaml:"particles_per_click"`
	GrandParticles    int `yaml:"grand_particles"`

	// Source is where the configuration was read from.
	Source string `yaml:"-"`
}

// Validate checks particle counts and the unlock time.
func (c GreetingConfig) Validate() error {
	if c.ParticlesPerClick < 0 || c.ParticlesPerClick > MaxParticlesPerBurst {
		return fmt.Errorf("%w: particles_per_click %d not in [0, %d]", ErrInvalid, c.ParticlesPerClick, MaxParticlesPerBurst)
	}
	if c.GrandParticles < 0 || c.GrandParticles > MaxParticlesPerBurst {
		return fmt.Errorf("%w: grand_particles %d not in [0, %d]", ErrInvalid, c.GrandParticles, MaxParticlesPerBurst)
	}
	if _, err := greeting.ParseUnlockTime(c.UnlockTime, time.Local); err != nil {
		return fmt.Errorf("%w: unlock_time: %w", ErrInvalid, err)
	}
	return nil
}

// Card returns the greeting text.
func (c GreetingConfig) Card() greeting.Card {
	return greeting.Card{Title: c.Title, Name: c.Name, Messages: c.Messages}
}

// Gate returns the unlock gate, with the unlock time read in loc.
func (c GreetingConfig) Gate(loc *time.Location) (greeting.Gate, error) {
	at, err := greeting.ParseUnlockTime(c.UnlockTime, loc)
	if err != nil {
		return greeting.Gate{}, fmt.Errorf("config: unlock_time: %w", err)
	}
	return greeting.NewGate(at), nil
}

// Apply copies the particle counts into a runtime configuration.
func (c GreetingConfig) Apply(rc core.RuntimeConfig) core.RuntimeConfig {
	rc.ParticlesPerClick = c.ParticlesPerClick
	rc.GrandParticles = c.GrandParticles
	return rc
}
