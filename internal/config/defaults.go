package config

import (
	_ "embed"
)

//go:embed defaults/greeting.yaml
var defaultGreetingYAML []byte

// DefaultGreetingConfig returns the built-in greeting configuration.
func DefaultGreetingConfig() GreetingConfig {
	return GreetingConfig{
		Title: "Happy Birthday",
		Messages: []string{
			"Click anywhere to light the sky.",
			"Press space for a grand burst.",
		},
		ParticlesPerClick: 30,
		GrandParticles:    50,
		Source:            "built-in",
	}
}

// DefaultYAML returns the embedded default configuration file, suitable as
// a starting point for a custom one.
func DefaultYAML() []byte {
	return defaultGreetingYAML
}
