package firework

import (
	"math/rand"
	"time"
)

// Source supplies uniform random numbers in [0, 1).
// *rand.Rand satisfies it; tests replay creation with a fixed seed or a
// scripted sequence.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded source. A zero seed means seed from the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
