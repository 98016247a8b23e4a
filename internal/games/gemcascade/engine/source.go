package engine

import "math/rand/v2"

// IntNSource supplies uniform integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it; tests substitute scripted sources.
type IntNSource interface {
	IntN(n int) int
}

// NewRandSource returns a PCG-backed source seeded deterministically.
func NewRandSource(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
