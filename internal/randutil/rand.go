// Package randutil derives reproducible random sources for deal generation.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. Both PCG
// words are derived from it so equal seeds replay equal deals.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed picks a seed from the clock, for runs where none was configured.
// It is never zero, which callers treat as "unset".
func Seed(clock quartz.Clock) int64 {
	seed := int64(mix(uint64(clock.Now().UnixNano())) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
