package util

import "math/rand/v2"

// NewRand returns a deterministic PCG-backed generator for the given seed
// and stream. Every resolution stream gets its own generator so replaying
// one encounter never perturbs another. Seed 0 is remapped so an unset
// config still rolls.
func NewRand(seed, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewPCG(seed, stream))
}
