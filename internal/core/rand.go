package core

import "math/rand"

// Rand is the random source engines draw placements from.
// *math/rand.Rand satisfies it; tests can inject a scripted source.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source. Identical seeds yield identical sequences.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
