package rng

import "math/rand"

// Seeded wraps math/rand with an explicit seed so a shuffle can be replayed.
// Use in tests only; production shuffles should use Crypto.
type Seeded struct {
	rand *rand.Rand
}

// NewSeeded returns a Seeded generator for the given seed
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rand: rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Intn will return a random number up to but not including n
func (s *Seeded) Intn(n int) int {
	return s.rand.Intn(n)
}
