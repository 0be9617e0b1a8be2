package math

import (
	"math/rand"
	"sync"
)

// RandomSource produces uniform values in [0, 1).
// *rand.Rand satisfies it. A source must not be shared between goroutines
// unless it is safe for concurrent use, e.g. a LockedSource.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource creates a seeded source for a single worker
func NewRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomDouble returns a uniform value in [0, 1)
func RandomDouble(random RandomSource) float64 {
	return random.Float64()
}

// RandomDoubleInRange returns a uniform value in [min, max)
func RandomDoubleInRange(random RandomSource, min, max float64) float64 {
	return min + (max-min)*random.Float64()
}

// LockedSource is a RandomSource safe for concurrent use
type LockedSource struct {
	mu     sync.Mutex
	random *rand.Rand
}

// NewLockedSource creates a seeded source that can be shared by many workers
func NewLockedSource(seed int64) *LockedSource {
	return &LockedSource{random: NewRandomSource(seed)}
}

// Float64 returns a uniform value in [0, 1)
func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.random.Float64()
}
