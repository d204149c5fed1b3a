package random

import (
	"math/rand"
	"time"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int
}

// SeededRandom implements Random using math/rand. Card draws do not need
// cryptographic randomness.
type SeededRandom struct {
	rng *rand.Rand
}

// New creates a SeededRandom seeded from the current time
func New() *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Intn returns a random int in [0, n)
func (r *SeededRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}
