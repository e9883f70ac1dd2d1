// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps math/rand so the whole game can run on one seeded,
// reproducible source. A zero seed falls back to the clock.
type PRNGService struct {
	rng *rand.Rand
}

func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Rand exposes the underlying source for collaborators that take *rand.Rand
// directly (puzzle generation, path construction).
func (s *PRNGService) Rand() *rand.Rand {
	return s.rng
}
