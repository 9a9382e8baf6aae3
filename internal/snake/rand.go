package snake

import (
	"math/rand"
	"time"
)

// Random places collectibles. IntRange returns a uniformly distributed
// integer in [low, high], both ends inclusive.
type Random interface {
	IntRange(low, high int) int
}

// seededRandom adapts math/rand to Random.
type seededRandom struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeded with seed. A zero seed uses the
// current time.
func NewRandom(seed int64) Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

func (r *seededRandom) IntRange(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.rng.Intn(high-low+1)
}
