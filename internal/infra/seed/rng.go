package seed

import (
	"math"
	"math/rand"
	"time"
)

// NewSeededRNG creates a seeded random number generator and returns the seed it used.
// If seed is 0, the current time is used so the caller can log it for reproducibility.
func NewSeededRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed)), seed
}

// intBetween returns a uniform integer in [lo, hi]. A reversed range yields lo.
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + rng.Intn(hi-lo+1)
}

// timeBetween returns a uniform instant in [start, end]. When end is not after start, start is returned.
// Spans beyond ~292 years saturate time.Duration, so the draw is capped at that span.
func timeBetween(rng *rand.Rand, start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}

	n := int64(span)
	if n < math.MaxInt64 {
		n++
	}

	return start.Add(time.Duration(rng.Int63n(n)))
}

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// token returns a short random base36 string used to make generated texts distinct.
func token(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[rng.Intn(len(tokenAlphabet))]
	}

	return string(b)
}
