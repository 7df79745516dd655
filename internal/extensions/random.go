package extensions

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrOutOfRange is returned when a random pick has no valid index.
var ErrOutOfRange = errors.New("index range out of bounds")

// Rand is the random source used for picks. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a seeded PCG source for deterministic picks.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// HostRand draws from raylib's random generator. Seed it with
// rl.SetRandomSeed when reproducible runs are needed. Like rand.IntN it
// panics when n <= 0. Ranges wider than int32 use the math/rand/v2
// global source since raylib only takes int32 bounds.
type HostRand struct{}

func (HostRand) IntN(n int) int {
	if n <= 0 {
		panic("extensions: invalid argument to HostRand.IntN")
	}
	if n-1 > math.MaxInt32 {
		return rand.IntN(n)
	}
	return int(rl.GetRandomValue(0, int32(n-1)))
}

// RandomElement picks a uniformly random element of s.
func RandomElement[T any](rng Rand, s []T) (T, error) {
	return RandomElementRange(rng, s, 0, 0)
}

// RandomElementRange picks a uniformly random element with index in
// [lo, hi). hi == 0 selects len(s) as the upper bound.
func RandomElementRange[T any](rng Rand, s []T, lo, hi int) (T, error) {
	var zero T
	if hi == 0 {
		hi = len(s)
	}
	if lo < 0 || hi > len(s) || lo >= hi {
		return zero, fmt.Errorf("%w: [%d, %d) of %d elements", ErrOutOfRange, lo, hi, len(s))
	}
	return s[lo+rng.IntN(hi-lo)], nil
}
