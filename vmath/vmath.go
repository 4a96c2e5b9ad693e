package vmath

import (
	"math"
)

// zeroSeedReplacement keeps xorshift out of its all-zero fixed point
const zeroSeedReplacement = 0x9E3779B97F4A7C15

// --- Scalar helpers ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutCubic maps linear progress [0,1] to decelerating progress
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Round rounds to the given number of decimals
func Round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// Fract returns the fractional part in [0,1), also for negative input
func Fract(v float64) float64 {
	return v - math.Floor(v)
}

// --- Randomness ---

// FastRand is a xorshift64 generator, reproducible from its seed
// Not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero seed is remapped
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = zeroSeedReplacement
	}
	return &FastRand{state: seed}
}

// Next advances the xorshift64 recurrence (13, 7, 17)
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	r.state = x
	return x
}

// Float64 returns a value in [0,1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Intn returns a value in [0,n), 0 if n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntRange returns a value in [lo,hi] inclusive
func (r *FastRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// FloatRange returns a value in [lo,hi)
func (r *FastRand) FloatRange(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Chance consumes one roll and reports whether it fell below p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}

// Mix derives an independent seed from a base seed and a salt (splitmix64 finaliser)
func Mix(seed, salt uint64) uint64 {
	z := seed + salt*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Hash2 returns a stable pseudo-random value in [0,1) for an integer lattice point
// Used for deterministic decoration (starfield, flow phase) without carrying state
func Hash2(x, y int, salt uint64) float64 {
	h := Mix(uint64(int64(x))*0x632BE59BD9B4E019^uint64(int64(y)), salt)
	return float64(h>>11) / (1 << 53)
}
