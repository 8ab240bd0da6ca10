// Package psyrand provides a small seeded PRNG for gameplay randomness.
//
// A single concrete generator (xoshiro256**) is seeded through a splitmix64
// expansion of a 64-bit seed, so the same seed always yields the same
// sequence: seed -> four splitmix64 outputs -> generator state. This is not a
// cryptographic generator.
package psyrand

import "math/bits"

// Rand is a deterministic xoshiro256** generator. The zero value is not
// usable; construct with New.
type Rand struct {
	s [4]uint64
}

// New creates a generator from a 64-bit seed. Any seed is valid, including
// zero: the splitmix64 expansion never produces the all-zero state.
func New(seed uint64) *Rand {
	r := &Rand{}
	sm := seed
	for i := range r.s {
		r.s[i] = splitmix64(&sm)
	}
	return r
}

// splitmix64 advances the expansion state and returns the next mixed word.
func splitmix64(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint64 returns the next value in the sequence.
func (r *Rand) Uint64() uint64 {
	result := bits.RotateLeft64(r.s[1]*5, 7) * 9

	t := r.s[1] << 17
	r.s[2] ^= r.s[0]
	r.s[3] ^= r.s[1]
	r.s[1] ^= r.s[2]
	r.s[0] ^= r.s[3]
	r.s[2] ^= t
	r.s[3] = bits.RotateLeft64(r.s[3], 45)

	return result
}

// Float64 returns a uniform value in [0, 1), using the top 53 bits.
func (r *Rand) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// FloatInRange returns a uniform value in [min, max). min > max is the
// caller's mistake; the bounds are used as given.
func (r *Rand) FloatInRange(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// IntN returns a uniform value in [0, n). It panics if n <= 0.
func (r *Rand) IntN(n int) int {
	if n <= 0 {
		panic("psyrand: IntN called with non-positive n")
	}
	return int(r.Uint64() % uint64(n))
}

// Shuffle pseudo-randomizes the order of n elements using Fisher-Yates.
// swap exchanges the elements at indexes i and j.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		swap(i, j)
	}
}
