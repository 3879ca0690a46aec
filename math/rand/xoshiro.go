package rand

import (
	"fmt"
)

// Seed expansion constants. These are the splitmix64 constants, but they are
// applied directly rather than through splitmix64 itself.
const (
	xoshiroMul1 = 0x9E3779B97F4A7C15
	xoshiroXor2 = 0xBF58476D1CE4E5B9
	xoshiroAdd3 = 0x94D049BB133111EB

	float53Fac = 1.0 / (1 << 53)
)

// Xoshiro256 is a xoshiro256** generator (Blackman & Vigna 2018). Its full
// output stream is determined by the seed passed to NewXoshiro256.
type Xoshiro256 struct {
	state [4]uint64
}

// NewXoshiro256 returns a generator whose state has been expanded from seed.
func NewXoshiro256(seed uint64) *Xoshiro256 {
	gen := &Xoshiro256{}
	gen.Init(seed)
	return gen
}

// Init resets the state of the generator to the expansion of seed.
func (gen *Xoshiro256) Init(seed uint64) {
	gen.state[0] = seed
	gen.state[1] = seed * xoshiroMul1
	gen.state[2] = seed ^ xoshiroXor2
	gen.state[3] = ^seed + xoshiroAdd3
}

// State returns a copy of the generator's internal state.
func (gen *Xoshiro256) State() [4]uint64 { return gen.state }

// RotateLeft rotates x left by k bits. k must be in the range (0, 64).
func RotateLeft(x uint64, k uint) uint64 {
	return (x << k) | (x >> (64 - k))
}

// Next advances the generator and returns a raw 64-bit draw.
func (gen *Xoshiro256) Next() uint64 {
	s := &gen.state
	result := RotateLeft(s[1]*5, 7) * 9

	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = RotateLeft(s[3], 45)

	return result
}

// Bounded returns a draw in the range [0, max). It reduces with a modulus,
// so small values are slightly favored when max doesn't divide 2^64. An
// error is returned if max is zero, in which case the state isn't advanced.
func (gen *Xoshiro256) Bounded(max uint64) (uint64, error) {
	if max == 0 {
		return 0, fmt.Errorf("%w: the bound of a bounded draw must be "+
			"positive, but I was given 0.", ErrInvalidArgument)
	}
	return gen.Next() % max, nil
}

// Float64 returns a float in the range [0, 1) made from the top 53 bits of
// a raw draw.
func (gen *Xoshiro256) Float64() float64 {
	return float64(gen.Next()>>11) * float53Fac
}

// NextSequence fills target with floats in the range [0, 1).
func (gen *Xoshiro256) NextSequence(target []float64) {
	for i := range target {
		target[i] = float64(gen.Next()>>11) * float53Fac
	}
}
