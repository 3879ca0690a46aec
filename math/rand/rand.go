/*package rand provides the two point generators used for discrepancy
comparisons: a Sobol low-discrepancy sequence and the xoshiro256**
pseudo random number generator.

Here are some usage examples for these generators.

	// The first 100 points of a 2D Sobol sequence
	points, err := Sobol(100, 2)

	// Raw and bounded draws
	gen := NewXoshiro256(12346)
	x := gen.Next()
	y, err := gen.Bounded(1000)

	// Uniform floats
	g := New(1337)
	z := g.Uniform(3, 7)
	zs := make([]float64, 100)
	g.UniformAt(3, 7, zs)

	// Use a random seed
	g2, seed, err := NewRandomSeed()

Both generator types keep mutable state and are not safe for concurrent use.
*/
package rand

import (
	"errors"
	"math"

	"github.com/pion/randutil"
)

var (
	// ErrConfiguration is returned when a generator is asked for a shape
	// it doesn't support, e.g. an unsupported Sobol dimension.
	ErrConfiguration = errors.New("configuration error")
	// ErrInvalidArgument is returned when a draw is requested with an
	// invalid parameter, e.g. a bound of zero.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Generator is a uniform random number generator backed by xoshiro256**.
type Generator struct {
	backend *Xoshiro256
}

// New returns a new random number generator.
func New(seed uint64) *Generator {
	return &Generator{NewXoshiro256(seed)}
}

// NewRandomSeed returns a new random number generator seeded from a
// cryptographic source, along with the seed so the stream can be reproduced.
func NewRandomSeed() (*Generator, uint64, error) {
	seed, err := randutil.CryptoUint64()
	if err != nil {
		return nil, 0, err
	}
	return New(seed), seed, nil
}

// Source returns the underlying xoshiro256** generator.
func (gen *Generator) Source() *Xoshiro256 { return gen.backend }

// UniformInt returns an integer uniformly at random within in the
// range [low, high).
func (gen *Generator) UniformInt(low, high int) int {
	f := gen.backend.Float64()
	return int(math.Floor(float64(high-low)*f + float64(low)))
}

// Uniform returns a float uniformly at random within the range [low, high).
func (gen *Generator) Uniform(low, high float64) float64 {
	if low == 0.0 && high == 1.0 {
		return gen.backend.Float64()
	}
	return (gen.backend.Float64() * (high - low)) + low
}

// UniformAt writes floats generated uniformly at random in the range
// [low, high) to every element in a target slice. This is generally faster
// than calling Uniform the corresponding number of times.
func (gen *Generator) UniformAt(low, high float64, target []float64) {
	gen.backend.NextSequence(target)
	if low == 0.0 && high == 1.0 {
		return
	}
	for i := range target {
		target[i] = target[i]*(high-low) + low
	}
}
