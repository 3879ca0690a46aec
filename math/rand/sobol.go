package rand

import (
	"fmt"
	"math/bits"
)

const (
	// MaxSobolPoints is the length of the longest sequence which can be
	// generated before the direction numbers run out.
	MaxSobolPoints = 1 << MaxBit
	fac            = 1.0 / (1 << 32)
)

// SobolSequence generates successive points of a Sobol sequence. A
// SobolSequence produces exactly one sequence: make a new one to start over.
type SobolSequence struct {
	seqNum uint32
	ix     []uint32
	table  *DirectionTable
}

// NewSobolSequence returns a Sobol sequence over dim dimensions. See Press
// et al. 2007 and Bratley & Fox 1988.
func NewSobolSequence(dim int) (*SobolSequence, error) {
	table, err := NewDirectionTable(dim)
	if err != nil {
		return nil, err
	}
	return &SobolSequence{ix: make([]uint32, dim), table: table}, nil
}

// GrayCode returns the binary reflected Gray code of n.
func GrayCode(n uint32) uint32 {
	return n ^ (n >> 1)
}

// updateBit returns the index of the direction number which is XOR'd into
// the state when point n is generated. n = 0 is counted as if it were n = 1,
// so the first two points both use bit 0. Published Sobol recursions start
// differently, but existing output depends on this.
func updateBit(n uint32) int {
	if n == 0 {
		n = 1
	}
	return bits.TrailingZeros32(n)
}

// Dim returns the dimensionality of the sequence.
func (seq *SobolSequence) Dim() int { return len(seq.ix) }

// Index returns the number of points which have been generated so far.
func (seq *SobolSequence) Index() int { return int(seq.seqNum) }

// Next returns the next point in the sequence.
func (seq *SobolSequence) Next() []float64 {
	target := make([]float64, len(seq.ix))
	seq.NextAt(target)
	return target
}

// NextAt is equivalent to Next, except the point is written to target, which
// must have length Dim().
func (seq *SobolSequence) NextAt(target []float64) {
	if len(target) != len(seq.ix) {
		panic(fmt.Sprintf("Target dim %d doesn't match sequence dim %d.",
			len(target), len(seq.ix)))
	} else if seq.seqNum >= MaxSobolPoints {
		panic(fmt.Sprintf("Exceeded maximum seq num of %d for MaxBit %d.",
			MaxSobolPoints, MaxBit))
	}

	c := updateBit(seq.seqNum)
	seq.seqNum++

	for d := range seq.ix {
		seq.ix[d] ^= seq.table.At(d, c)
		target[d] = float64(seq.ix[d]) * fac
	}
}

// checkSobolLength returns an error if a sequence of n points can't be
// generated.
func checkSobolLength(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: I was asked for %d Sobol points, but the "+
			"number of points can't be negative.", ErrConfiguration, n)
	} else if n > MaxSobolPoints {
		return fmt.Errorf("%w: I was asked for %d Sobol points, but only "+
			"%d can be generated with MaxBit = %d.", ErrConfiguration,
			n, MaxSobolPoints, MaxBit)
	}
	return nil
}

// Sobol returns the first n points of a dim-dimensional Sobol sequence.
func Sobol(n, dim int) ([][]float64, error) {
	if err := checkSobolLength(n); err != nil {
		return nil, err
	}
	seq, err := NewSobolSequence(dim)
	if err != nil {
		return nil, err
	}

	buf := make([]float64, n*dim)
	points := make([][]float64, n)
	for i := range points {
		points[i] = buf[i*dim : (i+1)*dim]
		seq.NextAt(points[i])
	}
	return points, nil
}
