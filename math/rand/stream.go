package rand

import (
	"fmt"
)

// PointStream is a finite, ordered sequence of points which can be read
// exactly once.
type PointStream interface {
	// Dim returns the number of coordinates in each point.
	Dim() int
	// Len returns the total number of points in the stream.
	Len() int
	// NextAt writes the next point into target, which must have length
	// Dim(). It returns false once the stream is exhausted.
	NextAt(target []float64) bool
}

// SobolStream is a PointStream over the first n points of a Sobol sequence.
type SobolStream struct {
	seq *SobolSequence
	n   int
}

var _ PointStream = &SobolStream{}

// NewSobolStream returns a stream over the first n points of a
// dim-dimensional Sobol sequence.
func NewSobolStream(n, dim int) (*SobolStream, error) {
	if err := checkSobolLength(n); err != nil {
		return nil, err
	}
	seq, err := NewSobolSequence(dim)
	if err != nil {
		return nil, err
	}
	return &SobolStream{seq, n}, nil
}

func (s *SobolStream) Dim() int { return s.seq.Dim() }
func (s *SobolStream) Len() int { return s.n }

func (s *SobolStream) NextAt(target []float64) bool {
	if s.seq.Index() >= s.n {
		return false
	}
	s.seq.NextAt(target)
	return true
}

// PairStream is a PointStream of 2D points made from bounded xoshiro256**
// draws: (Bounded(bound) / scale, Bounded(bound) / scale). The x draw is
// taken before the y draw.
type PairStream struct {
	gen   *Xoshiro256
	n, i  int
	bound uint64
	scale float64
}

var _ PointStream = &PairStream{}

// NewPairStream returns a stream of n pairs generated from seed. With
// bound = 1000 and scale = 1000 every coordinate lies on a 0.001 grid in
// [0, 1).
func NewPairStream(seed uint64, n int, bound uint64, scale float64) (*PairStream, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: I was asked for %d pairs, but the "+
			"number of pairs can't be negative.", ErrInvalidArgument, n)
	} else if bound == 0 {
		return nil, fmt.Errorf("%w: the bound of a bounded draw must be "+
			"positive, but I was given 0.", ErrInvalidArgument)
	} else if scale <= 0 {
		return nil, fmt.Errorf("%w: the scale of a pair must be positive, "+
			"but I was given %g.", ErrInvalidArgument, scale)
	}
	return &PairStream{NewXoshiro256(seed), n, 0, bound, scale}, nil
}

func (s *PairStream) Dim() int { return 2 }
func (s *PairStream) Len() int { return s.n }

func (s *PairStream) NextAt(target []float64) bool {
	if s.i >= s.n {
		return false
	}
	s.i++
	// bound was checked in NewPairStream.
	x := s.gen.Next() % s.bound
	y := s.gen.Next() % s.bound
	target[0] = float64(x) / s.scale
	target[1] = float64(y) / s.scale
	return true
}

// Collect reads every remaining point in a stream.
func Collect(s PointStream) [][]float64 {
	var out [][]float64
	for {
		p := make([]float64, s.Dim())
		if !s.NextAt(p) {
			return out
		}
		out = append(out, p)
	}
}
