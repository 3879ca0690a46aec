package rand

import (
	"fmt"
)

const (
	// MaxDim is the largest number of Sobol dimensions with direction numbers.
	MaxDim = 2
	// MaxBit is the number of direction numbers stored for each dimension.
	MaxBit = 30
)

// tap is a single term of a direction number recurrence: V[i - offset] >>
// shift.
type tap struct {
	offset, shift uint32
}

// primitivePoly holds the seed data for one Sobol dimension: the initial
// m values and the taps used to extend them up to MaxBit entries.
type primitivePoly struct {
	name string
	m    []uint32
	taps []tap
}

// primitivePolys is indexed by dimension. Supporting another dimension only
// requires appending a row here and raising MaxDim.
var primitivePolys = [MaxDim]primitivePoly{
	// Van der Corput: V[i] = 1 << (31 - i).
	{"1", []uint32{1}, []tap{{1, 1}}},
	{"x^3 + x + 1", []uint32{1, 1, 5}, []tap{{1, 0}, {3, 3}}},
}

// DirectionTable contains the direction numbers for each supported Sobol
// dimension. It is never modified after construction.
type DirectionTable struct {
	v [][MaxBit]uint32
}

// NewDirectionTable builds direction numbers for the first dim dimensions.
func NewDirectionTable(dim int) (*DirectionTable, error) {
	if dim < 1 || dim > MaxDim {
		return nil, fmt.Errorf("%w: I can only build direction numbers "+
			"for 1 to %d dimensions, but %d were requested.",
			ErrConfiguration, MaxDim, dim)
	}

	table := &DirectionTable{v: make([][MaxBit]uint32, dim)}
	for d := range table.v {
		table.v[d] = directionNumbers(&primitivePolys[d])
	}
	return table, nil
}

// directionNumbers seeds the top bits of the first len(m) entries with poly.m
// and then evaluates the recurrence for the rest.
func directionNumbers(poly *primitivePoly) [MaxBit]uint32 {
	var v [MaxBit]uint32

	for i := range poly.m {
		v[i] = poly.m[i] << (31 - uint32(i))
	}

	for i := uint32(len(poly.m)); i < MaxBit; i++ {
		x := uint32(0)
		for _, t := range poly.taps {
			x ^= v[i-t.offset] >> t.shift
		}
		v[i] = x
	}

	return v
}

// Dim returns the number of dimensions in the table.
func (table *DirectionTable) Dim() int { return len(table.v) }

// At returns the direction number of dimension d at bit position i.
func (table *DirectionTable) At(d, i int) uint32 { return table.v[d][i] }

// Row returns a copy of every direction number for dimension d.
func (table *DirectionTable) Row(d int) [MaxBit]uint32 { return table.v[d] }

// Polynomial returns a description of the primitive polynomial behind
// dimension d.
func (table *DirectionTable) Polynomial(d int) string {
	return primitivePolys[d].name
}
