package raster

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Mapping ties one pixel index to the geographic coordinate of that pixel.
// A raster's mapping table is a set of such triples, conventionally the four
// corners, from which the affine transform is derived.
type Mapping struct {
	Row        int
	Col        int
	Coordinate orb.Point
}

// mappingEpsilon bounds the residual allowed when checking that the fitted
// transform reproduces every supplied mapping.
const mappingEpsilon = 1e-6

// Mapper resolves geographic coordinates to pixel indices and back using an
// affine transform fitted to the raster's corner mappings:
//
//	x = a0 + a1*col + a2*row
//	y = b0 + b1*col + b2*row
//
// The fit must reproduce each supplied mapping exactly (within a small
// floating residual); inconsistent or degenerate corners are rejected at
// construction. ToIndex rounds to the nearest integer index.
type Mapper struct {
	a0, a1, a2 float64
	b0, b1, b2 float64
	det        float64
	mappings   []Mapping
}

// NewMapper fits an affine transform to exactly four corner mappings.
func NewMapper(mappings []Mapping) (*Mapper, error) {
	if len(mappings) != 4 {
		return nil, fmt.Errorf("%w: mapping table must hold 4 corner mappings, got %d",
			ErrInvalidArgument, len(mappings))
	}

	m0 := mappings[0]
	// Pick two further mappings whose pixel offsets from m0 are linearly
	// independent.
	var m1, m2 Mapping
	found := false
	for i := 1; i < len(mappings) && !found; i++ {
		for j := i + 1; j < len(mappings); j++ {
			d1c := float64(mappings[i].Col - m0.Col)
			d1r := float64(mappings[i].Row - m0.Row)
			d2c := float64(mappings[j].Col - m0.Col)
			d2r := float64(mappings[j].Row - m0.Row)
			if d1c*d2r-d1r*d2c != 0 {
				m1, m2 = mappings[i], mappings[j]
				found = true
				break
			}
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: corner mappings are collinear", ErrInvalidArgument)
	}

	d1c := float64(m1.Col - m0.Col)
	d1r := float64(m1.Row - m0.Row)
	d2c := float64(m2.Col - m0.Col)
	d2r := float64(m2.Row - m0.Row)
	den := d1c*d2r - d1r*d2c

	m := &Mapper{mappings: append([]Mapping(nil), mappings...)}
	m.a1 = ((m1.Coordinate.X()-m0.Coordinate.X())*d2r - (m2.Coordinate.X()-m0.Coordinate.X())*d1r) / den
	m.a2 = ((m2.Coordinate.X()-m0.Coordinate.X())*d1c - (m1.Coordinate.X()-m0.Coordinate.X())*d2c) / den
	m.b1 = ((m1.Coordinate.Y()-m0.Coordinate.Y())*d2r - (m2.Coordinate.Y()-m0.Coordinate.Y())*d1r) / den
	m.b2 = ((m2.Coordinate.Y()-m0.Coordinate.Y())*d1c - (m1.Coordinate.Y()-m0.Coordinate.Y())*d2c) / den
	m.a0 = m0.Coordinate.X() - m.a1*float64(m0.Col) - m.a2*float64(m0.Row)
	m.b0 = m0.Coordinate.Y() - m.b1*float64(m0.Col) - m.b2*float64(m0.Row)

	m.det = m.a1*m.b2 - m.a2*m.b1
	if m.det == 0 {
		return nil, fmt.Errorf("%w: mapping transform is not invertible (zero pixel size)", ErrInvalidArgument)
	}

	// The fit used three corners; the table is inconsistent unless the
	// remaining one is reproduced too.
	for _, mp := range mappings {
		pt := m.ToCoordinate(mp.Row, mp.Col)
		if math.Abs(pt.X()-mp.Coordinate.X()) > mappingEpsilon ||
			math.Abs(pt.Y()-mp.Coordinate.Y()) > mappingEpsilon {
			return nil, fmt.Errorf("%w: corner mapping (%d,%d) not reproduced by affine fit",
				ErrInvalidArgument, mp.Row, mp.Col)
		}
	}

	return m, nil
}

// ToCoordinate returns the geographic coordinate of the pixel at (row, col).
func (m *Mapper) ToCoordinate(row, col int) orb.Point {
	c, r := float64(col), float64(row)
	return orb.Point{m.a0 + m.a1*c + m.a2*r, m.b0 + m.b1*c + m.b2*r}
}

// ToIndex returns the pixel index containing the coordinate, rounded to the
// nearest integer index. The result may lie outside the raster; callers
// apply their own bounds or clamping policy.
func (m *Mapper) ToIndex(pt orb.Point) (row, col int) {
	dx := pt.X() - m.a0
	dy := pt.Y() - m.b0
	fc := (dx*m.b2 - dy*m.a2) / m.det
	fr := (dy*m.a1 - dx*m.b1) / m.det
	return int(math.Round(fr)), int(math.Round(fc))
}

// Mappings returns a copy of the corner mapping table the transform was
// fitted to.
func (m *Mapper) Mappings() []Mapping {
	return append([]Mapping(nil), m.mappings...)
}

// envelope returns the bound of the supplied corner coordinates.
func (m *Mapper) envelope() orb.Bound {
	pts := make(orb.MultiPoint, len(m.mappings))
	for i, mp := range m.mappings {
		pts[i] = mp.Coordinate
	}
	return pts.Bound()
}
