package raster

import (
	"fmt"

	"github.com/paulmach/orb"
)

// maxHistogramBits caps the resolution for which a per-band frequency table
// is materialized; 2^16 buckets is the widest domain worth holding in memory.
const maxHistogramBits = 16

// Band is a read/write view over one spectral band of a Store. It is a
// projection, not an owner: its lifetime is tied to the raster it belongs
// to and it holds no pixel storage of its own.
//
// Beyond the indexed accessors, a band offers coordinate addressing through
// the owning raster's Mapper and a nearest-value entry point that clamps
// out-of-range indices to the raster edge instead of failing. Nearest-value
// access is the designed edge policy for boundary sampling, e.g. resampling
// kernels that reach past the first or last row.
type Band struct {
	store  *Store
	index  int
	mapper *Mapper

	// histogram is recomputed lazily: any write bumps the store's
	// generation and the next Histogram call rescans the band.
	histogram      *Histogram
	histGeneration uint64
}

func newBand(store *Store, index int, mapper *Mapper) *Band {
	return &Band{store: store, index: index, mapper: mapper}
}

// Index returns the band index within the owning raster.
func (b *Band) Index() int { return b.index }

// Resolution returns the band's radiometric resolution in bits.
func (b *Band) Resolution() int { return b.store.Dimensions().Resolution(b.index) }

// Rows returns the number of rows in the band.
func (b *Band) Rows() int { return b.store.Dimensions().Rows() }

// Columns returns the number of columns in the band.
func (b *Band) Columns() int { return b.store.Dimensions().Columns() }

// Format returns the canonical representation of the backing store.
func (b *Band) Format() Format { return b.store.Format() }

// Value reads the quantized integer value at (row, col).
func (b *Band) Value(row, col int) (uint64, error) {
	return b.store.Value(row, col, b.index)
}

// FloatValue reads the floating-point value at (row, col).
func (b *Band) FloatValue(row, col int) (float64, error) {
	return b.store.FloatValue(row, col, b.index)
}

// SetValue writes a quantized integer value at (row, col).
func (b *Band) SetValue(row, col int, v uint64) error {
	return b.store.SetValue(row, col, b.index, v)
}

// SetFloatValue writes a floating-point value at (row, col).
func (b *Band) SetFloatValue(row, col int, v float64) error {
	return b.store.SetFloatValue(row, col, b.index, v)
}

// resolve maps a geographic coordinate to pixel indices through the owning
// raster's mapper.
func (b *Band) resolve(pt orb.Point) (row, col int, err error) {
	if b.mapper == nil {
		return 0, 0, fmt.Errorf("%w: raster carries no geographic mapping", ErrUnsupportedOperation)
	}
	row, col = b.mapper.ToIndex(pt)
	return row, col, nil
}

// ValueAt reads the integer value at the pixel containing the coordinate.
// It fails with ErrUnsupportedOperation when the raster is unmapped and with
// ErrIndexOutOfRange when the resolved pixel lies outside the raster.
func (b *Band) ValueAt(pt orb.Point) (uint64, error) {
	row, col, err := b.resolve(pt)
	if err != nil {
		return 0, err
	}
	return b.Value(row, col)
}

// FloatValueAt is the floating-point variant of ValueAt.
func (b *Band) FloatValueAt(pt orb.Point) (float64, error) {
	row, col, err := b.resolve(pt)
	if err != nil {
		return 0, err
	}
	return b.FloatValue(row, col)
}

// SetValueAt writes the integer value at the pixel containing the coordinate.
func (b *Band) SetValueAt(pt orb.Point, v uint64) error {
	row, col, err := b.resolve(pt)
	if err != nil {
		return err
	}
	return b.SetValue(row, col, v)
}

// SetFloatValueAt is the floating-point variant of SetValueAt.
func (b *Band) SetFloatValueAt(pt orb.Point, v float64) error {
	row, col, err := b.resolve(pt)
	if err != nil {
		return err
	}
	return b.SetFloatValue(row, col, v)
}

// clamp forces row and column independently into the raster bounds.
func (b *Band) clamp(row, col int) (int, int) {
	d := b.store.Dimensions()
	if row < 0 {
		row = 0
	} else if row >= d.Rows() {
		row = d.Rows() - 1
	}
	if col < 0 {
		col = 0
	} else if col >= d.Columns() {
		col = d.Columns() - 1
	}
	return row, col
}

// NearestValue reads the integer value at the in-bounds pixel closest to
// (row, col). It never fails with ErrIndexOutOfRange; out-of-range indices
// are clamped to the raster edge.
func (b *Band) NearestValue(row, col int) (uint64, error) {
	row, col = b.clamp(row, col)
	return b.Value(row, col)
}

// NearestFloatValue is the floating-point variant of NearestValue.
func (b *Band) NearestFloatValue(row, col int) (float64, error) {
	row, col = b.clamp(row, col)
	return b.FloatValue(row, col)
}

// NearestValueAt resolves the coordinate and reads the nearest in-bounds
// value. Only an unmapped raster fails, with ErrUnsupportedOperation.
func (b *Band) NearestValueAt(pt orb.Point) (uint64, error) {
	row, col, err := b.resolve(pt)
	if err != nil {
		return 0, err
	}
	return b.NearestValue(row, col)
}

// NearestFloatValueAt is the floating-point variant of NearestValueAt.
func (b *Band) NearestFloatValueAt(pt orb.Point) (float64, error) {
	row, col, err := b.resolve(pt)
	if err != nil {
		return 0, err
	}
	return b.NearestFloatValue(row, col)
}

// Histogram returns the band's frequency table over its integer value
// domain. The table is recomputed lazily: the first call after a write
// rescans the band, subsequent calls reuse the cached table.
//
// Bands wider than 16 bits fail with ErrUnsupportedOperation.
func (b *Band) Histogram() (*Histogram, error) {
	if err := b.store.checkReadable(); err != nil {
		return nil, err
	}
	if b.Resolution() > maxHistogramBits {
		return nil, fmt.Errorf("%w: no histogram for %d-bit band", ErrUnsupportedOperation, b.Resolution())
	}
	if b.histogram != nil && b.histGeneration == b.store.generation() {
		return b.histogram, nil
	}

	d := b.store.Dimensions()
	h := &Histogram{counts: make([]int, int(d.MaxValue(b.index))+1)}
	for row := 0; row < d.Rows(); row++ {
		for col := 0; col < d.Columns(); col++ {
			offset, err := Offset(d, b.store.Order(), row, col, b.index)
			if err != nil {
				return nil, err
			}
			h.counts[b.store.rawValue(b.index, offset)]++
			h.total++
		}
	}

	b.histogram = h
	b.histGeneration = b.store.generation()
	return h, nil
}
