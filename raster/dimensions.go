package raster

import "fmt"

// Dimensions describes the immutable shape of a raster: its row, column and
// band counts plus the radiometric resolution (bits per value) of each band.
//
// The resolution determines the valid integer value range of a band:
// 0 .. 2^resolution - 1.
type Dimensions struct {
	rows        int
	columns     int
	bands       int
	resolutions []int
}

// NewDimensions validates and builds a Dimensions value.
//
// Counts must be non-negative and each resolution must lie in 1..64. Either
// one resolution is given (applied to every band) or exactly one per band.
func NewDimensions(rows, columns, bands int, resolutions ...int) (Dimensions, error) {
	if rows < 0 || columns < 0 || bands < 0 {
		return Dimensions{}, fmt.Errorf("%w: negative dimension (%d rows, %d columns, %d bands)",
			ErrInvalidArgument, rows, columns, bands)
	}
	if len(resolutions) == 0 {
		return Dimensions{}, fmt.Errorf("%w: no radiometric resolution given", ErrInvalidArgument)
	}
	if len(resolutions) != 1 && len(resolutions) != bands {
		return Dimensions{}, fmt.Errorf("%w: %d resolutions for %d bands",
			ErrInvalidArgument, len(resolutions), bands)
	}

	res := make([]int, bands)
	for i := range res {
		r := resolutions[0]
		if len(resolutions) > 1 {
			r = resolutions[i]
		}
		if r < 1 || r > 64 {
			return Dimensions{}, fmt.Errorf("%w: radiometric resolution %d outside 1..64",
				ErrInvalidArgument, r)
		}
		res[i] = r
	}

	return Dimensions{rows: rows, columns: columns, bands: bands, resolutions: res}, nil
}

// Rows returns the number of rows.
func (d Dimensions) Rows() int { return d.rows }

// Columns returns the number of columns.
func (d Dimensions) Columns() int { return d.columns }

// Bands returns the number of spectral bands.
func (d Dimensions) Bands() int { return d.bands }

// TotalCount returns rows * columns * bands, the length of the flat buffer.
func (d Dimensions) TotalCount() int { return d.rows * d.columns * d.bands }

// Resolution returns the radiometric resolution of the given band in bits.
// It panics if band is out of range; callers validate indices first.
func (d Dimensions) Resolution(band int) int { return d.resolutions[band] }

// MaxValue returns the largest integer value the given band can hold,
// 2^resolution - 1.
func (d Dimensions) MaxValue(band int) uint64 {
	bits := d.resolutions[band]
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// contains reports whether the triple lies inside the raster.
func (d Dimensions) contains(row, col, band int) bool {
	return row >= 0 && row < d.rows &&
		col >= 0 && col < d.columns &&
		band >= 0 && band < d.bands
}

// String formats the dimensions for diagnostics.
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%dx%d", d.rows, d.columns, d.bands)
}
