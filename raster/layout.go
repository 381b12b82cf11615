package raster

import "fmt"

// Offset translates a (row, column, band) triple into a linear buffer offset
// for the given data order.
//
// The three interleavings map as follows:
//
//	RowColumnBand: band*rows*cols + row*cols + col
//	BandRowColumn: row*cols*bands + col*bands + band
//	RowBandColumn: row*bands*cols + band*cols + col
//
// Out-of-range indices fail with ErrIndexOutOfRange; an order that is not a
// physical layout fails with ErrUnsupportedOperation. The function never
// wraps or clamps.
func Offset(d Dimensions, order DataOrder, row, col, band int) (int, error) {
	if !d.contains(row, col, band) {
		return 0, fmt.Errorf("%w: (%d,%d,%d) outside %s", ErrIndexOutOfRange, row, col, band, d)
	}
	switch order {
	case RowColumnBand:
		return band*d.rows*d.columns + row*d.columns + col, nil
	case BandRowColumn:
		return row*d.columns*d.bands + col*d.bands + band, nil
	case RowBandColumn:
		return row*d.bands*d.columns + band*d.columns + col, nil
	default:
		return 0, fmt.Errorf("%w: %s is not a physical data order", ErrUnsupportedOperation, order)
	}
}

// Indices is the exact inverse of Offset: it decomposes a linear offset into
// the (row, column, band) triple it addresses under the given order.
func Indices(d Dimensions, order DataOrder, offset int) (row, col, band int, err error) {
	if offset < 0 || offset >= d.TotalCount() {
		return 0, 0, 0, fmt.Errorf("%w: offset %d outside [0,%d)", ErrIndexOutOfRange, offset, d.TotalCount())
	}
	switch order {
	case RowColumnBand:
		band = offset / (d.rows * d.columns)
		rest := offset % (d.rows * d.columns)
		row = rest / d.columns
		col = rest % d.columns
	case BandRowColumn:
		row = offset / (d.columns * d.bands)
		rest := offset % (d.columns * d.bands)
		col = rest / d.bands
		band = rest % d.bands
	case RowBandColumn:
		row = offset / (d.bands * d.columns)
		rest := offset % (d.bands * d.columns)
		band = rest / d.columns
		col = rest % d.columns
	default:
		return 0, 0, 0, fmt.Errorf("%w: %s is not a physical data order", ErrUnsupportedOperation, order)
	}
	return row, col, band, nil
}

// translateOffset converts a linear offset expressed in one order into the
// offset of the same logical element in another order. Equal orders pass
// through unchanged.
func translateOffset(d Dimensions, from, to DataOrder, offset int) (int, error) {
	if from == to {
		if offset < 0 || offset >= d.TotalCount() {
			return 0, fmt.Errorf("%w: offset %d outside [0,%d)", ErrIndexOutOfRange, offset, d.TotalCount())
		}
		return offset, nil
	}
	row, col, band, err := Indices(d, from, offset)
	if err != nil {
		return 0, err
	}
	return Offset(d, to, row, col, band)
}

// sequenceOffsets resolves the native-order offsets of a run of count
// elements that proceeds along increasing linear offset in the requested
// order, starting at start. The run is fully validated before the first
// offset is produced, so callers may mutate as they walk the result.
func sequenceOffsets(d Dimensions, native, requested DataOrder, start, count int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrIndexOutOfRange, count)
	}
	if start < 0 || start+count > d.TotalCount() {
		return nil, fmt.Errorf("%w: run [%d,%d) outside [0,%d)",
			ErrIndexOutOfRange, start, start+count, d.TotalCount())
	}

	offsets := make([]int, count)
	if native == requested {
		for i := range offsets {
			offsets[i] = start + i
		}
		return offsets, nil
	}
	for i := range offsets {
		off, err := translateOffset(d, requested, native, start+i)
		if err != nil {
			return nil, err
		}
		offsets[i] = off
	}
	return offsets, nil
}
