package raster

// Format distinguishes the two value representations a Store can hold.
type Format int

const (
	// FormatInteger stores quantized integer values limited by each band's
	// radiometric resolution.
	FormatInteger Format = iota

	// FormatFloat stores IEEE 754 double-precision values.
	FormatFloat
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatInteger:
		return "Integer"
	case FormatFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// DataOrder identifies the physical interleaving of band, row and column
// values within a linear buffer.
//
// OrderUnspecified is a marker, not a physical order: passing it to a
// sequence operation selects the store's native order.
type DataOrder int

const (
	// OrderUnspecified selects the native order of the store.
	OrderUnspecified DataOrder = iota

	// RowColumnBand is band-sequential storage: all values of one band are
	// contiguous. Offset formula: band*rows*cols + row*cols + col.
	RowColumnBand

	// BandRowColumn is band-interleaved-by-pixel storage: all bands of one
	// pixel are contiguous. Offset formula: row*cols*bands + col*bands + band.
	BandRowColumn

	// RowBandColumn is band-interleaved-by-line storage: one band's values
	// for a row are contiguous. Offset formula: row*bands*cols + band*cols + col.
	RowBandColumn
)

// String returns the name of the data order.
func (o DataOrder) String() string {
	switch o {
	case OrderUnspecified:
		return "Unspecified"
	case RowColumnBand:
		return "RowColumnBand"
	case BandRowColumn:
		return "BandRowColumn"
	case RowBandColumn:
		return "RowBandColumn"
	default:
		return "Unknown"
	}
}

// isPhysical reports whether o names one of the three storage layouts.
func (o DataOrder) isPhysical() bool {
	return o == RowColumnBand || o == BandRowColumn || o == RowBandColumn
}

// OrderSet is an explicit capability set of data orders. Membership is
// computed by enumeration rather than bit arithmetic.
type OrderSet []DataOrder

// AllOrders contains every physical data order. An empty OrderSet is the
// "none" marker; stores normalize it to the native order alone.
var AllOrders = OrderSet{RowColumnBand, BandRowColumn, RowBandColumn}

// Contains reports whether o is a member of the set.
func (s OrderSet) Contains(o DataOrder) bool {
	for _, member := range s {
		if member == o {
			return true
		}
	}
	return false
}

// clone returns a defensive copy with duplicates and non-physical markers
// removed.
func (s OrderSet) clone() OrderSet {
	out := make(OrderSet, 0, len(s))
	for _, o := range s {
		if o.isPhysical() && !out.Contains(o) {
			out = append(out, o)
		}
	}
	return out
}
