package raster

import (
	"fmt"
	"math"
)

// Store is the storage-facing value engine of a raster. It exclusively owns
// a flat buffer of rows*columns*bands scalars, physically interleaved in one
// native data order, and exposes bounds-checked scalar and bulk access in
// both integer and floating-point representations.
//
// The canonical representation is chosen once at construction by the Format:
// integer stores hold quantized values, float stores hold IEEE doubles. The
// other representation is always derived through conversion, never stored,
// so the two views cannot diverge.
//
// # Truncation Policy
//
// Integer writes whose magnitude exceeds the band's radiometric resolution
// are truncated deterministically by masking to the low resolution bits.
// Float-to-integer conversion rounds to the nearest integer, floors negative
// results at zero and then applies the same mask.
//
// A Store is not internally synchronized; see the package documentation for
// the required reader/writer discipline.
type Store struct {
	dims      Dimensions
	format    Format
	order     DataOrder
	supported OrderSet
	readable  bool
	writable  bool

	ints   []uint64
	floats []float64

	// mutations counts successful writes; bands use it to invalidate
	// lazily computed histograms.
	mutations uint64
}

// StoreOption configures store construction.
type StoreOption func(*storeOptions)

type storeOptions struct {
	supported OrderSet
	readable  bool
	writable  bool
}

// WithSupportedOrders declares the data orders the store services in bulk
// operations beyond its native order. The native order is always included.
func WithSupportedOrders(orders ...DataOrder) StoreOption {
	return func(o *storeOptions) {
		o.supported = OrderSet(orders)
	}
}

// ReadOnly constructs a store that rejects every write entry point with
// ErrUnsupportedOperation.
func ReadOnly() StoreOption {
	return func(o *storeOptions) {
		o.writable = false
	}
}

// WriteOnly constructs a store that rejects every read entry point with
// ErrUnsupportedOperation.
func WriteOnly() StoreOption {
	return func(o *storeOptions) {
		o.readable = false
	}
}

// NewStore creates a Store with fixed dimensions, format and native data
// order. The shape is immutable afterwards; only scalar contents mutate.
// By default the store is readable, writable and services all three orders.
func NewStore(format Format, dims Dimensions, order DataOrder, opts ...StoreOption) (*Store, error) {
	if format != FormatInteger && format != FormatFloat {
		return nil, fmt.Errorf("%w: unknown format %d", ErrInvalidArgument, int(format))
	}
	if !order.isPhysical() {
		return nil, fmt.Errorf("%w: %s is not a physical data order", ErrInvalidArgument, order)
	}

	options := &storeOptions{supported: AllOrders, readable: true, writable: true}
	for _, opt := range opts {
		opt(options)
	}

	supported := options.supported.clone()
	if !supported.Contains(order) {
		supported = append(supported, order)
	}

	s := &Store{
		dims:      dims,
		format:    format,
		order:     order,
		supported: supported,
		readable:  options.readable,
		writable:  options.writable,
	}
	switch format {
	case FormatInteger:
		s.ints = make([]uint64, dims.TotalCount())
	case FormatFloat:
		s.floats = make([]float64, dims.TotalCount())
	}
	return s, nil
}

// Dimensions returns the store's immutable shape.
func (s *Store) Dimensions() Dimensions { return s.dims }

// Format returns the canonical value representation.
func (s *Store) Format() Format { return s.format }

// Order returns the native data order of the buffer.
func (s *Store) Order() DataOrder { return s.order }

// SupportedOrders returns the data orders bulk operations may request.
func (s *Store) SupportedOrders() OrderSet { return append(OrderSet(nil), s.supported...) }

// Readable reports whether read entry points are serviced.
func (s *Store) Readable() bool { return s.readable }

// Writable reports whether write entry points are serviced.
func (s *Store) Writable() bool { return s.writable }

// generation returns the write counter used for histogram invalidation.
func (s *Store) generation() uint64 { return s.mutations }

func (s *Store) checkReadable() error {
	if !s.readable {
		return fmt.Errorf("%w: store is not readable", ErrUnsupportedOperation)
	}
	return nil
}

func (s *Store) checkWritable() error {
	if !s.writable {
		return fmt.Errorf("%w: store is not writable", ErrUnsupportedOperation)
	}
	return nil
}

// resolveOrder normalizes a requested order and checks it against the
// supported set. OrderUnspecified selects the native order.
func (s *Store) resolveOrder(order DataOrder) (DataOrder, error) {
	if order == OrderUnspecified {
		return s.order, nil
	}
	if !s.supported.Contains(order) {
		return 0, fmt.Errorf("%w: data order %s not in supported set", ErrUnsupportedOperation, order)
	}
	return order, nil
}

// quantize converts a float to the band's integer domain: round to nearest,
// floor negatives at zero, then truncate to the band's resolution.
func (s *Store) quantize(band int, v float64) uint64 {
	r := math.Round(v)
	if r <= 0 || math.IsNaN(r) {
		return 0
	}
	max := s.dims.MaxValue(band)
	if r >= math.MaxUint64 {
		return max
	}
	return uint64(r) & max
}

// truncate masks an integer value to the band's radiometric resolution.
func (s *Store) truncate(band int, v uint64) uint64 {
	return v & s.dims.MaxValue(band)
}

// rawValue reads the canonical scalar at a native offset as an integer.
func (s *Store) rawValue(band, offset int) uint64 {
	if s.format == FormatFloat {
		return s.quantize(band, s.floats[offset])
	}
	return s.ints[offset]
}

// rawFloatValue reads the canonical scalar at a native offset as a float.
func (s *Store) rawFloatValue(offset int) float64 {
	if s.format == FormatFloat {
		return s.floats[offset]
	}
	return float64(s.ints[offset])
}

// setRawValue writes an integer scalar at a native offset, applying the
// truncation policy.
func (s *Store) setRawValue(band, offset int, v uint64) {
	if s.format == FormatFloat {
		s.floats[offset] = float64(s.truncate(band, v))
		return
	}
	s.ints[offset] = s.truncate(band, v)
}

// setRawFloatValue writes a float scalar at a native offset, quantizing for
// integer stores.
func (s *Store) setRawFloatValue(band, offset int, v float64) {
	if s.format == FormatFloat {
		s.floats[offset] = v
		return
	}
	s.ints[offset] = s.quantize(band, v)
}

// Value reads the quantized integer value at (row, col, band).
func (s *Store) Value(row, col, band int) (uint64, error) {
	if err := s.checkReadable(); err != nil {
		return 0, err
	}
	offset, err := Offset(s.dims, s.order, row, col, band)
	if err != nil {
		return 0, err
	}
	return s.rawValue(band, offset), nil
}

// FloatValue reads the floating-point value at (row, col, band).
func (s *Store) FloatValue(row, col, band int) (float64, error) {
	if err := s.checkReadable(); err != nil {
		return 0, err
	}
	offset, err := Offset(s.dims, s.order, row, col, band)
	if err != nil {
		return 0, err
	}
	return s.rawFloatValue(offset), nil
}

// SetValue writes a quantized integer value at (row, col, band).
func (s *Store) SetValue(row, col, band int, v uint64) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	offset, err := Offset(s.dims, s.order, row, col, band)
	if err != nil {
		return err
	}
	s.setRawValue(band, offset, v)
	s.mutations++
	return nil
}

// SetFloatValue writes a floating-point value at (row, col, band).
func (s *Store) SetFloatValue(row, col, band int, v float64) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	offset, err := Offset(s.dims, s.order, row, col, band)
	if err != nil {
		return err
	}
	s.setRawFloatValue(band, offset, v)
	s.mutations++
	return nil
}

// ValueSequence reads count consecutive logical values starting at the
// absolute linear offset start, materialized in the requested order.
// OrderUnspecified selects the native order.
func (s *Store) ValueSequence(start, count int, order DataOrder) ([]uint64, error) {
	if err := s.checkReadable(); err != nil {
		return nil, err
	}
	requested, err := s.resolveOrder(order)
	if err != nil {
		return nil, err
	}
	offsets, err := sequenceOffsets(s.dims, s.order, requested, start, count)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, count)
	for i, off := range offsets {
		_, _, band, err := Indices(s.dims, s.order, off)
		if err != nil {
			return nil, err
		}
		out[i] = s.rawValue(band, off)
	}
	return out, nil
}

// ValueSequenceAt is ValueSequence with the starting point expressed as a
// (row, col, band) triple; the run proceeds along increasing linear offset
// in the requested order from that point.
func (s *Store) ValueSequenceAt(row, col, band, count int, order DataOrder) ([]uint64, error) {
	start, err := s.sequenceStart(row, col, band, order)
	if err != nil {
		return nil, err
	}
	return s.ValueSequence(start, count, order)
}

// FloatValueSequence is the floating-point variant of ValueSequence.
func (s *Store) FloatValueSequence(start, count int, order DataOrder) ([]float64, error) {
	if err := s.checkReadable(); err != nil {
		return nil, err
	}
	requested, err := s.resolveOrder(order)
	if err != nil {
		return nil, err
	}
	offsets, err := sequenceOffsets(s.dims, s.order, requested, start, count)
	if err != nil {
		return nil, err
	}
	out := make([]float64, count)
	for i, off := range offsets {
		out[i] = s.rawFloatValue(off)
	}
	return out, nil
}

// FloatValueSequenceAt is FloatValueSequence with a triple starting point.
func (s *Store) FloatValueSequenceAt(row, col, band, count int, order DataOrder) ([]float64, error) {
	start, err := s.sequenceStart(row, col, band, order)
	if err != nil {
		return nil, err
	}
	return s.FloatValueSequence(start, count, order)
}

// SetValueSequence replaces len(values) consecutive logical values starting
// at the absolute linear offset start, converting from the supplied order to
// the native order before committing. Validation precedes mutation: either
// the whole sequence commits or the buffer is untouched.
func (s *Store) SetValueSequence(start int, values []uint64, order DataOrder) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	requested, err := s.resolveOrder(order)
	if err != nil {
		return err
	}
	offsets, err := sequenceOffsets(s.dims, s.order, requested, start, len(values))
	if err != nil {
		return err
	}
	for i, off := range offsets {
		_, _, band, err := Indices(s.dims, s.order, off)
		if err != nil {
			return err
		}
		s.setRawValue(band, off, values[i])
	}
	if len(values) > 0 {
		s.mutations++
	}
	return nil
}

// SetValueSequenceAt is SetValueSequence with a triple starting point.
func (s *Store) SetValueSequenceAt(row, col, band int, values []uint64, order DataOrder) error {
	start, err := s.sequenceStart(row, col, band, order)
	if err != nil {
		return err
	}
	return s.SetValueSequence(start, values, order)
}

// SetFloatValueSequence is the floating-point variant of SetValueSequence.
func (s *Store) SetFloatValueSequence(start int, values []float64, order DataOrder) error {
	if err := s.checkWritable(); err != nil {
		return err
	}
	requested, err := s.resolveOrder(order)
	if err != nil {
		return err
	}
	offsets, err := sequenceOffsets(s.dims, s.order, requested, start, len(values))
	if err != nil {
		return err
	}
	for i, off := range offsets {
		_, _, band, err := Indices(s.dims, s.order, off)
		if err != nil {
			return err
		}
		s.setRawFloatValue(band, off, values[i])
	}
	if len(values) > 0 {
		s.mutations++
	}
	return nil
}

// SetFloatValueSequenceAt is SetFloatValueSequence with a triple starting
// point.
func (s *Store) SetFloatValueSequenceAt(row, col, band int, values []float64, order DataOrder) error {
	start, err := s.sequenceStart(row, col, band, order)
	if err != nil {
		return err
	}
	return s.SetFloatValueSequence(start, values, order)
}

// sequenceStart resolves a triple starting point into a linear offset in the
// requested order (native when unspecified).
func (s *Store) sequenceStart(row, col, band int, order DataOrder) (int, error) {
	requested, err := s.resolveOrder(order)
	if err != nil {
		return 0, err
	}
	return Offset(s.dims, requested, row, col, band)
}
