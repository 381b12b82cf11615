package raster

import (
	"errors"
	"testing"
)

// newTestStore builds a writable integer store with 8-bit bands.
func newTestStore(t *testing.T, rows, cols, bands int, order DataOrder, opts ...StoreOption) *Store {
	t.Helper()
	d, err := NewDimensions(rows, cols, bands, 8)
	if err != nil {
		t.Fatalf("NewDimensions failed: %v", err)
	}
	s, err := NewStore(FormatInteger, d, order, opts...)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	return s
}

func TestNewStoreValidation(t *testing.T) {
	d := testDimensions(t, 2, 2, 1)

	if _, err := NewStore(Format(99), d, RowColumnBand); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown format: got %v, want ErrInvalidArgument", err)
	}
	if _, err := NewStore(FormatInteger, d, OrderUnspecified); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("non-physical order: got %v, want ErrInvalidArgument", err)
	}

	s, err := NewStore(FormatInteger, d, RowBandColumn, WithSupportedOrders(RowColumnBand))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if !s.SupportedOrders().Contains(RowBandColumn) {
		t.Error("native order missing from supported set")
	}
	if !s.SupportedOrders().Contains(RowColumnBand) {
		t.Error("declared order missing from supported set")
	}
	if s.SupportedOrders().Contains(BandRowColumn) {
		t.Error("undeclared order present in supported set")
	}
}

func TestScalarReadWrite(t *testing.T) {
	s := newTestStore(t, 2, 3, 2, BandRowColumn)

	if err := s.SetValue(1, 2, 1, 77); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	v, err := s.Value(1, 2, 1)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != 77 {
		t.Errorf("Value = %d, want 77", v)
	}
	f, err := s.FloatValue(1, 2, 1)
	if err != nil {
		t.Fatalf("FloatValue failed: %v", err)
	}
	if f != 77.0 {
		t.Errorf("FloatValue = %f, want 77", f)
	}
}

func TestBoundsProperty(t *testing.T) {
	const rows, cols, bands = 3, 4, 2
	s := newTestStore(t, rows, cols, bands, RowColumnBand)

	bad := [][3]int{
		{-1, 0, 0}, {rows, 0, 0},
		{0, -1, 0}, {0, cols, 0},
		{0, 0, -1}, {0, 0, bands},
	}
	for _, idx := range bad {
		if _, err := s.Value(idx[0], idx[1], idx[2]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Value(%v): got %v, want ErrIndexOutOfRange", idx, err)
		}
		if err := s.SetValue(idx[0], idx[1], idx[2], 1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetValue(%v): got %v, want ErrIndexOutOfRange", idx, err)
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			for band := 0; band < bands; band++ {
				if err := s.SetValue(row, col, band, 1); err != nil {
					t.Errorf("SetValue(%d,%d,%d) failed: %v", row, col, band, err)
				}
				if _, err := s.Value(row, col, band); err != nil {
					t.Errorf("Value(%d,%d,%d) failed: %v", row, col, band, err)
				}
			}
		}
	}
}

func TestCapabilityGating(t *testing.T) {
	ro := newTestStore(t, 2, 2, 1, RowColumnBand, ReadOnly())
	if err := ro.SetValue(0, 0, 0, 1); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("write on read-only store: got %v, want ErrUnsupportedOperation", err)
	}
	if err := ro.SetValueSequence(0, []uint64{1}, OrderUnspecified); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("bulk write on read-only store: got %v, want ErrUnsupportedOperation", err)
	}
	if err := ro.SetFloatValue(0, 0, 0, 1); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("float write on read-only store: got %v, want ErrUnsupportedOperation", err)
	}
	if _, err := ro.Value(0, 0, 0); err != nil {
		t.Errorf("read on read-only store failed: %v", err)
	}

	wo := newTestStore(t, 2, 2, 1, RowColumnBand, WriteOnly())
	if _, err := wo.Value(0, 0, 0); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("read on write-only store: got %v, want ErrUnsupportedOperation", err)
	}
	if _, err := wo.ValueSequence(0, 1, OrderUnspecified); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("bulk read on write-only store: got %v, want ErrUnsupportedOperation", err)
	}
	if err := wo.SetValue(0, 0, 0, 1); err != nil {
		t.Errorf("write on write-only store failed: %v", err)
	}
}

func TestSequenceNativeRoundTrip(t *testing.T) {
	s := newTestStore(t, 2, 2, 2, RowColumnBand)

	in := []uint64{1, 2, 3, 4, 5, 6, 7, 8}
	if err := s.SetValueSequence(0, in, OrderUnspecified); err != nil {
		t.Fatalf("SetValueSequence failed: %v", err)
	}
	out, err := s.ValueSequence(0, len(in), OrderUnspecified)
	if err != nil {
		t.Fatalf("ValueSequence failed: %v", err)
	}
	for i := range in {
		if out[i] != in[i] {
			t.Errorf("out[%d] = %d, want %d", i, out[i], in[i])
		}
	}
}

func TestSequenceOrderConversion(t *testing.T) {
	s := newTestStore(t, 2, 2, 2, RowColumnBand)

	// Value == native offset, so a cross-order read exposes the permutation.
	in := []uint64{0, 1, 2, 3, 4, 5, 6, 7}
	if err := s.SetValueSequence(0, in, RowColumnBand); err != nil {
		t.Fatalf("SetValueSequence failed: %v", err)
	}

	got, err := s.ValueSequence(0, len(in), BandRowColumn)
	if err != nil {
		t.Fatalf("ValueSequence(BandRowColumn) failed: %v", err)
	}
	// BandRowColumn walks (r0,c0,b0),(r0,c0,b1),(r0,c1,b0),... which sit at
	// native offsets 0,4,1,5,2,6,3,7 in a band-sequential 2x2x2 buffer.
	want := []uint64{0, 4, 1, 5, 2, 6, 3, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("permuted[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	// Writing the permuted run back through the other order must restore the
	// native sequence bit for bit.
	if err := s.SetValueSequence(0, got, BandRowColumn); err != nil {
		t.Fatalf("SetValueSequence(BandRowColumn) failed: %v", err)
	}
	back, err := s.ValueSequence(0, len(in), RowColumnBand)
	if err != nil {
		t.Fatalf("ValueSequence(RowColumnBand) failed: %v", err)
	}
	for i := range in {
		if back[i] != in[i] {
			t.Errorf("round trip[%d] = %d, want %d", i, back[i], in[i])
		}
	}
}

func TestSequenceUnsupportedOrder(t *testing.T) {
	s := newTestStore(t, 2, 2, 2, RowColumnBand, WithSupportedOrders())

	if _, err := s.ValueSequence(0, 4, BandRowColumn); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("unsupported order read: got %v, want ErrUnsupportedOperation", err)
	}
	if err := s.SetValueSequence(0, []uint64{1, 2}, RowBandColumn); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("unsupported order write: got %v, want ErrUnsupportedOperation", err)
	}
	if _, err := s.ValueSequence(0, 4, RowColumnBand); err != nil {
		t.Errorf("native order read failed: %v", err)
	}
}

func TestSequenceValidationPrecedesMutation(t *testing.T) {
	s := newTestStore(t, 2, 2, 1, RowColumnBand)

	if err := s.SetValueSequence(0, []uint64{9, 9, 9, 9}, OrderUnspecified); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}
	// Run overlaps the end of the buffer; nothing may change.
	if err := s.SetValueSequence(2, []uint64{1, 2, 3}, OrderUnspecified); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("overrun write: got %v, want ErrIndexOutOfRange", err)
	}
	out, err := s.ValueSequence(0, 4, OrderUnspecified)
	if err != nil {
		t.Fatalf("ValueSequence failed: %v", err)
	}
	for i, v := range out {
		if v != 9 {
			t.Errorf("buffer[%d] = %d after failed write, want 9", i, v)
		}
	}
}

func TestSequenceAtTriple(t *testing.T) {
	s := newTestStore(t, 2, 3, 1, RowColumnBand)

	if err := s.SetValueSequenceAt(1, 0, 0, []uint64{7, 8, 9}, OrderUnspecified); err != nil {
		t.Fatalf("SetValueSequenceAt failed: %v", err)
	}
	v, err := s.Value(1, 2, 0)
	if err != nil {
		t.Fatalf("Value failed: %v", err)
	}
	if v != 9 {
		t.Errorf("Value(1,2,0) = %d, want 9", v)
	}
	run, err := s.ValueSequenceAt(1, 0, 0, 3, OrderUnspecified)
	if err != nil {
		t.Fatalf("ValueSequenceAt failed: %v", err)
	}
	if run[0] != 7 || run[1] != 8 || run[2] != 9 {
		t.Errorf("run = %v, want [7 8 9]", run)
	}
}

func TestTruncationPolicy(t *testing.T) {
	s := newTestStore(t, 1, 2, 1, RowColumnBand) // 8-bit band

	if err := s.SetValue(0, 0, 0, 256); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if v, _ := s.Value(0, 0, 0); v != 0 {
		t.Errorf("256 truncated to %d, want 0", v)
	}
	if err := s.SetValue(0, 1, 0, 257); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if v, _ := s.Value(0, 1, 0); v != 1 {
		t.Errorf("257 truncated to %d, want 1", v)
	}
}

func TestRepresentationDuality(t *testing.T) {
	s := newTestStore(t, 1, 4, 1, RowColumnBand)

	if err := s.SetValue(0, 0, 0, 42); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if f, _ := s.FloatValue(0, 0, 0); f != 42.0 {
		t.Errorf("FloatValue after integer write = %f, want 42", f)
	}

	if err := s.SetFloatValue(0, 1, 0, 41.5); err != nil {
		t.Fatalf("SetFloatValue failed: %v", err)
	}
	if v, _ := s.Value(0, 1, 0); v != 42 {
		t.Errorf("41.5 rounded to %d, want 42", v)
	}

	if err := s.SetFloatValue(0, 2, 0, -3.2); err != nil {
		t.Fatalf("SetFloatValue failed: %v", err)
	}
	if v, _ := s.Value(0, 2, 0); v != 0 {
		t.Errorf("negative float stored as %d, want 0", v)
	}
}

func TestFloatStore(t *testing.T) {
	d, err := NewDimensions(2, 2, 1, 8)
	if err != nil {
		t.Fatalf("NewDimensions failed: %v", err)
	}
	s, err := NewStore(FormatFloat, d, RowColumnBand)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := s.SetFloatValue(0, 0, 0, 1.25); err != nil {
		t.Fatalf("SetFloatValue failed: %v", err)
	}
	if f, _ := s.FloatValue(0, 0, 0); f != 1.25 {
		t.Errorf("FloatValue = %f, want 1.25", f)
	}
	// Integer view of a float store quantizes.
	if v, _ := s.Value(0, 0, 0); v != 1 {
		t.Errorf("Value = %d, want 1", v)
	}

	if err := s.SetFloatValueSequence(0, []float64{0.5, 1.5, 2.5, 3.5}, OrderUnspecified); err != nil {
		t.Fatalf("SetFloatValueSequence failed: %v", err)
	}
	out, err := s.FloatValueSequence(0, 4, OrderUnspecified)
	if err != nil {
		t.Fatalf("FloatValueSequence failed: %v", err)
	}
	want := []float64{0.5, 1.5, 2.5, 3.5}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %f, want %f", i, out[i], want[i])
		}
	}
}

// TestSingleBandScenario is the 2x2 single-band walkthrough: orders coincide
// when there is only one band.
func TestSingleBandScenario(t *testing.T) {
	s := newTestStore(t, 2, 2, 1, RowColumnBand)

	if err := s.SetValueSequence(0, []uint64{10, 20, 30, 40}, OrderUnspecified); err != nil {
		t.Fatalf("SetValueSequence failed: %v", err)
	}
	if v, _ := s.Value(0, 0, 0); v != 10 {
		t.Errorf("Value(0,0,0) = %d, want 10", v)
	}
	if v, _ := s.Value(1, 1, 0); v != 40 {
		t.Errorf("Value(1,1,0) = %d, want 40", v)
	}

	run, err := s.ValueSequenceAt(0, 0, 0, 4, BandRowColumn)
	if err != nil {
		t.Fatalf("ValueSequenceAt(BandRowColumn) failed: %v", err)
	}
	want := []uint64{10, 20, 30, 40}
	for i := range want {
		if run[i] != want[i] {
			t.Errorf("run[%d] = %d, want %d", i, run[i], want[i])
		}
	}

	r, err := New("", s, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	band, err := r.Band(0)
	if err != nil {
		t.Fatalf("Band failed: %v", err)
	}
	if v, _ := band.NearestValue(5, 5); v != 40 {
		t.Errorf("NearestValue(5,5) = %d, want 40", v)
	}
}
