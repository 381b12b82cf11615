package raster

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

func TestNewRasterValidation(t *testing.T) {
	if _, err := New("x", nil, nil, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil store: got %v, want ErrInvalidArgument", err)
	}

	s := newTestStore(t, 2, 2, 1, RowColumnBand)
	if _, err := New("x", s, cornerMappings()[:2], nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("2 mappings: got %v, want ErrInvalidArgument", err)
	}
}

func TestRasterIdentifier(t *testing.T) {
	s := newTestStore(t, 2, 2, 1, RowColumnBand)

	r, err := New("scene-42", s, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if r.ID() != "scene-42" {
		t.Errorf("ID = %q, want scene-42", r.ID())
	}

	// An empty identifier gets a generated one.
	anon, err := New("", s, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if anon.ID() == "" {
		t.Error("empty identifier not replaced")
	}

	other, _ := New("", s, nil, nil)
	if other.ID() == anon.ID() {
		t.Error("generated identifiers collide")
	}
}

func TestRasterBands(t *testing.T) {
	s := newTestStore(t, 2, 2, 3, BandRowColumn)
	r, err := New("multi", s, nil, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	bands := r.Bands()
	if len(bands) != 3 {
		t.Fatalf("Bands() returned %d views, want 3", len(bands))
	}
	for i, b := range bands {
		if b.Index() != i {
			t.Errorf("band %d has index %d", i, b.Index())
		}
	}

	if _, err := r.Band(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Band(-1): got %v, want ErrIndexOutOfRange", err)
	}
	if _, err := r.Band(3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Band(3): got %v, want ErrIndexOutOfRange", err)
	}

	// Band views project over the shared store.
	b1, _ := r.Band(1)
	if err := b1.SetValue(0, 0, 42); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}
	if v, _ := s.Value(0, 0, 1); v != 42 {
		t.Errorf("store value = %d after band write, want 42", v)
	}
}

func TestRasterMappingMetadata(t *testing.T) {
	r := newTestRaster(t)

	if !r.IsMapped() {
		t.Fatal("IsMapped = false for mapped raster")
	}
	if r.Mapper() == nil {
		t.Fatal("Mapper() = nil for mapped raster")
	}

	bound, err := r.Envelope()
	if err != nil {
		t.Fatalf("Envelope failed: %v", err)
	}
	if bound.Min.X() != 10 || bound.Max.X() != 13 || bound.Min.Y() != 17 || bound.Max.Y() != 20 {
		t.Errorf("envelope = %v, want (10,17)-(13,20)", bound)
	}

	if !r.Contains(orb.Point{11, 18}) {
		t.Error("Contains(11,18) = false, want true")
	}
	if r.Contains(orb.Point{0, 0}) {
		t.Error("Contains(0,0) = true, want false")
	}
}

func TestUnmappedRasterMetadata(t *testing.T) {
	s := newTestStore(t, 2, 2, 1, RowColumnBand)
	r, _ := New("", s, nil, nil)

	if r.IsMapped() {
		t.Error("IsMapped = true for unmapped raster")
	}
	if _, err := r.Envelope(); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("Envelope on unmapped raster: got %v, want ErrUnsupportedOperation", err)
	}
	if r.Contains(orb.Point{0, 0}) {
		t.Error("unmapped raster contains a point")
	}
}

func TestRasterParams(t *testing.T) {
	s := newTestStore(t, 1, 1, 1, RowColumnBand)
	src := Params{
		"sensor":  StringParam("MSS"),
		"bands":   IntParam(4),
		"gain":    FloatParam(0.5),
		"archive": BoolParam(true),
	}
	r, err := New("p", s, nil, src)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if v, ok := r.Params().Lookup("sensor"); !ok {
		t.Error("sensor param absent")
	} else if sv, ok := v.StringValue(); !ok || sv != "MSS" {
		t.Errorf("sensor = %q (%v), want MSS", sv, ok)
	}
	if v, ok := r.Params().Lookup("bands"); !ok {
		t.Error("bands param absent")
	} else if iv, ok := v.IntValue(); !ok || iv != 4 {
		t.Errorf("bands = %d (%v), want 4", iv, ok)
	}
	gain, _ := r.Params().Lookup("gain")
	if fv, ok := gain.FloatValue(); !ok || fv != 0.5 {
		t.Errorf("gain = %f (%v), want 0.5", fv, ok)
	}
	// Mismatched representation reports absent.
	if _, ok := gain.IntValue(); ok {
		t.Error("float param answered as int")
	}
	if v, ok := r.Params().Lookup("archive"); !ok {
		t.Error("archive param absent")
	} else if bv, ok := v.BoolValue(); !ok || !bv {
		t.Errorf("archive = %v (%v), want true", bv, ok)
	}

	// Absent keys stay distinguishable from zero values.
	if _, ok := r.Params().Lookup("missing"); ok {
		t.Error("missing key reported present")
	}

	// The raster owns a copy of the bag.
	src["sensor"] = StringParam("changed")
	sensor, _ := r.Params().Lookup("sensor")
	if sv, _ := sensor.StringValue(); sv != "MSS" {
		t.Errorf("param bag not copied: sensor = %q", sv)
	}
}

func TestDimensionsValidation(t *testing.T) {
	if _, err := NewDimensions(-1, 2, 1, 8); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative rows: got %v, want ErrInvalidArgument", err)
	}
	if _, err := NewDimensions(2, 2, 2, 8, 8, 8); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("resolution count mismatch: got %v, want ErrInvalidArgument", err)
	}
	if _, err := NewDimensions(2, 2, 1, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero resolution: got %v, want ErrInvalidArgument", err)
	}
	if _, err := NewDimensions(2, 2, 1, 65); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("oversize resolution: got %v, want ErrInvalidArgument", err)
	}

	d, err := NewDimensions(3, 4, 2, 8, 12)
	if err != nil {
		t.Fatalf("NewDimensions failed: %v", err)
	}
	if d.Rows() != 3 || d.Columns() != 4 || d.Bands() != 2 {
		t.Errorf("dimensions = %s, want 3x4x2", d)
	}
	if d.TotalCount() != 24 {
		t.Errorf("TotalCount = %d, want 24", d.TotalCount())
	}
	if d.Resolution(0) != 8 || d.Resolution(1) != 12 {
		t.Errorf("resolutions = %d,%d, want 8,12", d.Resolution(0), d.Resolution(1))
	}
	if d.MaxValue(0) != 255 || d.MaxValue(1) != 4095 {
		t.Errorf("max values = %d,%d, want 255,4095", d.MaxValue(0), d.MaxValue(1))
	}
}
