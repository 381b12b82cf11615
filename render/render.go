package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/GISLab-ELTE/spectral/raster"
)

// Result contains a rendered raster image.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Option adjusts how band values are turned into pixels.
type Option func(*options)

type options struct {
	gamma   float64
	stretch bool
}

// WithGamma applies a gamma correction to the rendered image. Values above 1
// brighten the midtones, values below 1 darken them.
func WithGamma(gamma float64) Option {
	return func(o *options) {
		if gamma > 0 {
			o.gamma = gamma
		}
	}
}

// WithStretch normalizes by the band's observed minimum and maximum instead
// of its full radiometric domain, spreading low-contrast data over the whole
// output range.
func WithStretch() Option {
	return func(o *options) {
		o.stretch = true
	}
}

func applyOptions(opts []Option) *options {
	o := &options{gamma: 1.0}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// normalizer returns a function scaling band values into [0,1].
func normalizer(b *raster.Band, o *options) (func(float64) float64, error) {
	var lo, hi float64
	if b.Format() == raster.FormatInteger && !o.stretch {
		lo = 0
		hi = math.Pow(2, float64(b.Resolution())) - 1
	} else {
		stats, err := b.Statistics()
		if err != nil {
			return nil, err
		}
		lo, hi = stats.Min, stats.Max
	}
	span := hi - lo
	return func(v float64) float64 {
		if span <= 0 {
			return 0
		}
		t := (v - lo) / span
		if t < 0 {
			return 0
		}
		if t > 1 {
			return 1
		}
		return t
	}, nil
}

// finish applies gamma and encodes the image into a Result.
func finish(img image.Image, o *options) (*Result, error) {
	if o.gamma != 1.0 {
		img = adjust.Gamma(img, o.gamma)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	bounds := img.Bounds()
	return &Result{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Decode returns the PNG bytes of a rendered result.
func (r *Result) Decode() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rendered image: %w", err)
	}
	return data, nil
}
