package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/GISLab-ELTE/spectral/raster"
)

// Composite renders three bands as the red, green and blue channels of one
// image. The bands must share dimensions; each channel is normalized against
// its own band's domain.
func Composite(red, green, blue *raster.Band, opts ...Option) (*Result, error) {
	if red.Rows() != green.Rows() || red.Rows() != blue.Rows() ||
		red.Columns() != green.Columns() || red.Columns() != blue.Columns() {
		return nil, fmt.Errorf("%w: composite bands differ in shape", raster.ErrInvalidArgument)
	}

	o := applyOptions(opts)
	channels := []*raster.Band{red, green, blue}
	norms := make([]func(float64) float64, len(channels))
	for i, ch := range channels {
		n, err := normalizer(ch, o)
		if err != nil {
			return nil, err
		}
		norms[i] = n
	}

	img := image.NewNRGBA(image.Rect(0, 0, red.Columns(), red.Rows()))
	for row := 0; row < red.Rows(); row++ {
		for col := 0; col < red.Columns(); col++ {
			var rgb [3]uint8
			for i, ch := range channels {
				v, err := ch.FloatValue(row, col)
				if err != nil {
					return nil, err
				}
				rgb[i] = uint8(norms[i](v)*255 + 0.5)
			}
			img.SetNRGBA(col, row, color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255})
		}
	}
	return finish(img, o)
}

// Overview renders a band in grayscale and downscales it to fit within
// maxDim pixels on its longer side, preserving aspect ratio. Bands already
// smaller than maxDim render at full size.
func Overview(b *raster.Band, maxDim int, opts ...Option) (*Result, error) {
	if maxDim <= 0 {
		return nil, fmt.Errorf("%w: overview size %d", raster.ErrInvalidArgument, maxDim)
	}

	o := applyOptions(opts)
	norm, err := normalizer(b, o)
	if err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, b.Columns(), b.Rows()))
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Columns(); col++ {
			v, err := b.FloatValue(row, col)
			if err != nil {
				return nil, err
			}
			img.SetGray(col, row, color.Gray{Y: uint8(norm(v)*255 + 0.5)})
		}
	}

	if b.Columns() > maxDim || b.Rows() > maxDim {
		return finish(imaging.Fit(img, maxDim, maxDim, imaging.Lanczos), o)
	}
	return finish(img, o)
}
