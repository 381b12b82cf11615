package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/GISLab-ELTE/spectral/raster"
)

// Grayscale renders one band as a grayscale PNG: the band's minimum maps to
// black and its maximum to white.
func Grayscale(b *raster.Band, opts ...Option) (*Result, error) {
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
	return finish(img, o)
}

// Ramp renders one band through a two-color ramp given as hex colors, e.g.
// "#000080" to "#FFD700". Colors are blended in Lab space so the ramp stays
// perceptually even.
func Ramp(b *raster.Band, fromHex, toHex string, opts ...Option) (*Result, error) {
	from, err := colorful.Hex(fromHex)
	if err != nil {
		return nil, fmt.Errorf("invalid ramp start color %q: %w", fromHex, err)
	}
	to, err := colorful.Hex(toHex)
	if err != nil {
		return nil, fmt.Errorf("invalid ramp end color %q: %w", toHex, err)
	}

	o := applyOptions(opts)
	norm, err := normalizer(b, o)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, b.Columns(), b.Rows()))
	for row := 0; row < b.Rows(); row++ {
		for col := 0; col < b.Columns(); col++ {
			v, err := b.FloatValue(row, col)
			if err != nil {
				return nil, err
			}
			c := from.BlendLab(to, norm(v)).Clamped()
			r8, g8, b8 := c.RGB255()
			img.SetNRGBA(col, row, color.NRGBA{R: r8, G: g8, B: b8, A: 255})
		}
	}
	return finish(img, o)
}
