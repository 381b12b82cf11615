package render

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"

	"github.com/GISLab-ELTE/spectral/raster"
)

// FromImage builds an 8-bit integer raster from an ordinary image.
//
// bands selects the import mode: 1 converts to luminance through a grayscale
// filter, 3 takes the red, green and blue channels and 4 adds alpha. The
// raster is stored band-interleaved-by-pixel, matching the source layout.
func FromImage(img image.Image, bands int) (*raster.Raster, error) {
	if bands != 1 && bands != 3 && bands != 4 {
		return nil, fmt.Errorf("%w: import supports 1, 3 or 4 bands, got %d",
			raster.ErrInvalidArgument, bands)
	}

	if bands == 1 {
		img = effect.Grayscale(img)
	}

	bounds := img.Bounds()
	rows, cols := bounds.Dy(), bounds.Dx()

	dims, err := raster.NewDimensions(rows, cols, bands, 8)
	if err != nil {
		return nil, err
	}
	store, err := raster.NewStore(raster.FormatInteger, dims, raster.BandRowColumn)
	if err != nil {
		return nil, err
	}

	values := make([]uint64, dims.TotalCount())
	i := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r, g, b, a := img.At(bounds.Min.X+col, bounds.Min.Y+row).RGBA()
			// Convert from 16-bit to 8-bit channels.
			channels := [4]uint64{uint64(r >> 8), uint64(g >> 8), uint64(b >> 8), uint64(a >> 8)}
			for band := 0; band < bands; band++ {
				values[i] = channels[band]
				i++
			}
		}
	}
	if err := store.SetValueSequence(0, values, raster.OrderUnspecified); err != nil {
		return nil, err
	}

	return raster.New("", store, nil, nil)
}
