package raster

import "math"

// Statistics summarizes the value distribution of one band.
type Statistics struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// Statistics computes min, max and mean over the band. Integer bands derive
// the summary from the histogram; float bands (and integer bands too wide
// for a histogram) scan the buffer.
func (b *Band) Statistics() (*Statistics, error) {
	if err := b.store.checkReadable(); err != nil {
		return nil, err
	}

	if b.Format() == FormatInteger && b.Resolution() <= maxHistogramBits {
		h, err := b.Histogram()
		if err != nil {
			return nil, err
		}
		return &Statistics{
			Min:   float64(h.Min()),
			Max:   float64(h.Max()),
			Mean:  h.Mean(),
			Count: h.Total(),
		}, nil
	}

	d := b.store.Dimensions()
	stats := &Statistics{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for row := 0; row < d.Rows(); row++ {
		for col := 0; col < d.Columns(); col++ {
			v, err := b.FloatValue(row, col)
			if err != nil {
				return nil, err
			}
			if v < stats.Min {
				stats.Min = v
			}
			if v > stats.Max {
				stats.Max = v
			}
			sum += v
			stats.Count++
		}
	}
	if stats.Count == 0 {
		return &Statistics{}, nil
	}
	stats.Mean = sum / float64(stats.Count)
	return stats, nil
}
