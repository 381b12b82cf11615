package raster

// Histogram is a frequency table over one band's integer value domain
// (0 .. 2^resolution - 1). Float values are counted at their quantized
// integer value.
type Histogram struct {
	counts []int
	total  int
}

// Count returns how many pixels hold the value v. Values outside the band's
// domain count zero.
func (h *Histogram) Count(v uint64) int {
	if v >= uint64(len(h.counts)) {
		return 0
	}
	return h.counts[v]
}

// Total returns the number of pixels counted, rows * columns.
func (h *Histogram) Total() int { return h.total }

// Buckets returns the size of the value domain, 2^resolution.
func (h *Histogram) Buckets() int { return len(h.counts) }

// Min returns the smallest value with a non-zero count, or 0 for an empty
// band.
func (h *Histogram) Min() uint64 {
	for v, c := range h.counts {
		if c > 0 {
			return uint64(v)
		}
	}
	return 0
}

// Max returns the largest value with a non-zero count, or 0 for an empty
// band.
func (h *Histogram) Max() uint64 {
	for v := len(h.counts) - 1; v >= 0; v-- {
		if h.counts[v] > 0 {
			return uint64(v)
		}
	}
	return 0
}

// Mean returns the average counted value, or 0 for an empty band.
func (h *Histogram) Mean() float64 {
	if h.total == 0 {
		return 0
	}
	var sum float64
	for v, c := range h.counts {
		sum += float64(v) * float64(c)
	}
	return sum / float64(h.total)
}
