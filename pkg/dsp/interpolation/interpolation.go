// Package interpolation provides fractional sampling along a scan line.
package interpolation

import "math"

// Linear performs linear interpolation between two samples.
// frac is the fractional position between y0 and y1 (0.0 to 1.0).
func Linear(y0, y1, frac float32) float32 {
	return y0 + (y1-y0)*frac
}

// At samples buffer at a fractional position with linear interpolation.
// Positions outside the buffer take the nearest edge sample.
func At(buffer []float32, pos float32) float32 {
	n := len(buffer)
	if n == 0 {
		return 0
	}
	if pos <= 0 {
		return buffer[0]
	}
	last := float32(n - 1)
	if pos >= last {
		return buffer[n-1]
	}
	idx := int(math.Floor(float64(pos)))
	return Linear(buffer[idx], buffer[idx+1], pos-float32(idx))
}

// Shift writes src delayed by offset samples into dst. A positive offset
// moves content to the right. dst and src must not overlap.
func Shift(dst, src []float32, offset float32) {
	for i := range dst {
		dst[i] = At(src, float32(i)-offset)
	}
}
