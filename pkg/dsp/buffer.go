// Package dsp provides in-place utilities for scan line sample buffers.
package dsp

// Rotate rotates each (a[i], b[i]) pair by the angle whose cosine and sine
// are given. Used to shift chroma phase.
func Rotate(a, b []float32, cos, sin float32) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		x, y := a[i], b[i]
		a[i] = x*cos - y*sin
		b[i] = x*sin + y*cos
	}
}
