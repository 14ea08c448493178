// Package yiq converts packed RGBA8888 video frames to and from planar YIQ,
// the luma/chroma representation the NTSC effect operates on.
//
// A Frame carries one float32 plane per component, each width*height samples.
// When a frame is built from a single field only the rows of that field hold
// data; WritePacked reconstructs the remaining rows.
package yiq

import (
	"fmt"
	"iter"
)

// PixelBytes is the size of one packed RGBA8888 pixel.
const PixelBytes = 4

// Field selects which scan lines of a frame are sampled.
type Field int

const (
	// FieldBoth samples every row (progressive).
	FieldBoth Field = iota
	// FieldUpper samples rows 0, 2, 4, ...
	FieldUpper
	// FieldLower samples rows 1, 3, 5, ...
	FieldLower
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldBoth:
		return "both"
	case FieldUpper:
		return "upper"
	case FieldLower:
		return "lower"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// first returns the first sampled row and the distance between sampled rows.
func (f Field) first() (start, step int) {
	switch f {
	case FieldUpper:
		return 0, 2
	case FieldLower:
		return 1, 2
	default:
		return 0, 1
	}
}

// Includes reports whether row y belongs to the field.
func (f Field) Includes(y int) bool {
	switch f {
	case FieldUpper:
		return y%2 == 0
	case FieldLower:
		return y%2 == 1
	default:
		return true
	}
}

// RowCount returns how many rows of a frame of the given height the field samples.
func (f Field) RowCount(height int) int {
	start, step := f.first()
	if height <= start {
		return 0
	}
	return (height-start+step-1) / step
}

// DeinterlaceMode controls how rows outside the sampled field are rebuilt.
type DeinterlaceMode int

const (
	// DeinterlaceBob fills each missing row from its sampled neighbors.
	DeinterlaceBob DeinterlaceMode = iota
)

// BlitInfo describes the geometry of a packed buffer.
type BlitInfo struct {
	Width    int
	Height   int
	RowBytes int // distance between the starts of consecutive rows
}

// FullFrame returns blit info covering a whole width x height frame.
func FullFrame(width, height, rowBytes int) BlitInfo {
	return BlitInfo{Width: width, Height: height, RowBytes: rowBytes}
}

// MinLen returns the smallest buffer length that holds the described frame.
func (b BlitInfo) MinLen() int {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return (b.Height-1)*b.RowBytes + b.Width*PixelBytes
}

// Validate checks the geometry against a buffer of length n.
func (b BlitInfo) Validate(n int) error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid frame dimensions: %dx%d", b.Width, b.Height)
	}
	if b.RowBytes < b.Width*PixelBytes {
		return fmt.Errorf("row stride %d shorter than row of %d pixels", b.RowBytes, b.Width)
	}
	if n < b.MinLen() {
		return fmt.Errorf("buffer too small: got %d bytes, need %d", n, b.MinLen())
	}
	return nil
}

// Frame is a planar YIQ frame.
type Frame struct {
	Width  int
	Height int
	Field  Field
	Y      []float32 // luma
	I      []float32 // in-phase chroma
	Q      []float32 // quadrature chroma
}

// NewFrame allocates zeroed planes for a width x height frame.
func NewFrame(width, height int, field Field) *Frame {
	n := width * height
	return &Frame{
		Width:  width,
		Height: height,
		Field:  field,
		Y:      make([]float32, n),
		I:      make([]float32, n),
		Q:      make([]float32, n),
	}
}

// Row returns row y of each plane.
func (f *Frame) Row(y int) (yRow, iRow, qRow []float32) {
	off := y * f.Width
	end := off + f.Width
	return f.Y[off:end:end], f.I[off:end:end], f.Q[off:end:end]
}

// ActiveRows yields the indices of the rows sampled by the frame's field.
func (f *Frame) ActiveRows() iter.Seq[int] {
	return func(yield func(int) bool) {
		start, step := f.Field.first()
		for y := start; y < f.Height; y += step {
			if !yield(y) {
				return
			}
		}
	}
}
