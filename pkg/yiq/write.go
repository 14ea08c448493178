package yiq

import "fmt"

// WritePacked writes the frame into dst as RGBA8888 with opaque alpha.
// Every row of the blit region is written; rows the frame's field did not
// sample are rebuilt according to mode. dst is never read.
func (f *Frame) WritePacked(dst []byte, blit BlitInfo, mode DeinterlaceMode) {
	if mode != DeinterlaceBob {
		panic(fmt.Sprintf("yiq: unsupported deinterlace mode %d", mode))
	}

	width := blit.Width
	var scratch []float32
	if f.Field != FieldBoth {
		scratch = make([]float32, 3*width)
	}

	for y := 0; y < blit.Height; y++ {
		off := y * blit.RowBytes
		out := dst[off : off+width*PixelBytes]

		if f.Field.Includes(y) {
			yRow, iRow, qRow := f.Row(y)
			yiqRowToPacked(out, yRow, iRow, qRow)
			continue
		}

		yRow, iRow, qRow := scratch[:width], scratch[width:2*width], scratch[2*width:]
		f.bobRow(y, yRow, iRow, qRow)
		yiqRowToPacked(out, yRow, iRow, qRow)
	}
}

// bobRow fills the rebuilt row y from the sampled rows directly above and
// below it, averaging when both exist.
func (f *Frame) bobRow(y int, yRow, iRow, qRow []float32) {
	above, below := y-1, y+1
	hasAbove := above >= 0
	hasBelow := below < f.Height

	switch {
	case hasAbove && hasBelow:
		ya, ia, qa := f.Row(above)
		yb, ib, qb := f.Row(below)
		for x := range yRow {
			yRow[x] = (ya[x] + yb[x]) * 0.5
			iRow[x] = (ia[x] + ib[x]) * 0.5
			qRow[x] = (qa[x] + qb[x]) * 0.5
		}
	case hasAbove:
		ya, ia, qa := f.Row(above)
		copy(yRow, ya)
		copy(iRow, ia)
		copy(qRow, qa)
	case hasBelow:
		yb, ib, qb := f.Row(below)
		copy(yRow, yb)
		copy(iRow, ib)
		copy(qRow, qb)
	}
}

func yiqRowToPacked(dst []byte, yRow, iRow, qRow []float32) {
	for x := range yRow {
		r, g, b := YIQToRGB(yRow[x], iRow[x], qRow[x])
		p := dst[x*PixelBytes : x*PixelBytes+PixelBytes : x*PixelBytes+PixelBytes]
		p[0] = toByte(r)
		p[1] = toByte(g)
		p[2] = toByte(b)
		p[3] = 0xFF
	}
}
