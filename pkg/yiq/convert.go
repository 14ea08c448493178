package yiq

// FromPacked converts the rows of src selected by field into a new planar
// frame. The fourth byte of every pixel is ignored. Rows outside the field
// are left zero for WritePacked to rebuild.
//
// A field that samples no rows (a one-row frame asked for its lower field)
// falls back to FieldBoth so that the frame always carries picture data.
func FromPacked(src []byte, blit BlitInfo, field Field) *Frame {
	if field.RowCount(blit.Height) == 0 {
		field = FieldBoth
	}

	frame := NewFrame(blit.Width, blit.Height, field)
	for y := range frame.ActiveRows() {
		yRow, iRow, qRow := frame.Row(y)
		off := y * blit.RowBytes
		packedRowToYIQ(src[off:off+blit.Width*PixelBytes], yRow, iRow, qRow)
	}
	return frame
}

func packedRowToYIQ(src []byte, yRow, iRow, qRow []float32) {
	for x := range yRow {
		p := src[x*PixelBytes : x*PixelBytes+PixelBytes : x*PixelBytes+PixelBytes]
		yRow[x], iRow[x], qRow[x] = RGBToYIQ(
			float32(p[0])*inv255,
			float32(p[1])*inv255,
			float32(p[2])*inv255,
		)
	}
}
