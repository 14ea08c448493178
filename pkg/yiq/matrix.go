package yiq

// FCC NTSC RGB -> YIQ transform. Rows produce Y, I and Q.
var rgbToYIQ = [3][3]float64{
	{0.299, 0.587, 0.114},
	{0.5959, -0.2746, -0.3213},
	{0.2115, -0.5227, 0.3112},
}

// yiqToRGB is the exact inverse of rgbToYIQ so an unmodified frame
// converts back to the bytes it came from.
var yiqToRGB = invert3(rgbToYIQ)

// forward holds rgbToYIQ narrowed to the plane sample type.
var forward = narrow(rgbToYIQ)

var inverse = narrow(yiqToRGB)

func narrow(m [3][3]float64) [3][3]float32 {
	var out [3][3]float32
	for r := range m {
		for c := range m[r] {
			out[r][c] = float32(m[r][c])
		}
	}
	return out
}

func invert3(m [3][3]float64) [3][3]float64 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	det := a*A + b*B + c*C
	inv := 1 / det

	return [3][3]float64{
		{A * inv, -(b*i - c*h) * inv, (b*f - c*e) * inv},
		{B * inv, (a*i - c*g) * inv, -(a*f - c*d) * inv},
		{C * inv, -(a*h - b*g) * inv, (a*e - b*d) * inv},
	}
}

// RGBToYIQ converts normalized RGB in [0,1] to YIQ.
func RGBToYIQ(r, g, b float32) (y, i, q float32) {
	m := &forward
	y = m[0][0]*r + m[0][1]*g + m[0][2]*b
	i = m[1][0]*r + m[1][1]*g + m[1][2]*b
	q = m[2][0]*r + m[2][1]*g + m[2][2]*b
	return y, i, q
}

// YIQToRGB converts YIQ back to (unclamped) normalized RGB.
func YIQToRGB(y, i, q float32) (r, g, b float32) {
	m := &inverse
	r = m[0][0]*y + m[0][1]*i + m[0][2]*q
	g = m[1][0]*y + m[1][1]*i + m[1][2]*q
	b = m[2][0]*y + m[2][1]*i + m[2][2]*q
	return r, g, b
}

// toByte clamps a normalized channel and rounds it to 8 bits.
func toByte(v float32) byte {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return byte(v*255 + 0.5)
}

const inv255 = float32(1.0 / 255.0)
