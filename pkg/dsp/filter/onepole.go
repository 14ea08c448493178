package filter

// OnePole is a first-order lowpass: y[n] = y[n-1] + (1-a)*(x[n]-y[n-1]).
// A coefficient of 0 passes the signal through, values towards 1 smear it.
type OnePole struct {
	a     float32
	state float32
}

// NewOnePole creates a lowpass with the given feedback coefficient in [0, 1).
func NewOnePole(a float32) *OnePole {
	if a < 0 {
		a = 0
	} else if a >= 1 {
		a = 0.9999
	}
	return &OnePole{a: a}
}

// Prime sets the filter output as if it had settled on value.
func (o *OnePole) Prime(value float32) {
	o.state = value
}

// Process filters buffer in place.
func (o *OnePole) Process(buffer []float32) {
	g := 1 - o.a
	y := o.state
	for i, x := range buffer {
		y += g * (x - y)
		buffer[i] = y
	}
	o.state = y
}
