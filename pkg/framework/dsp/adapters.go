package dsp

import (
	"math"

	basedsp "github.com/justyntemme/frei0rgo/pkg/dsp"
	"github.com/justyntemme/frei0rgo/pkg/dsp/filter"
	"github.com/justyntemme/frei0rgo/pkg/dsp/interpolation"
	"github.com/justyntemme/frei0rgo/pkg/dsp/utility"
)

// SeedFunc derives the noise seed for a line.
type SeedFunc func(line Line) uint64

// LowpassPairAdapter runs a biquad lowpass over both rows of a pair.
// Each line starts settled on its first sample.
type LowpassPairAdapter struct {
	biquad *filter.Biquad
}

// NewLowpassPairAdapter creates a lowpass with cutoff in cycles per sample.
func NewLowpassPairAdapter(cutoff float64) *LowpassPairAdapter {
	b := filter.NewBiquad(2)
	b.SetLowpass(1, cutoff, 0.707)
	return &LowpassPairAdapter{biquad: b}
}

func (a *LowpassPairAdapter) ProcessPair(_ Line, x, y []float32) {
	if len(x) == 0 {
		return
	}
	a.biquad.Prime(x[0], 0)
	a.biquad.Prime(y[0], 1)
	a.biquad.Process(x, 0)
	a.biquad.Process(y, 1)
}

// SmearAdapter runs a one-pole lowpass over a row.
type SmearAdapter struct {
	coeff float32
}

// NewSmearAdapter creates a smear with feedback coefficient in [0, 1).
func NewSmearAdapter(coeff float32) *SmearAdapter {
	return &SmearAdapter{coeff: coeff}
}

func (a *SmearAdapter) Process(_ Line, buffer []float32) {
	if len(buffer) == 0 {
		return
	}
	f := filter.NewOnePole(a.coeff)
	f.Prime(buffer[0])
	f.Process(buffer)
}

// ShiftPairAdapter delays both rows by a fractional number of samples.
type ShiftPairAdapter struct {
	offset  float32
	scratch []float32
}

// NewShiftPairAdapter creates a horizontal shift; positive moves right.
func NewShiftPairAdapter(offset float32) *ShiftPairAdapter {
	return &ShiftPairAdapter{offset: offset}
}

func (a *ShiftPairAdapter) ProcessPair(_ Line, x, y []float32) {
	a.shift(x)
	a.shift(y)
}

func (a *ShiftPairAdapter) shift(buffer []float32) {
	if cap(a.scratch) < len(buffer) {
		a.scratch = make([]float32, len(buffer))
	}
	src := a.scratch[:len(buffer)]
	copy(src, buffer)
	interpolation.Shift(buffer, src, a.offset)
}

// RotatePairAdapter rotates each (x, y) sample pair by a fixed angle.
type RotatePairAdapter struct {
	cos, sin float32
}

// NewRotatePairAdapter creates a rotation by degrees.
func NewRotatePairAdapter(degrees float64) *RotatePairAdapter {
	rad := degrees * math.Pi / 180
	return &RotatePairAdapter{cos: float32(math.Cos(rad)), sin: float32(math.Sin(rad))}
}

func (a *RotatePairAdapter) ProcessPair(_ Line, x, y []float32) {
	basedsp.Rotate(x, y, a.cos, a.sin)
}

// NoiseAdapter adds seeded noise to a row.
type NoiseAdapter struct {
	noise *utility.NoiseGenerator
	seed  SeedFunc
	gain  float32
}

// NewNoiseAdapter creates a noise adder; seed picks the stream for each line.
func NewNoiseAdapter(noiseType utility.NoiseType, gain float32, seed SeedFunc) *NoiseAdapter {
	return &NoiseAdapter{
		noise: utility.NewNoiseGenerator(noiseType, 0),
		seed:  seed,
		gain:  gain,
	}
}

func (a *NoiseAdapter) Process(line Line, buffer []float32) {
	a.noise.Seed(a.seed(line))
	a.noise.GenerateAdd(buffer, a.gain)
}

func (a *NoiseAdapter) ProcessPair(line Line, x, y []float32) {
	a.noise.Seed(a.seed(line))
	a.noise.GenerateAdd(x, a.gain)
	a.noise.GenerateAdd(y, a.gain)
}

// SnowAdapter scatters bright specks over a row: each sample is hit with
// the given probability and pushed up by a random amount up to amplitude.
type SnowAdapter struct {
	noise       *utility.NoiseGenerator
	seed        SeedFunc
	probability float32
	amplitude   float32
}

// NewSnowAdapter creates a snow generator.
func NewSnowAdapter(probability, amplitude float32, seed SeedFunc) *SnowAdapter {
	return &SnowAdapter{
		noise:       utility.NewNoiseGenerator(utility.WhiteNoise, 0),
		seed:        seed,
		probability: probability,
		amplitude:   amplitude,
	}
}

func (a *SnowAdapter) Process(line Line, buffer []float32) {
	a.noise.Seed(a.seed(line))
	for i := range buffer {
		if a.noise.Uniform() < a.probability {
			buffer[i] += a.amplitude * a.noise.Uniform()
		}
	}
}
