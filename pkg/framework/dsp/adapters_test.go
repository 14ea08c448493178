package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/frei0rgo/pkg/dsp/utility"
)

func constant(n int, v float32) []float32 {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = v
	}
	return buf
}

func rowSeed(line Line) uint64 {
	return line.Frame<<32 | uint64(line.Row)
}

func TestLowpassPairAdapterKeepsFlatRows(t *testing.T) {
	a := NewLowpassPairAdapter(0.1)
	x := constant(32, 0.3)
	y := constant(32, -0.2)
	a.ProcessPair(Line{}, x, y)

	assert.InDeltaSlice(t, constant(32, 0.3), x, 1e-4)
	assert.InDeltaSlice(t, constant(32, -0.2), y, 1e-4)
}

func TestLowpassPairAdapterSoftensEdges(t *testing.T) {
	a := NewLowpassPairAdapter(0.05)
	x := make([]float32, 32)
	for i := 16; i < 32; i++ {
		x[i] = 1
	}
	y := make([]float32, 32)
	a.ProcessPair(Line{}, x, y)

	assert.Less(t, x[16], float32(0.5), "step should be smoothed")
	assert.Equal(t, make([]float32, 32), y)
}

func TestSmearAdapter(t *testing.T) {
	buf := []float32{0, 1, 1, 1}
	NewSmearAdapter(0.5).Process(Line{}, buf)
	assert.InDeltaSlice(t, []float32{0, 0.5, 0.75, 0.875}, buf, 1e-6)

	// State never leaks from one line to the next.
	s := NewSmearAdapter(0.5)
	first := []float32{1, 1}
	second := []float32{0, 0}
	s.Process(Line{Row: 0}, first)
	s.Process(Line{Row: 1}, second)
	assert.Equal(t, []float32{0, 0}, second)
}

func TestShiftPairAdapter(t *testing.T) {
	a := NewShiftPairAdapter(2)
	x := []float32{1, 2, 3, 4, 5}
	y := []float32{5, 4, 3, 2, 1}
	a.ProcessPair(Line{}, x, y)

	assert.Equal(t, []float32{1, 1, 1, 2, 3}, x)
	assert.Equal(t, []float32{5, 5, 5, 4, 3}, y)
}

func TestRotatePairAdapter(t *testing.T) {
	x := []float32{1}
	y := []float32{0}
	NewRotatePairAdapter(180).ProcessPair(Line{}, x, y)

	assert.InDelta(t, -1, x[0], 1e-6)
	assert.InDelta(t, 0, y[0], 1e-6)
}

func TestNoiseAdapterDeterministicPerLine(t *testing.T) {
	a := NewNoiseAdapter(utility.WhiteNoise, 0.1, rowSeed)
	b := NewNoiseAdapter(utility.WhiteNoise, 0.1, rowSeed)

	line := Line{Frame: 4, Row: 9}
	bufA := constant(64, 0.5)
	bufB := constant(64, 0.5)
	a.Process(Line{Frame: 1, Row: 1}, constant(64, 0)) // advance a's stream
	a.Process(line, bufA)
	b.Process(line, bufB)
	assert.Equal(t, bufA, bufB)

	other := constant(64, 0.5)
	b.Process(Line{Frame: 5, Row: 9}, other)
	assert.NotEqual(t, bufA, other, "different frames must get different noise")

	for _, v := range bufA {
		require.InDelta(t, 0.5, v, 0.1+1e-6)
	}
}

func TestNoiseAdapterPair(t *testing.T) {
	a := NewNoiseAdapter(utility.WhiteNoise, 0.05, rowSeed)
	x := constant(16, 0)
	y := constant(16, 0)
	a.ProcessPair(Line{Row: 2}, x, y)

	assert.NotEqual(t, constant(16, 0), x)
	assert.NotEqual(t, x, y, "each plane draws its own samples")
}

func TestSnowAdapter(t *testing.T) {
	t.Run("zero probability", func(t *testing.T) {
		buf := constant(128, 0.2)
		NewSnowAdapter(0, 1, rowSeed).Process(Line{}, buf)
		assert.Equal(t, constant(128, 0.2), buf)
	})

	t.Run("only brightens", func(t *testing.T) {
		buf := constant(4096, 0.2)
		NewSnowAdapter(0.1, 0.8, rowSeed).Process(Line{Row: 3}, buf)

		hits := 0
		for _, v := range buf {
			require.GreaterOrEqual(t, v, float32(0.2))
			require.LessOrEqual(t, v, float32(1.0)+1e-6)
			if v > 0.2 {
				hits++
			}
		}
		assert.Greater(t, hits, 200)
		assert.Less(t, hits, 650)
	})
}
