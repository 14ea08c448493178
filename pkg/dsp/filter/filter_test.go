package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBiquadLowpassDCGain(t *testing.T) {
	b := NewBiquad(1)
	b.SetLowpass(1, 0.1, 0.707)
	b.Prime(0.5, 0)

	buf := make([]float32, 64)
	for i := range buf {
		buf[i] = 0.5
	}
	b.Process(buf, 0)

	for i, v := range buf {
		require.InDelta(t, 0.5, v, 1e-4, "sample %d", i)
	}
}

func TestBiquadLowpassAttenuatesNyquist(t *testing.T) {
	b := NewBiquad(1)
	b.SetLowpass(1, 0.05, 0.707)

	buf := make([]float32, 256)
	for i := range buf {
		if i%2 == 0 {
			buf[i] = 1
		} else {
			buf[i] = -1
		}
	}
	b.Process(buf, 0)

	// After settling the alternating signal is almost gone.
	for _, v := range buf[128:] {
		assert.Less(t, abs(v), float32(0.05))
	}
}

func TestBiquadChannelsIndependent(t *testing.T) {
	b := NewBiquad(2)
	b.SetLowpass(1, 0.2, 0.707)

	a := []float32{1, 1, 1, 1}
	z := []float32{0, 0, 0, 0}
	b.Process(a, 0)
	b.Process(z, 1)

	assert.Equal(t, []float32{0, 0, 0, 0}, z)

	b.Reset()
	again := []float32{1, 1, 1, 1}
	b.Process(again, 0)
	assert.Equal(t, a, again, "reset must restore the initial state")
}

func TestBiquadHighpassRemovesDC(t *testing.T) {
	b := NewBiquad(1)
	b.SetHighpass(1, 0.1, 0.707)

	buf := make([]float32, 200)
	for i := range buf {
		buf[i] = 1
	}
	b.Process(buf, 0)
	assert.InDelta(t, 0, buf[len(buf)-1], 1e-3)
}

func TestOnePole(t *testing.T) {
	t.Run("zero coefficient passes through", func(t *testing.T) {
		o := NewOnePole(0)
		buf := []float32{0.1, 0.9, 0.3}
		o.Process(buf)
		assert.InDeltaSlice(t, []float32{0.1, 0.9, 0.3}, buf, 1e-6)
	})

	t.Run("smears a step", func(t *testing.T) {
		o := NewOnePole(0.5)
		buf := []float32{1, 1, 1}
		o.Process(buf)
		assert.InDeltaSlice(t, []float32{0.5, 0.75, 0.875}, buf, 1e-6)
	})

	t.Run("primed stays settled", func(t *testing.T) {
		o := NewOnePole(0.8)
		o.Prime(0.4)
		buf := []float32{0.4, 0.4}
		o.Process(buf)
		assert.InDeltaSlice(t, []float32{0.4, 0.4}, buf, 1e-6)
	})

	t.Run("coefficient clamped", func(t *testing.T) {
		assert.Less(t, NewOnePole(2).a, float32(1))
		assert.Equal(t, float32(0), NewOnePole(-1).a)
	})
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
