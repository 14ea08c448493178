// Package utility provides common scan line utility processors.
package utility

import (
	"math/rand/v2"
)

// NoiseType represents different types of noise.
type NoiseType int

const (
	// WhiteNoise has equal energy at all frequencies
	WhiteNoise NoiseType = iota
	// PinkNoise has equal energy per octave (1/f spectrum)
	PinkNoise
)

// NoiseGenerator generates reproducible noise from an explicit seed.
// Reseeding restores the exact sequence, which lets a caller derive one
// stream per scan line and get identical output for identical input.
type NoiseGenerator struct {
	noiseType NoiseType

	// Pink noise state (Voss-McCartney algorithm)
	pinkRows       [16]float32
	pinkRunningSum float32
	pinkIndex      int
	pinkScalar     float32

	src  *rand.PCG
	rand *rand.Rand
}

// NewNoiseGenerator creates a new noise generator seeded with seed.
func NewNoiseGenerator(noiseType NoiseType, seed uint64) *NoiseGenerator {
	src := rand.NewPCG(seed, 0)
	gen := &NoiseGenerator{
		noiseType:  noiseType,
		src:        src,
		rand:       rand.New(src),
		pinkScalar: 1.0 / 20.0, // Normalization for pink noise
	}
	gen.Seed(seed)
	return gen
}

// Seed restarts the generator from seed, clearing all filter state.
func (n *NoiseGenerator) Seed(seed uint64) {
	n.src.Seed(seed, seed^0x9E3779B97F4A7C15)
	n.pinkIndex = 0
	n.pinkRunningSum = 0
	for i := range n.pinkRows {
		n.pinkRows[i] = n.randomFloat()
		n.pinkRunningSum += n.pinkRows[i]
	}
}

// Next generates the next noise sample in [-1, 1].
func (n *NoiseGenerator) Next() float32 {
	switch n.noiseType {
	case PinkNoise:
		return n.generatePink()
	default:
		return n.randomFloat()
	}
}

// Uniform returns the next value of the underlying stream in [0, 1).
func (n *NoiseGenerator) Uniform() float32 {
	return n.rand.Float32()
}

// Generate fills a buffer with noise.
func (n *NoiseGenerator) Generate(buffer []float32) {
	for i := range buffer {
		buffer[i] = n.Next()
	}
}

// GenerateAdd adds noise to an existing buffer.
func (n *NoiseGenerator) GenerateAdd(buffer []float32, gain float32) {
	for i := range buffer {
		buffer[i] += n.Next() * gain
	}
}

// randomFloat generates a random float32 in range [-1, 1].
func (n *NoiseGenerator) randomFloat() float32 {
	return float32(n.rand.Float64()*2.0 - 1.0)
}

// generatePink generates pink noise using Voss-McCartney algorithm.
func (n *NoiseGenerator) generatePink() float32 {
	n.pinkIndex++
	if n.pinkIndex > 15 {
		n.pinkIndex = 0
	}

	// Update the row picked by the trailing zeros of the index
	if n.pinkIndex != 0 {
		numZeros := 0
		temp := n.pinkIndex
		for (temp & 1) == 0 {
			temp >>= 1
			numZeros++
		}

		n.pinkRunningSum -= n.pinkRows[numZeros]
		n.pinkRows[numZeros] = n.randomFloat()
		n.pinkRunningSum += n.pinkRows[numZeros]
	}

	output := (n.pinkRunningSum + n.randomFloat()) * n.pinkScalar

	if output > 1.0 {
		output = 1.0
	} else if output < -1.0 {
		output = -1.0
	}

	return output
}
