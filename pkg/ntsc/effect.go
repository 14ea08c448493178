package ntsc

import (
	"math"

	"github.com/justyntemme/frei0rgo/pkg/dsp/utility"
	"github.com/justyntemme/frei0rgo/pkg/framework/dsp"
)

// Effect is an immutable effect configuration built from Settings.
type Effect struct {
	settings Settings
}

// Settings returns a copy of the settings the effect was built from.
func (e *Effect) Settings() Settings {
	return e.settings
}

// UseField returns the field mode of the effect.
func (e *Effect) UseField() UseField {
	return e.settings.UseField
}

// IsIdentity reports whether every stage is disabled.
func (e *Effect) IsIdentity() bool {
	s := &e.settings
	return !s.ChromaLowpass.Enabled &&
		s.ChromaDelayHorizontal == 0 &&
		s.LumaSmear == 0 &&
		s.ChromaPhaseError == 0 &&
		!(s.CompositeNoise.Enabled && s.CompositeNoise.Intensity > 0) &&
		!(s.ChromaNoise.Enabled && s.ChromaNoise.Intensity > 0) &&
		s.SnowIntensity == 0
}

// Scale stretches the effect to frames larger or smaller than the
// resolution presets are tuned for. 1.0 on both axes applies presets as is.
type Scale struct {
	Horizontal float64
	Vertical   float64
}

// UnitScale applies presets at their native size.
var UnitScale = Scale{Horizontal: 1, Vertical: 1}

// Stage seeds keep the noise streams of different stages apart.
const (
	stageCompositeNoise uint64 = iota + 1
	stageChromaNoise
	stageSnow
)

// lumaChain builds the per-row luma processors for the effect.
func (e *Effect) lumaChain(scale Scale) *dsp.Chain {
	s := &e.settings
	chain := dsp.NewChain("luma")

	if s.LumaSmear > 0 {
		// Longer pixels need a longer tail for the same visual smear.
		coeff := math.Pow(s.LumaSmear, 1/horizontal(scale))
		chain.Add("luma_smear", dsp.NewSmearAdapter(float32(coeff)))
	}
	if s.CompositeNoise.Enabled && s.CompositeNoise.Intensity > 0 {
		chain.Add("composite_noise", dsp.NewNoiseAdapter(
			utility.PinkNoise, float32(s.CompositeNoise.Intensity), e.seeder(stageCompositeNoise)))
	}
	if s.SnowIntensity > 0 {
		chain.Add("snow", dsp.NewSnowAdapter(
			float32(s.SnowIntensity*0.01), 0.8, e.seeder(stageSnow)))
	}
	return chain
}

// chromaChain builds the per-row I/Q processors for the effect.
func (e *Effect) chromaChain(scale Scale) *dsp.PairChain {
	s := &e.settings
	chain := dsp.NewPairChain("chroma")

	if s.ChromaLowpass.Enabled {
		cutoff := math.Min(s.ChromaLowpass.Bandwidth/horizontal(scale), 0.49)
		chain.Add("chroma_lowpass", dsp.NewLowpassPairAdapter(cutoff))
	}
	if s.ChromaDelayHorizontal != 0 {
		chain.Add("chroma_delay", dsp.NewShiftPairAdapter(
			float32(s.ChromaDelayHorizontal*horizontal(scale))))
	}
	if s.ChromaPhaseError != 0 {
		chain.Add("chroma_phase_error", dsp.NewRotatePairAdapter(s.ChromaPhaseError))
	}
	if s.ChromaNoise.Enabled && s.ChromaNoise.Intensity > 0 {
		chain.Add("chroma_noise", dsp.NewNoiseAdapter(
			utility.WhiteNoise, float32(s.ChromaNoise.Intensity), e.seeder(stageChromaNoise)))
	}
	return chain
}

func horizontal(scale Scale) float64 {
	if scale.Horizontal <= 0 {
		return 1
	}
	return scale.Horizontal
}

// seeder returns the seed function for one stage. The seed depends only on
// the preset seed, the stage, the frame number and the row.
func (e *Effect) seeder(stage uint64) dsp.SeedFunc {
	base := uint64(e.settings.RandomSeed)
	return func(line dsp.Line) uint64 {
		h := splitmix64(base ^ stage*0xD1B54A32D192ED03)
		h = splitmix64(h ^ line.Frame)
		return splitmix64(h ^ uint64(line.Row))
	}
}

func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}
