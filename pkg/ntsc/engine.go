package ntsc

import (
	"github.com/justyntemme/frei0rgo/pkg/framework/dsp"
	"github.com/justyntemme/frei0rgo/pkg/yiq"
)

// Engine applies an effect to a planar frame in place.
type Engine interface {
	Apply(effect *Effect, frame *yiq.Frame, frameNum uint64, scale Scale)
}

// DefaultEngine runs the luma and chroma row chains of an effect over the
// active rows of a frame. Row chains are cached per effect and scale; an
// engine must not be shared between goroutines.
type DefaultEngine struct {
	effect *Effect
	scale  Scale
	luma   *dsp.Chain
	chroma *dsp.PairChain
}

// NewEngine returns an engine with no cached chains.
func NewEngine() *DefaultEngine {
	return &DefaultEngine{}
}

// Apply runs the effect over every row the frame's field includes. Rows
// outside the field are left alone for the writer to reconstruct.
func (e *DefaultEngine) Apply(effect *Effect, frame *yiq.Frame, frameNum uint64, scale Scale) {
	if effect == nil || effect.IsIdentity() {
		return
	}
	if e.effect != effect || e.scale != scale {
		e.effect = effect
		e.scale = scale
		e.luma = effect.lumaChain(scale)
		e.chroma = effect.chromaChain(scale)
	}

	for row := range frame.ActiveRows() {
		y, i, q := frame.Row(row)
		line := dsp.Line{Frame: frameNum, Row: row}
		e.luma.Process(line, y)
		e.chroma.ProcessPair(line, i, q)
	}
}

// Stages lists the enabled stage names in processing order, luma first.
func (e *Effect) Stages() []string {
	return append(e.lumaChain(UnitScale).Names(), e.chromaChain(UnitScale).Names()...)
}
