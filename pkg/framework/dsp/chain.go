// Package dsp provides scan line processing chains for the frame filters.
//
// A Processor works on one plane's row at a time; a PairProcessor works on
// the matching rows of two planes together (the chroma pair). Every call
// receives the Line being processed so stateful processors can restart per
// line and derive per-line randomness.
package dsp

import (
	"fmt"
)

// Line identifies a scan line within the frame sequence.
type Line struct {
	Frame uint64 // frame number
	Row   int    // row within the frame
}

// Processor represents a scan line processor that can be chained.
type Processor interface {
	// Process processes one row in-place
	Process(line Line, buffer []float32)
}

// PairProcessor processes two planes of the same row together.
type PairProcessor interface {
	// ProcessPair processes the rows in-place
	ProcessPair(line Line, a, b []float32)
}

// ProcessorFunc allows using a function as a Processor.
type ProcessorFunc func(line Line, buffer []float32)

func (f ProcessorFunc) Process(line Line, buffer []float32) {
	f(line, buffer)
}

// PairProcessorFunc allows using a function as a PairProcessor.
type PairProcessorFunc func(line Line, a, b []float32)

func (f PairProcessorFunc) ProcessPair(line Line, a, b []float32) {
	f(line, a, b)
}

// Chain represents a chain of single plane processors.
type Chain struct {
	processors []Processor
	names      []string
	name       string
	bypass     bool
}

// NewChain creates a new chain.
func NewChain(name string) *Chain {
	return &Chain{name: name}
}

// Add adds a named processor to the chain.
func (c *Chain) Add(name string, processor Processor) *Chain {
	c.processors = append(c.processors, processor)
	c.names = append(c.names, name)
	return c
}

// AddFunc adds a processing function to the chain.
func (c *Chain) AddFunc(name string, process func(Line, []float32)) *Chain {
	return c.Add(name, ProcessorFunc(process))
}

// Process runs a row through the chain.
func (c *Chain) Process(line Line, buffer []float32) {
	if c.bypass {
		return
	}

	for _, processor := range c.processors {
		processor.Process(line, buffer)
	}
}

// SetBypass sets the bypass state of the chain.
func (c *Chain) SetBypass(bypass bool) {
	c.bypass = bypass
}

// IsEmpty returns true if the chain has no processors.
func (c *Chain) IsEmpty() bool {
	return len(c.processors) == 0
}

// Count returns the number of processors in the chain.
func (c *Chain) Count() int {
	return len(c.processors)
}

// Names returns the processor names in order.
func (c *Chain) Names() []string {
	return append([]string(nil), c.names...)
}

// String describes the chain for logs.
func (c *Chain) String() string {
	return fmt.Sprintf("%s%v", c.name, c.names)
}

// PairChain represents a chain of two plane processors.
type PairChain struct {
	processors []PairProcessor
	names      []string
	name       string
	bypass     bool
}

// NewPairChain creates a new pair chain.
func NewPairChain(name string) *PairChain {
	return &PairChain{name: name}
}

// Add adds a named pair processor to the chain.
func (c *PairChain) Add(name string, processor PairProcessor) *PairChain {
	c.processors = append(c.processors, processor)
	c.names = append(c.names, name)
	return c
}

// AddFunc adds a pair processing function to the chain.
func (c *PairChain) AddFunc(name string, process func(Line, []float32, []float32)) *PairChain {
	return c.Add(name, PairProcessorFunc(process))
}

// ProcessPair runs a pair of rows through the chain.
func (c *PairChain) ProcessPair(line Line, a, b []float32) {
	if c.bypass {
		return
	}

	for _, processor := range c.processors {
		processor.ProcessPair(line, a, b)
	}
}

// SetBypass sets the bypass state of the chain.
func (c *PairChain) SetBypass(bypass bool) {
	c.bypass = bypass
}

// IsEmpty returns true if the chain has no processors.
func (c *PairChain) IsEmpty() bool {
	return len(c.processors) == 0
}

// Count returns the number of processors in the chain.
func (c *PairChain) Count() int {
	return len(c.processors)
}

// Names returns the processor names in order.
func (c *PairChain) Names() []string {
	return append([]string(nil), c.names...)
}

// String describes the chain for logs.
func (c *PairChain) String() string {
	return fmt.Sprintf("%s%v", c.name, c.names)
}
