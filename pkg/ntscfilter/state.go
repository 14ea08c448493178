package ntscfilter

import "github.com/justyntemme/frei0rgo/pkg/ntsc"

// lifecycleState is one of uninitialized, ready or failed. The effect is
// only reachable through ready.
type lifecycleState interface {
	lifecycle()
}

type uninitialized struct{}

type ready struct {
	effect *ntsc.Effect
}

type failed struct {
	err error
}

func (uninitialized) lifecycle() {}
func (ready) lifecycle()         {}
func (failed) lifecycle()        {}

// Status is the observable lifecycle state of a Filter.
type Status int

const (
	StatusUninitialized Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "uninitialized"
	}
}

func statusOf(s lifecycleState) Status {
	switch s.(type) {
	case ready:
		return StatusReady
	case failed:
		return StatusFailed
	default:
		return StatusUninitialized
	}
}
