package debug

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Profiler times named stages of one plugin instance. It is not safe for
// concurrent use; each instance owns its own.
type Profiler struct {
	measurements map[string]*Measurement
	order        []string
	enabled      bool
	now          func() time.Time
}

// Measurement holds timing statistics for a profiled stage.
type Measurement struct {
	Name  string
	Count uint64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Last  time.Duration
}

// NewProfiler creates a profiler. A disabled profiler records nothing.
func NewProfiler(enabled bool) *Profiler {
	return &Profiler{
		measurements: make(map[string]*Measurement),
		enabled:      enabled,
		now:          time.Now,
	}
}

// IsEnabled returns whether profiling is enabled.
func (p *Profiler) IsEnabled() bool {
	return p.enabled
}

// Start begins timing a stage; call the returned func to stop.
func (p *Profiler) Start(name string) func() {
	if !p.enabled {
		return func() {}
	}

	start := p.now()
	return func() {
		p.record(name, p.now().Sub(start))
	}
}

// Time measures the execution time of fn.
func (p *Profiler) Time(name string, fn func()) {
	stop := p.Start(name)
	defer stop()
	fn()
}

func (p *Profiler) record(name string, elapsed time.Duration) {
	m, exists := p.measurements[name]
	if !exists {
		m = &Measurement{Name: name, Min: elapsed, Max: elapsed}
		p.measurements[name] = m
		p.order = append(p.order, name)
	}

	m.Count++
	m.Total += elapsed
	m.Last = elapsed
	if elapsed < m.Min {
		m.Min = elapsed
	}
	if elapsed > m.Max {
		m.Max = elapsed
	}
}

// Measurement returns a copy of the statistics for a stage.
func (p *Profiler) Measurement(name string) (Measurement, bool) {
	m, exists := p.measurements[name]
	if !exists {
		return Measurement{}, false
	}
	return *m, true
}

// Measurements returns copies of all statistics in first-recorded order.
func (p *Profiler) Measurements() []Measurement {
	result := make([]Measurement, 0, len(p.order))
	for _, name := range p.order {
		result = append(result, *p.measurements[name])
	}
	return result
}

// Reset clears all measurements.
func (p *Profiler) Reset() {
	p.measurements = make(map[string]*Measurement)
	p.order = nil
}

// LogSummary writes one debug line per stage, slowest total first.
func (p *Profiler) LogSummary(log logrus.FieldLogger) {
	measurements := p.Measurements()
	sort.SliceStable(measurements, func(i, j int) bool {
		return measurements[i].Total > measurements[j].Total
	})

	for _, m := range measurements {
		log.WithFields(logrus.Fields{
			"stage": m.Name,
			"count": m.Count,
			"total": m.Total,
			"avg":   m.Average(),
			"min":   m.Min,
			"max":   m.Max,
		}).Debug("Stage timing")
	}
}

// Average returns the mean time per call.
func (m Measurement) Average() time.Duration {
	if m.Count == 0 {
		return 0
	}
	return m.Total / time.Duration(m.Count)
}
