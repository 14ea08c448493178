// Package ntscfilter is the frei0r NTSC filter: it loads an effect preset
// on the first frame and runs every later frame through the effect.
package ntscfilter

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/ntsc"
	"github.com/justyntemme/frei0rgo/pkg/ntsc/preset"
	"github.com/justyntemme/frei0rgo/pkg/yiq"
)

// Loader builds an effect from a preset path.
type Loader func(path string) (*ntsc.Effect, error)

// Profiled stage names.
const (
	StageLoad    = "load"
	StageConvert = "convert"
	StageApply   = "apply"
	StageWrite   = "write"
)

// Filter is one host filter session.
type Filter struct {
	presetPath string
	width      int
	height     int
	blit       yiq.BlitInfo
	frameNum   uint64
	state      lifecycleState

	id       uuid.UUID
	log      *logrus.Entry
	profiler *debug.Profiler
	engine   ntsc.Engine
	load     Loader
}

// Option configures a Filter.
type Option func(*Filter)

// WithLogger logs through logger instead of discarding.
func WithLogger(logger *logrus.Logger) Option {
	return func(f *Filter) {
		f.log = logger.WithFields(logrus.Fields{"plugin": Name, "instance": f.id.String()})
	}
}

// WithProfiling times each stage and logs a summary on Close.
func WithProfiling(enabled bool) Option {
	return func(f *Filter) {
		f.profiler = debug.NewProfiler(enabled)
	}
}

// WithEngine replaces the default effect engine.
func WithEngine(engine ntsc.Engine) Option {
	return func(f *Filter) {
		f.engine = engine
	}
}

// WithLoader replaces the preset file loader.
func WithLoader(load Loader) Option {
	return func(f *Filter) {
		f.load = load
	}
}

// New creates a filter for width x height frames with an empty preset path.
func New(width, height int, opts ...Option) *Filter {
	f := &Filter{
		width:    width,
		height:   height,
		blit:     yiq.FullFrame(width, height, width*yiq.PixelBytes),
		state:    uninitialized{},
		id:       uuid.New(),
		profiler: debug.NewProfiler(false),
		engine:   ntsc.NewEngine(),
		load:     preset.Load,
	}
	f.log = debug.Discard().WithFields(logrus.Fields{"plugin": Name, "instance": f.id.String()})

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ID identifies the filter in logs.
func (f *Filter) ID() uuid.UUID {
	return f.id
}

// PresetPath returns the configured preset path.
func (f *Filter) PresetPath() string {
	return f.presetPath
}

// SetPresetPath sets the preset path. Once the preset has been loaded (or
// failed to load) the new path is recorded but never loaded.
func (f *Filter) SetPresetPath(path string) {
	if path == f.presetPath {
		return
	}
	f.presetPath = path
	if _, pending := f.state.(uninitialized); !pending {
		f.log.WithField("preset", path).Debug("Preset already loaded, new path is ignored")
	}
}

// FrameNum returns the number of frames processed.
func (f *Filter) FrameNum() uint64 {
	return f.frameNum
}

// Status returns the lifecycle state.
func (f *Filter) Status() Status {
	return statusOf(f.state)
}

// Err returns the load error of a failed filter.
func (f *Filter) Err() error {
	if s, ok := f.state.(failed); ok {
		return s.err
	}
	return nil
}

// Update processes one frame. The first call loads the preset; if that
// fails, this and every later call leave out untouched.
func (f *Filter) Update(_ float64, in, out []byte) {
	if _, pending := f.state.(uninitialized); pending {
		f.initialize()
	}

	s, ok := f.state.(ready)
	if !ok {
		return
	}

	if err := f.checkBuffers(in, out); err != nil {
		f.log.WithError(err).WithField("frame", f.frameNum).Error("Skipping frame")
		return
	}

	f.apply(s.effect, in, out)
	f.frameNum++
}

func (f *Filter) initialize() {
	var (
		effect *ntsc.Effect
		err    error
	)
	f.profiler.Time(StageLoad, func() {
		effect, err = f.load(f.presetPath)
	})

	if err != nil {
		f.state = failed{err: err}
		f.log.WithError(err).WithFields(logrus.Fields{
			"preset":     f.presetPath,
			"error_kind": errorKind(err),
		}).Error("Failed to initialize plugin")
		return
	}

	f.state = ready{effect: effect}
	f.log.WithFields(logrus.Fields{
		"preset":    f.presetPath,
		"use_field": effect.UseField().String(),
		"stages":    effect.Stages(),
	}).Info("Preset loaded")
}

func errorKind(err error) string {
	var loadErr *preset.Error
	if errors.As(err, &loadErr) {
		return loadErr.Kind.String()
	}
	return "unknown"
}

func (f *Filter) checkBuffers(in, out []byte) error {
	if err := f.blit.Validate(len(in)); err != nil {
		return err
	}
	return f.blit.Validate(len(out))
}

func (f *Filter) apply(effect *ntsc.Effect, in, out []byte) {
	field := effect.UseField().Field(f.frameNum)

	var frame *yiq.Frame
	f.profiler.Time(StageConvert, func() {
		frame = yiq.FromPacked(in, f.blit, field)
	})
	f.profiler.Time(StageApply, func() {
		f.engine.Apply(effect, frame, f.frameNum, ntsc.UnitScale)
	})
	f.profiler.Time(StageWrite, func() {
		frame.WritePacked(out, f.blit, yiq.DeinterlaceBob)
	})
}

// ParamValue returns the parameter at index.
func (f *Filter) ParamValue(index int) (string, bool) {
	return params.Get(f, index)
}

// SetParamValue sets the parameter at index.
func (f *Filter) SetParamValue(index int, value string) bool {
	return params.Set(f, index, value)
}

// Close logs the stage timings when profiling is enabled.
func (f *Filter) Close() {
	if f.profiler.IsEnabled() {
		f.profiler.LogSummary(f.log.WithField("frames", f.frameNum))
	}
	f.log.WithField("frames", f.frameNum).Debug("Instance closed")
}
