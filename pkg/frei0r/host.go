package frei0r

import (
	"errors"
	"fmt"
	"runtime/cgo"
	"sync/atomic"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/yiq"
)

// ErrNotRegistered is returned when no plugin was registered.
var ErrNotRegistered = errors.New("frei0r: no plugin registered")

var logger atomic.Pointer[logrus.Logger]

// Logger returns the process logger built by Init, or a stderr logger
// with default settings before Init.
func Logger() *logrus.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	l := debug.NewLogger(debug.DefaultConfig())
	logger.CompareAndSwap(nil, l)
	return logger.Load()
}

// Init builds the process logger from the environment and configures the
// registered plugin. It is called by f0r_init.
func Init() error {
	return initWith(debug.ConfigFromEnv())
}

func initWith(cfg debug.Config) error {
	log := debug.NewLogger(cfg)
	logger.Store(log)

	p := Registered()
	if p == nil {
		return ErrNotRegistered
	}
	if err := p.Info().Validate(); err != nil {
		return fmt.Errorf("frei0r: invalid plugin info: %w", err)
	}

	if c, ok := p.(Configurable); ok {
		c.Configure(cfg, log)
	}
	log.WithFields(logrus.Fields{
		"plugin":  p.Info().Name,
		"version": fmt.Sprintf("%d.%d", p.Info().MajorVersion, p.Info().MinorVersion),
	}).Debug("Plugin initialized")
	return nil
}

// slot is what a host instance handle refers to.
type slot struct {
	inst   Instance
	width  int
	height int
	// C strings handed to the host by f0r_get_param_value, by index. Each
	// stays valid until the next read of the same index or destruction.
	retained map[int]unsafe.Pointer
}

// Construct creates an instance and returns its handle.
func Construct(width, height int) (cgo.Handle, error) {
	p := Registered()
	if p == nil {
		return 0, ErrNotRegistered
	}
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("frei0r: invalid frame size %dx%d", width, height)
	}

	s := &slot{
		inst:     p.New(width, height),
		width:    width,
		height:   height,
		retained: make(map[int]unsafe.Pointer),
	}
	return cgo.NewHandle(s), nil
}

func lookup(h cgo.Handle) *slot {
	if h == 0 {
		return nil
	}
	return h.Value().(*slot)
}

// Destruct closes the instance and deletes its handle. It returns the
// retained C strings for the caller to free.
func Destruct(h cgo.Handle) []unsafe.Pointer {
	s := lookup(h)
	if s == nil {
		return nil
	}
	h.Delete()
	s.inst.Close()

	released := make([]unsafe.Pointer, 0, len(s.retained))
	for _, p := range s.retained {
		released = append(released, p)
	}
	return released
}

// FrameBytes is the size of one frame buffer of the instance.
func FrameBytes(h cgo.Handle) int {
	s := lookup(h)
	if s == nil {
		return 0
	}
	return s.width * s.height * yiq.PixelBytes
}

// Update forwards one frame to the instance.
func Update(h cgo.Handle, time float64, in, out []byte) {
	if s := lookup(h); s != nil {
		s.inst.Update(time, in, out)
	}
}

// ParamValue reads a parameter of the instance.
func ParamValue(h cgo.Handle, index int) (string, bool) {
	s := lookup(h)
	if s == nil {
		return "", false
	}
	return s.inst.ParamValue(index)
}

// SetParamValue writes a parameter of the instance.
func SetParamValue(h cgo.Handle, index int, value string) bool {
	s := lookup(h)
	if s == nil {
		return false
	}
	return s.inst.SetParamValue(index, value)
}

// Retain records p as the C string last handed out for index and returns
// the previous one, which the caller frees.
func Retain(h cgo.Handle, index int, p unsafe.Pointer) (previous unsafe.Pointer) {
	s := lookup(h)
	if s == nil {
		return p
	}
	previous = s.retained[index]
	s.retained[index] = p
	return previous
}
