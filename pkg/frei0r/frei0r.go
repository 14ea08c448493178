// Package frei0r hosts a Go plugin behind the frei0r C ABI.
//
// A plugin main registers its factory from init and builds with
// -buildmode=c-shared; the f0r_* symbols are exported by this package.
package frei0r

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
)

// Version is the frei0r API version implemented.
const Version = 1

// ParamInfo describes one plugin parameter to the host.
type ParamInfo = param.Info

// Plugin is the factory a plugin main registers.
type Plugin interface {
	// Info returns the descriptor reported by f0r_get_plugin_info.
	Info() plugin.Info

	// Params returns the parameters in index order.
	Params() []ParamInfo

	// New creates an instance for frames of width x height pixels.
	New(width, height int) Instance
}

// Instance is one host filter session.
type Instance interface {
	// Update processes one frame. in and out are width*height*4 bytes.
	Update(time float64, in, out []byte)

	// ParamValue returns the value of the parameter at index.
	ParamValue(index int) (string, bool)

	// SetParamValue sets the parameter at index.
	SetParamValue(index int, value string) bool

	// Close releases the instance.
	Close()
}

// Configurable plugins receive the process logger and config at f0r_init.
type Configurable interface {
	Configure(cfg debug.Config, log *logrus.Logger)
}

var (
	registered Plugin
	mu         sync.RWMutex
)

// Register sets the plugin served by the exported entry points. Plugin
// mains call it from init.
func Register(p Plugin) {
	mu.Lock()
	defer mu.Unlock()
	registered = p
}

// Registered returns the registered plugin or nil.
func Registered() Plugin {
	mu.RLock()
	defer mu.RUnlock()
	return registered
}
