package ntscfilter

import (
	"github.com/sirupsen/logrus"

	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
	"github.com/justyntemme/frei0rgo/pkg/frei0r"
)

// Descriptor values reported to the host.
const (
	Name        = "ntsc"
	Author      = "frei0rgo"
	Explanation = "NTSC filter"
)

var params = param.MustTable(
	param.String[*Filter]("preset").
		Explanation("Path to NTSC preset JSON file").
		Accessors((*Filter).PresetPath, (*Filter).SetPresetPath).
		Build(),
)

var (
	_ frei0r.Plugin       = (*Plugin)(nil)
	_ frei0r.Configurable = (*Plugin)(nil)
	_ frei0r.Instance     = (*Filter)(nil)
)

// Plugin is the frei0r factory for Filter.
type Plugin struct {
	logger  *logrus.Logger
	profile bool
}

// NewPlugin returns a factory whose instances log nowhere until Configure.
func NewPlugin() *Plugin {
	return &Plugin{logger: debug.Discard()}
}

// Configure implements frei0r.Configurable.
func (p *Plugin) Configure(cfg debug.Config, log *logrus.Logger) {
	p.logger = log
	p.profile = cfg.Profile
}

// Info implements frei0r.Plugin.
func (p *Plugin) Info() plugin.Info {
	major, minor := plugin.Version(0, 1)
	return plugin.Info{
		Name:         Name,
		Author:       Author,
		Explanation:  Explanation,
		Type:         plugin.TypeFilter,
		ColorModel:   plugin.ColorModelRGBA8888,
		MajorVersion: major,
		MinorVersion: minor,
	}
}

// Params implements frei0r.Plugin.
func (p *Plugin) Params() []frei0r.ParamInfo {
	return params.Infos()
}

// New implements frei0r.Plugin.
func (p *Plugin) New(width, height int) frei0r.Instance {
	f := New(width, height, WithLogger(p.logger), WithProfiling(p.profile))
	f.log.WithFields(logrus.Fields{"width": width, "height": height}).Debug("Instance created")
	return f
}
