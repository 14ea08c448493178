package ntscfilter

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
)

func TestPluginInfo(t *testing.T) {
	info := NewPlugin().Info()

	assert.Equal(t, "ntsc", info.Name)
	assert.Equal(t, "frei0rgo", info.Author)
	assert.Equal(t, "NTSC filter", info.Explanation)
	assert.Equal(t, plugin.ColorModelRGBA8888, info.ColorModel)
	assert.Equal(t, plugin.TypeFilter, info.Type)
	assert.NoError(t, info.Validate())
}

func TestPluginParams(t *testing.T) {
	params := NewPlugin().Params()
	require.Len(t, params, 1)
	assert.Equal(t, "preset", params[0].Name)
	assert.Equal(t, param.TypeString, params[0].Type)
	assert.Equal(t, "Path to NTSC preset JSON file", params[0].Explanation)
}

func TestPluginNew(t *testing.T) {
	p := NewPlugin()
	p.Configure(debug.Config{Level: logrus.DebugLevel, Profile: true}, logrus.New())

	a := p.New(4, 3).(*Filter)
	b := p.New(4, 3).(*Filter)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.profiler.IsEnabled())
	assert.Equal(t, a.ID().String(), a.log.Data["instance"])
	assert.Equal(t, "ntsc", a.log.Data["plugin"])

	assert.True(t, a.SetParamValue(0, "a.json"))
	assert.False(t, a.SetParamValue(1, "b.json"))
	v, ok := a.ParamValue(0)
	require.True(t, ok)
	assert.Equal(t, "a.json", v)
	_, ok = b.ParamValue(5)
	assert.False(t, ok)
	assert.Empty(t, b.PresetPath())
}
