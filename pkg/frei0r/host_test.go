package frei0r

import (
	"testing"
	"unsafe"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/frei0rgo/pkg/framework/debug"
	"github.com/justyntemme/frei0rgo/pkg/framework/param"
	"github.com/justyntemme/frei0rgo/pkg/framework/plugin"
)

type fakeInstance struct {
	width, height int
	value         string
	updates       int
	closed        bool
}

func (f *fakeInstance) Update(_ float64, in, out []byte) {
	f.updates++
	copy(out, in)
}

func (f *fakeInstance) ParamValue(index int) (string, bool) {
	if index != 0 {
		return "", false
	}
	return f.value, true
}

func (f *fakeInstance) SetParamValue(index int, value string) bool {
	if index != 0 {
		return false
	}
	f.value = value
	return true
}

func (f *fakeInstance) Close() { f.closed = true }

type fakePlugin struct {
	info       plugin.Info
	instances  []*fakeInstance
	configured *logrus.Logger
	cfg        debug.Config
}

func (p *fakePlugin) Info() plugin.Info { return p.info }

func (p *fakePlugin) Params() []ParamInfo {
	return []ParamInfo{{Name: "value", Type: param.TypeString, Explanation: "A value"}}
}

func (p *fakePlugin) New(width, height int) Instance {
	inst := &fakeInstance{width: width, height: height}
	p.instances = append(p.instances, inst)
	return inst
}

func (p *fakePlugin) Configure(cfg debug.Config, log *logrus.Logger) {
	p.cfg = cfg
	p.configured = log
}

func registerFake(t *testing.T) *fakePlugin {
	t.Helper()
	p := &fakePlugin{info: plugin.Info{Name: "fake", Author: "tests", ColorModel: plugin.ColorModelRGBA8888}}
	previous := Registered()
	Register(p)
	t.Cleanup(func() { Register(previous) })
	return p
}

func TestInit(t *testing.T) {
	p := registerFake(t)
	cfg := debug.Config{Level: logrus.DebugLevel, Profile: true}

	require.NoError(t, initWith(cfg))
	assert.Equal(t, cfg, p.cfg)
	require.NotNil(t, p.configured)
	assert.Same(t, p.configured, Logger())
}

func TestInitErrors(t *testing.T) {
	previous := Registered()
	t.Cleanup(func() { Register(previous) })

	Register(nil)
	assert.ErrorIs(t, initWith(debug.DefaultConfig()), ErrNotRegistered)

	Register(&fakePlugin{})
	assert.ErrorContains(t, initWith(debug.DefaultConfig()), "invalid plugin info")
}

func TestInstanceLifecycle(t *testing.T) {
	p := registerFake(t)

	h, err := Construct(4, 2)
	require.NoError(t, err)
	require.Len(t, p.instances, 1)
	inst := p.instances[0]
	assert.Equal(t, 4, inst.width)
	assert.Equal(t, 2, inst.height)
	assert.Equal(t, 4*2*4, FrameBytes(h))

	assert.True(t, SetParamValue(h, 0, "/tmp/a.json"))
	assert.False(t, SetParamValue(h, 3, "ignored"))
	v, ok := ParamValue(h, 0)
	require.True(t, ok)
	assert.Equal(t, "/tmp/a.json", v)

	in := make([]byte, FrameBytes(h))
	in[5] = 42
	out := make([]byte, FrameBytes(h))
	Update(h, 0.04, in, out)
	assert.Equal(t, 1, inst.updates)
	assert.Equal(t, in, out)

	first, second := new(byte), new(byte)
	assert.Nil(t, Retain(h, 0, unsafe.Pointer(first)))
	assert.Equal(t, unsafe.Pointer(first), Retain(h, 0, unsafe.Pointer(second)))

	released := Destruct(h)
	assert.True(t, inst.closed)
	assert.Equal(t, []unsafe.Pointer{unsafe.Pointer(second)}, released)
}

func TestInstancesAreIndependent(t *testing.T) {
	p := registerFake(t)

	a, err := Construct(2, 2)
	require.NoError(t, err)
	b, err := Construct(2, 2)
	require.NoError(t, err)
	defer Destruct(a)
	defer Destruct(b)

	SetParamValue(a, 0, "a")
	SetParamValue(b, 0, "b")
	assert.Equal(t, "a", p.instances[0].value)
	assert.Equal(t, "b", p.instances[1].value)
}

func TestConstructErrors(t *testing.T) {
	registerFake(t)
	_, err := Construct(0, 10)
	assert.Error(t, err)

	Register(nil)
	_, err = Construct(2, 2)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestZeroHandle(t *testing.T) {
	assert.Equal(t, 0, FrameBytes(0))
	assert.Nil(t, Destruct(0))
	assert.False(t, SetParamValue(0, 0, "x"))
	_, ok := ParamValue(0, 0)
	assert.False(t, ok)
	assert.NotPanics(t, func() { Update(0, 0, nil, nil) })
}
