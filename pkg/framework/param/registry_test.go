package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	label string
	color string
}

func (w *widget) Label() string         { return w.label }
func (w *widget) SetLabel(v string)     { w.label = v }
func (w *widget) Color() string         { return w.color }
func (w *widget) SetColor(value string) { w.color = value }

func widgetParams() []Parameter[*widget] {
	return []Parameter[*widget]{
		String[*widget]("label").
			Explanation("Widget label").
			Accessors((*widget).Label, (*widget).SetLabel).
			Build(),
		String[*widget]("color").
			Accessors((*widget).Color, (*widget).SetColor).
			Build(),
	}
}

func TestTable(t *testing.T) {
	table, err := NewTable(widgetParams()...)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Count())

	info, ok := table.Info(0)
	require.True(t, ok)
	assert.Equal(t, Info{Name: "label", Type: TypeString, Explanation: "Widget label"}, info)
	assert.Equal(t, []string{"label", "color"}, []string{table.Infos()[0].Name, table.Infos()[1].Name})

	idx, ok := table.Index("color")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	_, ok = table.Index("size")
	assert.False(t, ok)

	w := &widget{}
	assert.True(t, table.Set(w, 0, "knob"))
	assert.True(t, table.Set(w, idx, "red"))
	assert.Equal(t, &widget{label: "knob", color: "red"}, w)

	v, ok := table.Get(w, 0)
	require.True(t, ok)
	assert.Equal(t, "knob", v)
}

func TestTableOutOfRange(t *testing.T) {
	table := MustTable(widgetParams()...)
	w := &widget{label: "keep"}

	for _, index := range []int{-1, 2, 100} {
		_, ok := table.Info(index)
		assert.False(t, ok)
		_, ok = table.Get(w, index)
		assert.False(t, ok)
		assert.False(t, table.Set(w, index, "x"))
	}
	assert.Equal(t, "keep", w.label)
}

func TestNewTableErrors(t *testing.T) {
	params := widgetParams()
	_, err := NewTable(params[0], params[0])
	assert.ErrorContains(t, err, "already exists")

	_, err = NewTable(String[*widget]("broken").Build())
	assert.ErrorContains(t, err, "missing an accessor")

	assert.Panics(t, func() { MustTable(params[1], params[1]) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "string", TypeString.String())
	assert.Equal(t, "bool", TypeBool.String())
	assert.Equal(t, "Type(9)", Type(9).String())
}
