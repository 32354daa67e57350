package template

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corpix/taiji/di"
)

func TestParseSprig(t *testing.T) {
	tpl, err := Parse("greet", `{{ .name | upper }} {{ index . "symbol" }}`)
	require.Nil(t, err)

	buf := bytes.NewBuffer(nil)
	err = tpl.Execute(buf, NewContext().With("name", "taiji").With("symbol", "<☯>"))
	require.Nil(t, err)
	assert.Equal(t, "TAIJI &lt;☯&gt;", buf.String())
}

func TestWithFuncs(t *testing.T) {
	tpl, err := Parse("funcs", `{{ yinyang }}`, WithFuncs(FuncMap{
		"yinyang": func() string { return "☯" },
	}))
	require.Nil(t, err)

	buf := bytes.NewBuffer(nil)
	require.Nil(t, tpl.Execute(buf, nil))
	assert.Equal(t, "☯", buf.String())
}

func TestWithProvide(t *testing.T) {
	c := di.New()
	tpl := New("provided", WithProvide(c))

	var got *Template
	di.MustInvoke(c, func(t *Template) { got = t })
	assert.Equal(t, tpl, got)
}
