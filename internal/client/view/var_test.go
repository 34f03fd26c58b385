package view

import (
	"bytes"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVar_RendersOnlyOnChange(t *testing.T) {
	tmpl := template.Must(template.New("list").Parse(`{{range .items}}{{.}};{{end}}|{{len .implicit}}`))
	v := NewVar("items", tmpl)

	var buf bytes.Buffer

	rendered, err := v.Set(&buf, []string{"a", "b"})
	require.NoError(t, err)
	assert.True(t, rendered)
	assert.Equal(t, "a;b;|2", buf.String())

	buf.Reset()
	rendered, err = v.Set(&buf, []string{"a", "b"})
	require.NoError(t, err)
	assert.False(t, rendered, "equal value must not re-render")
	assert.Empty(t, buf.String())

	rendered, err = v.Set(&buf, []string{"c"})
	require.NoError(t, err)
	assert.True(t, rendered)
	assert.Equal(t, "c;|1", buf.String())
	assert.Equal(t, []string{"c"}, v.Value())
}

func TestVar_FirstNilValueStillRenders(t *testing.T) {
	v := NewVar("x", template.Must(template.New("x").Parse(`[{{if .x}}set{{else}}empty{{end}}]`)))

	var buf bytes.Buffer
	rendered, err := v.Set(&buf, nil)
	require.NoError(t, err)
	assert.True(t, rendered)
	assert.Equal(t, "[empty]", buf.String())
}

func TestVar_RenderErrorKeepsPreviousValue(t *testing.T) {
	v := NewVar("n", template.Must(template.New("n").Parse(`{{index .n 5}}`)))

	var buf bytes.Buffer
	_, err := v.Set(&buf, []int{1})
	require.Error(t, err)
	assert.Nil(t, v.Value())
}

func TestVar_ResetForcesRender(t *testing.T) {
	v := NewVar("x", template.Must(template.New("x").Parse(`{{.x}}`)))

	var buf bytes.Buffer
	_, err := v.Set(&buf, "a")
	require.NoError(t, err)

	v.Reset()
	assert.Nil(t, v.Value())

	buf.Reset()
	rendered, err := v.Set(&buf, "a")
	require.NoError(t, err)
	assert.True(t, rendered, "same value renders again after Reset")
	assert.Equal(t, "a", buf.String())
}
