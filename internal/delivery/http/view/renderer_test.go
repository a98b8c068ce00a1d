package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_ParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{PageIndex, PageRegister, PageLogin, PageAccount, PageError} {
		assert.Contains(t, r.templates, name)
	}
	assert.NotContains(t, r.templates, layoutTemplate)
}

func TestRenderer_IndexContext(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, PageIndex, map[string]any{
		"titulo":        "Bem-vindo",
		"saudacao":      "Olá",
		"habilidades":   []string{"Go", "<script>"},
		"mostrar_lista": true,
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Bem-vindo</title>")
	assert.Contains(t, html, "<li>Go</li>")
	assert.Contains(t, html, "&lt;script&gt;", "values are escaped")
	assert.Contains(t, html, `href="/login"`, "anonymous navigation")
}

func TestRenderer_HidesListWhenFlagIsOff(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, PageIndex, map[string]any{
		"titulo":        "Bem-vindo",
		"habilidades":   []string{"Go"},
		"mostrar_lista": false,
	}, nil)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<li>Go</li>")
}

func TestRenderer_FormErrors(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, PageRegister, map[string]any{
		"email":      "a@b.com",
		"csrf_token": "tok",
		"erros":      map[string][]string{"confirmar_senha": {"As senhas devem ser iguais"}},
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `value="a@b.com"`)
	assert.Contains(t, html, `name="csrf_token" value="tok"`)
	assert.Contains(t, html, "As senhas devem ser iguais")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	assert.Error(t, r.Render(&bytes.Buffer{}, "missing.html", nil, nil))
}
