package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "home.tmpl", map[string]any{
		"Title":   "Home",
		"Message": "Welcome.",
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<title>Home</title>")
	assert.Contains(t, html, "<p>Welcome.</p>")
}

func TestRender_EscapesInjectedVariables(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "home.tmpl", map[string]any{
		"Title":   "x",
		"Message": `<script>alert("hi")</script>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>")
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	err = r.Render(&bytes.Buffer{}, "missing.tmpl", nil)
	assert.Error(t, err)
}
