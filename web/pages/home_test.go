package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, HomePage([]string{"square", "circle"}, []string{"radial", "<x>"}).Render(context.Background(), &buf))

	html := buf.String()
	assert.True(t, strings.HasPrefix(strings.ToLower(html), "<!doctype html>"))
	assert.Contains(t, html, `<select id="moduleShape"`)
	assert.Contains(t, html, `<option value="square">Square</option><option value="circle">Circle</option>`)
	assert.Contains(t, html, `<option value="radial">Radial</option>`)
	assert.Contains(t, html, `&lt;x&gt;`)
	assert.NotContains(t, html, `<x>`)
	assert.Contains(t, html, `fetch("/api/qrcode"`)
	assert.Contains(t, html, `<input id="url" type="text" required class="block w-full`)
	assert.Contains(t, html, `<select id="gradientType"`)
}
