package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	var buf bytes.Buffer
	opts := []SelectOption{{Value: "a&b", Label: "A & B"}, {Value: "c", Label: "C"}}
	require.NoError(t, Select("pick", "Pick <one>", opts).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, `for="pick">Pick &lt;one&gt;</label>`)
	assert.Contains(t, html, `<select id="pick" class="`+InputClass("mt-1")+`">`)
	assert.Contains(t, html, `<option value="a&amp;b">A &amp; B</option><option value="c">C</option></select>`)
}
