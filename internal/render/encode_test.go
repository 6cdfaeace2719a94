package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDataURL(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})

	out, err := EncodeDataURL(src)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, PNGDataURLPrefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(out, PNGDataURLPrefix))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), img.Bounds())

	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})
}
