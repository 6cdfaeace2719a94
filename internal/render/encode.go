package render

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"

	"github.com/pkg/errors"
)

// PNGDataURLPrefix starts every encoded image.
const PNGDataURLPrefix = "data:image/png;base64,"

// EncodeDataURL serializes img as PNG wrapped in a base64 data URL.
func EncodeDataURL(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", errors.Wrap(err, "encode png")
	}
	return PNGDataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
