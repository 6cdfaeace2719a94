package render

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// LogoPrefix marks a request value as an embedded logo.
const LogoPrefix = "data:image"

// ErrInvalidLogo is returned for logo input that cannot be used: a bad data
// URL, undecodable base64, an unknown image format, or a logo over the
// configured limits. Callers are expected to render without the logo.
var ErrInvalidLogo = errors.New("invalid logo")

// LogoDecoder decodes data URL logos. A zero limit disables that check.
type LogoDecoder struct {
	MaxBytes  int
	MaxPixels int
}

// NewLogoDecoder returns a decoder enforcing the given limits.
func NewLogoDecoder(maxBytes, maxPixels int) *LogoDecoder {
	return &LogoDecoder{MaxBytes: maxBytes, MaxPixels: maxPixels}
}

// AsLogo reports whether a raw request value is a logo data URL.
func AsLogo(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || !strings.HasPrefix(s, LogoPrefix) {
		return "", false
	}
	return s, true
}

// LogoSide is the logo edge for a QR image of the given width: 25%, floored.
func LogoSide(width int) int { return width / 4 }

// Decode parses dataURL and returns the logo scaled to side x side.
// Errors wrapping ErrInvalidLogo describe bad input; any other error,
// including a recovered decoder panic, is unexpected.
func (d *LogoDecoder) Decode(dataURL string, side int) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, errors.Errorf("logo decoder panic: %v", r)
		}
	}()

	if side <= 0 {
		return nil, errors.Errorf("logo side %d out of range", side)
	}
	header, payload, ok := strings.Cut(dataURL, ",")
	if !ok {
		return nil, errors.Wrap(ErrInvalidLogo, "data URL has no comma")
	}
	if d.MaxBytes > 0 && base64.StdEncoding.DecodedLen(len(payload)) > d.MaxBytes+3 {
		return nil, errors.Wrapf(ErrInvalidLogo, "payload larger than %d bytes", d.MaxBytes)
	}

	raw, err := decodePayload(header, payload)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidLogo, "payload: %v", err)
	}
	if d.MaxBytes > 0 && len(raw) > d.MaxBytes {
		return nil, errors.Wrapf(ErrInvalidLogo, "logo is %d bytes, limit %d", len(raw), d.MaxBytes)
	}

	if strings.Contains(header, "svg") {
		return rasterizeSVG(raw, side)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidLogo, "image header: %v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Wrapf(ErrInvalidLogo, "empty %s image", format)
	}
	if d.MaxPixels > 0 && cfg.Width*cfg.Height > d.MaxPixels {
		return nil, errors.Wrapf(ErrInvalidLogo, "%dx%d exceeds %d pixels", cfg.Width, cfg.Height, d.MaxPixels)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidLogo, "decode %s: %v", format, err)
	}
	return resize.Resize(uint(side), uint(side), src, resize.Lanczos3), nil
}

// decodePayload decodes the base64 payload. For headers without ";base64"
// it also accepts the percent-encoded form of RFC 2397.
func decodePayload(header, payload string) ([]byte, error) {
	raw, err := decodeBase64(payload)
	if err == nil || strings.HasSuffix(header, ";base64") {
		return raw, err
	}
	s, uerr := url.PathUnescape(payload)
	if uerr != nil {
		return nil, err
	}
	return []byte(s), nil
}

// decodeBase64 ignores whitespace and accepts padded, unpadded and
// URL-safe alphabets.
func decodeBase64(payload string) ([]byte, error) {
	payload = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, payload)

	var firstErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	} {
		raw, err := enc.DecodeString(payload)
		if err == nil {
			return raw, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}

func rasterizeSVG(raw []byte, side int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(raw), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidLogo, "svg: %v", err)
	}
	icon.SetTarget(0, 0, float64(side), float64(side))

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	scanner := rasterx.NewScannerGV(side, side, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(side, side, scanner), 1)
	return img, nil
}

// CompositeLogo centers logo on dst and blends it with the logo's own alpha:
// transparent logo pixels keep the modules underneath, opaque ones replace
// them.
func CompositeLogo(dst *image.RGBA, logo image.Image) {
	b, lb := dst.Bounds(), logo.Bounds()
	at := image.Pt(
		b.Min.X+(b.Dx()-lb.Dx())/2,
		b.Min.Y+(b.Dy()-lb.Dy())/2,
	)
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(lb.Size())}, logo, lb.Min, draw.Over)
}
