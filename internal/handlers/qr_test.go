package handlers

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cristianadrielbraun/qrstyle/internal/logger"
	"github.com/cristianadrielbraun/qrstyle/internal/render"
)

func newTestEngine(opts ...Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(opts...)
	r.POST("/api/qrcode", h.QRCodeHandler)
	return r
}

func post(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/qrcode", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return w, out
}

func jsonBody(t *testing.T, fields map[string]any) string {
	t.Helper()
	b, err := json.Marshal(fields)
	require.NoError(t, err)
	return string(b)
}

func decodePNG(t *testing.T, dataURL string) image.Image {
	t.Helper()
	require.True(t, strings.HasPrefix(dataURL, "data:image/png;base64,"), dataURL)
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func rgb(img image.Image, x, y int) [3]uint32 {
	r, g, b, _ := img.At(x, y).RGBA()
	return [3]uint32{r >> 8, g >> 8, b >> 8}
}

func scan(t *testing.T, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err)
	res, err := zxqrcode.NewQRCodeReader().Decode(bmp, map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
	})
	require.NoError(t, err)
	return res.GetText()
}

func logoDataURL(t *testing.T, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestQRCodeDefaults(t *testing.T) {
	w, out := post(t, newTestEngine(), `{"url": "https://example.com"}`)

	require.Equal(t, http.StatusOK, w.Code)
	img := decodePNG(t, out["image"])
	assert.Equal(t, img.Bounds().Dx(), img.Bounds().Dy())
	assert.Zero(t, img.Bounds().Dx()%render.BoxSize)
	assert.Equal(t, [3]uint32{255, 255, 255}, rgb(img, 5, 5))
	assert.Equal(t, [3]uint32{0, 0, 0}, rgb(img, 45, 45))
}

func TestQRCodeURLRequired(t *testing.T) {
	for _, body := range []string{`{}`, `{"url": ""}`, `{"url": null}`, `{"moduleShape": "circle"}`} {
		t.Run(body, func(t *testing.T) {
			w, out := post(t, newTestEngine(), body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]string{"error": MsgURLRequired}, out)
		})
	}
}

func TestQRCodeBlankURLIsEncoded(t *testing.T) {
	w, out := post(t, newTestEngine(), `{"url": "   "}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "   ", scan(t, decodePNG(t, out["image"])))
}

func TestQRCodeInvalidJSON(t *testing.T) {
	for _, body := range []string{"", "   ", "null", "not json", `{"url": `, `[1, 2]`, `"https://example.com"`, `{"url": 5}`} {
		t.Run(body, func(t *testing.T) {
			w, out := post(t, newTestEngine(), body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, map[string]string{"error": MsgInvalidJSON}, out)
		})
	}
}

func TestQRCodeBodyTooLarge(t *testing.T) {
	w, out := post(t, newTestEngine(WithMaxBodyBytes(16)), `{"url": "https://example.com/a/long/path"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, MsgBodyTooLarge, out["error"])
}

func TestQRCodeInternalErrorIsGeneric(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newTestEngine(WithLogger(logger.FromCore(core)))

	// Far beyond the capacity of any QR version.
	w, out := post(t, r, jsonBody(t, map[string]any{"url": strings.Repeat("x", 5000)}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, map[string]string{"error": MsgInternal}, out)
	assert.Equal(t, 1, logs.FilterMessage("qr generation failed").Len())
}

func TestQRCodeHorizontalGradient(t *testing.T) {
	r := newTestEngine()
	_, solid := post(t, r, `{"url": "https://example.com"}`)
	w, grad := post(t, r, jsonBody(t, map[string]any{
		"url":            "https://example.com",
		"colorMode":      "gradient",
		"gradientType":   "horizontal",
		"gradientColor1": "#FF0000",
		"gradientColor2": "#0000FF",
	}))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, solid["image"], grad["image"])

	img := decodePNG(t, grad["image"])
	side := img.Bounds().Dx()
	left, right := rgb(img, 45, 45), rgb(img, side-45, 45)
	assert.Greater(t, left[0], left[2], "left finder leans red")
	assert.Greater(t, right[2], right[0], "right finder leans blue")
}

func TestQRCodeBadColorsFallBackToBlack(t *testing.T) {
	w, out := post(t, newTestEngine(), `{"url": "https://example.com", "backColor": "notacolor", "fillColor": "#12"}`)

	require.Equal(t, http.StatusOK, w.Code)
	img := decodePNG(t, out["image"])
	assert.Equal(t, [3]uint32{0, 0, 0}, rgb(img, 5, 5))
	assert.Equal(t, [3]uint32{0, 0, 0}, rgb(img, 45, 45))
}

func TestQRCodeWithLogo(t *testing.T) {
	r := newTestEngine()
	_, plain := post(t, r, `{"url": "https://example.com"}`)
	w, withLogo := post(t, r, jsonBody(t, map[string]any{
		"url":  "https://example.com",
		"logo": logoDataURL(t, color.NRGBA{255, 0, 0, 255}),
	}))
	require.Equal(t, http.StatusOK, w.Code)

	a, b := decodePNG(t, plain["image"]), decodePNG(t, withLogo["image"])
	require.Equal(t, a.Bounds(), b.Bounds())

	side := a.Bounds().Dx()
	logoSide := render.LogoSide(side)
	off := (side - logoSide) / 2
	differs := 0
	for y := off; y < off+logoSide; y++ {
		for x := off; x < off+logoSide; x++ {
			if rgb(a, x, y) != rgb(b, x, y) {
				differs++
			}
		}
	}
	assert.Greater(t, differs, 0)

	center := rgb(b, side/2, side/2)
	assert.Greater(t, center[0], uint32(200))
	assert.Less(t, center[1], uint32(50))

	// Outside the logo area nothing changes.
	assert.Equal(t, rgb(a, off-1, off-1), rgb(b, off-1, off-1))
	assert.Equal(t, rgb(a, 45, 45), rgb(b, 45, 45))
}

func TestQRCodeMalformedLogoDegrades(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := newTestEngine(WithLogger(logger.FromCore(core)))
	_, plain := post(t, r, `{"url": "https://example.com"}`)

	for _, logo := range []any{"data:image/png;base64,iVBORw0KGgo", "data:image/png;base64", "data:image/png;base64,@@@@"} {
		w, out := post(t, r, jsonBody(t, map[string]any{"url": "https://example.com", "logo": logo}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, plain["image"], out["image"])
	}
	assert.Equal(t, 3, logs.FilterMessage("logo decode failed, rendering without logo").Len())
	assert.Zero(t, logs.FilterMessage("unexpected logo failure, rendering without logo").Len())
}

func TestQRCodeIgnoresNonLogoValues(t *testing.T) {
	r := newTestEngine()
	_, plain := post(t, r, `{"url": "https://example.com"}`)

	for _, logo := range []any{42, true, map[string]any{"a": 1}, "https://example.com/logo.png", ""} {
		w, out := post(t, r, jsonBody(t, map[string]any{"url": "https://example.com", "logo": logo}))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, plain["image"], out["image"], "%v", logo)
	}
}

func TestQRCodeIsIdempotent(t *testing.T) {
	r := newTestEngine()
	body := jsonBody(t, map[string]any{
		"url":          "https://example.com",
		"moduleShape":  "circle",
		"colorMode":    "gradient",
		"gradientType": "square",
		"logo":         logoDataURL(t, color.NRGBA{0, 128, 255, 200}),
	})
	_, first := post(t, r, body)
	_, second := post(t, r, body)
	assert.Equal(t, first["image"], second["image"])
}

func TestQRCodeAllShapes(t *testing.T) {
	r := newTestEngine()
	seen := map[string]bool{}
	logo := logoDataURL(t, color.NRGBA{255, 0, 0, 255})
	for _, shape := range render.ModuleShapes() {
		w, out := post(t, r, jsonBody(t, map[string]any{"url": "https://example.com", "moduleShape": shape}))
		require.Equal(t, http.StatusOK, w.Code, shape)
		seen[out["image"]] = true
		assert.Equal(t, "https://example.com", scan(t, decodePNG(t, out["image"])), shape)

		_, out = post(t, r, jsonBody(t, map[string]any{"url": "https://example.com", "moduleShape": shape, "logo": logo}))
		assert.Equal(t, "https://example.com", scan(t, decodePNG(t, out["image"])), "%s with logo", shape)
	}
	assert.Len(t, seen, len(render.ModuleShapes()), "every shape renders differently")

	_, unknown := post(t, r, `{"url": "https://example.com", "moduleShape": "hexagon"}`)
	_, square := post(t, r, `{"url": "https://example.com", "moduleShape": "square"}`)
	assert.Equal(t, square["image"], unknown["image"])
}
