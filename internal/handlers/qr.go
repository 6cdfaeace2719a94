package handlers

import (
	"bytes"
	"image"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/cristianadrielbraun/qrstyle/internal/logger"
	"github.com/cristianadrielbraun/qrstyle/internal/middleware"
	"github.com/cristianadrielbraun/qrstyle/internal/render"
)

const (
	MsgInvalidJSON  = "Invalid JSON payload"
	MsgURLRequired  = "URL parameter is required"
	MsgBodyTooLarge = "Request body too large"
	MsgInternal     = "An unexpected error occurred while generating the QR code."
)

// qrRequest is the JSON body of POST /api/qrcode. Logo is left untyped:
// anything other than a data:image string is ignored, not rejected.
type qrRequest struct {
	URL            string `json:"url" binding:"required"`
	ModuleShape    string `json:"moduleShape"`
	ColorMode      string `json:"colorMode"`
	FillColor      string `json:"fillColor"`
	BackColor      string `json:"backColor"`
	GradientType   string `json:"gradientType"`
	GradientColor1 string `json:"gradientColor1"`
	GradientColor2 string `json:"gradientColor2"`
	Logo           any    `json:"logo"`
}

func (r *qrRequest) options() render.Options {
	return render.Options{
		ModuleShape:    r.ModuleShape,
		ColorMode:      r.ColorMode,
		FillColor:      r.FillColor,
		BackColor:      r.BackColor,
		GradientType:   r.GradientType,
		GradientColor1: r.GradientColor1,
		GradientColor2: r.GradientColor2,
	}
}

// requestError is a client error with the status and message to send back.
type requestError struct {
	status  int
	message string
	cause   error
}

func (e *requestError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func badRequest(message string, cause error) *requestError {
	return &requestError{status: http.StatusBadRequest, message: message, cause: cause}
}

// bindQRRequest reads and validates the body. The JSON check runs before the
// url check, so a broken body never reports a missing url.
func (h *Handler) bindQRRequest(c *gin.Context) (*qrRequest, *requestError) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &requestError{status: http.StatusRequestEntityTooLarge, message: MsgBodyTooLarge, cause: err}
		}
		return nil, badRequest(MsgInvalidJSON, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, badRequest(MsgInvalidJSON, errors.New("empty body"))
	}

	var req qrRequest
	if err := binding.JSON.BindBody(body, &req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, badRequest(MsgURLRequired, err)
		}
		return nil, badRequest(MsgInvalidJSON, err)
	}
	return &req, nil
}

// QRCodeHandler renders a styled QR code and returns it as a PNG data URL.
func (h *Handler) QRCodeHandler(c *gin.Context) {
	log := h.log.With("request_id", c.GetString(middleware.RequestIDKey))

	req, rerr := h.bindQRRequest(c)
	if rerr != nil {
		log.Warnw("qr request rejected", "status", rerr.status, "reason", rerr.Error())
		c.JSON(rerr.status, gin.H{"error": rerr.message})
		return
	}
	log.Debugw("qr request received",
		"url_length", len(req.URL),
		"moduleShape", req.ModuleShape,
		"colorMode", req.ColorMode,
		"gradientType", req.GradientType,
		"has_logo", req.Logo != nil,
	)

	dataURL, err := h.generate(log, req)
	if err != nil {
		log.Errorw("qr generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": MsgInternal})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": dataURL})
}

func (h *Handler) generate(log *logger.Logger, req *qrRequest) (string, error) {
	style := req.options().Resolve()
	log.Debugw("style resolved", "shape", style.Shape, "mode", style.Mode, "gradient", style.Gradient)

	img, err := render.Render(req.URL, style)
	if err != nil {
		return "", errors.Wrap(err, "render qr")
	}
	log.Debugw("qr rendered", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if dataURL, ok := render.AsLogo(req.Logo); ok {
		h.applyLogo(log, img, dataURL)
	}

	out, err := render.EncodeDataURL(img)
	if err != nil {
		return "", errors.Wrap(err, "encode output")
	}
	log.Debugw("qr encoded", "data_url_length", len(out))
	return out, nil
}

// applyLogo never fails the request. Bad logo input is expected and logged
// as a warning; anything else is logged as an error. Both leave img as is.
func (h *Handler) applyLogo(log *logger.Logger, img *image.RGBA, dataURL string) {
	side := render.LogoSide(img.Bounds().Dx())
	logo, err := h.logos.Decode(dataURL, side)
	switch {
	case errors.Is(err, render.ErrInvalidLogo):
		log.Warnw("logo decode failed, rendering without logo", "error", err)
		return
	case err != nil:
		log.Errorw("unexpected logo failure, rendering without logo", "error", err)
		return
	}
	render.CompositeLogo(img, logo)
	log.Debugw("logo applied", "side", side)
}
