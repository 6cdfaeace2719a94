package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/logger"
	"github.com/cristianadrielbraun/qrstyle/internal/render"
	"github.com/cristianadrielbraun/qrstyle/web/pages"
)

// Handler carries the dependencies of the HTTP handlers. Everything it
// holds is read-only after New, so one Handler serves all requests.
type Handler struct {
	log          *logger.Logger
	logos        *render.LogoDecoder
	maxBodyBytes int64
}

// Option customizes a Handler.
type Option func(*Handler)

// WithLogger sets the logger; the default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(h *Handler) { h.log = l }
}

// WithLogoDecoder sets the decoder used for embedded logos.
func WithLogoDecoder(d *render.LogoDecoder) Option {
	return func(h *Handler) { h.logos = d }
}

// WithMaxBodyBytes caps the request body; zero or less means no cap.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) { h.maxBodyBytes = n }
}

// New returns a new Handler instance.
func New(opts ...Option) *Handler {
	h := &Handler{
		log:   logger.Nop(),
		logos: render.NewLogoDecoder(0, 0),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HomePage serves the form that posts to the QR endpoint.
func (h *Handler) HomePage(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := pages.HomePage(render.ModuleShapes(), render.GradientTypes()).Render(c.Request.Context(), c.Writer); err != nil {
		h.log.Errorw("render home page", "error", err)
	}
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound answers unknown routes in the API's JSON shape.
func (h *Handler) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
