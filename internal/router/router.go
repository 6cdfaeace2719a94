package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/cristianadrielbraun/qrstyle/internal/config"
	"github.com/cristianadrielbraun/qrstyle/internal/handlers"
	"github.com/cristianadrielbraun/qrstyle/internal/logger"
	"github.com/cristianadrielbraun/qrstyle/internal/middleware"
	"github.com/cristianadrielbraun/qrstyle/internal/render"
)

// New builds the engine: shared middleware, the QR API, the form page and
// the health probe.
func New(cfg *config.Config, log *logger.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(log.Named("http")))
	r.Use(middleware.Recovery(log.Named("recovery"), handlers.MsgInternal))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	h := handlers.New(
		handlers.WithLogger(log.Named("qrcode")),
		handlers.WithLogoDecoder(render.NewLogoDecoder(cfg.Logo.MaxBytes, cfg.Logo.MaxPixels)),
		handlers.WithMaxBodyBytes(cfg.Server.MaxBodyBytes),
	)

	// API routes
	api := r.Group("/api")
	api.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		api.POST("/qrcode", h.QRCodeHandler)
	}

	// Pages
	r.GET("/", h.HomePage)
	r.GET("/healthz", h.Health)
	r.NoRoute(h.NotFound)

	return r
}
