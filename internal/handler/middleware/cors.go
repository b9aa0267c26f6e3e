package middleware

import (
	"log/slog"
	"slices"

	"lending-ledger/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes Location and X-Request-ID so browser
// clients can follow created resources and quote request ids.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range []string{"Location", RequestIDHeader} {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	allowHeaders := slices.Clone(cfg.AllowHeaders)
	if !slices.Contains(allowHeaders, RequestIDHeader) {
		allowHeaders = append(allowHeaders, RequestIDHeader)
	}

	c := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// cookies cannot be sent to a wildcard origin
	if slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowOrigins = nil
		c.AllowAllOrigins = true
		c.AllowCredentials = false
	}

	logger.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "credentials", c.AllowCredentials)
	return cors.New(c)
}
