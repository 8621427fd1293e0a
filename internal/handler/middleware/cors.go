package middleware

import (
	"log/slog"
	"slices"

	"salon-dashboard/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// used when the configured list is empty; cors.New panics without any origin
var defaultAllowOrigins = []string{"http://localhost:3000", "http://localhost:8080"}

// NewCORSMiddleware admits the dashboard front end. A "*" origin opens the API to any
// origin and disables credentials, since browsers reject that combination.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposeHeaders(cfg.ExposeHeaders),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	origins := slices.DeleteFunc(slices.Clone(cfg.AllowOrigins), func(o string) bool { return o == "" })
	if len(origins) == 0 {
		slog.Warn("CORS_ALLOW_ORIGINS is empty, falling back to defaults", slog.Any("allow_origins", defaultAllowOrigins))
		origins = defaultAllowOrigins
	}

	if slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = origins
	}

	slog.Info("CORS middleware initialized",
		slog.Any("allow_origins", origins),
		slog.Bool("allow_credentials", corsCfg.AllowCredentials),
	)
	return cors.New(corsCfg)
}

// clients correlate gestures with server logs through the request id
func exposeHeaders(configured []string) []string {
	if slices.Contains(configured, requestIDHeader) {
		return configured
	}
	return append(slices.Clone(configured), requestIDHeader)
}
