package middleware

import (
	"log/slog"
	"slices"

	"glamping-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, "Content-Disposition"),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

// Admin CSV and invoice downloads take their filename from Content-Disposition.
func withHeader(headers []string, name string) []string {
	if slices.Contains(headers, name) {
		return headers
	}
	return append(slices.Clone(headers), name)
}
